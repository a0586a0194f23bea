package model

import (
	"time"

	"gorm.io/gorm"
)

type NotifyChannel string

const (
	NotifyChannelEmail   NotifyChannel = "email"
	NotifyChannelWebhook NotifyChannel = "webhook"
)

type NotifyStatus string

const (
	NotifyStatusPending NotifyStatus = "pending" // Enqueued, not yet delivered
	NotifyStatusSent    NotifyStatus = "sent"
	NotifyStatusFailed  NotifyStatus = "failed"
)

// Notification is the outbound message queue. Mutating operations only
// insert a row here and hand it to the dispatcher; delivery happens
// asynchronously and never fails the triggering request.
type Notification struct {
	gorm.Model

	MessageID string        `gorm:"uniqueIndex;type:varchar(64);not null;comment:消息唯一标识"`
	UserID    uint          `gorm:"index;not null;comment:接收用户"`
	Channel   NotifyChannel `gorm:"type:varchar(16);not null;comment:发送渠道" json:"channel"`
	Subject   string        `gorm:"type:varchar(255);not null;comment:主题" json:"subject"`
	Body      string        `gorm:"type:text;comment:正文" json:"body"`
	Status    NotifyStatus  `gorm:"type:varchar(16);index;not null;default:pending;comment:发送状态" json:"status"`
	FailedFor string        `gorm:"type:varchar(512);comment:失败原因" json:"failedFor"`
	SentAt    *time.Time    `gorm:"comment:发送时间" json:"sentAt"`
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}
