package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CronJobType 区分维护任务的执行器种类，目前只有进程内的维护函数一种
type CronJobType string

const (
	CronJobTypeCleanerFunc CronJobType = "cleaner_function"
)

// CronJobConfig 是维护任务的调度配置，服务启动时从这里恢复调度，
// 管理端通过 operations 接口修改
type CronJobConfig struct {
	gorm.Model
	Name    string         `gorm:"type:varchar(128);not null;index;unique;comment:维护任务名称" json:"name"`
	Type    CronJobType    `gorm:"type:varchar(128);not null;index;comment:执行器种类" json:"type"`
	Spec    string         `gorm:"type:varchar(128);not null;index;comment:Cron调度表达式" json:"spec"`
	Suspend *bool          `gorm:"not null;default:false;comment:是否暂停调度" json:"suspend"`
	Config  datatypes.JSON `gorm:"type:jsonb;comment:任务参数(staleDays等)" json:"config"`
	EntryID int            `gorm:"type:int;comment:调度器内的条目ID" json:"entry_id"`
}

func (CronJobConfig) TableName() string {
	return "cron_job_configs"
}

// GetSuspend treats a missing value as not suspended.
func (c *CronJobConfig) GetSuspend() bool {
	return c.Suspend != nil && *c.Suspend
}

type CronJobRecordStatus string

const (
	CronJobRecordStatusUnknown CronJobRecordStatus = "unknown"
	CronJobRecordStatusSuccess CronJobRecordStatus = "success"
	CronJobRecordStatusFailed  CronJobRecordStatus = "failed"
)

// CronJobRecord 是维护任务的单次执行留痕，供管理端审计与按时间清理
type CronJobRecord struct {
	gorm.Model
	Name        string              `gorm:"type:varchar(128);not null;index;comment:维护任务名称" json:"name"`
	ExecuteTime time.Time           `gorm:"not null;index;comment:执行时间" json:"executeTime"`
	Status      CronJobRecordStatus `gorm:"type:varchar(128);not null;index;default:unknown;comment:执行状态" json:"status"`
	Message     string              `gorm:"type:text;comment:执行消息或错误信息" json:"message"`
	JobData     datatypes.JSON      `gorm:"type:jsonb;comment:任务数据(提醒的Issue与清理统计)" json:"jobData"`
}

func (CronJobRecord) TableName() string {
	return "cron_job_records"
}
