package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/dao/query"
	"github.com/raids-lab/orbit/pkg/config"
)

const queueSize = 256

type alertMgr struct {
	db       *gorm.DB
	handlers map[model.NotifyChannel]alertHandlerInterface
	queue    chan uint
	logger   logr.Logger
}

var (
	once    sync.Once
	alerter *alertMgr
)

func GetAlertMgr() AlertInterface {
	once.Do(func() {
		alerter = initAlertMgr()
	})
	return alerter
}

// StartDispatcher launches the background worker that drains the queue.
// Call it once from main, the goroutine exits with the context.
func StartDispatcher(ctx context.Context) {
	GetAlertMgr()
	go alerter.run(ctx)
}

func initAlertMgr() *alertMgr {
	conf := config.GetConfig()
	handlers := make(map[model.NotifyChannel]alertHandlerInterface)
	if conf.SMTP.Enable {
		handlers[model.NotifyChannelEmail] = newSMTPAlerter()
	}
	if conf.Webhook.Enable {
		handlers[model.NotifyChannelWebhook] = newWebhookAlerter()
	}
	return &alertMgr{
		db:       query.GetDB(),
		handlers: handlers,
		queue:    make(chan uint, queueSize),
		logger:   klog.NewKlogr().WithName("alert-dispatcher"),
	}
}

// enqueue writes the pending row and hands it to the dispatcher. The row is
// the source of truth: if the channel is full, the sweeper cron picks the
// row up later.
func (a *alertMgr) enqueue(ctx context.Context, userID uint, subject, body string) error {
	for channel := range a.handlers {
		notification := model.Notification{
			MessageID: uuid.New().String(),
			UserID:    userID,
			Channel:   channel,
			Subject:   subject,
			Body:      body,
			Status:    model.NotifyStatusPending,
		}
		if err := a.db.WithContext(ctx).Create(&notification).Error; err != nil {
			return fmt.Errorf("alertMgr.enqueue failed: %w", err)
		}
		select {
		case a.queue <- notification.ID:
		default:
			a.logger.Info("queue full, leaving notification for the sweeper", "messageID", notification.MessageID)
		}
	}
	return nil
}

func (a *alertMgr) run(ctx context.Context) {
	a.logger.Info("dispatcher started", "channels", len(a.handlers))
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("dispatcher stopped")
			return
		case id := <-a.queue:
			a.deliver(ctx, id)
		}
	}
}

func (a *alertMgr) deliver(ctx context.Context, id uint) {
	var notification model.Notification
	if err := a.db.WithContext(ctx).First(&notification, id).Error; err != nil {
		a.logger.Error(err, "load notification", "id", id)
		return
	}
	if notification.Status != model.NotifyStatusPending {
		return
	}

	var user model.User
	if err := a.db.WithContext(ctx).First(&user, notification.UserID).Error; err != nil {
		a.markFailed(ctx, &notification, fmt.Sprintf("load receiver: %v", err))
		return
	}
	receiver := user.Attributes.Data()
	if receiver.Email == "" {
		receiver.Email = user.Email
	}
	if receiver.Nickname == "" {
		receiver.Nickname = user.Nickname
	}

	handler, ok := a.handlers[notification.Channel]
	if !ok {
		a.markFailed(ctx, &notification, fmt.Sprintf("channel %s is not configured", notification.Channel))
		return
	}

	if err := handler.SendMessageTo(ctx, &receiver, notification.Subject, notification.Body); err != nil {
		a.markFailed(ctx, &notification, err.Error())
		return
	}

	now := time.Now()
	err := a.db.WithContext(ctx).Model(&notification).Updates(map[string]any{
		"status":  model.NotifyStatusSent,
		"sent_at": &now,
	}).Error
	if err != nil {
		a.logger.Error(err, "mark notification sent", "messageID", notification.MessageID)
	}
}

func (a *alertMgr) markFailed(ctx context.Context, notification *model.Notification, reason string) {
	a.logger.Info("delivery failed", "messageID", notification.MessageID, "reason", reason)
	err := a.db.WithContext(ctx).Model(notification).Updates(map[string]any{
		"status":     model.NotifyStatusFailed,
		"failed_for": reason,
	}).Error
	if err != nil {
		a.logger.Error(err, "mark notification failed", "messageID", notification.MessageID)
	}
}

// RequeuePending pushes pending rows older than the given age back into the
// queue. The sweeper cron calls this to recover messages dropped on
// overflow or restart.
func RequeuePending(ctx context.Context, olderThan time.Duration) (int, error) {
	GetAlertMgr()
	var pending []model.Notification
	cutoff := time.Now().Add(-olderThan)
	err := alerter.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", model.NotifyStatusPending, cutoff).
		Limit(queueSize).
		Find(&pending).Error
	if err != nil {
		return 0, fmt.Errorf("RequeuePending failed: %w", err)
	}
	requeued := 0
	for i := range pending {
		select {
		case alerter.queue <- pending[i].ID:
			requeued++
		default:
			return requeued, nil
		}
	}
	return requeued, nil
}

func (a *alertMgr) WelcomeAlert(ctx context.Context, user *model.User) error {
	subject := "欢迎加入 Orbit"
	body := fmt.Sprintf(`用户 %s 您好：您的 Orbit 账号已经创建成功，现在可以登录并开始跟踪您的项目了。`, user.Nickname)
	return a.enqueue(ctx, user.ID, subject, body)
}

func (a *alertMgr) IssueAssignedAlert(ctx context.Context, issue *model.Issue, assignee *model.User) error {
	subject := "Issue 指派通知"
	body := fmt.Sprintf(`用户 %s 您好：Issue %s (%s) 已经指派给您，当前状态为 %s。`,
		assignee.Nickname, issue.Key(), issue.Title, issue.Status)
	return a.enqueue(ctx, assignee.ID, subject, body)
}

func (a *alertMgr) IssueStatusAlert(ctx context.Context, issue *model.Issue, from, to model.IssueStatus) error {
	if issue.AssigneeID == nil {
		return nil
	}
	subject := "Issue 状态变更通知"
	body := fmt.Sprintf(`您好：Issue %s (%s) 的状态已经从 %s 变更为 %s。`,
		issue.Key(), issue.Title, from, to)
	return a.enqueue(ctx, *issue.AssigneeID, subject, body)
}

func (a *alertMgr) StaleIssueReminder(ctx context.Context, issue *model.Issue, days int) error {
	if issue.AssigneeID == nil {
		return nil
	}
	subject := "Issue 长期未更新提醒"
	body := fmt.Sprintf(`您好：Issue %s (%s) 已经 %d 天没有任何更新，请确认它是否仍在进行中。`,
		issue.Key(), issue.Title, days)
	return a.enqueue(ctx, *issue.AssigneeID, subject, body)
}
