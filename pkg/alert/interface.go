package alert

import (
	"context"

	"github.com/raids-lab/orbit/dao/model"
)

// AlertMgr 是封装好的通知组件，提供：
//  1. 新用户注册的欢迎邮件
//  2. Issue 被指派给某人的通知
//  3. Issue 状态变更的通知（通知经办人）
//  4. Issue 长期未更新的提醒（由 Cron 任务触发）
//
// 所有方法只负责入队：先落库（pending），再交给后台 dispatcher 异步投递，
// 发送失败不会影响触发它的业务操作。
type AlertInterface interface {
	WelcomeAlert(ctx context.Context, user *model.User) error
	IssueAssignedAlert(ctx context.Context, issue *model.Issue, assignee *model.User) error
	IssueStatusAlert(ctx context.Context, issue *model.Issue, from, to model.IssueStatus) error
	StaleIssueReminder(ctx context.Context, issue *model.Issue, days int) error
}

// alertHandlerInterface 是具体的通知组件对外部提供的接口，Webhook 或者 SMTP 邮件通知都应该实现这个接口
type alertHandlerInterface interface {
	SendMessageTo(ctx context.Context, receiver *model.UserAttribute, subject, body string) error
}
