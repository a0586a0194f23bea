// Package issuectl owns the issue lifecycle. Every write that touches an
// issue goes through the controller, so numbering, workflow checks and
// notifications live in one place instead of being scattered over handlers.
package issuectl

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/alert"
	"github.com/raids-lab/orbit/pkg/apierr"
	"github.com/raids-lab/orbit/pkg/util"
)

// IssueControllerInterface Issue 生命周期控制
type IssueControllerInterface interface {
	Board(ctx context.Context, projectID uint) ([]BoardColumn, error)
	Create(ctx context.Context, req *CreateRequest) (*model.Issue, error)
	Delete(ctx context.Context, id uint) error
	Events() <-chan util.IssueEvent
	Get(ctx context.Context, id uint) (*model.Issue, error)
	GetByKey(ctx context.Context, key string) (*model.Issue, error)
	List(ctx context.Context, filter *ListFilter) ([]*model.Issue, int64, error)
	Transition(ctx context.Context, id uint, status string) (*model.Issue, error)
	Update(ctx context.Context, id uint, req *UpdateRequest) (*model.Issue, error)
}

type IssueController struct {
	db     *gorm.DB
	alert  alert.AlertInterface // 入队即返回的通知组件
	events chan util.IssueEvent // 看板事件，由 websocket hub 消费
}

const eventQueueSize = 256

// NewIssueController returns a new *IssueController
func NewIssueController(db *gorm.DB, alertMgr alert.AlertInterface) IssueControllerInterface {
	return &IssueController{
		db:     db,
		alert:  alertMgr,
		events: make(chan util.IssueEvent, eventQueueSize),
	}
}

// Events exposes the board event stream. The channel is never closed.
func (c *IssueController) Events() <-chan util.IssueEvent {
	return c.events
}

// publish drops the event when no consumer keeps up. Board clients recover
// on their next full refresh.
func (c *IssueController) publish(event util.IssueEvent) {
	select {
	case c.events <- event:
	default:
		klog.V(4).Infof("issue event queue full, dropped %s for issue %d", event.Operation, event.IssueID)
	}
}

// wrapErr wraps infrastructure failures with the failing operation while
// letting already classified errors through unchanged, so the message a
// client sees never carries controller internals.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if apierr.KindOf(err) != apierr.KindInternal {
		return err
	}
	wrapped := fmt.Errorf("%s: %w", op, err)
	klog.Error(wrapped)
	return wrapped
}

// activeUser loads a user that may be handed work. Deactivated accounts are
// rejected so an issue never points at someone who cannot log in.
func (c *IssueController) activeUser(ctx context.Context, id uint) (*model.User, error) {
	user := &model.User{}
	err := c.db.WithContext(ctx).First(user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.Invalid("assignee %d not found", id)
	}
	if err != nil {
		return nil, wrapErr("IssueController.activeUser", err)
	}
	if user.Status != model.StatusActive {
		return nil, apierr.Invalid("assignee %s is deactivated", user.Name)
	}
	return user, nil
}
