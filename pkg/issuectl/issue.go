package issuectl

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/apierr"
	"github.com/raids-lab/orbit/pkg/util"
	"github.com/raids-lab/orbit/pkg/workflow"
)

type CreateRequest struct {
	ProjectID   uint
	Title       string
	Description string
	Type        string // empty means task
	Priority    string // empty means medium
	AssigneeID  *uint
	ReporterID  uint
}

// UpdateRequest carries only the fields a client may change. Nil means the
// field keeps its value; ClearAssignee removes the assignee, which a nil
// pointer alone cannot express in JSON.
type UpdateRequest struct {
	Title         *string
	Description   *string
	Priority      *string
	AssigneeID    *uint
	ClearAssignee bool
}

// Create numbers the issue from the project counter and inserts it in one
// transaction. The project row is locked so two concurrent creates can
// never draw the same number, and the counter only moves forward, so
// numbers of deleted issues are never reused. Without an explicit assignee
// the project's default assignee is used, provided that user is still active.
func (c *IssueController) Create(ctx context.Context, req *CreateRequest) (*model.Issue, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apierr.Invalid("issue title must not be blank")
	}

	issueType := workflow.DefaultType()
	if req.Type != "" {
		parsed, err := workflow.ParseType(req.Type)
		if err != nil {
			return nil, err
		}
		issueType = parsed
	}
	priority := workflow.DefaultPriority()
	if req.Priority != "" {
		parsed, err := workflow.ParsePriority(req.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	var assignee *model.User
	if req.AssigneeID != nil {
		user, err := c.activeUser(ctx, *req.AssigneeID)
		if err != nil {
			return nil, err
		}
		assignee = user
	}

	issue := &model.Issue{
		ProjectID:   req.ProjectID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Type:        issueType,
		Status:      model.IssueStatusBacklog,
		Priority:    priority,
		ReporterID:  req.ReporterID,
		AssigneeID:  req.AssigneeID,
	}

	project := &model.Project{}
	txErr := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(project).
			Where("id = ?", req.ProjectID).
			First(project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierr.NotFound("project %d not found", req.ProjectID)
			}
			return err
		}
		if issue.AssigneeID == nil && project.DefaultAssigneeID != nil {
			fallback := &model.User{}
			err := tx.First(fallback, *project.DefaultAssigneeID).Error
			switch {
			case err == nil && fallback.Status == model.StatusActive:
				issue.AssigneeID = project.DefaultAssigneeID
				assignee = fallback
			case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			default:
				// 默认负责人已停用或不存在，保持未分配
				klog.Warningf("project %s default assignee %d unavailable, issue left unassigned", project.Key, *project.DefaultAssigneeID)
			}
		}
		next := project.IssueCounter + 1
		if err := tx.Model(project).UpdateColumn("issue_counter", next).Error; err != nil {
			return err
		}
		issue.Number = next
		return tx.Create(issue).Error
	})
	if txErr != nil {
		return nil, wrapErr("IssueController.Create", txErr)
	}

	created, err := c.Get(ctx, issue.ID)
	if err != nil {
		return nil, err
	}
	if assignee != nil {
		if err := c.alert.IssueAssignedAlert(ctx, created, assignee); err != nil {
			klog.Errorf("enqueue assignment notification for issue %s failed: %v", created.Key(), err)
		}
	}
	c.publish(util.IssueEvent{
		ProjectID: created.ProjectID,
		IssueID:   created.ID,
		IssueKey:  created.Key(),
		Operation: util.CreateIssue,
		Status:    string(created.Status),
	})
	return created, nil
}

// Update applies the changed fields. Type, status, reporter and number are
// not part of the request on purpose: status moves through Transition, the
// rest never changes after creation.
func (c *IssueController) Update(ctx context.Context, id uint, req *UpdateRequest) (*model.Issue, error) {
	issue, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apierr.Invalid("issue title must not be blank")
		}
		updates["title"] = title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, apierr.Invalid("issue description must not be blank")
		}
		updates["description"] = description
	}
	if req.Priority != nil {
		priority, err := workflow.ParsePriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		updates["priority"] = priority
	}

	var newAssignee *model.User
	switch {
	case req.ClearAssignee:
		updates["assignee_id"] = nil
	case req.AssigneeID != nil:
		if issue.AssigneeID == nil || *issue.AssigneeID != *req.AssigneeID {
			user, err := c.activeUser(ctx, *req.AssigneeID)
			if err != nil {
				return nil, err
			}
			newAssignee = user
		}
		updates["assignee_id"] = *req.AssigneeID
	}

	if len(updates) == 0 {
		return nil, apierr.Invalid("no valid fields to update")
	}
	if err := c.db.WithContext(ctx).Model(issue).Updates(updates).Error; err != nil {
		return nil, wrapErr("IssueController.Update", err)
	}

	updated, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if newAssignee != nil {
		if err := c.alert.IssueAssignedAlert(ctx, updated, newAssignee); err != nil {
			klog.Errorf("enqueue assignment notification for issue %s failed: %v", updated.Key(), err)
		}
	}
	c.publish(util.IssueEvent{
		ProjectID: updated.ProjectID,
		IssueID:   updated.ID,
		IssueKey:  updated.Key(),
		Operation: util.UpdateIssue,
	})
	return updated, nil
}

// Transition moves the issue to another workflow status and notifies the
// assignee. Moving to the current status is allowed and only bumps the
// update time.
func (c *IssueController) Transition(ctx context.Context, id uint, status string) (*model.Issue, error) {
	to, err := workflow.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	issue, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	from := issue.Status
	if !workflow.CanTransition(from, to) {
		return nil, apierr.Invalid("cannot move issue %s from %s to %s", issue.Key(), from, to)
	}
	if err := c.db.WithContext(ctx).Model(issue).Update("status", to).Error; err != nil {
		return nil, wrapErr("IssueController.Transition", err)
	}
	if from != to {
		if err := c.alert.IssueStatusAlert(ctx, issue, from, to); err != nil {
			klog.Errorf("enqueue status notification for issue %s failed: %v", issue.Key(), err)
		}
	}
	c.publish(util.IssueEvent{
		ProjectID: issue.ProjectID,
		IssueID:   issue.ID,
		IssueKey:  issue.Key(),
		Operation: util.TransitionIssue,
		Status:    string(to),
	})
	return issue, nil
}

// Delete removes the issue permanently. The project counter is untouched,
// so the number is gone for good.
func (c *IssueController) Delete(ctx context.Context, id uint) error {
	issue, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Unscoped().Delete(&model.Issue{}, id).Error; err != nil {
		return wrapErr("IssueController.Delete", err)
	}
	c.publish(util.IssueEvent{
		ProjectID: issue.ProjectID,
		IssueID:   issue.ID,
		IssueKey:  issue.Key(),
		Operation: util.DeleteIssue,
	})
	return nil
}
