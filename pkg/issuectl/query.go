package issuectl

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/apierr"
	"github.com/raids-lab/orbit/pkg/constants"
	"github.com/raids-lab/orbit/pkg/workflow"
)

// ListFilter narrows the issue listing. All set fields must match at once.
// ProjectIDs restricts callers without a project filter to the projects
// they may access, nil means unrestricted.
type ListFilter struct {
	ProjectID  *uint
	ProjectIDs []uint
	AssigneeID *uint
	ReporterID *uint
	Status     *string
	Type       *string
	Offset     int
	Limit      int
}

// BoardColumn is one Kanban column, already sorted for display.
type BoardColumn struct {
	Status model.IssueStatus `json:"status"`
	Issues []*model.Issue    `json:"issues"`
}

func (c *IssueController) Get(ctx context.Context, id uint) (*model.Issue, error) {
	issue := &model.Issue{}
	err := c.db.WithContext(ctx).
		Preload("Project").
		Preload("Reporter").
		Preload("Assignee").
		First(issue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("issue %d not found", id)
	}
	if err != nil {
		return nil, wrapErr("IssueController.Get", err)
	}
	return issue, nil
}

// GetByKey looks up an issue by its display key, e.g. "ORBIT-42". The
// project is resolved first so a dangling prefix reports the project, not
// the issue, as missing.
func (c *IssueController) GetByKey(ctx context.Context, key string) (*model.Issue, error) {
	projectKey, number, err := model.ParseIssueKey(key)
	if err != nil {
		return nil, apierr.Invalid("%v", err)
	}

	project := &model.Project{}
	err = c.db.WithContext(ctx).Where("key = ?", projectKey).First(project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("project %s not found", projectKey)
	}
	if err != nil {
		return nil, wrapErr("IssueController.GetByKey", err)
	}

	issue := &model.Issue{}
	err = c.db.WithContext(ctx).
		Preload("Reporter").
		Preload("Assignee").
		Where("project_id = ? AND number = ?", project.ID, number).
		First(issue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("issue %s not found", model.FormatIssueKey(projectKey, number))
	}
	if err != nil {
		return nil, wrapErr("IssueController.GetByKey", err)
	}
	issue.Project = *project
	return issue, nil
}

// List returns one page of issues, newest activity first, together with the
// total match count.
func (c *IssueController) List(ctx context.Context, filter *ListFilter) (issues []*model.Issue, total int64, err error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxIssuePageSize {
		limit = constants.MaxIssuePageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	g, groupCtx := errgroup.WithContext(ctx)
	scoped := func() *gorm.DB {
		tx := c.db.WithContext(groupCtx).Model(&model.Issue{})
		if filter.ProjectID != nil {
			tx = tx.Where("project_id = ?", *filter.ProjectID)
		}
		if filter.ProjectID == nil && filter.ProjectIDs != nil {
			tx = tx.Where("project_id IN ?", filter.ProjectIDs)
		}
		if filter.AssigneeID != nil {
			tx = tx.Where("assignee_id = ?", *filter.AssigneeID)
		}
		if filter.ReporterID != nil {
			tx = tx.Where("reporter_id = ?", *filter.ReporterID)
		}
		if filter.Status != nil {
			tx = tx.Where("status = ?", *filter.Status)
		}
		if filter.Type != nil {
			tx = tx.Where("type = ?", *filter.Type)
		}
		return tx
	}

	g.Go(func() error {
		return scoped().
			Preload("Project").
			Preload("Reporter").
			Preload("Assignee").
			Order("updated_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&issues).Error
	})
	g.Go(func() error {
		return scoped().Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, wrapErr("IssueController.List", err)
	}
	return issues, total, nil
}

// Board groups the project issues into the workflow columns. Columns are
// ordered most urgent first, ties broken by recent activity.
func (c *IssueController) Board(ctx context.Context, projectID uint) ([]BoardColumn, error) {
	var issues []*model.Issue
	err := c.db.WithContext(ctx).
		Preload("Project").
		Preload("Reporter").
		Preload("Assignee").
		Where("project_id = ?", projectID).
		Limit(constants.MaxBoardIssues).
		Find(&issues).Error
	if err != nil {
		return nil, wrapErr("IssueController.Board", err)
	}

	grouped := make(map[model.IssueStatus][]*model.Issue, len(issues))
	for _, issue := range issues {
		grouped[issue.Status] = append(grouped[issue.Status], issue)
	}

	statuses := workflow.AllStatuses()
	columns := make([]BoardColumn, 0, len(statuses))
	for _, status := range statuses {
		column := grouped[status]
		sort.SliceStable(column, func(i, j int) bool {
			ri, rj := workflow.PriorityRank(column[i].Priority), workflow.PriorityRank(column[j].Priority)
			if ri != rj {
				return ri < rj
			}
			return column[i].UpdatedAt.After(column[j].UpdatedAt)
		})
		if column == nil {
			column = []*model.Issue{}
		}
		columns = append(columns, BoardColumn{Status: status, Issues: column})
	}
	return columns, nil
}
