package report

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/raids-lab/orbit/dao/model"
)

type VelocityResp struct {
	UserID          uint   `json:"userID"`
	UserName        string `json:"userName"`
	PeriodWeeks     int    `json:"periodWeeks"`
	CompletedIssues int64  `json:"completedIssues"`
}

// UserVelocity counts the issues the user closed inside the trailing window,
// across all projects they are assigned in.
func (r *Reporter) UserVelocity(ctx context.Context, user *model.User, weeks int) (*VelocityResp, error) {
	weeks = normalizeWeeks(weeks)
	cutoff := time.Now().AddDate(0, 0, -weeks*7)

	var completed int64
	err := r.db.WithContext(ctx).Model(&model.Issue{}).
		Where("assignee_id = ? AND status = ? AND updated_at >= ?",
			user.ID, model.IssueStatusDone, cutoff).
		Count(&completed).Error
	if err != nil {
		return nil, wrapErr("Reporter.UserVelocity", err)
	}
	return &VelocityResp{
		UserID:          user.ID,
		UserName:        user.Name,
		PeriodWeeks:     weeks,
		CompletedIssues: completed,
	}, nil
}

type (
	VelocityPeriod struct {
		Weeks     int       `json:"weeks"`
		StartDate time.Time `json:"startDate"`
		EndDate   time.Time `json:"endDate"`
	}

	MemberVelocity struct {
		CompletedIssues int64 `json:"completedIssues"`
		PointsCompleted int64 `json:"pointsCompleted"` // 暂无故事点，与完成数相同
		// AvgCompletionTime stays 0 until per-issue transition history exists.
		AvgCompletionTime int64 `json:"avgCompletionTime"`
	}

	TeamVelocityResp struct {
		Period          VelocityPeriod            `json:"period"`
		TeamSize        int                       `json:"teamSize"`
		TotalCompleted  int64                     `json:"totalCompleted"`
		AverageVelocity float64                   `json:"averageVelocity"`
		MemberBreakdown map[string]MemberVelocity `json:"memberBreakdown"`
	}
)

type assigneeCountRow struct {
	AssigneeID uint
	Count      int64
}

// TeamVelocity aggregates per-member completions over the window with one
// grouped query instead of a query per member. Members without completions
// still appear in the breakdown with zeroes.
func (r *Reporter) TeamVelocity(ctx context.Context, users []model.User, weeks int) (*TeamVelocityResp, error) {
	weeks = normalizeWeeks(weeks)
	now := time.Now()
	cutoff := now.AddDate(0, 0, -weeks*7)

	breakdown := make(map[string]MemberVelocity, len(users))
	var total int64
	if len(users) > 0 {
		ids := lo.Map(users, func(user model.User, _ int) uint { return user.ID })
		var rows []assigneeCountRow
		err := r.db.WithContext(ctx).Model(&model.Issue{}).
			Select("assignee_id, count(*) as count").
			Where("assignee_id IN ? AND status = ? AND updated_at >= ?",
				ids, model.IssueStatusDone, cutoff).
			Group("assignee_id").
			Scan(&rows).Error
		if err != nil {
			return nil, wrapErr("Reporter.TeamVelocity", err)
		}
		completedByID := make(map[uint]int64, len(rows))
		for _, row := range rows {
			completedByID[row.AssigneeID] = row.Count
		}
		for i := range users {
			completed := completedByID[users[i].ID]
			breakdown[users[i].Name] = MemberVelocity{
				CompletedIssues: completed,
				PointsCompleted: completed,
			}
			total += completed
		}
	}

	average := 0.0
	if len(users) > 0 {
		average = round1(float64(total) / float64(len(users)))
	}
	return &TeamVelocityResp{
		Period:          VelocityPeriod{Weeks: weeks, StartDate: cutoff, EndDate: now},
		TeamSize:        len(users),
		TotalCompleted:  total,
		AverageVelocity: average,
		MemberBreakdown: breakdown,
	}, nil
}
