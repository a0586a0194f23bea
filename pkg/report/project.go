package report

import (
	"context"
	"fmt"
	"time"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/workflow"
)

// velocityWindowDays is the trailing window of the overview velocity block.
const velocityWindowDays = 30

type (
	ProjectBrief struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Key  string `json:"key"`
	}

	OverviewTotals struct {
		TotalIssues    int64   `json:"totalIssues"`
		CompletionRate float64 `json:"completionRate"` // 百分比，一位小数
	}

	VelocityWindow struct {
		PeriodDays      int     `json:"periodDays"`
		CompletedIssues int64   `json:"completedIssues"`
		DailyAverage    float64 `json:"dailyAverage"`
	}

	AgingIssue struct {
		Key    string            `json:"key"` // 展示键，如 ORBIT-42
		Title  string            `json:"title"`
		Days   int               `json:"days"`
		Status model.IssueStatus `json:"status"`
	}

	// AgeBuckets carries all four buckets even when empty so the dashboard
	// columns keep their place.
	AgeBuckets struct {
		Fresh   []AgingIssue `json:"fresh"`
		Normal  []AgingIssue `json:"normal"`
		Aging   []AgingIssue `json:"aging"`
		Stalled []AgingIssue `json:"stalled"`
	}

	OverviewResp struct {
		Project        ProjectBrief     `json:"project"`
		Overview       OverviewTotals   `json:"overview"`
		IssuesByStatus map[string]int64 `json:"issuesByStatus"`
		Velocity       VelocityWindow   `json:"velocity"`
		Aging          AgeBuckets       `json:"aging"`
	}
)

// ProjectOverview is the dashboard snapshot: status distribution, the
// 30 day completion rate and which open issues have gone quiet.
func (r *Reporter) ProjectOverview(ctx context.Context, project *model.Project) (*OverviewResp, error) {
	counts, err := r.statusCounts(ctx, project.ID)
	if err != nil {
		return nil, wrapErr("Reporter.ProjectOverview", err)
	}
	var total int64
	for _, count := range counts {
		total += count
	}
	done := counts[string(model.IssueStatusDone)]

	velocity, err := r.projectVelocity(ctx, project.ID, velocityWindowDays)
	if err != nil {
		return nil, wrapErr("Reporter.ProjectOverview", err)
	}
	aging, err := r.ageBuckets(ctx, project.ID)
	if err != nil {
		return nil, wrapErr("Reporter.ProjectOverview", err)
	}

	rate := 0.0
	if total > 0 {
		rate = round1(float64(done) / float64(total) * 100)
	}
	return &OverviewResp{
		Project:        ProjectBrief{ID: project.ID, Name: project.Name, Key: project.Key},
		Overview:       OverviewTotals{TotalIssues: total, CompletionRate: rate},
		IssuesByStatus: counts,
		Velocity:       velocity,
		Aging:          aging,
	}, nil
}

func (r *Reporter) projectVelocity(ctx context.Context, projectID uint, days int) (VelocityWindow, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	var completed int64
	err := r.db.WithContext(ctx).Model(&model.Issue{}).
		Where("project_id = ? AND status = ? AND updated_at >= ?",
			projectID, model.IssueStatusDone, cutoff).
		Count(&completed).Error
	if err != nil {
		return VelocityWindow{}, err
	}
	return VelocityWindow{
		PeriodDays:      days,
		CompletedIssues: completed,
		DailyAverage:    round2(float64(completed) / float64(days)),
	}, nil
}

// ageBuckets sorts the open issues into freshness buckets by their last
// update, most recently touched first within each bucket.
func (r *Reporter) ageBuckets(ctx context.Context, projectID uint) (AgeBuckets, error) {
	var issues []model.Issue
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("project_id = ? AND status <> ?", projectID, model.IssueStatusDone).
		Order("updated_at DESC").
		Find(&issues).Error
	if err != nil {
		return AgeBuckets{}, err
	}

	buckets := AgeBuckets{
		Fresh:   []AgingIssue{},
		Normal:  []AgingIssue{},
		Aging:   []AgingIssue{},
		Stalled: []AgingIssue{},
	}
	now := time.Now()
	for i := range issues {
		days := ageInDays(now, issues[i].UpdatedAt)
		item := AgingIssue{
			Key:    issues[i].Key(),
			Title:  issues[i].Title,
			Days:   days,
			Status: issues[i].Status,
		}
		switch workflow.BucketForAge(days) {
		case workflow.AgeFresh:
			buckets.Fresh = append(buckets.Fresh, item)
		case workflow.AgeNormal:
			buckets.Normal = append(buckets.Normal, item)
		case workflow.AgeAging:
			buckets.Aging = append(buckets.Aging, item)
		case workflow.AgeStalled:
			buckets.Stalled = append(buckets.Stalled, item)
		}
	}
	return buckets, nil
}

// Chart colors match the frontend line chart defaults.
const (
	idealLineColor  = "#3b82f6"
	idealFillColor  = "rgba(59, 130, 246, 0.1)"
	actualLineColor = "#ef4444"
	actualFillColor = "rgba(239, 68, 68, 0.1)"
)

type (
	BurndownDataset struct {
		Label           string  `json:"label"`
		Data            []int64 `json:"data"`
		BorderColor     string  `json:"borderColor"`
		BackgroundColor string  `json:"backgroundColor"`
		Fill            bool    `json:"fill"`
	}

	BurndownSummary struct {
		TotalIssues          int64   `json:"totalIssues"`
		Completed            int64   `json:"completed"`
		Remaining            int64   `json:"remaining"`
		CompletionPercentage float64 `json:"completionPercentage"`
	}

	BurndownResp struct {
		Labels   []string          `json:"labels"`
		Datasets []BurndownDataset `json:"datasets"`
		Summary  BurndownSummary   `json:"summary"`
	}
)

// ProjectBurndown renders a Kanban flavoured burndown: an ideal line from
// the current total down to zero over the requested periods against the
// actual remaining count. Without per-issue history the actual series is a
// flat line at today's value, only the first point starts at the total.
func (r *Reporter) ProjectBurndown(ctx context.Context, project *model.Project, periods int) (*BurndownResp, error) {
	periods = normalizePeriods(periods)

	counts, err := r.statusCounts(ctx, project.ID)
	if err != nil {
		return nil, wrapErr("Reporter.ProjectBurndown", err)
	}
	var total int64
	for _, count := range counts {
		total += count
	}
	completed := counts[string(model.IssueStatusDone)]
	remaining := total - completed

	labels := make([]string, periods)
	ideal := make([]int64, periods)
	actual := make([]int64, periods)
	for i := 0; i < periods; i++ {
		labels[i] = fmt.Sprintf("Period %d", i+1)
		ideal[i] = total * int64(periods-1-i) / int64(periods-1)
		actual[i] = remaining
	}
	actual[0] = total

	percentage := 0.0
	if total > 0 {
		percentage = round1(float64(completed) / float64(total) * 100)
	}
	return &BurndownResp{
		Labels: labels,
		Datasets: []BurndownDataset{
			{
				Label:           "Ideal Burndown",
				Data:            ideal,
				BorderColor:     idealLineColor,
				BackgroundColor: idealFillColor,
			},
			{
				Label:           "Actual Progress",
				Data:            actual,
				BorderColor:     actualLineColor,
				BackgroundColor: actualFillColor,
			},
		},
		Summary: BurndownSummary{
			TotalIssues:          total,
			Completed:            completed,
			Remaining:            remaining,
			CompletionPercentage: percentage,
		},
	}, nil
}
