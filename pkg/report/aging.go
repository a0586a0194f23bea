package report

import (
	"context"
	"time"

	"github.com/raids-lab/orbit/dao/model"
)

const unassignedLabel = "Unassigned"

type (
	AgingItem struct {
		IssueKey string `json:"issueKey"` // 展示键，如 ORBIT-42
		Title    string `json:"title"`
		Days     int    `json:"days"`
		Assignee string `json:"assignee"` // 无经办人时为 Unassigned
	}

	AgingStats struct {
		IssueCount int     `json:"issueCount"`
		AvgDays    float64 `json:"avgDays"`
		MaxDays    int     `json:"maxDays"`
		MinDays    int     `json:"minDays"`
	}

	AgingResp struct {
		AgingByStatus map[string][]AgingItem `json:"agingByStatus"`
		Summary       map[string]AgingStats  `json:"summary"`
		GeneratedAt   time.Time              `json:"generatedAt"`
	}
)

// IssuesAging groups open issues that have not moved for maxAgeDays by
// status. The threshold keeps noise out of the report: with the default of
// 30 only work stuck for a month shows up, 0 lists everything open.
func (r *Reporter) IssuesAging(ctx context.Context, projectIDs []uint, maxAgeDays int) (*AgingResp, error) {
	if maxAgeDays < 0 {
		maxAgeDays = 0
	}
	now := time.Now()
	cutoff := now.AddDate(0, 0, -maxAgeDays)

	var issues []model.Issue
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Where("project_id IN ?", projectIDs).
		Where("status <> ?", model.IssueStatusDone).
		Where("updated_at <= ?", cutoff).
		Order("updated_at DESC").
		Find(&issues).Error
	if err != nil {
		return nil, wrapErr("Reporter.IssuesAging", err)
	}

	byStatus := make(map[string][]AgingItem)
	for i := range issues {
		assignee := unassignedLabel
		if issues[i].Assignee != nil {
			assignee = issues[i].Assignee.Name
		}
		status := string(issues[i].Status)
		byStatus[status] = append(byStatus[status], AgingItem{
			IssueKey: issues[i].Key(),
			Title:    issues[i].Title,
			Days:     ageInDays(now, issues[i].UpdatedAt),
			Assignee: assignee,
		})
	}

	summary := make(map[string]AgingStats, len(byStatus))
	for status, items := range byStatus {
		stats := AgingStats{IssueCount: len(items), MinDays: items[0].Days}
		var sum int
		for _, item := range items {
			sum += item.Days
			if item.Days > stats.MaxDays {
				stats.MaxDays = item.Days
			}
			if item.Days < stats.MinDays {
				stats.MinDays = item.Days
			}
		}
		stats.AvgDays = round1(float64(sum) / float64(len(items)))
		summary[status] = stats
	}

	return &AgingResp{AgingByStatus: byStatus, Summary: summary, GeneratedAt: now}, nil
}
