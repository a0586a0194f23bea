package report

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/workflow"
)

type (
	WorkloadEntry struct {
		UserID        uint             `json:"userID"`
		UserName      string           `json:"userName"`
		UserEmail     string           `json:"userEmail"`
		TotalIssues   int64            `json:"totalIssues"`
		ByPriority    map[string]int64 `json:"byPriority"`
		WorkloadScore int64            `json:"workloadScore"`
	}

	WorkloadMetadata struct {
		ProjectIDs   []uint           `json:"projectIDs"`
		Weights      map[string]int64 `json:"weights"`
		StatusFilter string           `json:"statusFilter"`
		GeneratedAt  time.Time        `json:"generatedAt"`
	}

	WorkloadResp struct {
		Workload []WorkloadEntry  `json:"workload"`
		Metadata WorkloadMetadata `json:"metadata"`
	}
)

type workloadRow struct {
	AssigneeID uint
	Priority   model.IssuePriority
	Count      int64
}

// Workload sums open issues per assignee weighted by priority, heaviest
// loaded member first. Unassigned issues are left out, the report is about
// people, and assignees whose account is gone are skipped.
func (r *Reporter) Workload(ctx context.Context, projectIDs []uint) (*WorkloadResp, error) {
	if projectIDs == nil {
		projectIDs = []uint{}
	}

	var rows []workloadRow
	err := r.db.WithContext(ctx).Model(&model.Issue{}).
		Select("assignee_id, priority, count(*) as count").
		Where("project_id IN ?", projectIDs).
		Where("status <> ?", model.IssueStatusDone).
		Where("assignee_id IS NOT NULL").
		Group("assignee_id, priority").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr("Reporter.Workload", err)
	}

	entries := make(map[uint]*WorkloadEntry, len(rows))
	for _, row := range rows {
		entry, ok := entries[row.AssigneeID]
		if !ok {
			entry = &WorkloadEntry{UserID: row.AssigneeID, ByPriority: map[string]int64{}}
			entries[row.AssigneeID] = entry
		}
		entry.TotalIssues += row.Count
		entry.ByPriority[string(row.Priority)] += row.Count
		entry.WorkloadScore += row.Count * workflow.PriorityWeight(row.Priority)
	}

	// 批量补全用户信息，查不到的经办人直接跳过
	var users []model.User
	if len(entries) > 0 {
		err = r.db.WithContext(ctx).Where("id IN ?", lo.Keys(entries)).Find(&users).Error
		if err != nil {
			return nil, wrapErr("Reporter.Workload", err)
		}
	}
	workload := make([]WorkloadEntry, 0, len(users))
	for i := range users {
		entry := entries[users[i].ID]
		entry.UserName = users[i].Name
		entry.UserEmail = users[i].Email
		workload = append(workload, *entry)
	}
	sort.Slice(workload, func(i, j int) bool {
		if workload[i].WorkloadScore != workload[j].WorkloadScore {
			return workload[i].WorkloadScore > workload[j].WorkloadScore
		}
		return workload[i].UserID < workload[j].UserID
	})

	return &WorkloadResp{
		Workload: workload,
		Metadata: WorkloadMetadata{
			ProjectIDs:   projectIDs,
			Weights:      priorityWeights(),
			StatusFilter: "active (non-done)",
			GeneratedAt:  time.Now(),
		},
	}, nil
}

// priorityWeights materializes the weight table for the report metadata.
func priorityWeights() map[string]int64 {
	weights := make(map[string]int64, 5)
	for _, p := range workflow.AllPriorities() {
		weights[string(p)] = workflow.PriorityWeight(p)
	}
	return weights
}
