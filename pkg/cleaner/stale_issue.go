package cleaner

import (
	"context"
	"errors"
	"time"

	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
)

type RemindStaleIssuesRequest struct {
	StaleDays int `json:"staleDays" binding:"required"`
}

// RemindStaleIssues 对长期无更新的进行中 Issue 发送提醒
func RemindStaleIssues(c context.Context, clients *Clients, req *RemindStaleIssuesRequest) (map[string][]string, error) {
	if req == nil {
		err := errors.New("invalid request")
		return nil, err
	}
	reminded := remindUntouchedIssues(c, clients, req.StaleDays)
	ret := map[string][]string{
		"reminded": reminded,
	}
	return ret, nil
}

func remindUntouchedIssues(c context.Context, clients *Clients, staleDays int) []string {
	var issues []model.Issue
	err := clients.DB.WithContext(c).
		Preload("Project").
		Where("status = ?", model.IssueStatusInProgress).
		Where("assignee_id IS NOT NULL").
		Where("updated_at < ?", time.Now().AddDate(0, 0, -staleDays)).
		Find(&issues).Error
	if err != nil {
		klog.Errorf("Failed to get stale issues: %v", err)
		return nil
	}

	reminded := []string{}
	for i := range issues {
		issue := &issues[i]
		// 归档项目的 Issue 不再提醒
		if issue.Project.Status != model.ProjectActive {
			continue
		}

		if err := clients.Alert.StaleIssueReminder(c, issue, staleDays); err != nil {
			klog.Errorf("Failed to remind issue %s: %v", issue.Key(), err)
			continue
		}

		reminded = append(reminded, issue.Key())
	}

	return reminded
}
