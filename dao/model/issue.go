package model

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type IssueType string

const (
	IssueTypeBug   IssueType = "bug"
	IssueTypeTask  IssueType = "task"
	IssueTypeStory IssueType = "story"
	IssueTypeEpic  IssueType = "epic"
)

type IssueStatus string

const (
	IssueStatusBacklog    IssueStatus = "backlog"     // Not yet started
	IssueStatusTodo       IssueStatus = "to_do"       // Ready to work on
	IssueStatusInProgress IssueStatus = "in_progress" // Currently being worked
	IssueStatusDone       IssueStatus = "done"        // Completed
)

type IssuePriority string

const (
	PriorityHighest IssuePriority = "highest"
	PriorityHigh    IssuePriority = "high"
	PriorityMedium  IssuePriority = "medium"
	PriorityLow     IssuePriority = "low"
	PriorityLowest  IssuePriority = "lowest"
)

type Issue struct {
	gorm.Model
	ProjectID uint `gorm:"uniqueIndex:idx_project_number;not null;comment:所属项目"`
	Project   Project
	// Number is assigned from the project counter at creation time and
	// never changes afterwards.
	Number      uint          `gorm:"uniqueIndex:idx_project_number;not null;comment:项目内编号"`
	Title       string        `gorm:"type:varchar(256);not null;comment:标题"`
	Description string        `gorm:"type:text;comment:描述"`
	Type        IssueType     `gorm:"type:varchar(16);not null;default:task;comment:类型"`
	Status      IssueStatus   `gorm:"type:varchar(16);index;not null;default:backlog;comment:状态"`
	Priority    IssuePriority `gorm:"type:varchar(16);not null;default:medium;comment:优先级"`
	ReporterID  uint          `gorm:"index;not null;comment:报告人"`
	Reporter    User
	AssigneeID  *uint `gorm:"index;comment:经办人"`
	Assignee    *User
}

// Key renders the display key, e.g. "ORBIT-42". The project relation must
// already be resolved; callers go through the lifecycle controller, which
// always preloads it.
func (i *Issue) Key() string {
	return FormatIssueKey(i.Project.Key, i.Number)
}

func FormatIssueKey(projectKey string, number uint) string {
	return fmt.Sprintf("%s-%d", projectKey, number)
}

// ParseIssueKey splits "proj-12" into ("PROJ", 12). The project part is
// matched case-insensitively, the number must be a positive integer.
func ParseIssueKey(key string) (string, uint, error) {
	idx := strings.LastIndex(key, "-")
	if idx <= 0 || idx == len(key)-1 {
		return "", 0, fmt.Errorf("malformed issue key %q", key)
	}
	number, err := strconv.ParseUint(key[idx+1:], 10, 32)
	if err != nil || number == 0 {
		return "", 0, fmt.Errorf("malformed issue number in key %q", key)
	}
	return NormalizeProjectKey(key[:idx]), uint(number), nil
}
