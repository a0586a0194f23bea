// Package workflow defines the issue vocabulary: which strings are valid
// types, statuses and priorities, which status transitions are allowed, and
// the derived orderings the board and the reports use.
package workflow

import (
	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/apierr"
)

// AllStatuses is in board column order.
func AllStatuses() []model.IssueStatus {
	return []model.IssueStatus{
		model.IssueStatusBacklog,
		model.IssueStatusTodo,
		model.IssueStatusInProgress,
		model.IssueStatusDone,
	}
}

// AllPriorities is ordered most urgent first.
func AllPriorities() []model.IssuePriority {
	return []model.IssuePriority{
		model.PriorityHighest,
		model.PriorityHigh,
		model.PriorityMedium,
		model.PriorityLow,
		model.PriorityLowest,
	}
}

func DefaultType() model.IssueType {
	return model.IssueTypeTask
}

func DefaultPriority() model.IssuePriority {
	return model.PriorityMedium
}

func ParseStatus(s string) (model.IssueStatus, error) {
	switch status := model.IssueStatus(s); status {
	case model.IssueStatusBacklog, model.IssueStatusTodo,
		model.IssueStatusInProgress, model.IssueStatusDone:
		return status, nil
	default:
		return "", apierr.Invalid("unknown issue status %q", s)
	}
}

func ParseType(s string) (model.IssueType, error) {
	switch t := model.IssueType(s); t {
	case model.IssueTypeBug, model.IssueTypeTask,
		model.IssueTypeStory, model.IssueTypeEpic:
		return t, nil
	default:
		return "", apierr.Invalid("unknown issue type %q", s)
	}
}

func ParsePriority(s string) (model.IssuePriority, error) {
	switch p := model.IssuePriority(s); p {
	case model.PriorityHighest, model.PriorityHigh, model.PriorityMedium,
		model.PriorityLow, model.PriorityLowest:
		return p, nil
	default:
		return "", apierr.Invalid("unknown issue priority %q", s)
	}
}

// CanTransition permits every move between defined statuses. The board
// drags cards in both directions, so there is deliberately no forward-only
// restriction here, and reopening a done issue is an ordinary move.
func CanTransition(from, to model.IssueStatus) bool {
	return isDefined(from) && isDefined(to)
}

func isDefined(s model.IssueStatus) bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// PriorityWeight scores a priority for workload reports. Unknown values
// count as 1 so a stray row never zeroes out an assignee.
func PriorityWeight(p model.IssuePriority) int64 {
	switch p {
	case model.PriorityHighest:
		return 4
	case model.PriorityHigh:
		return 3
	case model.PriorityMedium:
		return 2
	case model.PriorityLow:
		return 1
	case model.PriorityLowest:
		return 0
	default:
		return 1
	}
}

// PriorityRank orders priorities for the board, most urgent first.
func PriorityRank(p model.IssuePriority) int {
	switch p {
	case model.PriorityHighest:
		return 1
	case model.PriorityHigh:
		return 2
	case model.PriorityMedium:
		return 3
	case model.PriorityLow:
		return 4
	case model.PriorityLowest:
		return 5
	default:
		return 6
	}
}

type AgeBucket string

const (
	AgeFresh   AgeBucket = "fresh"   // updated within a day
	AgeNormal  AgeBucket = "normal"  // within three days
	AgeAging   AgeBucket = "aging"   // within a week
	AgeStalled AgeBucket = "stalled" // more than a week
)

// BucketForAge maps days-since-update onto the report buckets, with
// thresholds at one, three and seven days.
func BucketForAge(days int) AgeBucket {
	switch {
	case days <= 1:
		return AgeFresh
	case days <= 3:
		return AgeNormal
	case days <= 7:
		return AgeAging
	default:
		return AgeStalled
	}
}
