package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/apierr"
)

func TestParseStatus(t *testing.T) {
	for _, status := range AllStatuses() {
		parsed, err := ParseStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	for _, raw := range []string{"", "todo", "TO_DO", "closed", "in progress"} {
		_, err := ParseStatus(raw)
		require.Error(t, err, "status %q should be rejected", raw)
		assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
	}
}

func TestParseType(t *testing.T) {
	for _, raw := range []string{"bug", "task", "story", "epic"} {
		parsed, err := ParseType(raw)
		require.NoError(t, err)
		assert.Equal(t, model.IssueType(raw), parsed)
	}

	_, err := ParseType("feature")
	require.Error(t, err)
	assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
}

func TestParsePriority(t *testing.T) {
	for _, priority := range AllPriorities() {
		parsed, err := ParsePriority(string(priority))
		require.NoError(t, err)
		assert.Equal(t, priority, parsed)
	}

	_, err := ParsePriority("urgent")
	require.Error(t, err)
	assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
}

func TestCanTransition(t *testing.T) {
	statuses := AllStatuses()
	// 看板支持任意方向拖拽，所有已定义状态间的移动都允许
	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, CanTransition(model.IssueStatusDone, "archived"))
	assert.False(t, CanTransition("unknown", model.IssueStatusTodo))
	assert.False(t, CanTransition("", ""))
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, model.IssueTypeTask, DefaultType())
	assert.Equal(t, model.PriorityMedium, DefaultPriority())
}

func TestPriorityWeight(t *testing.T) {
	tests := []struct {
		priority model.IssuePriority
		weight   int64
	}{
		{model.PriorityHighest, 4},
		{model.PriorityHigh, 3},
		{model.PriorityMedium, 2},
		{model.PriorityLow, 1},
		{model.PriorityLowest, 0},
		{"unknown", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.weight, PriorityWeight(tt.priority), "priority %s", tt.priority)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	priorities := AllPriorities()
	for i := 1; i < len(priorities); i++ {
		assert.Less(t, PriorityRank(priorities[i-1]), PriorityRank(priorities[i]),
			"%s should sort before %s", priorities[i-1], priorities[i])
	}
	// 未知优先级排在所有已定义值之后
	assert.Greater(t, PriorityRank("unknown"), PriorityRank(model.PriorityLowest))
}

func TestBucketForAge(t *testing.T) {
	tests := []struct {
		days   int
		bucket AgeBucket
	}{
		{0, AgeFresh},
		{1, AgeFresh},
		{2, AgeNormal},
		{3, AgeNormal},
		{4, AgeAging},
		{7, AgeAging},
		{8, AgeStalled},
		{365, AgeStalled},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bucket, BucketForAge(tt.days), "age %d days", tt.days)
	}
}
