package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIssueKey(t *testing.T) {
	assert.Equal(t, "ORBIT-42", FormatIssueKey("ORBIT", 42))
	assert.Equal(t, "A-1", FormatIssueKey("A", 1))
}

func TestIssueKey(t *testing.T) {
	issue := &Issue{Project: Project{Key: "APP"}, Number: 7}
	assert.Equal(t, "APP-7", issue.Key())
}

func TestParseIssueKey(t *testing.T) {
	tests := []struct {
		key     string
		project string
		number  uint
	}{
		{"ORBIT-42", "ORBIT", 42},
		{"orbit-42", "ORBIT", 42}, // 项目前缀大小写不敏感
		{"A-1", "A", 1},
		{"X2-10", "X2", 10},
	}
	for _, tt := range tests {
		project, number, err := ParseIssueKey(tt.key)
		require.NoError(t, err, "key %q", tt.key)
		assert.Equal(t, tt.project, project)
		assert.Equal(t, tt.number, number)
	}
}

func TestParseIssueKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{
		"",
		"ORBIT",
		"ORBIT-",
		"-42",
		"ORBIT-0",
		"ORBIT-abc",
		"ORBIT--1",
		"ORBIT-1.5",
	} {
		_, _, err := ParseIssueKey(key)
		assert.Error(t, err, "key %q should be rejected", key)
	}
}

func TestNormalizeProjectKey(t *testing.T) {
	assert.Equal(t, "ORBIT", NormalizeProjectKey("  orbit "))
	assert.Equal(t, "APP2", NormalizeProjectKey("App2"))
	assert.Equal(t, "", NormalizeProjectKey("   "))
}

func TestValidateProjectKey(t *testing.T) {
	for _, key := range []string{"A", "ORBIT", "X2", "ABCDEFGHIJ"} {
		assert.NoError(t, ValidateProjectKey(key), "key %q", key)
	}

	for _, key := range []string{
		"",
		"ABCDEFGHIJK", // 超出长度上限
		"orbit",       // 必须先归一化为大写
		"OR-BIT",
		"OR BIT",
		"ORBIT!",
	} {
		assert.Error(t, ValidateProjectKey(key), "key %q should be rejected", key)
	}
}
