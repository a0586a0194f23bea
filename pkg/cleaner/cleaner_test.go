package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGetCleanerFuncKnownJobs(t *testing.T) {
	clients := &Clients{}

	tests := []struct {
		jobName string
		config  string
	}{
		{REMIND_STALE_ISSUE_JOB, `{"staleDays": 7}`},
		{RETRY_PENDING_ALERT_JOB, `{"olderThanMinutes": 30}`},
		{CLEAN_CRON_RECORD_JOB, `{"keepDays": 30}`},
	}
	for _, tt := range tests {
		t.Run(tt.jobName, func(t *testing.T) {
			fn, err := GetCleanerFunc(tt.jobName, clients, datatypes.JSON(tt.config))
			require.NoError(t, err)
			assert.NotNil(t, fn)
		})
	}
}

func TestGetCleanerFuncUnknownJob(t *testing.T) {
	fn, err := GetCleanerFunc("no-such-job", &Clients{}, datatypes.JSON(`{}`))
	require.Error(t, err)
	assert.Nil(t, fn)
}

func TestGetCleanerFuncBadConfig(t *testing.T) {
	fn, err := GetCleanerFunc(REMIND_STALE_ISSUE_JOB, &Clients{}, datatypes.JSON(`{"staleDays": "seven"}`))
	require.Error(t, err)
	assert.Nil(t, fn)
}
