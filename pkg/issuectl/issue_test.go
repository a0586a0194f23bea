package issuectl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/orbit/pkg/apierr"
	"github.com/raids-lab/orbit/pkg/util"
)

// 以下用例仅覆盖入库前的参数校验路径，不会触达数据库

func TestCreateRejectsBlankTitle(t *testing.T) {
	ctrl := NewIssueController(nil, nil)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := ctrl.Create(context.Background(), &CreateRequest{
			ProjectID: 1,
			Title:     title,
		})
		require.Error(t, err, "title %q should be rejected", title)
		assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	ctrl := NewIssueController(nil, nil)

	_, err := ctrl.Create(context.Background(), &CreateRequest{
		ProjectID: 1,
		Title:     "broken build",
		Type:      "feature",
	})
	require.Error(t, err)
	assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
}

func TestCreateRejectsUnknownPriority(t *testing.T) {
	ctrl := NewIssueController(nil, nil)

	_, err := ctrl.Create(context.Background(), &CreateRequest{
		ProjectID: 1,
		Title:     "broken build",
		Priority:  "urgent",
	})
	require.Error(t, err)
	assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	ctrl := NewIssueController(nil, nil)

	_, err := ctrl.Transition(context.Background(), 1, "closed")
	require.Error(t, err)
	assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
}

func TestGetByKeyRejectsMalformedKey(t *testing.T) {
	ctrl := NewIssueController(nil, nil)

	for _, key := range []string{"", "ORBIT", "ORBIT-", "ORBIT-0", "-42"} {
		_, err := ctrl.GetByKey(context.Background(), key)
		require.Error(t, err, "key %q should be rejected", key)
		assert.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	ctrl := &IssueController{events: make(chan util.IssueEvent, 1)}

	ctrl.publish(util.IssueEvent{IssueID: 1, Operation: util.CreateIssue})
	// 队列已满时事件被丢弃而不是阻塞写入方
	ctrl.publish(util.IssueEvent{IssueID: 2, Operation: util.CreateIssue})

	event := <-ctrl.events
	assert.Equal(t, uint(1), event.IssueID)
	select {
	case extra := <-ctrl.events:
		t.Fatalf("unexpected extra event for issue %d", extra.IssueID)
	default:
	}
}
