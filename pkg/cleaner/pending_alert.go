package cleaner

import (
	"context"
	"errors"
	"time"

	"github.com/raids-lab/orbit/pkg/alert"
)

type RetryPendingAlertsRequest struct {
	OlderThanMinutes int `json:"olderThanMinutes" binding:"required"`
}

// RetryPendingAlerts 将滞留在 pending 状态的通知重新放回发送队列。
// 通知入队后如果进程重启或队列溢出，数据库里会留下 pending 记录，
// 这个任务负责兜底重投。
func RetryPendingAlerts(c context.Context, _ *Clients, req *RetryPendingAlertsRequest) (map[string]int, error) {
	if req == nil {
		err := errors.New("invalid request")
		return nil, err
	}

	requeued, err := alert.RequeuePending(c, time.Duration(req.OlderThanMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	ret := map[string]int{
		"requeued": requeued,
	}
	return ret, nil
}
