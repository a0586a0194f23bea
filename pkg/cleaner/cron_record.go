package cleaner

import (
	"context"
	"errors"
	"time"

	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
)

type CleanCronRecordsRequest struct {
	KeepDays int `json:"keepDays" binding:"required"`
}

// CleanCronRecords 清理过期的定时任务执行记录和已发送的历史通知，
// 避免这两张表无限增长。
func CleanCronRecords(c context.Context, clients *Clients, req *CleanCronRecordsRequest) (map[string]int64, error) {
	if req == nil {
		err := errors.New("invalid request")
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -req.KeepDays)

	records := clients.DB.WithContext(c).
		Unscoped().
		Where("execute_time < ?", cutoff).
		Delete(&model.CronJobRecord{})
	if records.Error != nil {
		klog.Errorf("Failed to delete cron job records: %v", records.Error)
		return nil, records.Error
	}

	// 已经投递成功的通知没有保留价值，失败的保留下来便于排查
	notifications := clients.DB.WithContext(c).
		Unscoped().
		Where("status = ?", model.NotifyStatusSent).
		Where("sent_at < ?", cutoff).
		Delete(&model.Notification{})
	if notifications.Error != nil {
		klog.Errorf("Failed to delete sent notifications: %v", notifications.Error)
		return nil, notifications.Error
	}

	ret := map[string]int64{
		"deletedRecords":       records.RowsAffected,
		"deletedNotifications": notifications.RowsAffected,
	}
	return ret, nil
}
