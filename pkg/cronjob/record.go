package cronjob

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
)

const (
	MAX_GO_ROUTINE_NUM = 10
)

// GetCronjobNames 返回库里出现过的全部任务名，供管理端过滤器使用
func (cm *CronJobManager) GetCronjobNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	err := cm.DB.WithContext(ctx).
		Model(&model.CronJobConfig{}).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		err = fmt.Errorf("CronJobManager.GetCronjobNames: %w", err)
		klog.Error(err)
		return nil, err
	}
	return names, nil
}

// GetCronjobRecordTimeRange 返回全部执行记录覆盖的时间范围，
// 两端各放宽一天，方便前端直接作为时间选择器的边界
func (cm *CronJobManager) GetCronjobRecordTimeRange(ctx context.Context) (startTime, endTime time.Time, err error) {
	var result struct {
		StartTime time.Time
		EndTime   time.Time
	}
	err = cm.DB.WithContext(ctx).
		Model(&model.CronJobRecord{}).
		Select("min(execute_time) as start_time", "max(execute_time) as end_time").
		Scan(&result).
		Error
	if err != nil {
		err = fmt.Errorf("CronJobManager.GetCronjobRecordTimeRange: %w", err)
		klog.Error(err)
		return time.Time{}, time.Time{}, err
	}
	startTime = result.StartTime.AddDate(0, 0, -1)
	endTime = result.EndTime.AddDate(0, 0, 1)

	return startTime, endTime, nil
}

// recordFilter applies the shared record filters on a gorm query
func (cm *CronJobManager) recordFilter(
	tx *gorm.DB,
	names []string,
	startTime *time.Time,
	endTime *time.Time,
	status *string,
) *gorm.DB {
	if len(names) > 0 {
		tx = tx.Where("name IN ?", names)
	}
	if startTime != nil {
		tx = tx.Where("execute_time >= ?", *startTime)
	}
	if endTime != nil {
		tx = tx.Where("execute_time <= ?", *endTime)
	}
	if status != nil {
		tx = tx.Where("status = ?", *status)
	}
	return tx
}

// GetCronjobRecords 按过滤条件取执行记录，行数和总数并行查询，
// 结果按执行时间倒序
func (cm *CronJobManager) GetCronjobRecords(
	ctx context.Context,
	names []string,
	startTime *time.Time,
	endTime *time.Time,
	status *string,
) (records []*model.CronJobRecord, total int64, err error) {
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(MAX_GO_ROUTINE_NUM)

	g.Go(func() error {
		tx := cm.recordFilter(cm.DB.WithContext(groupCtx), names, startTime, endTime, status)
		return tx.Order("execute_time DESC").Find(&records).Error
	})

	g.Go(func() error {
		tx := cm.recordFilter(cm.DB.WithContext(groupCtx), names, startTime, endTime, status)
		return tx.Model(&model.CronJobRecord{}).Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		err = fmt.Errorf("CronJobManager.GetCronjobRecords: %w", err)
		klog.Error(err)
		return nil, 0, err
	}

	return records, total, nil
}

// DeleteCronjobRecords 按ID集合或时间范围删除执行记录，返回删除行数
func (cm *CronJobManager) DeleteCronjobRecords(
	ctx context.Context,
	ids []uint,
	startTime *time.Time,
	endTime *time.Time,
) (int64, error) {
	tx := cm.DB.WithContext(ctx)
	if len(ids) > 0 {
		tx = tx.Where("id IN ?", ids)
	}
	if startTime != nil {
		tx = tx.Where("execute_time >= ?", *startTime)
	}
	if endTime != nil {
		tx = tx.Where("execute_time <= ?", *endTime)
	}

	res := tx.Delete(&model.CronJobRecord{})
	if res.Error != nil {
		err := fmt.Errorf("CronJobManager.DeleteCronjobRecords: %w", res.Error)
		klog.Error(err)
		return 0, err
	}
	return res.RowsAffected, nil
}
