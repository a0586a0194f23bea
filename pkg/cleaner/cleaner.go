package cleaner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/dao/query"
	"github.com/raids-lab/orbit/pkg/alert"
)

const (
	REMIND_STALE_ISSUE_JOB  = "remind-stale-issue-job"
	RETRY_PENDING_ALERT_JOB = "retry-pending-alert-job"
	CLEAN_CRON_RECORD_JOB   = "clean-cron-record-job"
)

// Clients 包含维护任务所需的所有客户端
type Clients struct {
	DB    *gorm.DB
	Alert alert.AlertInterface
}

// CleanerFunc 定义维护函数的类型
type CleanerFunc func(ctx context.Context) (any, error)

// GetCleanerFunc 根据作业名称返回对应的维护函数
func GetCleanerFunc(jobName string, clients *Clients, jobConfig datatypes.JSON) (CleanerFunc, error) {
	switch jobName {
	case REMIND_STALE_ISSUE_JOB:
		req := &RemindStaleIssuesRequest{}
		if err := json.Unmarshal(jobConfig, req); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (any, error) {
			return RemindStaleIssues(ctx, clients, req)
		}, nil

	case RETRY_PENDING_ALERT_JOB:
		req := &RetryPendingAlertsRequest{}
		if err := json.Unmarshal(jobConfig, req); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (any, error) {
			return RetryPendingAlerts(ctx, clients, req)
		}, nil

	case CLEAN_CRON_RECORD_JOB:
		req := &CleanCronRecordsRequest{}
		if err := json.Unmarshal(jobConfig, req); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (any, error) {
			return CleanCronRecords(ctx, clients, req)
		}, nil

	default:
		return nil, fmt.Errorf("unsupported cleaner job name: %s", jobName)
	}
}

// GetWrapCleanerFunc 获取并封装维护函数（GetCleanerFunc + WrapCleanerFunc 的组合）
func GetWrapCleanerFunc(jobName string, clients *Clients, jobConfig datatypes.JSON) (func(), error) {
	cleanerFunc, err := GetCleanerFunc(jobName, clients, jobConfig)
	if err != nil {
		return nil, err
	}
	return WrapCleanerFunc(jobName, cleanerFunc), nil
}

// WrapCleanerFunc 封装维护函数，添加通用的错误处理和记录逻辑
func WrapCleanerFunc(jobName string, cleanerFunc CleanerFunc) func() {
	return func() {
		ctx := context.Background()
		// 执行维护函数
		jobResult, err := cleanerFunc(ctx)
		status := model.CronJobRecordStatusSuccess
		if err != nil {
			status = model.CronJobRecordStatusFailed
			klog.Errorf("CleanerFunc %s failed: %v", jobName, err)
		}

		// 创建作业记录
		rec := &model.CronJobRecord{
			Name:        jobName,
			ExecuteTime: time.Now(),
			Message:     "",
			Status:      status,
		}

		// 将结果序列化为JSON
		if jobResult != nil {
			if data, err := json.Marshal(jobResult); err != nil {
				klog.Errorf("WrapCleanerFunc failed to marshal job result: %v", err)
			} else {
				rec.JobData = datatypes.JSON(data)
			}
		}

		// 保存记录到数据库
		db := query.GetDB()
		if err := db.Model(rec).Create(rec).Error; err != nil {
			klog.Errorf("WrapCleanerFunc failed to create record: %v", err)
		}
	}
}
