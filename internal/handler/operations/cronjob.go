package operations

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/internal/resputil"
)

type CronjobConfigs struct {
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Schedule string         `json:"schedule"`
	Suspend  bool           `json:"suspend"`
	Configs  map[string]any `json:"configs"`
}

// UpdateCronjobConfig godoc
// @Summary 更新定时任务配置
// @Description 更新单个定时任务的调度与参数，暂停或恢复任务
// @Tags Operations
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body CronjobConfigs true "定时任务配置"
// @Success 200 {object} resputil.Response[any] "更新成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/operations/cronjob [put]
func (mgr *OperationsMgr) UpdateCronjobConfig(c *gin.Context) {
	var req CronjobConfigs
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	var (
		jobTypePtr *model.CronJobType
		specPtr    *string
		configPtr  *string
	)
	if req.Type != "" {
		jobTypePtr = ptr.To(model.CronJobType(req.Type))
	}
	if req.Schedule != "" {
		specPtr = ptr.To(req.Schedule)
	}

	if len(req.Configs) > 0 {
		configJson, err := json.Marshal(req.Configs)
		if err != nil {
			resputil.Error(c, err.Error(), resputil.NotSpecified)
			return
		}
		configPtr = ptr.To(string(configJson))
	}
	if err := mgr.cronJobManager.UpdateJobConfig(c, req.Name, jobTypePtr, specPtr, &req.Suspend, configPtr); err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, "Successfully update cronjob config")
}

// GetCronjobConfigs godoc
// @Summary 获取定时任务配置
// @Description 获取全部定时任务的配置
// @Tags Operations
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[any] "定时任务配置列表"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/operations/cronjob [get]
func (mgr *OperationsMgr) GetCronjobConfigs(c *gin.Context) {
	jobs, err := mgr.cronJobManager.GetAllCronJobs(c)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	configs := lo.Map(jobs, func(job *model.CronJobConfig, _ int) CronjobConfigs {
		config := make(map[string]any)
		if err := json.Unmarshal(job.Config, &config); err != nil {
			config = map[string]any{}
		}
		ret := CronjobConfigs{
			Name:     job.Name,
			Type:     string(job.Type),
			Schedule: job.Spec,
			Suspend:  job.GetSuspend(),
			Configs:  config,
		}
		return ret
	})
	resputil.Success(c, configs)
}

// GetCronjobNames godoc
// @Summary 获取定时任务名称
// @Description 获取全部定时任务的名称，用于记录筛选
// @Tags Operations
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[any] "定时任务名称列表"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/operations/cronjob/name [get]
func (mgr *OperationsMgr) GetCronjobNames(c *gin.Context) {
	names, err := mgr.cronJobManager.GetCronjobNames(c)
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, names)
}

// GetCronjobRecordTimeRange godoc
// @Summary 获取执行记录时间范围
// @Description 获取定时任务执行记录的最早和最晚时间
// @Tags Operations
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[any] "时间范围"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/operations/cronjob/record/timerange [get]
func (mgr *OperationsMgr) GetCronjobRecordTimeRange(c *gin.Context) {
	startTime, endTime, err := mgr.cronJobManager.GetCronjobRecordTimeRange(c)
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, map[string]any{
		"startTime": startTime,
		"endTime":   endTime,
	})
}

type GetCronJobRecordsReq struct {
	Name      []string   `json:"name" form:"name"`
	StartTime *time.Time `json:"startTime" form:"startTime"`
	EndTime   *time.Time `json:"endTime" form:"endTime"`
	Status    *string    `json:"status" form:"status"`
}

// GetCronjobRecords godoc
// @Summary 查询执行记录
// @Description 按名称、时间范围和状态查询定时任务执行记录
// @Tags Operations
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body GetCronJobRecordsReq true "筛选条件"
// @Success 200 {object} resputil.Response[any] "执行记录与总数"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/operations/cronjob/record [post]
func (cm *OperationsMgr) GetCronjobRecords(c *gin.Context) {
	req := &GetCronJobRecordsReq{}
	if err := c.ShouldBindJSON(req); err != nil {
		klog.Error(err)
		resputil.BadRequestError(c, err.Error())
		return
	}

	records, total, err := cm.cronJobManager.GetCronjobRecords(
		c,
		req.Name,
		req.StartTime,
		req.EndTime,
		req.Status,
	)
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}

	resputil.Success(c, map[string]any{
		"records": records,
		"total":   total,
	})
}

type DeleteCronJobRecordsReq struct {
	ID        []uint     `json:"id"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// DeleteCronjobRecords godoc
// @Summary 删除执行记录
// @Description 按 ID 或时间范围删除定时任务执行记录
// @Tags Operations
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body DeleteCronJobRecordsReq true "删除条件"
// @Success 200 {object} resputil.Response[any] "删除数量"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/operations/cronjob/record [delete]
func (cm *OperationsMgr) DeleteCronjobRecords(c *gin.Context) {
	req := &DeleteCronJobRecordsReq{}
	if err := c.ShouldBindJSON(req); err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.InvalidRequest)
		return
	}

	if len(req.ID) == 0 && req.StartTime == nil && req.EndTime == nil {
		resputil.Error(c, "id or startTime or endTime is required", resputil.InvalidRequest)
		return
	}

	deleted, err := cm.cronJobManager.DeleteCronjobRecords(c, req.ID, req.StartTime, req.EndTime)
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}

	resputil.Success(c, map[string]string{
		"deleted": fmt.Sprintf("%d", deleted),
	})
}
