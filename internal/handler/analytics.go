package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/internal/resputil"
	"github.com/raids-lab/orbit/internal/util"
	"github.com/raids-lab/orbit/pkg/access"
	"github.com/raids-lab/orbit/pkg/apierr"
	"github.com/raids-lab/orbit/pkg/report"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAnalyticsMgr)
}

type AnalyticsMgr struct {
	name     string
	db       *gorm.DB
	reporter report.ReporterInterface
}

func NewAnalyticsMgr(conf *RegisterConfig) Manager {
	return &AnalyticsMgr{
		name:     "analytics",
		db:       conf.DB,
		reporter: report.NewReporter(conf.DB),
	}
}

func (mgr *AnalyticsMgr) GetName() string { return mgr.name }

func (mgr *AnalyticsMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *AnalyticsMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/projects/:id/overview", mgr.GetProjectOverview)
	g.GET("/projects/:id/burndown", mgr.GetProjectBurndown)
	g.GET("/velocity/:userID", mgr.GetUserVelocity)
	g.GET("/team/velocity", mgr.GetTeamVelocity)
	g.GET("/issues/aging", mgr.GetIssuesAging)
	g.GET("/issues/workload", mgr.GetWorkload)
}

func (mgr *AnalyticsMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// getProject resolves the id in the path, reporting 404 before any
// permission check.
func (mgr *AnalyticsMgr) getProject(c *gin.Context) (*model.Project, bool) {
	var req ProjectIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return nil, false
	}
	project := &model.Project{}
	err := mgr.db.WithContext(c).First(project, req.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.HTTPError(c, http.StatusNotFound, "Project not found", resputil.ResourceNotFound)
		return nil, false
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get project failed, detail: %v", err), resputil.NotSpecified)
		return nil, false
	}
	return project, true
}

// GetProjectOverview godoc
// @Summary 获取项目概览报表
// @Description 汇总项目的状态分布、近 30 天完成速率与停滞分桶
// @Tags Analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Success 200 {object} resputil.Response[report.OverviewResp] "项目概览"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Router /v1/analytics/projects/{id}/overview [get]
func (mgr *AnalyticsMgr) GetProjectOverview(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !access.CanViewStats(token.RolePlatform, token.UserID, project) {
		resputil.HTTPError(c, http.StatusForbidden, "Cannot access project reports", resputil.UserNotAllowed)
		return
	}

	overview, err := mgr.reporter.ProjectOverview(c, project)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, overview)
}

type BurndownQueryReq struct {
	Periods int `form:"periods"` // 横轴周期数，默认 10
}

// GetProjectBurndown godoc
// @Summary 获取项目燃尽图
// @Description 生成理想下降线与当前剩余量的对比序列
// @Tags Analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Param periods query int false "周期数"
// @Success 200 {object} resputil.Response[report.BurndownResp] "燃尽图数据"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Router /v1/analytics/projects/{id}/burndown [get]
func (mgr *AnalyticsMgr) GetProjectBurndown(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !access.CanViewStats(token.RolePlatform, token.UserID, project) {
		resputil.HTTPError(c, http.StatusForbidden, "Cannot access project reports", resputil.UserNotAllowed)
		return
	}
	var req BurndownQueryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	burndown, err := mgr.reporter.ProjectBurndown(c, project, req.Periods)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, burndown)
}

type (
	VelocityPathReq struct {
		UserID uint `uri:"userID" binding:"required"`
	}

	VelocityQueryReq struct {
		Weeks int `form:"weeks"` // 统计窗口，默认 4 周
	}
)

// GetUserVelocity godoc
// @Summary 获取用户完成速率
// @Description 统计该用户在时间窗口内完成的 Issue 数，仅本人和管理员可见
// @Tags Analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param userID path int true "用户ID"
// @Param weeks query int false "统计周数"
// @Success 200 {object} resputil.Response[report.VelocityResp] "完成速率"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "用户不存在"
// @Router /v1/analytics/velocity/{userID} [get]
func (mgr *AnalyticsMgr) GetUserVelocity(c *gin.Context) {
	var req VelocityPathReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)
	if !access.CanViewVelocity(token.RolePlatform, token.UserID, req.UserID) {
		resputil.HTTPError(c, http.StatusForbidden, "Cannot view another user's velocity", resputil.UserNotAllowed)
		return
	}
	user := &model.User{}
	err := mgr.db.WithContext(c).First(user, req.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.HTTPError(c, http.StatusNotFound, "User not found", resputil.ResourceNotFound)
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	var query VelocityQueryReq
	if err = c.ShouldBindQuery(&query); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	velocity, err := mgr.reporter.UserVelocity(c, user, query.Weeks)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, velocity)
}

// GetTeamVelocity godoc
// @Summary 获取团队完成速率
// @Description 管理员统计全员，其他用户只统计自己
// @Tags Analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param weeks query int false "统计周数"
// @Success 200 {object} resputil.Response[report.TeamVelocityResp] "团队速率"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/analytics/team/velocity [get]
func (mgr *AnalyticsMgr) GetTeamVelocity(c *gin.Context) {
	var query VelocityQueryReq
	if err := c.ShouldBindQuery(&query); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	var users []model.User
	if token.RolePlatform == model.RoleAdmin {
		if err := mgr.db.WithContext(c).Order("id").Find(&users).Error; err != nil {
			resputil.Error(c, fmt.Sprintf("list users failed, detail: %v", err), resputil.NotSpecified)
			return
		}
	} else {
		// 非管理员只能看到自己的速率
		user := model.User{}
		if err := mgr.db.WithContext(c).First(&user, token.UserID).Error; err != nil {
			resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
			return
		}
		users = []model.User{user}
	}

	velocity, err := mgr.reporter.TeamVelocity(c, users, query.Weeks)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, velocity)
}

type (
	AgingQueryReq struct {
		ProjectIDs string `form:"project_ids"`  // 逗号分隔，缺省为用户的项目
		MaxAgeDays *int   `form:"max_age_days"` // 停滞天数阈值，默认 30
	}

	WorkloadQueryReq struct {
		ProjectIDs string `form:"project_ids"` // 逗号分隔，缺省为用户的项目
	}
)

const defaultMaxAgeDays = 30

// resolveProjectIDs parses the comma separated filter. Without a filter the
// scope is the projects the caller owns or joined, for admins every project.
func (mgr *AnalyticsMgr) resolveProjectIDs(c *gin.Context, token util.JWTMessage, raw string) ([]uint, error) {
	if raw != "" {
		parts := strings.Split(raw, ",")
		ids := make([]uint, 0, len(parts))
		for _, part := range parts {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				return nil, apierr.Invalid("malformed project id %q", part)
			}
			ids = append(ids, uint(id))
		}
		return ids, nil
	}

	query := mgr.db.WithContext(c).Model(&model.Project{})
	if token.RolePlatform != model.RoleAdmin {
		var memberIDs []uint
		err := mgr.db.WithContext(c).Model(&model.UserProject{}).
			Where("user_id = ?", token.UserID).
			Pluck("project_id", &memberIDs).Error
		if err != nil {
			return nil, err
		}
		query = query.Where("owner_id = ? OR id IN ?", token.UserID, memberIDs)
	}
	var ids []uint
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// GetIssuesAging godoc
// @Summary 获取停滞 Issue 报表
// @Description 按状态列出超过阈值未更新的未完成 Issue
// @Tags Analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param project_ids query string false "项目ID列表，逗号分隔"
// @Param max_age_days query int false "停滞天数阈值"
// @Success 200 {object} resputil.Response[report.AgingResp] "停滞报表"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Router /v1/analytics/issues/aging [get]
func (mgr *AnalyticsMgr) GetIssuesAging(c *gin.Context) {
	var req AgingQueryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)
	projectIDs, err := mgr.resolveProjectIDs(c, token, req.ProjectIDs)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	maxAge := defaultMaxAgeDays
	if req.MaxAgeDays != nil {
		maxAge = *req.MaxAgeDays
	}

	aging, err := mgr.reporter.IssuesAging(c, projectIDs, maxAge)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, aging)
}

// GetWorkload godoc
// @Summary 获取负载分布报表
// @Description 按经办人统计未完成 Issue，按优先级加权排序
// @Tags Analytics
// @Accept json
// @Produce json
// @Security Bearer
// @Param project_ids query string false "项目ID列表，逗号分隔"
// @Success 200 {object} resputil.Response[report.WorkloadResp] "负载分布"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Router /v1/analytics/issues/workload [get]
func (mgr *AnalyticsMgr) GetWorkload(c *gin.Context) {
	var req WorkloadQueryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)
	projectIDs, err := mgr.resolveProjectIDs(c, token, req.ProjectIDs)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	workload, err := mgr.reporter.Workload(c, projectIDs)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, workload)
}
