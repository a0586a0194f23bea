package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/internal/payload"
	"github.com/raids-lab/orbit/internal/resputil"
	"github.com/raids-lab/orbit/internal/util"
	"github.com/raids-lab/orbit/pkg/access"
	"github.com/raids-lab/orbit/pkg/issuectl"
	"github.com/raids-lab/orbit/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewIssueMgr)
}

type IssueMgr struct {
	name      string
	db        *gorm.DB
	checker   *access.Checker
	issueCtrl issuectl.IssueControllerInterface
}

func NewIssueMgr(conf *RegisterConfig) Manager {
	return &IssueMgr{
		name:      "issues",
		db:        conf.DB,
		checker:   conf.Checker,
		issueCtrl: conf.IssueCtrl,
	}
}

func (mgr *IssueMgr) GetName() string { return mgr.name }

func (mgr *IssueMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *IssueMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListIssue)
	g.POST("", mgr.CreateIssue)
	g.GET("/key/:key", mgr.GetIssueByKey) // 通过展示键查询，如 ORBIT-42
	g.GET("/:id", mgr.GetIssue)
	g.PUT("/:id", mgr.UpdateIssue)
	g.DELETE("/:id", mgr.DeleteIssue)
	g.POST("/:id/transition", mgr.TransitionIssue)
}

func (mgr *IssueMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	IssueIDReq struct {
		ID uint `uri:"id" binding:"required"`
	}

	IssueResp struct {
		ID          uint                 `json:"id"`
		Key         string               `json:"key"` // 展示键，如 ORBIT-42
		Number      uint                 `json:"number"`
		Title       string               `json:"title"`
		Description string               `json:"description,omitempty"`
		Type        model.IssueType      `json:"type"`
		Status      model.IssueStatus    `json:"status"`
		Priority    model.IssuePriority  `json:"priority"`
		Project     payload.ProjectBrief `json:"project"`
		Reporter    payload.UserBrief    `json:"reporter"`
		Assignee    *payload.UserBrief   `json:"assignee,omitempty"`
		CreatedAt   time.Time            `json:"createdAt"`
		UpdatedAt   time.Time            `json:"updatedAt"`
	}

	// Swagger 不支持范型嵌套，定义别名
	IssueListResp payload.ListResp[IssueResp]
)

func toIssueResp(issue *model.Issue) IssueResp {
	resp := IssueResp{
		ID:          issue.ID,
		Key:         issue.Key(),
		Number:      issue.Number,
		Title:       issue.Title,
		Description: issue.Description,
		Type:        issue.Type,
		Status:      issue.Status,
		Priority:    issue.Priority,
		Project: payload.ProjectBrief{
			ID:   issue.Project.ID,
			Name: issue.Project.Name,
			Key:  issue.Project.Key,
		},
		Reporter: payload.UserBrief{
			ID:       issue.Reporter.ID,
			Name:     issue.Reporter.Name,
			Nickname: issue.Reporter.Nickname,
		},
		CreatedAt: issue.CreatedAt,
		UpdatedAt: issue.UpdatedAt,
	}
	if issue.Assignee != nil {
		resp.Assignee = &payload.UserBrief{
			ID:       issue.Assignee.ID,
			Name:     issue.Assignee.Name,
			Nickname: issue.Assignee.Nickname,
		}
	}
	return resp
}

// requireIssueView loads the issue and checks that the caller may see its
// project.
func (mgr *IssueMgr) requireIssueView(c *gin.Context, id uint) (*model.Issue, error) {
	issue, err := mgr.issueCtrl.Get(c, id)
	if err != nil {
		return nil, err
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, &issue.Project); err != nil {
		return nil, err
	}
	return issue, nil
}

type IssueListReq struct {
	PageIndex  *int    `form:"page_index"`
	PageSize   *int    `form:"page_size"`
	ProjectID  *uint   `form:"project_id"`
	AssigneeID *uint   `form:"assignee_id"`
	ReporterID *uint   `form:"reporter_id"`
	Status     *string `form:"status"`
	Type       *string `form:"type"`
}

// ListIssue godoc
// @Summary 列出 Issue
// @Description 分页列出 Issue，支持按项目、经办人、报告人、状态和类型过滤，最近活跃的排在前面
// @Tags Issue
// @Accept json
// @Produce json
// @Security Bearer
// @Param query query IssueListReq false "分页与过滤参数"
// @Success 200 {object} resputil.Response[IssueListResp] "Issue 列表"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有项目访问权限"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/issues [get]
func (mgr *IssueMgr) ListIssue(c *gin.Context) {
	var req IssueListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	token := util.GetToken(c)
	if req.ProjectID != nil {
		project := &model.Project{}
		err := mgr.db.WithContext(c).First(project, *req.ProjectID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "Project not found", resputil.ResourceNotFound)
			return
		}
		if err != nil {
			resputil.Error(c, fmt.Sprintf("get project failed, detail: %v", err), resputil.NotSpecified)
			return
		}
		if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, project); err != nil {
			resputil.WrapServiceError(c, err)
			return
		}
	}

	filter := &issuectl.ListFilter{
		ProjectID:  req.ProjectID,
		AssigneeID: req.AssigneeID,
		ReporterID: req.ReporterID,
		Status:     req.Status,
		Type:       req.Type,
	}
	if req.PageSize != nil {
		filter.Limit = *req.PageSize
	}
	if req.PageIndex != nil && req.PageSize != nil {
		filter.Offset = (*req.PageIndex) * (*req.PageSize)
	}
	// 未指定项目时，非管理员只能看到自己可访问项目下的 Issue
	if req.ProjectID == nil && token.RolePlatform != model.RoleAdmin {
		ids, unrestricted, err := mgr.checker.AccessibleProjectIDs(c, token.UserID)
		if err != nil {
			resputil.Error(c, fmt.Sprintf("list issues failed, detail: %v", err), resputil.NotSpecified)
			return
		}
		if !unrestricted {
			filter.ProjectIDs = ids
		}
	}

	issues, total, err := mgr.issueCtrl.List(c, filter)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	rows := make([]IssueResp, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, toIssueResp(issue))
	}
	resputil.Success(c, IssueListResp{Rows: rows, Count: total})
}

type IssueCreateReq struct {
	ProjectID   uint   `json:"projectID" binding:"required"`
	Title       string `json:"title" binding:"required,max=256"`
	Description string `json:"description"`
	Type        string `json:"type"`     // bug/task/story/epic，默认 task
	Priority    string `json:"priority"` // highest/high/medium/low/lowest，默认 medium
	AssigneeID  *uint  `json:"assigneeID"`
}

// CreateIssue godoc
// @Summary 创建 Issue
// @Description 在项目内创建 Issue，编号由项目计数器分配，当前用户自动成为报告人
// @Tags Issue
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body IssueCreateReq true "Issue 信息"
// @Success 201 {object} resputil.Response[IssueResp] "成功创建 Issue"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有项目访问权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Router /v1/issues [post]
func (mgr *IssueMgr) CreateIssue(c *gin.Context) {
	var req IssueCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	project := &model.Project{}
	err := mgr.db.WithContext(c).First(project, req.ProjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.HTTPError(c, http.StatusNotFound, "Project not found", resputil.ResourceNotFound)
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get project failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	issue, err := mgr.issueCtrl.Create(c, &issuectl.CreateRequest{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		ReporterID:  token.UserID,
	})
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	logutils.Log.Infof("create issue success, key: %s, reporter: %s", issue.Key(), token.Username)
	resputil.Created(c, toIssueResp(issue))
}

// GetIssue godoc
// @Summary 获取单个 Issue
// @Description 获取 Issue 详情，需要所属项目的访问权限
// @Tags Issue
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Issue ID"
// @Success 200 {object} resputil.Response[IssueResp] "Issue 详情"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "Issue 不存在"
// @Router /v1/issues/{id} [get]
func (mgr *IssueMgr) GetIssue(c *gin.Context) {
	var req IssueIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	issue, err := mgr.requireIssueView(c, req.ID)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, toIssueResp(issue))
}

type IssueKeyReq struct {
	Key string `uri:"key" binding:"required"`
}

// GetIssueByKey godoc
// @Summary 通过展示键获取 Issue
// @Description 解析形如 ORBIT-42 的展示键，项目前缀大小写不敏感
// @Tags Issue
// @Accept json
// @Produce json
// @Security Bearer
// @Param key path string true "展示键"
// @Success 200 {object} resputil.Response[IssueResp] "Issue 详情"
// @Failure 400 {object} resputil.Response[any] "展示键格式错误"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目或 Issue 不存在"
// @Router /v1/issues/key/{key} [get]
func (mgr *IssueMgr) GetIssueByKey(c *gin.Context) {
	var req IssueKeyReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	issue, err := mgr.issueCtrl.GetByKey(c, req.Key)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, &issue.Project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, toIssueResp(issue))
}

type IssueUpdateReq struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Priority      *string `json:"priority"`
	AssigneeID    *uint   `json:"assigneeID"`
	ClearAssignee bool    `json:"clearAssignee"` // 置 true 时清空经办人
}

// UpdateIssue godoc
// @Summary 更新 Issue
// @Description 更新标题、描述、优先级或经办人，状态变更走单独的 transition 接口
// @Tags Issue
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Issue ID"
// @Param data body IssueUpdateReq true "更新参数"
// @Success 200 {object} resputil.Response[IssueResp] "更新后的 Issue"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "Issue 不存在"
// @Router /v1/issues/{id} [put]
func (mgr *IssueMgr) UpdateIssue(c *gin.Context) {
	var req IssueIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if _, err := mgr.requireIssueView(c, req.ID); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	var body IssueUpdateReq
	if err := c.ShouldBindJSON(&body); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	issue, err := mgr.issueCtrl.Update(c, req.ID, &issuectl.UpdateRequest{
		Title:         body.Title,
		Description:   body.Description,
		Priority:      body.Priority,
		AssigneeID:    body.AssigneeID,
		ClearAssignee: body.ClearAssignee,
	})
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	resputil.Success(c, toIssueResp(issue))
}

type IssueTransitionReq struct {
	Status string `json:"status" binding:"required"` // backlog/to_do/in_progress/done
}

// TransitionIssue godoc
// @Summary 变更 Issue 状态
// @Description 将 Issue 移动到另一个工作流状态，看板拖拽调用此接口
// @Tags Issue
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Issue ID"
// @Param data body IssueTransitionReq true "目标状态"
// @Success 200 {object} resputil.Response[IssueResp] "更新后的 Issue"
// @Failure 400 {object} resputil.Response[any] "状态不合法"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "Issue 不存在"
// @Router /v1/issues/{id}/transition [post]
func (mgr *IssueMgr) TransitionIssue(c *gin.Context) {
	var req IssueIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if _, err := mgr.requireIssueView(c, req.ID); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	var body IssueTransitionReq
	if err := c.ShouldBindJSON(&body); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	issue, err := mgr.issueCtrl.Transition(c, req.ID, body.Status)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	logutils.Log.Infof("transition issue success, key: %s, status: %s", issue.Key(), issue.Status)
	resputil.Success(c, toIssueResp(issue))
}

// DeleteIssue godoc
// @Summary 删除 Issue
// @Description 物理删除 Issue，编号不会被复用，需要所属项目的访问权限
// @Tags Issue
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Issue ID"
// @Success 204 "删除成功"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "Issue 不存在"
// @Router /v1/issues/{id} [delete]
func (mgr *IssueMgr) DeleteIssue(c *gin.Context) {
	var req IssueIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	issue, err := mgr.requireIssueView(c, req.ID)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	if err := mgr.issueCtrl.Delete(c, req.ID); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	logutils.Log.Infof("delete issue success, key: %s", issue.Key())
	resputil.NoContent(c)
}
