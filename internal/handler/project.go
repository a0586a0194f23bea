package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
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
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name      string
	db        *gorm.DB
	checker   *access.Checker
	issueCtrl issuectl.IssueControllerInterface
}

func NewProjectMgr(conf *RegisterConfig) Manager {
	return &ProjectMgr{
		name:      "projects",
		db:        conf.DB,
		checker:   conf.Checker,
		issueCtrl: conf.IssueCtrl,
	}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ProjectMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListProject) // 获取该用户的所有项目
	g.POST("", mgr.CreateProject)
	g.GET("/:id", mgr.GetProject)
	g.PUT("/:id", mgr.UpdateProject)
	g.DELETE("/:id", mgr.DeleteProject)
	g.GET("/:id/stats", mgr.GetProjectStats)
	g.GET("/:id/board", mgr.GetBoard)
	g.GET("/:id/yaml", mgr.GetProjectYaml)
	g.GET("/:id/members", mgr.ListMembers)
	g.POST("/:id/members", mgr.AddMember)
	g.PUT("/:id/members/:userID", mgr.UpdateMemberRole)
	g.DELETE("/:id/members/:userID", mgr.RemoveMember)
}

func (mgr *ProjectMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", mgr.ListAllForAdmin) // 获取所有项目
}

type (
	ProjectIDReq struct {
		ID uint `uri:"id" binding:"required"`
	}

	ProjectResp struct {
		ID                uint                `json:"id"`
		Name              string              `json:"name"`
		Key               string              `json:"key"`
		Description       string              `json:"description,omitempty"`
		Status            model.ProjectStatus `json:"status"`
		Owner             payload.UserBrief   `json:"owner"`
		DefaultAssigneeID *uint               `json:"defaultAssigneeID,omitempty"` // 新建 Issue 的默认负责人
		Role              *model.ProjectRole  `json:"role,omitempty"`              // 当前用户在项目中的角色
		CreatedAt         time.Time           `json:"createdAt"`
		UpdatedAt         time.Time           `json:"updatedAt"`
	}

	// Swagger 不支持范型嵌套，定义别名
	ProjectListResp payload.ListResp[ProjectResp]
)

func toProjectResp(project *model.Project, role *model.ProjectRole) ProjectResp {
	return ProjectResp{
		ID:          project.ID,
		Name:        project.Name,
		Key:         project.Key,
		Description: project.Description,
		Status:      project.Status,
		Owner: payload.UserBrief{
			ID:       project.Owner.ID,
			Name:     project.Owner.Name,
			Nickname: project.Owner.Nickname,
		},
		DefaultAssigneeID: project.DefaultAssigneeID,
		Role:              role,
		CreatedAt:         project.CreatedAt,
		UpdatedAt:         project.UpdatedAt,
	}
}

// getProject resolves the id in the path. Permission checks happen after
// the lookup, so a missing project always reports 404.
func (mgr *ProjectMgr) getProject(c *gin.Context) (*model.Project, bool) {
	var req ProjectIDReq
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return nil, false
	}
	project := &model.Project{}
	err := mgr.db.WithContext(c).Preload("Owner").First(project, req.ID).Error
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

// requireActiveUser verifies that a default assignee candidate exists and is
// active, writing the error response itself on failure.
func (mgr *ProjectMgr) requireActiveUser(c *gin.Context, id uint) bool {
	user := &model.User{}
	err := mgr.db.WithContext(c).First(user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.BadRequestError(c, fmt.Sprintf("default assignee %d does not exist", id))
		return false
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return false
	}
	if user.Status != model.StatusActive {
		resputil.BadRequestError(c, fmt.Sprintf("default assignee %s is not active", user.Name))
		return false
	}
	return true
}

// memberRoles returns the per-project role of the user, keyed by project id.
func (mgr *ProjectMgr) memberRoles(c *gin.Context, userID uint) (map[uint]model.ProjectRole, error) {
	var rows []model.UserProject
	if err := mgr.db.WithContext(c).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	roles := make(map[uint]model.ProjectRole, len(rows))
	for i := range rows {
		roles[rows[i].ProjectID] = rows[i].Role
	}
	return roles, nil
}

// ListProject godoc
// @Summary 获取用户的所有项目
// @Description 返回当前用户拥有或加入的项目，管理员返回全部项目
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[[]ProjectResp] "项目列表"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/projects [get]
func (mgr *ProjectMgr) ListProject(c *gin.Context) {
	token := util.GetToken(c)

	roles, err := mgr.memberRoles(c, token.UserID)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("list projects failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	tx := mgr.db.WithContext(c).Preload("Owner").Order("id DESC")
	if token.RolePlatform != model.RoleAdmin {
		memberIDs := make([]uint, 0, len(roles))
		for id := range roles {
			memberIDs = append(memberIDs, id)
		}
		tx = tx.Where("owner_id = ? OR id IN ?", token.UserID, memberIDs)
	}
	var projects []*model.Project
	if err := tx.Find(&projects).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("list projects failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	result := make([]ProjectResp, 0, len(projects))
	for _, project := range projects {
		result = append(result, toProjectResp(project, roleOf(project, token.UserID, roles)))
	}
	resputil.Success(c, result)
}

func roleOf(project *model.Project, userID uint, roles map[uint]model.ProjectRole) *model.ProjectRole {
	if role, ok := roles[project.ID]; ok {
		return &role
	}
	if project.OwnerID == userID {
		role := model.ProjectRoleMaintainer
		return &role
	}
	return nil
}

type ListAllReq struct {
	// 分页参数
	PageIndex *int `form:"page_index" binding:"required"`
	PageSize  *int `form:"page_size" binding:"required"`
	// 筛选参数
	Status   *model.ProjectStatus `form:"status"`
	NameLike *string              `form:"name_like"`
}

// ListAllForAdmin godoc
// @Summary 获取所有项目
// @Description 获取所有项目的摘要信息，支持筛选条件和分页
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param page query ListAllReq true "分页参数"
// @Success 200 {object} resputil.Response[ProjectListResp] "项目列表"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/projects [get]
func (mgr *ProjectMgr) ListAllForAdmin(c *gin.Context) {
	var req ListAllReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error(), resputil.InvalidRequest)
		return
	}

	tx := mgr.db.WithContext(c).Model(&model.Project{})
	if req.Status != nil {
		tx = tx.Where("status = ?", *req.Status)
	}
	if req.NameLike != nil {
		tx = tx.Where("name ILIKE ?", "%"+*req.NameLike+"%")
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	var projects []*model.Project
	err := tx.Preload("Owner").
		Order("id DESC").
		Offset((*req.PageIndex) * (*req.PageSize)).
		Limit(*req.PageSize).
		Find(&projects).Error
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}

	rows := make([]ProjectResp, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, toProjectResp(project, nil))
	}
	resputil.Success(c, ProjectListResp{Rows: rows, Count: count})
}

type ProjectCreateReq struct {
	Name              string `json:"name" binding:"required,max=128"`
	Key               string `json:"key" binding:"required"` // 大小写不敏感，统一大写保存
	Description       string `json:"description"`
	DefaultAssigneeID *uint  `json:"defaultAssigneeID"` // 可选，必须是活跃用户
}

// CreateProject godoc
// @Summary 创建项目
// @Description 以当前用户为负责人创建项目，项目 Key 全局唯一
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body ProjectCreateReq true "项目信息"
// @Success 201 {object} resputil.Response[ProjectResp] "成功创建项目"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有权限创建项目"
// @Failure 409 {object} resputil.Response[any] "项目 Key 已被占用"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/projects [post]
func (mgr *ProjectMgr) CreateProject(c *gin.Context) {
	token := util.GetToken(c)
	if !access.CanCreateProject(token.RolePlatform) {
		resputil.HTTPError(c, http.StatusForbidden, "No permission to create projects", resputil.UserNotAllowed)
		return
	}

	var req ProjectCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	key := model.NormalizeProjectKey(req.Key)
	if err := model.ValidateProjectKey(key); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	var count int64
	if err := mgr.db.WithContext(c).Model(&model.Project{}).Where("key = ?", key).Count(&count).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("check project key failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if count > 0 {
		resputil.HTTPError(c, http.StatusConflict, fmt.Sprintf("Project key %s already taken", key), resputil.ResourceConflict)
		return
	}
	if req.DefaultAssigneeID != nil && !mgr.requireActiveUser(c, *req.DefaultAssigneeID) {
		return
	}

	project := model.Project{
		Name:              strings.TrimSpace(req.Name),
		Key:               key,
		Description:       req.Description,
		Status:            model.ProjectActive,
		OwnerID:           token.UserID,
		DefaultAssigneeID: req.DefaultAssigneeID,
	}
	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		// 负责人默认成为 Maintainer 成员
		userProject := model.UserProject{
			UserID:    token.UserID,
			ProjectID: project.ID,
			Role:      model.ProjectRoleMaintainer,
		}
		return tx.Create(&userProject).Error
	})
	if err != nil {
		// 并发创建时唯一索引兜底
		resputil.HTTPError(c, http.StatusConflict, fmt.Sprintf("Project key %s already taken", key), resputil.ResourceConflict)
		return
	}
	logutils.Log.Infof("create project success, key: %s, owner: %s", key, token.Username)

	if err := mgr.db.WithContext(c).First(&project.Owner, token.UserID).Error; err != nil {
		logutils.Log.Errorf("load project owner failed: %v", err)
	}
	role := model.ProjectRoleMaintainer
	resputil.Created(c, toProjectResp(&project, &role))
}

// GetProject godoc
// @Summary 获取单个项目
// @Description 获取项目详情，需要项目访问权限
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Success 200 {object} resputil.Response[ProjectResp] "项目详情"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Router /v1/projects/{id} [get]
func (mgr *ProjectMgr) GetProject(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	roles, err := mgr.memberRoles(c, token.UserID)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get project failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, toProjectResp(project, roleOf(project, token.UserID, roles)))
}

// ProjectUpdateReq 只开放可以修改的字段，nil 表示保持原值。
// ClearDefaultAssignee 置位时清除默认负责人，空指针无法在 JSON 中表达这一语义
type ProjectUpdateReq struct {
	Name                 *string              `json:"name"`
	Key                  *string              `json:"key"` // 变更后重新校验全局唯一
	Description          *string              `json:"description"`
	Status               *model.ProjectStatus `json:"status"`
	DefaultAssigneeID    *uint                `json:"defaultAssigneeID"`
	ClearDefaultAssignee bool                 `json:"clearDefaultAssignee"`
}

// UpdateProject godoc
// @Summary 更新项目
// @Description 更新项目名称、Key、描述、状态或默认负责人，需要项目管理权限
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Param data body ProjectUpdateReq true "更新参数"
// @Success 200 {object} resputil.Response[ProjectResp] "更新后的项目"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Failure 409 {object} resputil.Response[any] "项目 Key 已被占用"
// @Router /v1/projects/{id} [put]
func (mgr *ProjectMgr) UpdateProject(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectManage(token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	var req ProjectUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			resputil.BadRequestError(c, "project name must not be blank")
			return
		}
		updates["name"] = name
	}
	if req.Key != nil {
		key := model.NormalizeProjectKey(*req.Key)
		if err := model.ValidateProjectKey(key); err != nil {
			resputil.BadRequestError(c, err.Error())
			return
		}
		// Key 变更后所有 Issue 的展示键随之变化，唯一性校验排除自身
		if key != project.Key {
			var count int64
			if err := mgr.db.WithContext(c).Model(&model.Project{}).
				Where("key = ? AND id <> ?", key, project.ID).
				Count(&count).Error; err != nil {
				resputil.Error(c, fmt.Sprintf("check project key failed, detail: %v", err), resputil.NotSpecified)
				return
			}
			if count > 0 {
				resputil.HTTPError(c, http.StatusConflict, fmt.Sprintf("Project key %s already taken", key), resputil.ResourceConflict)
				return
			}
		}
		updates["key"] = key
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		if *req.Status < model.ProjectActive || *req.Status > model.ProjectArchived {
			resputil.BadRequestError(c, fmt.Sprintf("status value %d exceeds the allowed range 1-2", *req.Status))
			return
		}
		updates["status"] = *req.Status
	}
	switch {
	case req.ClearDefaultAssignee:
		updates["default_assignee_id"] = nil
	case req.DefaultAssigneeID != nil:
		if !mgr.requireActiveUser(c, *req.DefaultAssigneeID) {
			return
		}
		updates["default_assignee_id"] = *req.DefaultAssigneeID
	}
	if len(updates) == 0 {
		resputil.BadRequestError(c, "no valid fields to update")
		return
	}

	if err := mgr.db.WithContext(c).Model(project).Updates(updates).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("update project failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("update project success, key: %s", project.Key)

	roles, err := mgr.memberRoles(c, token.UserID)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get project failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, toProjectResp(project, roleOf(project, token.UserID, roles)))
}

// DeleteProject godoc
// @Summary 删除项目
// @Description 删除项目及其所有 Issue 和成员关系，该操作不可恢复
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Success 204 "删除成功"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/projects/{id} [delete]
func (mgr *ProjectMgr) DeleteProject(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectManage(token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&model.Issue{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&model.UserProject{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Project{}, project.ID).Error
	})
	if err != nil {
		resputil.Error(c, fmt.Sprintf("delete project failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("delete project success, key: %s", project.Key)
	resputil.NoContent(c)
}

type (
	StatsTotals struct {
		Total          int64   `json:"total"`
		Completed      int64   `json:"completed"`
		CompletionRate float64 `json:"completionRate"`
	}

	ProjectStatsResp struct {
		Project payload.ProjectBrief `json:"project"`
		Issues  map[string]int64     `json:"issues"` // 状态到数量
		Totals  StatsTotals          `json:"totals"`
	}
)

// GetProjectStats godoc
// @Summary 获取项目统计
// @Description 按状态聚合项目的 Issue 数量，计算完成率
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Success 200 {object} resputil.Response[ProjectStatsResp] "项目统计"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Router /v1/projects/{id}/stats [get]
func (mgr *ProjectMgr) GetProjectStats(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !access.CanViewStats(token.RolePlatform, token.UserID, project) {
		resputil.HTTPError(c, http.StatusForbidden, "Cannot access project statistics", resputil.UserNotAllowed)
		return
	}

	var rows []payload.StatusCount
	err := mgr.db.WithContext(c).Model(&model.Issue{}).
		Select("status, count(*) as count").
		Where("project_id = ?", project.ID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get project stats failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	issues := make(map[string]int64, len(rows))
	var total, completed int64
	for _, row := range rows {
		issues[row.Status] = row.Count
		total += row.Count
		if row.Status == string(model.IssueStatusDone) {
			completed = row.Count
		}
	}
	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total)
	}
	resputil.Success(c, ProjectStatsResp{
		Project: payload.ProjectBrief{ID: project.ID, Name: project.Name, Key: project.Key},
		Issues:  issues,
		Totals:  StatsTotals{Total: total, Completed: completed, CompletionRate: rate},
	})
}

type BoardColumnResp struct {
	Status model.IssueStatus `json:"status"`
	Issues []IssueResp       `json:"issues"`
}

// GetBoard godoc
// @Summary 获取项目看板
// @Description 返回按工作流状态分组的看板列，列内按优先级和最近活跃排序
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Success 200 {object} resputil.Response[[]BoardColumnResp] "看板"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Router /v1/projects/{id}/board [get]
func (mgr *ProjectMgr) GetBoard(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	columns, err := mgr.issueCtrl.Board(c, project.ID)
	if err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	result := make([]BoardColumnResp, 0, len(columns))
	for _, column := range columns {
		issues := make([]IssueResp, 0, len(column.Issues))
		for _, issue := range column.Issues {
			issues = append(issues, toIssueResp(issue))
		}
		result = append(result, BoardColumnResp{Status: column.Status, Issues: issues})
	}
	resputil.Success(c, result)
}

type (
	ProjectExportIssue struct {
		Key      string              `yaml:"key" json:"key"`
		Title    string              `yaml:"title" json:"title"`
		Type     model.IssueType     `yaml:"type" json:"type"`
		Status   model.IssueStatus   `yaml:"status" json:"status"`
		Priority model.IssuePriority `yaml:"priority" json:"priority"`
		Reporter string              `yaml:"reporter" json:"reporter"`
		Assignee string              `yaml:"assignee,omitempty" json:"assignee,omitempty"`
	}

	ProjectExport struct {
		Name        string               `yaml:"name" json:"name"`
		Key         string               `yaml:"key" json:"key"`
		Description string               `yaml:"description,omitempty" json:"description,omitempty"`
		Owner       string               `yaml:"owner" json:"owner"`
		Issues      []ProjectExportIssue `yaml:"issues" json:"issues"`
	}
)

// GetProjectYaml godoc
// @Summary 导出项目 YAML
// @Description 将项目及其全部 Issue 导出为 YAML 文本，便于备份和迁移
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Success 200 {object} resputil.Response[string] "项目 YAML"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/projects/{id}/yaml [get]
func (mgr *ProjectMgr) GetProjectYaml(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	var issues []*model.Issue
	err := mgr.db.WithContext(c).
		Preload("Reporter").
		Preload("Assignee").
		Where("project_id = ?", project.ID).
		Order("number").
		Find(&issues).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("export project failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	export := ProjectExport{
		Name:        project.Name,
		Key:         project.Key,
		Description: project.Description,
		Owner:       project.Owner.Name,
		Issues:      make([]ProjectExportIssue, 0, len(issues)),
	}
	for _, issue := range issues {
		row := ProjectExportIssue{
			Key:      model.FormatIssueKey(project.Key, issue.Number),
			Title:    issue.Title,
			Type:     issue.Type,
			Status:   issue.Status,
			Priority: issue.Priority,
			Reporter: issue.Reporter.Name,
		}
		if issue.Assignee != nil {
			row.Assignee = issue.Assignee.Name
		}
		export.Issues = append(export.Issues, row)
	}

	projectYaml, err := marshalYAMLWithIndent(export, 2)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, string(projectYaml))
}

func marshalYAMLWithIndent(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type (
	MemberPathReq struct {
		ID     uint `uri:"id" binding:"required"`
		UserID uint `uri:"userID" binding:"required"`
	}

	MemberAddReq struct {
		UserID uint              `json:"userID" binding:"required"`
		Role   model.ProjectRole `json:"role" binding:"required"`
	}

	MemberRoleReq struct {
		Role model.ProjectRole `json:"role" binding:"required"`
	}

	MemberResp struct {
		UserID   uint              `json:"userID"`
		Name     string            `json:"name"`
		Nickname string            `json:"nickname"`
		Role     model.ProjectRole `json:"role"`
		JoinedAt time.Time         `json:"joinedAt"`
	}
)

// ListMembers godoc
// @Summary 获取项目成员
// @Description 连接用户项目表和用户表，返回项目的所有成员
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Success 200 {object} resputil.Response[[]MemberResp] "成员列表"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Router /v1/projects/{id}/members [get]
func (mgr *ProjectMgr) ListMembers(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	var members []MemberResp
	err := mgr.db.WithContext(c).Model(&model.UserProject{}).
		Select("user_projects.user_id", "users.name", "users.nickname", "user_projects.role", "user_projects.created_at AS joined_at").
		Joins("JOIN users ON users.id = user_projects.user_id AND users.deleted_at IS NULL").
		Where("user_projects.project_id = ?", project.ID).
		Order("user_projects.created_at").
		Scan(&members).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("list members failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, members)
}

// AddMember godoc
// @Summary 添加项目成员
// @Description 将用户以指定角色加入项目，需要项目管理权限
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Param data body MemberAddReq true "成员信息"
// @Success 201 {object} resputil.Response[string] "添加成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目或用户不存在"
// @Failure 409 {object} resputil.Response[any] "用户已经是项目成员"
// @Router /v1/projects/{id}/members [post]
func (mgr *ProjectMgr) AddMember(c *gin.Context) {
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectManage(token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	var req MemberAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if req.Role < model.ProjectRoleViewer || req.Role > model.ProjectRoleMaintainer {
		resputil.BadRequestError(c, fmt.Sprintf("role value %d exceeds the allowed range 1-3", req.Role))
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

	var count int64
	err = mgr.db.WithContext(c).Model(&model.UserProject{}).
		Where("user_id = ? AND project_id = ?", req.UserID, project.ID).
		Count(&count).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("check member failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if count > 0 {
		resputil.HTTPError(c, http.StatusConflict, "User is already a member", resputil.ResourceConflict)
		return
	}

	userProject := model.UserProject{
		UserID:    req.UserID,
		ProjectID: project.ID,
		Role:      req.Role,
	}
	if err := mgr.db.WithContext(c).Create(&userProject).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("add member failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("add member success, project: %s, user: %s, role: %v", project.Key, user.Name, req.Role)
	resputil.Created(c, "")
}

// UpdateMemberRole godoc
// @Summary 更新成员角色
// @Description 修改成员在项目中的角色，负责人的角色不可修改
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Param userID path int true "用户ID"
// @Param data body MemberRoleReq true "角色"
// @Success 200 {object} resputil.Response[string] "更新成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目或成员不存在"
// @Router /v1/projects/{id}/members/{userID} [put]
func (mgr *ProjectMgr) UpdateMemberRole(c *gin.Context) {
	var pathReq MemberPathReq
	if err := c.ShouldBindUri(&pathReq); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectManage(token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	var req MemberRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if req.Role < model.ProjectRoleViewer || req.Role > model.ProjectRoleMaintainer {
		resputil.BadRequestError(c, fmt.Sprintf("role value %d exceeds the allowed range 1-3", req.Role))
		return
	}
	if pathReq.UserID == project.OwnerID && req.Role != model.ProjectRoleMaintainer {
		resputil.HTTPError(c, http.StatusForbidden, "Cannot change the owner role", resputil.UserNotAllowed)
		return
	}

	res := mgr.db.WithContext(c).Model(&model.UserProject{}).
		Where("user_id = ? AND project_id = ?", pathReq.UserID, project.ID).
		Update("role", req.Role)
	if res.Error != nil {
		resputil.Error(c, fmt.Sprintf("update member role failed, detail: %v", res.Error), resputil.NotSpecified)
		return
	}
	if res.RowsAffected == 0 {
		resputil.HTTPError(c, http.StatusNotFound, "Member not found", resputil.ResourceNotFound)
		return
	}
	logutils.Log.Infof("update member role success, project: %s, user: %d, role: %v", project.Key, pathReq.UserID, req.Role)
	resputil.Success(c, "")
}

// RemoveMember godoc
// @Summary 移除项目成员
// @Description 将成员移出项目，负责人不可移除
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "项目ID"
// @Param userID path int true "用户ID"
// @Success 200 {object} resputil.Response[string] "移除成功"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 404 {object} resputil.Response[any] "项目或成员不存在"
// @Router /v1/projects/{id}/members/{userID} [delete]
func (mgr *ProjectMgr) RemoveMember(c *gin.Context) {
	var pathReq MemberPathReq
	if err := c.ShouldBindUri(&pathReq); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	project, ok := mgr.getProject(c)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectManage(token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}
	if pathReq.UserID == project.OwnerID {
		resputil.HTTPError(c, http.StatusForbidden, "Cannot remove the project owner", resputil.UserNotAllowed)
		return
	}

	// 物理删除成员关系，用户之后可以重新加入
	res := mgr.db.WithContext(c).Unscoped().
		Where("user_id = ? AND project_id = ?", pathReq.UserID, project.ID).
		Delete(&model.UserProject{})
	if res.Error != nil {
		resputil.Error(c, fmt.Sprintf("remove member failed, detail: %v", res.Error), resputil.NotSpecified)
		return
	}
	if res.RowsAffected == 0 {
		resputil.HTTPError(c, http.StatusNotFound, "Member not found", resputil.ResourceNotFound)
		return
	}
	logutils.Log.Infof("remove member success, project: %s, user: %d", project.Key, pathReq.UserID)
	resputil.Success(c, "")
}
