package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/internal/payload"
	"github.com/raids-lab/orbit/internal/resputil"
	"github.com/raids-lab/orbit/internal/util"
	"github.com/raids-lab/orbit/pkg/access"
	"github.com/raids-lab/orbit/pkg/constants"
	"github.com/raids-lab/orbit/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewUserMgr)
}

type UserMgr struct {
	name string
	db   *gorm.DB
}

func NewUserMgr(conf *RegisterConfig) Manager {
	return &UserMgr{
		name: "users",
		db:   conf.DB,
	}
}

func (mgr *UserMgr) GetName() string { return mgr.name }

func (mgr *UserMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *UserMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListUser) // 管理员与 Manager 可见
	g.GET("/me", mgr.CurrentUser)
	g.PUT("/me", mgr.UpdateCurrentUser)
	g.GET("/:name", mgr.GetUser)
}

func (mgr *UserMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.PUT("/:name/role", mgr.UpdateRole)
	g.PUT("/:name/status", mgr.UpdateStatus)
	g.DELETE("/:name", mgr.DeleteUser)
}

type UserResp struct {
	ID          uint         `json:"id"`          // 用户ID
	Name        string       `json:"name"`        // 用户名称
	Nickname    string       `json:"nickname"`    // 用户昵称
	Email       string       `json:"email"`       // 邮箱
	Role        model.Role   `json:"role"`        // 用户角色
	Status      model.Status `json:"status"`      // 用户状态
	LastLoginAt *time.Time   `json:"lastLoginAt"` // 上次登录时间
}

type UserDetailResp struct {
	ID        uint         `json:"id"`        // 用户ID
	Name      string       `json:"name"`      // 用户名称
	Nickname  string       `json:"nickname"`  // 用户昵称
	Email     string       `json:"email"`     // 邮箱
	Role      model.Role   `json:"role"`      // 用户角色
	Status    model.Status `json:"status"`    // 用户状态
	CreatedAt time.Time    `json:"createdAt"` // 创建时间
	Phone     string       `json:"phone,omitempty"`
	Avatar    string       `json:"avatar,omitempty"`
	Team      string       `json:"team,omitempty"`
}

func toUserDetailResp(user *model.User) UserDetailResp {
	resp := UserDetailResp{
		ID:        user.ID,
		Name:      user.Name,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
	// 从 Attributes 中获取需要的字段
	data := user.Attributes.Data()
	resp.Phone = data.Phone
	resp.Avatar = data.Avatar
	resp.Team = data.Team
	return resp
}

type UserNameReq struct {
	Name string `uri:"name" binding:"required"`
}

type UserListReq struct {
	PageIndex *int          `form:"page_index" binding:"required"`
	PageSize  *int          `form:"page_size" binding:"required"`
	Search    string        `form:"search"` // 模糊匹配用户名、昵称、邮箱
	Role      *model.Role   `form:"role"`
	Status    *model.Status `form:"status"`
}

// ListUser godoc
// @Summary 列出用户信息
// @Description 分页列出用户，支持按角色、状态过滤和模糊搜索
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param query query UserListReq true "分页与过滤参数"
// @Success 200 {object} resputil.Response[payload.ListResp[UserResp]] "成功获取用户信息"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有权限"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/users [get]
func (mgr *UserMgr) ListUser(c *gin.Context) {
	token := util.GetToken(c)
	if !access.CanListAllUsers(token.RolePlatform) {
		resputil.HTTPError(c, http.StatusForbidden, "No permission to list users", resputil.UserNotAllowed)
		return
	}
	var req UserListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	pageSize := *req.PageSize
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxUserPageSize {
		pageSize = constants.MaxUserPageSize
	}
	pageIndex := *req.PageIndex
	if pageIndex < 0 {
		pageIndex = 0
	}

	tx := mgr.db.WithContext(c).Model(&model.User{})
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		tx = tx.Where("name ILIKE ? OR nickname ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}
	if req.Role != nil {
		tx = tx.Where("role = ?", *req.Role)
	}
	if req.Status != nil {
		tx = tx.Where("status = ?", *req.Status)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("list users failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	var users []UserResp
	err := tx.
		Select("id", "name", "nickname", "email", "role", "status", "last_login_at").
		Order("id DESC").
		Offset(pageIndex * pageSize).
		Limit(pageSize).
		Scan(&users).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("list users failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("list users success, count: %d", len(users))
	resputil.Success(c, payload.ListResp[UserResp]{Rows: users, Count: count})
}

// CurrentUser godoc
// @Summary 获取当前用户信息
// @Description 根据 JWT Token 返回当前用户的详细信息
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[UserDetailResp] "成功获取用户信息"
// @Failure 401 {object} resputil.Response[any] "未登录"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/users/me [get]
func (mgr *UserMgr) CurrentUser(c *gin.Context) {
	token := util.GetToken(c)
	user := &model.User{}
	if err := mgr.db.WithContext(c).First(user, token.UserID).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, toUserDetailResp(user))
}

// UpdateMeReq 只开放可以自助修改的字段，nil 表示保持原值
type UpdateMeReq struct {
	Nickname        *string `json:"nickname"`
	Phone           *string `json:"phone"`
	Avatar          *string `json:"avatar"`
	Team            *string `json:"team"`
	Password        *string `json:"password" binding:"omitempty,min=8"`
	CurrentPassword string  `json:"currentPassword"` // 修改密码时必填
}

// UpdateCurrentUser godoc
// @Summary 更新当前用户信息
// @Description 更新昵称、联系方式或密码，修改密码需要提供当前密码
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param data body UpdateMeReq true "更新参数"
// @Success 200 {object} resputil.Response[UserDetailResp] "更新后的用户信息"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "当前密码错误"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/users/me [put]
func (mgr *UserMgr) UpdateCurrentUser(c *gin.Context) {
	token := util.GetToken(c)
	var req UpdateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	user := &model.User{}
	if err := mgr.db.WithContext(c).First(user, token.UserID).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	updates := map[string]any{}
	if req.Nickname != nil {
		nickname := strings.TrimSpace(*req.Nickname)
		if nickname == "" {
			resputil.BadRequestError(c, "nickname must not be blank")
			return
		}
		updates["nickname"] = nickname
	}
	if req.Password != nil {
		if user.Password == nil {
			resputil.HTTPError(c, http.StatusForbidden, "Password login is not enabled for this account", resputil.UserNotAllowed)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.CurrentPassword)) != nil {
			resputil.HTTPError(c, http.StatusForbidden, "Current password does not match", resputil.UserNotAllowed)
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			resputil.Error(c, fmt.Sprintf("hash password failed, detail: %v", err), resputil.NotSpecified)
			return
		}
		updates["password"] = string(hashed)
	}
	if req.Nickname != nil || req.Phone != nil || req.Avatar != nil || req.Team != nil {
		attrs := user.Attributes.Data()
		attrs.ID = user.ID
		attrs.Name = user.Name
		attrs.Email = user.Email
		if req.Nickname != nil {
			attrs.Nickname = strings.TrimSpace(*req.Nickname)
		}
		if req.Phone != nil {
			attrs.Phone = *req.Phone
		}
		if req.Avatar != nil {
			attrs.Avatar = *req.Avatar
		}
		if req.Team != nil {
			attrs.Team = *req.Team
		}
		updates["attributes"] = datatypes.NewJSONType(attrs)
	}
	if len(updates) == 0 {
		resputil.BadRequestError(c, "no valid fields to update")
		return
	}

	if err := mgr.db.WithContext(c).Model(user).Updates(updates).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("update user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("update user success, username: %s", user.Name)
	resputil.Success(c, toUserDetailResp(user))
}

// GetUser godoc
// @Summary 获取单个用户信息
// @Description 获取指定用户的详细信息
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param name path string true "username"
// @Success 200 {object} resputil.Response[UserDetailResp] "成功获取用户信息"
// @Failure 404 {object} resputil.Response[any] "用户不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/users/{name} [get]
func (mgr *UserMgr) GetUser(c *gin.Context) {
	name := c.Param("name")
	user := &model.User{}
	err := mgr.db.WithContext(c).Where("name = ?", name).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.HTTPError(c, http.StatusNotFound, "User not found", resputil.ResourceNotFound)
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("get user success, username: %s", name)
	resputil.Success(c, toUserDetailResp(user))
}

type UpdateRoleReq struct {
	Role model.Role `json:"role" binding:"required"`
}

// UpdateRole godoc
// @Summary 更新角色
// @Description 更新指定用户的平台角色
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param name path string true "username"
// @Param data body UpdateRoleReq true "role"
// @Success 200 {object} resputil.Response[string] "更新角色成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 404 {object} resputil.Response[any] "用户不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/users/{name}/role [put]
func (mgr *UserMgr) UpdateRole(c *gin.Context) {
	var req UpdateRoleReq
	var nameReq UserNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, fmt.Sprintf("validate update parameters failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if err := c.ShouldBindUri(&nameReq); err != nil {
		resputil.Error(c, fmt.Sprintf("validate update parameters failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if req.Role < model.RoleGuest || req.Role > model.RoleAdmin {
		resputil.BadRequestError(c, fmt.Sprintf("role value %d exceeds the allowed range 1-4", req.Role))
		return
	}
	res := mgr.db.WithContext(c).Model(&model.User{}).Where("name = ?", nameReq.Name).Update("role", req.Role)
	if res.Error != nil {
		resputil.Error(c, fmt.Sprintf("update user role failed, detail: %v", res.Error), resputil.NotSpecified)
		return
	}
	if res.RowsAffected == 0 {
		resputil.HTTPError(c, http.StatusNotFound, "User not found", resputil.ResourceNotFound)
		return
	}
	logutils.Log.Infof("update user role success, user: %s, role: %v", nameReq.Name, req.Role)
	resputil.Success(c, "")
}

type UpdateStatusReq struct {
	Status model.Status `json:"status" binding:"required"`
}

// UpdateStatus godoc
// @Summary 更新用户状态
// @Description 启用或停用指定用户，管理员不能停用自己
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param name path string true "username"
// @Param data body UpdateStatusReq true "status"
// @Success 200 {object} resputil.Response[string] "更新状态成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "不能停用自己"
// @Failure 404 {object} resputil.Response[any] "用户不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/users/{name}/status [put]
func (mgr *UserMgr) UpdateStatus(c *gin.Context) {
	token := util.GetToken(c)
	var req UpdateStatusReq
	var nameReq UserNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, fmt.Sprintf("validate update parameters failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if err := c.ShouldBindUri(&nameReq); err != nil {
		resputil.Error(c, fmt.Sprintf("validate update parameters failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if req.Status < model.StatusPending || req.Status > model.StatusInactive {
		resputil.BadRequestError(c, fmt.Sprintf("status value %d exceeds the allowed range 1-3", req.Status))
		return
	}

	target := &model.User{}
	err := mgr.db.WithContext(c).Where("name = ?", nameReq.Name).First(target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.HTTPError(c, http.StatusNotFound, "User not found", resputil.ResourceNotFound)
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if req.Status != model.StatusActive && !access.CanDeactivateUser(token.RolePlatform, token.UserID, target.ID) {
		resputil.HTTPError(c, http.StatusForbidden, "Cannot deactivate your own account", resputil.UserNotAllowed)
		return
	}

	if err := mgr.db.WithContext(c).Model(target).Update("status", req.Status).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("update user status failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("update user status success, user: %s, status: %v", nameReq.Name, req.Status)
	resputil.Success(c, "")
}

// DeleteUser godoc
// @Summary 删除用户
// @Description 删除用户及其名下的项目、创建或负责的 Issue，自己的账号不能删除
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param name path string true "username"
// @Success 200 {object} resputil.Response[string] "删除成功"
// @Failure 403 {object} resputil.Response[any] "不能删除自己"
// @Failure 404 {object} resputil.Response[any] "用户不存在"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/admin/users/{name} [delete]
func (mgr *UserMgr) DeleteUser(c *gin.Context) {
	token := util.GetToken(c)
	name := c.Param("name")
	if name == token.Username {
		resputil.HTTPError(c, http.StatusForbidden, "Cannot delete your own account", resputil.UserNotAllowed)
		return
	}

	target := &model.User{}
	err := mgr.db.WithContext(c).Where("name = ?", name).First(target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.HTTPError(c, http.StatusNotFound, "User not found", resputil.ResourceNotFound)
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("get user failed, detail: %v", err), resputil.NotSpecified)
		return
	}

	// 用户引用不做置空处理：名下项目连同 Issue 一并删除，
	// 其他项目中由该用户创建或负责的 Issue 同样删除
	err = mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		var projectIDs []uint
		if err := tx.Model(&model.Project{}).Where("owner_id = ?", target.ID).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}
		if len(projectIDs) > 0 {
			if err := tx.Unscoped().Where("project_id IN ?", projectIDs).Delete(&model.Issue{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("project_id IN ?", projectIDs).Delete(&model.UserProject{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&model.Project{}, projectIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("reporter_id = ? OR assignee_id = ?", target.ID, target.ID).Delete(&model.Issue{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", target.ID).Delete(&model.UserProject{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Project{}).Where("default_assignee_id = ?", target.ID).
			Update("default_assignee_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.User{}, target.ID).Error
	})
	if err != nil {
		resputil.Error(c, fmt.Sprintf("delete user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	logutils.Log.Infof("delete user success, username: %s", name)
	resputil.Success(c, "")
}
