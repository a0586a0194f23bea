package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	ldap "github.com/go-ldap/ldap/v3"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/internal/resputil"
	"github.com/raids-lab/orbit/internal/util"
	"github.com/raids-lab/orbit/pkg/alert"
	"github.com/raids-lab/orbit/pkg/config"
	"github.com/raids-lab/orbit/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAuthMgr)
}

type AuthMgr struct {
	name     string
	db       *gorm.DB
	tokenMgr *util.TokenManager
	alert    alert.AlertInterface
}

func NewAuthMgr(conf *RegisterConfig) Manager {
	return &AuthMgr{
		name:     "auth",
		db:       conf.DB,
		tokenMgr: util.GetTokenMgr(),
		alert:    conf.Alert,
	}
}

func (mgr *AuthMgr) GetName() string { return mgr.name }

func (mgr *AuthMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/login", mgr.Login)
	g.POST("/signup", mgr.Signup)
	g.POST("/refresh", mgr.RefreshToken)
}

func (mgr *AuthMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *AuthMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	LoginReq struct {
		Email      string `json:"email" binding:"required,email"` // 登录邮箱
		Password   string `json:"password" binding:"required"`    // 密码
		AuthMethod string `json:"auth"`                           // 认证方式 [normal, ldap]，默认 normal
	}

	LoginResp struct {
		AccessToken  string      `json:"accessToken"`
		RefreshToken string      `json:"refreshToken"`
		Context      UserContext `json:"context"`
	}

	UserContext struct {
		UserID       uint       `json:"userID"`
		Username     string     `json:"username"`
		Nickname     string     `json:"nickname"`
		RolePlatform model.Role `json:"rolePlatform"` // User role of the platform
	}
)

const (
	AuthMethodNormal = "normal"
	AuthMethodLDAP   = "ldap"
)

// Login godoc
// @Summary 用户登录
// @Description 校验用户身份，生成包含当前用户的 JWT Token
// @Tags Auth
// @Accept json
// @Produce json
// @Param data body LoginReq true "登录参数"
// @Success 200 {object} resputil.Response[LoginResp] "登录成功，返回 JWT Token"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 401 {object} resputil.Response[any] "邮箱或密码错误"
// @Failure 500 {object} resputil.Response[any] "数据库交互错误"
// @Router /v1/auth/login [post]
func (mgr *AuthMgr) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	l := logutils.Log.WithFields(logutils.Fields{
		"email": email,
		"auth":  req.AuthMethod,
	})

	var user *model.User
	var err error
	switch req.AuthMethod {
	case AuthMethodLDAP:
		user, err = mgr.ldapAuth(c, email, req.Password)
	case AuthMethodNormal, "":
		user, err = mgr.normalAuth(c, email, req.Password)
	default:
		l.Error("invalid auth method: ", req.AuthMethod)
		resputil.HTTPError(c, http.StatusBadRequest, "Invalid auth method", resputil.InvalidRequest)
		return
	}
	if err != nil {
		// 对外不区分“邮箱不存在”和“密码错误”
		l.Error("invalid credentials: ", err)
		resputil.HTTPError(c, http.StatusUnauthorized, "Invalid credentials", resputil.InvalidCredentials)
		return
	}
	if user.Status != model.StatusActive {
		l.Error("user is not active")
		resputil.HTTPError(c, http.StatusForbidden, "Account is deactivated", resputil.UserNotAllowed)
		return
	}

	if err := mgr.db.WithContext(c).Model(user).UpdateColumn("last_login_at", gorm.Expr("NOW()")).Error; err != nil {
		l.Error("record login time: ", err)
	}

	mgr.replyWithTokens(c, user, http.StatusOK)
}

type SignupReq struct {
	Name     string `json:"name" binding:"required,min=2,max=32"` // 用户名，全局唯一
	Nickname string `json:"nickname"`                             // 显示名，默认同用户名
	Email    string `json:"email" binding:"required,email"`       // 邮箱，全局唯一
	Password string `json:"password" binding:"required,min=8"`    // 密码
}

// Signup godoc
// @Summary 用户注册
// @Description 创建新用户并直接登录，返回 JWT Token
// @Tags Auth
// @Accept json
// @Produce json
// @Param data body SignupReq true "注册参数"
// @Success 201 {object} resputil.Response[LoginResp] "注册成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 409 {object} resputil.Response[any] "用户名或邮箱已被占用"
// @Failure 500 {object} resputil.Response[any] "数据库交互错误"
// @Router /v1/auth/signup [post]
func (mgr *AuthMgr) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Name
	}

	var count int64
	if err := mgr.db.WithContext(c).Model(&model.User{}).
		Where("name = ? OR email = ?", req.Name, email).
		Count(&count).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("check user failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	if count > 0 {
		resputil.HTTPError(c, http.StatusConflict, "Username or email already taken", resputil.ResourceConflict)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("hash password failed, detail: %v", err), resputil.NotSpecified)
		return
	}
	password := string(hashed)
	user := model.User{
		Name:     req.Name,
		Nickname: nickname,
		Email:    email,
		Password: &password,
		Role:     model.RoleUser,
		Status:   model.StatusActive,
		Attributes: datatypes.NewJSONType(model.UserAttribute{
			Name:     req.Name,
			Nickname: nickname,
			Email:    email,
		}),
	}
	if err := mgr.db.WithContext(c).Create(&user).Error; err != nil {
		// 并发注册时唯一索引兜底
		resputil.HTTPError(c, http.StatusConflict, "Username or email already taken", resputil.ResourceConflict)
		return
	}
	logutils.Log.Infof("signup success, username: %s", user.Name)

	if err := mgr.alert.WelcomeAlert(c, &user); err != nil {
		logutils.Log.Errorf("enqueue welcome notification failed: %v", err)
	}

	mgr.replyWithTokens(c, &user, http.StatusCreated)
}

// replyWithTokens issues a fresh token pair for the user and writes the
// login response with the given status.
func (mgr *AuthMgr) replyWithTokens(c *gin.Context, user *model.User, httpCode int) {
	jwtMessage := util.JWTMessage{
		UserID:       user.ID,
		Username:     user.Name,
		RolePlatform: user.Role,
	}
	accessToken, refreshToken, err := mgr.tokenMgr.CreateTokens(&jwtMessage)
	if err != nil {
		resputil.HTTPError(c, http.StatusInternalServerError, err.Error(), resputil.NotSpecified)
		return
	}
	resp := LoginResp{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Context: UserContext{
			UserID:       user.ID,
			Username:     user.Name,
			Nickname:     user.Nickname,
			RolePlatform: user.Role,
		},
	}
	if httpCode == http.StatusCreated {
		resputil.Created(c, resp)
		return
	}
	resputil.Success(c, resp)
}

// normalAuth checks the password stored on the user row.
func (mgr *AuthMgr) normalAuth(c *gin.Context, email, password string) (*model.User, error) {
	user := &model.User{}
	if err := mgr.db.WithContext(c).Where("email = ?", email).First(user).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}
	p := user.Password
	if p == nil {
		return nil, fmt.Errorf("user does not have a password")
	}
	if bcrypt.CompareHashAndPassword([]byte(*p), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong email or password")
	}
	return user, nil
}

// ldapAuth verifies the password against the directory and provisions a
// user row on first login.
func (mgr *AuthMgr) ldapAuth(c *gin.Context, email, password string) (*model.User, error) {
	ldapConfig := config.GetConfig().Auth.LDAP
	if !ldapConfig.Enable {
		return nil, fmt.Errorf("ldap auth is not enabled")
	}
	l, err := ldap.DialURL(ldapConfig.Address)
	if err != nil {
		return nil, err
	}
	defer l.Close()
	if err = l.Bind(ldapConfig.UserName, ldapConfig.Password); err != nil {
		return nil, err
	}

	searchRequest := ldap.NewSearchRequest(
		ldapConfig.SearchDN, // 搜索基准 DN
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		fmt.Sprintf("(mail=%s)", ldap.EscapeFilter(email)), // 过滤条件
		[]string{"dn"}, // 返回的属性列表
		nil,
	)
	searchResult, err := l.Search(searchRequest)
	if err != nil {
		return nil, err
	}
	if len(searchResult.Entries) != 1 {
		return nil, fmt.Errorf("user not found or too many entries returned")
	}

	// 用户存在，验证用户密码
	userDN := searchResult.Entries[0].DN
	if err = l.Bind(userDN, password); err != nil {
		return nil, err
	}

	user := &model.User{}
	err = mgr.db.WithContext(c).Where("email = ?", email).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Directory user without a local row yet, create one on the fly.
		return mgr.createUser(c, email)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// createUser provisions a user for a directory login. The local name is the
// mailbox part of the address.
func (mgr *AuthMgr) createUser(c *gin.Context, email string) (*model.User, error) {
	name := email
	if idx := strings.Index(email, "@"); idx > 0 {
		name = email[:idx]
	}
	user := model.User{
		Name:     name,
		Nickname: name,
		Email:    email,
		Password: nil,
		Role:     model.RoleUser,
		Status:   model.StatusActive,
		Attributes: datatypes.NewJSONType(model.UserAttribute{
			Name:     name,
			Nickname: name,
			Email:    email,
		}),
	}
	if err := mgr.db.WithContext(c).Create(&user).Error; err != nil {
		return nil, err
	}
	if err := mgr.alert.WelcomeAlert(c, &user); err != nil {
		logutils.Log.Errorf("enqueue welcome notification failed: %v", err)
	}
	return &user, nil
}

type (
	RefreshReq struct {
		RefreshToken string `json:"refreshToken" binding:"required"` // 不需要添加 `Bearer ` 前缀
	}

	RefreshResp struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
)

// RefreshToken godoc
// @Summary 刷新令牌
// @Description 校验 Refresh Token，轮换出新的令牌对
// @Tags Auth
// @Accept json
// @Produce json
// @Param data body RefreshReq true "刷新参数"
// @Success 200 {object} resputil.Response[RefreshResp] "新的令牌对"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 401 {object} resputil.Response[any] "令牌无效或已过期"
// @Router /v1/auth/refresh [post]
func (mgr *AuthMgr) RefreshToken(c *gin.Context) {
	var req RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	claims, err := mgr.tokenMgr.CheckRefreshToken(req.RefreshToken)
	if err != nil {
		resputil.HTTPError(c, http.StatusUnauthorized, "Invalid refresh token", resputil.TokenInvalid)
		return
	}

	// The role may have been changed since the token was issued, so the new
	// pair is built from the current user row.
	user := &model.User{}
	if err := mgr.db.WithContext(c).First(user, claims.UserID).Error; err != nil {
		resputil.HTTPError(c, http.StatusUnauthorized, "User not found", resputil.TokenInvalid)
		return
	}
	if user.Status != model.StatusActive {
		resputil.HTTPError(c, http.StatusForbidden, "Account is deactivated", resputil.UserNotAllowed)
		return
	}

	jwtMessage := util.JWTMessage{
		UserID:       user.ID,
		Username:     user.Name,
		RolePlatform: user.Role,
	}
	accessToken, refreshToken, err := mgr.tokenMgr.CreateTokens(&jwtMessage)
	if err != nil {
		resputil.HTTPError(c, http.StatusInternalServerError, err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, RefreshResp{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
