package tool

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/internal/handler"
	"github.com/raids-lab/orbit/internal/resputil"
	"github.com/raids-lab/orbit/internal/util"
	"github.com/raids-lab/orbit/pkg/access"
	"github.com/raids-lab/orbit/pkg/config"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	handler.Registers = append(handler.Registers, NewWebsocketMgr)
}

type WebsocketMgr struct {
	name    string
	db      *gorm.DB
	checker *access.Checker
	hub     *boardHub
}

func NewWebsocketMgr(conf *handler.RegisterConfig) handler.Manager {
	mgr := &WebsocketMgr{
		name:    "websocket",
		db:      conf.DB,
		checker: conf.Checker,
		hub:     newBoardHub(),
	}
	// 事件通道由控制器持有且永不关闭，泵随进程常驻
	go mgr.hub.pump(conf.IssueCtrl.Events())
	return mgr
}

func (mgr *WebsocketMgr) GetName() string { return mgr.name }

func (mgr *WebsocketMgr) RegisterPublic(_ *gin.RouterGroup) {}
func (mgr *WebsocketMgr) RegisterAdmin(_ *gin.RouterGroup)  {}

func (mgr *WebsocketMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("projects/:id/board", mgr.StreamBoardEvents)
}

type (
	BoardStreamReq struct {
		// from uri
		ProjectID uint `uri:"id" binding:"required"`
	}
)

const (
	// WriteTimeout specifies the maximum duration for completing a write operation.
	WriteTimeout = 10 * time.Second
	// PingInterval keeps idle board connections alive through proxies.
	PingInterval = 30 * time.Second
)

// StreamBoardEvents godoc
// @Summary 订阅看板事件
// @Description 升级为 WebSocket 连接，实时推送项目内 Issue 的创建、更新、状态流转和删除事件
// @Tags Tool
// @Security Bearer
// @Param id path int true "项目 ID"
// @Success 101 {object} any "协议升级成功"
// @Failure 400 {object} resputil.Response[any] "请求参数错误"
// @Failure 403 {object} resputil.Response[any] "没有项目访问权限"
// @Failure 404 {object} resputil.Response[any] "项目不存在"
// @Router /v1/websocket/projects/{id}/board [get]
func (mgr *WebsocketMgr) StreamBoardEvents(c *gin.Context) {
	var req BoardStreamReq
	if err := c.ShouldBindUri(&req); err != nil {
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
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	token := util.GetToken(c)
	if err := mgr.checker.RequireProjectView(c, token.RolePlatform, token.UserID, project); err != nil {
		resputil.WrapServiceError(c, err)
		return
	}

	var upgrade = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	// Allow all origins in debug mode
	if config.IsDebugMode() {
		upgrade.CheckOrigin = func(_ *http.Request) bool {
			return true
		}
	}
	ws, err := upgrade.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	defer ws.Close()

	sub := mgr.hub.subscribe(project.ID)
	defer mgr.hub.unsubscribe(project.ID, sub)

	// 读协程只负责感知客户端断开
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(PingInterval)
	defer ticker.Stop()

	for {
		select {
		case event := <-sub:
			if err := ws.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil {
				return
			}
			if err := ws.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			if err := ws.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil {
				return
			}
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
