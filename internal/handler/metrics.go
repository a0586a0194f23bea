package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/internal/payload"
	"github.com/raids-lab/orbit/internal/resputil"
	"github.com/raids-lab/orbit/pkg/workflow"
)

type MetricsMgr struct {
	name string
	db   *gorm.DB
}

func NewMetricsMgr(conf *RegisterConfig) Manager {
	return &MetricsMgr{
		name: "metrics",
		db:   conf.DB,
	}
}

func (mgr *MetricsMgr) GetName() string { return mgr.name }

func (mgr *MetricsMgr) RegisterPublic(metrics *gin.RouterGroup) {
	metrics.GET("", mgr.GetMetrics)
}

func (mgr *MetricsMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *MetricsMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// 声明一个自定义的注册表
var registry *prometheus.Registry

// 声明一个prom HTTP Handler
var promHTTPHandler http.Handler

// 注册用户数仪表盘
var usersGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "orbit_users_total",
		Help: "Total number of registered users",
	},
)

// 活跃用户数仪表盘
var activeUsersGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "orbit_active_users_total",
		Help: "Total number of active users",
	},
)

// 项目数仪表盘
var projectsGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "orbit_projects_total",
		Help: "Total number of projects",
	},
)

// 各状态 Issue 数量仪表盘
var issuesGauge = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orbit_issues_total",
		Help: "Number of issues per workflow status",
	},
	[]string{"status"},
)

// 待发送通知仪表盘
var pendingNotificationsGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "orbit_pending_notifications_total",
		Help: "Number of notifications waiting for delivery",
	},
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewMetricsMgr)
	registry = prometheus.NewRegistry()
	promHTTPHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	registry.MustRegister(usersGauge)
	registry.MustRegister(activeUsersGauge)
	registry.MustRegister(projectsGauge)
	registry.MustRegister(issuesGauge)
	registry.MustRegister(pendingNotificationsGauge)
}

// GetMetrics godoc
// @Summary 获取平台规模指标
// @Description 返回Prometheus能够识别的信息
// @Tags Metrics
// @Accept json
// @Produce json
// @Success 200 {array} resputil.Response[any] "成功返回"
// @Failure 500 {object} resputil.Response[any] "其他错误"
// @Router /v1/metrics [get]
func (mgr *MetricsMgr) GetMetrics(c *gin.Context) {
	if err := mgr.refreshGauges(c); err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	// 暴露自定义指标
	promHTTPHandler.ServeHTTP(c.Writer, c.Request)
}

// refreshGauges recomputes every gauge from the database, a scrape always
// reflects the current table contents.
func (mgr *MetricsMgr) refreshGauges(c *gin.Context) error {
	var totalUsers, activeUsers int64
	if err := mgr.db.WithContext(c).Model(&model.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}
	err := mgr.db.WithContext(c).Model(&model.User{}).
		Where("status = ?", model.StatusActive).
		Count(&activeUsers).Error
	if err != nil {
		return err
	}
	usersGauge.Set(float64(totalUsers))
	activeUsersGauge.Set(float64(activeUsers))

	var projects int64
	if err = mgr.db.WithContext(c).Model(&model.Project{}).Count(&projects).Error; err != nil {
		return err
	}
	projectsGauge.Set(float64(projects))

	var rows []payload.StatusCount
	err = mgr.db.WithContext(c).Model(&model.Issue{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	// 未出现的状态也要清零，避免残留上次的值
	for _, status := range workflow.AllStatuses() {
		issuesGauge.WithLabelValues(string(status)).Set(float64(counts[string(status)]))
	}

	var pending int64
	err = mgr.db.WithContext(c).Model(&model.Notification{}).
		Where("status = ?", model.NotifyStatusPending).
		Count(&pending).Error
	if err != nil {
		return err
	}
	pendingNotificationsGauge.Set(float64(pending))
	return nil
}
