package operations

import (
	"github.com/gin-gonic/gin"

	"github.com/raids-lab/orbit/internal/handler"
	"github.com/raids-lab/orbit/pkg/cronjob"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	handler.Registers = append(handler.Registers, NewOperationsMgr)
}

type OperationsMgr struct {
	name           string
	cronJobManager *cronjob.CronJobManager
}

func NewOperationsMgr(conf *handler.RegisterConfig) handler.Manager {
	return &OperationsMgr{
		name:           "operations",
		cronJobManager: conf.CronMgr,
	}
}

func (mgr *OperationsMgr) GetName() string { return mgr.name }

func (mgr *OperationsMgr) RegisterPublic(_ *gin.RouterGroup) {
}

func (mgr *OperationsMgr) RegisterProtected(_ *gin.RouterGroup) {
}

func (mgr *OperationsMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("/cronjob", mgr.GetCronjobConfigs)
	g.PUT("/cronjob", mgr.UpdateCronjobConfig)
	g.GET("/cronjob/name", mgr.GetCronjobNames)
	g.GET("/cronjob/record/timerange", mgr.GetCronjobRecordTimeRange)
	g.POST("/cronjob/record", mgr.GetCronjobRecords)
	g.DELETE("/cronjob/record", mgr.DeleteCronjobRecords)
}
