package helper

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/raids-lab/orbit/dao"
	"github.com/raids-lab/orbit/dao/query"
	"github.com/raids-lab/orbit/internal/handler"
	"github.com/raids-lab/orbit/pkg/access"
	"github.com/raids-lab/orbit/pkg/alert"
	"github.com/raids-lab/orbit/pkg/config"
	"github.com/raids-lab/orbit/pkg/cronjob"
	"github.com/raids-lab/orbit/pkg/issuectl"
)

// ConfigInitializer 封装配置初始化逻辑
type ConfigInitializer struct {
	backendConfig *config.Config
}

// NewConfigInitializer 创建新的ConfigInitializer实例
func NewConfigInitializer() *ConfigInitializer {
	return &ConfigInitializer{
		backendConfig: config.GetConfig(),
	}
}

// GetBackendConfig 获取后端配置
func (ci *ConfigInitializer) GetBackendConfig() *config.Config {
	return ci.backendConfig
}

// LoadDebugEnvironment 加载调试环境变量
func (ci *ConfigInitializer) LoadDebugEnvironment() error {
	if gin.Mode() != gin.DebugMode {
		return nil
	}

	err := godotenv.Load(".debug.env")
	if err != nil {
		return err
	}

	be := os.Getenv("ORBIT_BE_PORT")
	if be == "" {
		panic("ORBIT_BE_PORT is not set")
	}

	ci.backendConfig.ServerAddr = ":" + be

	return nil
}

// InitializeRegisterConfig 初始化注册配置
func (ci *ConfigInitializer) InitializeRegisterConfig() (*handler.RegisterConfig, error) {
	registerConfig := &handler.RegisterConfig{}

	// init db and run migrations
	db := query.GetDB()
	if err := dao.Migrate(db); err != nil {
		return nil, err
	}
	registerConfig.DB = db

	// init project access checker
	registerConfig.Checker = access.NewChecker(db, ci.backendConfig.Workspace.OpenAccess)

	// init alert manager and issue lifecycle controller
	alertMgr := alert.GetAlertMgr()
	registerConfig.Alert = alertMgr
	registerConfig.IssueCtrl = issuectl.NewIssueController(db, alertMgr)

	// init cron job manager
	registerConfig.CronMgr = cronjob.NewCronJobManager(db, alertMgr)

	return registerConfig, nil
}
