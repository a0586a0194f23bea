package main

import (
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/cmd/orbit/helper"
	"github.com/raids-lab/orbit/pkg/alert"
)

// @title						Orbit API
// @version					1.0.0
// @description				This is the API server for Orbit, an agile issue tracking platform for small teams.
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description				访问 /v1/auth/login 并获取 TOKEN 后，填入 'Bearer ${TOKEN}' 以访问受保护的接口
func main() {
	// Initialize configuration
	configInit := helper.NewConfigInitializer()
	backendConfig := configInit.GetBackendConfig()

	// Load debug environment if needed
	if err := configInit.LoadDebugEnvironment(); err != nil {
		klog.Fatalf("Failed to load env: %s", err)
	}

	// Initialize register config and dependencies
	registerConfig, err := configInit.InitializeRegisterConfig()
	if err != nil {
		klog.Fatalf("Failed to register config: %s\n", err)
	}

	// Initialize signal handler
	ctx := helper.SetupSignalHandler()

	// Start the async notification dispatcher
	alert.StartDispatcher(ctx)

	// Load cron jobs from database and start the scheduler
	registerConfig.CronMgr.SyncCronJob()
	defer registerConfig.CronMgr.StopCron()

	// Start HTTP server
	serverRunner := helper.NewServerRunner(backendConfig)
	serverRunner.StartServer(ctx, registerConfig)
}
