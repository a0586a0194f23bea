package logutils

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Log 是业务日志的共享实例，框架与基础设施日志走 klog，
// 带字段的业务日志统一从这里输出
var Log = newLogger()

// Fields re-exports logrus.Fields so callers do not import logrus directly.
type Fields = logrus.Fields

func newLogger() *logrus.Logger {
	logger := logrus.New()

	level := logrus.InfoLevel
	if gin.Mode() == gin.DebugMode {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	logger.SetReportCaller(true)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:             true,
		TimestampFormat:           "2006-01-02 15:04:05",
		ForceColors:               true,
		EnvironmentOverrideColors: true,
	})
	return logger
}
