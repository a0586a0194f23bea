package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/pkg/access"
	"github.com/raids-lab/orbit/pkg/alert"
	"github.com/raids-lab/orbit/pkg/cronjob"
	"github.com/raids-lab/orbit/pkg/issuectl"
)

// Manager routes one resource family. Registration is split by the
// middleware chain of the target group: public routes need no token,
// protected routes need a valid JWT, admin routes additionally need the
// platform admin role.
type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

// RegisterConfig carries the shared dependencies a manager may pick from.
type RegisterConfig struct {
	DB        *gorm.DB
	Checker   *access.Checker
	IssueCtrl issuectl.IssueControllerInterface
	Alert     alert.AlertInterface
	CronMgr   *cronjob.CronJobManager
}

// Registers collects the manager constructors of this package and its
// subpackages, appended from their init functions.
var Registers []func(*RegisterConfig) Manager
