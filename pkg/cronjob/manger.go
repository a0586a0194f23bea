package cronjob

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/pkg/alert"
	"github.com/raids-lab/orbit/pkg/cleaner"
)

type CronJobManager struct {
	DB             *gorm.DB
	Alert          alert.AlertInterface
	cleanerClients *cleaner.Clients
	cron           *cron.Cron
	cronMutex      sync.RWMutex
}

func NewCronJobManager(db *gorm.DB, alertMgr alert.AlertInterface) *CronJobManager {
	return &CronJobManager{
		DB:    db,
		Alert: alertMgr,
		cleanerClients: &cleaner.Clients{
			DB:    db,
			Alert: alertMgr,
		},
		cron: cron.New(cron.WithLocation(time.Local)),
	}
}
