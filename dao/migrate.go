package dao

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/dao/model"
)

func allModels() []any {
	return []any{
		&model.User{},
		&model.Project{},
		&model.UserProject{},
		&model.Issue{},
		&model.Notification{},
		&model.CronJobConfig{},
		&model.CronJobRecord{},
	}
}

// Migrate brings the schema up to date. A fresh database gets the full
// schema in one step via InitSchema, an existing one replays the numbered
// migrations it has not seen yet.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202608010001",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(allModels()...)
			},
		},
	})

	m.InitSchema(func(tx *gorm.DB) error {
		return tx.AutoMigrate(allModels()...)
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	klog.Info("database schema is up to date")
	return nil
}
