package query

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/raids-lab/orbit/pkg/config"
	"github.com/raids-lab/orbit/pkg/logutils"
)

var (
	once     sync.Once
	instance *gorm.DB
)

func buildDSN(host string) string {
	dbConfig := config.GetConfig()
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, dbConfig.Postgres.User, dbConfig.Postgres.Password, dbConfig.Postgres.DBName,
		dbConfig.Postgres.Port, dbConfig.Postgres.SSLMode, dbConfig.Postgres.TimeZone)
}

// GetDB returns the singleton instance of the database connection.
func GetDB() *gorm.DB {
	once.Do(func() {
		dbConfig := config.GetConfig()

		var err error
		instance, err = gorm.Open(postgres.Open(buildDSN(dbConfig.Postgres.Host)), &gorm.Config{})
		if err != nil {
			panic(err)
		}

		// Analytics endpoints issue wide group-by scans, route them to the
		// replica when one is configured.
		if replica := dbConfig.Postgres.ReplicaHost; replica != "" {
			err = instance.Use(dbresolver.Register(dbresolver.Config{
				Replicas: []gorm.Dialector{postgres.Open(buildDSN(replica))},
			}))
			if err != nil {
				panic(err)
			}
		}

		maxIdleConns := 5
		maxOpenConns := 10
		sqlDB, err := instance.DB()
		if err != nil {
			panic(err)
		}
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Hour)

		logutils.Log.Info("Postgres init success!")
	})
	return instance
}
