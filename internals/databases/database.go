package database

import (
	"log"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sigaa_backend/internals/configs"
)

var (
	db       *gorm.DB
	connOnce sync.Once
)

// Connect returns the process-wide connection pool, building it on first use.
// Every caller after the first one gets the same *gorm.DB; the pool lives for
// the rest of the process and is closed from main on shutdown.
func Connect() *gorm.DB {
	connOnce.Do(func() {
		log.Println("🔌 Connecting to PostgreSQL...")

		conn, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  configs.DatabaseURL(),
			PreferSimpleProtocol: true, // PgBouncer friendly
		}), &gorm.Config{
			Logger: configs.NewGormLogger(),
		})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		db = conn
		tunePool()
		log.Println("✅ DB connected.")
	})
	return db
}

func tunePool() {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Close releases the underlying pool; safe to call once at shutdown.
func Close() {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
