package database

import (
	"context"
	"time"

	"appliance-site/internal/domain/payload"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open prepares the Payload connection pool without dialing. A database that is down at
// startup or later surfaces as per-query errors, which the source classifies as Unavailable.
// Open only fails on an unusable DSN.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DB_URL not set")
	}
	if log == nil {
		log = zap.NewNop()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:               newZapLogger(log, logger.Warn),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Ping reports whether the database answers right now. Startup only logs the result.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Models are the Payload tables this site reads.
func Models() []any {
	return []any{
		&payload.Media{},
		&payload.Page{},
		&payload.PageBlock{},
		&payload.Service{},
		&payload.Post{},
		&payload.Testimonial{},
		&payload.TeamMember{},
		&payload.ServiceArea{},
		&payload.Brand{},
		&payload.Certification{},
		&payload.FAQ{},
		&payload.Settings{},
	}
}

// Migrate creates the tables for a local database. Production tables belong to Payload.
func Migrate(db *gorm.DB) error {
	// required for gen_random_uuid()
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return errors.Wrap(err, "failed to enable pgcrypto extension")
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "AutoMigrate error")
	}
	return nil
}
