package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Staff{},
		&models.Service{},
		&models.Booking{},
		&models.Invoice{},
		&models.InvoiceLineItem{},
		&models.InvoiceCounter{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Overlap protection for active bookings. The FOR UPDATE re-check inside
	// the creation transaction handles the common path; this constraint is
	// the invariant under any isolation level. gorm cannot express it, so
	// raw DDL it is.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$ BEGIN
            ALTER TABLE bookings
                ADD CONSTRAINT bookings_staff_time_excl
                EXCLUDE USING gist (
                    staff_id WITH =,
                    tsrange(start_time, end_time) WITH &&
                )
                WHERE (status NOT IN ('CANCELLED', 'NO_SHOW'));
        EXCEPTION
            WHEN duplicate_table THEN NULL;
            WHEN duplicate_object THEN NULL;
        END $$;
    `)

	return db
}
