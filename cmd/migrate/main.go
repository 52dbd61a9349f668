package main

import (
	"log"
	"os"

	"hostel-mgmt-be/internal/model"
	"hostel-mgmt-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do perfectly)
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		// Extensions
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// Enums (Idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN CREATE TYPE user_role AS ENUM ('student', 'admin', 'warden'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_status') THEN CREATE TYPE user_status AS ENUM ('pending', 'active', 'blocked'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'payment_state') THEN CREATE TYPE payment_state AS ENUM ('NOT_STARTED', 'PAYMENT_PENDING', 'PAID', 'FAILED'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate for 12 Tables...")

	models := []interface{}{
		&model.User{},
		&model.PasswordResetToken{},
		&model.UserRefreshToken{},
		&model.Student{},
		&model.Room{},
		&model.RoommateGroup{},
		&model.RoommateRequest{},
		&model.RoomChangeRequest{},
		&model.Fee{},
		&model.Wallet{},
		&model.WalletTransaction{},
		&model.Notification{},
	}

	// Migrate strictly
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views & Functions
	log.Println("Step 3: Creating Views and Functions...")

	postMigrationSQL := []string{
		// Function: set_current_timestamp_updated_at
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		DECLARE _new_value TIMESTAMP WITH TIME ZONE;
		BEGIN
		  _new_value := now();
		  IF NEW.updated_at IS DISTINCT FROM _new_value THEN NEW.updated_at = _new_value; END IF;
		  RETURN NEW;
		END; $$;`,

		// View: room_occupancy_live
		`CREATE OR REPLACE VIEW room_occupancy_live AS
		 SELECT r.id AS room_id, r.room_number, r.capacity,
		        COUNT(s.id) FILTER (WHERE s.room_id = r.id) AS confirmed,
		        COUNT(st.id) FILTER (WHERE st.temporary_room_id = r.id) AS reserved
		 FROM rooms r
		 LEFT JOIN students s ON s.room_id = r.id
		 LEFT JOIN students st ON st.temporary_room_id = r.id
		 GROUP BY r.id, r.room_number, r.capacity;`,

		// View: student_fee_history
		`CREATE OR REPLACE VIEW student_fee_history AS
		 SELECT f.student_id, s.name, f.type, f.amount, f.status, f.paid_amount, f.paid_at, f.created_at
		 FROM fees f
		 JOIN students s ON f.student_id = s.id
		 ORDER BY f.created_at DESC;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
