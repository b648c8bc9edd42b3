package database

import (
	"fmt"
	"time"

	"github.com/arnavshah/capacity-planner-api/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"-"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table, one row per key per day
type APIUsage struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	KeyID        uint    `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date         string  `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount int     `gorm:"default:0" json:"request_count"`
	TotalDays    int     `gorm:"default:0" json:"total_days"`
	TotalUnits   float64 `gorm:"default:0" json:"total_units"`
}

// TableName overrides the pluralized default
func (APIUsage) TableName() string {
	return "api_usage"
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Open connects to Postgres when DATABASE_URL is set, otherwise to SQLite, and migrates the schema
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	gormCfg := &gorm.Config{}

	if cfg.DatabaseURL != "" {
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseURL,
			PreferSimpleProtocol: true,
		})
		gormCfg.PrepareStmt = false
	} else {
		dialector = sqlite.Open(cfg.DataPath)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens (and migrates) a SQLite database at path; ":memory:" is fine for tests
func OpenSQLite(path string) (*gorm.DB, error) {
	return Open(&config.Config{DataPath: path})
}

// Migrate creates or updates the tables the service owns
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
