package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arnavshah/capacity-planner-api/pkg/obs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UsageHistoryDays bounds how many daily rows a usage query returns
const UsageHistoryDays = 30

// UsageTotals sums a usage history
type UsageTotals struct {
	Requests int64   `json:"requests"`
	Days     int64   `json:"days"`
	Units    float64 `json:"units"`
}

// ErrRateLimited is returned by RecordUsage when today's request limit is used up
var ErrRateLimited = errors.New("daily rate limit exceeded")

// RecordUsage adds one planning request to today's counters for keyID with a single upsert.
// A positive limit makes the increment conditional on today's count being below it,
// so concurrent callers cannot overshoot; a rejected request records nothing.
func RecordUsage(ctx context.Context, db *gorm.DB, keyID uint, limit, days int, units float64) (err error) {
	defer obs.Time(ctx, "usage.record")(&err)

	today := time.Now().UTC().Format("2006-01-02")

	upsert := clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
			"total_days":    gorm.Expr("total_days + ?", days),
			"total_units":   gorm.Expr("total_units + ?", units),
		}),
	}
	if limit > 0 {
		upsert.Where = clause.Where{Exprs: []clause.Expression{
			gorm.Expr("api_usage.request_count < ?", limit),
		}}
	}

	res := db.WithContext(ctx).Clauses(upsert).Create(&APIUsage{
		KeyID:        keyID,
		Date:         today,
		RequestCount: 1,
		TotalDays:    days,
		TotalUnits:   units,
	})
	if res.Error != nil {
		return fmt.Errorf("record usage for key %d: %w", keyID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRateLimited
	}
	return nil
}

// UsageHistory returns the most recent daily usage rows for keyID, newest first
func UsageHistory(ctx context.Context, db *gorm.DB, keyID uint) ([]APIUsage, error) {
	var usage []APIUsage
	err := db.WithContext(ctx).
		Where("key_id = ?", keyID).
		Order("date desc").
		Limit(UsageHistoryDays).
		Find(&usage).Error
	if err != nil {
		return nil, fmt.Errorf("fetch usage for key %d: %w", keyID, err)
	}
	return usage, nil
}

// SumUsage totals a usage history
func SumUsage(usage []APIUsage) UsageTotals {
	var t UsageTotals
	for _, u := range usage {
		t.Requests += int64(u.RequestCount)
		t.Days += int64(u.TotalDays)
		t.Units += u.TotalUnits
	}
	return t
}
