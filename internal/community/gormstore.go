package community

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// submissionRow is the gorm model behind SQLiteStore. Column names mirror
// the shared spreadsheet schema so exports stay interchangeable.
type submissionRow struct {
	ID         uint      `gorm:"primaryKey"`
	Timestamp  time.Time `gorm:"column:timestamp"`
	Total      float64   `gorm:"column:total_emissions"`
	Devices    float64   `gorm:"column:devices_emissions"`
	Activities float64   `gorm:"column:digital_activities_emissions"`
	AITools    float64   `gorm:"column:ai_tools_emissions"`
}

func (submissionRow) TableName() string { return "submissions" }

// SQLiteStore keeps community records in a local SQLite database. It is an
// alternative to CSVStore for deployments where the shared file would see
// many concurrent writers; schema reconciliation is gorm's AutoMigrate.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLiteStore opens (creating if needed) the SQLite database at path
// and migrates the submissions table.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite community store: %w", err)
	}
	if err := db.AutoMigrate(&submissionRow{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite community store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes one record.
func (s *SQLiteStore) Append(ctx context.Context, rec Record) error {
	row := submissionRow{
		Timestamp:  rec.Timestamp.UTC(),
		Total:      rec.Total,
		Devices:    rec.Devices,
		Activities: rec.Activities,
		AITools:    rec.AITools,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append community record: %w", err)
	}
	return nil
}

// Records returns every stored record in insertion order.
func (s *SQLiteStore) Records(ctx context.Context) ([]Record, error) {
	var rows []submissionRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load community records: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{
			Timestamp:  row.Timestamp,
			Total:      row.Total,
			Devices:    row.Devices,
			Activities: row.Activities,
			AITools:    row.AITools,
		})
	}
	return records, nil
}
