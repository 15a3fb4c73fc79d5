package model

import (
	"database/sql"
	"fmt"
	"time"
)

// PackageState tracks progress of one daily-package ingestion run.
type PackageState int

const (
	StateIdle PackageState = iota
	StateDownloading
	StateProcessing
	StateError
	StateTimeout
	StateComplete
)

// String returns the display name for the state.
func (s PackageState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDownloading:
		return "Downloading"
	case StateProcessing:
		return "Processing"
	case StateError:
		return "Error"
	case StateTimeout:
		return "Timeout"
	case StateComplete:
		return "Complete"
	}
	return fmt.Sprintf("Unknown(%d)", int(s))
}

// IsError reports whether the run has failed.
func (s PackageState) IsError() bool {
	return s == StateError
}

// PackageStatus is the per-archive status record. One row per daily package
// file name; the state machine moves
// idle -> downloading -> processing -> {error|timeout|complete}.
type PackageStatus struct {
	ID        int            `db:"id" json:"id"`
	FileName  string         `db:"file_name" json:"fileName"`
	FileDate  time.Time      `db:"file_date" json:"fileDate"`
	State     PackageState   `db:"status" json:"status"`
	StatusMsg sql.NullString `db:"status_msg" json:"statusMsg"`
	AddedAt   time.Time      `db:"added_timestamp" json:"addedAt"`
	UpdatedAt time.Time      `db:"modified_timestamp" json:"updatedAt"`
}

// FileDateFromName derives the package date from a daily package file name,
// e.g. "20190801_2019147.tar.gz" -> 2019-08-01.
func FileDateFromName(name string) (time.Time, error) {
	if len(name) < 8 {
		return time.Time{}, fmt.Errorf("file name %q too short for a date prefix", name)
	}
	t, err := time.Parse("20060102", name[:8])
	if err != nil {
		return time.Time{}, fmt.Errorf("file name %q has no valid date prefix: %w", name, err)
	}
	return t, nil
}
