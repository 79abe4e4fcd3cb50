// Package core defines the run log types shared by the storage backends.
package core

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"genealogycore/pkg/domain"
)

// Driver identifies a concrete run log backend implementation.
type Driver string

const (
	// DriverMemory represents the in-memory implementation (default, tests).
	DriverMemory Driver = "memory"
	// DriverSQLite represents the SQLite file implementation.
	DriverSQLite Driver = "sqlite"
	// DriverPostgres represents the Postgres implementation.
	DriverPostgres Driver = "postgres"
)

// Status reports how a run ended.
type Status string

const (
	// StatusCompleted marks a run that produced output.
	StatusCompleted Status = "completed"
	// StatusFailed marks a run aborted by a fatal error.
	StatusFailed Status = "failed"
)

// Run is one conversion invocation.
type Run struct {
	ID            string              `json:"id"`
	Direction     string              `json:"direction"`
	Input         string              `json:"input,omitempty"`
	Output        string              `json:"output,omitempty"`
	Status        Status              `json:"status"`
	Error         string              `json:"error,omitempty"`
	Persons       int                 `json:"persons"`
	Relationships int                 `json:"relationships"`
	Marriages     int                 `json:"marriages"`
	Families      int                 `json:"families"`
	Diagnostics   []domain.Diagnostic `json:"diagnostics,omitempty"`
	StartedAt     time.Time           `json:"started_at"`
	FinishedAt    time.Time           `json:"finished_at"`
}

// Store persists runs. Record upserts by run ID; List returns runs ordered
// by start time ascending.
type Store interface {
	Record(ctx context.Context, run Run) error
	List(ctx context.Context) ([]Run, error)
	Close() error
}

// NewID returns a random run identifier.
func NewID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
