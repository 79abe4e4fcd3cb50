// Package runlog records conversion runs: what was converted, what it
// produced, and which diagnostics the resolver raised along the way.
// Callers depend on Store here instead of the infra packages.
package runlog

import (
	"fmt"
	"os"

	memorystore "genealogycore/internal/infra/runlog/memory"
	postgresstore "genealogycore/internal/infra/runlog/postgres"
	sqlitestore "genealogycore/internal/infra/runlog/sqlite"
	"genealogycore/internal/runlog/core"
)

type (
	// Driver identifies a run log backend driver.
	Driver = core.Driver
	// Status reports how a run ended.
	Status = core.Status
	// Run is one conversion invocation.
	Run = core.Run
	// Store is the interface for run log backends.
	Store = core.Store
)

const (
	// DriverMemory is the in-memory driver.
	DriverMemory = core.DriverMemory
	// DriverSQLite is the SQLite file driver.
	DriverSQLite = core.DriverSQLite
	// DriverPostgres is the Postgres driver.
	DriverPostgres = core.DriverPostgres

	// StatusCompleted marks a run that produced output.
	StatusCompleted = core.StatusCompleted
	// StatusFailed marks a run aborted by a fatal error.
	StatusFailed = core.StatusFailed
)

// NewID returns a random run identifier.
func NewID() string { return core.NewID() }

// NewMemory returns an in-memory Store suitable for tests.
func NewMemory() Store { return memorystore.New() }

// Open selects a Store implementation using environment variables.
//
//	GENEALOGYCORE_RUNLOG_DRIVER: memory|sqlite|postgres (default memory)
//	GENEALOGYCORE_RUNLOG_SQLITE_PATH: database path when driver=sqlite
//	GENEALOGYCORE_RUNLOG_POSTGRES_DSN: connection string when driver=postgres
func Open() (Store, error) {
	driver := os.Getenv("GENEALOGYCORE_RUNLOG_DRIVER")
	if driver == "" {
		driver = string(DriverMemory)
	}
	switch Driver(driver) {
	case DriverMemory:
		return memorystore.New(), nil
	case DriverSQLite:
		return sqlitestore.New(os.Getenv("GENEALOGYCORE_RUNLOG_SQLITE_PATH"))
	case DriverPostgres:
		return postgresstore.New(os.Getenv("GENEALOGYCORE_RUNLOG_POSTGRES_DSN"))
	default:
		return nil, fmt.Errorf("unknown runlog driver %s", driver)
	}
}
