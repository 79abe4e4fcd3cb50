package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"genealogycore/internal/runlog"
	"genealogycore/pkg/domain"
)

func TestObserveRun(t *testing.T) {
	m := New()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m.ObserveRun(runlog.Run{
		ID:            "run-1",
		Direction:     "import",
		Status:        runlog.StatusCompleted,
		Persons:       3,
		Relationships: 2,
		Marriages:     1,
		Families:      1,
		Diagnostics: []domain.Diagnostic{
			{Kind: domain.DiagUnknownSex, Entity: domain.EntityPerson, EntityID: "@I1@"},
			{Kind: domain.DiagUnknownSex, Entity: domain.EntityPerson, EntityID: "@I4@"},
		},
		StartedAt:  base,
		FinishedAt: base.Add(200 * time.Millisecond),
	})
	m.ObserveRun(runlog.Run{ID: "run-2", Direction: "import", Status: runlog.StatusFailed})

	if got := testutil.ToFloat64(m.runsTotal.WithLabelValues("import", "completed")); got != 1 {
		t.Fatalf("runs completed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.runsTotal.WithLabelValues("import", "failed")); got != 1 {
		t.Fatalf("runs failed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.diagnosticsTotal.WithLabelValues("unknown_sex")); got != 2 {
		t.Fatalf("diagnostics = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.entitiesTotal.WithLabelValues("import", "persons")); got != 3 {
		t.Fatalf("persons = %v, want 3", got)
	}
}

func TestHandlerServesExposition(t *testing.T) {
	m := New()
	m.ObserveRun(runlog.Run{ID: "run-1", Direction: "export", Status: runlog.StatusCompleted, Persons: 1})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "genealogy_runs_total") {
		t.Fatalf("exposition missing runs counter:\n%s", body)
	}
}
