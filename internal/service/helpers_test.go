package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/taper/internal/intelligence"
	"github.com/alexanderramin/taper/internal/repository"
	"github.com/alexanderramin/taper/internal/testutil"
)

// testNow is a Wednesday; the containing week starts Monday 2026-03-02.
var testNow = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

var testWeekStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, client *testutil.FakeGenerationClient, opts ...PlanServiceOption) (PlanService, *repository.SQLiteStateRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteStateRepo(database)
	uow := testutil.NewTestUoW(database)
	gen := intelligence.NewWeekGenerator(client)

	opts = append([]PlanServiceOption{WithClock(func() time.Time { return testNow })}, opts...)
	svc := NewPlanService(store, uow, gen, NoopUseCaseObserver{}, opts...)
	return svc, store
}
