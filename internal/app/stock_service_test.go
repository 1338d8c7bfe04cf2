package app

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/secondary"
)

func newStockFixture() (*StockServiceImpl, *mockCampRepo, *mockCamperRepo, *mockAttendanceRepo) {
	camps := newMockCampRepo()
	campers := newMockCamperRepo(camps)
	attendance := newMockAttendanceRepo()
	stock := newMockStockRepo(camps)
	svc := NewStockService(stock, camps, attendance, zap.NewNop())
	return svc, camps, campers, attendance
}

func TestStockService_TopUp(t *testing.T) {
	svc, camps, _, _ := newStockFixture()
	campID := camps.addCamp(&secondary.CampRecord{
		Name: "Camp", CoordinatorID: 1,
		StartDate: "2026-07-01", EndDate: "2026-07-14", Type: "day_camp",
	})

	level, err := svc.TopUp(context.Background(), campID, "2026-07-05", 50)
	if err != nil {
		t.Fatalf("TopUp failed: %v", err)
	}
	if level != 50 {
		t.Errorf("expected level 50, got %d", level)
	}

	if _, err := svc.TopUp(context.Background(), campID, "2026-07-05", 0); err == nil {
		t.Fatal("expected zero top up to be rejected")
	}
	if _, err := svc.TopUp(context.Background(), campID, "2026-07-05", -5); err == nil {
		t.Fatal("expected negative top up to be rejected")
	}
}

func TestStockService_ConsumeDailySkipsAbsentees(t *testing.T) {
	svc, camps, campers, attendance := newStockFixture()
	ctx := context.Background()

	campID := camps.addCamp(&secondary.CampRecord{
		Name: "Camp", CoordinatorID: 1,
		StartDate: "2026-07-01", EndDate: "2026-07-14", Type: "day_camp",
		DailyFoodPerCamper: 3, ApprovedDailyFoodStock: 100,
	})
	for _, c := range []struct{ name, dob string }{
		{"Ann Lee", "2014-03-02"},
		{"Ben Ray", "2013-11-20"},
		{"Cal Fox", "2015-06-10"},
	} {
		if _, err := campers.InsertOrIgnore(ctx, campID, c.name, c.dob); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	// One of three absent: 2 x 3 = 6 consumed.
	if err := attendance.Record(ctx, campID, 1, "2026-07-05", "absent"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	level, err := svc.ConsumeDaily(ctx, campID, "2026-07-05")
	if err != nil {
		t.Fatalf("ConsumeDaily failed: %v", err)
	}
	if level != 94 {
		t.Errorf("expected level 94, got %d", level)
	}
}

func TestStockService_ConsumeDailyNoAllotmentIsNoop(t *testing.T) {
	svc, camps, campers, _ := newStockFixture()
	ctx := context.Background()

	campID := camps.addCamp(&secondary.CampRecord{
		Name: "Camp", CoordinatorID: 1,
		StartDate: "2026-07-01", EndDate: "2026-07-14", Type: "day_camp",
		ApprovedDailyFoodStock: 100,
	})
	if _, err := campers.InsertOrIgnore(ctx, campID, "Ann Lee", "2014-03-02"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	level, err := svc.ConsumeDaily(ctx, campID, "2026-07-05")
	if err != nil {
		t.Fatalf("ConsumeDaily failed: %v", err)
	}
	if level != 100 {
		t.Errorf("expected unchanged level 100, got %d", level)
	}
}

func TestStockService_HistoryReasons(t *testing.T) {
	svc, camps, campers, _ := newStockFixture()
	ctx := context.Background()

	campID := camps.addCamp(&secondary.CampRecord{
		Name: "Camp", CoordinatorID: 1,
		StartDate: "2026-07-01", EndDate: "2026-07-14", Type: "day_camp",
		DailyFoodPerCamper: 2,
	})
	if _, err := campers.InsertOrIgnore(ctx, campID, "Ann Lee", "2014-03-02"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := svc.AllocateInitial(ctx, campID, "2026-07-01", 28); err != nil {
		t.Fatalf("AllocateInitial failed: %v", err)
	}
	if _, err := svc.ConsumeDaily(ctx, campID, "2026-07-01"); err != nil {
		t.Fatalf("ConsumeDaily failed: %v", err)
	}
	if _, err := svc.TopUp(ctx, campID, "2026-07-02", 10); err != nil {
		t.Fatalf("TopUp failed: %v", err)
	}

	history, err := svc.History(ctx, campID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	wantReasons := []string{"initial allocation", "daily usage", "top up"}
	for i, want := range wantReasons {
		if history[i].ChangeReason != want {
			t.Errorf("entry %d: expected reason %q, got %q", i, want, history[i].ChangeReason)
		}
	}
	if history[2].StockAvailable != 36 {
		t.Errorf("expected final level 36, got %d", history[2].StockAvailable)
	}
}
