package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/camptrack/internal/adapters/sqlite"
	"github.com/example/camptrack/internal/ports/secondary"
)

func TestCampRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCampRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")

	id, err := repo.Create(ctx, &secondary.CampRecord{
		Name:          "Pine Ridge",
		CoordinatorID: coord,
		Location:      "North Valley",
		Latitude:      47.2,
		Longitude:     -121.9,
		StartDate:     "2026-07-01",
		EndDate:       "2026-07-14",
		Type:          "overnight",
		Capacity:      30,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Pine Ridge" || got.Type != "overnight" || got.Capacity != 30 {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.LeaderID != 0 {
		t.Errorf("expected unclaimed camp, leader %d", got.LeaderID)
	}
}

func TestCampRepository_SchemaRejectsBadDates(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCampRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")

	cases := []struct {
		name       string
		start, end string
		wantErr    bool
	}{
		{"unpadded month", "2026-7-01", "2026-07-14", true},
		{"end before start", "2026-07-14", "2026-07-01", true},
		{"impossible but well-formed", "2026-02-30", "2026-03-01", false},
		{"valid", "2026-07-01", "2026-07-14", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Create(ctx, &secondary.CampRecord{
				Name:          "Test " + tc.name,
				CoordinatorID: coord,
				StartDate:     tc.start,
				EndDate:       tc.end,
				Type:          "day_camp",
			})
			if tc.wantErr && err == nil {
				t.Error("expected constraint violation")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCampRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCampRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	leader := seedUser(t, db, "leader1", "leader")

	seedCamp(t, db, "Claimed", coord, leader, "2026-07-01", "2026-07-14")
	seedCamp(t, db, "Unclaimed", coord, 0, "2026-08-01", "2026-08-14")

	unassigned, err := repo.List(ctx, secondary.CampFilters{Unassigned: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(unassigned) != 1 || unassigned[0].Name != "Unclaimed" {
		t.Fatalf("expected only the unclaimed camp, got %d", len(unassigned))
	}

	byLeader, err := repo.List(ctx, secondary.CampFilters{LeaderID: leader})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byLeader) != 1 || byLeader[0].Name != "Claimed" {
		t.Fatalf("expected only the claimed camp, got %d", len(byLeader))
	}
	if byLeader[0].LeaderUsername != "leader1" {
		t.Errorf("expected leader username joined, got %q", byLeader[0].LeaderUsername)
	}

	fromAug, err := repo.List(ctx, secondary.CampFilters{FromDate: "2026-08-01"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(fromAug) != 1 || fromAug[0].Name != "Unclaimed" {
		t.Fatalf("expected only the august camp, got %d", len(fromAug))
	}
}

func TestCampRepository_AssignLeaderOnlyWhenUnclaimed(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCampRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	leader1 := seedUser(t, db, "leader1", "leader")
	leader2 := seedUser(t, db, "leader2", "leader")
	campID := seedCamp(t, db, "Open", coord, 0, "2026-07-01", "2026-07-14")

	if err := repo.AssignLeader(ctx, campID, leader1); err != nil {
		t.Fatalf("AssignLeader failed: %v", err)
	}

	if err := repo.AssignLeader(ctx, campID, leader2); err == nil {
		t.Fatal("expected second claim to fail")
	}

	got, err := repo.GetByID(ctx, campID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.LeaderID != leader1 {
		t.Errorf("expected leader %d to keep the camp, got %d", leader1, got.LeaderID)
	}
}

func TestCampRepository_ActiveInWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCampRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	seedCamp(t, db, "July", coord, 0, "2026-07-01", "2026-07-14")
	seedCamp(t, db, "August", coord, 0, "2026-08-01", "2026-08-14")

	active, err := repo.ActiveInWindow(ctx, "2026-07-10", "2026-07-20")
	if err != nil {
		t.Fatalf("ActiveInWindow failed: %v", err)
	}
	if len(active) != 1 || active[0].Name != "July" {
		t.Fatalf("expected only the july camp, got %d", len(active))
	}
}

func TestCampRepository_ListWithCamperCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCampRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	campID := seedCamp(t, db, "Counted", coord, 0, "2026-07-01", "2026-07-14")
	seedCamper(t, db, campID, "Ann Lee", "2014-03-02")
	seedCamper(t, db, campID, "Ben Ray", "2013-11-20")

	camps, err := repo.ListWithCamperCounts(ctx)
	if err != nil {
		t.Fatalf("ListWithCamperCounts failed: %v", err)
	}
	if len(camps) != 1 {
		t.Fatalf("expected 1 camp, got %d", len(camps))
	}
	if camps[0].NumCampers != 2 {
		t.Errorf("expected 2 campers, got %d", camps[0].NumCampers)
	}
}

func TestCampRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCampRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	campID := seedCamp(t, db, "Doomed", coord, 0, "2026-07-01", "2026-07-14")
	camperID := seedCamper(t, db, campID, "Ann Lee", "2014-03-02")
	activityID := seedActivity(t, db, campID, "2026-07-02", "Archery", 0)
	if _, err := db.Exec("INSERT INTO activity_campers (activity_id, camper_id) VALUES (?, ?)", activityID, camperID); err != nil {
		t.Fatalf("failed to seed participation: %v", err)
	}
	if _, err := db.Exec("INSERT INTO attendance_records (camp_id, camper_id, date, status) VALUES (?, ?, '2026-07-02', 'present')", campID, camperID); err != nil {
		t.Fatalf("failed to seed attendance: %v", err)
	}

	if err := repo.Delete(ctx, campID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	for _, table := range []string{"campers", "activities", "activity_campers", "attendance_records"} {
		if n := countRows(t, db, table, ""); n != 0 {
			t.Errorf("expected %s emptied by cascade, got %d rows", table, n)
		}
	}
	// The coordinator account survives.
	if n := countRows(t, db, "users", ""); n != 1 {
		t.Errorf("expected user to survive, got %d rows", n)
	}
}

func TestCampRepository_SetRateAndFood(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCampRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	campID := seedCamp(t, db, "Tuned", coord, 0, "2026-07-01", "2026-07-14")

	if err := repo.SetLeaderDailyRate(ctx, campID, 150.5); err != nil {
		t.Fatalf("SetLeaderDailyRate failed: %v", err)
	}
	if err := repo.SetDailyFoodPerCamper(ctx, campID, 3); err != nil {
		t.Fatalf("SetDailyFoodPerCamper failed: %v", err)
	}

	got, err := repo.GetByID(ctx, campID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.LeaderDailyPaymentRate != 150.5 || got.DailyFoodPerCamper != 3 {
		t.Errorf("unexpected values: rate=%v food=%d", got.LeaderDailyPaymentRate, got.DailyFoodPerCamper)
	}
}
