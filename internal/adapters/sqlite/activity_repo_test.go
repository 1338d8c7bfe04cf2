package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/camptrack/internal/adapters/sqlite"
	"github.com/example/camptrack/internal/ports/secondary"
)

func TestActivityRepository_CreateAndTimeline(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	campID := seedCamp(t, db, "Pine Ridge", coord, 0, "2026-07-01", "2026-07-14")

	_, err := repo.Create(ctx, &secondary.ActivityRecord{
		CampID:       campID,
		ActivityDate: "2026-07-03",
		ActivityName: "Canoeing",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err = repo.Create(ctx, &secondary.ActivityRecord{
		CampID:        campID,
		ActivityDate:  "2026-07-02",
		ActivityName:  "Archery",
		IncidentCount: 1,
		Notes:         "one grazed finger",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	timeline, err := repo.ListByCamp(ctx, campID)
	if err != nil {
		t.Fatalf("ListByCamp failed: %v", err)
	}
	if len(timeline) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(timeline))
	}
	if timeline[0].ActivityName != "Archery" {
		t.Errorf("expected date order, got %q first", timeline[0].ActivityName)
	}
	if timeline[0].IncidentCount != 1 || timeline[0].Notes != "one grazed finger" {
		t.Errorf("unexpected record: %+v", timeline[0])
	}
	if timeline[0].CampName != "Pine Ridge" {
		t.Errorf("expected camp name joined, got %q", timeline[0].CampName)
	}
}

func TestActivityRepository_AddParticipantDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	campID := seedCamp(t, db, "Pine Ridge", coord, 0, "2026-07-01", "2026-07-14")
	camperID := seedCamper(t, db, campID, "Ann Lee", "2014-03-02")
	activityID := seedActivity(t, db, campID, "2026-07-02", "Archery", 0)

	if err := repo.AddParticipant(ctx, activityID, camperID); err != nil {
		t.Fatalf("AddParticipant failed: %v", err)
	}

	err := repo.AddParticipant(ctx, activityID, camperID)
	if !errors.Is(err, secondary.ErrDuplicateParticipant) {
		t.Fatalf("expected ErrDuplicateParticipant, got %v", err)
	}

	participants, err := repo.Participants(ctx, activityID)
	if err != nil {
		t.Fatalf("Participants failed: %v", err)
	}
	if len(participants) != 1 || participants[0].Name != "Ann Lee" {
		t.Errorf("unexpected participants: %+v", participants)
	}
}

func TestActivityRepository_AddParticipantUnknownCamper(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	campID := seedCamp(t, db, "Pine Ridge", coord, 0, "2026-07-01", "2026-07-14")
	activityID := seedActivity(t, db, campID, "2026-07-02", "Archery", 0)

	err := repo.AddParticipant(ctx, activityID, 999)
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
	if errors.Is(err, secondary.ErrDuplicateParticipant) {
		t.Error("foreign key violation must not be reported as duplicate")
	}
}

func TestActivityRepository_ActivitiesForCamper(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	campID := seedCamp(t, db, "Pine Ridge", coord, 0, "2026-07-01", "2026-07-14")
	ann := seedCamper(t, db, campID, "Ann Lee", "2014-03-02")
	ben := seedCamper(t, db, campID, "Ben Ray", "2013-11-20")

	archery := seedActivity(t, db, campID, "2026-07-02", "Archery", 0)
	canoeing := seedActivity(t, db, campID, "2026-07-03", "Canoeing", 0)

	for _, pair := range [][2]int64{{archery, ann}, {archery, ben}, {canoeing, ben}} {
		if err := repo.AddParticipant(ctx, pair[0], pair[1]); err != nil {
			t.Fatalf("AddParticipant failed: %v", err)
		}
	}

	history, err := repo.ActivitiesForCamper(ctx, ben)
	if err != nil {
		t.Fatalf("ActivitiesForCamper failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 activities for ben, got %d", len(history))
	}

	history, err = repo.ActivitiesForCamper(ctx, ann)
	if err != nil {
		t.Fatalf("ActivitiesForCamper failed: %v", err)
	}
	if len(history) != 1 || history[0].ActivityName != "Archery" {
		t.Errorf("unexpected history for ann: %+v", history)
	}
}

func TestActivityRepository_ListByLeader(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	coord := seedUser(t, db, "coordinator", "coordinator")
	leader := seedUser(t, db, "leader1", "leader")
	mine := seedCamp(t, db, "Mine", coord, leader, "2026-07-01", "2026-07-14")
	other := seedCamp(t, db, "Other", coord, 0, "2026-07-01", "2026-07-14")

	seedActivity(t, db, mine, "2026-07-02", "Archery", 0)
	seedActivity(t, db, other, "2026-07-02", "Swimming", 0)

	list, err := repo.ListByLeader(ctx, leader)
	if err != nil {
		t.Fatalf("ListByLeader failed: %v", err)
	}
	if len(list) != 1 || list[0].ActivityName != "Archery" {
		t.Errorf("unexpected list: %+v", list)
	}
}
