package app

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

func newAttendanceFixture(t *testing.T) (*AttendanceServiceImpl, int64, int64) {
	t.Helper()
	camps := newMockCampRepo()
	campers := newMockCamperRepo(camps)
	attendance := newMockAttendanceRepo()

	campID := camps.addCamp(&secondary.CampRecord{
		Name: "Pine Ridge", CoordinatorID: 1,
		StartDate: "2026-07-01", EndDate: "2026-07-14", Type: "day_camp",
	})
	if _, err := campers.InsertOrIgnore(context.Background(), campID, "Ann Lee", "2014-03-02"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	svc := NewAttendanceService(attendance, campers, zap.NewNop())
	return svc, campID, 1
}

func TestAttendanceService_RecordAndOverwrite(t *testing.T) {
	svc, campID, camperID := newAttendanceFixture(t)
	ctx := context.Background()

	err := svc.RecordAttendance(ctx, primary.RecordAttendanceRequest{
		CampID: campID, CamperID: camperID, Date: "2026-07-02", Status: "present",
	})
	if err != nil {
		t.Fatalf("RecordAttendance failed: %v", err)
	}

	err = svc.RecordAttendance(ctx, primary.RecordAttendanceRequest{
		CampID: campID, CamperID: camperID, Date: "2026-07-02", Status: "absent",
	})
	if err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	absences, err := svc.Absences(ctx, campID, "2026-07-02")
	if err != nil {
		t.Fatalf("Absences failed: %v", err)
	}
	if absences != 1 {
		t.Errorf("expected 1 absence, got %d", absences)
	}
}

func TestAttendanceService_RecordValidation(t *testing.T) {
	svc, campID, camperID := newAttendanceFixture(t)
	ctx := context.Background()

	err := svc.RecordAttendance(ctx, primary.RecordAttendanceRequest{
		CampID: campID, CamperID: camperID, Date: "2026-07-02", Status: "late",
	})
	if err == nil {
		t.Fatal("expected invalid status to be rejected")
	}

	err = svc.RecordAttendance(ctx, primary.RecordAttendanceRequest{
		CampID: campID + 1, CamperID: camperID, Date: "2026-07-02", Status: "present",
	})
	if err == nil || !strings.Contains(err.Error(), "not enrolled") {
		t.Fatalf("expected enrollment error, got: %v", err)
	}
}
