package primary

import "context"

// Attendance statuses.
const (
	AttendancePending = "pending"
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceService defines the primary port for daily attendance.
type AttendanceService interface {
	// RecordAttendance sets a camper's status for one camp day. Recording
	// the same camper/date again overwrites the earlier status.
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) error

	// Sheet returns a camp's attendance for one date.
	Sheet(ctx context.Context, campID int64, date string) ([]*AttendanceEntry, error)

	// Absences returns the number of absences for a camp on a date.
	Absences(ctx context.Context, campID int64, date string) (int, error)
}

// RecordAttendanceRequest contains parameters for recording attendance.
type RecordAttendanceRequest struct {
	CampID   int64  `validate:"required"`
	CamperID int64  `validate:"required"`
	Date     string `validate:"required,len=10"`
	Status   string `validate:"required,oneof=pending present absent"`
}

// AttendanceEntry is one camper's status for one date.
type AttendanceEntry struct {
	CamperID   int64
	CamperName string
	Date       string
	Status     string
}
