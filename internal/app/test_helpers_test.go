package app

import (
	"context"
	"fmt"

	"github.com/example/camptrack/internal/ports/secondary"
)

// In-memory repository fakes for service tests. Each implements just
// enough behavior for the workflows under test; unsupported paths fail
// loudly.

type mockUserRepo struct {
	users  map[int64]*secondary.UserRecord
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*secondary.UserRecord{}, nextID: 1}
}

func (m *mockUserRepo) addUser(username, role, hash string, disabled bool) int64 {
	id := m.nextID
	m.nextID++
	m.users[id] = &secondary.UserRecord{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		IsDisabled:   disabled,
	}
	return id
}

func (m *mockUserRepo) Create(_ context.Context, user *secondary.UserRecord) (int64, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return 0, fmt.Errorf("UNIQUE constraint failed: users.username")
		}
	}
	id := m.addUser(user.Username, user.Role, user.PasswordHash, user.IsDisabled)
	return id, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*secondary.UserRecord, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d not found", id)
	}
	return u, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*secondary.UserRecord, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s not found", username)
}

func (m *mockUserRepo) List(_ context.Context, disabledOnly bool) ([]*secondary.UserRecord, error) {
	var out []*secondary.UserRecord
	for _, u := range m.users {
		if disabledOnly && !u.IsDisabled {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) SetDisabled(_ context.Context, id int64, disabled bool) error {
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	u.IsDisabled = disabled
	return nil
}

func (m *mockUserRepo) SetPasswordHash(_ context.Context, id int64, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	u.PasswordHash = hash
	return nil
}

type mockCampRepo struct {
	camps   map[int64]*secondary.CampRecord
	rosters map[int64]int // camp id -> camper count
	nextID  int64
}

func newMockCampRepo() *mockCampRepo {
	return &mockCampRepo{
		camps:   map[int64]*secondary.CampRecord{},
		rosters: map[int64]int{},
		nextID:  1,
	}
}

func (m *mockCampRepo) addCamp(record *secondary.CampRecord) int64 {
	id := m.nextID
	m.nextID++
	record.ID = id
	m.camps[id] = record
	return id
}

func (m *mockCampRepo) Create(_ context.Context, camp *secondary.CampRecord) (int64, error) {
	if camp.EndDate < camp.StartDate {
		return 0, fmt.Errorf("CHECK constraint failed: end_date >= start_date")
	}
	clone := *camp
	return m.addCamp(&clone), nil
}

func (m *mockCampRepo) GetByID(_ context.Context, id int64) (*secondary.CampRecord, error) {
	c, ok := m.camps[id]
	if !ok {
		return nil, fmt.Errorf("camp %d not found", id)
	}
	return c, nil
}

func (m *mockCampRepo) List(_ context.Context, filters secondary.CampFilters) ([]*secondary.CampRecord, error) {
	var out []*secondary.CampRecord
	for _, c := range m.camps {
		if filters.CoordinatorID != 0 && c.CoordinatorID != filters.CoordinatorID {
			continue
		}
		if filters.LeaderID != 0 && c.LeaderID != filters.LeaderID {
			continue
		}
		if filters.Unassigned && c.LeaderID != 0 {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCampRepo) ListWithCamperCounts(_ context.Context) ([]*secondary.CampSummaryRecord, error) {
	var out []*secondary.CampSummaryRecord
	for _, c := range m.camps {
		out = append(out, &secondary.CampSummaryRecord{
			CampRecord: *c,
			NumCampers: m.rosters[c.ID],
		})
	}
	return out, nil
}

func (m *mockCampRepo) ActiveInWindow(_ context.Context, from, to string) ([]*secondary.CampRecord, error) {
	var out []*secondary.CampRecord
	for _, c := range m.camps {
		if c.StartDate <= to && c.EndDate >= from {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCampRepo) AssignLeader(_ context.Context, campID, leaderID int64) error {
	c, ok := m.camps[campID]
	if !ok || c.LeaderID != 0 {
		return fmt.Errorf("camp %d not found or already claimed", campID)
	}
	c.LeaderID = leaderID
	return nil
}

func (m *mockCampRepo) SetLeaderDailyRate(_ context.Context, campID int64, rate float64) error {
	c, ok := m.camps[campID]
	if !ok {
		return fmt.Errorf("camp %d not found", campID)
	}
	c.LeaderDailyPaymentRate = rate
	return nil
}

func (m *mockCampRepo) SetDailyFoodPerCamper(_ context.Context, campID int64, units int) error {
	c, ok := m.camps[campID]
	if !ok {
		return fmt.Errorf("camp %d not found", campID)
	}
	c.DailyFoodPerCamper = units
	return nil
}

func (m *mockCampRepo) Occupancy(_ context.Context, campID int64) (int, error) {
	return m.rosters[campID], nil
}

func (m *mockCampRepo) Delete(_ context.Context, campID int64) error {
	if _, ok := m.camps[campID]; !ok {
		return fmt.Errorf("camp %d not found", campID)
	}
	delete(m.camps, campID)
	return nil
}

type mockCamperRepo struct {
	campers map[int64]*secondary.CamperRecord
	nextID  int64
	camps   *mockCampRepo
}

func newMockCamperRepo(camps *mockCampRepo) *mockCamperRepo {
	return &mockCamperRepo{
		campers: map[int64]*secondary.CamperRecord{},
		nextID:  1,
		camps:   camps,
	}
}

func (m *mockCamperRepo) InsertOrIgnore(_ context.Context, campID int64, name, dob string) (bool, error) {
	for _, c := range m.campers {
		if c.CampID == campID && c.Name == name && c.DateOfBirth == dob {
			return false, nil
		}
	}
	id := m.nextID
	m.nextID++
	m.campers[id] = &secondary.CamperRecord{ID: id, CampID: campID, Name: name, DateOfBirth: dob}
	if m.camps != nil {
		m.camps.rosters[campID]++
	}
	return true, nil
}

func (m *mockCamperRepo) GetByID(_ context.Context, id int64) (*secondary.CamperRecord, error) {
	c, ok := m.campers[id]
	if !ok {
		return nil, fmt.Errorf("camper %d not found", id)
	}
	return c, nil
}

func (m *mockCamperRepo) ListByCamp(_ context.Context, campID int64) ([]*secondary.CamperRecord, error) {
	var out []*secondary.CamperRecord
	for _, c := range m.campers {
		if c.CampID == campID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCamperRepo) ExistsGlobally(_ context.Context, name, dob string) (bool, error) {
	for _, c := range m.campers {
		if c.Name == name && c.DateOfBirth == dob {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCamperRepo) CreateRegistration(_ context.Context, reg *secondary.RegistrationRecord) (int64, error) {
	return 1, nil
}

func (m *mockCamperRepo) RegistrationsByCamper(_ context.Context, camperID int64) ([]*secondary.RegistrationRecord, error) {
	return nil, nil
}

type mockNotificationRepo struct {
	notifications []*secondary.NotificationRecord
	nextID        int64
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{nextID: 1}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *secondary.NotificationRecord) (int64, error) {
	clone := *n
	clone.ID = m.nextID
	m.nextID++
	m.notifications = append(m.notifications, &clone)
	return clone.ID, nil
}

func (m *mockNotificationRepo) HasUnread(_ context.Context, campID int64, nType string) (bool, error) {
	for _, n := range m.notifications {
		if n.CampID == campID && n.Type == nType && !n.IsRead {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockNotificationRepo) ListByCoordinator(_ context.Context, coordinatorID int64, unreadOnly bool) ([]*secondary.NotificationRecord, error) {
	var out []*secondary.NotificationRecord
	for _, n := range m.notifications {
		if n.CoordinatorID != coordinatorID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id int64) error {
	for _, n := range m.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return fmt.Errorf("notification %d not found", id)
}

type participantKey struct {
	activityID int64
	camperID   int64
}

type mockActivityRepo struct {
	activities   map[int64]*secondary.ActivityRecord
	participants map[participantKey]bool
	nextID       int64
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{
		activities:   map[int64]*secondary.ActivityRecord{},
		participants: map[participantKey]bool{},
		nextID:       1,
	}
}

func (m *mockActivityRepo) Create(_ context.Context, a *secondary.ActivityRecord) (int64, error) {
	clone := *a
	clone.ID = m.nextID
	m.nextID++
	m.activities[clone.ID] = &clone
	return clone.ID, nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id int64) (*secondary.ActivityRecord, error) {
	a, ok := m.activities[id]
	if !ok {
		return nil, fmt.Errorf("activity %d not found", id)
	}
	return a, nil
}

func (m *mockActivityRepo) ListByCamp(_ context.Context, campID int64) ([]*secondary.ActivityRecord, error) {
	var out []*secondary.ActivityRecord
	for _, a := range m.activities {
		if a.CampID == campID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockActivityRepo) ListByLeader(_ context.Context, leaderID int64) ([]*secondary.ActivityRecord, error) {
	return nil, nil
}

func (m *mockActivityRepo) AddParticipant(_ context.Context, activityID, camperID int64) error {
	key := participantKey{activityID, camperID}
	if m.participants[key] {
		return secondary.ErrDuplicateParticipant
	}
	m.participants[key] = true
	return nil
}

func (m *mockActivityRepo) Participants(_ context.Context, activityID int64) ([]*secondary.CamperRecord, error) {
	return nil, nil
}

func (m *mockActivityRepo) ActivitiesForCamper(_ context.Context, camperID int64) ([]*secondary.ActivityRecord, error) {
	return nil, nil
}

type attendanceKey struct {
	campID   int64
	camperID int64
	date     string
}

type mockAttendanceRepo struct {
	statuses map[attendanceKey]string
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{statuses: map[attendanceKey]string{}}
}

func (m *mockAttendanceRepo) Record(_ context.Context, campID, camperID int64, date, status string) error {
	m.statuses[attendanceKey{campID, camperID, date}] = status
	return nil
}

func (m *mockAttendanceRepo) ListByCampDate(_ context.Context, campID int64, date string) ([]*secondary.AttendanceRecord, error) {
	var out []*secondary.AttendanceRecord
	for key, status := range m.statuses {
		if key.campID == campID && key.date == date {
			out = append(out, &secondary.AttendanceRecord{
				CampID:   campID,
				CamperID: key.camperID,
				Date:     date,
				Status:   status,
			})
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) AbsenceCount(_ context.Context, campID int64, date string) (int, error) {
	count := 0
	for key, status := range m.statuses {
		if key.campID == campID && key.date == date && status == "absent" {
			count++
		}
	}
	return count, nil
}

type mockStockRepo struct {
	camps   *mockCampRepo
	entries []*secondary.StockEntryRecord
	nextID  int64
}

func newMockStockRepo(camps *mockCampRepo) *mockStockRepo {
	return &mockStockRepo{camps: camps, nextID: 1}
}

func (m *mockStockRepo) Adjust(_ context.Context, campID int64, date string, delta int, reason string) (int, error) {
	c, ok := m.camps.camps[campID]
	if !ok {
		return 0, fmt.Errorf("camp %d not found", campID)
	}
	c.ApprovedDailyFoodStock += delta
	m.entries = append(m.entries, &secondary.StockEntryRecord{
		ID:             m.nextID,
		CampID:         campID,
		Date:           date,
		StockAvailable: c.ApprovedDailyFoodStock,
		ChangeAmount:   delta,
		ChangeReason:   reason,
	})
	m.nextID++
	return c.ApprovedDailyFoodStock, nil
}

func (m *mockStockRepo) History(_ context.Context, campID int64) ([]*secondary.StockEntryRecord, error) {
	var out []*secondary.StockEntryRecord
	for _, e := range m.entries {
		if e.CampID == campID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockStockRepo) CurrentLevel(_ context.Context, campID int64) (int, error) {
	c, ok := m.camps.camps[campID]
	if !ok {
		return 0, fmt.Errorf("camp %d not found", campID)
	}
	return c.ApprovedDailyFoodStock, nil
}

func (m *mockStockRepo) TotalConsumed(_ context.Context, campID int64) (int, error) {
	total := 0
	for _, e := range m.entries {
		if e.CampID == campID && e.ChangeAmount < 0 {
			total -= e.ChangeAmount
		}
	}
	return total, nil
}

var (
	_ secondary.UserRepository         = (*mockUserRepo)(nil)
	_ secondary.CampRepository         = (*mockCampRepo)(nil)
	_ secondary.CamperRepository       = (*mockCamperRepo)(nil)
	_ secondary.NotificationRepository = (*mockNotificationRepo)(nil)
	_ secondary.ActivityRepository     = (*mockActivityRepo)(nil)
	_ secondary.AttendanceRepository   = (*mockAttendanceRepo)(nil)
	_ secondary.StockRepository        = (*mockStockRepo)(nil)
)
