package db

import (
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const dateFormat = "2006-01-02"

// SeedDefaultUsers inserts the default accounts when the users table is
// empty. Default users have the empty string as their password.
func SeedDefaultUsers(database *sql.DB) error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(""), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	users := []struct{ username, role string }{
		{"admin", "admin"},
		{"coordinator", "coordinator"},
		{"leader1", "leader"},
		{"leader2", "leader"},
		{"leader3", "leader"},
	}
	for _, u := range users {
		if _, err := database.Exec(
			"INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)",
			u.username, string(hash), u.role,
		); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}
	return nil
}

// SeedFixtures populates the database with development fixtures: camps in
// various states, rosters, attendance, an activity timeline, stock history
// and notifications. Existing fixture rows are cleared first.
func SeedFixtures(database *sql.DB) error {
	if err := SeedDefaultUsers(database); err != nil {
		return err
	}

	for _, table := range []string{
		"attendance_records", "activity_campers", "activities",
		"food_stock_history", "camper_registrations", "campers",
		"notifications", "camps",
	} {
		if _, err := database.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}

	today := time.Now()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(dateFormat)
	}

	var coordinatorID int64
	if err := database.QueryRow("SELECT id FROM users WHERE role = 'coordinator' LIMIT 1").Scan(&coordinatorID); err != nil {
		return fmt.Errorf("seed camps: %w", err)
	}

	camps := []struct {
		name, location       string
		lat, lon             float64
		start, end, campType string
		dailyStock           int
		rate                 float64
		foodPerCamper        int
		capacity             int
	}{
		{"Riverbend Expedition Camp", "Timbuktu", 16.7666, -3.0026, day(-2), day(1), "overnight", 15, 100.00, 5, 20},
		{"Sunset Valley Camp", "Sunset Valley", 34.0522, -118.2437, day(-5), day(2), "overnight", 10, 80.00, 3, 15},
		{"Mountain Expedition", "The Alps", 46.8200, 8.2300, day(30), day(32), "overnight", 5, 100.00, 5, 10},
		{"Desert Trek", "The Sahara", 23.4162, 25.6628, day(45), day(49), "expedition", 5, 150.00, 5, 10},
		{"Forest Exploration", "Greenwood Park", 39.8000, -89.6200, day(90), day(95), "day_camp", 5, 400.00, 2, 12},
	}
	campIDs := make([]int64, 0, len(camps))
	for _, c := range camps {
		res, err := database.Exec(`
			INSERT INTO camps (
				coordinator_id, name, location, latitude, longitude,
				start_date, end_date, type, approved_daily_food_stock,
				leader_daily_payment_rate, daily_food_per_camper, capacity
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			coordinatorID, c.name, c.location, c.lat, c.lon,
			c.start, c.end, c.campType, c.dailyStock, c.rate, c.foodPerCamper, c.capacity,
		)
		if err != nil {
			return fmt.Errorf("seed camps: %w", err)
		}
		id, _ := res.LastInsertId()
		campIDs = append(campIDs, id)
	}

	// Assign leaders round-robin across active leader accounts
	leaderRows, err := database.Query("SELECT id FROM users WHERE role = 'leader' AND is_disabled = 0 ORDER BY id")
	if err != nil {
		return fmt.Errorf("seed leaders: %w", err)
	}
	var leaderIDs []int64
	for leaderRows.Next() {
		var id int64
		if err := leaderRows.Scan(&id); err != nil {
			leaderRows.Close()
			return fmt.Errorf("seed leaders: %w", err)
		}
		leaderIDs = append(leaderIDs, id)
	}
	leaderRows.Close()
	for i, campID := range campIDs {
		if len(leaderIDs) == 0 {
			break
		}
		leaderID := leaderIDs[i%len(leaderIDs)]
		if _, err := database.Exec("UPDATE camps SET leader_id = ? WHERE id = ?", leaderID, campID); err != nil {
			return fmt.Errorf("seed leaders: %w", err)
		}
	}

	campers := []struct {
		camp      int // index into campIDs
		name, dob string
	}{
		{0, "Alice Pickles", "2005-04-12"},
		{0, "Ben Turner", "2006-01-23"},
		{0, "Finn Cooper", "2005-09-30"},
		{0, "Jack Rivers", "2006-08-14"},
		{1, "Chloe Adams", "2005-11-02"},
		{1, "Daniel Bright", "2007-03-15"},
		{1, "Ella Winters", "2006-07-08"},
		{1, "Grace Holloway", "2006-12-19"},
		{1, "Harry Kingston", "2007-02-27"},
		{1, "Isla Matthews", "2005-05-21"},
		{2, "Alice Johnson", "2012-04-11"},
		{2, "Ben Thompson", "2011-09-23"},
		{2, "Chloe Smith", "2013-06-05"},
		{3, "Ella Fitzgerald", "2011-02-28"},
		{3, "George Wilson", "2012-10-14"},
		{4, "Ruby Evans", "2011-06-18"},
		{4, "Samuel Turner", "2012-11-27"},
	}
	for _, cp := range campers {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO campers (camp_id, name, date_of_birth) VALUES (?, ?, ?)",
			campIDs[cp.camp], cp.name, cp.dob,
		); err != nil {
			return fmt.Errorf("seed campers: %w", err)
		}
	}

	if err := seedStockHistory(database); err != nil {
		return err
	}
	if err := seedAttendance(database); err != nil {
		return err
	}
	return seedActivities(database)
}

// seedStockHistory writes an initial allocation plus daily usage entries
// for camps that have started, mirroring what StockService records live.
func seedStockHistory(database *sql.DB) error {
	rows, err := database.Query("SELECT id, start_date, end_date, approved_daily_food_stock FROM camps")
	if err != nil {
		return fmt.Errorf("seed stock: %w", err)
	}
	type campRow struct {
		id         int64
		start, end string
		dailyStock int
	}
	var camps []campRow
	for rows.Next() {
		var c campRow
		if err := rows.Scan(&c.id, &c.start, &c.end, &c.dailyStock); err != nil {
			rows.Close()
			return fmt.Errorf("seed stock: %w", err)
		}
		camps = append(camps, c)
	}
	rows.Close()

	today := time.Now()
	for _, c := range camps {
		start, err := time.Parse(dateFormat, c.start)
		if err != nil {
			return fmt.Errorf("seed stock: %w", err)
		}
		end, err := time.Parse(dateFormat, c.end)
		if err != nil {
			return fmt.Errorf("seed stock: %w", err)
		}
		if start.After(today) {
			continue
		}

		fullDays := int(end.Sub(start).Hours()/24) + 1
		initial := c.dailyStock * fullDays
		running := initial

		if _, err := database.Exec(`
			INSERT INTO food_stock_history (camp_id, date, stock_available, change_amount, change_reason)
			VALUES (?, ?, ?, ?, ?)`,
			c.id, c.start, initial, initial, "initial allocation",
		); err != nil {
			return fmt.Errorf("seed stock: %w", err)
		}

		last := end
		if last.After(today) {
			last = today
		}
		days := int(last.Sub(start).Hours()/24) + 1
		for i := 0; i < days; i++ {
			running -= c.dailyStock
			if _, err := database.Exec(`
				INSERT INTO food_stock_history (camp_id, date, stock_available, change_amount, change_reason)
				VALUES (?, ?, ?, ?, ?)`,
				c.id, start.AddDate(0, 0, i).Format(dateFormat), running, -c.dailyStock, "daily usage",
			); err != nil {
				return fmt.Errorf("seed stock: %w", err)
			}
		}
	}
	return nil
}

func seedAttendance(database *sql.DB) error {
	rows, err := database.Query("SELECT id, start_date, end_date FROM camps")
	if err != nil {
		return fmt.Errorf("seed attendance: %w", err)
	}
	type campRow struct {
		id         int64
		start, end string
	}
	var camps []campRow
	for rows.Next() {
		var c campRow
		if err := rows.Scan(&c.id, &c.start, &c.end); err != nil {
			rows.Close()
			return fmt.Errorf("seed attendance: %w", err)
		}
		camps = append(camps, c)
	}
	rows.Close()

	today := time.Now()
	for _, c := range camps {
		start, err := time.Parse(dateFormat, c.start)
		if err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}
		end, err := time.Parse(dateFormat, c.end)
		if err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}
		if start.After(today) {
			continue
		}
		if end.After(today) {
			end = today
		}

		camperRows, err := database.Query("SELECT id FROM campers WHERE camp_id = ?", c.id)
		if err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}
		var camperIDs []int64
		for camperRows.Next() {
			var id int64
			if err := camperRows.Scan(&id); err != nil {
				camperRows.Close()
				return fmt.Errorf("seed attendance: %w", err)
			}
			camperIDs = append(camperIDs, id)
		}
		camperRows.Close()

		days := int(end.Sub(start).Hours()/24) + 1
		for i := 0; i < days; i++ {
			date := start.AddDate(0, 0, i).Format(dateFormat)
			for n, camperID := range camperIDs {
				status := "present"
				if (i+n)%4 == 3 {
					status = "absent"
				}
				if _, err := database.Exec(`
					INSERT INTO attendance_records (camp_id, camper_id, date, status)
					VALUES (?, ?, ?, ?)`,
					c.id, camperID, date, status,
				); err != nil {
					return fmt.Errorf("seed attendance: %w", err)
				}
			}
		}
	}
	return nil
}

func seedActivities(database *sql.DB) error {
	names := []string{"Archery", "Canoeing", "Hiking", "Campfire", "Swimming"}

	rows, err := database.Query("SELECT id, start_date FROM camps ORDER BY id")
	if err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}
	type campRow struct {
		id    int64
		start string
	}
	var camps []campRow
	for rows.Next() {
		var c campRow
		if err := rows.Scan(&c.id, &c.start); err != nil {
			rows.Close()
			return fmt.Errorf("seed activities: %w", err)
		}
		camps = append(camps, c)
	}
	rows.Close()

	today := time.Now()
	for _, c := range camps {
		start, err := time.Parse(dateFormat, c.start)
		if err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}

		camperRows, err := database.Query("SELECT id FROM campers WHERE camp_id = ?", c.id)
		if err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}
		var camperIDs []int64
		for camperRows.Next() {
			var id int64
			if err := camperRows.Scan(&id); err != nil {
				camperRows.Close()
				return fmt.Errorf("seed activities: %w", err)
			}
			camperIDs = append(camperIDs, id)
		}
		camperRows.Close()
		if len(camperIDs) == 0 {
			continue
		}

		for offset, name := range names {
			date := start.AddDate(0, 0, offset)
			if date.After(today) {
				break
			}
			res, err := database.Exec(`
				INSERT INTO activities (camp_id, activity_date, activity_name, notes)
				VALUES (?, ?, ?, ?)`,
				c.id, date.Format(dateFormat), name, "Notes for "+name,
			)
			if err != nil {
				return fmt.Errorf("seed activities: %w", err)
			}
			activityID, _ := res.LastInsertId()

			// Roughly three quarters of the roster joins each activity
			for n, camperID := range camperIDs {
				if (n+offset)%4 == 0 {
					continue
				}
				if _, err := database.Exec(
					"INSERT INTO activity_campers (activity_id, camper_id) VALUES (?, ?)",
					activityID, camperID,
				); err != nil {
					return fmt.Errorf("seed activities: %w", err)
				}
			}
		}
	}
	return nil
}
