package campstatus

import (
	"testing"
	"time"
)

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDerive(t *testing.T) {
	today := d("2026-07-10")

	cases := []struct {
		name string
		in   Input
		want string
	}{
		{
			name: "future without leader",
			in:   Input{Today: today, StartDate: d("2026-08-01"), EndDate: d("2026-08-14")},
			want: Planned,
		},
		{
			name: "future with leader no campers",
			in:   Input{Today: today, StartDate: d("2026-08-01"), EndDate: d("2026-08-14"), HasLeader: true},
			want: NoCampers,
		},
		{
			name: "future with campers short on food",
			in:   Input{Today: today, StartDate: d("2026-08-01"), EndDate: d("2026-08-14"), HasLeader: true, NumCampers: 10},
			want: InsufficientFood,
		},
		{
			name: "future fully provisioned",
			in:   Input{Today: today, StartDate: d("2026-08-01"), EndDate: d("2026-08-14"), HasLeader: true, NumCampers: 10, FoodSufficient: true},
			want: Ready,
		},
		{
			name: "running and viable",
			in:   Input{Today: today, StartDate: d("2026-07-01"), EndDate: d("2026-07-14"), HasLeader: true, NumCampers: 10, FoodSufficient: true},
			want: InProgress,
		},
		{
			name: "started without leader",
			in:   Input{Today: today, StartDate: d("2026-07-01"), EndDate: d("2026-07-14"), NumCampers: 10, FoodSufficient: true},
			want: Cancelled,
		},
		{
			name: "started with empty roster",
			in:   Input{Today: today, StartDate: d("2026-07-01"), EndDate: d("2026-07-14"), HasLeader: true, FoodSufficient: true},
			want: Cancelled,
		},
		{
			name: "past and viable",
			in:   Input{Today: today, StartDate: d("2026-06-01"), EndDate: d("2026-06-14"), HasLeader: true, NumCampers: 5, FoodSufficient: true},
			want: Completed,
		},
		{
			name: "past and short on food",
			in:   Input{Today: today, StartDate: d("2026-06-01"), EndDate: d("2026-06-14"), HasLeader: true, NumCampers: 5},
			want: Cancelled,
		},
		{
			name: "starts today",
			in:   Input{Today: today, StartDate: d("2026-07-10"), EndDate: d("2026-07-14"), HasLeader: true, NumCampers: 5, FoodSufficient: true},
			want: InProgress,
		},
		{
			name: "ends today",
			in:   Input{Today: today, StartDate: d("2026-07-01"), EndDate: d("2026-07-10"), HasLeader: true, NumCampers: 5, FoodSufficient: true},
			want: InProgress,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Derive(tc.in); got != tc.want {
				t.Errorf("Derive() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDeriveSingleCamperMeetsMinimum(t *testing.T) {
	in := Input{
		Today:          d("2026-07-10"),
		StartDate:      d("2026-08-01"),
		EndDate:        d("2026-08-14"),
		HasLeader:      true,
		NumCampers:     MinCampers,
		FoodSufficient: true,
	}
	if got := Derive(in); got != Ready {
		t.Errorf("Derive() = %q, want %q", got, Ready)
	}
}
