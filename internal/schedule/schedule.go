// Package schedule derives calendar views from a user's client list.
package schedule

import (
	"sort"
	"time"

	"bizdesk_backend/internal/models"
)

// AppointmentLayout is the wall-clock format of Client.AppointmentDateTime.
const AppointmentLayout = "2006-01-02T15:04"

// DayLayout is the format of the keys returned by GroupByDate.
const DayLayout = "2006-01-02"

// Groups maps a day (YYYY-MM-DD) to that day's clients in time order.
type Groups map[string][]models.Client

// ParseAppointment reads a client's appointment as wall-clock time in loc.
func ParseAppointment(c models.Client, loc *time.Location) (time.Time, bool) {
	if c.AppointmentDateTime == nil || *c.AppointmentDateTime == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(AppointmentLayout, *c.AppointmentDateTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GroupByDate partitions clients by appointment day. Clients without a
// parseable appointment are left out.
func GroupByDate(clients []models.Client) Groups {
	groups := Groups{}
	for _, c := range clients {
		t, ok := ParseAppointment(c, time.UTC)
		if !ok {
			continue
		}
		day := t.Format(DayLayout)
		groups[day] = append(groups[day], c)
	}
	for day := range groups {
		entries := groups[day]
		sort.SliceStable(entries, func(i, j int) bool {
			return *entries[i].AppointmentDateTime < *entries[j].AppointmentDateTime
		})
	}
	return groups
}

// AppointmentDays lists the days of groups in ascending order.
func AppointmentDays(groups Groups) []string {
	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// ForDay returns the clients booked on day, or an empty slice.
func ForDay(groups Groups, day string) []models.Client {
	if entries, ok := groups[day]; ok {
		return entries
	}
	return []models.Client{}
}

// NextAppointment returns the client with the earliest appointment strictly
// after now. Appointment strings are read in now's location.
func NextAppointment(clients []models.Client, now time.Time) *models.Client {
	var next *models.Client
	var nextAt time.Time
	for i := range clients {
		t, ok := ParseAppointment(clients[i], now.Location())
		if !ok || !t.After(now) {
			continue
		}
		if next == nil || t.Before(nextAt) {
			next = &clients[i]
			nextAt = t
		}
	}
	if next == nil {
		return nil
	}
	found := *next
	return &found
}
