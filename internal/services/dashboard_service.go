package services

import (
	"context"
	"time"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/schedule"
	"bizdesk_backend/internal/validation"
)

// DashboardService builds the calendar and dashboard views from the client list.
type DashboardService interface {
	Summary(ctx context.Context, session models.Session) (*models.DashboardSummary, error)
	Calendar(ctx context.Context, session models.Session, day string) (*models.CalendarView, error)
}

type dashboardService struct {
	clients  ClientService
	settings SettingsService
	now      func() time.Time
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(clients ClientService, settings SettingsService) DashboardService {
	return &dashboardService{clients: clients, settings: settings, now: time.Now}
}

func (s *dashboardService) Summary(ctx context.Context, session models.Session) (*models.DashboardSummary, error) {
	clients, err := s.clients.GetClients(ctx, session)
	if err != nil {
		return nil, err
	}
	loc := s.settings.Location(ctx, session)

	summary := &models.DashboardSummary{
		TotalClients: len(clients),
		Timezone:     loc.String(),
	}
	for _, c := range clients {
		switch c.Status {
		case models.ClientStatusActive:
			summary.ActiveClients++
		case models.ClientStatusInactive:
			summary.InactiveClients++
		}
	}
	summary.NextAppointment = schedule.NextAppointment(clients, s.now().In(loc))
	return summary, nil
}

// Calendar groups the clients by appointment day; day, when set, selects one.
func (s *dashboardService) Calendar(ctx context.Context, session models.Session, day string) (*models.CalendarView, error) {
	if day != "" && !validation.IsDate(day) {
		return nil, validation.FieldErrors{"date": "Date must be in YYYY-MM-DD format."}
	}
	clients, err := s.clients.GetClients(ctx, session)
	if err != nil {
		return nil, err
	}

	groups := schedule.GroupByDate(clients)
	view := &models.CalendarView{
		Days:         schedule.AppointmentDays(groups),
		Appointments: groups,
	}
	if day != "" {
		view.SelectedDay = day
		view.Selected = schedule.ForDay(groups, day)
	}
	return view, nil
}
