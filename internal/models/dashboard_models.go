package models

// DashboardSummary is the payload of the dashboard landing card.
type DashboardSummary struct {
	TotalClients    int     `json:"total_clients"`
	ActiveClients   int     `json:"active_clients"`
	InactiveClients int     `json:"inactive_clients"`
	NextAppointment *Client `json:"next_appointment,omitempty"`
	Timezone        string  `json:"timezone"`
}

// CalendarView lists the days that carry appointments and, when a day was
// selected, that day's clients in time order.
type CalendarView struct {
	Days         []string            `json:"days"`
	Appointments map[string][]Client `json:"appointments"`
	SelectedDay  string              `json:"selected_day,omitempty"`
	Selected     []Client            `json:"selected,omitempty"`
}

// ChatMessage is one turn of an AI chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
