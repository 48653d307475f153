package models

import "encoding/json"

// Statistics espelha /appointments/barber/statistics/.
type Statistics struct {
	Barber string `json:"barber"`

	Last30Days struct {
		TotalAppointments  int            `json:"total_appointments"`
		Confirmed          int            `json:"confirmed"`
		Canceled           int            `json:"canceled"`
		Revenue            Money          `json:"revenue"`
		StatusDistribution map[string]int `json:"status_distribution"`
	} `json:"last_30_days_stats"`

	FinancialMetrics struct {
		LifetimeGrossRevenue Money `json:"lifetime_gross_revenue"`
		Last30DaysRevenue    Money `json:"last_30_days_revenue"`
	} `json:"financial_metrics"`

	// formatos não usados pela lógica, repassados como vieram
	TodayUpcomingAppointments []json.RawMessage `json:"today_upcoming_appointments"`
	MostPopularServices       []json.RawMessage `json:"most_popular_services"`
}
