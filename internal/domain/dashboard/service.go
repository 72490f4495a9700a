package dashboard

import "context"

// DashboardService assembles the manager-facing summary view
type DashboardService interface {
	// GetDashboard returns combined dashboard data
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
