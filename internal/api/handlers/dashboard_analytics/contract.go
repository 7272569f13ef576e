package dashboard_analytics

import (
	"context"

	"github.com/m04kA/SMC-TrainerService/internal/service/analytics/models"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context, trainerID int64) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
