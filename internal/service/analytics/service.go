package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	availabilityRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-TrainerService/internal/service/analytics/models"
	"github.com/m04kA/SMC-TrainerService/pkg/datetime"
)

// Service сервис агрегированной статистики тренера
// Все показатели считаются на лету по таблицам слотов и бронирований,
// отдельных витрин нет.
type Service struct {
	bookingRepo      BookingRepository
	timeSlotRepo     TimeSlotRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(
	bookingRepo BookingRepository,
	timeSlotRepo TimeSlotRepository,
	availabilityRepo AvailabilityRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		timeSlotRepo:     timeSlotRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Dashboard собирает статистику тренера: сводки за текущую неделю,
// месяц и год, самые востребованные слоты по месяцам и часы текущей недели.
func (s *Service) Dashboard(ctx context.Context, trainerID int64) (*models.DashboardResponse, error) {
	if trainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	s.logger.Info("Dashboard: building analytics for trainer=%d", trainerID)

	weekStart, weekEnd := datetime.WeekBounds(now)
	monthStart, monthEnd := datetime.MonthBounds(now)
	yearStart, yearEnd := datetime.YearBounds(now)

	weekly, err := s.summaryForRange(ctx, trainerID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	monthly, err := s.summaryForRange(ctx, trainerID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	yearly, err := s.summaryForRange(ctx, trainerID, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}

	popular, err := s.monthlyPopularSlotStats(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	workingHours, err := s.currentWeekWorkingHours(ctx, trainerID, weekStart)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dashboard: successfully built analytics for trainer=%d", trainerID)
	return &models.DashboardResponse{
		Weekly:            weekly,
		Monthly:           monthly,
		Yearly:            yearly,
		PopularSlots:      popular,
		TotalWorkingHours: workingHours,
	}, nil
}

// summaryForRange считает сводку бронирований за период
// Процент посещаемости равен нулю, если забронированных слотов нет.
func (s *Service) summaryForRange(ctx context.Context, trainerID int64, from, to time.Time) (models.RangeSummary, error) {
	booked, err := s.timeSlotRepo.CountBookedInRange(ctx, trainerID, from, to)
	if err != nil {
		s.logger.Error("summaryForRange: failed to count booked slots for trainer=%d: %v", trainerID, err)
		return models.RangeSummary{}, fmt.Errorf("%w: summaryForRange - count booked: %v", ErrInternal, err)
	}

	attended, err := s.bookingRepo.CountAttendedInRange(ctx, trainerID, from, to)
	if err != nil {
		s.logger.Error("summaryForRange: failed to count attended bookings for trainer=%d: %v", trainerID, err)
		return models.RangeSummary{}, fmt.Errorf("%w: summaryForRange - count attended: %v", ErrInternal, err)
	}

	summary := models.RangeSummary{
		TotalBookedSlots: booked,
		AttendedSlots:    attended,
	}
	if booked > 0 {
		summary.AttendancePercentage = float64(attended) / float64(booked) * 100
	}

	return summary, nil
}

// monthlyPopularSlotStats находит для каждого месяца часовой диапазон
// с наибольшим количеством бронирований. При равенстве побеждает
// лексикографически меньшая метка диапазона, поэтому результат
// детерминирован.
func (s *Service) monthlyPopularSlotStats(ctx context.Context, trainerID int64) ([]models.PopularSlotStat, error) {
	infos, err := s.bookingRepo.ListSlotInfoByTrainer(ctx, trainerID)
	if err != nil {
		s.logger.Error("monthlyPopularSlotStats: failed to list slot info for trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: monthlyPopularSlotStats - list slot info: %v", ErrInternal, err)
	}

	// month -> label -> count
	byMonth := make(map[string]map[string]int)
	for _, info := range infos {
		month := info.MonthKey()
		if byMonth[month] == nil {
			byMonth[month] = make(map[string]int)
		}
		byMonth[month][info.HourRangeLabel()]++
	}

	stats := make([]models.PopularSlotStat, 0, len(byMonth))
	for month, labels := range byMonth {
		var bestLabel string
		bestCount := 0
		for label, count := range labels {
			if count > bestCount || (count == bestCount && label < bestLabel) {
				bestLabel = label
				bestCount = count
			}
		}
		stats = append(stats, models.PopularSlotStat{
			Month:        month,
			SlotLabel:    bestLabel,
			BookingCount: bestCount,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Month < stats[j].Month
	})

	return stats, nil
}

// currentWeekWorkingHours возвращает забронированные часы текущей недели
// Отсутствие недельной записи - это ноль часов, а не ошибка.
func (s *Service) currentWeekWorkingHours(ctx context.Context, trainerID int64, weekStart time.Time) (float64, error) {
	week, err := s.availabilityRepo.FindWeekByTrainerAndStart(ctx, trainerID, weekStart)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWeekNotFound) {
			return 0, nil
		}
		s.logger.Error("currentWeekWorkingHours: failed to find week for trainer=%d: %v", trainerID, err)
		return 0, fmt.Errorf("%w: currentWeekWorkingHours - find week: %v", ErrInternal, err)
	}

	return float64(week.TotalBookedMinutes) / 60, nil
}
