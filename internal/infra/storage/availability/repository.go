package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TrainerService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с недельной и дневной доступностью тренеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// weeklyColumns колонки таблицы trainer_weekly_availability
var weeklyColumns = []string{
	"id",
	"trainer_id",
	"week_start_date",
	"week_end_date",
	"required_minutes",
	"total_booked_minutes",
	"created_at",
	"updated_at",
}

// dailyColumns колонки таблицы trainer_daily_availability
var dailyColumns = []string{
	"id",
	"trainer_id",
	"week_id",
	"date",
	"is_available",
	"total_day_minutes",
	"created_at",
	"updated_at",
}

// FindOrCreateWeek находит или создает недельную запись доступности
// Ключ недели - (trainer_id, week_start_date); requiredMinutes используется
// только при создании новой записи.
func (r *Repository) FindOrCreateWeek(ctx context.Context, trainerID int64, weekStart, weekEnd time.Time, requiredMinutes int) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainer_weekly_availability").
		Columns(
			"trainer_id",
			"week_start_date",
			"week_end_date",
			"required_minutes",
			"total_booked_minutes",
		).
		Values(trainerID, weekStart, weekEnd, requiredMinutes, 0).
		Suffix("ON CONFLICT (trainer_id, week_start_date) DO UPDATE SET updated_at = NOW()").
		Suffix("RETURNING id, trainer_id, week_start_date, week_end_date, required_minutes, total_booked_minutes, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreateWeek - build upsert query: %v", ErrBuildQuery, err)
	}

	week, err := scanWeekRow(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreateWeek - scan week: %v", ErrScanRow, err)
	}

	return week, nil
}

// GetWeekByID получает недельную запись по ID
func (r *Repository) GetWeekByID(ctx context.Context, id int64) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(weeklyColumns...).
		From("trainer_weekly_availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekByID - build select query: %v", ErrBuildQuery, err)
	}

	week, err := scanWeekRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekByID - scan week: %v", ErrScanRow, err)
	}

	return week, nil
}

// FindWeekByTrainerAndStart получает недельную запись по тренеру и началу недели
// В отличие от FindOrCreateWeek ничего не создаёт - нужен читающим сценариям.
func (r *Repository) FindWeekByTrainerAndStart(ctx context.Context, trainerID int64, weekStart time.Time) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(weeklyColumns...).
		From("trainer_weekly_availability").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Where(squirrel.Eq{"week_start_date": weekStart}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindWeekByTrainerAndStart - build select query: %v", ErrBuildQuery, err)
	}

	week, err := scanWeekRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindWeekByTrainerAndStart - scan week: %v", ErrScanRow, err)
	}

	return week, nil
}

// RecomputeWeekBookedMinutes пересчитывает total_booked_minutes недели
// как сумму total_day_minutes всех дневных записей этой недели.
// Пересчёт выполняется одним UPDATE (без read-modify-write на уровне
// приложения), поэтому конкурентные вызовы не теряют обновления.
func (r *Repository) RecomputeWeekBookedMinutes(ctx context.Context, weekID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `
		UPDATE trainer_weekly_availability
		SET total_booked_minutes = (
			SELECT COALESCE(SUM(total_day_minutes), 0)
			FROM trainer_daily_availability
			WHERE week_id = $1
		),
		updated_at = NOW()
		WHERE id = $1
		RETURNING total_booked_minutes`

	var total int
	err := executor.QueryRowContext(ctx, query, weekID).Scan(&total)
	if err == sql.ErrNoRows {
		return 0, ErrWeekNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: RecomputeWeekBookedMinutes - execute update: %v", ErrExecQuery, err)
	}

	return total, nil
}

// FindDailyByTrainerAndDate получает дневную запись по тренеру и дате
// Внутри транзакции блокирует строку (FOR UPDATE).
func (r *Repository) FindDailyByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) (*domain.DailyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(dailyColumns...).
		From("trainer_daily_availability").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Where(squirrel.Eq{"date": date})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindDailyByTrainerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	day, err := scanDayRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindDailyByTrainerAndDate - scan day: %v", ErrScanRow, err)
	}

	return day, nil
}

// UpsertDaily находит или создает дневную запись (ключ - trainer_id + date)
// и обновляет is_available, week_id и total_day_minutes.
func (r *Repository) UpsertDaily(ctx context.Context, day *domain.DailyAvailability) (*domain.DailyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainer_daily_availability").
		Columns(
			"trainer_id",
			"week_id",
			"date",
			"is_available",
			"total_day_minutes",
		).
		Values(day.TrainerID, day.WeekID, day.Date, day.IsAvailable, day.TotalDayMinutes).
		Suffix(`ON CONFLICT (trainer_id, date) DO UPDATE SET
			week_id = EXCLUDED.week_id,
			is_available = EXCLUDED.is_available,
			total_day_minutes = EXCLUDED.total_day_minutes,
			updated_at = NOW()`).
		Suffix("RETURNING id, trainer_id, week_id, date, is_available, total_day_minutes, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDaily - build upsert query: %v", ErrBuildQuery, err)
	}

	updated, err := scanDayRow(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDaily - scan day: %v", ErrScanRow, err)
	}

	return updated, nil
}

// CountLeaveDays считает количество дней отпуска тренера в периоде
// (дневные записи с is_available = false)
func (r *Repository) CountLeaveDays(ctx context.Context, trainerID int64, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("trainer_daily_availability").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Where(squirrel.Eq{"is_available": false}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountLeaveDays - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountLeaveDays - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanWeekRow сканирует недельную запись
func scanWeekRow(row rowScanner) (*domain.WeeklyAvailability, error) {
	var week domain.WeeklyAvailability
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&week.ID,
		&week.TrainerID,
		&week.WeekStartDate,
		&week.WeekEndDate,
		&week.RequiredMinutes,
		&week.TotalBookedMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	week.CreatedAt = createdAt.Time
	week.UpdatedAt = updatedAt.Time

	return &week, nil
}

// scanDayRow сканирует дневную запись
func scanDayRow(row rowScanner) (*domain.DailyAvailability, error) {
	var day domain.DailyAvailability
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&day.ID,
		&day.TrainerID,
		&day.WeekID,
		&day.Date,
		&day.IsAvailable,
		&day.TotalDayMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}
