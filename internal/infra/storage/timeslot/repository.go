package timeslot

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

// Repository репозиторий для работы с временными слотами тренеров
//
// Слот - единственный источник истины об эксклюзивности бронирования:
// флаг is_booked меняется только через MarkBooked/MarkFree внутри
// транзакций бронирования.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// slotColumns колонки таблицы trainer_time_slots
var slotColumns = []string{
	"id",
	"daily_availability_id",
	"trainer_id",
	"date",
	"start_time",
	"end_time",
	"slot_type",
	"duration_minutes",
	"is_booked",
	"created_by",
	"created_at",
	"updated_at",
}

// Create создает новый временной слот
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainer_time_slots").
		Columns(
			"daily_availability_id",
			"trainer_id",
			"date",
			"start_time",
			"end_time",
			"slot_type",
			"duration_minutes",
			"is_booked",
			"created_by",
		).
		Values(
			slot.DailyAvailabilityID,
			slot.TrainerID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.SlotType,
			slot.DurationMinutes,
			slot.IsBooked,
			slot.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// CreateBatch создает набор слотов
// Вызывается внутри транзакции установки доступности, поэтому частичная
// вставка откатывается вместе с ней.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error) {
	created := make([]*domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		s, err := r.Create(ctx, slot)
		if err != nil {
			return nil, err
		}
		created = append(created, s)
	}
	return created, nil
}

// GetByID получает слот по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - используется
// транзакциями бронирования для предотвращения double-booking.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("trainer_time_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlotRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// List получает слоты по фильтру с пагинацией
// Возвращает страницу слотов (start_time ASC) и общее количество.
func (r *Repository) List(ctx context.Context, filter domain.TimeSlotFilter, page, pageSize int) ([]*domain.TimeSlot, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countBuilder := psqlbuilder.Select("COUNT(*)").
		From("trainer_time_slots").
		Where(squirrel.Eq{"trainer_id": filter.TrainerID})
	listBuilder := psqlbuilder.Select(slotColumns...).
		From("trainer_time_slots").
		Where(squirrel.Eq{"trainer_id": filter.TrainerID})

	if filter.Date != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"date": *filter.Date})
		listBuilder = listBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.CreatedBy != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"created_by": *filter.CreatedBy})
		listBuilder = listBuilder.Where(squirrel.Eq{"created_by": *filter.CreatedBy})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	offset := (page - 1) * pageSize
	listQuery, listArgs, err := listBuilder.
		OrderBy("start_time ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots, err := scanSlots(rows)
	if err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}

// ListByDailyAvailability получает все слоты дневной записи доступности
func (r *Repository) ListByDailyAvailability(ctx context.Context, dailyID int64) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("trainer_time_slots").
		Where(squirrel.Eq{"daily_availability_id": dailyID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDailyAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDailyAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// CountBookedByDailyAvailability считает забронированные слоты дневной записи
// Используется перед деструктивной заменой слотов и применением отпуска.
func (r *Repository) CountBookedByDailyAvailability(ctx context.Context, dailyID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("trainer_time_slots").
		Where(squirrel.Eq{"daily_availability_id": dailyID}).
		Where(squirrel.Eq{"is_booked": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountBookedByDailyAvailability - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBookedByDailyAvailability - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// DeleteByDailyAvailability удаляет все слоты дневной записи
// Деструктивная замена: установка доступности пересоздаёт слоты целиком.
func (r *Repository) DeleteByDailyAvailability(ctx context.Context, dailyID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("trainer_time_slots").
		Where(squirrel.Eq{"daily_availability_id": dailyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDailyAvailability - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByDailyAvailability - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// MarkBooked помечает слот забронированным
// Условный UPDATE: проверка is_booked = false и установка is_booked = true
// выполняются атомарно, окно для interleaving отсутствует.
func (r *Repository) MarkBooked(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainer_time_slots").
		Set("is_booked", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_booked": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotAlreadyBooked
	}

	return nil
}

// MarkFree освобождает слот для повторного бронирования
func (r *Repository) MarkFree(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainer_time_slots").
		Set("is_booked", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_booked": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkFree - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkFree - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkFree - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotBooked
	}

	return nil
}

// CountBookedInRange считает забронированные слоты тренера в периоде дат
// Используется аналитикой (booked в сводке за период).
func (r *Repository) CountBookedInRange(ctx context.Context, trainerID int64, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("trainer_time_slots").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Where(squirrel.Eq{"is_booked": true}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountBookedInRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBookedInRange - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSlotRow сканирует один слот
func scanSlotRow(row rowScanner) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.DailyAvailabilityID,
		&slot.TrainerID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.SlotType,
		&slot.DurationMinutes,
		&slot.IsBooked,
		&slot.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		slot, err := scanSlotRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
