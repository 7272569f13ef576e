package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TrainerService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// bookingColumns колонки таблицы trainer_bookings
var bookingColumns = []string{
	"id",
	"customer_id",
	"trainer_id",
	"time_slot_id",
	"original_time_slot_id",
	"is_cancelled",
	"is_attended_by_trainer",
	"rescheduled_count",
	"last_rescheduled_at",
	"cancelled_at",
	"accolades",
	"created_at",
	"updated_at",
}

// Create создает новое бронирование
// original_time_slot_id фиксируется при создании и больше не меняется -
// это исходный слот бронирования, сохраняемый через все переносы.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	accolades := b.Accolades
	if accolades == nil {
		accolades = []int64{}
	}

	query, args, err := psqlbuilder.Insert("trainer_bookings").
		Columns(
			"customer_id",
			"trainer_id",
			"time_slot_id",
			"original_time_slot_id",
			"accolades",
		).
		Values(
			b.CustomerID,
			b.TrainerID,
			b.TimeSlotID,
			b.OriginalTimeSlotID,
			pq.Array(accolades),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции блокирует строку (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("trainer_bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListByTrainer получает бронирования тренера с пагинацией
// Сортировка - сначала новые (created_at DESC).
func (r *Repository) ListByTrainer(ctx context.Context, trainerID int64, page, pageSize int) ([]*domain.Booking, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("trainer_bookings").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListByTrainer - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListByTrainer - scan count: %v", ErrScanRow, err)
	}

	offset := (page - 1) * pageSize
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("trainer_bookings").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListByTrainer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListByTrainer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// SetAttendance устанавливает отметку о посещении
// Идемпотентная операция: повторный вызов с тем же значением безопасен.
func (r *Repository) SetAttendance(ctx context.Context, id int64, attended bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainer_bookings").
		Set("is_attended_by_trainer", attended).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAttendance - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAttendance - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAttendance - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отмечает бронирование отменённым
// Терминальное состояние; повторная отмена возвращает ErrAlreadyCancelled.
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainer_bookings").
		Set("is_cancelled", true).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_cancelled": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyCancelled
	}

	return nil
}

// Reschedule переносит бронирование на новый слот
// original_time_slot_id не трогаем - линия происхождения сохраняется.
func (r *Repository) Reschedule(ctx context.Context, id int64, newTimeSlotID int64, rescheduledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainer_bookings").
		Set("time_slot_id", newTimeSlotID).
		Set("rescheduled_count", squirrel.Expr("rescheduled_count + 1")).
		Set("last_rescheduled_at", rescheduledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_cancelled": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateAccolades целиком заменяет список наград бронирования
func (r *Repository) UpdateAccolades(ctx context.Context, id int64, accolades []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if accolades == nil {
		accolades = []int64{}
	}

	query, args, err := psqlbuilder.Update("trainer_bookings").
		Set("accolades", pq.Array(accolades)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateAccolades - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAccolades - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAccolades - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountAttendedInRange считает посещённые бронирования тренера,
// созданные в указанном периоде (attended в сводке за период)
func (r *Repository) CountAttendedInRange(ctx context.Context, trainerID int64, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("trainer_bookings").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		Where(squirrel.Eq{"is_attended_by_trainer": true}).
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.LtOrEq{"created_at": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAttendedInRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAttendedInRange - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListSlotInfoByTrainer получает проекцию бронирований тренера с данными
// текущих слотов. Используется статистикой популярных слотов.
func (r *Repository) ListSlotInfoByTrainer(ctx context.Context, trainerID int64) ([]*domain.BookingSlotInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"s.date",
		"s.start_time",
		"s.end_time",
	).
		From("trainer_bookings b").
		Join("trainer_time_slots s ON s.id = b.time_slot_id").
		Where(squirrel.Eq{"b.trainer_id": trainerID}).
		OrderBy("s.date ASC, s.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotInfoByTrainer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotInfoByTrainer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	infos := make([]*domain.BookingSlotInfo, 0)
	for rows.Next() {
		var info domain.BookingSlotInfo
		if err := rows.Scan(&info.BookingID, &info.SlotDate, &info.StartTime, &info.EndTime); err != nil {
			return nil, fmt.Errorf("%w: ListSlotInfoByTrainer - scan row: %v", ErrScanRow, err)
		}
		infos = append(infos, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSlotInfoByTrainer - rows error: %v", ErrScanRow, err)
	}

	return infos, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBookingRow сканирует одно бронирование
func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime
	var attended sql.NullBool
	var lastRescheduledAt, cancelledAt sql.NullTime
	var accolades pq.Int64Array

	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.TrainerID,
		&b.TimeSlotID,
		&b.OriginalTimeSlotID,
		&b.IsCancelled,
		&attended,
		&b.RescheduledCount,
		&lastRescheduledAt,
		&cancelledAt,
		&accolades,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if attended.Valid {
		b.IsAttendedByTrainer = &attended.Bool
	}
	if lastRescheduledAt.Valid {
		b.LastRescheduledAt = &lastRescheduledAt.Time
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	b.Accolades = []int64(accolades)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
