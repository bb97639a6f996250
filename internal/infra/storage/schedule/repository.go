package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/pkg/dbmetrics"
	"github.com/clearpath-advisory/booking-service/pkg/psqlbuilder"
)

// Reuse the executor interfaces from dbmetrics, same as the appointment repo.
type DBExecutor = dbmetrics.DBExecutor

// Repository persists the weekly schedule, booking policy and blocked dates.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklySchedule returns all working-hours records ordered by weekday.
func (r *Repository) GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"weekday",
		"start_time",
		"end_time",
		"is_available",
	).
		From("working_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule, 0, 7)
	for rows.Next() {
		var wh domain.WorkingHours
		var weekday int
		if err := rows.Scan(&wh.ID, &weekday, &wh.StartTime, &wh.EndTime, &wh.IsAvailable); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan row: %v", ErrScanRow, err)
		}
		wh.Weekday = time.Weekday(weekday)
		schedule = append(schedule, wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// UpsertWorkingHours replaces the record for one weekday.
func (r *Repository) UpsertWorkingHours(ctx context.Context, wh domain.WorkingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("weekday", "start_time", "end_time", "is_available").
		Values(int(wh.Weekday), wh.StartTime, wh.EndTime, wh.IsAvailable).
		Suffix("ON CONFLICT (weekday) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, is_available = EXCLUDED.is_available").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertWorkingHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSettings returns the booking policy singleton.
func (r *Repository) GetSettings(ctx context.Context) (*domain.AdminSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_duration_minutes",
		"buffer_minutes",
		"advance_booking_days",
		"timezone",
		"updated_at",
	).
		From("admin_settings").
		Where(squirrel.Eq{"id": 1}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.AdminSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.AppointmentDurationMinutes,
		&settings.BufferMinutes,
		&settings.AdvanceBookingDays,
		&settings.Timezone,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	settings.UpdatedAt = updatedAt.Time
	return &settings, nil
}

// UpdateSettings overwrites the booking policy singleton.
func (r *Repository) UpdateSettings(ctx context.Context, settings *domain.AdminSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("admin_settings").
		Set("appointment_duration_minutes", settings.AppointmentDurationMinutes).
		Set("buffer_minutes", settings.BufferMinutes).
		Set("advance_booking_days", settings.AdvanceBookingDays).
		Set("timezone", settings.Timezone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": 1}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// ListBlockedDates returns blocked dates within [from, to], ascending.
func (r *Repository) ListBlockedDates(ctx context.Context, from, to time.Time) ([]domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "blocked_date", "reason").
		From("blocked_dates").
		Where(squirrel.GtOrEq{"blocked_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"blocked_date": to.Format(domain.DateFormat)}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]domain.BlockedDate, 0)
	for rows.Next() {
		var bd domain.BlockedDate
		if err := rows.Scan(&bd.ID, &bd.Date, &bd.Reason); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, bd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// IsDateBlocked reports whether a specific calendar date is blocked.
func (r *Repository) IsDateBlocked(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blocked_dates").
		Where(squirrel.Eq{"blocked_date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// AddBlockedDate blocks a calendar date. Re-blocking an already blocked
// date updates its reason.
func (r *Repository) AddBlockedDate(ctx context.Context, bd domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("blocked_date", "reason").
		Values(bd.Date.Format(domain.DateFormat), bd.Reason).
		Suffix("ON CONFLICT (blocked_date) DO UPDATE SET reason = EXCLUDED.reason RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&bd.ID); err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	return &bd, nil
}

// RemoveBlockedDate unblocks a calendar date.
func (r *Repository) RemoveBlockedDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"blocked_date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}
