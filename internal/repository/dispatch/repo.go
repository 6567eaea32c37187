package dispatch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/appointment-reminder/internal/model"
)

var (
	ErrDispatchNotFound  = errors.New("reminder dispatch not found")
	ErrConcurrentUpdate  = errors.New("reminder dispatch was modified concurrently")
	ErrNoDispatchesGiven = errors.New("no reminder dispatches to create")
)

// casAttempts bounds the reload-and-reapply loop of a status write.
const casAttempts = 3

const table = "reminder_dispatches"

var columns = []string{
	"id", "appointment_id", "client_id", "user_id", "scheduled_for", "offset_minutes",
	"status", "sent_at", "retry_count", "error_message", "notification_type", "queue",
	"next_attempt_at", "created_at", "updated_at",
}

const (
	insertQuery = `
		INSERT INTO reminder_dispatches (
		    id, appointment_id, client_id, user_id, scheduled_for, offset_minutes,
		    status, retry_count, notification_type, queue
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at;
    `

	selectByIDQuery = `
		SELECT id, appointment_id, client_id, user_id, scheduled_for, offset_minutes,
		       status, sent_at, retry_count, error_message, notification_type, queue,
		       next_attempt_at, created_at, updated_at
		FROM reminder_dispatches
		WHERE id = $1;
    `

	updateStateQuery = `
		UPDATE reminder_dispatches
		SET status = $1, sent_at = $2, retry_count = $3, error_message = $4,
		    scheduled_for = $5, next_attempt_at = $6, updated_at = $7
		WHERE id = $8 AND status = $9 AND retry_count = $10;
    `

	selectDueQuery = `
		SELECT id
		FROM reminder_dispatches
		WHERE (status = 'pending' AND scheduled_for <= $1)
		   OR (status = 'failed' AND retry_count < $2 AND next_attempt_at <= $1)
		ORDER BY scheduled_for
		LIMIT $3;
    `
)

// Repository persists reminder dispatches.
//
// Status columns are only written through MarkSent, MarkFailed, Reset and
// Cancel. Each of them is a compare-and-set on the previously read status
// and retry count, so concurrent writers never overwrite each other blindly.
type Repository struct {
	db *dbpg.DB
	sb sq.StatementBuilderType
}

// NewRepository creates a new dispatch repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateBatch inserts all dispatches in one transaction. Either every
// record is stored or none is.
func (r *Repository) CreateBatch(ctx context.Context, dispatches []model.Dispatch) ([]model.Dispatch, error) {
	if len(dispatches) == 0 {
		return nil, ErrNoDispatchesGiven
	}

	for i := range dispatches {
		if err := dispatches[i].Validate(); err != nil {
			return nil, fmt.Errorf("validate dispatch %s: %w", dispatches[i].ID, err)
		}
	}

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	created := make([]model.Dispatch, 0, len(dispatches))
	for _, d := range dispatches {
		err := tx.QueryRowContext(
			ctx, insertQuery,
			d.ID, d.AppointmentID, nullUUID(d.ClientID), d.UserID, d.ScheduledFor, d.OffsetMinutes,
			d.Status, d.RetryCount, d.Channel, d.Queue,
		).Scan(&d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create dispatch %s: %w", d.ID, err)
		}

		d.CreatedAt = d.CreatedAt.UTC()
		d.UpdatedAt = d.UpdatedAt.UTC()
		created = append(created, d)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit dispatches: %w", err)
	}

	return created, nil
}

// GetByID loads a single dispatch.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Dispatch, error) {
	d, err := scanDispatch(r.db.Master.QueryRowContext(ctx, selectByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Dispatch{}, ErrDispatchNotFound
		}

		return model.Dispatch{}, fmt.Errorf("failed to get dispatch %s: %w", id, err)
	}

	return d, nil
}

// GetStatus returns the current status of a dispatch.
func (r *Repository) GetStatus(ctx context.Context, id uuid.UUID) (model.Status, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	return d.Status, nil
}

// ListByAppointment returns the dispatches of an appointment, optionally
// restricted to one status, oldest fire time first.
func (r *Repository) ListByAppointment(ctx context.Context, appointmentID uuid.UUID, status *model.Status) ([]model.Dispatch, error) {
	q := r.sb.Select(columns...).
		From(table).
		Where(sq.Eq{"appointment_id": appointmentID.String()}).
		OrderBy("scheduled_for ASC", "created_at ASC")
	if status != nil {
		q = q.Where(sq.Eq{"status": string(*status)})
	}

	return r.list(ctx, q)
}

// ListFailed returns failed dispatches matching the filter. Filters combine
// conjunctively; All places no extra restriction.
func (r *Repository) ListFailed(ctx context.Context, filter model.RetryFilter) ([]model.Dispatch, error) {
	q := r.sb.Select(columns...).
		From(table).
		Where(sq.Eq{"status": string(model.StatusFailed)}).
		OrderBy("scheduled_for ASC")

	if len(filter.IDs) > 0 {
		ids := make([]string, 0, len(filter.IDs))
		for _, id := range filter.IDs {
			ids = append(ids, id.String())
		}
		q = q.Where(sq.Eq{"id": ids})
	}
	if filter.Queue != "" {
		q = q.Where(sq.Eq{"queue": filter.Queue})
	}

	return r.list(ctx, q)
}

// ListDue returns up to limit ids of dispatches that should have an
// attempt running at now: pending records past their fire time and failed
// records whose automatic retry is overdue.
func (r *Repository) ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, selectDueQuery, now.UTC(), model.MaxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list due dispatches: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan due dispatch: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due dispatches: %w", err)
	}

	return ids, nil
}

// CountByStatus returns the number of dispatches per status. Statuses with
// no records are reported as zero.
func (r *Repository) CountByStatus(ctx context.Context) (map[model.Status]int64, error) {
	query, args, err := r.sb.Select("status", "COUNT(*)").From(table).GroupBy("status").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count dispatches: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.Status]int64, len(model.Statuses))
	for _, st := range model.Statuses {
		counts[st] = 0
	}

	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan dispatch count: %w", err)
		}

		counts[model.Status(status)] = n
	}

	return counts, rows.Err()
}

// MarkSent records a successful delivery.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (model.Dispatch, error) {
	return r.apply(ctx, id, func(d *model.Dispatch) error {
		return d.MarkSent(at)
	})
}

// MarkFailed records a failed delivery attempt.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) (model.Dispatch, error) {
	return r.apply(ctx, id, func(d *model.Dispatch) error {
		return d.MarkFailed(reason, at)
	})
}

// Reset re-arms a failed dispatch for immediate delivery.
func (r *Repository) Reset(ctx context.Context, id uuid.UUID, at time.Time) (model.Dispatch, error) {
	return r.apply(ctx, id, func(d *model.Dispatch) error {
		return d.Reset(at)
	})
}

// Cancel stops further delivery of a dispatch.
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, at time.Time) (model.Dispatch, error) {
	return r.apply(ctx, id, func(d *model.Dispatch) error {
		return d.Cancel(at)
	})
}

// CancelByAppointment cancels every dispatch of an appointment that may still
// be cancelled and returns the ids it cancelled. It is a single statement
// rather than a per-row apply; the status guard is derived from the same
// transition table, so it cannot cancel a record Cancel would refuse.
func (r *Repository) CancelByAppointment(ctx context.Context, appointmentID uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	from := model.SourcesOf(model.StatusCancelled)
	statuses := make([]string, 0, len(from))
	for _, s := range from {
		statuses = append(statuses, string(s))
	}

	query, args, err := r.sb.Update(table).
		Set("status", string(model.StatusCancelled)).
		Set("next_attempt_at", nil).
		Set("updated_at", at.UTC()).
		Where(sq.Eq{"appointment_id": appointmentID.String(), "status": statuses}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cancel query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel dispatches of appointment %s: %w", appointmentID, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan cancelled dispatch: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// apply loads the dispatch, runs the transition and writes it back guarded
// by the status and retry count it was loaded with. A lost race reloads and
// reapplies the transition against the fresh state.
func (r *Repository) apply(ctx context.Context, id uuid.UUID, transition func(*model.Dispatch) error) (model.Dispatch, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		d, err := r.GetByID(ctx, id)
		if err != nil {
			return model.Dispatch{}, err
		}

		prevStatus, prevRetries := d.Status, d.RetryCount

		if err := transition(&d); err != nil {
			return model.Dispatch{}, err
		}
		if err := d.Validate(); err != nil {
			return model.Dispatch{}, err
		}

		res, err := r.db.ExecContext(
			ctx, updateStateQuery,
			d.Status, nullTime(d.SentAt), d.RetryCount, nullString(d.ErrorMessage),
			d.ScheduledFor, nullTime(d.NextAttemptAt), d.UpdatedAt,
			d.ID, prevStatus, prevRetries,
		)
		if err != nil {
			return model.Dispatch{}, fmt.Errorf("failed to update dispatch %s: %w", id, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return model.Dispatch{}, fmt.Errorf("rows affected for dispatch %s: %w", id, err)
		}
		if rows == 1 {
			return d, nil
		}
	}

	return model.Dispatch{}, fmt.Errorf("%w: %s", ErrConcurrentUpdate, id)
}

func (r *Repository) list(ctx context.Context, q sq.SelectBuilder) ([]model.Dispatch, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dispatch query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	defer rows.Close()

	var dispatches []model.Dispatch
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}

		dispatches = append(dispatches, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatches: %w", err)
	}

	return dispatches, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDispatch(s scanner) (model.Dispatch, error) {
	var (
		d             model.Dispatch
		clientID      uuid.NullUUID
		status        string
		channel       string
		sentAt        sql.NullTime
		errorMessage  sql.NullString
		nextAttemptAt sql.NullTime
	)

	err := s.Scan(
		&d.ID, &d.AppointmentID, &clientID, &d.UserID, &d.ScheduledFor, &d.OffsetMinutes,
		&status, &sentAt, &d.RetryCount, &errorMessage, &channel, &d.Queue,
		&nextAttemptAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return model.Dispatch{}, err
	}

	if clientID.Valid {
		id := clientID.UUID
		d.ClientID = &id
	}
	if sentAt.Valid {
		t := sentAt.Time.UTC()
		d.SentAt = &t
	}
	if errorMessage.Valid {
		msg := errorMessage.String
		d.ErrorMessage = &msg
	}
	if nextAttemptAt.Valid {
		t := nextAttemptAt.Time.UTC()
		d.NextAttemptAt = &t
	}

	d.Status = model.Status(status)
	d.Channel = model.ParseChannel(channel)
	d.ScheduledFor = d.ScheduledFor.UTC()
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()

	return d, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}
