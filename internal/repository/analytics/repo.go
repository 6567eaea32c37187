package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/appointment-reminder/internal/model"
)

const table = "reminder_dispatches"

const digestSelect = `
		SELECT d.id, COALESCE(a.title, ''), a.start_time,
		       TRIM(COALESCE(u.first_name, '') || ' ' || COALESCE(u.last_name, '')),
		       d.sent_at, d.scheduled_for, d.error_message
		FROM reminder_dispatches d
		LEFT JOIN appointments a ON a.id = d.appointment_id
		LEFT JOIN users u ON u.id = d.user_id
`

const (
	latestSentQuery = digestSelect + `
		WHERE d.status = 'sent'
		ORDER BY d.sent_at DESC
		LIMIT $1;
    `

	latestFailedQuery = digestSelect + `
		WHERE d.status = 'failed'
		ORDER BY d.scheduled_for DESC
		LIMIT $1;
    `

	latestUpcomingQuery = digestSelect + `
		WHERE d.status = 'pending' AND d.scheduled_for > $2
		ORDER BY d.scheduled_for ASC
		LIMIT $1;
    `
)

// Window is the time frame an analytics snapshot is computed for.
type Window struct {
	Now      time.Time
	DayStart time.Time
	DayEnd   time.Time
	Limit    int
}

// Repository computes dispatch rollups.
type Repository struct {
	db *dbpg.DB
	sb sq.StatementBuilderType
}

// NewRepository creates a new analytics repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Snapshot reads every figure of the report inside one repeatable-read,
// read-only transaction so the numbers are mutually consistent.
func (r *Repository) Snapshot(ctx context.Context, w Window) (model.AnalyticsReport, error) {
	tx, err := r.db.Master.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return model.AnalyticsReport{}, fmt.Errorf("begin analytics transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := w.Now.UTC()
	report := model.AnalyticsReport{AsOf: now}

	if err := r.summary(ctx, tx, now, &report.Summary); err != nil {
		return model.AnalyticsReport{}, err
	}

	today := []struct {
		dst   *int64
		where sq.Sqlizer
	}{
		{&report.Today.Sent, sq.And{
			sq.Eq{"status": string(model.StatusSent)},
			sq.GtOrEq{"sent_at": w.DayStart.UTC()},
			sq.Lt{"sent_at": w.DayEnd.UTC()},
		}},
		{&report.Today.Failed, sq.And{
			sq.Eq{"status": string(model.StatusFailed)},
			sq.GtOrEq{"scheduled_for": w.DayStart.UTC()},
			sq.Lt{"scheduled_for": w.DayEnd.UTC()},
		}},
		{&report.Today.Upcoming, sq.And{
			sq.Eq{"status": string(model.StatusPending)},
			sq.Gt{"scheduled_for": now},
			sq.Lt{"scheduled_for": w.DayEnd.UTC()},
		}},
	}
	for _, q := range today {
		if err := r.count(ctx, tx, q.where, q.dst); err != nil {
			return model.AnalyticsReport{}, err
		}
	}

	if report.Latest.Sent, err = latest(ctx, tx, latestSentQuery, w.Limit); err != nil {
		return model.AnalyticsReport{}, err
	}
	if report.Latest.Failed, err = latest(ctx, tx, latestFailedQuery, w.Limit); err != nil {
		return model.AnalyticsReport{}, err
	}
	if report.Latest.Upcoming, err = latest(ctx, tx, latestUpcomingQuery, w.Limit, now); err != nil {
		return model.AnalyticsReport{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.AnalyticsReport{}, fmt.Errorf("commit analytics transaction: %w", err)
	}

	return report, nil
}

func (r *Repository) summary(ctx context.Context, tx *sql.Tx, now time.Time, s *model.Summary) error {
	query, args, err := r.sb.Select("status", "COUNT(*)").From(table).GroupBy("status").ToSql()
	if err != nil {
		return fmt.Errorf("build summary query: %w", err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to count dispatches by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return fmt.Errorf("scan status count: %w", err)
		}

		switch model.Status(status) {
		case model.StatusPending:
			s.Pending = n
		case model.StatusSent:
			s.Sent = n
		case model.StatusFailed:
			s.Failed = n
		case model.StatusCancelled:
			s.Cancelled = n
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate status counts: %w", err)
	}

	s.Total = s.Pending + s.Sent + s.Failed + s.Cancelled

	return r.count(ctx, tx, sq.And{
		sq.Eq{"status": string(model.StatusPending)},
		sq.Gt{"scheduled_for": now},
	}, &s.Upcoming)
}

func (r *Repository) count(ctx context.Context, tx *sql.Tx, where sq.Sqlizer, dst *int64) error {
	query, args, err := r.sb.Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("build count query: %w", err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(dst); err != nil {
		return fmt.Errorf("failed to count dispatches: %w", err)
	}

	return nil
}

func latest(ctx context.Context, tx *sql.Tx, query string, args ...any) ([]model.DispatchDigest, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest dispatches: %w", err)
	}
	defer rows.Close()

	digests := make([]model.DispatchDigest, 0)
	for rows.Next() {
		var (
			d            model.DispatchDigest
			start        sql.NullTime
			sentAt       sql.NullTime
			scheduledFor sql.NullTime
			errorMessage sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Appointment.Title, &start, &d.User, &sentAt, &scheduledFor, &errorMessage); err != nil {
			return nil, fmt.Errorf("scan dispatch digest: %w", err)
		}

		if start.Valid {
			d.Appointment.StartTime = start.Time.UTC()
		}
		if sentAt.Valid {
			t := sentAt.Time.UTC()
			d.SentAt = &t
		}
		if scheduledFor.Valid {
			t := scheduledFor.Time.UTC()
			d.ScheduledFor = &t
		}
		if errorMessage.Valid {
			msg := errorMessage.String
			d.ErrorMessage = &msg
		}

		digests = append(digests, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatch digests: %w", err)
	}

	return digests, nil
}
