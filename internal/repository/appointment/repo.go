package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/appointment-reminder/internal/model"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrClientNotFound      = errors.New("client not found")
)

const (
	selectAppointmentQuery = `
		SELECT id, user_id, title, COALESCE(description, ''), COALESCE(location, ''),
		       start_time, end_time, COALESCE(timezone, '')
		FROM appointments
		WHERE id = $1;
    `

	selectAppointmentClientsQuery = `
		SELECT c.id, c.first_name, c.last_name, c.email, COALESCE(c.phone, ''),
		       COALESCE(c.timezone, ''), COALESCE(c.reminder_preference, '')
		FROM clients c
		JOIN clients_appointments ca ON ca.client_id = c.id
		WHERE ca.appointment_id = $1
		ORDER BY c.last_name, c.first_name;
    `

	selectClientQuery = `
		SELECT id, first_name, last_name, email, COALESCE(phone, ''),
		       COALESCE(timezone, ''), COALESCE(reminder_preference, '')
		FROM clients
		WHERE id = $1;
    `
)

// Repository reads appointments and their clients. It never writes: the
// appointment data is owned elsewhere.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new appointment repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetAppointment loads an appointment together with all of its clients.
func (r *Repository) GetAppointment(ctx context.Context, id uuid.UUID) (model.Appointment, error) {
	var a model.Appointment

	err := r.db.Master.QueryRowContext(ctx, selectAppointmentQuery, id).Scan(
		&a.ID, &a.UserID, &a.Title, &a.Description, &a.Location, &a.StartTime, &a.EndTime, &a.Timezone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Appointment{}, ErrAppointmentNotFound
		}

		return model.Appointment{}, fmt.Errorf("failed to get appointment %s: %w", id, err)
	}

	a.StartTime = a.StartTime.UTC()
	a.EndTime = a.EndTime.UTC()

	rows, err := r.db.QueryContext(ctx, selectAppointmentClientsQuery, id)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to get clients of appointment %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return model.Appointment{}, fmt.Errorf("scan client: %w", err)
		}

		a.Clients = append(a.Clients, c)
	}

	if err := rows.Err(); err != nil {
		return model.Appointment{}, fmt.Errorf("iterate clients: %w", err)
	}

	return a, nil
}

// GetClient loads a single client.
func (r *Repository) GetClient(ctx context.Context, id uuid.UUID) (model.Client, error) {
	c, err := scanClient(r.db.Master.QueryRowContext(ctx, selectClientQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Client{}, ErrClientNotFound
		}

		return model.Client{}, fmt.Errorf("failed to get client %s: %w", id, err)
	}

	return c, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner) (model.Client, error) {
	var c model.Client
	err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Timezone, &c.NotificationPreference)

	return c, err
}
