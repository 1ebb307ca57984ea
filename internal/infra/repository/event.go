package repository

import (
	"context"
	"encoding/json"
	"time"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const eventColumns = `
	id, title, location, event_date, start_minutes, end_minutes, status,
	requester_department, tagged_departments, requirements,
	cancellation_reason, created_at, updated_at`

type EventRepository struct {
	db infra.DBTX
}

func NewEventRepository(db infra.DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	reqs, err := json.Marshal(e.AllRequirements())
	if err != nil {
		return infra.WrapRepoErr("failed to encode event requirements", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO events (
			id, title, location, event_date, start_minutes, end_minutes, status,
			requester_department, tagged_departments, requirements,
			cancellation_reason, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		pgconv.UUIDToPgtype(e.ID()),
		e.Title(),
		e.Location(),
		pgconv.DateToPgtype(e.DateOf()),
		minutesToPgtype(e.StartTime()),
		minutesToPgtype(e.EndTime()),
		string(e.Status()),
		e.RequesterDepartment(),
		e.TaggedDepartments(),
		reqs,
		reasonToPgtype(e.CancellationReason()),
		pgconv.TimeToPgtype(e.CreatedAt()),
		pgconv.TimeToPgtype(e.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	e, err := scanEvent(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	return e, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, e *event.Event) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events
		SET status = $2, cancellation_reason = $3, updated_at = $4
		WHERE id = $1`,
		pgconv.UUIDToPgtype(e.ID()),
		string(e.Status()),
		reasonToPgtype(e.CancellationReason()),
		pgconv.TimeToPgtype(e.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update event status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) ActiveOn(ctx context.Context, date time.Time) ([]*event.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE event_date = $1 AND status IN ('submitted', 'approved')
		ORDER BY created_at`,
		pgconv.DateToPgtype(event.Date(date)),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active events", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) ApprovedEndedBefore(ctx context.Context, cutoff time.Time) ([]*event.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE status = 'approved'
		  AND end_minutes IS NOT NULL
		  AND (event_date::timestamp AT TIME ZONE 'UTC') + make_interval(mins => end_minutes) < $1
		ORDER BY event_date, end_minutes`,
		pgconv.TimeToPgtype(cutoff),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired events", err)
	}
	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]*event.Event, error) {
	defer rows.Close()
	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate events", err)
	}
	return events, nil
}

func scanEvent(row pgx.Row) (*event.Event, error) {
	var (
		id           pgtype.UUID
		title        string
		location     string
		date         pgtype.Date
		startMinutes pgtype.Int4
		endMinutes   pgtype.Int4
		status       string
		requester    string
		tagged       []string
		reqsRaw      []byte
		reason       pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &title, &location, &date, &startMinutes, &endMinutes, &status,
		&requester, &tagged, &reqsRaw, &reason, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var reqs map[string][]event.RequirementSelection
	if len(reqsRaw) > 0 {
		if err := json.Unmarshal(reqsRaw, &reqs); err != nil {
			return nil, err
		}
	}

	return event.ReconstructEvent(
		uuid.UUID(id.Bytes),
		title, location,
		pgconv.DateFromPgtype(date),
		timeOfDayFromPgtype(startMinutes),
		timeOfDayFromPgtype(endMinutes),
		event.Status(status),
		requester,
		tagged,
		reqs,
		reasonFromPgtype(reason),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func minutesToPgtype(t *event.TimeOfDay) pgtype.Int4 {
	if t == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(t.Minutes()), Valid: true}
}

// timeOfDayFromPgtype drops out-of-range minute values instead of failing:
// rows with unusable times are treated the same as rows without times.
func timeOfDayFromPgtype(i pgtype.Int4) *event.TimeOfDay {
	if !i.Valid {
		return nil
	}
	t, err := event.TimeOfDayFromMinutes(int(i.Int32))
	if err != nil {
		return nil
	}
	return &t
}

func reasonToPgtype(r *event.CancellationReason) pgtype.Text {
	if r == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*r), Valid: true}
}

func reasonFromPgtype(t pgtype.Text) *event.CancellationReason {
	if !t.Valid {
		return nil
	}
	r := event.CancellationReason(t.String)
	return &r
}
