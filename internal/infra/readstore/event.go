package readstore

import (
	"context"
	"encoding/json"

	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/pkg/pgconv"
	"event-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadStore struct {
	db infra.DBTX
}

func NewEventReadStore(db infra.DBTX) *EventReadStore {
	return &EventReadStore{db: db}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, location, event_date, start_minutes, end_minutes, status,
		       requester_department, tagged_departments, requirements,
		       cancellation_reason, created_at, updated_at
		FROM events WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)

	var (
		pid          pgtype.UUID
		view         queries.EventView
		date         pgtype.Date
		startMinutes pgtype.Int4
		endMinutes   pgtype.Int4
		reqsRaw      []byte
		reason       pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(
		&pid, &view.Title, &view.Location, &date, &startMinutes, &endMinutes,
		&view.Status, &view.RequesterDepartment, &view.TaggedDepartments,
		&reqsRaw, &reason, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	view.ID = uuid.UUID(pid.Bytes)
	view.Date = pgconv.DateFromPgtype(date)
	view.StartTime = minutesToClock(startMinutes)
	view.EndTime = minutesToClock(endMinutes)
	view.CancellationReason = pgconv.StringPtrFromPgtype(reason)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if len(reqsRaw) > 0 {
		if err := json.Unmarshal(reqsRaw, &view.Requirements); err != nil {
			return nil, infra.WrapRepoErr("failed to decode event requirements", err)
		}
	}
	return &view, nil
}

func (r *EventReadStore) List(ctx context.Context, status *string, limit int32) ([]*queries.EventListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, location, event_date, start_minutes, end_minutes, status, created_at
		FROM events
		WHERE $1::text IS NULL OR status = $1
		ORDER BY event_date DESC, created_at DESC
		LIMIT $2`,
		pgconv.StringPtrToPgtype(status),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	var items []*queries.EventListItem
	for rows.Next() {
		var (
			pid          pgtype.UUID
			item         queries.EventListItem
			date         pgtype.Date
			startMinutes pgtype.Int4
			endMinutes   pgtype.Int4
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(&pid, &item.Title, &item.Location, &date, &startMinutes, &endMinutes, &item.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event list row", err)
		}
		item.ID = uuid.UUID(pid.Bytes)
		item.Date = pgconv.DateFromPgtype(date)
		item.StartTime = minutesToClock(startMinutes)
		item.EndTime = minutesToClock(endMinutes)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate events", err)
	}
	return items, nil
}
