package readstore

import (
	"context"
	"fmt"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/pkg/pgconv"
	"event-booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db infra.DBTX
}

func NewAvailabilityReadStore(db infra.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (r *AvailabilityReadStore) ListRange(ctx context.Context, filter queries.AvailabilityFilter) ([]*queries.AvailabilityView, error) {
	query := `
		SELECT department, requirement_id, requirement_name, date, available, quantity, notes
		FROM resource_availability
		WHERE date BETWEEN $1 AND $2`
	args := []any{
		pgconv.DateToPgtype(event.Date(filter.From)),
		pgconv.DateToPgtype(event.Date(filter.To)),
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		query += fmt.Sprintf(" AND department = $%d", len(args))
	}
	if filter.RequirementName != "" {
		args = append(args, filter.RequirementName)
		query += fmt.Sprintf(" AND requirement_name = $%d", len(args))
	}
	query += " ORDER BY date, requirement_name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability", err)
	}
	defer rows.Close()

	var views []*queries.AvailabilityView
	for rows.Next() {
		var (
			view queries.AvailabilityView
			date pgtype.Date
		)
		if err := rows.Scan(&view.Department, &view.RequirementID, &view.RequirementName, &date, &view.Available, &view.Quantity, &view.Notes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}
		view.Date = pgconv.DateFromPgtype(date)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability", err)
	}
	return views, nil
}

// minutesToClock renders a nullable minutes-past-midnight column as "HH:MM".
// Out-of-range values render as absent, matching entity reconstruction.
func minutesToClock(i pgtype.Int4) *string {
	if !i.Valid {
		return nil
	}
	t, err := event.TimeOfDayFromMinutes(int(i.Int32))
	if err != nil {
		return nil
	}
	s := t.String()
	return &s
}
