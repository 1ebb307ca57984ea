package repository

import (
	"context"
	"time"

	"event-booking-engine/internal/domain/availability"
	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const availabilityColumns = `
	department, requirement_id, requirement_name, date, available, quantity, notes`

type AvailabilityRepository struct {
	db infra.DBTX
}

func NewAvailabilityRepository(db infra.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, rec *availability.Record) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO resource_availability (
			department, requirement_id, requirement_name, date, available, quantity, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (department, requirement_id, date) DO UPDATE SET
			requirement_name = EXCLUDED.requirement_name,
			available = EXCLUDED.available,
			quantity = EXCLUDED.quantity,
			notes = EXCLUDED.notes,
			updated_at = now()`,
		rec.Department(),
		rec.RequirementID(),
		rec.RequirementName(),
		pgconv.DateToPgtype(rec.DateOf()),
		rec.Available(),
		rec.Quantity(),
		rec.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert availability record", err)
	}
	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, department, requirementID string, date time.Time) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM resource_availability
		WHERE department = $1 AND requirement_id = $2 AND date = $3`,
		department,
		requirementID,
		pgconv.DateToPgtype(event.Date(date)),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete availability record", err)
	}
	return nil
}

func (r *AvailabilityRepository) FindOne(ctx context.Context, department, requirementID string, date time.Time) (*availability.Record, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+availabilityColumns+`
		FROM resource_availability
		WHERE department = $1 AND requirement_id = $2 AND date = $3`,
		department,
		requirementID,
		pgconv.DateToPgtype(event.Date(date)),
	)
	rec, err := scanAvailability(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("availability record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find availability record", err)
	}
	return rec, nil
}

func (r *AvailabilityRepository) ListRange(ctx context.Context, department string, from, to time.Time) ([]*availability.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+availabilityColumns+`
		FROM resource_availability
		WHERE department = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, requirement_name`,
		department,
		pgconv.DateToPgtype(event.Date(from)),
		pgconv.DateToPgtype(event.Date(to)),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability records", err)
	}
	defer rows.Close()

	var recs []*availability.Record
	for rows.Next() {
		rec, err := scanAvailability(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability record", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability records", err)
	}
	return recs, nil
}

func scanAvailability(row pgx.Row) (*availability.Record, error) {
	var (
		department      string
		requirementID   string
		requirementName string
		date            pgtype.Date
		available       bool
		quantity        int32
		notes           string
	)
	if err := row.Scan(&department, &requirementID, &requirementName, &date, &available, &quantity, &notes); err != nil {
		return nil, err
	}
	return availability.ReconstructRecord(
		department, requirementID, requirementName,
		pgconv.DateFromPgtype(date),
		available, int(quantity), notes,
	), nil
}
