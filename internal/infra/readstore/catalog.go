package readstore

import (
	"context"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CatalogReadStore serves the department/requirement catalog. The engine
// treats the catalog as reference data and never writes to it.
type CatalogReadStore struct {
	db infra.DBTX
}

func NewCatalogReadStore(db infra.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListDepartments(ctx context.Context) ([]shared.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list departments", err)
	}
	defer rows.Close()

	var depts []shared.Department
	for rows.Next() {
		var (
			id   pgtype.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan department row", err)
		}
		depts = append(depts, shared.Department{ID: uuid.UUID(id.Bytes), Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate departments", err)
	}
	return depts, nil
}

func (r *CatalogReadStore) DepartmentRequirements(ctx context.Context, department string) ([]shared.CatalogRequirement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, kind, default_quantity
		FROM department_requirements
		WHERE department = $1
		ORDER BY position, name`,
		department,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list department requirements", err)
	}
	defer rows.Close()

	var reqs []shared.CatalogRequirement
	for rows.Next() {
		var (
			req  shared.CatalogRequirement
			kind string
			qty  int32
		)
		if err := rows.Scan(&req.ID, &req.Name, &kind, &qty); err != nil {
			return nil, infra.WrapRepoErr("failed to scan requirement row", err)
		}
		req.Kind = event.RequirementKind(kind)
		req.DefaultQuantity = int(qty)
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate department requirements", err)
	}
	return reqs, nil
}
