package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
)

const departmentTable = "departments"

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, search string, limit, offset uint64) ([]entities.Department, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*entities.Department, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error)
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, search string, limit, offset uint64) ([]entities.Department, uint64, error) {
	whereClause := ""
	args := []interface{}{}
	if search != "" {
		whereClause = "WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", departmentTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Department{}, 0, nil
	}

	argCounter := len(args) + 1
	query := fmt.Sprintf(`SELECT id, name, description, created_at FROM %s %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		departmentTable, whereClause, argCounter, argCounter+1)
	args = append(args, limit, offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, *d)
	}
	return departments, total, rows.Err()
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	query := `SELECT id, name, description, created_at FROM departments WHERE id = $1`
	return scanDepartment(r.storage.QueryRow(ctx, query, id))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	query := `INSERT INTO departments (name, description) VALUES ($1, $2)
		RETURNING id, name, description, created_at`
	return scanDepartment(r.storage.QueryRow(ctx, query, payload.Name, payload.Description))
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	updateBuilder := sq.Update(departmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id})

	hasChanges := false
	if payload.Name != nil {
		updateBuilder = updateBuilder.Set("name", *payload.Name)
		hasChanges = true
	}
	if payload.Description != nil {
		updateBuilder = updateBuilder.Set("description", *payload.Description)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindDepartment(ctx, id)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, name, description, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanDepartment(r.storage.QueryRow(ctx, query, args...))
}

// DeleteDepartment removes the row. Referencing equipment keeps its rows:
// the FK is ON DELETE SET NULL, so the department reference is detached.
func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
