package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
)

const equipmentTable = "equipment"

const equipmentSelectColumns = `e.id, e.public_id, e.name, e.status, e.purchase_date,
	e.department_id, e.brand_id, e.created_by, e.created_at,
	d.name AS department_name, b.name AS brand_name, u.name AS created_by_name`

const equipmentJoins = `FROM equipment e
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN brands b ON e.brand_id = b.id
	LEFT JOIN users u ON e.created_by = u.id`

// UpdateEquipmentParams is the partial-update payload at the persistence
// boundary; nil fields keep their current values.
type UpdateEquipmentParams struct {
	Name         *string
	Status       *string
	PurchaseDate *time.Time
	DepartmentID *uint64
	BrandID      *uint64
}

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindEquipmentByPublicID(ctx context.Context, publicID uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, params UpdateEquipmentParams) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.PublicID, &e.Name, &e.Status, &e.PurchaseDate,
		&e.DepartmentID, &e.BrandID, &e.CreatedBy, &e.CreatedAt,
		&e.DepartmentName, &e.BrandName, &e.CreatorName,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

func buildEquipmentFilter(filter dto.EquipmentFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argCounter))
		args = append(args, *filter.Status)
		argCounter++
	}
	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argCounter))
		args = append(args, *filter.DepartmentID)
		argCounter++
	}
	if filter.BrandID != nil {
		conditions = append(conditions, fmt.Sprintf("e.brand_id = $%d", argCounter))
		args = append(args, *filter.BrandID)
		argCounter++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("e.name ILIKE $%d", argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	// Ownership predicate computed by the access policy, not by user input.
	if filter.RestrictToOwner != nil {
		conditions = append(conditions, fmt.Sprintf("e.created_by = $%d", argCounter))
		args = append(args, *filter.RestrictToOwner)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error) {
	whereClause, args := buildEquipmentFilter(filter)

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s e %s", equipmentTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	argCounter := len(args) + 1
	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY e.created_at DESC LIMIT $%d OFFSET $%d`,
		equipmentSelectColumns, equipmentJoins, whereClause, argCounter, argCounter+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE e.id = $1`, equipmentSelectColumns, equipmentJoins)
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) FindEquipmentByPublicID(ctx context.Context, publicID uuid.UUID) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE e.public_id = $1`, equipmentSelectColumns, equipmentJoins)
	return scanEquipment(r.storage.QueryRow(ctx, query, publicID))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	query := `INSERT INTO equipment (public_id, name, status, purchase_date, department_id, brand_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		equipment.PublicID, equipment.Name, equipment.Status, equipment.PurchaseDate,
		equipment.DepartmentID, equipment.BrandID, equipment.CreatedBy,
	).Scan(&id)
	if err != nil {
		return nil, translateError(err)
	}
	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, params UpdateEquipmentParams) (*entities.Equipment, error) {
	updateBuilder := sq.Update(equipmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id})

	hasChanges := false
	if params.Name != nil {
		updateBuilder = updateBuilder.Set("name", *params.Name)
		hasChanges = true
	}
	if params.Status != nil {
		updateBuilder = updateBuilder.Set("status", *params.Status)
		hasChanges = true
	}
	if params.PurchaseDate != nil {
		updateBuilder = updateBuilder.Set("purchase_date", *params.PurchaseDate)
		hasChanges = true
	}
	if params.DepartmentID != nil {
		updateBuilder = updateBuilder.Set("department_id", *params.DepartmentID)
		hasChanges = true
	}
	if params.BrandID != nil {
		updateBuilder = updateBuilder.Set("brand_id", *params.BrandID)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindEquipment(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, err
	}
	var updatedID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, translateError(err)
	}
	return r.FindEquipment(ctx, updatedID)
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
