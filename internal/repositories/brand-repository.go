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

const brandTable = "brands"

type BrandRepositoryInterface interface {
	GetBrands(ctx context.Context, search string, limit, offset uint64) ([]entities.Brand, uint64, error)
	FindBrand(ctx context.Context, id uint64) (*entities.Brand, error)
	CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*entities.Brand, error)
	UpdateBrand(ctx context.Context, id uint64, payload dto.UpdateBrandDTO) (*entities.Brand, error)
	DeleteBrand(ctx context.Context, id uint64) error
}

type BrandRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewBrandRepository(storage *pgxpool.Pool, logger *zap.Logger) BrandRepositoryInterface {
	return &BrandRepository{storage: storage, logger: logger}
}

func scanBrand(row pgx.Row) (*entities.Brand, error) {
	var b entities.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

func (r *BrandRepository) GetBrands(ctx context.Context, search string, limit, offset uint64) ([]entities.Brand, uint64, error) {
	whereClause := ""
	args := []interface{}{}
	if search != "" {
		whereClause = "WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", brandTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Brand{}, 0, nil
	}

	argCounter := len(args) + 1
	query := fmt.Sprintf(`SELECT id, name, description, created_at FROM %s %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		brandTable, whereClause, argCounter, argCounter+1)
	args = append(args, limit, offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	brands := make([]entities.Brand, 0)
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, 0, err
		}
		brands = append(brands, *b)
	}
	return brands, total, rows.Err()
}

func (r *BrandRepository) FindBrand(ctx context.Context, id uint64) (*entities.Brand, error) {
	query := `SELECT id, name, description, created_at FROM brands WHERE id = $1`
	return scanBrand(r.storage.QueryRow(ctx, query, id))
}

func (r *BrandRepository) CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*entities.Brand, error) {
	query := `INSERT INTO brands (name, description) VALUES ($1, $2)
		RETURNING id, name, description, created_at`
	return scanBrand(r.storage.QueryRow(ctx, query, payload.Name, payload.Description))
}

func (r *BrandRepository) UpdateBrand(ctx context.Context, id uint64, payload dto.UpdateBrandDTO) (*entities.Brand, error) {
	updateBuilder := sq.Update(brandTable).
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
		return r.FindBrand(ctx, id)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, name, description, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanBrand(r.storage.QueryRow(ctx, query, args...))
}

// DeleteBrand detaches referencing equipment via ON DELETE SET NULL.
func (r *BrandRepository) DeleteBrand(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
