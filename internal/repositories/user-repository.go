package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/entities"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
)

const userTable = "users"

// UpdateUserParams is the partial-update payload at the persistence boundary.
// Password, when set, is already hashed by the service layer.
type UpdateUserParams struct {
	Name     *string
	Role     *string
	Password *string
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, params UpdateUserParams) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", userTable)).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.User{}, 0, nil
	}

	query := fmt.Sprintf(`SELECT id, username, name, password, role, created_at FROM %s ORDER BY created_at DESC LIMIT $1 OFFSET $2`, userTable)
	rows, err := r.storage.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	query := `SELECT id, username, name, password, role, created_at FROM users WHERE id = $1`
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `SELECT id, username, name, password, role, created_at FROM users WHERE username = $1`
	return scanUser(r.storage.QueryRow(ctx, query, username))
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query := `INSERT INTO users (username, name, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, name, password, role, created_at`
	return scanUser(r.storage.QueryRow(ctx, query, user.Username, user.Name, user.Password, user.Role))
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, params UpdateUserParams) (*entities.User, error) {
	updateBuilder := sq.Update(userTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id})

	hasChanges := false
	if params.Name != nil {
		updateBuilder = updateBuilder.Set("name", *params.Name)
		hasChanges = true
	}
	if params.Role != nil {
		updateBuilder = updateBuilder.Set("role", *params.Role)
		hasChanges = true
	}
	if params.Password != nil {
		updateBuilder = updateBuilder.Set("password", *params.Password)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindUser(ctx, id)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, username, name, password, role, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
