package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	"github.com/tatthien/church-equipment/internal/repositories"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
)

// fakeEquipmentRepo keeps rows in a map and mimics the filter semantics of
// the SQL repository closely enough for service-level tests.
type fakeEquipmentRepo struct {
	rows   map[uint64]*entities.Equipment
	nextID uint64
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{rows: make(map[uint64]*entities.Equipment), nextID: 1}
}

func (f *fakeEquipmentRepo) add(e entities.Equipment) *entities.Equipment {
	e.ID = f.nextID
	f.nextID++
	if e.PublicID == uuid.Nil {
		e.PublicID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	f.rows[e.ID] = &e
	return f.rows[e.ID]
}

func (f *fakeEquipmentRepo) GetEquipment(_ context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error) {
	var matched []entities.Equipment
	for _, row := range f.rows {
		if filter.RestrictToOwner != nil {
			if row.CreatedBy == nil || *row.CreatedBy != *filter.RestrictToOwner {
				continue
			}
		}
		if filter.Status != nil && row.Status != *filter.Status {
			continue
		}
		if filter.DepartmentID != nil {
			if row.DepartmentID == nil || *row.DepartmentID != *filter.DepartmentID {
				continue
			}
		}
		if filter.BrandID != nil {
			if row.BrandID == nil || *row.BrandID != *filter.BrandID {
				continue
			}
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(row.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *row)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := uint64(len(matched))
	start := filter.Offset
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if filter.Limit == 0 || end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeEquipmentRepo) FindEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	if row, ok := f.rows[id]; ok {
		clone := *row
		return &clone, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEquipmentRepo) FindEquipmentByPublicID(_ context.Context, publicID uuid.UUID) (*entities.Equipment, error) {
	for _, row := range f.rows {
		if row.PublicID == publicID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEquipmentRepo) CreateEquipment(_ context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	created := f.add(equipment)
	clone := *created
	return &clone, nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(_ context.Context, id uint64, params repositories.UpdateEquipmentParams) (*entities.Equipment, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if params.Name != nil {
		row.Name = *params.Name
	}
	if params.Status != nil {
		row.Status = *params.Status
	}
	if params.PurchaseDate != nil {
		row.PurchaseDate.SetValid(*params.PurchaseDate)
	}
	if params.DepartmentID != nil {
		row.DepartmentID = params.DepartmentID
	}
	if params.BrandID != nil {
		row.BrandID = params.BrandID
	}
	clone := *row
	return &clone, nil
}

func (f *fakeEquipmentRepo) DeleteEquipment(_ context.Context, id uint64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

// fakeCacheRepo records every Set and Del so tests can assert invalidation.
type fakeCacheRepo struct {
	values  map[string]string
	deleted []string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]string)}
}

var errCacheMiss = errors.New("cache miss")

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return nil
}

func (f *fakeCacheRepo) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", errCacheMiss
}

func (f *fakeCacheRepo) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
		f.deleted = append(f.deleted, key)
	}
	return nil
}

// fakeDepartmentRepo is the in-memory stand-in for the departments table.
type fakeDepartmentRepo struct {
	rows   map[uint64]*entities.Department
	nextID uint64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{rows: make(map[uint64]*entities.Department), nextID: 1}
}

func (f *fakeDepartmentRepo) add(d entities.Department) *entities.Department {
	d.ID = f.nextID
	f.nextID++
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	f.rows[d.ID] = &d
	return f.rows[d.ID]
}

func (f *fakeDepartmentRepo) GetDepartments(_ context.Context, search string, limit, offset uint64) ([]entities.Department, uint64, error) {
	var matched []entities.Department
	for _, row := range f.rows {
		if search != "" && !strings.Contains(strings.ToLower(row.Name), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, *row)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := uint64(len(matched))
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if limit == 0 || end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeDepartmentRepo) FindDepartment(_ context.Context, id uint64) (*entities.Department, error) {
	if row, ok := f.rows[id]; ok {
		clone := *row
		return &clone, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeDepartmentRepo) CreateDepartment(_ context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	for _, row := range f.rows {
		if row.Name == payload.Name {
			return nil, apperrors.ErrConflict
		}
	}
	d := entities.Department{Name: payload.Name}
	if payload.Description != nil {
		d.Description.SetValid(*payload.Description)
	}
	created := f.add(d)
	clone := *created
	return &clone, nil
}

func (f *fakeDepartmentRepo) UpdateDepartment(_ context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Name != nil {
		row.Name = *payload.Name
	}
	if payload.Description != nil {
		row.Description.SetValid(*payload.Description)
	}
	clone := *row
	return &clone, nil
}

func (f *fakeDepartmentRepo) DeleteDepartment(_ context.Context, id uint64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

// fakeUserRepo backs the auth and user-management tests.
type fakeUserRepo struct {
	users  map[uint64]*entities.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*entities.User), nextID: 1}
}

func (f *fakeUserRepo) add(u entities.User) *entities.User {
	u.ID = f.nextID
	f.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	f.users[u.ID] = &u
	return f.users[u.ID]
}

func (f *fakeUserRepo) GetUsers(_ context.Context, limit, offset uint64) ([]entities.User, uint64, error) {
	var all []entities.User
	for _, u := range f.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := uint64(len(all))
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if limit == 0 || end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (f *fakeUserRepo) FindUser(_ context.Context, id uint64) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return nil, apperrors.ErrConflict
		}
	}
	created := f.add(user)
	clone := *created
	return &clone, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, id uint64, params repositories.UpdateUserParams) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Role != nil {
		u.Role = *params.Role
	}
	if params.Password != nil {
		u.Password = *params.Password
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id uint64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.users, id)
	return nil
}
