package repository

import (
	"context"
	"sort"
	"strings"

	"almacenpos/internal/model"
	"almacenpos/internal/store"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type ProveedorRepository interface {
	// List returns suppliers ordered by nombre with Spanish collation.
	// Inactive suppliers are filtered out unless includeInactive.
	List(ctx context.Context, userID string, includeInactive bool) ([]model.Proveedor, error)
	FindByID(ctx context.Context, userID, proveedorID string) (*model.Proveedor, error)
	// FindByNombre matches case-insensitively on the trimmed name.
	FindByNombre(ctx context.Context, userID, nombre string) (*model.Proveedor, error)
	Insert(ctx context.Context, userID string, p model.Proveedor) error
	Update(ctx context.Context, userID string, p model.Proveedor) error
	// RemoveHard deletes the record. Production flows flip Activo instead.
	RemoveHard(ctx context.Context, userID, proveedorID string) error
}

type proveedorRepo struct {
	store    store.Store
	collator *collate.Collator
}

func NewProveedorRepository(s store.Store) ProveedorRepository {
	return &proveedorRepo{store: s, collator: collate.New(language.Spanish)}
}

func (r *proveedorRepo) load(ctx context.Context, userID string) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	if _, err := store.Load(ctx, r.store, storageKey(nsProveedores, userID), &proveedores); err != nil {
		return nil, err
	}
	return proveedores, nil
}

func (r *proveedorRepo) save(ctx context.Context, userID string, proveedores []model.Proveedor) error {
	return store.Save(ctx, r.store, storageKey(nsProveedores, userID), proveedores)
}

func (r *proveedorRepo) List(ctx context.Context, userID string, includeInactive bool) ([]model.Proveedor, error) {
	proveedores, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.Proveedor, 0, len(proveedores))
	for _, p := range proveedores {
		if includeInactive || p.Activo {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return r.collator.CompareString(filtered[i].Nombre, filtered[j].Nombre) < 0
	})
	return filtered, nil
}

func (r *proveedorRepo) FindByID(ctx context.Context, userID, proveedorID string) (*model.Proveedor, error) {
	proveedores, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range proveedores {
		if proveedores[i].ID == proveedorID {
			return &proveedores[i], nil
		}
	}
	return nil, nil
}

func (r *proveedorRepo) FindByNombre(ctx context.Context, userID, nombre string) (*model.Proveedor, error) {
	proveedores, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(strings.TrimSpace(nombre))
	for i := range proveedores {
		if strings.ToLower(strings.TrimSpace(proveedores[i].Nombre)) == want {
			return &proveedores[i], nil
		}
	}
	return nil, nil
}

func (r *proveedorRepo) Insert(ctx context.Context, userID string, p model.Proveedor) error {
	proveedores, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	return r.save(ctx, userID, append(proveedores, p))
}

func (r *proveedorRepo) Update(ctx context.Context, userID string, p model.Proveedor) error {
	proveedores, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	for i := range proveedores {
		if proveedores[i].ID == p.ID {
			proveedores[i] = p
		}
	}
	return r.save(ctx, userID, proveedores)
}

func (r *proveedorRepo) RemoveHard(ctx context.Context, userID, proveedorID string) error {
	proveedores, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	next := proveedores[:0]
	for _, p := range proveedores {
		if p.ID != proveedorID {
			next = append(next, p)
		}
	}
	return r.save(ctx, userID, next)
}
