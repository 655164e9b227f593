package repository

import (
	"context"
	"sort"

	"almacenpos/internal/model"
	"almacenpos/internal/store"
)

// PagoProveedorRepository stores supplier payments as one flat per-user
// list, newest first by insertion.
type PagoProveedorRepository interface {
	List(ctx context.Context, userID string) ([]model.PagoProveedor, error)
	// ListByProveedor filters by supplier and sorts by createdAt descending.
	ListByProveedor(ctx context.Context, userID, proveedorID string) ([]model.PagoProveedor, error)
	Prepend(ctx context.Context, userID string, p model.PagoProveedor) error
	RemoveByID(ctx context.Context, userID, pagoID string) error
	// RemoveByRefCompra deletes every payment referencing the compra and
	// returns how many were removed. Zero matches is not an error.
	RemoveByRefCompra(ctx context.Context, userID, refCompraID string) (int, error)
}

type pagoProveedorRepo struct {
	store store.Store
}

func NewPagoProveedorRepository(s store.Store) PagoProveedorRepository {
	return &pagoProveedorRepo{store: s}
}

func (r *pagoProveedorRepo) load(ctx context.Context, userID string) ([]model.PagoProveedor, error) {
	var pagos []model.PagoProveedor
	if _, err := store.Load(ctx, r.store, storageKey(nsPagos, userID), &pagos); err != nil {
		return nil, err
	}
	return pagos, nil
}

func (r *pagoProveedorRepo) save(ctx context.Context, userID string, pagos []model.PagoProveedor) error {
	return store.Save(ctx, r.store, storageKey(nsPagos, userID), pagos)
}

func (r *pagoProveedorRepo) List(ctx context.Context, userID string) ([]model.PagoProveedor, error) {
	return r.load(ctx, userID)
}

func (r *pagoProveedorRepo) ListByProveedor(ctx context.Context, userID, proveedorID string) ([]model.PagoProveedor, error) {
	pagos, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.PagoProveedor, 0, len(pagos))
	for _, p := range pagos {
		if p.ProveedorID == proveedorID {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

func (r *pagoProveedorRepo) Prepend(ctx context.Context, userID string, p model.PagoProveedor) error {
	pagos, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	return r.save(ctx, userID, append([]model.PagoProveedor{p}, pagos...))
}

func (r *pagoProveedorRepo) RemoveByID(ctx context.Context, userID, pagoID string) error {
	pagos, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	next := pagos[:0]
	for _, p := range pagos {
		if p.ID != pagoID {
			next = append(next, p)
		}
	}
	return r.save(ctx, userID, next)
}

func (r *pagoProveedorRepo) RemoveByRefCompra(ctx context.Context, userID, refCompraID string) (int, error) {
	pagos, err := r.load(ctx, userID)
	if err != nil {
		return 0, err
	}
	next := make([]model.PagoProveedor, 0, len(pagos))
	for _, p := range pagos {
		if p.RefCompraID == "" || p.RefCompraID != refCompraID {
			next = append(next, p)
		}
	}
	removed := len(pagos) - len(next)
	if err := r.save(ctx, userID, next); err != nil {
		return 0, err
	}
	return removed, nil
}
