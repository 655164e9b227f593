package repository

import (
	"context"

	"almacenpos/internal/model"
	"almacenpos/internal/store"
)

// VentaRepository stores sales in one per-user document keyed by
// "<fechaStr>|<turno>", newest first within each bucket.
type VentaRepository interface {
	ListBucket(ctx context.Context, userID, fechaStr, turno string) ([]model.Venta, error)
	Prepend(ctx context.Context, userID, fechaStr, turno string, v model.Venta) error
	// Remove prunes the sale from its bucket and returns the removed record,
	// or nil when it was not there. A no-op removal is not an error.
	Remove(ctx context.Context, userID, fechaStr, turno, ventaID string) (*model.Venta, error)
}

type ventaRepo struct {
	store store.Store
}

func NewVentaRepository(s store.Store) VentaRepository {
	return &ventaRepo{store: s}
}

func (r *ventaRepo) load(ctx context.Context, userID string) (map[string][]model.Venta, error) {
	ventas := make(map[string][]model.Venta)
	if _, err := store.Load(ctx, r.store, storageKey(nsVentas, userID), &ventas); err != nil {
		return nil, err
	}
	return ventas, nil
}

func (r *ventaRepo) save(ctx context.Context, userID string, ventas map[string][]model.Venta) error {
	return store.Save(ctx, r.store, storageKey(nsVentas, userID), ventas)
}

func (r *ventaRepo) ListBucket(ctx context.Context, userID, fechaStr, turno string) ([]model.Venta, error) {
	all, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return all[BucketKey(fechaStr, turno)], nil
}

func (r *ventaRepo) Prepend(ctx context.Context, userID, fechaStr, turno string, v model.Venta) error {
	all, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	k := BucketKey(fechaStr, turno)
	all[k] = append([]model.Venta{v}, all[k]...)
	return r.save(ctx, userID, all)
}

func (r *ventaRepo) Remove(ctx context.Context, userID, fechaStr, turno, ventaID string) (*model.Venta, error) {
	all, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	k := BucketKey(fechaStr, turno)
	var removed *model.Venta
	next := make([]model.Venta, 0, len(all[k]))
	for _, v := range all[k] {
		if v.ID == ventaID && removed == nil {
			found := v
			removed = &found
			continue
		}
		next = append(next, v)
	}
	all[k] = next
	if err := r.save(ctx, userID, all); err != nil {
		return nil, err
	}
	return removed, nil
}
