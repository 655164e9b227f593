package repository

import (
	"context"

	"almacenpos/internal/model"
	"almacenpos/internal/store"
)

// CajaRepository stores register sessions in one per-user document keyed by
// "<fechaStr>|<turno>".
type CajaRepository interface {
	// Get returns (nil, nil) when no session exists for the bucket.
	Get(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error)
	Set(ctx context.Context, userID, fechaStr, turno string, caja model.Caja) error
}

type cajaRepo struct {
	store store.Store
}

func NewCajaRepository(s store.Store) CajaRepository {
	return &cajaRepo{store: s}
}

func (r *cajaRepo) load(ctx context.Context, userID string) (map[string]model.Caja, error) {
	cajas := make(map[string]model.Caja)
	if _, err := store.Load(ctx, r.store, storageKey(nsCajas, userID), &cajas); err != nil {
		return nil, err
	}
	return cajas, nil
}

func (r *cajaRepo) Get(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error) {
	cajas, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	caja, ok := cajas[BucketKey(fechaStr, turno)]
	if !ok {
		return nil, nil
	}
	return &caja, nil
}

func (r *cajaRepo) Set(ctx context.Context, userID, fechaStr, turno string, caja model.Caja) error {
	cajas, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	cajas[BucketKey(fechaStr, turno)] = caja
	return store.Save(ctx, r.store, storageKey(nsCajas, userID), cajas)
}
