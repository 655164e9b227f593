package repository

import (
	"context"
	"sort"

	"almacenpos/internal/model"
	"almacenpos/internal/store"
)

// CompraRepository stores purchases bucketed by fechaStr inside one
// per-user document: { "<fechaStr>": [Compra, ...] }.
type CompraRepository interface {
	ListDia(ctx context.Context, userID, fechaStr string) ([]model.Compra, error)
	ListAll(ctx context.Context, userID string) ([]model.Compra, error)
	FindByID(ctx context.Context, userID, fechaStr, compraID string) (*model.Compra, error)
	Prepend(ctx context.Context, userID string, c model.Compra) error
	Remove(ctx context.Context, userID, fechaStr, compraID string) error
}

type compraRepo struct {
	store store.Store
}

func NewCompraRepository(s store.Store) CompraRepository {
	return &compraRepo{store: s}
}

func (r *compraRepo) load(ctx context.Context, userID string) (map[string][]model.Compra, error) {
	compras := make(map[string][]model.Compra)
	if _, err := store.Load(ctx, r.store, storageKey(nsCompras, userID), &compras); err != nil {
		return nil, err
	}
	return compras, nil
}

func (r *compraRepo) save(ctx context.Context, userID string, compras map[string][]model.Compra) error {
	return store.Save(ctx, r.store, storageKey(nsCompras, userID), compras)
}

func sortByCreatedAtDesc(compras []model.Compra) {
	sort.SliceStable(compras, func(i, j int) bool {
		return compras[i].CreatedAt.After(compras[j].CreatedAt)
	})
}

func (r *compraRepo) ListDia(ctx context.Context, userID, fechaStr string) ([]model.Compra, error) {
	all, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	dia := append([]model.Compra(nil), all[fechaStr]...)
	sortByCreatedAtDesc(dia)
	return dia, nil
}

func (r *compraRepo) ListAll(ctx context.Context, userID string) ([]model.Compra, error) {
	all, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	var flat []model.Compra
	for _, dia := range all {
		flat = append(flat, dia...)
	}
	sortByCreatedAtDesc(flat)
	return flat, nil
}

func (r *compraRepo) FindByID(ctx context.Context, userID, fechaStr, compraID string) (*model.Compra, error) {
	all, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range all[fechaStr] {
		if all[fechaStr][i].ID == compraID {
			c := all[fechaStr][i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *compraRepo) Prepend(ctx context.Context, userID string, c model.Compra) error {
	all, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	all[c.FechaStr] = append([]model.Compra{c}, all[c.FechaStr]...)
	return r.save(ctx, userID, all)
}

func (r *compraRepo) Remove(ctx context.Context, userID, fechaStr, compraID string) error {
	all, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	prev := all[fechaStr]
	next := make([]model.Compra, 0, len(prev))
	for _, c := range prev {
		if c.ID != compraID {
			next = append(next, c)
		}
	}
	all[fechaStr] = next
	return r.save(ctx, userID, all)
}
