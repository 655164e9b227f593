package repository

import (
	"context"

	"almacenpos/internal/model"
	"almacenpos/internal/store"
)

// ProductoRepository is the data access contract for products. Services
// depend on this interface, not on the document layout.
type ProductoRepository interface {
	List(ctx context.Context, userID string) ([]model.Producto, error)
	FindByID(ctx context.Context, userID, productoID string) (*model.Producto, error)
	Insert(ctx context.Context, userID string, p model.Producto) error
	Update(ctx context.Context, userID string, p model.Producto) error
	Remove(ctx context.Context, userID, productoID string) error
}

type productoRepo struct {
	store store.Store
}

func NewProductoRepository(s store.Store) ProductoRepository {
	return &productoRepo{store: s}
}

func (r *productoRepo) load(ctx context.Context, userID string) ([]model.Producto, error) {
	var productos []model.Producto
	if _, err := store.Load(ctx, r.store, storageKey(nsProductos, userID), &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *productoRepo) save(ctx context.Context, userID string, productos []model.Producto) error {
	return store.Save(ctx, r.store, storageKey(nsProductos, userID), productos)
}

func (r *productoRepo) List(ctx context.Context, userID string) ([]model.Producto, error) {
	return r.load(ctx, userID)
}

// FindByID returns (nil, nil) when the product does not exist; callers
// translate that into their NotFound error.
func (r *productoRepo) FindByID(ctx context.Context, userID, productoID string) (*model.Producto, error) {
	productos, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range productos {
		if productos[i].ID == productoID {
			return &productos[i], nil
		}
	}
	return nil, nil
}

// Insert prepends: listings show newest first.
func (r *productoRepo) Insert(ctx context.Context, userID string, p model.Producto) error {
	productos, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	return r.save(ctx, userID, append([]model.Producto{p}, productos...))
}

func (r *productoRepo) Update(ctx context.Context, userID string, p model.Producto) error {
	productos, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	for i := range productos {
		if productos[i].ID == p.ID {
			productos[i] = p
		}
	}
	return r.save(ctx, userID, productos)
}

func (r *productoRepo) Remove(ctx context.Context, userID, productoID string) error {
	productos, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	next := productos[:0]
	for _, p := range productos {
		if p.ID != productoID {
			next = append(next, p)
		}
	}
	return r.save(ctx, userID, next)
}
