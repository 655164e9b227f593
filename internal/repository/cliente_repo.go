package repository

import (
	"context"

	"almacenpos/internal/model"
	"almacenpos/internal/store"
)

type ClienteRepository interface {
	List(ctx context.Context, userID string) ([]model.Cliente, error)
	FindByID(ctx context.Context, userID, clienteID string) (*model.Cliente, error)
	Insert(ctx context.Context, userID string, c model.Cliente) error
	Update(ctx context.Context, userID string, c model.Cliente) error
	Remove(ctx context.Context, userID, clienteID string) error
}

type clienteRepo struct {
	store store.Store
}

func NewClienteRepository(s store.Store) ClienteRepository {
	return &clienteRepo{store: s}
}

func (r *clienteRepo) load(ctx context.Context, userID string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	if _, err := store.Load(ctx, r.store, storageKey(nsClientes, userID), &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *clienteRepo) save(ctx context.Context, userID string, clientes []model.Cliente) error {
	return store.Save(ctx, r.store, storageKey(nsClientes, userID), clientes)
}

func (r *clienteRepo) List(ctx context.Context, userID string) ([]model.Cliente, error) {
	return r.load(ctx, userID)
}

func (r *clienteRepo) FindByID(ctx context.Context, userID, clienteID string) (*model.Cliente, error) {
	clientes, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range clientes {
		if clientes[i].ID == clienteID {
			return &clientes[i], nil
		}
	}
	return nil, nil
}

func (r *clienteRepo) Insert(ctx context.Context, userID string, c model.Cliente) error {
	clientes, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	return r.save(ctx, userID, append([]model.Cliente{c}, clientes...))
}

func (r *clienteRepo) Update(ctx context.Context, userID string, c model.Cliente) error {
	clientes, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	for i := range clientes {
		if clientes[i].ID == c.ID {
			clientes[i] = c
		}
	}
	return r.save(ctx, userID, clientes)
}

func (r *clienteRepo) Remove(ctx context.Context, userID, clienteID string) error {
	clientes, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	next := clientes[:0]
	for _, c := range clientes {
		if c.ID != clienteID {
			next = append(next, c)
		}
	}
	return r.save(ctx, userID, next)
}
