package service

import (
	"context"
	"strings"
	"time"

	"almacenpos/internal/apperror"
	"almacenpos/internal/dto"
	"almacenpos/internal/model"
	"almacenpos/internal/repository"

	"github.com/google/uuid"
)

// ClienteService is plain CRUD: clients carry no cross-entity invariants.
type ClienteService interface {
	Listar(ctx context.Context, userID string) ([]model.Cliente, error)
	ObtenerPorID(ctx context.Context, userID, clienteID string) (*model.Cliente, error)
	Crear(ctx context.Context, userID string, req dto.CrearClienteRequest) (*model.Cliente, error)
	Actualizar(ctx context.Context, userID, clienteID string, req dto.ActualizarClienteRequest) (*model.Cliente, error)
	Eliminar(ctx context.Context, userID, clienteID string) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Listar(ctx context.Context, userID string) ([]model.Cliente, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, userID)
}

func (s *clienteService) ObtenerPorID(ctx context.Context, userID, clienteID string) (*model.Cliente, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, userID, clienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("Cliente no encontrado")
	}
	return c, nil
}

func (s *clienteService) Crear(ctx context.Context, userID string, req dto.CrearClienteRequest) (*model.Cliente, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apperror.Validation("El nombre es obligatorio")
	}
	c := model.Cliente{
		ID:        uuid.NewString(),
		Nombre:    nombre,
		Telefono:  strings.TrimSpace(req.Telefono),
		Email:     strings.TrimSpace(req.Email),
		Notas:     strings.TrimSpace(req.Notas),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, userID, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *clienteService) Actualizar(ctx context.Context, userID, clienteID string, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	c, err := s.ObtenerPorID(ctx, userID, clienteID)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, apperror.Validation("El nombre es obligatorio")
		}
		c.Nombre = nombre
	}
	if req.Telefono != nil {
		c.Telefono = strings.TrimSpace(*req.Telefono)
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Notas != nil {
		c.Notas = strings.TrimSpace(*req.Notas)
	}
	if err := s.repo.Update(ctx, userID, *c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Eliminar(ctx context.Context, userID, clienteID string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	return s.repo.Remove(ctx, userID, clienteID)
}
