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

// ProveedorService manages the supplier registry. Nombre is unique per
// user, compared case-insensitively on the trimmed value.
type ProveedorService interface {
	Listar(ctx context.Context, userID string, includeInactive bool) ([]model.Proveedor, error)
	ObtenerPorID(ctx context.Context, userID, proveedorID string) (*model.Proveedor, error)
	Crear(ctx context.Context, userID string, req dto.CrearProveedorRequest) (*model.Proveedor, error)
	Actualizar(ctx context.Context, userID, proveedorID string, req dto.ActualizarProveedorRequest) (*model.Proveedor, error)
	SetActivo(ctx context.Context, userID, proveedorID string, activo bool) (*model.Proveedor, error)
	// EliminarHard removes the record outright. Compras and pagos keep
	// their proveedorId references dangling; readers show "unknown".
	EliminarHard(ctx context.Context, userID, proveedorID string) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Listar(ctx context.Context, userID string, includeInactive bool) ([]model.Proveedor, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, userID, includeInactive)
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, userID, proveedorID string) (*model.Proveedor, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, userID, proveedorID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Proveedor no encontrado")
	}
	return p, nil
}

func (s *proveedorService) Crear(ctx context.Context, userID string, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apperror.Validation("El nombre es obligatorio")
	}
	existing, err := s.repo.FindByNombre(ctx, userID, nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Invariant("Ya existe un proveedor con ese nombre")
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	now := time.Now().UTC()
	p := model.Proveedor{
		ID:        uuid.NewString(),
		Nombre:    nombre,
		Telefono:  strings.TrimSpace(req.Telefono),
		Email:     strings.TrimSpace(req.Email),
		Direccion: strings.TrimSpace(req.Direccion),
		Notas:     strings.TrimSpace(req.Notas),
		Activo:    activo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, userID, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, userID, proveedorID string, req dto.ActualizarProveedorRequest) (*model.Proveedor, error) {
	p, err := s.ObtenerPorID(ctx, userID, proveedorID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, apperror.Validation("El nombre es obligatorio")
		}
		other, err := s.repo.FindByNombre(ctx, userID, nombre)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != proveedorID {
			return nil, apperror.Invariant("Ya existe un proveedor con ese nombre")
		}
		p.Nombre = nombre
	}
	if req.Telefono != nil {
		p.Telefono = strings.TrimSpace(*req.Telefono)
	}
	if req.Email != nil {
		p.Email = strings.TrimSpace(*req.Email)
	}
	if req.Direccion != nil {
		p.Direccion = strings.TrimSpace(*req.Direccion)
	}
	if req.Notas != nil {
		p.Notas = strings.TrimSpace(*req.Notas)
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, userID, *p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) SetActivo(ctx context.Context, userID, proveedorID string, activo bool) (*model.Proveedor, error) {
	return s.Actualizar(ctx, userID, proveedorID, dto.ActualizarProveedorRequest{Activo: &activo})
}

func (s *proveedorService) EliminarHard(ctx context.Context, userID, proveedorID string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	return s.repo.RemoveHard(ctx, userID, proveedorID)
}
