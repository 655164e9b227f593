package service

import (
	"context"
	"strings"

	"almacenpos/internal/apperror"
	"almacenpos/internal/model"
	"almacenpos/internal/repository"
	"almacenpos/internal/session"

	"github.com/shopspring/decimal"
)

// CajaService tracks one register session per (fechaStr, turno) and gates
// sales on it being ABIERTA.
type CajaService interface {
	Get(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error)
	Abrir(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error)
	Cerrar(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error)
	// RequireAbierta fails with Precondition when the session is missing or
	// closed. Called by VentaService before any sale posts.
	RequireAbierta(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error)
	// AddToVentasTotal is the only sanctioned mutation of the running sales
	// total. Delta may be negative (voided sales).
	AddToVentasTotal(ctx context.Context, userID, fechaStr, turno string, delta decimal.Decimal) (*model.Caja, error)
}

type cajaService struct {
	repo repository.CajaRepository
}

func NewCajaService(repo repository.CajaRepository) CajaService {
	return &cajaService{repo: repo}
}

func (s *cajaService) validate(userID, fechaStr, turno string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	if strings.TrimSpace(fechaStr) == "" {
		return apperror.Validation("Fecha inválida")
	}
	if !session.ValidTurno(turno) {
		return apperror.Validation("Turno inválido")
	}
	return nil
}

func (s *cajaService) Get(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error) {
	if err := s.validate(userID, fechaStr, turno); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, fechaStr, turno)
}

// Abrir creates the session on first open. Reopening a closed caja keeps
// its accumulated VentasTotal.
func (s *cajaService) Abrir(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error) {
	if err := s.validate(userID, fechaStr, turno); err != nil {
		return nil, err
	}
	caja, err := s.repo.Get(ctx, userID, fechaStr, turno)
	if err != nil {
		return nil, err
	}
	if caja == nil {
		caja = &model.Caja{Estado: model.CajaAbierta, VentasTotal: decimal.Zero}
	} else {
		if caja.Estado == model.CajaAbierta {
			return nil, apperror.Precondition("La caja ya está ABIERTA para este turno.")
		}
		caja.Estado = model.CajaAbierta
	}
	if err := s.repo.Set(ctx, userID, fechaStr, turno, *caja); err != nil {
		return nil, err
	}
	return caja, nil
}

func (s *cajaService) Cerrar(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error) {
	if err := s.validate(userID, fechaStr, turno); err != nil {
		return nil, err
	}
	caja, err := s.repo.Get(ctx, userID, fechaStr, turno)
	if err != nil {
		return nil, err
	}
	if caja == nil {
		return nil, apperror.Precondition("No hay caja creada para este turno.")
	}
	caja.Estado = model.CajaCerrada
	if err := s.repo.Set(ctx, userID, fechaStr, turno, *caja); err != nil {
		return nil, err
	}
	return caja, nil
}

func (s *cajaService) RequireAbierta(ctx context.Context, userID, fechaStr, turno string) (*model.Caja, error) {
	if err := s.validate(userID, fechaStr, turno); err != nil {
		return nil, err
	}
	caja, err := s.repo.Get(ctx, userID, fechaStr, turno)
	if err != nil {
		return nil, err
	}
	if caja == nil {
		return nil, apperror.Precondition("No hay caja creada para este turno. Abrí la caja para vender.")
	}
	if caja.Estado != model.CajaAbierta {
		return nil, apperror.Precondition("La caja está CERRADA. Abrí la caja para vender.")
	}
	return caja, nil
}

func (s *cajaService) AddToVentasTotal(ctx context.Context, userID, fechaStr, turno string, delta decimal.Decimal) (*model.Caja, error) {
	caja, err := s.RequireAbierta(ctx, userID, fechaStr, turno)
	if err != nil {
		return nil, err
	}
	caja.VentasTotal = round2(caja.VentasTotal.Add(delta))
	if err := s.repo.Set(ctx, userID, fechaStr, turno, *caja); err != nil {
		return nil, err
	}
	return caja, nil
}
