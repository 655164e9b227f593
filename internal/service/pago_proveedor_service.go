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

// PagoProveedorService is the append-only ledger of payments to suppliers.
type PagoProveedorService interface {
	AddPago(ctx context.Context, userID string, req dto.AddPagoRequest) (*model.PagoProveedor, error)
	ListPagosByProveedor(ctx context.Context, userID, proveedorID string) ([]model.PagoProveedor, error)
	RemovePago(ctx context.Context, userID, pagoID string) error
	// RemovePagosByRefCompra is the cascade hook used when a compra is
	// deleted; idempotent, returns the count removed.
	RemovePagosByRefCompra(ctx context.Context, userID, refCompraID string) (int, error)
}

type pagoProveedorService struct {
	repo repository.PagoProveedorRepository
}

func NewPagoProveedorService(repo repository.PagoProveedorRepository) PagoProveedorService {
	return &pagoProveedorService{repo: repo}
}

func (s *pagoProveedorService) AddPago(ctx context.Context, userID string, req dto.AddPagoRequest) (*model.PagoProveedor, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	proveedorID := strings.TrimSpace(req.ProveedorID)
	proveedorNombre := strings.TrimSpace(req.ProveedorNombre)
	if proveedorID == "" || proveedorNombre == "" {
		return nil, apperror.Validation("Proveedor inválido")
	}

	amount, err := parseMonto(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, apperror.Validation("Monto inválido")
	}

	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = model.MetodoTransferencia
	}
	origin := model.OrigenManual
	if req.Origin == model.OrigenAutoCompra {
		origin = model.OrigenAutoCompra
	}

	pago := model.PagoProveedor{
		ID:              uuid.NewString(),
		ProveedorID:     proveedorID,
		ProveedorNombre: proveedorNombre,
		Amount:          round2(amount),
		Method:          method,
		Notes:           strings.TrimSpace(req.Notes),
		RefCompraID:     req.RefCompraID,
		RefFechaStr:     req.RefFechaStr,
		Origin:          origin,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Prepend(ctx, userID, pago); err != nil {
		return nil, err
	}
	return &pago, nil
}

func (s *pagoProveedorService) ListPagosByProveedor(ctx context.Context, userID, proveedorID string) ([]model.PagoProveedor, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.repo.ListByProveedor(ctx, userID, proveedorID)
}

func (s *pagoProveedorService) RemovePago(ctx context.Context, userID, pagoID string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	return s.repo.RemoveByID(ctx, userID, pagoID)
}

func (s *pagoProveedorService) RemovePagosByRefCompra(ctx context.Context, userID, refCompraID string) (int, error) {
	if err := requireUserID(userID); err != nil {
		return 0, err
	}
	return s.repo.RemoveByRefCompra(ctx, userID, refCompraID)
}
