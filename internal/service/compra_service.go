package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"almacenpos/internal/apperror"
	"almacenpos/internal/dto"
	"almacenpos/internal/model"
	"almacenpos/internal/repository"
	"almacenpos/internal/saga"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompraService records supplier purchases. Registering a purchase touches
// up to three independent documents (stock, compra, pago automático) with
// no shared transaction, so the commit runs as a saga: each step carries
// its own undo and any failure compensates everything already applied.
type CompraService interface {
	ListComprasDia(ctx context.Context, userID, fechaStr string) ([]model.Compra, error)
	ListComprasAll(ctx context.Context, userID string) ([]model.Compra, error)
	RegistrarCompra(ctx context.Context, userID string, req dto.RegistrarCompraRequest) (*model.Compra, error)
	EliminarCompra(ctx context.Context, userID string, req dto.EliminarCompraRequest) (*model.Compra, error)
}

type compraService struct {
	repo      repository.CompraRepository
	productos ProductoService
	pagos     PagoProveedorService
}

func NewCompraService(repo repository.CompraRepository, productos ProductoService, pagos PagoProveedorService) CompraService {
	return &compraService{repo: repo, productos: productos, pagos: pagos}
}

func (s *compraService) ListComprasDia(ctx context.Context, userID, fechaStr string) ([]model.Compra, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.repo.ListDia(ctx, userID, fechaStr)
}

func (s *compraService) ListComprasAll(ctx context.Context, userID string) ([]model.Compra, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx, userID)
}

// ── RegistrarCompra ──────────────────────────────────────────────────────────

func (s *compraService) RegistrarCompra(ctx context.Context, userID string, req dto.RegistrarCompraRequest) (*model.Compra, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	fechaStr := strings.TrimSpace(req.FechaStr)
	if fechaStr == "" {
		return nil, apperror.Validation("Fecha inválida")
	}

	proveedorID := strings.TrimSpace(req.ProveedorID)
	proveedorNombre := strings.TrimSpace(req.ProveedorNombre)
	if proveedorID == "" || proveedorNombre == "" {
		return nil, apperror.Validation("Proveedor inválido")
	}

	// Anything that is not exactly CUENTA is a paid purchase.
	condicion := model.CondicionPagado
	if req.Condicion == model.CondicionCuenta {
		condicion = model.CondicionCuenta
	}

	if len(req.Items) == 0 {
		return nil, apperror.Validation("Agregá al menos 1 ítem")
	}

	items := make([]model.CompraItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		productID := strings.TrimSpace(it.ProductID)
		name := strings.TrimSpace(it.Name)
		if productID == "" || name == "" {
			return nil, apperror.Validation("Ítem inválido (producto)")
		}
		if it.Qty <= 0 {
			return nil, apperror.Validation("Cantidad inválida")
		}
		unitCost, err := parseMonto(it.UnitCost)
		if err != nil || unitCost.IsNegative() {
			return nil, apperror.Validation("Costo unitario inválido")
		}
		subtotal := mulQty(unitCost, it.Qty)
		total = total.Add(subtotal)
		items = append(items, model.CompraItem{
			ProductID: productID,
			Name:      name,
			Qty:       it.Qty,
			UnitCost:  unitCost,
			Subtotal:  subtotal,
		})
	}
	if !total.IsPositive() {
		return nil, apperror.Validation("Total inválido")
	}

	pagadoAhora := decimal.Zero
	if condicion == model.CondicionCuenta {
		var err error
		pagadoAhora, err = parseMonto(req.PagadoAhora)
		if err != nil || pagadoAhora.IsNegative() {
			return nil, apperror.Validation("Pagado ahora inválido")
		}
		if pagadoAhora.GreaterThan(total) {
			return nil, apperror.Validation("Pagado ahora no puede ser mayor al total")
		}
	}

	pagadoAhoraMethod := strings.TrimSpace(req.PagadoAhoraMethod)
	if pagadoAhoraMethod == "" {
		pagadoAhoraMethod = model.MetodoTransferencia
	}

	saldoPendiente := decimal.Zero
	if condicion == model.CondicionCuenta {
		saldoPendiente = round2(total.Sub(pagadoAhora))
	}

	compra := model.Compra{
		ID:                uuid.NewString(),
		FechaStr:          fechaStr,
		ProveedorID:       proveedorID,
		ProveedorNombre:   proveedorNombre,
		Items:             items,
		Total:             total,
		Notes:             strings.TrimSpace(req.Notes),
		Condicion:         condicion,
		PagadoAhora:       pagadoAhora,
		PagadoAhoraMethod: pagadoAhoraMethod,
		SaldoPendiente:    saldoPendiente,
		CreatedAt:         time.Now().UTC(),
	}

	steps := make([]saga.Step, 0, len(items)+2)
	// 1) stock increments, one compensable step per item
	for _, it := range items {
		it := it
		steps = append(steps, saga.Step{
			Name: fmt.Sprintf("stock +%d %s", it.Qty, it.ProductID),
			Run: func(ctx context.Context) error {
				_, err := s.productos.ApplyStockDelta(ctx, userID, it.ProductID, it.Qty)
				return err
			},
			Compensate: func(ctx context.Context) error {
				_, err := s.productos.ApplyStockDelta(ctx, userID, it.ProductID, -it.Qty)
				return err
			},
		})
	}
	// 2) persist the compra record
	steps = append(steps, saga.Step{
		Name: "persistir compra",
		Run: func(ctx context.Context) error {
			return s.repo.Prepend(ctx, userID, compra)
		},
		Compensate: func(ctx context.Context) error {
			return s.repo.Remove(ctx, userID, compra.FechaStr, compra.ID)
		},
	})
	// 3) automatic payment for CUENTA purchases with an upfront amount
	if condicion == model.CondicionCuenta && pagadoAhora.IsPositive() {
		notes := "AUTO: compra " + compra.ID
		if compra.Notes != "" {
			notes = "AUTO: " + compra.Notes
		}
		steps = append(steps, saga.Step{
			Name: "pago automático",
			Run: func(ctx context.Context) error {
				_, err := s.pagos.AddPago(ctx, userID, dto.AddPagoRequest{
					ProveedorID:     proveedorID,
					ProveedorNombre: proveedorNombre,
					Amount:          pagadoAhora.String(),
					Method:          pagadoAhoraMethod,
					Notes:           notes,
					RefCompraID:     compra.ID,
					RefFechaStr:     compra.FechaStr,
					Origin:          model.OrigenAutoCompra,
				})
				return err
			},
		})
	}

	if err := saga.Run(ctx, steps); err != nil {
		return nil, err
	}
	return &compra, nil
}

// ── EliminarCompra ───────────────────────────────────────────────────────────

func (s *compraService) EliminarCompra(ctx context.Context, userID string, req dto.EliminarCompraRequest) (*model.Compra, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	compra, err := s.repo.FindByID(ctx, userID, req.FechaStr, req.CompraID)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, apperror.NotFound("Compra no encontrada")
	}

	steps := make([]saga.Step, 0, len(compra.Items)+1)
	for _, it := range compra.Items {
		it := it
		steps = append(steps, saga.Step{
			Name: fmt.Sprintf("stock -%d %s", it.Qty, it.ProductID),
			Run: func(ctx context.Context) error {
				_, err := s.productos.ApplyStockDelta(ctx, userID, it.ProductID, -it.Qty)
				return err
			},
			Compensate: func(ctx context.Context) error {
				_, err := s.productos.ApplyStockDelta(ctx, userID, it.ProductID, it.Qty)
				return err
			},
		})
	}
	steps = append(steps, saga.Step{
		Name: "eliminar compra",
		Run: func(ctx context.Context) error {
			return s.repo.Remove(ctx, userID, compra.FechaStr, compra.ID)
		},
	})
	if err := saga.Run(ctx, steps); err != nil {
		return nil, err
	}

	// Cascade: AUTO_COMPRA payments are owned by this compra. Always
	// attempted after the record is gone; not reversible.
	if compra.Condicion == model.CondicionCuenta && compra.PagadoAhora.IsPositive() {
		if _, err := s.pagos.RemovePagosByRefCompra(ctx, userID, compra.ID); err != nil {
			return nil, fmt.Errorf("compra eliminada pero falló la baja de pagos asociados: %w", err)
		}
	}
	return compra, nil
}
