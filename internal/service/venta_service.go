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
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const metodoEfectivo = "EFECTIVO"

// VentaService posts sales into per-(fechaStr, turno) buckets. Every sale
// is gated on an open caja and decrements stock through the product
// ledger's single primitive; the caja's running total only moves through
// CajaService.AddToVentasTotal.
type VentaService interface {
	ListVentasBucket(ctx context.Context, userID, fechaStr, turno string) ([]model.Venta, error)
	RegistrarVenta(ctx context.Context, userID string, req dto.RegistrarVentaRequest) (*model.Venta, error)
	// AnularVenta removes the sale, restores stock and subtracts the total
	// from the caja. Returns (nil, nil) when the sale was not in the
	// bucket: a no-op removal is not an error.
	AnularVenta(ctx context.Context, userID, fechaStr, turno, ventaID string) (*model.Venta, error)
}

type ventaService struct {
	repo      repository.VentaRepository
	productos ProductoService
	caja      CajaService
}

func NewVentaService(repo repository.VentaRepository, productos ProductoService, caja CajaService) VentaService {
	return &ventaService{repo: repo, productos: productos, caja: caja}
}

func (s *ventaService) ListVentasBucket(ctx context.Context, userID, fechaStr, turno string) ([]model.Venta, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.repo.ListBucket(ctx, userID, fechaStr, turno)
}

func (s *ventaService) RegistrarVenta(ctx context.Context, userID string, req dto.RegistrarVentaRequest) (*model.Venta, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	if _, err := s.caja.RequireAbierta(ctx, userID, req.FechaStr, req.Turno); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, apperror.Validation("Agregá al menos 1 ítem")
	}

	items := make([]model.VentaItem, 0, len(req.Items))
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
		if _, err := s.productos.HasStock(ctx, userID, productID, it.Qty); err != nil {
			return nil, err
		}
		precio, err := parseMonto(it.PrecioUnitario)
		if err != nil || precio.IsNegative() {
			return nil, apperror.Validation("Precio unitario inválido")
		}
		subtotal := mulQty(precio, it.Qty)
		total = total.Add(subtotal)
		items = append(items, model.VentaItem{
			ProductID:      productID,
			Name:           name,
			Qty:            it.Qty,
			PrecioUnitario: precio,
			Subtotal:       subtotal,
		})
	}
	if !total.IsPositive() {
		return nil, apperror.Validation("Total inválido")
	}

	metodo := strings.TrimSpace(req.MetodoPago)
	if metodo == "" {
		metodo = metodoEfectivo
	}

	venta := model.Venta{
		ID:         uuid.NewString(),
		Items:      items,
		Total:      total,
		MetodoPago: metodo,
		ClienteID:  strings.TrimSpace(req.ClienteID),
		CreatedAt:  time.Now().UTC(),
	}

	steps := make([]saga.Step, 0, len(items)+2)
	for _, it := range items {
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
		Name: "persistir venta",
		Run: func(ctx context.Context) error {
			return s.repo.Prepend(ctx, userID, req.FechaStr, req.Turno, venta)
		},
		Compensate: func(ctx context.Context) error {
			_, err := s.repo.Remove(ctx, userID, req.FechaStr, req.Turno, venta.ID)
			return err
		},
	})
	steps = append(steps, saga.Step{
		Name: "acumular ventasTotal",
		Run: func(ctx context.Context) error {
			_, err := s.caja.AddToVentasTotal(ctx, userID, req.FechaStr, req.Turno, total)
			return err
		},
	})

	if err := saga.Run(ctx, steps); err != nil {
		return nil, err
	}
	return &venta, nil
}

func (s *ventaService) AnularVenta(ctx context.Context, userID, fechaStr, turno, ventaID string) (*model.Venta, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	removed, err := s.repo.Remove(ctx, userID, fechaStr, turno, ventaID)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, nil
	}

	steps := make([]saga.Step, 0, len(removed.Items)+1)
	for _, it := range removed.Items {
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
	steps = append(steps, saga.Step{
		Name: "descontar ventasTotal",
		Run: func(ctx context.Context) error {
			_, err := s.caja.AddToVentasTotal(ctx, userID, fechaStr, turno, removed.Total.Neg())
			return err
		},
	})

	if err := saga.Run(ctx, steps); err != nil {
		// The sale was already pruned; put it back so the anulación is
		// all-or-nothing from the caller's perspective.
		if rerr := s.repo.Prepend(ctx, userID, fechaStr, turno, *removed); rerr != nil {
			log.Warn().Err(rerr).Str("ventaId", removed.ID).
				Msg("anular venta: no se pudo reinsertar la venta tras el fallo")
		}
		return nil, err
	}
	return removed, nil
}
