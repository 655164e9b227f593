package service

import (
	"context"

	"almacenpos/internal/dto"
	"almacenpos/internal/model"

	"github.com/shopspring/decimal"
)

// CuentaCorrienteService derives each supplier's outstanding balance from
// the compra and pago ledgers. Pure read-side aggregation, recomputed on
// every call: always consistent with the ledgers, O(n) in their size.
type CuentaCorrienteService interface {
	GetSaldoProveedor(ctx context.Context, userID, proveedorID string) (*dto.SaldoProveedorResponse, error)
}

type cuentaCorrienteService struct {
	compras CompraService
	pagos   PagoProveedorService
}

func NewCuentaCorrienteService(compras CompraService, pagos PagoProveedorService) CuentaCorrienteService {
	return &cuentaCorrienteService{compras: compras, pagos: pagos}
}

func (s *cuentaCorrienteService) GetSaldoProveedor(ctx context.Context, userID, proveedorID string) (*dto.SaldoProveedorResponse, error) {
	compras, err := s.compras.ListComprasAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	deuda := decimal.Zero
	for _, c := range compras {
		if c.ProveedorID == proveedorID && c.Condicion == model.CondicionCuenta {
			deuda = deuda.Add(c.SaldoPendiente)
		}
	}

	pagos, err := s.pagos.ListPagosByProveedor(ctx, userID, proveedorID)
	if err != nil {
		return nil, err
	}
	pagosTotal := decimal.Zero
	for _, p := range pagos {
		pagosTotal = pagosTotal.Add(p.Amount)
	}

	deuda = round2(deuda)
	pagosTotal = round2(pagosTotal)
	return &dto.SaldoProveedorResponse{
		DeudaCompras: deuda,
		PagosTotal:   pagosTotal,
		Saldo:        round2(deuda.Sub(pagosTotal)),
	}, nil
}
