package service_test

import (
	"context"
	"testing"

	"almacenpos/internal/apperror"
	"almacenpos/internal/dto"
	"almacenpos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPago_Defaults(t *testing.T) {
	e := newEnv()

	pago, err := e.pagos.AddPago(context.Background(), testUser, dto.AddPagoRequest{
		ProveedorID:     "prov-1",
		ProveedorNombre: "Acme",
		Amount:          "1200,50",
	})

	require.NoError(t, err)
	assert.Equal(t, model.MetodoTransferencia, pago.Method)
	assert.Equal(t, model.OrigenManual, pago.Origin)
	assert.Equal(t, "1200.5", pago.Amount.String())
	assert.NotEmpty(t, pago.ID)
}

func TestAddPago_OrigenCoercion(t *testing.T) {
	e := newEnv()

	// anything that is not exactly AUTO_COMPRA becomes MANUAL
	pago, err := e.pagos.AddPago(context.Background(), testUser, dto.AddPagoRequest{
		ProveedorID:     "prov-1",
		ProveedorNombre: "Acme",
		Amount:          "100",
		Origin:          "auto_compra",
	})

	require.NoError(t, err)
	assert.Equal(t, model.OrigenManual, pago.Origin)
}

func TestAddPago_MontoInvalido(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	for _, amount := range []string{"0", "-5", "abc"} {
		_, err := e.pagos.AddPago(ctx, testUser, dto.AddPagoRequest{
			ProveedorID:     "prov-1",
			ProveedorNombre: "Acme",
			Amount:          amount,
		})
		assert.True(t, apperror.IsValidation(err), "amount %q", amount)
	}
}

func TestAddPago_ProveedorInvalido(t *testing.T) {
	e := newEnv()

	_, err := e.pagos.AddPago(context.Background(), testUser, dto.AddPagoRequest{
		ProveedorNombre: "Acme",
		Amount:          "100",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestListPagosByProveedor_FiltraYOrdena(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	for _, req := range []dto.AddPagoRequest{
		{ProveedorID: "prov-1", ProveedorNombre: "Acme", Amount: "100", Notes: "primero"},
		{ProveedorID: "prov-2", ProveedorNombre: "Otro", Amount: "999"},
		{ProveedorID: "prov-1", ProveedorNombre: "Acme", Amount: "200", Notes: "segundo"},
	} {
		_, err := e.pagos.AddPago(ctx, testUser, req)
		require.NoError(t, err)
	}

	pagos, err := e.pagos.ListPagosByProveedor(ctx, testUser, "prov-1")

	require.NoError(t, err)
	require.Len(t, pagos, 2)
	// newest first
	assert.Equal(t, "segundo", pagos[0].Notes)
	assert.Equal(t, "primero", pagos[1].Notes)
}

func TestRemovePagosByRefCompra_Idempotente(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.pagos.AddPago(ctx, testUser, dto.AddPagoRequest{
		ProveedorID: "prov-1", ProveedorNombre: "Acme", Amount: "100",
		RefCompraID: "compra-1", Origin: model.OrigenAutoCompra,
	})
	require.NoError(t, err)
	_, err = e.pagos.AddPago(ctx, testUser, dto.AddPagoRequest{
		ProveedorID: "prov-1", ProveedorNombre: "Acme", Amount: "50",
	})
	require.NoError(t, err)

	removed, err := e.pagos.RemovePagosByRefCompra(ctx, testUser, "compra-1")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// zero matches is not an error
	removed, err = e.pagos.RemovePagosByRefCompra(ctx, testUser, "compra-1")
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	// the manual payment survives
	pagos, err := e.pagos.ListPagosByProveedor(ctx, testUser, "prov-1")
	require.NoError(t, err)
	require.Len(t, pagos, 1)
	assert.Equal(t, "50", pagos[0].Amount.String())
}
