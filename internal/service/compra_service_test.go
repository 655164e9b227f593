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

func compraBase(proveedorID, proveedorNombre string, items ...dto.CompraItemRequest) dto.RegistrarCompraRequest {
	return dto.RegistrarCompraRequest{
		FechaStr:        fechaHoy,
		ProveedorID:     proveedorID,
		ProveedorNombre: proveedorNombre,
		Items:           items,
	}
}

func TestRegistrarCompra_Pagado(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	prov := seedProveedor(t, e, "Distribuidora Norte")
	p1 := seedProducto(t, e, "Harina", 2)
	p2 := seedProducto(t, e, "Azúcar", 0)

	req := compraBase(prov.ID, prov.Nombre,
		dto.CompraItemRequest{ProductID: p1.ID, Name: p1.Nombre, Qty: 10, UnitCost: "80"},
		dto.CompraItemRequest{ProductID: p2.ID, Name: p2.Nombre, Qty: 5, UnitCost: "120,50"},
	)
	compra, err := e.compras.RegistrarCompra(ctx, testUser, req)

	require.NoError(t, err)
	assert.Equal(t, model.CondicionPagado, compra.Condicion)
	// 10*80 + 5*120.50 = 800 + 602.50
	assert.Equal(t, "1402.5", compra.Total.String())
	assert.True(t, compra.PagadoAhora.IsZero())
	assert.True(t, compra.SaldoPendiente.IsZero())

	// stock increased by exactly each quantity
	assert.Equal(t, 12, stockDe(t, e, p1.ID))
	assert.Equal(t, 5, stockDe(t, e, p2.ID))

	// a PAGADO purchase emits no payment
	pagos, err := e.pagos.ListPagosByProveedor(ctx, testUser, prov.ID)
	require.NoError(t, err)
	assert.Empty(t, pagos)
}

func TestRegistrarCompra_CuentaConPagoParcial(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 0)

	req := compraBase(prov.ID, prov.Nombre,
		dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 10, UnitCost: "100"},
	)
	req.Condicion = model.CondicionCuenta
	req.PagadoAhora = "400"
	compra, err := e.compras.RegistrarCompra(ctx, testUser, req)

	require.NoError(t, err)
	assert.Equal(t, "1000", compra.Total.String())
	assert.Equal(t, "400", compra.PagadoAhora.String())
	assert.Equal(t, "600", compra.SaldoPendiente.String())

	pagos, err := e.pagos.ListPagosByProveedor(ctx, testUser, prov.ID)
	require.NoError(t, err)
	require.Len(t, pagos, 1)
	assert.Equal(t, model.OrigenAutoCompra, pagos[0].Origin)
	assert.Equal(t, "400", pagos[0].Amount.String())
	assert.Equal(t, compra.ID, pagos[0].RefCompraID)
	assert.Equal(t, fechaHoy, pagos[0].RefFechaStr)
	assert.Contains(t, pagos[0].Notes, "AUTO:")
}

func TestRegistrarCompra_CuentaSinPagoInicial(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 0)

	req := compraBase(prov.ID, prov.Nombre,
		dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 2, UnitCost: "50"},
	)
	req.Condicion = model.CondicionCuenta
	compra, err := e.compras.RegistrarCompra(ctx, testUser, req)

	require.NoError(t, err)
	assert.Equal(t, "100", compra.SaldoPendiente.String())

	// pagadoAhora = 0 → no automatic payment
	pagos, err := e.pagos.ListPagosByProveedor(ctx, testUser, prov.ID)
	require.NoError(t, err)
	assert.Empty(t, pagos)
}

func TestRegistrarCompra_CondicionCoercion(t *testing.T) {
	e := newEnv()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 0)

	// only the exact CUENTA marker means credit
	for _, condicion := range []string{"", "cuenta", "CREDIT", "PAGADO"} {
		req := compraBase(prov.ID, prov.Nombre,
			dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 1, UnitCost: "10"},
		)
		req.Condicion = condicion
		compra, err := e.compras.RegistrarCompra(context.Background(), testUser, req)
		require.NoError(t, err)
		assert.Equal(t, model.CondicionPagado, compra.Condicion, "condicion %q", condicion)
	}
}

func TestRegistrarCompra_PagadoAhoraMayorAlTotal(t *testing.T) {
	e := newEnv()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 0)

	req := compraBase(prov.ID, prov.Nombre,
		dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 1, UnitCost: "100"},
	)
	req.Condicion = model.CondicionCuenta
	req.PagadoAhora = "150"
	_, err := e.compras.RegistrarCompra(context.Background(), testUser, req)

	assert.True(t, apperror.IsValidation(err))
	// validation aborts before any mutation
	assert.Equal(t, 0, stockDe(t, e, p.ID))
}

func TestRegistrarCompra_Validaciones(t *testing.T) {
	e := newEnv()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 0)
	item := dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 1, UnitCost: "10"}

	cases := []struct {
		name string
		req  dto.RegistrarCompraRequest
	}{
		{"fecha vacía", dto.RegistrarCompraRequest{FechaStr: "  ", ProveedorID: prov.ID, ProveedorNombre: prov.Nombre, Items: []dto.CompraItemRequest{item}}},
		{"proveedor vacío", compraBase("", "", item)},
		{"sin items", compraBase(prov.ID, prov.Nombre)},
		{"cantidad cero", compraBase(prov.ID, prov.Nombre, dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 0, UnitCost: "10"})},
		{"costo negativo", compraBase(prov.ID, prov.Nombre, dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 1, UnitCost: "-10"})},
		{"costo no numérico", compraBase(prov.ID, prov.Nombre, dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 1, UnitCost: "abc"})},
		{"total cero", compraBase(prov.ID, prov.Nombre, dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 1, UnitCost: "0"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.compras.RegistrarCompra(context.Background(), testUser, tc.req)
			assert.True(t, apperror.IsValidation(err), "got %v", err)
		})
	}
	// no mutation leaked from any rejected payload
	assert.Equal(t, 0, stockDe(t, e, p.ID))
}

func TestRegistrarCompra_ProductoInexistente_RollbackTotal(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 3)

	req := compraBase(prov.ID, prov.Nombre,
		dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 10, UnitCost: "100"},
		dto.CompraItemRequest{ProductID: "fantasma", Name: "Fantasma", Qty: 1, UnitCost: "10"},
	)
	_, err := e.compras.RegistrarCompra(ctx, testUser, req)

	assert.True(t, apperror.IsNotFound(err))
	// the first item's increment was compensated
	assert.Equal(t, 3, stockDe(t, e, p.ID))
	// and no purchase record was persisted
	compras, err := e.compras.ListComprasDia(ctx, testUser, fechaHoy)
	require.NoError(t, err)
	assert.Empty(t, compras)
}

func TestRegistrarCompra_SinSesion(t *testing.T) {
	e := newEnv()

	_, err := e.compras.RegistrarCompra(context.Background(), "", dto.RegistrarCompraRequest{})
	assert.True(t, apperror.IsPrecondition(err))
}

func TestEliminarCompra_RevierteStockYCascadaPagos(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 3)

	req := compraBase(prov.ID, prov.Nombre,
		dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 10, UnitCost: "100"},
	)
	req.Condicion = model.CondicionCuenta
	req.PagadoAhora = "400"
	compra, err := e.compras.RegistrarCompra(ctx, testUser, req)
	require.NoError(t, err)
	require.Equal(t, 13, stockDe(t, e, p.ID))

	removed, err := e.compras.EliminarCompra(ctx, testUser, dto.EliminarCompraRequest{
		FechaStr: fechaHoy,
		CompraID: compra.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, compra.ID, removed.ID)
	// pre-purchase stock restored
	assert.Equal(t, 3, stockDe(t, e, p.ID))
	// record gone
	compras, err := e.compras.ListComprasDia(ctx, testUser, fechaHoy)
	require.NoError(t, err)
	assert.Empty(t, compras)
	// AUTO_COMPRA payment cascaded away
	pagos, err := e.pagos.ListPagosByProveedor(ctx, testUser, prov.ID)
	require.NoError(t, err)
	assert.Empty(t, pagos)
}

func TestEliminarCompra_NoTocaPagosManuales(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 0)

	req := compraBase(prov.ID, prov.Nombre,
		dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 1, UnitCost: "100"},
	)
	req.Condicion = model.CondicionCuenta
	req.PagadoAhora = "40"
	compra, err := e.compras.RegistrarCompra(ctx, testUser, req)
	require.NoError(t, err)

	_, err = e.pagos.AddPago(ctx, testUser, dto.AddPagoRequest{
		ProveedorID: prov.ID, ProveedorNombre: prov.Nombre, Amount: "25",
	})
	require.NoError(t, err)

	_, err = e.compras.EliminarCompra(ctx, testUser, dto.EliminarCompraRequest{
		FechaStr: fechaHoy, CompraID: compra.ID,
	})
	require.NoError(t, err)

	pagos, err := e.pagos.ListPagosByProveedor(ctx, testUser, prov.ID)
	require.NoError(t, err)
	require.Len(t, pagos, 1)
	assert.Equal(t, model.OrigenManual, pagos[0].Origin)
}

func TestEliminarCompra_NoExiste(t *testing.T) {
	e := newEnv()

	_, err := e.compras.EliminarCompra(context.Background(), testUser, dto.EliminarCompraRequest{
		FechaStr: fechaHoy, CompraID: "nada",
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestListCompras_OrdenDescendente(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	prov := seedProveedor(t, e, "Acme")
	p := seedProducto(t, e, "Vino", 0)

	var ids []string
	for i := 0; i < 3; i++ {
		compra, err := e.compras.RegistrarCompra(ctx, testUser, compraBase(prov.ID, prov.Nombre,
			dto.CompraItemRequest{ProductID: p.ID, Name: p.Nombre, Qty: 1, UnitCost: "10"},
		))
		require.NoError(t, err)
		ids = append(ids, compra.ID)
	}

	dia, err := e.compras.ListComprasDia(ctx, testUser, fechaHoy)
	require.NoError(t, err)
	require.Len(t, dia, 3)
	assert.Equal(t, ids[2], dia[0].ID)

	all, err := e.compras.ListComprasAll(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
