package service_test

import (
	"context"
	"testing"

	"almacenpos/internal/apperror"
	"almacenpos/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProducto_PrecioConComa(t *testing.T) {
	e := newEnv()

	p, err := e.productos.Crear(context.Background(), testUser, dto.CrearProductoRequest{
		Nombre:       "Yerba 1kg",
		PrecioCosto:  "950,50",
		PrecioVenta:  "1400",
		StockInicial: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "950.5", p.PrecioCosto.String())
	assert.Equal(t, 3, p.StockActual)
	assert.NotEmpty(t, p.ID)
}

func TestCrearProducto_SinNombre(t *testing.T) {
	e := newEnv()

	_, err := e.productos.Crear(context.Background(), testUser, dto.CrearProductoRequest{
		Nombre: "   ",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestApplyStockDelta_Incrementa(t *testing.T) {
	e := newEnv()
	p := seedProducto(t, e, "Gaseosa", 5)

	updated, err := e.productos.ApplyStockDelta(context.Background(), testUser, p.ID, 7)

	require.NoError(t, err)
	assert.Equal(t, 12, updated.StockActual)
	assert.Equal(t, 12, stockDe(t, e, p.ID))
}

func TestApplyStockDelta_StockNegativo(t *testing.T) {
	e := newEnv()
	p := seedProducto(t, e, "Gaseosa", 5)

	_, err := e.productos.ApplyStockDelta(context.Background(), testUser, p.ID, -10)

	assert.True(t, apperror.IsInvariant(err))
	assert.ErrorContains(t, err, "Stock resultante inválido")
	// stock must remain untouched
	assert.Equal(t, 5, stockDe(t, e, p.ID))
}

func TestApplyStockDelta_ProductoInexistente(t *testing.T) {
	e := newEnv()

	_, err := e.productos.ApplyStockDelta(context.Background(), testUser, "no-existe", 1)

	assert.True(t, apperror.IsNotFound(err))
}

func TestHasStock(t *testing.T) {
	e := newEnv()
	p := seedProducto(t, e, "Alfajor", 4)

	_, err := e.productos.HasStock(context.Background(), testUser, p.ID, 4)
	require.NoError(t, err)

	_, err = e.productos.HasStock(context.Background(), testUser, p.ID, 5)
	assert.True(t, apperror.IsInvariant(err))
	// the advisory message names the product and its current stock
	assert.ErrorContains(t, err, "Alfajor")
	assert.ErrorContains(t, err, "4")

	_, err = e.productos.HasStock(context.Background(), testUser, p.ID, 0)
	assert.True(t, apperror.IsValidation(err))
}

func TestActualizarProducto_NoTocaStock(t *testing.T) {
	e := newEnv()
	p := seedProducto(t, e, "Pan", 9)

	nombre := "Pan lactal"
	precio := "200,25"
	updated, err := e.productos.Actualizar(context.Background(), testUser, p.ID, dto.ActualizarProductoRequest{
		Nombre:      &nombre,
		PrecioVenta: &precio,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pan lactal", updated.Nombre)
	assert.Equal(t, "200.25", updated.PrecioVenta.String())
	assert.Equal(t, 9, updated.StockActual)
}

func TestProductos_SinSesion(t *testing.T) {
	e := newEnv()

	_, err := e.productos.ApplyStockDelta(context.Background(), "", "x", 1)
	assert.True(t, apperror.IsPrecondition(err))

	_, err = e.productos.List(context.Background(), "  ")
	assert.True(t, apperror.IsPrecondition(err))
}
