package service_test

import (
	"context"
	"testing"

	"almacenpos/internal/dto"
	"almacenpos/internal/model"
	"almacenpos/internal/repository"
	"almacenpos/internal/service"
	"almacenpos/internal/store"

	"github.com/stretchr/testify/require"
)

const testUser = "user-demo"

// env wires every service over one in-memory store, the same way the
// composition root does over sqlite.
type env struct {
	productos   service.ProductoService
	clientes    service.ClienteService
	proveedores service.ProveedorService
	pagos       service.PagoProveedorService
	compras     service.CompraService
	cuentas     service.CuentaCorrienteService
	cajas       service.CajaService
	ventas      service.VentaService
}

func newEnv() *env {
	st := store.NewMemory()
	productos := service.NewProductoService(repository.NewProductoRepository(st))
	pagos := service.NewPagoProveedorService(repository.NewPagoProveedorRepository(st))
	compras := service.NewCompraService(repository.NewCompraRepository(st), productos, pagos)
	cajas := service.NewCajaService(repository.NewCajaRepository(st))
	return &env{
		productos:   productos,
		clientes:    service.NewClienteService(repository.NewClienteRepository(st)),
		proveedores: service.NewProveedorService(repository.NewProveedorRepository(st)),
		pagos:       pagos,
		compras:     compras,
		cuentas:     service.NewCuentaCorrienteService(compras, pagos),
		cajas:       cajas,
		ventas:      service.NewVentaService(repository.NewVentaRepository(st), productos, cajas),
	}
}

func seedProducto(t *testing.T, e *env, nombre string, stock int) *model.Producto {
	t.Helper()
	p, err := e.productos.Crear(context.Background(), testUser, dto.CrearProductoRequest{
		Nombre:       nombre,
		PrecioCosto:  "100",
		PrecioVenta:  "150",
		StockInicial: stock,
	})
	require.NoError(t, err)
	return p
}

func seedProveedor(t *testing.T, e *env, nombre string) *model.Proveedor {
	t.Helper()
	p, err := e.proveedores.Crear(context.Background(), testUser, dto.CrearProveedorRequest{
		Nombre: nombre,
	})
	require.NoError(t, err)
	return p
}

func stockDe(t *testing.T, e *env, productoID string) int {
	t.Helper()
	p, err := e.productos.Get(context.Background(), testUser, productoID)
	require.NoError(t, err)
	return p.StockActual
}
