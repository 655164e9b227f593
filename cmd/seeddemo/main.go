// cmd/seeddemo siembra datos de demo y registra una compra de ejemplo.
// Uso: go run cmd/seeddemo/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"almacenpos/internal/config"
	"almacenpos/internal/dto"
	"almacenpos/internal/repository"
	"almacenpos/internal/service"
	"almacenpos/internal/session"
	"almacenpos/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger. Dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	st, err := store.OpenSQLite(cfg.StorePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.StorePath).Msg("failed to open store")
	}

	// Composition root: repositories → services
	productos := service.NewProductoService(repository.NewProductoRepository(st))
	proveedores := service.NewProveedorService(repository.NewProveedorRepository(st))
	pagos := service.NewPagoProveedorService(repository.NewPagoProveedorRepository(st))
	compras := service.NewCompraService(repository.NewCompraRepository(st), productos, pagos)
	cuentas := service.NewCuentaCorrienteService(compras, pagos)
	cajas := service.NewCajaService(repository.NewCajaRepository(st))

	ctx := context.Background()
	ses := session.Sesion{UserID: "demo", Role: session.RoleAdmin, Turno: session.TurnoManana}
	hoy := time.Now().Format("2006-01-02")

	prov, err := proveedores.Crear(ctx, ses.UserID, dto.CrearProveedorRequest{
		Nombre:   "Distribuidora El Sol",
		Telefono: "2615550000",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed proveedor")
	}

	gaseosa, err := productos.Crear(ctx, ses.UserID, dto.CrearProductoRequest{
		Nombre:      "Gaseosa 1.5L",
		Categoria:   "bebidas",
		PrecioCosto: "950,50",
		PrecioVenta: "1400",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed producto")
	}

	if _, err := cajas.Abrir(ctx, ses.UserID, hoy, ses.Turno); err != nil {
		log.Warn().Err(err).Msg("abrir caja")
	}

	compra, err := compras.RegistrarCompra(ctx, ses.UserID, dto.RegistrarCompraRequest{
		FechaStr:        hoy,
		ProveedorID:     prov.ID,
		ProveedorNombre: prov.Nombre,
		Condicion:       "CUENTA",
		PagadoAhora:     "400",
		Items: []dto.CompraItemRequest{
			{ProductID: gaseosa.ID, Name: gaseosa.Nombre, Qty: 10, UnitCost: "100"},
		},
		Notes: "compra de demo",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("registrar compra")
	}
	log.Info().Str("compraId", compra.ID).Str("saldoPendiente", compra.SaldoPendiente.String()).
		Msg("compra registrada")

	saldo, err := cuentas.GetSaldoProveedor(ctx, ses.UserID, prov.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("saldo proveedor")
	}

	fmt.Printf("✅ Demo lista: proveedor %q saldo=%s (deuda=%s, pagos=%s)\n",
		prov.Nombre, saldo.Saldo, saldo.DeudaCompras, saldo.PagosTotal)
}
