package service_test

import (
	"context"
	"testing"

	"almacenpos/internal/apperror"
	"almacenpos/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProveedor_NombreDuplicado(t *testing.T) {
	e := newEnv()
	seedProveedor(t, e, "Acme")

	_, err := e.proveedores.Crear(context.Background(), testUser, dto.CrearProveedorRequest{Nombre: "acme"})

	assert.True(t, apperror.IsInvariant(err))
	assert.ErrorContains(t, err, "Ya existe un proveedor")
}

func TestCrearProveedor_NombreConEspacios(t *testing.T) {
	e := newEnv()

	p, err := e.proveedores.Crear(context.Background(), testUser, dto.CrearProveedorRequest{Nombre: "  Acme  "})

	require.NoError(t, err)
	assert.Equal(t, "Acme", p.Nombre)
	assert.True(t, p.Activo)
}

func TestCrearProveedor_SinNombre(t *testing.T) {
	e := newEnv()

	_, err := e.proveedores.Crear(context.Background(), testUser, dto.CrearProveedorRequest{Nombre: "   "})
	assert.True(t, apperror.IsValidation(err))
}

func TestActualizarProveedor_MismoNombrePropio(t *testing.T) {
	e := newEnv()
	p := seedProveedor(t, e, "Acme")

	// renaming to its own name (other casing) is not a collision
	nombre := "ACME"
	updated, err := e.proveedores.Actualizar(context.Background(), testUser, p.ID, dto.ActualizarProveedorRequest{Nombre: &nombre})

	require.NoError(t, err)
	assert.Equal(t, "ACME", updated.Nombre)
}

func TestActualizarProveedor_NombreAjeno(t *testing.T) {
	e := newEnv()
	seedProveedor(t, e, "Acme")
	otro := seedProveedor(t, e, "Norte")

	nombre := "acme"
	_, err := e.proveedores.Actualizar(context.Background(), testUser, otro.ID, dto.ActualizarProveedorRequest{Nombre: &nombre})

	assert.True(t, apperror.IsInvariant(err))
}

func TestListarProveedores_OrdenEspanol(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	seedProveedor(t, e, "Zeta")
	seedProveedor(t, e, "ávila")
	seedProveedor(t, e, "Barraca")

	list, err := e.proveedores.Listar(ctx, testUser, false)

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "ávila", list[0].Nombre)
	assert.Equal(t, "Barraca", list[1].Nombre)
	assert.Equal(t, "Zeta", list[2].Nombre)
}

func TestSetActivo_FiltraDelListado(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := seedProveedor(t, e, "Acme")
	seedProveedor(t, e, "Norte")

	_, err := e.proveedores.SetActivo(ctx, testUser, p.ID, false)
	require.NoError(t, err)

	activos, err := e.proveedores.Listar(ctx, testUser, false)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "Norte", activos[0].Nombre)

	todos, err := e.proveedores.Listar(ctx, testUser, true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestEliminarHardProveedor(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := seedProveedor(t, e, "Acme")

	require.NoError(t, e.proveedores.EliminarHard(ctx, testUser, p.ID))

	_, err := e.proveedores.ObtenerPorID(ctx, testUser, p.ID)
	assert.True(t, apperror.IsNotFound(err))
}
