package service_test

import (
	"context"
	"net/http"
	"testing"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductos_SinCacheConsultaSiempre(t *testing.T) {
	store := newMemStore()
	repo := &productoStub{s: store}
	svc := service.NewProductoService(repo, nil, nil)
	ctx := context.Background()

	p, err := svc.Crear(ctx, dto.CrearProductoRequest{Name: " Empanada de carne ", Category: "Entradas", Price: dec("900.499")})
	require.NoError(t, err)
	assert.Equal(t, "Empanada de carne", p.Name)
	assert.True(t, dec("900.5").Equal(p.Price))
	assert.True(t, p.Active)

	_, err = svc.Crear(ctx, dto.CrearProductoRequest{Name: "Humita", Category: "Entradas", Price: dec("950")})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		lista, err := svc.Listar(ctx, dto.ProductoFilter{Category: "Entradas"})
		require.NoError(t, err)
		assert.Len(t, lista, 2)
	}
	assert.Equal(t, 2, repo.lists)

	require.NoError(t, svc.Desactivar(ctx, p.ID))
	lista, err := svc.Listar(ctx, dto.ProductoFilter{Search: "empanada"})
	require.NoError(t, err)
	assert.Empty(t, lista)
	assert.NotNil(t, lista)

	requireCode(t, svc.Desactivar(ctx, uuid.New()), apierror.CodeProductNotFound, http.StatusNotFound)
}

func TestProductos_Actualizar(t *testing.T) {
	store := newMemStore()
	svc := service.NewProductoService(&productoStub{s: store}, nil, nil)
	ctx := context.Background()
	p, err := svc.Crear(ctx, dto.CrearProductoRequest{Name: "Locro", Price: dec("7000")})
	require.NoError(t, err)

	nuevo := dec("7500")
	upd, err := svc.Actualizar(ctx, p.ID, dto.ActualizarProductoRequest{Price: &nuevo})
	require.NoError(t, err)
	assert.True(t, nuevo.Equal(upd.Price))
	assert.Equal(t, "Locro", upd.Name)

	negativo := dec("-1")
	_, err = svc.Actualizar(ctx, p.ID, dto.ActualizarProductoRequest{Price: &negativo})
	requireCode(t, err, apierror.CodeMissingFields, http.StatusBadRequest)

	_, err = svc.ObtenerPorID(ctx, uuid.New())
	requireCode(t, err, apierror.CodeProductNotFound, http.StatusNotFound)
}

func TestClientes_DocumentoUnico(t *testing.T) {
	store := newMemStore()
	svc := service.NewClienteService(clienteStub{s: store}, nil)
	ctx := context.Background()
	usuario := uuid.New()

	c, err := svc.Crear(ctx, usuario, dto.ClienteRequest{RazonSocial: "Juan Pérez", NumeroDocumento: "30111222"})
	require.NoError(t, err)
	assert.Equal(t, "DNI", c.TipoDocumento)
	assert.Equal(t, model.IVAConsumidorFinal, c.CondicionIVA)
	assert.Equal(t, "Fisica", c.TipoCliente)

	_, err = svc.Crear(ctx, usuario, dto.ClienteRequest{RazonSocial: "Otro", NumeroDocumento: "30111222"})
	requireCode(t, err, apierror.CodeCustomerExists, http.StatusBadRequest)

	_, err = svc.Crear(ctx, usuario, dto.ClienteRequest{RazonSocial: "Sin documento"})
	requireCode(t, err, apierror.CodeMissingRequired, http.StatusBadRequest)

	// Saving a customer with its own document is not a duplicate.
	upd, err := svc.Actualizar(ctx, c.ID, dto.ClienteRequest{RazonSocial: "Juan A. Pérez", NumeroDocumento: "30111222"})
	require.NoError(t, err)
	assert.Equal(t, "Juan A. Pérez", upd.RazonSocial)

	lista, err := svc.Listar(ctx, dto.ClienteFilter{Search: "pérez"})
	require.NoError(t, err)
	assert.Len(t, lista, 1)

	_, err = svc.ObtenerPorID(ctx, uuid.New())
	requireCode(t, err, apierror.CodeCustomerNotFound, http.StatusNotFound)
}

func TestProveedores_EliminarDesactiva(t *testing.T) {
	store := newMemStore()
	svc := service.NewProveedorService(proveedorStub{s: store}, nil)
	ctx := context.Background()
	usuario := uuid.New()

	_, err := svc.Crear(ctx, usuario, dto.ProveedorRequest{RazonSocial: "Frigorífico"})
	requireCode(t, err, apierror.CodeMissingFields, http.StatusBadRequest)

	p, err := svc.Crear(ctx, usuario, dto.ProveedorRequest{RazonSocial: "Frigorífico Pampa", CUIT: "30-55555555-5", Contacto: strp("  ")})
	require.NoError(t, err)
	assert.Nil(t, p.Contacto)

	require.NoError(t, svc.Eliminar(ctx, usuario, p.ID))
	stored, err := svc.ObtenerPorID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
	require.NotNil(t, stored.UpdatedBy)
	assert.Equal(t, usuario, *stored.UpdatedBy)

	lista, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, lista)

	requireCode(t, svc.Eliminar(ctx, usuario, uuid.New()), apierror.CodeSupplierNotFound, http.StatusNotFound)
}

func TestEmpleados(t *testing.T) {
	store := newMemStore()
	svc := service.NewEmpleadoService(empleadoStub{s: store}, nil)
	ctx := context.Background()
	usuario := uuid.New()

	_, err := svc.Crear(ctx, usuario, dto.EmpleadoRequest{Nombre: "Rosa"})
	requireCode(t, err, apierror.CodeMissingFields, http.StatusBadRequest)

	e, err := svc.Crear(ctx, usuario, dto.EmpleadoRequest{Nombre: "Rosa", Apellido: "Giménez", DNI: "28999888", CUIL: "27-28999888-4"})
	require.NoError(t, err)
	assert.Equal(t, model.EmpleadoActivo, e.Estado)

	upd, err := svc.Actualizar(ctx, usuario, e.ID, dto.EmpleadoRequest{
		Nombre: "Rosa", Apellido: "Giménez", DNI: "28999888", CUIL: "27-28999888-4", Estado: model.EmpleadoInactivo,
	})
	require.NoError(t, err)
	assert.Equal(t, model.EmpleadoInactivo, upd.Estado)

	_, err = svc.ObtenerPorID(ctx, uuid.New())
	requireCode(t, err, apierror.CodeNotFound, http.StatusNotFound)
}
