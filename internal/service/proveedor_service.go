package service

import (
	"context"
	"strings"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.ProveedorRequest) (*model.Proveedor, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	Listar(ctx context.Context) ([]model.Proveedor, error)
	Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ProveedorRequest) (*model.Proveedor, error)
	// Eliminar deactivates the supplier; movements keep referencing it.
	Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error
}

type proveedorService struct {
	repo  repository.ProveedorRepository
	clock Clock
}

func NewProveedorService(repo repository.ProveedorRepository, clock Clock) ProveedorService {
	return &proveedorService{repo: repo, clock: clock}
}

func (s *proveedorService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.ProveedorRequest) (*model.Proveedor, error) {
	p := &model.Proveedor{ID: uuid.New(), Active: true, CreatedBy: usuarioID}
	if err := aplicarProveedor(p, req); err != nil {
		return nil, err
	}
	now := s.clock.now()
	p.CreatedAt, p.UpdatedAt = now, now
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeSupplierNotFound)
	}
	return p, err
}

func (s *proveedorService) Listar(ctx context.Context) ([]model.Proveedor, error) {
	return s.repo.List(ctx)
}

func (s *proveedorService) Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ProveedorRequest) (*model.Proveedor, error) {
	p, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := aplicarProveedor(p, req); err != nil {
		return nil, err
	}
	p.UpdatedBy = &usuarioID
	p.UpdatedAt = s.clock.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error {
	err := s.repo.SoftDelete(ctx, id, usuarioID)
	if repository.IsNotFound(err) {
		return apierror.NotFound(apierror.CodeSupplierNotFound)
	}
	return err
}

func aplicarProveedor(p *model.Proveedor, req dto.ProveedorRequest) error {
	razon := strings.TrimSpace(req.RazonSocial)
	cuit := strings.TrimSpace(req.CUIT)
	if razon == "" || cuit == "" {
		return apierror.BadRequest(apierror.CodeMissingFields)
	}
	p.RazonSocial = razon
	p.CUIT = cuit
	p.IIBB = trimPtr(req.IIBB)
	p.CondicionIVA = trimPtr(req.CondicionIVA)
	p.Telefono = trimPtr(req.Telefono)
	p.Email = trimPtr(req.Email)
	p.Direccion = trimPtr(req.Direccion)
	p.Localidad = trimPtr(req.Localidad)
	p.Provincia = trimPtr(req.Provincia)
	p.Contacto = trimPtr(req.Contacto)
	p.Notas = trimPtr(req.Notas)
	return nil
}
