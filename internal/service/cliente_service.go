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

type ClienteService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.ClienteRequest) (*model.Cliente, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*model.Cliente, error)
}

type clienteService struct {
	repo  repository.ClienteRepository
	clock Clock
}

func NewClienteService(repo repository.ClienteRepository, clock Clock) ClienteService {
	return &clienteService{repo: repo, clock: clock}
}

func (s *clienteService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.ClienteRequest) (*model.Cliente, error) {
	c := &model.Cliente{ID: uuid.New(), CreatedBy: usuarioID}
	if err := aplicarCliente(c, req); err != nil {
		return nil, err
	}
	if err := s.documentoLibre(ctx, c.NumeroDocumento, nil); err != nil {
		return nil, err
	}
	now := s.clock.now()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := s.repo.Create(ctx, c); err != nil {
		if repository.IsUniqueViolation(err, "uq_customers_documento") {
			return nil, apierror.BadRequest(apierror.CodeCustomerExists)
		}
		return nil, err
	}
	return c, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeCustomerNotFound)
	}
	return c, err
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, error) {
	return s.repo.List(ctx, filter.Search)
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*model.Cliente, error) {
	c, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := aplicarCliente(c, req); err != nil {
		return nil, err
	}
	if err := s.documentoLibre(ctx, c.NumeroDocumento, &c.ID); err != nil {
		return nil, err
	}
	c.UpdatedAt = s.clock.now()
	if err := s.repo.Update(ctx, c); err != nil {
		if repository.IsUniqueViolation(err, "uq_customers_documento") {
			return nil, apierror.BadRequest(apierror.CodeCustomerExists)
		}
		return nil, err
	}
	return c, nil
}

func (s *clienteService) documentoLibre(ctx context.Context, numero string, exclude *uuid.UUID) error {
	existe, err := s.repo.ExistsDocumento(ctx, numero, exclude)
	if err != nil {
		return err
	}
	if existe {
		return apierror.BadRequest(apierror.CodeCustomerExists)
	}
	return nil
}

// aplicarCliente copies the request onto c with the DNI / CF / Fisica defaults.
func aplicarCliente(c *model.Cliente, req dto.ClienteRequest) error {
	razon := strings.TrimSpace(req.RazonSocial)
	doc := strings.TrimSpace(req.NumeroDocumento)
	if razon == "" || doc == "" {
		return apierror.BadRequest(apierror.CodeMissingRequired)
	}
	c.RazonSocial = razon
	c.NumeroDocumento = doc
	c.Nombre = trimPtr(req.Nombre)
	c.Apellido = trimPtr(req.Apellido)
	c.TipoDocumento = valorODefault(req.TipoDocumento, "DNI")
	c.CondicionIVA = valorODefault(req.CondicionIVA, model.IVAConsumidorFinal)
	c.TipoCliente = valorODefault(req.TipoCliente, "Fisica")
	c.Direccion = trimPtr(req.Direccion)
	c.Localidad = trimPtr(req.Localidad)
	c.Provincia = trimPtr(req.Provincia)
	c.CodigoPostal = trimPtr(req.CodigoPostal)
	c.Telefono = trimPtr(req.Telefono)
	c.Email = trimPtr(req.Email)
	return nil
}

func valorODefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
