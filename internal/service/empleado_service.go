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

type EmpleadoService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.EmpleadoRequest) (*model.Empleado, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empleado, error)
	Listar(ctx context.Context) ([]model.Empleado, error)
	Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.EmpleadoRequest) (*model.Empleado, error)
}

type empleadoService struct {
	repo  repository.EmpleadoRepository
	clock Clock
}

func NewEmpleadoService(repo repository.EmpleadoRepository, clock Clock) EmpleadoService {
	return &empleadoService{repo: repo, clock: clock}
}

func (s *empleadoService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.EmpleadoRequest) (*model.Empleado, error) {
	e := &model.Empleado{ID: uuid.New(), CreatedBy: usuarioID}
	if err := aplicarEmpleado(e, req); err != nil {
		return nil, err
	}
	now := s.clock.now()
	e.CreatedAt, e.UpdatedAt = now, now
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *empleadoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empleado, error) {
	e, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeNotFound)
	}
	return e, err
}

func (s *empleadoService) Listar(ctx context.Context) ([]model.Empleado, error) {
	return s.repo.List(ctx)
}

func (s *empleadoService) Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.EmpleadoRequest) (*model.Empleado, error) {
	e, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := aplicarEmpleado(e, req); err != nil {
		return nil, err
	}
	e.UpdatedBy = &usuarioID
	e.UpdatedAt = s.clock.now()
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func aplicarEmpleado(e *model.Empleado, req dto.EmpleadoRequest) error {
	e.Apellido = strings.TrimSpace(req.Apellido)
	e.Nombre = strings.TrimSpace(req.Nombre)
	e.DNI = strings.TrimSpace(req.DNI)
	e.CUIL = strings.TrimSpace(req.CUIL)
	if e.Apellido == "" || e.Nombre == "" || e.DNI == "" || e.CUIL == "" {
		return apierror.BadRequest(apierror.CodeMissingFields)
	}
	e.FechaNac = trimPtr(req.FechaNac)
	e.Telefono = trimPtr(req.Telefono)
	e.Email = trimPtr(req.Email)
	e.Direccion = trimPtr(req.Direccion)
	e.Localidad = trimPtr(req.Localidad)
	e.Provincia = trimPtr(req.Provincia)
	e.Puesto = trimPtr(req.Puesto)
	e.FechaIngreso = trimPtr(req.FechaIngreso)
	e.Estado = valorODefault(req.Estado, model.EmpleadoActivo)
	return nil
}
