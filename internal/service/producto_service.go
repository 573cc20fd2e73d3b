package service

import (
	"context"
	"strings"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/infra"
	"gastropos/internal/model"
	"gastropos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProductoService manages the catalog. The active-product list is cached
// per filter and dropped on every write.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo  repository.ProductoRepository
	cache *infra.JSONCache
	clock Clock
}

// NewProductoService accepts a nil cache.
func NewProductoService(repo repository.ProductoRepository, cache *infra.JSONCache, clock Clock) ProductoService {
	return &productoService{repo: repo, cache: cache, clock: clock}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	if req.Price.IsNegative() {
		return nil, apierror.Validation(apierror.CodeMissingFields, map[string]string{"price": "min"})
	}
	now := s.clock.now()
	p := &model.Producto{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Category:  strings.TrimSpace(req.Category),
		Price:     req.Price.Round(2),
		SKU:       trimPtr(req.SKU),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err, "uq_products_sku") {
			return nil, apierror.BadRequest(apierror.CodeSkuExists)
		}
		return nil, err
	}
	s.invalidar(ctx)
	return p, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeProductNotFound)
	}
	return p, err
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	key := strings.ToLower(strings.TrimSpace(filter.Category)) + "|" + strings.ToLower(strings.TrimSpace(filter.Search))
	var productos []model.Producto
	if ok, err := s.cache.Get(ctx, key, &productos); err != nil {
		log.Warn().Err(err).Msg("product cache read failed")
	} else if ok {
		return productos, nil
	}

	productos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if productos == nil {
		productos = []model.Producto{}
	}
	if err := s.cache.Set(ctx, key, productos); err != nil {
		log.Warn().Err(err).Msg("product cache write failed")
	}
	return productos, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	p, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		p.Category = strings.TrimSpace(*req.Category)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apierror.Validation(apierror.CodeMissingFields, map[string]string{"price": "min"})
		}
		p.Price = req.Price.Round(2)
	}
	if req.SKU != nil {
		p.SKU = trimPtr(req.SKU)
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	p.UpdatedAt = s.clock.now()
	if err := s.repo.Update(ctx, p); err != nil {
		if repository.IsUniqueViolation(err, "uq_products_sku") {
			return nil, apierror.BadRequest(apierror.CodeSkuExists)
		}
		return nil, err
	}
	s.invalidar(ctx)
	return p, nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		if repository.IsNotFound(err) {
			return apierror.NotFound(apierror.CodeProductNotFound)
		}
		return err
	}
	s.invalidar(ctx)
	return nil
}

func (s *productoService) invalidar(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
