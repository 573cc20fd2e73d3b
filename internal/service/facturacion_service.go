package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/infra"
	"gastropos/internal/model"
	"gastropos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ComprobanteJobs queues invoice post-processing. Implemented by
// worker.Dispatcher; nil disables it.
type ComprobanteJobs interface {
	EnqueueComprobantePDF(ctx context.Context, comprobanteID uuid.UUID) error
}

// FacturacionService issues locally numbered A/B invoices for sales.
type FacturacionService interface {
	Emitir(ctx context.Context, usuarioID uuid.UUID, req dto.EmitirComprobanteRequest) (*model.Comprobante, error)
	Listar(ctx context.Context, filter dto.ComprobanteFilter) ([]model.Comprobante, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Comprobante, error)
	ObtenerPorVenta(ctx context.Context, ventaID uuid.UUID) (*model.Comprobante, error)
	// PDF returns the absolute path of the invoice PDF, rendering it if needed.
	PDF(ctx context.Context, id uuid.UUID) (string, error)
	// GenerarPDF renders and stores the PDF, recording failures on the invoice.
	GenerarPDF(ctx context.Context, id uuid.UUID) (*model.Comprobante, error)
}

var (
	alicuotaNeto = decimal.RequireFromString("0.79")
	alicuotaIVA  = decimal.RequireFromString("0.21")
)

type facturacionService struct {
	tx          repository.TxManager
	repo        repository.ComprobanteRepository
	ventaRepo   repository.VentaRepository
	clienteRepo repository.ClienteRepository
	secuencias  repository.SecuenciaRepository
	jobs        ComprobanteJobs
	emisor      infra.Emisor
	storagePath string
	puntoVenta  int
	loc         *time.Location
	clock       Clock
}

// FacturacionConfig carries the issuer settings.
type FacturacionConfig struct {
	Emisor            infra.Emisor
	PDFStoragePath    string
	DefaultPuntoVenta int
	Location          *time.Location
}

func NewFacturacionService(
	tx repository.TxManager,
	repo repository.ComprobanteRepository,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	secuencias repository.SecuenciaRepository,
	jobs ComprobanteJobs,
	cfg FacturacionConfig,
	clock Clock,
) FacturacionService {
	if cfg.DefaultPuntoVenta <= 0 {
		cfg.DefaultPuntoVenta = 1
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &facturacionService{
		tx:          tx,
		repo:        repo,
		ventaRepo:   ventaRepo,
		clienteRepo: clienteRepo,
		secuencias:  secuencias,
		jobs:        jobs,
		emisor:      cfg.Emisor,
		storagePath: cfg.PDFStoragePath,
		puntoVenta:  cfg.DefaultPuntoVenta,
		loc:         cfg.Location,
		clock:       clock,
	}
}

// ── Emitir ────────────────────────────────────────────────────────────────────
// Request-shape checks run before any I/O. The number is drawn from the
// (punto_venta, tipo) sequence in the same transaction as the insert.

func (s *facturacionService) Emitir(ctx context.Context, usuarioID uuid.UUID, req dto.EmitirComprobanteRequest) (*model.Comprobante, error) {
	tipo := strings.ToUpper(strings.TrimSpace(req.TipoComprobante))
	if strings.TrimSpace(req.SaleID) == "" || tipo == "" {
		return nil, apierror.BadRequest(apierror.CodeMissingRequired)
	}
	if tipo != model.FacturaA && tipo != model.FacturaB {
		return nil, apierror.BadRequest(apierror.CodeInvalidInvoiceType)
	}
	clienteID, err := parseOptionalID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if tipo == model.FacturaA && clienteID == nil {
		return nil, apierror.BadRequest(apierror.CodeInvoiceARequiresCust)
	}
	ventaID, err := uuid.Parse(strings.TrimSpace(req.SaleID))
	if err != nil {
		return nil, apierror.BadRequest(apierror.CodeInvalidID)
	}
	puntoVenta := s.puntoVenta
	if req.PuntoVenta != nil && *req.PuntoVenta > 0 {
		puntoVenta = *req.PuntoVenta
	}

	venta, err := s.ventaRepo.FindByID(ctx, ventaID)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeSaleNotFound)
	}
	if err != nil {
		return nil, err
	}

	var cliente *model.Cliente
	if clienteID != nil {
		cliente, err = s.clienteRepo.FindByID(ctx, *clienteID)
		if repository.IsNotFound(err) {
			return nil, apierror.BadRequest(apierror.CodeCustomerNotFound)
		}
		if err != nil {
			return nil, err
		}
	}
	if tipo == model.FacturaA && cliente.CondicionIVA != model.IVAResponsableInscripto {
		return nil, apierror.BadRequest(apierror.CodeInvoiceARequiresRICust)
	}

	subtotal, iva := desglosarIVA(tipo, venta.Total)
	comp := &model.Comprobante{
		ID:                  uuid.New(),
		SaleID:              venta.ID,
		CustomerID:          clienteID,
		TipoComprobante:     tipo,
		PuntoVenta:          puntoVenta,
		Subtotal:            subtotal,
		IVA:                 iva,
		Total:               venta.Total,
		CondicionVenta:      model.CondicionContado,
		ClienteRazonSocial:  cliente.NombreFactura(),
		ClienteCondicionIVA: model.IVAConsumidorFinal,
		CreatedBy:           usuarioID,
		FechaEmision:        s.clock.now(),
	}
	if cliente != nil {
		comp.ClienteDocumento = strPtr(cliente.NumeroDocumento)
		comp.ClienteDireccion = trimPtr(cliente.Direccion)
		comp.ClienteEmail = trimPtr(cliente.Email)
		if cliente.CondicionIVA != "" {
			comp.ClienteCondicionIVA = cliente.CondicionIVA
		}
	}

	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		n, err := s.secuencias.NextTx(tx, model.ScopeComprobante(puntoVenta, tipo))
		if err != nil {
			return fmt.Errorf("numerar comprobante: %w", err)
		}
		comp.NumeroComprobante = n
		return s.repo.CreateTx(tx, comp)
	})
	if err != nil {
		return nil, err
	}
	comp.Items = venta.Items

	infra.InvoicesIssued.WithLabelValues(tipo).Inc()
	log.Info().Str("invoice_id", comp.ID.String()).Str("numero", comp.Numero()).
		Str("tipo", tipo).Str("sale_id", venta.ID.String()).Msg("invoice issued")

	if s.jobs != nil {
		if err := s.jobs.EnqueueComprobantePDF(ctx, comp.ID); err != nil {
			log.Warn().Err(err).Str("invoice_id", comp.ID.String()).Msg("failed to enqueue invoice pdf job")
		}
	}
	return comp, nil
}

// desglosarIVA splits a gross total. For A the rounding residue is folded
// into IVA so subtotal + iva == total exactly.
func desglosarIVA(tipo string, total decimal.Decimal) (subtotal, iva decimal.Decimal) {
	if tipo != model.FacturaA {
		return total, decimal.Zero
	}
	subtotal = total.Mul(alicuotaNeto).Round(2)
	iva = total.Mul(alicuotaIVA).Round(2)
	iva = iva.Add(total.Sub(subtotal.Add(iva)))
	return subtotal, iva
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *facturacionService) Listar(ctx context.Context, filter dto.ComprobanteFilter) ([]model.Comprobante, error) {
	rango, err := parseRango(filter.From, filter.To, s.loc)
	if err != nil {
		return nil, err
	}
	tipo := strings.ToUpper(strings.TrimSpace(filter.Tipo))
	if tipo != "" && tipo != model.FacturaA && tipo != model.FacturaB {
		return nil, apierror.BadRequest(apierror.CodeInvalidInvoiceType)
	}
	return s.repo.List(ctx, repository.ComprobanteFiltro{Rango: rango, Tipo: tipo})
}

func (s *facturacionService) Obtener(ctx context.Context, id uuid.UUID) (*model.Comprobante, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeInvoiceNotFound)
	}
	if err != nil {
		return nil, err
	}
	return comp, s.cargarItems(ctx, comp)
}

func (s *facturacionService) ObtenerPorVenta(ctx context.Context, ventaID uuid.UUID) (*model.Comprobante, error) {
	comp, err := s.repo.FindLatestBySale(ctx, ventaID)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeInvoiceNotFound)
	}
	if err != nil {
		return nil, err
	}
	return comp, s.cargarItems(ctx, comp)
}

func (s *facturacionService) cargarItems(ctx context.Context, comp *model.Comprobante) error {
	venta, err := s.ventaRepo.FindByID(ctx, comp.SaleID)
	if err != nil {
		return fmt.Errorf("cargar items de la venta %s: %w", comp.SaleID, err)
	}
	comp.Items = venta.Items
	return nil
}

// ── PDF ───────────────────────────────────────────────────────────────────────

func (s *facturacionService) PDF(ctx context.Context, id uuid.UUID) (string, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return "", apierror.NotFound(apierror.CodeInvoiceNotFound)
	}
	if err != nil {
		return "", err
	}
	if comp.PDFPath == nil {
		if comp, err = s.GenerarPDF(ctx, id); err != nil {
			return "", err
		}
	}
	return filepath.Join(s.storagePath, *comp.PDFPath), nil
}

func (s *facturacionService) GenerarPDF(ctx context.Context, id uuid.UUID) (*model.Comprobante, error) {
	comp, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	fileName, err := infra.GenerateComprobantePDF(comp, s.emisor, s.storagePath)
	if err != nil {
		if ferr := s.repo.RegistrarFalloPDF(ctx, id, err.Error()); ferr != nil {
			log.Error().Err(ferr).Str("invoice_id", id.String()).Msg("failed to record pdf failure")
		}
		return nil, apierror.Internal(apierror.CodePDFError)
	}
	if err := s.repo.SetPDF(ctx, id, fileName); err != nil {
		return nil, err
	}
	comp.PDFPath = &fileName
	return comp, nil
}
