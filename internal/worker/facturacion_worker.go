package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"gastropos/internal/apierror"
	"gastropos/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PDFGenerator renders and stores an invoice PDF. Implemented by the
// invoicing service.
type PDFGenerator interface {
	GenerarPDF(ctx context.Context, id uuid.UUID) (*model.Comprobante, error)
}

// EmailQueue is the part of the Dispatcher the invoice worker needs.
type EmailQueue interface {
	EnqueueEmail(ctx context.Context, payload EmailJobPayload) error
}

// FacturacionWorker renders invoice PDFs after issue and, when the customer
// has an e-mail address, queues delivery.
type FacturacionWorker struct {
	generator      PDFGenerator
	emails         EmailQueue
	pdfStoragePath string
	businessName   string
}

// NewFacturacionWorker wires the worker; emails may be nil to skip delivery.
func NewFacturacionWorker(generator PDFGenerator, emails EmailQueue, pdfStoragePath, businessName string) *FacturacionWorker {
	return &FacturacionWorker{
		generator:      generator,
		emails:         emails,
		pdfStoragePath: pdfStoragePath,
		businessName:   businessName,
	}
}

func (w *FacturacionWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ComprobanteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Permanent(fmt.Errorf("facturacion_worker: invalid payload: %w", err))
	}
	id, err := uuid.Parse(payload.ComprobanteID)
	if err != nil {
		return Permanent(fmt.Errorf("facturacion_worker: invalid comprobante_id %q", payload.ComprobanteID))
	}

	comp, err := w.generator.GenerarPDF(ctx, id)
	if err != nil {
		if apiErr, ok := apierror.As(err); ok && apiErr.Status < 500 {
			return Permanent(err)
		}
		return err
	}
	log.Info().Str("invoice_id", id.String()).Str("pdf", *comp.PDFPath).Msg("facturacion_worker: pdf rendered")

	if w.emails == nil || comp.ClienteEmail == nil || *comp.ClienteEmail == "" {
		return nil
	}
	mail := EmailJobPayload{
		ToEmail: *comp.ClienteEmail,
		Subject: fmt.Sprintf("Factura %s N° %s - %s", comp.TipoComprobante, comp.Numero(), w.businessName),
		Body: fmt.Sprintf("Adjuntamos la factura %s N° %s por un total de $%s.\n\nGracias por su visita.\n%s",
			comp.TipoComprobante, comp.Numero(), comp.Total.StringFixed(2), w.businessName),
		PDFPath: filepath.Join(w.pdfStoragePath, *comp.PDFPath),
	}
	if err := w.emails.EnqueueEmail(ctx, mail); err != nil {
		// the PDF is stored; a lost e-mail is not worth re-rendering
		log.Error().Err(err).Str("invoice_id", id.String()).Msg("facturacion_worker: failed to enqueue email")
	}
	return nil
}
