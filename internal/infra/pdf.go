package infra

// pdf.go renders A/B invoices with go-pdf/fpdf on A5 portrait:
//   - issuer block (name, CUIT) and invoice letter
//   - number PPPP-NNNNNNNN and issue date
//   - customer snapshot
//   - item table (description, qty, price, subtotal)
//   - subtotal / IVA / total (IVA line only for A)
//
// The file is written to storagePath/comprobante_{tipo}_{numero}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"gastropos/internal/model"

	"github.com/go-pdf/fpdf"
)

// Emisor identifies the business printed on every invoice.
type Emisor struct {
	Nombre string
	CUIT   string
}

// ComprobanteFileName is the file name of an invoice PDF, relative to the
// storage directory.
func ComprobanteFileName(c *model.Comprobante) string {
	return fmt.Sprintf("comprobante_%s_%04d-%08d.pdf", c.TipoComprobante, c.PuntoVenta, c.NumeroComprobante)
}

// GenerateComprobantePDF renders c into storagePath (created if needed) and
// returns the file name relative to storagePath.
func GenerateComprobantePDF(c *model.Comprobante, emisor Emisor, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	fileName := ComprobanteFileName(c)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW*0.75, 8, tr(emisor.Nombre), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentW*0.25, 8, c.TipoComprobante, "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	if emisor.CUIT != "" {
		pdf.CellFormat(contentW, 4, "CUIT: "+emisor.CUIT, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Factura %s N° %s", c.TipoComprobante, c.Numero())), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, tr("Fecha de emisión: ")+c.FechaEmision.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, tr(fmt.Sprintf("Condición de venta: %s", c.CondicionVenta)), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Customer ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 4, tr("Cliente: "+c.ClienteRazonSocial), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if c.ClienteDocumento != nil {
		pdf.CellFormat(contentW, 4, "Documento: "+*c.ClienteDocumento, "", 1, "L", false, 0, "")
	}
	if c.ClienteDireccion != nil {
		pdf.CellFormat(contentW, 4, tr("Dirección: "+*c.ClienteDireccion), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 4, tr("Condición IVA: "+c.ClienteCondicionIVA), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.50
	col2 := contentW * 0.12
	col3 := contentW * 0.19
	col4 := contentW * 0.19

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, tr("Descripción"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range c.Items {
		nombre := item.ProductName
		if nombre == "" {
			nombre = item.Description
		}
		if r := []rune(nombre); len(r) > 40 {
			nombre = string(r[:39]) + "..."
		}
		pdf.CellFormat(col1, 5, tr(nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("%d", item.Qty), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+item.Price.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+item.Subtotal().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	labelW := col1 + col2 + col3
	pdf.SetFont("Helvetica", "", 8)
	if c.TipoComprobante == model.FacturaA {
		pdf.CellFormat(labelW, 5, "Subtotal neto:", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+c.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.CellFormat(labelW, 5, "IVA 21%:", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+c.IVA.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelW, 6, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+c.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filepath.Join(storagePath, fileName)); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return fileName, nil
}
