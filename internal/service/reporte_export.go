package service

import (
	"time"

	"gastropos/internal/dto"

	"github.com/xuri/excelize/v2"
)

type hojaXLSX struct {
	nombre string
	header []string
	anchos []float64
	filas  [][]any
}

// exportCajaXLSX writes one sheet per section of the cash report.
func exportCajaXLSX(items []dto.ReporteCajaItem, loc *time.Location) ([]byte, error) {
	fecha := func(t time.Time) string { return t.In(loc).Format("2006-01-02 15:04") }

	sesiones := hojaXLSX{
		nombre: "Sesiones",
		header: []string{"ID", "Fecha", "Turno", "Estado", "Apertura", "Cierre", "Diferencia", "Abrió", "Cerró", "Abierta", "Cerrada"},
		anchos: []float64{38, 12, 8, 10, 12, 12, 12, 22, 22, 18, 18},
	}
	ventas := hojaXLSX{
		nombre: "Ventas",
		header: []string{"ID", "Sesión", "Turno", "Fecha", "Total", "Método", "Usuario", "Cliente", "Pedido"},
		anchos: []float64{38, 38, 8, 18, 12, 14, 22, 28, 38},
	}
	movimientos := hojaXLSX{
		nombre: "Movimientos",
		header: []string{"ID", "Sesión", "Fecha", "Tipo", "Monto", "Referencia", "Usuario", "Proveedor"},
		anchos: []float64{38, 38, 18, 10, 12, 40, 22, 28},
	}
	comprobantes := hojaXLSX{
		nombre: "Comprobantes",
		header: []string{"Número", "Tipo", "Venta", "Fecha", "Cliente", "Subtotal", "IVA", "Total"},
		anchos: []float64{16, 6, 38, 18, 28, 12, 12, 12},
	}

	for _, it := range items {
		c := it.Cash
		fila := []any{c.ID.String(), c.ShiftDate, c.ShiftNumber, c.Status, c.OpeningAmount.InexactFloat64(), "", "", c.OpenedByName, c.ClosedByName, fecha(c.OpenedAt), ""}
		if c.ClosingAmount != nil {
			fila[5] = c.ClosingAmount.InexactFloat64()
		}
		if c.Difference != nil {
			fila[6] = c.Difference.InexactFloat64()
		}
		if c.ClosedAt != nil {
			fila[10] = fecha(*c.ClosedAt)
		}
		sesiones.filas = append(sesiones.filas, fila)

		for _, v := range it.Sales {
			pedido := ""
			if v.OrderID != nil {
				pedido = v.OrderID.String()
			}
			ventas.filas = append(ventas.filas, []any{
				v.ID.String(), v.CashSessionID.String(), v.ShiftNumber, fecha(v.CreatedAt),
				v.Total.InexactFloat64(), v.PaymentMethod, v.UserName, v.CustomerName, pedido,
			})
		}
		for _, m := range it.Movements {
			movimientos.filas = append(movimientos.filas, []any{
				m.ID.String(), m.SessionID.String(), fecha(m.CreatedAt), m.Type,
				m.Amount.InexactFloat64(), m.Reference, m.UserName, m.SupplierName,
			})
		}
		for _, cp := range it.Invoices {
			comprobantes.filas = append(comprobantes.filas, []any{
				cp.Numero(), cp.TipoComprobante, cp.SaleID.String(), fecha(cp.FechaEmision), cp.ClienteRazonSocial,
				cp.Subtotal.InexactFloat64(), cp.IVA.InexactFloat64(), cp.Total.InexactFloat64(),
			})
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range []hojaXLSX{sesiones, ventas, movimientos, comprobantes} {
		index, err := f.NewSheet(h.nombre)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		for c, v := range h.header {
			cell, _ := excelize.CoordinatesToCellName(c+1, 1)
			_ = f.SetCellValue(h.nombre, cell, v)
		}
		for r, fila := range h.filas {
			for c, v := range fila {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				_ = f.SetCellValue(h.nombre, cell, v)
			}
		}
		for c, w := range h.anchos {
			col, _ := excelize.ColumnNumberToName(c + 1)
			_ = f.SetColWidth(h.nombre, col, col, w)
		}
		last, _ := excelize.CoordinatesToCellName(len(h.header), 1)
		_ = f.SetCellStyle(h.nombre, "A1", last, style)
	}
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
