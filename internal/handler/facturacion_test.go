package handler

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func facturacionRouter(t *testing.T) (*mocks.MockFacturacionService, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockFacturacionService(ctrl)
	h := NewFacturacionHandler(svc)

	r := newTestRouter()
	r.POST("/v1/invoices", h.Emitir)
	r.GET("/v1/invoices", h.Listar)
	r.GET("/v1/invoices/:id", h.Obtener)
	r.GET("/v1/invoices/:id/pdf", h.PDF)
	r.GET("/v1/sales/:saleId/invoice", h.PorVenta)
	return svc, r
}

func TestFacturacionHandler_Emitir(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc, r := facturacionRouter(t)
		venta := uuid.New()
		svc.EXPECT().Emitir(gomock.Any(), cajero, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req dto.EmitirComprobanteRequest) (*model.Comprobante, error) {
				assert.Equal(t, venta.String(), req.SaleID)
				assert.Equal(t, model.FacturaB, req.TipoComprobante)
				assert.Nil(t, req.PuntoVenta)
				return &model.Comprobante{
					ID:                uuid.New(),
					SaleID:            venta,
					TipoComprobante:   model.FacturaB,
					PuntoVenta:        1,
					NumeroComprobante: 12,
					Total:             decimal.NewFromInt(2500),
				}, nil
			})

		w, body := do(t, r, http.MethodPost, "/v1/invoices", `{"sale_id":"`+venta.String()+`","tipo_comprobante":"B"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		invoice, ok := body["invoice"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(12), invoice["numero_comprobante"])
		assert.Equal(t, "2500", invoice["total"])
	})

	t.Run("campos con formato invalido", func(t *testing.T) {
		_, r := facturacionRouter(t)
		w, body := do(t, r, http.MethodPost, "/v1/invoices", `{"sale_id":"venta-1","punto_venta":0}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierror.CodeMissingRequired, body["error"])
		fields, ok := body["fields"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "uuid", fields["sale_id"])
		assert.Equal(t, "min", fields["punto_venta"])
	})

	t.Run("factura A sin cliente", func(t *testing.T) {
		svc, r := facturacionRouter(t)
		svc.EXPECT().Emitir(gomock.Any(), cajero, gomock.Any()).
			Return(nil, apierror.BadRequest(apierror.CodeInvoiceARequiresCust))

		w, body := do(t, r, http.MethodPost, "/v1/invoices", `{"sale_id":"`+uuid.NewString()+`","tipo_comprobante":"A"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierror.CodeInvoiceARequiresCust, body["error"])
	})

	t.Run("falla inesperada", func(t *testing.T) {
		svc, r := facturacionRouter(t)
		svc.EXPECT().Emitir(gomock.Any(), cajero, gomock.Any()).Return(nil, errors.New("unique violation"))

		w, body := do(t, r, http.MethodPost, "/v1/invoices", `{}`)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, apierror.CodeInvoiceError, body["error"])
	})
}

func TestFacturacionHandler_Listar(t *testing.T) {
	svc, r := facturacionRouter(t)
	svc.EXPECT().Listar(gomock.Any(), dto.ComprobanteFilter{From: "2026-03-01", Tipo: "A"}).Return(nil, nil)

	w, body := do(t, r, http.MethodGet, "/v1/invoices?from=2026-03-01&tipo=A", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, body["items"])
}

func TestFacturacionHandler_PorVenta(t *testing.T) {
	svc, r := facturacionRouter(t)
	venta := uuid.New()
	svc.EXPECT().ObtenerPorVenta(gomock.Any(), venta).Return(nil, apierror.NotFound(apierror.CodeInvoiceNotFound))

	w, body := do(t, r, http.MethodGet, "/v1/sales/"+venta.String()+"/invoice", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierror.CodeInvoiceNotFound, body["error"])
}

func TestFacturacionHandler_PDF(t *testing.T) {
	t.Run("descarga el archivo", func(t *testing.T) {
		svc, r := facturacionRouter(t)
		id := uuid.New()
		path := filepath.Join(t.TempDir(), "0001-B-00000012.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.3 test"), 0o644))
		svc.EXPECT().PDF(gomock.Any(), id).Return(path, nil)

		w, _ := do(t, r, http.MethodGet, "/v1/invoices/"+id.String()+"/pdf", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "0001-B-00000012.pdf")
		assert.Equal(t, "%PDF-1.3 test", w.Body.String())
	})

	t.Run("error de render", func(t *testing.T) {
		svc, r := facturacionRouter(t)
		id := uuid.New()
		svc.EXPECT().PDF(gomock.Any(), id).Return("", errors.New("mkdir: permission denied"))

		w, body := do(t, r, http.MethodGet, "/v1/invoices/"+id.String()+"/pdf", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, apierror.CodePDFError, body["error"])
	})

	t.Run("id invalido", func(t *testing.T) {
		_, r := facturacionRouter(t)
		w, _ := do(t, r, http.MethodGet, "/v1/invoices/12/pdf", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
