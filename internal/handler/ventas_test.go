package handler

import (
	"context"
	"net/http"
	"testing"

	"gastropos/internal/apierror"
	"gastropos/internal/dto"
	"gastropos/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ventasRouter(t *testing.T) (*mocks.MockVentaService, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockVentaService(ctrl)
	h := NewVentasHandler(svc)

	r := newTestRouter()
	r.POST("/v1/sales", h.Registrar)
	r.GET("/v1/sales", h.Listar)
	r.GET("/v1/sales/summary", h.Resumen)
	return svc, r
}

func TestVentasHandler_Registrar(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc, r := ventasRouter(t)
		venta, sesion := uuid.New(), uuid.New()
		svc.EXPECT().RegistrarVenta(gomock.Any(), cajero, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
				require.Len(t, req.Items, 1)
				assert.True(t, req.Items[0].Manual)
				assert.Equal(t, "debito", req.PaymentMethod)
				return &dto.RegistrarVentaResponse{
					SaleID:        venta.String(),
					Total:         decimal.RequireFromString("3100.5"),
					CashSessionID: sesion.String(),
					ShiftNumber:   2,
				}, nil
			})

		w, body := do(t, r, http.MethodPost, "/v1/sales",
			`{"items":[{"description":"Cubierto","qty":1,"price":3100.5,"manual":true}],"payment_method":"debito"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, venta.String(), body["sale_id"])
		assert.Equal(t, "3100.5", body["total"])
		assert.Equal(t, sesion.String(), body["cash_session_id"])
		assert.Equal(t, float64(2), body["shift_number"])
	})

	t.Run("json invalido", func(t *testing.T) {
		_, r := ventasRouter(t)
		w, body := do(t, r, http.MethodPost, "/v1/sales", `{"items":"muchos"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierror.CodeInvalidJSON, body["error"])
	})

	t.Run("sin items", func(t *testing.T) {
		svc, r := ventasRouter(t)
		svc.EXPECT().RegistrarVenta(gomock.Any(), cajero, gomock.Any()).Return(nil, apierror.BadRequest(apierror.CodeNoItems))

		w, body := do(t, r, http.MethodPost, "/v1/sales", `{"items":[]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierror.CodeNoItems, body["error"])
	})
}

func TestVentasHandler_Resumen(t *testing.T) {
	svc, r := ventasRouter(t)
	svc.EXPECT().Resumen(gomock.Any(), dto.VentaFilter{Shift: 1}).Return(&dto.ResumenVentasResponse{
		Ventas:       3,
		Total:        decimal.NewFromInt(9000),
		CantEfectivo: 2,
		CantQR:       1,
		PorMetodo:    map[string]decimal.Decimal{"efectivo": decimal.NewFromInt(6000), "qr": decimal.NewFromInt(3000)},
	}, nil)

	w, body := do(t, r, http.MethodGet, "/v1/sales/summary?shift=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["ventas"])
	assert.Equal(t, "9000", body["total"])
	assert.Equal(t, float64(2), body["cant_efectivo"])
	porMetodo, ok := body["por_metodo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "3000", porMetodo["qr"])
}

func TestVentasHandler_ListarQueryInvalida(t *testing.T) {
	_, r := ventasRouter(t)
	w, body := do(t, r, http.MethodGet, "/v1/sales?shift=primero", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierror.CodeInvalidJSON, body["error"])
}
