package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callDomainError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, domainError(e.NewContext(req, rec), err))
	return rec
}

func decodeShortfall(t *testing.T, rec *httptest.ResponseRecorder) servers.StockShortfall {
	t.Helper()
	var body servers.StockShortfall
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDomainError(t *testing.T) {
	t.Run("allocation shortfall answers 409 with every unmet line", func(t *testing.T) {
		err := &services.AllocationInfeasibleError{
			OrderID: kernel.NewUUID(),
			Unmet: []services.UnmetLine{
				{LineID: kernel.NewUUID(), SKU: "SKU-X", Requested: 10, Available: 5},
				{LineID: kernel.NewUUID(), SKU: "SKU-Y", Requested: 3, Available: 0},
			},
		}

		rec := callDomainError(t, err)

		require.Equal(t, http.StatusConflict, rec.Code)
		body := decodeShortfall(t, rec)
		assert.Equal(t, http.StatusConflict, body.Code)
		require.Len(t, body.Missing, 2)
		assert.Equal(t, servers.ShortLine{Product: "SKU-X", Requested: 10, Available: 5, Missing: 5}, body.Missing[0])
		assert.Equal(t, servers.ShortLine{Product: "SKU-Y", Requested: 3, Available: 0, Missing: 3}, body.Missing[1])
	})

	t.Run("approval shortfall answers 409 with every short line", func(t *testing.T) {
		err := &commands.InsufficientStockError{
			OrderID: kernel.NewUUID(),
			Missing: []commands.ShortLine{
				{Product: "SKU-A", Requested: 4, Available: 1, Missing: 3},
			},
		}

		rec := callDomainError(t, err)

		require.Equal(t, http.StatusConflict, rec.Code)
		body := decodeShortfall(t, rec)
		require.Len(t, body.Missing, 1)
		assert.Equal(t, servers.ShortLine{Product: "SKU-A", Requested: 4, Available: 1, Missing: 3}, body.Missing[0])
	})

	t.Run("missing objects answer 404", func(t *testing.T) {
		rec := callDomainError(t, errs.NewObjectNotFoundError("order", kernel.NewUUID()))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown failures stay opaque", func(t *testing.T) {
		rec := callDomainError(t, errors.New("pq: connection reset"))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var body servers.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "internal error", body.Message)
		assert.NotContains(t, body.Message, "pq:")
	})
}
