package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/fleet-ops/internal/domain/fleet"
	"github.com/Spok95/fleet-ops/internal/domain/pricing"
)

type classStub map[string]*fleet.VehicleClass

func (s classStub) GetClassByID(_ context.Context, id string) (*fleet.VehicleClass, error) {
	return s[id], nil
}

type catalogStub []pricing.PriceRow

func (s catalogStub) Candidates(context.Context, string, time.Time, time.Time) ([]pricing.PriceRow, error) {
	return s, nil
}

func newTestServer(engine *pricing.Engine) *Server {
	return New(Deps{
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Engine: engine,
	})
}

func postQuote(t *testing.T, s *Server, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, req)
	return rec
}

func TestPricingQuoteEndpoint(t *testing.T) {
	engine := pricing.NewEngine(
		classStub{"c1": {ID: "c1", Name: "Luxury Sedan"}},
		catalogStub{{RatePlanID: "std", BaseAmount: 50}},
		pricing.FixedYield(1),
	)
	s := newTestServer(engine)

	rec := postQuote(t, s, map[string]any{
		"vehicleClassId": "c1",
		"pickupAt":       "2026-03-01T10:00:00Z",
		"dropoffAt":      "2026-03-04T10:00:00Z",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var q pricing.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, 3, q.Days)
	assert.Equal(t, 189.54, q.Totals.Total)
	assert.Contains(t, q.Notes, "Luxury class surcharge (8%)")
}

func TestPricingQuoteValidation(t *testing.T) {
	s := newTestServer(pricing.NewEngine(classStub{}, catalogStub{}, pricing.FixedYield(1)))

	rec := postQuote(t, s, map[string]any{"vehicleClassId": "c1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricingQuoteErrorMapping(t *testing.T) {
	body := map[string]any{
		"vehicleClassId": "c1",
		"pickupAt":       "2026-03-01T10:00:00Z",
		"dropoffAt":      "2026-03-02T10:00:00Z",
	}

	s := newTestServer(pricing.NewEngine(classStub{}, catalogStub{}, pricing.FixedYield(1)))
	rec := postQuote(t, s, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s = newTestServer(pricing.NewEngine(
		classStub{"c1": {ID: "c1", Name: "Economy"}}, catalogStub{}, pricing.FixedYield(1),
	))
	rec = postQuote(t, s, body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
