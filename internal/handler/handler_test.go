package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmeshcher/luhn-system/internal/model"
	"github.com/mmeshcher/luhn-system/internal/repository"
	"github.com/mmeshcher/luhn-system/internal/service"
)

type stubService struct {
	luhnResp *service.LuhnResult
	luhnErr  error

	isbnResp *model.Check
	isbnErr  error

	historyResp []model.Check
	historyErr  error
}

func (s *stubService) CheckLuhn(ctx context.Context, number string) (*service.LuhnResult, error) {
	return s.luhnResp, s.luhnErr
}

func (s *stubService) CheckISBN(ctx context.Context, code string, length int) (*model.Check, error) {
	return s.isbnResp, s.isbnErr
}

func (s *stubService) History(ctx context.Context, limit int) ([]model.Check, error) {
	return s.historyResp, s.historyErr
}

func newTestRouter(t *testing.T, svc Service) http.Handler {
	t.Helper()

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	return NewHandler(svc, logger).SetupRouter()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestValidateLuhn(t *testing.T) {
	svc := service.NewService(repository.NewMemoryRepository(), nil)
	h := newTestRouter(t, svc)

	tests := []struct {
		name       string
		body       string
		statusCode int
		valid      bool
	}{
		{name: "valid visa", body: `{"number":"4111-1111-1111-1111"}`, statusCode: http.StatusOK, valid: true},
		{name: "invalid checksum", body: `{"number":"1234-5678-9012-3456"}`, statusCode: http.StatusOK, valid: false},
		{name: "single digit", body: `{"number":"7"}`, statusCode: http.StatusOK, valid: false},
		{name: "no digits", body: `{"number":"abc"}`, statusCode: http.StatusUnprocessableEntity},
		{name: "number is not a string", body: `{"number":4111}`, statusCode: http.StatusBadRequest},
		{name: "missing number", body: `{}`, statusCode: http.StatusBadRequest},
		{name: "malformed json", body: `{"number":`, statusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := doRequest(t, h, http.MethodPost, "/api/luhn/validate", tt.body)
			require.Equal(t, tt.statusCode, res.StatusCode)

			if tt.statusCode != http.StatusOK {
				return
			}
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

			var resp luhnResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
			assert.Equal(t, tt.valid, resp.Valid)
		})
	}
}

func TestValidateLuhn_ResponseBody(t *testing.T) {
	h := newTestRouter(t, service.NewService(nil, nil))

	res := doRequest(t, h, http.MethodPost, "/api/luhn/validate", `{"number":"7992 7398 713"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp luhnResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, luhnResponse{
		Number: "7992 7398 713",
		Digits: "79927398713",
		Total:  70,
		Valid:  true,
	}, resp)
}

func TestValidateLuhn_InternalError(t *testing.T) {
	h := newTestRouter(t, &stubService{luhnErr: errors.New("db down")})

	res := doRequest(t, h, http.MethodPost, "/api/luhn/validate", `{"number":"79927398713"}`)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestValidateISBN(t *testing.T) {
	h := newTestRouter(t, service.NewService(nil, nil))

	tests := []struct {
		name       string
		body       string
		statusCode int
		valid      bool
	}{
		{name: "isbn-13", body: `{"isbn":"9780306406157","length":13}`, statusCode: http.StatusOK, valid: true},
		{name: "isbn-10 with X", body: `{"isbn":"080442957X","length":10}`, statusCode: http.StatusOK, valid: true},
		{name: "wrong check digit", body: `{"isbn":"0306406153","length":10}`, statusCode: http.StatusOK, valid: false},
		{name: "bad length", body: `{"isbn":"0306406152","length":11}`, statusCode: http.StatusUnprocessableEntity},
		{name: "malformed json", body: `[`, statusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := doRequest(t, h, http.MethodPost, "/api/isbn/validate", tt.body)
			require.Equal(t, tt.statusCode, res.StatusCode)

			if tt.statusCode != http.StatusOK {
				return
			}

			var resp isbnResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
			assert.Equal(t, tt.valid, resp.Valid)
		})
	}
}

func TestGetChecks_NoContent(t *testing.T) {
	h := newTestRouter(t, &stubService{historyResp: []model.Check{}})

	res := doRequest(t, h, http.MethodGet, "/api/checks", "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestGetChecks_JSONResponse(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newTestRouter(t, &stubService{
		historyResp: []model.Check{
			{ID: 2, Kind: model.CheckKindLuhn, Masked: "************1111", Total: 30, Valid: true, CheckedAt: now},
		},
	})

	res := doRequest(t, h, http.MethodGet, "/api/checks?limit=5", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var resp []checkResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "luhn", resp[0].Kind)
	assert.Equal(t, "************1111", resp[0].Number)
	assert.Equal(t, "2026-03-01T12:00:00Z", resp[0].CheckedAt)
}

func TestGetChecks_History(t *testing.T) {
	h := newTestRouter(t, service.NewService(repository.NewMemoryRepository(), nil))

	doRequest(t, h, http.MethodPost, "/api/luhn/validate", `{"number":"4111-1111-1111-1111"}`)
	doRequest(t, h, http.MethodPost, "/api/isbn/validate", `{"isbn":"9780306406157","length":13}`)

	res := doRequest(t, h, http.MethodGet, "/api/checks", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp []checkResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "isbn13", resp[0].Kind)
	assert.Equal(t, "luhn", resp[1].Kind)
}

func TestGetChecks_BadLimit(t *testing.T) {
	h := newTestRouter(t, service.NewService(nil, nil))

	for _, target := range []string{"/api/checks?limit=abc", "/api/checks?limit=-3", "/api/checks?limit=100000"} {
		res := doRequest(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, target)
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, &stubService{})

	res := doRequest(t, h, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res = doRequest(t, h, http.MethodGet, "/api/luhn/validate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
