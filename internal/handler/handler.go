// Package handler содержит HTTP-обработчики API сервиса проверки номеров.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/luhn-system/internal/isbn"
	"github.com/mmeshcher/luhn-system/internal/luhn"
	"github.com/mmeshcher/luhn-system/internal/model"
	"github.com/mmeshcher/luhn-system/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	CheckLuhn(ctx context.Context, number string) (*service.LuhnResult, error)
	CheckISBN(ctx context.Context, code string, length int) (*model.Check, error)
	History(ctx context.Context, limit int) ([]model.Check, error)
}

// Handler реализует HTTP-обработчики API сервиса проверки номеров.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

type luhnRequest struct {
	Number any `json:"number"`
}

type luhnResponse struct {
	Number string `json:"number"`
	Digits string `json:"digits"`
	Total  int    `json:"total"`
	Valid  bool   `json:"valid"`
}

// ValidateLuhn проверяет номер по алгоритму Луна.
func (h *Handler) ValidateLuhn(w http.ResponseWriter, r *http.Request) {
	var req luhnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	number, err := luhn.Input(req.Number)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.CheckLuhn(r.Context(), number)
	if err != nil {
		switch luhn.KindOf(err) {
		case luhn.KindType:
			http.Error(w, err.Error(), http.StatusBadRequest)
		case luhn.KindValue:
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			h.logger.Error("luhn check error", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, luhnResponse{
		Number: number,
		Digits: res.Digits,
		Total:  res.Check.Total,
		Valid:  res.Check.Valid,
	})
}

type isbnRequest struct {
	ISBN   string `json:"isbn"`
	Length int    `json:"length"`
}

type isbnResponse struct {
	ISBN   string `json:"isbn"`
	Length int    `json:"length"`
	Valid  bool   `json:"valid"`
}

// ValidateISBN проверяет код ISBN-10 или ISBN-13.
func (h *Handler) ValidateISBN(w http.ResponseWriter, r *http.Request) {
	var req isbnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	c, err := h.service.CheckISBN(r.Context(), req.ISBN, req.Length)
	if err != nil {
		if errors.Is(err, isbn.ErrLength) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("isbn check error", zap.Error(err), zap.Int("length", req.Length))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, isbnResponse{
		ISBN:   req.ISBN,
		Length: req.Length,
		Valid:  c.Valid,
	})
}

type checkResponse struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Number    string `json:"number"`
	Total     int    `json:"total"`
	Valid     bool   `json:"valid"`
	CheckedAt string `json:"checked_at"`
}

// GetChecks возвращает историю последних проверок.
func (h *Handler) GetChecks(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		limit = n
	}

	checks, err := h.service.History(r.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLimit) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("get checks error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(checks) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]checkResponse, 0, len(checks))
	for _, c := range checks {
		resp = append(resp, checkResponse{
			ID:        c.ID,
			Kind:      string(c.Kind),
			Number:    c.Masked,
			Total:     c.Total,
			Valid:     c.Valid,
			CheckedAt: c.CheckedAt.Format(time.RFC3339),
		})
	}

	h.writeJSON(w, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}
