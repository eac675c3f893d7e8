// Package service реализует бизнес-логику сервиса проверки номеров.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmeshcher/luhn-system/internal/isbn"
	"github.com/mmeshcher/luhn-system/internal/luhn"
	"github.com/mmeshcher/luhn-system/internal/model"
)

const (
	// DefaultHistoryLimit — размер истории по умолчанию.
	DefaultHistoryLimit = 50
	// MaxHistoryLimit — наибольший допустимый размер истории.
	MaxHistoryLimit = 500
)

// ErrInvalidLimit возвращается при недопустимом размере истории.
var ErrInvalidLimit = errors.New("invalid history limit")

// Repository описывает контракт хранилища истории проверок.
type Repository interface {
	Close() error
	SaveCheck(ctx context.Context, c model.Check) (int64, error)
	ListChecks(ctx context.Context, limit int) ([]model.Check, error)
}

// LuhnResult — результат проверки номера по алгоритму Луна.
type LuhnResult struct {
	Check  model.Check
	Digits string
}

// Service содержит бизнес-логику сервиса проверки номеров.
type Service struct {
	repo      Repository
	validator *luhn.Validator
	now       func() time.Time
}

// NewService создаёт новый сервис с указанным хранилищем и валидатором.
func NewService(repo Repository, validator *luhn.Validator) *Service {
	if validator == nil {
		validator = luhn.New()
	}
	return &Service{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// CheckLuhn проверяет номер и сохраняет результат в историю.
// Ошибки конвейера возвращаются без изменений и в историю не попадают.
func (s *Service) CheckLuhn(ctx context.Context, number string) (*LuhnResult, error) {
	res, err := s.validator.Check(number)
	if err != nil {
		return nil, err
	}

	c, err := s.record(ctx, model.Check{
		Kind:   model.CheckKindLuhn,
		Masked: model.MaskNumber(res.Digits),
		Total:  res.Total,
		Valid:  res.Valid,
	})
	if err != nil {
		return nil, err
	}

	return &LuhnResult{Check: *c, Digits: res.Digits}, nil
}

// CheckISBN проверяет код ISBN указанной длины и сохраняет результат в историю.
func (s *Service) CheckISBN(ctx context.Context, code string, length int) (*model.Check, error) {
	valid, err := isbn.Validate(code, length)
	if err != nil {
		return nil, err
	}

	kind := model.CheckKindISBN10
	if length == 13 {
		kind = model.CheckKindISBN13
	}

	return s.record(ctx, model.Check{
		Kind:   kind,
		Masked: model.MaskNumber(code),
		Valid:  valid,
	})
}

// History возвращает последние проверки. limit == 0 означает размер по умолчанию.
func (s *Service) History(ctx context.Context, limit int) ([]model.Check, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 0 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListChecks(ctx, limit)
}

func (s *Service) record(ctx context.Context, c model.Check) (*model.Check, error) {
	c.CheckedAt = s.now().UTC()
	if s.repo == nil {
		return &c, nil
	}

	id, err := s.repo.SaveCheck(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("save check: %w", err)
	}
	c.ID = id

	return &c, nil
}
