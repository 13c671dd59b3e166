package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"northwind/internal/domain"
	"northwind/internal/repository"
)

// CatalogService отдаёт срезы каталога и заказов; каждая выборка — один независимый запрос
type CatalogService struct {
	repo         repository.CatalogRepository
	queryTimeout time.Duration
	onFailure    func(op string)
}

// Option настраивает CatalogService
type Option func(*CatalogService)

// WithQueryTimeout ограничивает время одного запроса к хранилищу; 0 — без ограничения
func WithQueryTimeout(d time.Duration) Option {
	return func(s *CatalogService) { s.queryTimeout = d }
}

// WithFailureHook вызывается с именем операции на каждую ошибку хранилища
func WithFailureHook(fn func(op string)) Option {
	return func(s *CatalogService) { s.onFailure = fn }
}

func NewCatalogService(repo repository.CatalogRepository, opts ...Option) *CatalogService {
	s := &CatalogService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return fetch(ctx, s, repository.OpCategories, s.repo.Categories)
}

func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	return fetch(ctx, s, repository.OpProducts, s.repo.Products)
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID int16) ([]domain.Product, error) {
	return fetch(ctx, s, repository.OpProductsByCategory, func(ctx context.Context) ([]domain.Product, error) {
		return s.repo.ProductsByCategory(ctx, categoryID)
	})
}

func (s *CatalogService) Customers(ctx context.Context) ([]domain.Customer, error) {
	return fetch(ctx, s, repository.OpCustomers, s.repo.Customers)
}

func (s *CatalogService) OrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return fetch(ctx, s, repository.OpOrdersByCustomer, func(ctx context.Context) ([]domain.Order, error) {
		return s.repo.OrdersByCustomer(ctx, customerID)
	})
}

func (s *CatalogService) OrderDetails(ctx context.Context, orderID int16) ([]domain.OrderDetail, error) {
	return fetch(ctx, s, repository.OpOrderDetails, func(ctx context.Context) ([]domain.OrderDetail, error) {
		return s.repo.OrderDetails(ctx, orderID)
	})
}

// Ping проверяет доступность хранилища
func (s *CatalogService) Ping(ctx context.Context) error {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()
	return s.repo.Ping(ctx)
}

func (s *CatalogService) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// fetch runs one repository read. Errors that are not already a StoreError
// (a custom repository, an expired deadline) are wrapped so callers see one kind.
func fetch[T any](ctx context.Context, s *CatalogService, op string, read func(context.Context) ([]T, error)) ([]T, error) {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	start := time.Now()
	rows, err := read(ctx)
	log := zerolog.Ctx(ctx)
	if err != nil {
		var se *repository.StoreError
		if !errors.As(err, &se) {
			err = &repository.StoreError{Op: op, Err: err}
		}
		log.Warn().Err(err).Str("op", op).Dur("elapsed", time.Since(start)).Msg("store fetch failed")
		if s.onFailure != nil {
			s.onFailure(op)
		}
		return nil, err
	}
	log.Debug().Str("op", op).Int("rows", len(rows)).Dur("elapsed", time.Since(start)).Msg("store fetch")
	return rows, nil
}
