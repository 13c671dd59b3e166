package repository

import (
	"context"
	"sync"

	"northwind/internal/domain"
)

// Dataset снимок всех таблиц для MemoryStore
type Dataset struct {
	Categories   []domain.Category
	Products     []domain.Product
	Customers    []domain.Customer
	Orders       []domain.Order
	OrderDetails []domain.OrderDetail
}

// MemoryStore in-memory реализация CatalogRepository.
// Порядок строк совпадает с порядком загрузки, как у таблицы без ORDER BY.
type MemoryStore struct {
	mu   sync.RWMutex
	data Dataset
}

var _ CatalogRepository = (*MemoryStore)(nil)

func NewMemoryStore(seed Dataset) *MemoryStore {
	m := &MemoryStore{}
	m.Load(seed)
	return m
}

// Load заменяет содержимое хранилища копией seed
func (m *MemoryStore) Load(seed Dataset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = Dataset{
		Categories:   append([]domain.Category(nil), seed.Categories...),
		Products:     append([]domain.Product(nil), seed.Products...),
		Customers:    append([]domain.Customer(nil), seed.Customers...),
		Orders:       append([]domain.Order(nil), seed.Orders...),
		OrderDetails: append([]domain.OrderDetail(nil), seed.OrderDetails...),
	}
}

func (m *MemoryStore) Categories(ctx context.Context) ([]domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.data.Categories, func(domain.Category) bool { return true }), nil
}

func (m *MemoryStore) Products(ctx context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.data.Products, func(domain.Product) bool { return true }), nil
}

func (m *MemoryStore) ProductsByCategory(ctx context.Context, categoryID int16) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.data.Products, func(p domain.Product) bool { return p.CategoryID == categoryID }), nil
}

func (m *MemoryStore) Customers(ctx context.Context) ([]domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.data.Customers, func(domain.Customer) bool { return true }), nil
}

func (m *MemoryStore) OrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.data.Orders, func(o domain.Order) bool { return o.CustomerID == customerID }), nil
}

func (m *MemoryStore) OrderDetails(ctx context.Context, orderID int16) ([]domain.OrderDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.data.OrderDetails, func(d domain.OrderDetail) bool { return d.OrderID == orderID }), nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

// helper: copy of the rows matching keep, never nil
func filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
