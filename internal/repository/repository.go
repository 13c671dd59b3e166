package repository

import (
	"context"

	"northwind/internal/domain"
)

// CatalogRepository read-only доступ к каталогу и заказам.
// Ни одна выборка не различает "родитель не найден" и "у родителя нет строк":
// в обоих случаях возвращается пустой срез без ошибки.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Products(ctx context.Context) ([]domain.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int16) ([]domain.Product, error)
	Customers(ctx context.Context) ([]domain.Customer, error)
	OrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	OrderDetails(ctx context.Context, orderID int16) ([]domain.OrderDetail, error)
	Ping(ctx context.Context) error
}

// Names of fetch operations, used in StoreError.Op and as metric labels.
const (
	OpCategories         = "fetch categories"
	OpProducts           = "fetch products"
	OpProductsByCategory = "fetch products by category"
	OpCustomers          = "fetch customers"
	OpOrdersByCustomer   = "fetch orders for customer"
	OpOrderDetails       = "fetch order details"
	OpPing               = "ping"
)

// StoreError хранилище недоступно или запрос завершился ошибкой
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Op + ": store error"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
