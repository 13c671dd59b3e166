package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"northwind/internal/domain"
)

const (
	selectCategories = `
		SELECT category_id, category_name, description
		FROM categories`

	selectProducts = `
		SELECT product_id, product_name, quantity_per_unit, unit_price, reorder_level,
		       pr_category_id AS category_id
		FROM products`

	selectProductsByCategory = selectProducts + `
		WHERE pr_category_id = $1`

	selectCustomers = `
		SELECT customer_id, company_name, city, country
		FROM customers`

	selectOrdersByCustomer = `
		SELECT order_id, ord_customer_id AS customer_id, order_date, shipped_date
		FROM orders
		WHERE ord_customer_id = $1`

	selectOrderDetails = `
		SELECT od_order_id AS order_id, product_name, quantity, od_unit_price AS unit_price
		FROM order_details
		JOIN products ON product_id = od_product_id
		WHERE od_order_id = $1`
)

// PostgresStore реализует CatalogRepository поверх пула соединений PostgreSQL.
// *sqlx.DB безопасен для конкурентного использования, один экземпляр разделяется всеми запросами.
type PostgresStore struct {
	db *sqlx.DB
}

var _ CatalogRepository = (*PostgresStore)(nil)

// NewPostgresStore оборачивает готовый пул
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Categories(ctx context.Context) ([]domain.Category, error) {
	return selectAll[domain.Category](ctx, s.db, OpCategories, selectCategories)
}

func (s *PostgresStore) Products(ctx context.Context) ([]domain.Product, error) {
	return selectAll[domain.Product](ctx, s.db, OpProducts, selectProducts)
}

func (s *PostgresStore) ProductsByCategory(ctx context.Context, categoryID int16) ([]domain.Product, error) {
	return selectAll[domain.Product](ctx, s.db, OpProductsByCategory, selectProductsByCategory, categoryID)
}

func (s *PostgresStore) Customers(ctx context.Context) ([]domain.Customer, error) {
	return selectAll[domain.Customer](ctx, s.db, OpCustomers, selectCustomers)
}

func (s *PostgresStore) OrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return selectAll[domain.Order](ctx, s.db, OpOrdersByCustomer, selectOrdersByCustomer, customerID)
}

func (s *PostgresStore) OrderDetails(ctx context.Context, orderID int16) ([]domain.OrderDetail, error) {
	return selectAll[domain.OrderDetail](ctx, s.db, OpOrderDetails, selectOrderDetails, orderID)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return storeErr(OpPing, s.db.PingContext(ctx))
}

// selectAll runs one parameterized query and scans every row into T.
// The result is never nil, so "no rows" stays an empty slice.
func selectAll[T any](ctx context.Context, q sqlx.QueryerContext, op, query string, args ...any) ([]T, error) {
	out := make([]T, 0)
	if err := sqlx.SelectContext(ctx, q, &out, query, args...); err != nil {
		return nil, storeErr(op, err)
	}
	return out, nil
}
