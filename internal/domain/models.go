package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Теги db совпадают с именами колонок в выдаче запросов репозитория.
// Колонки с префиксами (pr_category_id, od_unit_price, ...) переименовываются в SQL.

// Category категория товаров
type Category struct {
	ID          int16  `json:"category_id" db:"category_id"`
	Name        string `json:"category_name" db:"category_name"`
	Description string `json:"description" db:"description"`
}

// Product товар; всегда принадлежит ровно одной категории
type Product struct {
	ID              int16           `json:"product_id" db:"product_id"`
	Name            string          `json:"product_name" db:"product_name"`
	QuantityPerUnit string          `json:"quantity_per_unit" db:"quantity_per_unit"`
	UnitPrice       decimal.Decimal `json:"unit_price" db:"unit_price"`
	ReorderLevel    int16           `json:"reorder_level" db:"reorder_level"`
	CategoryID      int16           `json:"category_id" db:"category_id"`
}

// Customer клиент
type Customer struct {
	ID          string `json:"customer_id" db:"customer_id"`
	CompanyName string `json:"company_name" db:"company_name"`
	City        string `json:"city" db:"city"`
	Country     string `json:"country" db:"country"`
}

// Order заказ клиента. ShippedDate == nil означает, что заказ ещё не отгружен.
type Order struct {
	ID          int16      `json:"order_id" db:"order_id"`
	CustomerID  string     `json:"customer_id" db:"customer_id"`
	OrderDate   time.Time  `json:"order_date" db:"order_date"`
	ShippedDate *time.Time `json:"shipped_date,omitempty" db:"shipped_date"`
}

// Shipped сообщает, отгружен ли заказ
func (o Order) Shipped() bool { return o.ShippedDate != nil }

// OrderDetail позиция заказа; название товара подтягивается джойном при чтении
type OrderDetail struct {
	OrderID     int16           `json:"order_id" db:"order_id"`
	ProductName string          `json:"product_name" db:"product_name"`
	Quantity    int16           `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
}

// LineTotal quantity × unit price
func (d OrderDetail) LineTotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
