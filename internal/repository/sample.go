package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"northwind/internal/domain"
)

// SampleDataset небольшой срез Northwind для STORE_DRIVER=memory и тестов
func SampleDataset() Dataset {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	shipped := func(y int, m time.Month, d int) *time.Time { t := day(y, m, d); return &t }
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return Dataset{
		Categories: []domain.Category{
			{ID: 1, Name: "Beverages", Description: "Soft drinks, coffees, teas, beers, and ales"},
			{ID: 2, Name: "Condiments", Description: "Sweet and savory sauces, relishes, spreads, and seasonings"},
			{ID: 3, Name: "Confections", Description: "Desserts, candies, and sweet breads"},
			{ID: 4, Name: "Dairy Products", Description: "Cheeses"},
			{ID: 5, Name: "Grains/Cereals", Description: "Breads, crackers, pasta, and cereal"},
			{ID: 8, Name: "Seafood", Description: "Seaweed and fish"},
		},
		Products: []domain.Product{
			{ID: 1, Name: "Chai", QuantityPerUnit: "10 boxes x 30 bags", UnitPrice: price("18"), ReorderLevel: 10, CategoryID: 1},
			{ID: 2, Name: "Chang", QuantityPerUnit: "24 - 12 oz bottles", UnitPrice: price("19"), ReorderLevel: 25, CategoryID: 1},
			{ID: 3, Name: "Aniseed Syrup", QuantityPerUnit: "12 - 550 ml bottles", UnitPrice: price("10"), ReorderLevel: 25, CategoryID: 2},
			{ID: 4, Name: "Chef Anton's Cajun Seasoning", QuantityPerUnit: "48 - 6 oz jars", UnitPrice: price("22"), ReorderLevel: 0, CategoryID: 2},
			{ID: 16, Name: "Pavlova", QuantityPerUnit: "32 - 500 g boxes", UnitPrice: price("17.45"), ReorderLevel: 10, CategoryID: 3},
			{ID: 11, Name: "Queso Cabrales", QuantityPerUnit: "1 kg pkg.", UnitPrice: price("21"), ReorderLevel: 30, CategoryID: 4},
			{ID: 42, Name: "Singaporean Hokkien Fried Mee", QuantityPerUnit: "32 - 1 kg pkgs.", UnitPrice: price("14"), ReorderLevel: 0, CategoryID: 5},
			{ID: 72, Name: "Mozzarella di Giovanni", QuantityPerUnit: "24 - 200 g pkgs.", UnitPrice: price("34.8"), ReorderLevel: 0, CategoryID: 4},
		},
		Customers: []domain.Customer{
			{ID: "ALFKI", CompanyName: "Alfreds Futterkiste", City: "Berlin", Country: "Germany"},
			{ID: "ANATR", CompanyName: "Ana Trujillo Emparedados y helados", City: "México D.F.", Country: "Mexico"},
			{ID: "VINET", CompanyName: "Vins et alcools Chevalier", City: "Reims", Country: "France"},
		},
		Orders: []domain.Order{
			{ID: 10248, CustomerID: "VINET", OrderDate: day(1996, time.July, 4), ShippedDate: shipped(1996, time.July, 16)},
			{ID: 10643, CustomerID: "ALFKI", OrderDate: day(1997, time.August, 25), ShippedDate: shipped(1997, time.September, 2)},
			{ID: 11011, CustomerID: "ALFKI", OrderDate: day(1998, time.April, 9), ShippedDate: shipped(1998, time.April, 13)},
			{ID: 11077, CustomerID: "ALFKI", OrderDate: day(1998, time.May, 6)},
		},
		OrderDetails: []domain.OrderDetail{
			{OrderID: 10248, ProductName: "Queso Cabrales", Quantity: 12, UnitPrice: price("14")},
			{OrderID: 10248, ProductName: "Singaporean Hokkien Fried Mee", Quantity: 10, UnitPrice: price("9.8")},
			{OrderID: 10248, ProductName: "Mozzarella di Giovanni", Quantity: 5, UnitPrice: price("34.8")},
			{OrderID: 10643, ProductName: "Chai", Quantity: 21, UnitPrice: price("18")},
			{OrderID: 11011, ProductName: "Aniseed Syrup", Quantity: 40, UnitPrice: price("10")},
			{OrderID: 11077, ProductName: "Chang", Quantity: 24, UnitPrice: price("19")},
			{OrderID: 11077, ProductName: "Pavlova", Quantity: 2, UnitPrice: price("17.45")},
		},
	}
}
