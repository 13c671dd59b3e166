package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func TestPostgresStoreIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := NewPostgresStore(db)
	ctx := context.Background()

	cats, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, c := range cats {
		products, err := store.ProductsByCategory(ctx, c.ID)
		if err != nil {
			t.Fatalf("products for category %d: %v", c.ID, err)
		}
		for _, p := range products {
			if p.CategoryID != c.ID {
				t.Fatalf("product %d returned for category %d", p.ID, c.ID)
			}
		}
	}

	if _, err := store.OrderDetails(ctx, -1); err != nil {
		t.Fatalf("order details for unknown order: %v", err)
	}
}
