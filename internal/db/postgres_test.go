package db

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestWithTenantTransactionSetsAgencyScope(t *testing.T) {
	pool := testPool(t)

	var scope string
	err := WithTenantTransaction(context.Background(), pool, 42, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, "SELECT current_setting('app.current_agency', true)").Scan(&scope)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope != "42" {
		t.Errorf("expected app.current_agency = 42 inside the transaction, got %q", scope)
	}
}

func TestWithTenantTransactionScopeIsTransactionLocal(t *testing.T) {
	pool := testPool(t)

	err := WithTenantTransaction(context.Background(), pool, 42, func(ctx context.Context, tx pgx.Tx) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// set_config with is_local = true must not leak past the commit.
	var scope *string
	if err := pool.QueryRow(context.Background(), "SELECT nullif(current_setting('app.current_agency', true), '')").Scan(&scope); err != nil {
		t.Fatalf("failed to read setting: %v", err)
	}
	if scope != nil {
		t.Errorf("expected no agency scope outside the transaction, got %q", *scope)
	}
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	pool := testPool(t)

	err := WithTransaction(context.Background(), pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "CREATE TEMPORARY TABLE tx_rollback_rows (id INT) ON COMMIT DROP"); err != nil {
			return err
		}
		return pgx.ErrNoRows
	})
	if err == nil {
		t.Fatal("expected the callback error to propagate")
	}
}
