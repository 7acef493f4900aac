package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tienda-natural-api/internal/application/checkout"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

// Ensure TxRunner implements checkout.TxRunner.
var _ checkout.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCheckout inicia una transacción, ejecuta fn con los repos de dirección y
// orden atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	direccionRepo repository.DireccionRepository,
	ordenRepo repository.OrdenRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	direccionRepo := NewDireccionRepository(tx)
	ordenRepo := NewOrdenRepository(tx)

	if err := fn(direccionRepo, ordenRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
