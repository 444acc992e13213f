// internal/ledger/ledger.go
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cardfelt/uno/internal/database"
)

// ErrInsufficientBalance indicates a debit larger than the player's balance.
var ErrInsufficientBalance = errors.New("insufficient balance for that wager")

// Ledger debits and credits a player's wagerable balance. The engine debits
// the wager when a match is created and credits 2x the wager on a player
// win; a loss touches nothing since the wager was forfeited at creation.
type Ledger interface {
	Debit(ctx context.Context, playerID uuid.UUID, amount int64) error
	Credit(ctx context.Context, playerID uuid.UUID, amount int64) error
}

// Postgres settles balances against the users table.
type Postgres struct{}

func NewPostgres() *Postgres {
	return &Postgres{}
}

// Debit removes amount from the player's balance inside a transaction,
// failing with ErrInsufficientBalance rather than going negative.
func (p *Postgres) Debit(ctx context.Context, playerID uuid.UUID, amount int64) error {
	q := `UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1`
	return pgx.BeginTxFunc(ctx, database.DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, q, amount, playerID)
		if err != nil {
			return fmt.Errorf("failed to debit %d from %s: %w", amount, playerID, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrInsufficientBalance
		}
		return nil
	})
}

// Credit adds amount to the player's balance.
func (p *Postgres) Credit(ctx context.Context, playerID uuid.UUID, amount int64) error {
	q := `UPDATE users SET balance = balance + $1 WHERE id = $2`
	return pgx.BeginTxFunc(ctx, database.DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, q, amount, playerID); err != nil {
			return fmt.Errorf("failed to credit %d to %s: %w", amount, playerID, err)
		}
		return nil
	})
}
