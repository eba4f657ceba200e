// Package kvstore is the persisted key-value store backing the client session.
package kvstore

import (
	"context"

	"github.com/dmitrijs2005/reservas/internal/dbx"
)

// Repository stores flat string values under string keys.
// Get reports ok=false for a missing key; that is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX = dbx.DBTX
