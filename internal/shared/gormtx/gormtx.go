package gormtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a gorm handle bound to the supplied sql transaction. Services
// own the BeginTx/Commit/Rollback lifecycle; repositories call Conn so every
// statement issued through them rides the same transaction. With a nil tx the
// base pool is used.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}

	g := db.Session(&gorm.Session{NewDB: true, Context: ctx})
	g.Statement.ConnPool = tx
	return g
}
