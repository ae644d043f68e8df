// Package storage is the client's durable key/value store: a single SQLite
// table that plays the part of browser local storage. Values are opaque
// bytes; callers own their encoding.
//
// Open creates or upgrades the database with the embedded goose migrations
// and returns a *DB, which is both a Repository and a transaction starter,
// so callers can write several keys atomically:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    repo := storage.NewSQLiteRepository(tx)
//	    ...
//	})
package storage
