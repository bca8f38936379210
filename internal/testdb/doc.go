//go:build integration

// Package testdb provides utilities specifically for database testing.
//
// Integration tests find their database through environment variables, get
// a migrated connection pool that is closed on test cleanup, and can isolate
// their writes in a transaction that is always rolled back:
//
//	pool := testdb.SetupPool(t)
//	testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
//	    s := postgres.NewPostgresPostStore(tx, nil)
//	    // ...
//	})
package testdb
