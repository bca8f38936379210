// Package postgres provides the PostgreSQL implementation of the store
// interfaces, built on a pgx connection pool. It also owns pool construction,
// health checking, the embedded goose migrations, and the mapping of pgx
// errors onto the store error taxonomy.
package postgres
