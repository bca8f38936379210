//go:build integration

package testdb

import (
	"os"
)

// Environment variables consulted for the test database, in order.
const (
	EnvDatabaseURL      = "DATABASE_URL"
	EnvPostsTestDBURL   = "POSTS_TEST_DB_URL"
	EnvPostsDatabaseURL = "POSTS_DATABASE_URL"

	// EnvUseContainer opts in to starting a PostgreSQL container when no
	// database URL is configured.
	EnvUseContainer = "POSTS_TEST_CONTAINER"
)

// GetTestDatabaseURL returns the first non-empty database URL from the
// environment, or an empty string when none is set.
func GetTestDatabaseURL() string {
	for _, envVar := range []string{EnvDatabaseURL, EnvPostsTestDBURL, EnvPostsDatabaseURL} {
		if dbURL := os.Getenv(envVar); dbURL != "" {
			return dbURL
		}
	}
	return ""
}

// UseContainer reports whether tests may start their own database container.
func UseContainer() bool {
	return os.Getenv(EnvUseContainer) == "1"
}

// ShouldSkipDatabaseTest returns true if no database URL is configured and
// containers are not enabled, so database integration tests should be skipped.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == "" && !UseContainer()
}
