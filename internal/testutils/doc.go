// Package testutils provides helpers shared by the HTTP and storage tests:
// building domain posts, executing requests against a handler, and asserting
// on the JSON and error responses the API produces.
package testutils
