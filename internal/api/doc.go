// Package api handles incoming HTTP requests for posts: request extraction,
// validation and response formatting. It acts as an adapter between external
// clients and the post store, translating HTTP concerns to store calls and
// store failures back to HTTP responses.
package api
