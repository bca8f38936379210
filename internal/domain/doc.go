// Package domain contains the core business entities and errors of the
// service: the Post entity and the PostError taxonomy handed to the HTTP
// layer. It has no knowledge of storage or transport.
package domain
