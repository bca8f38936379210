// Package store defines interfaces for data persistence operations and the
// two-valued infrastructure error taxonomy (ErrNotFound, ErrInternal) that
// every store implementation reduces its failures to.
package store
