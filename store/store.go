// Package store owns the two submission collections. The intake side
// only appends, the admin side only reads; records are never mutated.
package store

import (
	"context"
	"errors"

	"github.com/vip25/site/model"
)

// ErrUnavailable is returned when the store was never successfully
// initialized, or an operation against it failed.
var ErrUnavailable = errors.New("store: database not available")

type Store interface {
	// Available reports whether the store can serve operations.
	// A store that failed to connect at startup stays unavailable for
	// the lifetime of the process.
	Available() bool

	InsertInquiry(ctx context.Context, inq model.ClientInquiry) error
	InsertApplication(ctx context.Context, app model.CareerApplication) error

	// List operations return records ordered by submission time,
	// most recent first.
	ListInquiries(ctx context.Context) ([]model.ClientInquiry, error)
	ListApplications(ctx context.Context) ([]model.CareerApplication, error)
}

// Unavailable returns a Store whose every operation fails with
// ErrUnavailable. It stands in for the database when the initial
// connection attempt fails, so callers degrade instead of crashing.
func Unavailable() Store {
	return unavailable{}
}

type unavailable struct{}

func (unavailable) Available() bool { return false }

func (unavailable) InsertInquiry(context.Context, model.ClientInquiry) error {
	return ErrUnavailable
}

func (unavailable) InsertApplication(context.Context, model.CareerApplication) error {
	return ErrUnavailable
}

func (unavailable) ListInquiries(context.Context) ([]model.ClientInquiry, error) {
	return nil, ErrUnavailable
}

func (unavailable) ListApplications(context.Context) ([]model.CareerApplication, error) {
	return nil, ErrUnavailable
}
