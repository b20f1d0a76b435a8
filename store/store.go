// Package store persists the roster document. Both implementations share the
// same contract: Load never fails the caller — absent or corrupt storage is
// healed by persisting a fresh default document — and Save replaces the whole
// document atomically, so a concurrent Load observes either the previous or
// the new version, never a partial write.
package store

import (
	"context"

	"github.com/m3rciful/shiftbot/roster"
)

// Store loads and saves the single roster document.
type Store interface {
	Load(ctx context.Context) (*roster.Document, error)
	Save(ctx context.Context, d *roster.Document) error
	Close() error
}
