// Package store implements the in-memory entity store backing the platform.
// All collections live behind a single mutex so that compound mutations, in
// particular the aggregate updates (campaign currentAmount on donation insert,
// category campaignCount on campaign insert), are atomic with respect to
// concurrent writers.
package store

import (
	"sync"

	"github.com/givehope/givehope/internal/app/models"
)

// Store is the process-wide entity store. Construct one at startup and inject
// it; tests build isolated instances with New.
type Store struct {
	mu sync.RWMutex

	users      map[int64]models.User
	campaigns  map[int64]models.Campaign
	donations  map[int64]models.Donation
	categories map[int64]models.Category

	userIDCounter     int64
	campaignIDCounter int64
	donationIDCounter int64
	categoryIDCounter int64
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:      make(map[int64]models.User),
		campaigns:  make(map[int64]models.Campaign),
		donations:  make(map[int64]models.Donation),
		categories: make(map[int64]models.Category),
	}
}
