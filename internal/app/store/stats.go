package store

// Stats holds the platform-wide aggregate numbers.
type Stats struct {
	TotalProjects int64   `json:"totalProjects"`
	TotalDonors   int64   `json:"totalDonors"`
	TotalDonated  float64 `json:"totalDonated"`
}

// GetStats computes the aggregates freshly from current state: campaign
// count, distinct donor count and total donated. A full scan is cheap at the
// scale this store serves; a durable backend should keep these incrementally.
func (s *Store) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donors := make(map[int64]struct{}, len(s.donations))
	var donated float64
	for _, donation := range s.donations {
		donors[donation.DonorID] = struct{}{}
		donated += donation.Amount
	}

	return Stats{
		TotalProjects: int64(len(s.campaigns)),
		TotalDonors:   int64(len(donors)),
		TotalDonated:  donated,
	}
}
