package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel_api/internal/domain"
)

type SeedRecord struct {
	Name      string
	Price     float64
	DoingTime string // domain.DoingTimeLayout
}

// SeedHotels is the fixed demo data set.
var SeedHotels = []SeedRecord{
	{Name: "Anataya Hotel", Price: 2500, DoingTime: "2023-05-17 17:02:54"},
	{Name: "Mirana Beach Hotel", Price: 7200, DoingTime: "2023-05-20 10:31:09"},
	{Name: "Huska Spirit Hotel", Price: 3750, DoingTime: "2023-05-20 10:31:09"},
}

type SeedService struct {
	store domain.SeedStore
	cache domain.Cache // optional
}

func NewSeedService(s domain.SeedStore, cache domain.Cache) *SeedService {
	return &SeedService{store: s, cache: cache}
}

// Reseed empties the table, resetting the identity, and inserts rs in order.
func (s *SeedService) Reseed(ctx context.Context, rs []SeedRecord) (int, error) {
	if err := s.store.Truncate(ctx); err != nil {
		return 0, fmt.Errorf("truncate hotels: %w", err)
	}

	n := 0
	for _, r := range rs {
		name, price := r.Name, r.Price
		h, err := s.store.Insert(ctx, domain.NewHotel{Name: &name, Price: &price, DoingTime: r.DoingTime})
		if err != nil {
			return n, fmt.Errorf("insert %q: %w", r.Name, err)
		}
		log.Debug().Int64("id", h.ID).Str("name", h.Name).Msg("seeded hotel")
		n++
	}

	// the running service may hold a stale snapshot
	invalidateAll(ctx, s.cache)
	return n, nil
}
