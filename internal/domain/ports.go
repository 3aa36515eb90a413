package domain

import "context"

type HotelRepository interface {
	// Write paths
	Insert(ctx context.Context, h NewHotel) (Hotel, error)

	// Read paths
	List(ctx context.Context) ([]Hotel, error)
	GetByID(ctx context.Context, id int64) ([]Hotel, error)
	// A nil date reaches storage as NULL and matches nothing.
	SearchByDate(ctx context.Context, date *string) ([]Hotel, error)
}

// SeedStore is what the one-shot seeder needs on top of inserts.
type SeedStore interface {
	Truncate(ctx context.Context) error
	Insert(ctx context.Context, h NewHotel) (Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
	// Incr atomically increments an integer key, creating it at 1.
	Incr(ctx context.Context, key string) (int64, error)
}
