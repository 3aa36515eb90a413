package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_api/internal/app"
	"hotel_api/internal/domain"
)

type fakeSeedStore struct {
	fakeRepo
	truncated int
	truncErr  error
}

func (f *fakeSeedStore) Truncate(ctx context.Context) error {
	if f.truncErr != nil {
		return f.truncErr
	}
	f.truncated++
	f.rows = nil
	return nil
}

func TestReseed_ReplacesRows(t *testing.T) {
	store := &fakeSeedStore{fakeRepo: fakeRepo{rows: []domain.Hotel{{ID: 1, Name: "old"}}}}
	cache := &fakeCache{store: map[string][]domain.Hotel{"hotels:all:0": {{ID: 1, Name: "old"}}}}
	s := app.NewSeedService(store, cache)

	n, err := s.Reseed(context.Background(), app.SeedHotels)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if n != 3 || store.truncated != 1 || len(store.rows) != 3 {
		t.Fatalf("n=%d truncated=%d rows=%d", n, store.truncated, len(store.rows))
	}
	if store.rows[0].ID != 1 || store.rows[0].Name != "Anataya Hotel" {
		t.Fatalf("identity not restarted: %+v", store.rows[0])
	}
	if store.inserted[1].DoingTime != "2023-05-20 10:31:09" {
		t.Fatalf("explicit doingtime not kept: %q", store.inserted[1].DoingTime)
	}
	if cache.incrs != 1 || cache.dels != 1 {
		t.Fatalf("expected cache invalidation, incrs=%d dels=%d", cache.incrs, cache.dels)
	}
	if _, stale := cache.store["hotels:all:0"]; stale {
		t.Fatalf("previous snapshot still cached")
	}

	// a service reading through the same cache sees the new rows
	all, err := app.NewRecordService(&store.fakeRepo, cache, time.Minute).List(context.Background(), "")
	if err != nil || len(all) != 3 {
		t.Fatalf("list after reseed: %v %+v", err, all)
	}

	d := domain.Summarize(store.rows)
	if *d.Price.High != "Mirana Beach Hotel" || *d.Price.Low != "Anataya Hotel" || d.AllHotel != 3 {
		t.Fatalf("unexpected dashboard over seed: %+v", d)
	}
}

func TestReseed_TruncateFailureStops(t *testing.T) {
	boom := errors.New("relation \"hotels\" does not exist")
	store := &fakeSeedStore{truncErr: boom}
	n, err := app.NewSeedService(store, nil).Reseed(context.Background(), app.SeedHotels)
	if !errors.Is(err, boom) || n != 0 || len(store.inserted) != 0 {
		t.Fatalf("n=%d err=%v inserted=%d", n, err, len(store.inserted))
	}
}

func TestReseed_CacheFailureIsNotFatal(t *testing.T) {
	store := &fakeSeedStore{}
	cache := &fakeCache{err: errors.New("redis: connection refused")}
	n, err := app.NewSeedService(store, cache).Reseed(context.Background(), app.SeedHotels)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}
