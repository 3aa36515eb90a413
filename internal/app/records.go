package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_api/internal/domain"
)

// The unfiltered row set is cached under allHotelsKey:<generation>; List and
// Dashboard both read it. Every write bumps allHotelsGenKey, so a snapshot
// read before a write lands under a key no later reader looks at.
const (
	allHotelsKey    = "hotels:all"
	allHotelsGenKey = "hotels:all:gen"
)

func snapshotKey(gen int64) string { return fmt.Sprintf("%s:%d", allHotelsKey, gen) }

// invalidateAll moves readers to a fresh generation and drops the previous
// snapshot. Failures are logged; the write they follow has already committed.
func invalidateAll(ctx context.Context, c domain.Cache) {
	if c == nil {
		return
	}
	gen, err := c.Incr(ctx, allHotelsGenKey)
	if err != nil {
		log.Warn().Err(err).Str("key", allHotelsGenKey).Msg("cache generation bump failed; list may be stale until ttl")
		return
	}
	if err := c.Del(ctx, snapshotKey(gen-1)); err != nil {
		log.Warn().Err(err).Str("key", snapshotKey(gen-1)).Msg("cache evict failed")
	}
}

type RecordService struct {
	repo     domain.HotelRepository
	cache    domain.Cache // optional
	cacheTTL time.Duration
	now      func() time.Time
}

func NewRecordService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *RecordService {
	return &RecordService{repo: r, cache: c, cacheTTL: ttl, now: time.Now}
}

// WithClock overrides the time source used for doingtime on create.
func (s *RecordService) WithClock(now func() time.Time) *RecordService {
	s.now = now
	return s
}

// Create inserts one record stamped with the current wall-clock time and
// returns it as a single-element list.
func (s *RecordService) Create(ctx context.Context, name *string, price *float64) ([]domain.Hotel, error) {
	h, err := s.repo.Insert(ctx, domain.NewHotel{
		Name:      name,
		Price:     price,
		DoingTime: s.now().Format(domain.DoingTimeLayout),
	})
	if err != nil {
		return nil, err
	}
	invalidateAll(ctx, s.cache)
	return []domain.Hotel{h}, nil
}

// List returns every record when rawID is empty, otherwise the rows matching
// the parsed id. A non-integer id fails before storage is touched.
func (s *RecordService) List(ctx context.Context, rawID string) ([]domain.Hotel, error) {
	if rawID == "" {
		return s.listAll(ctx)
	}
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *RecordService) SearchByDate(ctx context.Context, date *string) ([]domain.Hotel, error) {
	return s.repo.SearchByDate(ctx, date)
}

func (s *RecordService) Dashboard(ctx context.Context) (domain.DashboardView, error) {
	hs, err := s.listAll(ctx)
	if err != nil {
		return domain.DashboardView{}, err
	}
	return domain.DashboardView{Data: hs, Dashboard: domain.Summarize(hs)}, nil
}

func (s *RecordService) listAll(ctx context.Context) ([]domain.Hotel, error) {
	if s.cache == nil {
		return s.repo.List(ctx)
	}

	// generation is read before the rows so a concurrent write can only
	// make this snapshot unreachable, never current
	var gen int64
	if _, err := s.cache.Get(ctx, allHotelsGenKey, &gen); err != nil {
		log.Warn().Err(err).Msg("cache generation read failed; bypassing cache")
		return s.repo.List(ctx)
	}
	key := snapshotKey(gen)

	var out []domain.Hotel
	if ok, err := s.cache.Get(ctx, key, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	} else if ok && out != nil {
		return out, nil
	}

	hs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, hs, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache fill failed")
	}
	return hs, nil
}

// ParseID accepts a whole base-10 integer only.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
