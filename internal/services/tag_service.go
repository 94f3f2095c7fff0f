package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// defaultTags is served when the offers feed cannot be reached: the
// search UI must always have something to show.
var defaultTags = []string{
	"design", "react", "typescript", "figma", "ui-kit",
	"formation", "marketing", "seo", "consultation", "développement",
	"apple", "samsung", "neuf", "occasion", "garantie", "livraison",
}

// TagService maintains a time-bound cache of popularity-ranked tags,
// recomputed by scanning every offer's tag list. The cache is shared
// process-wide, so unlike the single-threaded original it is guarded
// by a mutex; refreshes remain idempotent either way.
type TagService struct {
	offers OffersClient
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	tags      []string
	fetchedAt time.Time
}

func NewTagService(offers OffersClient, ttl time.Duration) *TagService {
	return &TagService{
		offers: offers,
		ttl:    ttl,
		now:    time.Now,
	}
}

// GetPopularTags returns up to limit tags ordered by descending
// frequency across the offers feed. Within the TTL the cached ranking
// is reused; forceRefresh bypasses the TTL. A failed refresh falls
// back to the default vocabulary without caching it.
func (s *TagService) GetPopularTags(ctx context.Context, limit int, forceRefresh bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if forceRefresh || s.tags == nil || s.now().Sub(s.fetchedAt) > s.ttl {
		if err := s.refreshLocked(ctx); err != nil {
			logrus.WithError(err).Warn("Tag refresh failed, serving default vocabulary")
			return top(defaultTags, limit)
		}
	}
	return top(s.tags, limit)
}

// Invalidate drops the cached ranking so the next read refetches. It
// is exposed for callers that mutate the tag distribution, such as
// listing creation.
func (s *TagService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = nil
	s.fetchedAt = time.Time{}
}

// StartAutoRefresh refreshes the cache on a fixed cadence until the
// context is cancelled. Failures are logged and retried on the next
// tick.
func (s *TagService) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				if err := s.refreshLocked(ctx); err != nil {
					logrus.WithError(err).Debug("Scheduled tag refresh failed")
				}
				s.mu.Unlock()
			}
		}
	}()
}

func (s *TagService) refreshLocked(ctx context.Context) error {
	offers, err := s.offers.ListOffers(ctx)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, offer := range offers {
		for _, tag := range offer.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			counts[tag]++
		}
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.SliceStable(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	s.tags = tags
	s.fetchedAt = s.now()
	return nil
}

func top(tags []string, limit int) []string {
	if limit <= 0 || limit > len(tags) {
		limit = len(tags)
	}
	result := make([]string, limit)
	copy(result, tags[:limit])
	return result
}
