package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"hostel-mgmt-be/internal/constant"
	"hostel-mgmt-be/internal/matching"
)

// SuggestionCache holds recently computed match suggestions per student.
// Scoring a full candidate pool is cheap but not free; students refresh the
// suggestions page often and the pool changes slowly.
type SuggestionCache struct {
	cache *cache.Cache
}

func NewSuggestionCache() *SuggestionCache {
	ttl := time.Duration(constant.MatchSuggestionCacheTTLMinutes) * time.Minute
	return &SuggestionCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *SuggestionCache) Save(studentId uuid.UUID, matches []matching.Match) {
	c.cache.Set(studentId.String(), matches, cache.DefaultExpiration)
}

func (c *SuggestionCache) Get(studentId uuid.UUID) ([]matching.Match, bool) {
	if x, found := c.cache.Get(studentId.String()); found {
		return x.([]matching.Match), true
	}
	return nil, false
}

// Invalidate drops a student's cached suggestions, called whenever the
// candidate pool visibly changes for them (group joined, room taken).
func (c *SuggestionCache) Invalidate(studentId uuid.UUID) {
	c.cache.Delete(studentId.String())
}

func (c *SuggestionCache) Flush() {
	c.cache.Flush()
}
