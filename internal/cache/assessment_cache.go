// Package cache holds the in-process assessment cache. It is always
// available and is treated as at least as fresh as the external store
// for any identifier it holds, which makes it the source of truth for
// the current process lifetime.
package cache

import (
	"sort"
	"sync"

	"asdscreen/internal/model"
)

// AssessmentCache is the in-memory mapping from assessment ID to record.
type AssessmentCache interface {
	Put(a *model.Assessment)
	Get(id string) (*model.Assessment, bool)
	List() []*model.Assessment
	Len() int
}

type assessmentCache struct {
	mu      sync.RWMutex
	records map[string]*model.Assessment
}

// NewAssessmentCache creates an empty assessment cache.
func NewAssessmentCache() AssessmentCache {
	return &assessmentCache{
		records: make(map[string]*model.Assessment),
	}
}

// Put stores a record under its ID. Records are write-once, so a repeat
// Put for the same ID only ever rewrites identical content.
func (c *assessmentCache) Put(a *model.Assessment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[a.ID] = a
}

func (c *assessmentCache) Get(id string) (*model.Assessment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.records[id]
	return a, ok
}

// List returns a snapshot of all cached records, newest first.
func (c *assessmentCache) List() []*model.Assessment {
	c.mu.RLock()
	out := make([]*model.Assessment, 0, len(c.records))
	for _, a := range c.records {
		out = append(out, a)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (c *assessmentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
