package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"asdscreen/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string, ts time.Time) *model.Assessment {
	return &model.Assessment{ID: id, Timestamp: ts, RiskLevel: "Low"}
}

func TestPutGetRoundTrip(t *testing.T) {
	c := NewAssessmentCache()
	a := record("abc", time.Now().UTC())

	c.Put(a)

	got, ok := c.Get("abc")
	require.True(t, ok)
	assert.Equal(t, a, got)
}

func TestGetMiss(t *testing.T) {
	c := NewAssessmentCache()
	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestListNewestFirst(t *testing.T) {
	c := NewAssessmentCache()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Put(record("old", base))
	c.Put(record("new", base.Add(2*time.Hour)))
	c.Put(record("mid", base.Add(time.Hour)))

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "mid", list[1].ID)
	assert.Equal(t, "old", list[2].ID)
}

func TestListIdempotent(t *testing.T) {
	c := NewAssessmentCache()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		c.Put(record(fmt.Sprintf("id-%d", i), base.Add(time.Duration(i)*time.Minute)))
	}

	assert.Equal(t, c.List(), c.List())
}

func TestConcurrentPuts(t *testing.T) {
	c := NewAssessmentCache()
	now := time.Now().UTC()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Put(record(fmt.Sprintf("id-%d", i), now))
			c.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
