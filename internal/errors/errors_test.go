package errors

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "parse error", KindParse.String())
	assert.Equal(t, "schema validation failed", KindSchema.String())
	assert.Equal(t, "access failure", KindAccess.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestConstructors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := NotFound("src/data/resume.yaml")
		assert.Equal(t, KindNotFound, err.Kind)
		assert.Equal(t, "src/data/resume.yaml", err.Path)
		assert.False(t, err.Timestamp.IsZero())
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("schema carries every violation", func(t *testing.T) {
		err := Schema("testimonials.yaml", []string{
			"[0].rating: must be at most 5",
			"[1].text: must be a non-empty string",
		})
		assert.Equal(t, KindSchema, err.Kind)
		require.Len(t, err.Violations, 2)
		assert.Contains(t, err.Error(), "[0].rating: must be at most 5")
		assert.Contains(t, err.Error(), "[1].text: must be a non-empty string")
	})

	t.Run("access with nil cause", func(t *testing.T) {
		err := Access("locked.yaml", nil)
		assert.Equal(t, "access denied", err.Message)
	})
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(NotFound("x"), KindNotFound))
	assert.False(t, IsKind(NotFound("x"), KindParse))
	assert.False(t, IsKind(fmt.Errorf("plain error"), KindNotFound))
	assert.False(t, IsKind(nil, KindNotFound))
}

func TestCollector(t *testing.T) {
	collector := NewCollector()
	assert.False(t, collector.HasErrors())

	collector.Add(nil) // ignored
	assert.False(t, collector.HasErrors())

	collector.Add(NotFound("a.yaml"))
	collector.Add(Parse("b.yaml", "bad yaml"))
	collector.Add(Parse("a.yaml", "also bad"))

	assert.True(t, collector.HasErrors())
	assert.Len(t, collector.Errors(), 3)
	assert.Len(t, collector.ByPath("a.yaml"), 2)
	assert.Empty(t, collector.ByPath("c.yaml"))

	collector.Clear()
	assert.False(t, collector.HasErrors())
}

func TestCollectorConcurrent(t *testing.T) {
	collector := NewCollector()

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				collector.Add(Parse(fmt.Sprintf("file_%d_%d.yaml", id, i), "bad"))
			}
		}(g)
	}
	wg.Wait()

	assert.Len(t, collector.Errors(), 500)
}
