package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPool_Shape(t *testing.T) {
	assert.Equal(t, 27, DefaultPool.Len())
	assert.Len(t, DefaultPool.ByRating(5), 14)
	assert.Len(t, DefaultPool.ByRating(4), 8)
	assert.Len(t, DefaultPool.ByRating(3), 3)
	assert.Len(t, DefaultPool.ByRating(2), 1)
	assert.Len(t, DefaultPool.ByRating(1), 1)
	assert.Empty(t, DefaultPool.ByRating(6))
}

func TestDefaultPool_TitlesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range DefaultPool.All() {
		assert.False(t, seen[tmpl.Title], "duplicate title %q", tmpl.Title)
		seen[tmpl.Title] = true
		assert.NotEmpty(t, tmpl.Comment)
	}
}

func TestNewPool_CopiesInput(t *testing.T) {
	src := []Template{{5, "A", "a"}}
	p := NewPool(src)

	src[0].Title = "changed"

	assert.Equal(t, "A", p.All()[0].Title)
	assert.Equal(t, "A", p.ByRating(5)[0].Title)
}

func TestPool_ZeroValue(t *testing.T) {
	var p Pool

	assert.Zero(t, p.Len())
	assert.Empty(t, p.ByRating(5))
}
