package dedup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreSeenMark(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	assert.False(t, s.Seen(ctx, "2024011500001"))
	assert.Equal(t, 0, s.Count(ctx))

	s.Mark(ctx, "2024011500001")
	assert.True(t, s.Seen(ctx, "2024011500001"))
	assert.False(t, s.Seen(ctx, "2024011500002"))
	assert.Equal(t, 1, s.Count(ctx))

	// Marking twice stays one entry.
	s.Mark(ctx, "2024011500001")
	assert.Equal(t, 1, s.Count(ctx))
}
