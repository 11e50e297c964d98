package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(1, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 5, TotalPages(23, 5))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 5))
	assert.Equal(t, 5, Offset(2, 5))
	assert.Equal(t, 10, Offset(3, 5))
	// Below 1 clamps to the first page.
	assert.Equal(t, 0, Offset(0, 5))
	assert.Equal(t, 0, Offset(-3, 5))
	// Past the end: offset is computed normally, the slice comes back empty.
	assert.Equal(t, 25, Offset(6, 5))
}

func TestPageWindowNothingToPaginate(t *testing.T) {
	assert.Empty(t, NewPageWindow(1, 0).Pages)
	assert.Empty(t, NewPageWindow(1, 1).Pages)
}

func TestPageWindowSmallTotal(t *testing.T) {
	w := NewPageWindow(2, 3)
	assert.Equal(t, []int{1, 2, 3}, w.Pages)
	assert.False(t, w.ShowFirst)
	assert.False(t, w.ShowLast)
	assert.True(t, w.HasPrev)
	assert.True(t, w.HasNext)
}

func TestPageWindowTruncated(t *testing.T) {
	w := NewPageWindow(10, 20)
	assert.Equal(t, []int{8, 9, 10, 11, 12}, w.Pages)
	assert.True(t, w.ShowFirst)
	assert.True(t, w.LeadingGap)
	assert.True(t, w.ShowLast)
	assert.True(t, w.TrailingGap)
}

func TestPageWindowNearEdges(t *testing.T) {
	start := NewPageWindow(1, 20)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, start.Pages)
	assert.False(t, start.ShowFirst)
	assert.True(t, start.ShowLast)
	assert.False(t, start.HasPrev)

	end := NewPageWindow(20, 20)
	assert.Equal(t, []int{16, 17, 18, 19, 20}, end.Pages)
	assert.True(t, end.ShowFirst)
	assert.False(t, end.ShowLast)
	assert.False(t, end.HasNext)
}

func TestPageWindowClampsOutOfRange(t *testing.T) {
	w := NewPageWindow(6, 5)
	assert.Equal(t, 5, w.Current)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)

	w = NewPageWindow(-1, 5)
	assert.Equal(t, 1, w.Current)
}
