package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{"empty list still has one page", 0, 4, 1},
		{"exact multiple", 8, 4, 2},
		{"partial last page", 9, 4, 3},
		{"single item", 1, 4, 1},
		{"size one", 5, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(items(tt.total), tt.size)
			require.Equal(t, tt.want, p.PageCount())
		})
	}
}

func TestPageWindows(t *testing.T) {
	// 9 products at page size 4 paginate as 4, 4, 1.
	p := New(items(9), 4)

	require.Equal(t, []int{0, 1, 2, 3}, p.Page())
	p.Next()
	require.Equal(t, []int{4, 5, 6, 7}, p.Page())
	p.Next()
	require.Equal(t, []int{8}, p.Page())
}

func TestNextWrapsAround(t *testing.T) {
	p := New(items(9), 4)

	for i := 0; i < p.PageCount(); i++ {
		p.Next()
	}
	require.Equal(t, 0, p.Index(), "next composed pageCount times returns to the original page")
}

func TestPrevFromZeroWraps(t *testing.T) {
	p := New(items(9), 4)

	p.Prev()
	require.Equal(t, p.PageCount()-1, p.Index())
}

func TestJumpToThenNextWraps(t *testing.T) {
	p := New(items(9), 4)

	p.JumpTo(2)
	require.Equal(t, 2, p.Index())
	p.Next()
	require.Equal(t, 0, p.Index())
}

func TestJumpToIgnoresOutOfRange(t *testing.T) {
	p := New(items(9), 4)

	p.JumpTo(1)
	p.JumpTo(7)
	require.Equal(t, 1, p.Index())
	p.JumpTo(-1)
	require.Equal(t, 1, p.Index())
}

func TestSetItemsResetsPage(t *testing.T) {
	p := New(items(9), 4)
	p.JumpTo(2)

	p.SetItems(items(3))
	require.Equal(t, 0, p.Index())
	require.Equal(t, 1, p.PageCount())
	require.Equal(t, []int{0, 1, 2}, p.Page())
}

func TestEmptyNavigationIsSafe(t *testing.T) {
	p := New[int](nil, 4)

	p.Next()
	p.Prev()
	require.Equal(t, 0, p.Index())
	require.Nil(t, p.Page())
}
