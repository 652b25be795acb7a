package catalog

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// describe flattens the numbered items for compact assertions.
func describe(pc *PageControl) []string {
	var out []string
	for _, item := range pc.Items {
		switch {
		case item.Ellipsis:
			out = append(out, "...")
		case item.Current:
			out = append(out, "["+strconv.Itoa(item.Page)+"]")
		default:
			out = append(out, strconv.Itoa(item.Page))
		}
	}
	return out
}

func TestPageWindow_NothingToPaginate(t *testing.T) {
	assert.Nil(t, PageWindow(1, 0))
	assert.Nil(t, PageWindow(1, 1))
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		total   int
		want    []string
		atFirst bool
		atLast  bool
	}{
		{name: "short list", page: 1, total: 3, want: []string{"[1]", "2", "3"}, atFirst: true},
		{name: "start of long list", page: 1, total: 10, want: []string{"[1]", "2", "3", "4", "5", "...", "10"}, atFirst: true},
		{name: "middle", page: 6, total: 12, want: []string{"1", "...", "4", "5", "[6]", "7", "8", "...", "12"}},
		{name: "near start has no leading ellipsis", page: 4, total: 10, want: []string{"1", "2", "3", "[4]", "5", "6", "...", "10"}},
		{name: "end", page: 10, total: 10, want: []string{"1", "...", "6", "7", "8", "9", "[10]"}, atLast: true},
		{name: "near end has no trailing ellipsis", page: 7, total: 10, want: []string{"1", "...", "5", "6", "[7]", "8", "9", "10"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pc := PageWindow(test.page, test.total)
			require.NotNil(t, pc)
			assert.Equal(t, test.want, describe(pc))
			assert.Equal(t, test.atFirst, pc.AtFirst)
			assert.Equal(t, test.atLast, pc.AtLast)
			assert.Equal(t, test.page-1, pc.PrevPage)
			assert.Equal(t, test.page+1, pc.NextPage)
		})
	}
}
