package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query string
		want  Pagination
	}{
		{"", Pagination{Limit: DefaultLimit, Page: 1}},
		{"page=3&limit=10", Pagination{Limit: 10, Page: 3, Offset: 20}},
		{"limit=1000", Pagination{Limit: MaxLimit, Page: 1}},
		{"limit=-1&page=0", Pagination{Limit: DefaultLimit, Page: 1}},
		{"limit=abc&page=x", Pagination{Limit: DefaultLimit, Page: 1}},
	}
	for _, tc := range cases {
		q, err := url.ParseQuery(tc.query)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ParsePagination(q), tc.query)
	}
}

func TestComputeMeta(t *testing.T) {
	p := Pagination{Limit: 10, Page: 2, Offset: 10}
	p.ComputeMeta(25)

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)

	p = Pagination{Limit: 10, Page: 3, Offset: 20}
	p.ComputeMeta(25)
	assert.False(t, p.HasNext)
}

func TestOptionalInt64(t *testing.T) {
	q := url.Values{"category_id": {"42"}, "bad": {"x"}, "neg": {"-3"}}

	v, err := OptionalInt64(q, "category_id")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(42), *v)

	v, err = OptionalInt64(q, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = OptionalInt64(q, "bad")
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = OptionalInt64(q, "neg")
	assert.ErrorIs(t, err, ErrInvalidParam)
}
