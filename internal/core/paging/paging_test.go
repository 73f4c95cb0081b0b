package paging

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	p, err := DefaultPolicy().Parse(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 10, p.Limit)
	assert.Empty(t, p.Expand)
}

func TestParse_ExplicitWindow(t *testing.T) {
	q := url.Values{"offset": {"20"}, "limit": {"5"}}

	p, err := DefaultPolicy().Parse(q)
	require.NoError(t, err)

	assert.Equal(t, 20, p.Offset)
	assert.Equal(t, 5, p.Limit)
}

func TestParse_LimitCappedSilently(t *testing.T) {
	q := url.Values{"limit": {"9999"}}

	p, err := DefaultPolicy().Parse(q)
	require.NoError(t, err)

	assert.Equal(t, 500, p.Limit)
}

func TestParse_InvalidOffset(t *testing.T) {
	for _, raw := range []string{"-1", "abc", "1.5"} {
		q := url.Values{"offset": {raw}}

		_, err := DefaultPolicy().Parse(q)
		require.Error(t, err, "offset=%s", raw)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestParse_InvalidLimit(t *testing.T) {
	for _, raw := range []string{"0", "-5", "ten"} {
		q := url.Values{"limit": {raw}}

		_, err := DefaultPolicy().Parse(q)
		require.Error(t, err, "limit=%s", raw)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestParse_ExpandRepeatable(t *testing.T) {
	q := url.Values{"expand": {"labors", "events"}}

	p, err := DefaultPolicy().Parse(q)
	require.NoError(t, err)

	assert.True(t, p.Expand.Has("labors"))
	assert.True(t, p.Expand.Has("events"))
	assert.False(t, p.Expand.Has("quests"))
}

func TestParse_ExpandCaseSensitive(t *testing.T) {
	q := url.Values{"expand": {"Labors"}}

	p, err := DefaultPolicy().Parse(q)
	require.NoError(t, err)

	assert.False(t, p.Expand.Has("labors"))
	assert.True(t, p.Expand.Has("Labors"))
}

func TestParse_UnknownExpandPassesThrough(t *testing.T) {
	q := url.Values{"expand": {"unicorns"}}

	p, err := DefaultPolicy().Parse(q)
	require.NoError(t, err)

	assert.True(t, p.Expand.Has("unicorns"))
}

func TestNewExpandSet(t *testing.T) {
	s := NewExpandSet("labors", "quests")

	assert.True(t, s.Has("labors"))
	assert.True(t, s.Has("quests"))
	assert.False(t, s.Has("events"))
}
