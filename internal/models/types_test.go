package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValueScan(t *testing.T) {
	v, err := StringList{"08:00-10:00", "10:00-12:00"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["08:00-10:00","10:00-12:00"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var l StringList
	require.NoError(t, l.Scan(`["a","b"]`))
	assert.Equal(t, StringList{"a", "b"}, l)

	require.NoError(t, l.Scan([]byte(`["c"]`)))
	assert.Equal(t, StringList{"c"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)

	assert.Error(t, l.Scan(42))
}

func TestStringListContainsWithout(t *testing.T) {
	l := StringList{"a", "b", "c"}

	assert.True(t, l.Contains("b"))
	assert.False(t, l.Contains("z"))

	out := l.Without("b")
	assert.Equal(t, StringList{"a", "c"}, out)
	assert.Equal(t, StringList{"a", "b", "c"}, l, "Without must not mutate the receiver")

	assert.Equal(t, StringList{"a", "b", "c"}, l.Without("z"))
}
