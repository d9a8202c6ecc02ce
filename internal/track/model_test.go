package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreList_Scan(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want GenreList
	}{
		{"plain elements", "{Rock,Pop}", GenreList{"Rock", "Pop"}},
		{"quoted elements", `{"Hip Hop","Rock"}`, GenreList{"Hip Hop", "Rock"}},
		{"escaped quote", `{"Drum \"n\" Bass"}`, GenreList{`Drum "n" Bass`}},
		{"escaped backslash", `{"a\\b"}`, GenreList{`a\b`}},
		{"empty array", "{}", GenreList{}},
		{"bytes input", []byte("{Jazz}"), GenreList{"Jazz"}},
		{"null column", nil, GenreList{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g GenreList
			require.NoError(t, g.Scan(tc.in))
			assert.Equal(t, tc.want, g)
		})
	}
}

func TestGenreList_Scan_Malformed(t *testing.T) {
	var g GenreList
	assert.Error(t, g.Scan("Rock,Pop"))
	assert.Error(t, g.Scan(42))
}

func TestGenreList_Value(t *testing.T) {
	v, err := GenreList{"Hip Hop", `Drum "n" Bass`}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"Hip Hop","Drum \"n\" Bass"}`, v)

	v, err = GenreList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestGenreList_RoundTrip(t *testing.T) {
	in := GenreList{"Rock", "Hip Hop", `we"ird\genre`}
	v, err := in.Value()
	require.NoError(t, err)

	var out GenreList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}
