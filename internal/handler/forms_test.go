package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormBool(t *testing.T) {
	for _, in := range []string{"y", "on", "true", "1", "YES"} {
		var b formBool
		require.NoError(t, b.UnmarshalParam(in), in)
		assert.True(t, bool(b), in)
	}
	for _, in := range []string{"", "n", "off", "false", "0"} {
		b := formBool(true)
		require.NoError(t, b.UnmarshalParam(in), in)
		assert.False(t, bool(b), in)
	}
	var b formBool
	assert.Error(t, b.UnmarshalParam("maybe"))

	require.NoError(t, json.Unmarshal([]byte(`true`), &b))
	assert.True(t, bool(b))
	require.NoError(t, json.Unmarshal([]byte(`"off"`), &b))
	assert.False(t, bool(b))
	assert.Error(t, json.Unmarshal([]byte(`3`), &b))
}

func TestFormGenres(t *testing.T) {
	var g formGenres
	require.NoError(t, g.UnmarshalParams([]string{"Jazz,Reggae", " Folk ", ""}))
	assert.Equal(t, formGenres{"Jazz", "Reggae", "Folk"}, g)

	require.NoError(t, g.UnmarshalParam("Blues"))
	assert.Equal(t, formGenres{"Blues"}, g)

	require.NoError(t, json.Unmarshal([]byte(`"Jazz, Reggae"`), &g))
	assert.Equal(t, formGenres{"Jazz", "Reggae"}, g)

	require.NoError(t, json.Unmarshal([]byte(`["Rock n Roll", "Swing,Jazz"]`), &g))
	assert.Equal(t, formGenres{"Rock n Roll", "Swing", "Jazz"}, g)

	require.NoError(t, json.Unmarshal([]byte(`null`), &g))
	assert.Nil(t, g)

	assert.Error(t, json.Unmarshal([]byte(`{"genre":"Jazz"}`), &g))
}

func TestParseStart(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2035-04-01T20:00:00Z",
		"2035-04-01T22:00:00+02:00",
		"2035-04-01 20:00:00",
		"2035-04-01T20:00",
	} {
		got, err := parseStart(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := parseStart("next tuesday")
	assert.Error(t, err)
}

func TestFormTimeJSON(t *testing.T) {
	var ft formTime
	require.NoError(t, json.Unmarshal([]byte(`"2035-04-01 20:00:00"`), &ft))
	assert.True(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC).Equal(time.Time(ft)))

	out, err := json.Marshal(ft)
	require.NoError(t, err)
	assert.Equal(t, `"2035-04-01T20:00:00Z"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`12`), &ft))
}
