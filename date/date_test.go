package date

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	d, err := Parse("2016-04-27")
	require.NoError(t, err)
	assert.Equal(t, 2016, d.Year())
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 27, d.Day())
	assert.Equal(t, "2016-04-27", d.String())
}

func TestParse_RejectsLooseFormats(t *testing.T) {
	for _, raw := range []string{"2016-4-27", "27.04.2016", "2016/04/27", "2016-04-27T00:00:00Z", ""} {
		_, err := Parse(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestAdd_RollsOverMonths(t *testing.T) {
	d := MustParse("2015-12-31")
	assert.Equal(t, "2016-01-01", d.Add(1).String())
	assert.Equal(t, "2015-12-30", d.Add(-1).String())
}

func TestAdd_LeapDay(t *testing.T) {
	assert.Equal(t, "2016-02-29", MustParse("2016-02-28").Add(1).String())
	assert.Equal(t, "2015-03-01", MustParse("2015-02-28").Add(1).String())
}

func TestOrdering(t *testing.T) {
	a := MustParse("2016-04-27")
	b := MustParse("2016-05-02")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, b.Compare(a))
}

func TestJSON(t *testing.T) {
	d := MustParse("2013-07-02")
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2013-07-02"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &back))
}

func TestIsZero(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.False(t, MustParse("2016-01-01").IsZero())
}
