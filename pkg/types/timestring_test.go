package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "hours and minutes", input: "09:30", want: "09:30:00"},
		{name: "with seconds", input: "17:45:15", want: "17:45:15"},
		{name: "midnight", input: "00:00", want: "00:00:00"},
		{name: "end of day", input: "24:00:00", want: "24:00:00"},
		{name: "past end of day", input: "24:00:01", wantErr: ErrTimeOutOfRange},
		{name: "bad minutes", input: "10:60", wantErr: ErrTimeOutOfRange},
		{name: "single digit hour", input: "9:00", wantErr: ErrInvalidTimeString},
		{name: "garbage", input: "noon", wantErr: ErrInvalidTimeString},
		{name: "empty", input: "", wantErr: ErrInvalidTimeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, MustTimeString("09:00").IsBefore(MustTimeString("09:00:01")))
	assert.True(t, MustTimeString("23:59").IsBefore(MustTimeString("24:00")))
	assert.False(t, MustTimeString("12:00").IsBefore(MustTimeString("12:00")))
	assert.False(t, MustTimeString("17:00").IsBefore(MustTimeString("09:00")))
}

func TestTimeString_On(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	start := MustTimeString("09:00").On(2025, time.January, 20, sydney)
	assert.Equal(t, time.Date(2025, time.January, 19, 22, 0, 0, 0, time.UTC), start.UTC())

	endOfDay := MustTimeString("24:00").On(2025, time.January, 20, time.UTC)
	assert.Equal(t, time.Date(2025, time.January, 21, 0, 0, 0, 0, time.UTC), endOfDay)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, "08:15:00", ts.String())

	require.NoError(t, ts.Scan("10:00:00.000000"))
	assert.Equal(t, "10:00:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 13, 5, 0, 0, time.UTC)))
	assert.Equal(t, "13:05:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "24:00:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "00:00:00", ts.String())

	assert.ErrorIs(t, ts.Scan(nil), ErrInvalidTimeString)
	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
}

func TestTimeString_JSON(t *testing.T) {
	data, err := MustTimeString("07:05").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"07:05:00"`, string(data))

	var ts TimeString
	require.NoError(t, ts.UnmarshalJSON([]byte(`"18:00"`)))
	assert.Equal(t, 18, ts.Hour())
	assert.Error(t, ts.UnmarshalJSON([]byte(`18`)))
}
