//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) reservation.TimeOfDay {
	t.Helper()
	tod, err := reservation.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func slot(t *testing.T, start, end string) reservation.TimeSlot {
	t.Helper()
	return reservation.NewTimeSlot(mustTime(t, start), mustTime(t, end))
}

func TestParseDate(t *testing.T) {
	t.Run("正規化された日付", func(t *testing.T) {
		d, err := reservation.ParseDate(" 2024-03-25 ")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-25", d.String())
		assert.False(t, d.IsZero())
	})

	for _, in := range []string{"", "25/03/2024", "2024-3-25", "2024-03-25T10:00"} {
		t.Run("書式不正NG: "+in, func(t *testing.T) {
			_, err := reservation.ParseDate(in)
			require.ErrorIs(t, err, reservation.ErrInvalidDate)
		})
	}

	for _, in := range []string{"2024-13-01", "2024-02-30", "2023-02-29"} {
		t.Run("存在しない日付NG: "+in, func(t *testing.T) {
			_, err := reservation.ParseDate(in)
			require.ErrorIs(t, err, reservation.ErrNonexistentDate)
			assert.Equal(t, "invalid calendar date", err.Error())
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:00", want: "09:00"},
		{in: "23:59", want: "23:59"},
		{in: "00:00", want: "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, mustTime(t, tt.in).String())
		})
	}

	for _, in := range []string{"", "24:00", "9h", "09:60"} {
		t.Run("不正な時刻NG: "+in, func(t *testing.T) {
			_, err := reservation.ParseTimeOfDay(in)
			require.ErrorIs(t, err, reservation.ErrInvalidTimeOfDay)
		})
	}

	t.Run("NewTimeOfDayの範囲外NG", func(t *testing.T) {
		_, err := reservation.NewTimeOfDay(24, 0)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeOfDay)
	})
}

func TestTimeSlot(t *testing.T) {
	t.Run("長さと順序", func(t *testing.T) {
		s := slot(t, "09:00", "11:30")
		assert.True(t, s.Ordered())
		assert.Equal(t, 150*time.Minute, s.Duration())

		assert.False(t, slot(t, "11:00", "09:00").Ordered())
		assert.False(t, slot(t, "10:00", "10:00").Ordered())
	})

	t.Run("半開区間の重なり判定", func(t *testing.T) {
		base := slot(t, "09:00", "11:00")
		tests := []struct {
			name  string
			other reservation.TimeSlot
			want  bool
		}{
			{name: "同一", other: slot(t, "09:00", "11:00"), want: true},
			{name: "内包", other: slot(t, "09:30", "10:30"), want: true},
			{name: "前半と重なる", other: slot(t, "08:00", "09:30"), want: true},
			{name: "後半と重なる", other: slot(t, "10:59", "12:00"), want: true},
			{name: "終了と開始が接する", other: slot(t, "11:00", "12:00"), want: false},
			{name: "開始と終了が接する", other: slot(t, "08:00", "09:00"), want: false},
			{name: "離れている", other: slot(t, "14:00", "15:00"), want: false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, base.Overlaps(tt.other))
				assert.Equal(t, tt.want, tt.other.Overlaps(base))
			})
		}
	})

	t.Run("Coversは終了時刻を含まない", func(t *testing.T) {
		s := slot(t, "09:00", "11:00")
		assert.True(t, s.Covers(mustTime(t, "09:00")))
		assert.True(t, s.Covers(mustTime(t, "10:00")))
		assert.False(t, s.Covers(mustTime(t, "11:00")))
		assert.False(t, s.Covers(mustTime(t, "08:00")))
	})
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Point hebdo", reservation.NewDescription("  Point hebdo ").String())
	assert.True(t, reservation.NewDescription("   ").IsEmpty())
}
