//go:build unit

package rate_test

import (
	"testing"
	"time"

	"studio-search/internal/domain/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		cases := []struct {
			in   string
			want rate.Minute
		}{
			{in: "00:00", want: 0},
			{in: "09:30", want: 570},
			{in: "18:00", want: 1080},
			{in: "24:00", want: 1440},
			{in: "25:30", want: 1530},
			{in: " 7:05 ", want: 425},
		}
		for _, tc := range cases {
			t.Run(tc.in, func(t *testing.T) {
				got, err := rate.ParseClock(tc.in)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	})

	t.Run("空文字はErrEmptyClock", func(t *testing.T) {
		_, err := rate.ParseClock("  ")
		assert.ErrorIs(t, err, rate.ErrEmptyClock)
	})

	t.Run("不正な書式はErrMalformedClock", func(t *testing.T) {
		for _, in := range []string{"18", "18:xx", "ab:00", "18-00"} {
			_, err := rate.ParseClock(in)
			assert.ErrorIs(t, err, rate.ErrMalformedClock, in)
		}
	})

	t.Run("String は HH:MM に戻す", func(t *testing.T) {
		assert.Equal(t, "18:00", rate.Minute(1080).String())
		assert.Equal(t, "24:00", rate.Minute(1440).String())
		assert.Equal(t, "07:05", rate.Minute(425).String())
	})
}

func TestDayOfWeek(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)

	cases := []struct {
		name string
		date string
		want rate.Weekday
	}{
		{name: "月曜", date: "2025-01-06", want: rate.Monday},
		{name: "土曜", date: "2025-01-11", want: rate.Saturday},
		{name: "日曜", date: "2025-01-12", want: rate.Sunday},
		{name: "空文字", date: "", want: rate.NoWeekday},
		{name: "解析不能", date: "2025/01/06", want: rate.NoWeekday},
		{name: "存在しない日付", date: "2025-02-30", want: rate.NoWeekday},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rate.DayOfWeek(tc.date, tokyo))
		})
	}

	t.Run("週末判定", func(t *testing.T) {
		assert.True(t, rate.Saturday.IsWeekend())
		assert.True(t, rate.Sunday.IsWeekend())
		assert.False(t, rate.Friday.IsWeekend())
		assert.False(t, rate.NoWeekday.IsWeekend())
	})
}
