//go:build unit

package rate_test

import (
	"testing"

	"studio-search/internal/domain/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDays = []rate.Weekday{
	rate.Sunday, rate.Monday, rate.Tuesday, rate.Wednesday, rate.Thursday, rate.Friday, rate.Saturday,
}

func TestDayScope(t *testing.T) {
	t.Run("毎日は全曜日と日付不明にマッチ", func(t *testing.T) {
		scope := rate.ParseDayScope("毎日")
		for _, d := range allDays {
			assert.True(t, scope.Matches(d), d)
		}
		assert.True(t, scope.Matches(rate.NoWeekday))
	})

	t.Run("平日は月〜金のみ", func(t *testing.T) {
		scope := rate.ParseDayScope("平日")
		for _, d := range allDays {
			assert.Equal(t, !d.IsWeekend(), scope.Matches(d), d)
		}
		assert.True(t, scope.Matches(rate.NoWeekday), "日付未指定は平日扱い")
	})

	t.Run("土日祝は土日のみ", func(t *testing.T) {
		scope := rate.ParseDayScope("土日祝")
		for _, d := range allDays {
			assert.Equal(t, d.IsWeekend(), scope.Matches(d), d)
		}
		assert.False(t, scope.Matches(rate.NoWeekday))
	})

	t.Run("明示リスト", func(t *testing.T) {
		scope := rate.ParseDayScope("月曜, 水曜,金曜")
		assert.True(t, scope.Matches(rate.Monday))
		assert.True(t, scope.Matches(rate.Wednesday))
		assert.True(t, scope.Matches(rate.Friday))
		assert.False(t, scope.Matches(rate.Tuesday))
		assert.False(t, scope.Matches(rate.NoWeekday))
	})

	t.Run("明示リストとメタスコープの併用", func(t *testing.T) {
		scope := rate.ParseDayScope("金曜,土日祝")
		assert.True(t, scope.Matches(rate.Friday))
		assert.True(t, scope.Matches(rate.Saturday))
		assert.False(t, scope.Matches(rate.Thursday))
	})

	t.Run("英語エイリアス", func(t *testing.T) {
		assert.True(t, rate.ParseDayScope("every day").Matches(rate.Sunday))
		assert.True(t, rate.ParseDayScope("weekdays").Matches(rate.Tuesday))
		assert.False(t, rate.ParseDayScope("weekdays").Matches(rate.Sunday))
		assert.True(t, rate.ParseDayScope("weekend/holiday").Matches(rate.Saturday))
	})

	t.Run("空のスコープ", func(t *testing.T) {
		assert.True(t, rate.ParseDayScope(" , ").IsEmpty())
	})
}

func TestNewRule(t *testing.T) {
	t.Run("時間貸しルール", func(t *testing.T) {
		r, err := rate.NewRule("通常", "平日", "10:00", "18:00", 2000)
		require.NoError(t, err)
		assert.False(t, r.IsNightPack())
		assert.Equal(t, rate.Minute(600), r.Start())
		assert.Equal(t, rate.Minute(1080), r.End())
		assert.Equal(t, "平日-10:00-18:00-2000", r.Key())
	})

	t.Run("深夜パックは時刻が空でも作成できる", func(t *testing.T) {
		r, err := rate.NewRule("深夜パック", "毎日", "", "", 8000)
		require.NoError(t, err)
		assert.True(t, r.IsNightPack())
		assert.Equal(t, int64(8000), r.Price())
	})

	t.Run("検証エラー", func(t *testing.T) {
		cases := []struct {
			name  string
			days  string
			start string
			end   string
			price int64
			errIs error
		}{
			{name: "曜日が空", days: "", start: "10:00", end: "18:00", price: 1000, errIs: rate.ErrEmptyDayScope},
			{name: "負の料金", days: "毎日", start: "10:00", end: "18:00", price: -1, errIs: rate.ErrNegativePrice},
			{name: "開始時刻が空", days: "毎日", start: "", end: "18:00", price: 1000, errIs: rate.ErrInvalidWindow},
			{name: "終了時刻が不正", days: "毎日", start: "10:00", end: "18時", price: 1000, errIs: rate.ErrMalformedClock},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := rate.NewRule("通常", tc.days, tc.start, tc.end, tc.price)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestRuleMatches(t *testing.T) {
	hourly, err := rate.NewRule("通常", "平日", "10:00", "18:00", 2000)
	require.NoError(t, err)

	t.Run("半開区間 [start, end)", func(t *testing.T) {
		assert.True(t, hourly.Matches(rate.Monday, 600))
		assert.True(t, hourly.Matches(rate.Monday, 1079))
		assert.False(t, hourly.Matches(rate.Monday, 1080))
		assert.False(t, hourly.Matches(rate.Monday, 599))
	})

	t.Run("曜日が合わなければ不一致", func(t *testing.T) {
		assert.False(t, hourly.Matches(rate.Saturday, 700))
	})

	t.Run("深夜パックは時刻を無視", func(t *testing.T) {
		pack, err := rate.NewRule("深夜パック", "土日祝", "22:00", "05:00", 9000)
		require.NoError(t, err)
		assert.True(t, pack.Matches(rate.Sunday, 0))
		assert.True(t, pack.Matches(rate.Sunday, 720))
		assert.False(t, pack.Matches(rate.Monday, 1380))
	})
}
