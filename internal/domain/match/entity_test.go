//go:build unit

package match_test

import (
	"testing"
	"time"

	"cast-dispatch/internal/domain/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	now := time.Date(2025, 11, 10, 18, 0, 0, 0, time.UTC)

	t.Run("開始時間検証", func(t *testing.T) {
		cases := []struct {
			name     string
			duration int32
			errIs    error
		}{
			{name: "60分OK", duration: 60},
			{name: "120分OK", duration: 120},
			{name: "180分OK", duration: 180},
			{name: "90分NG", duration: 90, errIs: match.ErrInvalidDuration},
			{name: "0分NG", duration: 0, errIs: match.ErrInvalidDuration},
			{name: "240分NG", duration: 240, errIs: match.ErrInvalidDuration},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				m, err := match.NewMatch(1, nil, 5, c.duration, nil, now)
				if c.errIs != nil {
					require.Nil(t, m)
					require.ErrorIs(t, err, c.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, match.StatusStarted, m.Status())
				assert.Equal(t, c.duration, m.DurationMinutes())
				assert.Equal(t, now.Add(time.Duration(c.duration)*time.Minute), m.EndsAt())
			})
		}
	})

	t.Run("延長は1か2時間のみ", func(t *testing.T) {
		assert.True(t, match.IsAllowedExtension(1))
		assert.True(t, match.IsAllowedExtension(2))
		assert.False(t, match.IsAllowedExtension(0))
		assert.False(t, match.IsAllowedExtension(3))
	})

	t.Run("位置情報検証", func(t *testing.T) {
		_, err := match.NewGeo(35.6812, 139.7671)
		require.NoError(t, err)

		_, err = match.NewGeo(91, 0)
		require.ErrorIs(t, err, match.ErrInvalidCoordinates)

		_, err = match.NewGeo(0, -181)
		require.ErrorIs(t, err, match.ErrInvalidCoordinates)
	})
}
