//go:build unit

package shift_test

import (
	"testing"

	"cast-dispatch/internal/domain/request"
	"cast-dispatch/internal/domain/shift"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilitySlotCovers(t *testing.T) {
	window, err := request.NewTimeWindow("2025-11-15", "18:00", "20:00")
	require.NoError(t, err)

	cases := []struct {
		name     string
		date     string
		start    string
		end      string
		reserved bool
		want     bool
	}{
		{name: "完全に包含するスロットOK", date: "2025-11-15", start: "17:00", end: "21:00", want: true},
		{name: "境界一致OK", date: "2025-11-15", start: "18:00", end: "20:00", want: true},
		{name: "開始が遅いNG", date: "2025-11-15", start: "18:30", end: "20:00", want: false},
		{name: "終了が早いNG", date: "2025-11-15", start: "17:00", end: "19:30", want: false},
		{name: "別日NG", date: "2025-11-16", start: "17:00", end: "21:00", want: false},
		{name: "予約済みNG", date: "2025-11-15", start: "17:00", end: "21:00", reserved: true, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := shift.ReconstructAvailabilitySlot(1, 7, c.date, c.start, c.end, c.reserved)
			assert.Equal(t, c.want, s.Covers(window))
		})
	}
}

func TestTimeWindow(t *testing.T) {
	t.Run("開始は終了より前", func(t *testing.T) {
		_, err := request.NewTimeWindow("2025-11-15", "20:00", "18:00")
		require.ErrorIs(t, err, request.ErrInvalidWindow)

		_, err = request.NewTimeWindow("2025-11-15", "18:00", "18:00")
		require.ErrorIs(t, err, request.ErrInvalidWindow)
	})

	t.Run("日付の形式検証", func(t *testing.T) {
		_, err := request.NewTimeWindow("15/11/2025", "18:00", "20:00")
		require.ErrorIs(t, err, request.ErrInvalidDate)
	})
}
