package validate

import (
	"testing"
	"time"

	"go-event-management/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSchedule(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		at, err := EventSchedule("2025-06-20", "18:30", now)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 20, 18, 30, 0, 0, time.UTC), at)
	})

	t.Run("Failed - MissingLeadingZero", func(t *testing.T) {
		_, err := EventSchedule("2025-06-20", "9:00", now)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeFormat)
	})

	t.Run("Failed - HourOutOfRange", func(t *testing.T) {
		_, err := EventSchedule("2025-06-20", "24:00", now)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeFormat)
	})

	t.Run("Failed - MinuteOutOfRange", func(t *testing.T) {
		_, err := EventSchedule("2025-06-20", "18:60", now)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeFormat)
	})

	t.Run("Failed - InvalidDate", func(t *testing.T) {
		_, err := EventSchedule("2025-13-40", "18:30", now)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateTime)
	})

	t.Run("Failed - PastSchedule", func(t *testing.T) {
		_, err := EventSchedule("2025-06-10", "18:30", now)
		assert.ErrorIs(t, err, apperrors.ErrPastSchedule)
	})

	t.Run("Failed - ExactlyNow", func(t *testing.T) {
		// 與現在同一時間點視為過去
		_, err := EventSchedule("2025-06-15", "12:00", now)
		assert.ErrorIs(t, err, apperrors.ErrPastSchedule)
	})
}

func TestDateOnly(t *testing.T) {
	assert.NoError(t, DateOnly("2025-06-15"))
	assert.ErrorIs(t, DateOnly("15-06-2025"), apperrors.ErrInvalidDateTime)
	assert.ErrorIs(t, DateOnly("not-a-date"), apperrors.ErrInvalidDateTime)
}
