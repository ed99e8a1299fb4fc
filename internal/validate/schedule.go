package validate

import (
	"regexp"
	"time"

	"go-event-management/pkg/apperrors"
)

// 嚴格 24 小時制 HH:MM
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

const dateLayout = "2006-01-02"

// EventSchedule 驗證活動日期時間並回傳合併後的時間點，
// 建立與更新活動共用同一套檢查。
func EventSchedule(date, clock string, now time.Time) (time.Time, error) {
	if !timePattern.MatchString(clock) {
		return time.Time{}, apperrors.ErrInvalidTimeFormat
	}

	at, err := time.ParseInLocation(dateLayout+" 15:04", date+" "+clock, now.Location())
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDateTime
	}

	if !at.After(now) {
		return time.Time{}, apperrors.ErrPastSchedule
	}

	return at, nil
}

// DateOnly 驗證 YYYY-MM-DD，供查詢條件使用
func DateOnly(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return apperrors.ErrInvalidDateTime
	}
	return nil
}
