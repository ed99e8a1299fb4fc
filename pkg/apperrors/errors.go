package apperrors

import (
	"errors"
	"fmt"
)

// Kind 錯誤分類，handler 依分類對應 HTTP 狀態碼，不做錯誤訊息字串比對
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuthorization
	KindBusinessRule
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf 取得錯誤分類，未分類的錯誤一律視為 Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// FieldError 欄位層級的驗證錯誤
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	ErrUserNotFound          = New(KindNotFound, "User not found")
	ErrVenueNotFound         = New(KindNotFound, "Venue not found")
	ErrEventNotFound         = New(KindNotFound, "Event not found")
	ErrBookingNotFound       = New(KindNotFound, "Booking not found")
	ErrPaymentNotFound       = New(KindNotFound, "Payment not found for this booking")
	ErrGuestNotFound         = New(KindNotFound, "Guest not found")
	ErrTicketNotFound        = New(KindNotFound, "Support ticket not found")
	ErrFAQNotFound           = New(KindNotFound, "FAQ not found")
	ErrGuideNotFound         = New(KindNotFound, "Guide not found")
	ErrGuideCategoryNotFound = New(KindNotFound, "Guide category not found")
	ErrBusinessNotFound      = New(KindNotFound, "Business not found")

	ErrInvalidDateTime   = New(KindValidation, "Invalid date/time format")
	ErrInvalidTimeFormat = New(KindValidation, "Time must be in HH:MM 24-hour format")
	ErrPastSchedule      = New(KindValidation, "Event cannot be created in the past")
	ErrLocationMismatch  = New(KindValidation, "The location does not match the venue location")

	ErrSlotConflict       = New(KindConflict, "The venue is already booked at this date and time")
	ErrDuplicateGuest     = New(KindConflict, "A guest with this email already exists for this event")
	ErrEmailTaken         = New(KindConflict, "Email is already registered")
	ErrBookingCancelled   = New(KindConflict, "Booking is already cancelled")
	ErrBusinessEmailTaken = New(KindConflict, "A business with this email already exists")

	ErrNoRefundAllowed = New(KindBusinessRule, "No refunds are allowed for this booking.")

	ErrInvalidCredentials = New(KindAuthorization, "Invalid email or password")
	ErrForbidden          = New(KindAuthorization, "You do not have permission to access this resource")

	ErrInternalServerError = New(KindInternal, "Internal server error")
)
