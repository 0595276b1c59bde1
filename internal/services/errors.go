package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
)

// QuotaError is returned when project creation would exceed the user's
// app limit. The message is user-facing and carries the numeric limit.
type QuotaError struct {
	Limit int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("App limit reached. You can create up to %d apps with your current plan.", e.Limit)
}

// IsQuotaError reports whether err is a quota violation.
func IsQuotaError(err error) (*QuotaError, bool) {
	var qe *QuotaError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
