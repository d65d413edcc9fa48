package app

import (
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/readiness"
)

type StatusRequest struct {
	Now        *time.Time
	CategoryID string // empty selects every active category
}

func NewStatusRequest() StatusRequest {
	return StatusRequest{}
}

// StatusResponse is the dashboard: per-category summaries, the overall
// score and whether the backup reminder is due.
//
// Score always covers every active category, even when CategoryID narrows
// Categories.
type StatusResponse struct {
	GeneratedAt time.Time
	Household   domain.HouseholdConfig
	Score       int
	Categories  []readiness.CategoryStatusSummary
	ItemCount   int
	ReminderDue bool
}

type StatusErrorCode string

const (
	StatusErrUnknownCategory StatusErrorCode = "UNKNOWN_CATEGORY"
)

type StatusError struct {
	Code    StatusErrorCode
	Message string
}

func (e *StatusError) Error() string {
	return string(e.Code) + ": " + e.Message
}
