package models

// DateLayout is the calendar-day key format used by ClosedDate and NewsItem dates.
const DateLayout = "2006-01-02"

type ClosedDate struct {
	ID     string `json:"id" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02" doc:"Calendar day, YYYY-MM-DD"`
	Reason string `json:"reason" required:"false"`
}
