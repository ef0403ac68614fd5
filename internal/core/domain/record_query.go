package domain

import "time"

// RecordQuery filters transaction record listings.
type RecordQuery struct {
	Direction     Direction
	UserID        string
	CurrencyCode  string
	Method        string
	Status        *RecordStatus
	TransactionID string // Substring match on ExternalID
	StartTime     *time.Time
	EndTime       *time.Time
	PageIndex     int
	PageSize      int
}

// ByCompletion reports whether the time range applies to CompletedAt rather than RequestedAt.
// Only SUCCESS listings are filtered by completion time.
func (q RecordQuery) ByCompletion() bool {
	return q.Status != nil && *q.Status == StatusSuccess
}

// Offset is the number of rows skipped for the current page.
func (q RecordQuery) Offset() int {
	return (q.PageIndex - 1) * q.PageSize
}

// StatisticsQuery selects the successful records aggregated into statistics.
type StatisticsQuery struct {
	UserID       string
	CurrencyCode string
	StartTime    time.Time
	EndTime      time.Time
	Granularity  TimeGranularity
}
