package dto

import (
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
)

// ListRecordsParams are the query parameters of the deposit and withdraw listings.
type ListRecordsParams struct {
	CurrencyCode  string     `form:"currencyCode"`
	Method        string     `form:"method"`
	Status        string     `form:"status" binding:"omitempty,oneof=PENDING SUCCESS FAILED CANCELLED REJECTED"`
	TransactionID string     `form:"transactionId"`
	StartTime     *time.Time `form:"startTime" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime       *time.Time `form:"endTime" time_format:"2006-01-02T15:04:05Z07:00"`
	PageIndex     int        `form:"pageIndex" binding:"omitempty,min=0"`
	PageSize      int        `form:"pageSize" binding:"omitempty,min=0"`
}

// PagedResponse is one page of a listing.
type PagedResponse[T any] struct {
	Items      []T   `json:"items"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// ListRecordsResponse is a page of transaction records.
type ListRecordsResponse = PagedResponse[domain.TransactionRecord]

// StatisticsParams select the range and bucket size of the statistics report.
type StatisticsParams struct {
	StartTime    time.Time `form:"startTime" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime      time.Time `form:"endTime" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Granularity  string    `form:"granularity" binding:"omitempty,oneof=DAY MONTH YEAR day month year"`
	CurrencyCode string    `form:"currencyCode"`
}
