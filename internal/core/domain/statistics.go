package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeGranularity is the bucket size of transaction statistics.
type TimeGranularity string

const (
	GranularityDay   TimeGranularity = "DAY"
	GranularityMonth TimeGranularity = "MONTH"
	GranularityYear  TimeGranularity = "YEAR"
)

// ParseGranularity accepts DAY, MONTH or YEAR in any case; empty means DAY.
func ParseGranularity(s string) (TimeGranularity, error) {
	switch g := TimeGranularity(strings.ToUpper(s)); g {
	case "":
		return GranularityDay, nil
	case GranularityDay, GranularityMonth, GranularityYear:
		return g, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Period formats t as the bucket label for g.
func (g TimeGranularity) Period(t time.Time) string {
	switch g {
	case GranularityMonth:
		return t.Format("2006-01")
	case GranularityYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// StatisticsItem aggregates successful records of one period.
type StatisticsItem struct {
	Period            string          `json:"period"`
	TotalDeposit      decimal.Decimal `json:"totalDeposit"`
	DepositCount      int             `json:"depositCount"`
	MaxDepositAmount  decimal.Decimal `json:"maxDepositAmount"`
	TotalWithdraw     decimal.Decimal `json:"totalWithdraw"`
	WithdrawCount     int             `json:"withdrawCount"`
	MaxWithdrawAmount decimal.Decimal `json:"maxWithdrawAmount"`
	NetIncome         decimal.Decimal `json:"netIncome"`
}

// StatisticsSummary aggregates the whole requested range.
type StatisticsSummary struct {
	TotalDeposit       decimal.Decimal `json:"totalDeposit"`
	TotalDepositCount  int             `json:"totalDepositCount"`
	MaxDepositAmount   decimal.Decimal `json:"maxDepositAmount"`
	MaxDepositTime     *time.Time      `json:"maxDepositTime,omitempty"`
	MaxDepositUserID   string          `json:"maxDepositUserID,omitempty"`
	TotalWithdraw      decimal.Decimal `json:"totalWithdraw"`
	TotalWithdrawCount int             `json:"totalWithdrawCount"`
	MaxWithdrawAmount  decimal.Decimal `json:"maxWithdrawAmount"`
	MaxWithdrawTime    *time.Time      `json:"maxWithdrawTime,omitempty"`
	MaxWithdrawUserID  string          `json:"maxWithdrawUserID,omitempty"`
	NetIncome          decimal.Decimal `json:"netIncome"`
}

// TransactionStatistics is the statistics report.
type TransactionStatistics struct {
	Items   []StatisticsItem  `json:"items"`
	Summary StatisticsSummary `json:"summary"`
}
