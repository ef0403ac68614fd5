package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/shopspring/decimal"
)

type statisticsService struct {
	BaseService
	recordRepo portsrepo.RecordReader
}

// NewStatisticsService creates the transaction statistics service.
func NewStatisticsService(recordRepo portsrepo.RecordReader, storeTimeout time.Duration) portssvc.StatisticsSvc {
	return &statisticsService{BaseService: BaseService{Timeout: storeTimeout}, recordRepo: recordRepo}
}

var _ portssvc.StatisticsSvc = (*statisticsService)(nil)

func (s *statisticsService) GetTransactionStatistics(ctx context.Context, userID string, params dto.StatisticsParams) (*domain.TransactionStatistics, error) {
	if params.EndTime.Before(params.StartTime) {
		return nil, fmt.Errorf("%w: endTime is before startTime", apperrors.ErrValidation)
	}
	granularity, err := domain.ParseGranularity(params.Granularity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	storeCtx, cancel := s.WithTimeout(ctx)
	defer cancel()
	records, err := s.recordRepo.ListCompletedRecords(storeCtx, domain.StatisticsQuery{
		UserID:       userID,
		CurrencyCode: strings.ToLower(params.CurrencyCode),
		StartTime:    params.StartTime,
		EndTime:      params.EndTime,
		Granularity:  granularity,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for statistics")
		return nil, fmt.Errorf("failed to load records for statistics: %w", err)
	}

	return aggregateStatistics(records, granularity), nil
}

// aggregateStatistics buckets SUCCESS records by completion period in UTC, oldest first.
func aggregateStatistics(records []domain.TransactionRecord, g domain.TimeGranularity) *domain.TransactionStatistics {
	buckets := make(map[string]*domain.StatisticsItem)
	summary := domain.StatisticsSummary{
		TotalDeposit:      decimal.Zero,
		MaxDepositAmount:  decimal.Zero,
		TotalWithdraw:     decimal.Zero,
		MaxWithdrawAmount: decimal.Zero,
	}

	for _, rec := range records {
		if rec.Status != domain.StatusSuccess || rec.CompletedAt == nil {
			continue
		}
		completed := rec.CompletedAt.UTC()
		period := g.Period(completed)

		item, ok := buckets[period]
		if !ok {
			item = &domain.StatisticsItem{
				Period:            period,
				TotalDeposit:      decimal.Zero,
				MaxDepositAmount:  decimal.Zero,
				TotalWithdraw:     decimal.Zero,
				MaxWithdrawAmount: decimal.Zero,
			}
			buckets[period] = item
		}

		switch rec.Direction {
		case domain.Deposit:
			item.TotalDeposit = item.TotalDeposit.Add(rec.Amount)
			item.DepositCount++
			if rec.Amount.GreaterThan(item.MaxDepositAmount) {
				item.MaxDepositAmount = rec.Amount
			}
			summary.TotalDeposit = summary.TotalDeposit.Add(rec.Amount)
			summary.TotalDepositCount++
			if rec.Amount.GreaterThan(summary.MaxDepositAmount) {
				summary.MaxDepositAmount = rec.Amount
				summary.MaxDepositTime = &completed
				summary.MaxDepositUserID = rec.UserID
			}
		case domain.Withdraw:
			item.TotalWithdraw = item.TotalWithdraw.Add(rec.Amount)
			item.WithdrawCount++
			if rec.Amount.GreaterThan(item.MaxWithdrawAmount) {
				item.MaxWithdrawAmount = rec.Amount
			}
			summary.TotalWithdraw = summary.TotalWithdraw.Add(rec.Amount)
			summary.TotalWithdrawCount++
			if rec.Amount.GreaterThan(summary.MaxWithdrawAmount) {
				summary.MaxWithdrawAmount = rec.Amount
				summary.MaxWithdrawTime = &completed
				summary.MaxWithdrawUserID = rec.UserID
			}
		}
	}

	periods := make([]string, 0, len(buckets))
	for p := range buckets {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	items := make([]domain.StatisticsItem, 0, len(periods))
	for _, p := range periods {
		item := buckets[p]
		item.NetIncome = item.TotalDeposit.Sub(item.TotalWithdraw)
		items = append(items, *item)
	}
	summary.NetIncome = summary.TotalDeposit.Sub(summary.TotalWithdraw)

	return &domain.TransactionStatistics{Items: items, Summary: summary}
}
