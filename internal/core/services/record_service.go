package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/SscSPs/stripe_wallet_app/internal/utils/pagination"
)

type recordQueryService struct {
	BaseService
	recordRepo portsrepo.RecordReader
}

// NewRecordQueryService creates the deposit and withdraw listing service. storeTimeout bounds each query.
func NewRecordQueryService(recordRepo portsrepo.RecordReader, storeTimeout time.Duration) portssvc.RecordQuerySvc {
	return &recordQueryService{BaseService: BaseService{Timeout: storeTimeout}, recordRepo: recordRepo}
}

var _ portssvc.RecordQuerySvc = (*recordQueryService)(nil)

func (s *recordQueryService) ListDeposits(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error) {
	return s.list(ctx, userID, domain.Deposit, params)
}

func (s *recordQueryService) ListWithdraws(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error) {
	return s.list(ctx, userID, domain.Withdraw, params)
}

func (s *recordQueryService) list(ctx context.Context, userID string, dir domain.Direction, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error) {
	q, err := buildRecordQuery(userID, dir, params)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := s.WithTimeout(ctx)
	defer cancel()
	items, total, err := s.recordRepo.ListRecords(storeCtx, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records")
		return nil, fmt.Errorf("failed to list %s records: %w", strings.ToLower(string(dir)), err)
	}
	if items == nil {
		items = []domain.TransactionRecord{}
	}

	return &dto.ListRecordsResponse{
		Items:      items,
		PageIndex:  q.PageIndex,
		PageSize:   q.PageSize,
		TotalCount: total,
		TotalPages: pagination.TotalPages(total, q.PageSize),
	}, nil
}

func buildRecordQuery(userID string, dir domain.Direction, params dto.ListRecordsParams) (domain.RecordQuery, error) {
	q := domain.RecordQuery{
		Direction:     dir,
		UserID:        userID,
		CurrencyCode:  strings.ToLower(params.CurrencyCode),
		Method:        params.Method,
		TransactionID: strings.TrimSpace(params.TransactionID),
		StartTime:     params.StartTime,
		EndTime:       params.EndTime,
	}

	if params.Status != "" {
		status := domain.RecordStatus(strings.ToUpper(params.Status))
		if !status.Valid() {
			return q, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
		}
		q.Status = &status
	}
	if q.StartTime != nil && q.EndTime != nil && q.EndTime.Before(*q.StartTime) {
		return q, fmt.Errorf("%w: endTime is before startTime", apperrors.ErrValidation)
	}

	q.PageIndex, q.PageSize = pagination.Normalize(params.PageIndex, params.PageSize)
	return q, nil
}
