package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
)

func (s *APIHandlerTestSuite) TestListDeposits_BindsFilters() {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s.records.On("ListDeposits", mock.Anything, testUserID, mock.MatchedBy(func(p dto.ListRecordsParams) bool {
		return p.Status == "SUCCESS" && p.PageIndex == 2 && p.PageSize == 10 &&
			p.StartTime != nil && p.StartTime.Equal(start) && p.EndTime == nil
	})).Return(&dto.ListRecordsResponse{
		Items:      []domain.TransactionRecord{{ExternalID: "tr_9"}},
		PageIndex:  2,
		PageSize:   10,
		TotalCount: 11,
		TotalPages: 2,
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions/deposits?status=SUCCESS&pageIndex=2&pageSize=10&startTime=2024-05-01T00:00:00Z", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"totalPages":2`)
	s.records.AssertExpectations(s.T())
}

func (s *APIHandlerTestSuite) TestListDeposits_UnknownStatus() {
	w := s.do(http.MethodGet, "/api/v1/transactions/deposits?status=LOST", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.records.AssertNotCalled(s.T(), "ListDeposits", mock.Anything, mock.Anything, mock.Anything)
}

func (s *APIHandlerTestSuite) TestListWithdraws_ServiceValidation() {
	s.records.On("ListWithdraws", mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: endTime before startTime", apperrors.ErrValidation)).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions/withdraws?startTime=2024-05-02T00:00:00Z&endTime=2024-05-01T00:00:00Z", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "endTime before startTime")
}

func (s *APIHandlerTestSuite) TestStatistics_RequiresRange() {
	w := s.do(http.MethodGet, "/api/v1/transactions/statistics?granularity=DAY", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APIHandlerTestSuite) TestStatistics() {
	s.stats.On("GetTransactionStatistics", mock.Anything, testUserID, mock.MatchedBy(func(p dto.StatisticsParams) bool {
		return p.Granularity == "MONTH" && p.EndTime.After(p.StartTime)
	})).Return(&domain.TransactionStatistics{
		Items: []domain.StatisticsItem{{Period: "2024-05"}},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions/statistics?startTime=2024-05-01T00:00:00Z&endTime=2024-06-01T00:00:00Z&granularity=MONTH", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"2024-05"`)
}
