package pgsql

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
)

type execCall struct {
	sql  string
	args []any
}

type execResult struct {
	tag pgconn.CommandTag
	err error
}

// scriptedTx answers Exec calls in order. Any other pgx.Tx method panics.
type scriptedTx struct {
	pgx.Tx
	results []execResult
	calls   []execCall
}

func (t *scriptedTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.calls = append(t.calls, execCall{sql: sql, args: args})
	if len(t.results) == 0 {
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	r := t.results[0]
	t.results = t.results[1:]
	return r.tag, r.err
}

func ledgerFixtures() (domain.TransactionRecord, domain.Wallet) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := domain.TransactionRecord{
		RecordID:    "rec-1",
		WalletID:    "wal-1",
		UserID:      "user-1",
		ExternalID:  "po_1",
		Amount:      decimal.NewFromInt(2000),
		Direction:   domain.Withdraw,
		Status:      domain.StatusFailed,
		RequestedAt: now,
		Version:     3,
	}
	w := domain.Wallet{
		WalletID: "wal-1",
		UserID:   "user-1",
		Balance:  decimal.NewFromInt(5000),
		Version:  7,
	}
	return rec, w
}

func TestSaveAtomic_ChecksVersions(t *testing.T) {
	rec, w := ledgerFixtures()
	tx := &scriptedTx{}

	err := (&pgxLedgerTx{tx: tx}).SaveAtomic(context.Background(), rec, &w)

	require.NoError(t, err)
	require.Len(t, tx.calls, 2)

	recordCall := tx.calls[0]
	assert.Contains(t, recordCall.sql, "UPDATE transaction_records")
	assert.Contains(t, recordCall.sql, "WHERE external_id = $1 AND version = $2")
	assert.Contains(t, recordCall.sql, "version = version + 1")
	assert.Equal(t, "po_1", recordCall.args[0])
	assert.EqualValues(t, 3, recordCall.args[1])

	walletCall := tx.calls[1]
	assert.Contains(t, walletCall.sql, "UPDATE wallets")
	assert.Contains(t, walletCall.sql, "WHERE wallet_id = $1 AND version = $2")
	assert.Equal(t, "wal-1", walletCall.args[0])
	assert.EqualValues(t, 7, walletCall.args[1])
	assert.True(t, decimal.NewFromInt(5000).Equal(walletCall.args[2].(decimal.Decimal)))
}

func TestSaveAtomic_WithoutWalletTouchesOnlyRecord(t *testing.T) {
	rec, _ := ledgerFixtures()
	tx := &scriptedTx{}

	require.NoError(t, (&pgxLedgerTx{tx: tx}).SaveAtomic(context.Background(), rec, nil))
	require.Len(t, tx.calls, 1)
	assert.Contains(t, tx.calls[0].sql, "UPDATE transaction_records")
}

func TestSaveAtomic_StaleVersionIsConflict(t *testing.T) {
	tests := []struct {
		name      string
		results   []execResult
		wantCalls int
	}{
		{"record changed", []execResult{{tag: pgconn.NewCommandTag("UPDATE 0")}}, 1},
		{"wallet changed", []execResult{{tag: pgconn.NewCommandTag("UPDATE 1")}, {tag: pgconn.NewCommandTag("UPDATE 0")}}, 2},
		{"serialization failure", []execResult{{err: &pgconn.PgError{Code: "40001"}}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, w := ledgerFixtures()
			tx := &scriptedTx{results: tt.results}

			err := (&pgxLedgerTx{tx: tx}).SaveAtomic(context.Background(), rec, &w)

			assert.ErrorIs(t, err, apperrors.ErrConflict)
			assert.Len(t, tx.calls, tt.wantCalls)
		})
	}
}

func TestInsertRecord_WritesRecordThenWallet(t *testing.T) {
	rec, w := ledgerFixtures()
	tx := &scriptedTx{results: []execResult{{tag: pgconn.NewCommandTag("INSERT 0 1")}}}

	require.NoError(t, (&pgxLedgerTx{tx: tx}).InsertRecord(context.Background(), rec, w))
	require.Len(t, tx.calls, 2)

	insert := tx.calls[0]
	assert.True(t, strings.Contains(insert.sql, "INSERT INTO transaction_records"))
	assert.Len(t, insert.args, 22)
	assert.Equal(t, "rec-1", insert.args[0])
	assert.Equal(t, "po_1", insert.args[3])
	assert.Contains(t, tx.calls[1].sql, "UPDATE wallets")
}

func TestInsertRecord_DuplicateSkipsWallet(t *testing.T) {
	rec, w := ledgerFixtures()
	tx := &scriptedTx{results: []execResult{{err: &pgconn.PgError{Code: "23505", ConstraintName: "uq_records_external_id"}}}}

	err := (&pgxLedgerTx{tx: tx}).InsertRecord(context.Background(), rec, w)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, tx.calls, 1)
}
