package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/stripe_wallet_app/internal/models"
	"github.com/SscSPs/stripe_wallet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const recordColumns = `record_id, wallet_id, user_id, external_id, amount, currency_code, direction, status,
		applied_to_balance, requested_at, completed_at, failure_code, failure_message, method, channel,
		ip_address, bank_account_id, remark, version, created_at, created_by, last_updated_at, last_updated_by`

type PgxRecordRepository struct {
	BaseRepository
}

func newPgxRecordRepository(pool *pgxpool.Pool) *PgxRecordRepository {
	return &PgxRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

func scanRecord(row pgx.Row) (*domain.TransactionRecord, error) {
	var m models.TransactionRecord
	if err := row.Scan(
		&m.RecordID,
		&m.WalletID,
		&m.UserID,
		&m.ExternalID,
		&m.Amount,
		&m.CurrencyCode,
		&m.Direction,
		&m.Status,
		&m.AppliedToBalance,
		&m.RequestedAt,
		&m.CompletedAt,
		&m.FailureCode,
		&m.FailureMessage,
		&m.Method,
		&m.Channel,
		&m.IPAddress,
		&m.BankAccountID,
		&m.Remark,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	rec := mapping.ToDomainRecord(m)
	return &rec, nil
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func (b *whereBuilder) add(cond string, arg interface{}) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(b.args))))
}

func (b *whereBuilder) sql() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

func (b *whereBuilder) next() string {
	return "$" + strconv.Itoa(len(b.args)+1)
}

// recordFilter turns a listing query into its WHERE clause. SUCCESS listings filter
// on completion time, every other listing on request time.
func recordFilter(q domain.RecordQuery) *whereBuilder {
	b := &whereBuilder{}
	b.add("direction = ?", string(q.Direction))
	if q.UserID != "" {
		b.add("user_id = ?", q.UserID)
	}
	if q.CurrencyCode != "" {
		b.add("currency_code = ?", strings.ToLower(q.CurrencyCode))
	}
	if q.Method != "" {
		b.add("method = ?", q.Method)
	}
	if q.Status != nil {
		b.add("status = ?", string(*q.Status))
	}
	if q.TransactionID != "" {
		b.add("external_id ILIKE ?", "%"+escapeLike(q.TransactionID)+"%")
	}

	timeCol := "requested_at"
	if q.ByCompletion() {
		timeCol = "completed_at"
	}
	if q.StartTime != nil {
		b.add(timeCol+" >= ?", *q.StartTime)
	}
	if q.EndTime != nil {
		b.add(timeCol+" <= ?", *q.EndTime)
	}
	return b
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListRecords returns one page of records, newest first, with the total match count.
func (r *PgxRecordRepository) ListRecords(ctx context.Context, q domain.RecordQuery) ([]domain.TransactionRecord, int64, error) {
	filter := recordFilter(q)

	var total int64
	countQuery := `SELECT COUNT(*) FROM transaction_records` + filter.sql() + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, filter.args...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "failed to count transaction records")
	}
	if total == 0 {
		return []domain.TransactionRecord{}, 0, nil
	}

	limitPos := filter.next()
	args := append(filter.args, q.PageSize)
	offsetPos := "$" + strconv.Itoa(len(args)+1)
	args = append(args, q.Offset())

	query := `SELECT ` + recordColumns + ` FROM transaction_records` + filter.sql() +
		` ORDER BY requested_at DESC, record_id DESC LIMIT ` + limitPos + ` OFFSET ` + offsetPos + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "failed to query transaction records")
	}
	defer rows.Close()

	records := make([]domain.TransactionRecord, 0, q.PageSize)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, mapPgError(err, "failed to scan transaction record")
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapPgError(err, "error iterating transaction records")
	}
	return records, total, nil
}

// ListCompletedRecords returns SUCCESS records completed inside [StartTime, EndTime].
func (r *PgxRecordRepository) ListCompletedRecords(ctx context.Context, q domain.StatisticsQuery) ([]domain.TransactionRecord, error) {
	b := &whereBuilder{}
	b.add("status = ?", string(domain.StatusSuccess))
	b.add("completed_at >= ?", q.StartTime)
	b.add("completed_at <= ?", q.EndTime)
	if q.UserID != "" {
		b.add("user_id = ?", q.UserID)
	}
	if q.CurrencyCode != "" {
		b.add("currency_code = ?", strings.ToLower(q.CurrencyCode))
	}

	query := `SELECT ` + recordColumns + ` FROM transaction_records` + b.sql() + ` ORDER BY completed_at;`
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query completed records")
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan completed record")
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating completed records")
	}
	return records, nil
}

// SumPendingByWallet nets the PENDING records still applied to the wallet balance.
func (r *PgxRecordRepository) SumPendingByWallet(ctx context.Context, walletID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'WITHDRAW' THEN -amount ELSE amount END), 0)
		FROM transaction_records
		WHERE wallet_id = $1 AND status = 'PENDING' AND applied_to_balance;
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, walletID).Scan(&sum); err != nil {
		return decimal.Zero, mapPgError(err, "failed to sum pending records for wallet "+walletID)
	}
	return sum, nil
}
