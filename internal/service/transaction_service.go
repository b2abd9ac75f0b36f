package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionService handles transaction read-side logic. Mutations go
// through the operator so the ledger update shares their transaction.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// GetTransaction retrieves one of the user's transactions by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	converted := convertTransaction(row)
	return &converted, nil
}

// ListTransactions returns a page of the user's transactions using
// cursor-based pagination, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, query TransactionQuery, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &transaction.TransactionFilter{
		UserID:          userID,
		AccountID:       query.AccountID,
		CategoryID:      query.CategoryID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = convertTransaction(row)
	}

	return convertedTransactions, nextCursor, nil
}

func convertTransaction(row *transaction.Transaction) Transaction {
	converted := Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		Amount:          row.Amount,
		TransactionDate: row.TransactionDate,
		Description:     row.Description,
		CreatedAt:       row.CreatedAt,
	}
	if row.CategoryID.Valid {
		categoryID := row.CategoryID.UUID
		converted.CategoryID = &categoryID
	}
	return converted
}
