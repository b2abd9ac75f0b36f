package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

func newTransactionTestService(t *testing.T) (*TransactionService, *mockTransactionTable, uuid.UUID) {
	t.Helper()
	mockTable := new(mockTransactionTable)
	store := &storage.Storage{Transactions: mockTable}
	return NewTransactionService(store), mockTable, uuid.Must(uuid.NewV4())
}

func makeStorageRows(userID uuid.UUID, n int, createdAt time.Time) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, n)
	for i := range rows {
		rows[i] = &transaction.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			UserID:          userID,
			AccountID:       uuid.Must(uuid.NewV4()),
			CategoryID:      uuid.NullUUID{UUID: uuid.Must(uuid.NewV4()), Valid: true},
			Amount:          decimal.RequireFromString("5.00"),
			Description:     "Item",
			TransactionDate: createdAt,
			CreatedAt:       createdAt,
		}
	}
	return rows
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, mockTable, userID := newTransactionTestService(t)

	mockTable.On("List", mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{}, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, TransactionQuery{}, nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, mockTable, userID := newTransactionTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(userID, 2, now)

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.UserID == userID && f.Limit == defaultLimit && f.Offset == 0 && f.MaxCreationTime == nil
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, TransactionQuery{}, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)
	assert.Equal(t, rows[0].ID, txs[0].ID)
	assert.Equal(t, rows[0].AccountID, txs[0].AccountID)
}

func TestListTransactions_FullPageEmitsCursor(t *testing.T) {
	svc, mockTable, userID := newTransactionTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	// One extra row beyond the limit signals another page exists.
	rows := makeStorageRows(userID, defaultLimit+1, now)

	mockTable.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, TransactionQuery{}, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit)
	if assert.NotNil(t, nextCursor) {
		assert.Equal(t, defaultLimit, nextCursor.Position)
		assert.Equal(t, defaultLimit, nextCursor.Limit)
		// First page locks maxCreationTime to the newest row it saw.
		assert.True(t, nextCursor.MaxCreationTime.Equal(rows[0].CreatedAt))
	}
}

func TestListTransactions_SecondPageKeepsCursorBounds(t *testing.T) {
	svc, mockTable, userID := newTransactionTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	maxCreationTime := now.Add(-time.Minute)
	rows := makeStorageRows(userID, 6, now)

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 5 && f.Offset == 5 &&
			f.MaxCreationTime != nil && f.MaxCreationTime.Equal(maxCreationTime)
	})).Return(rows, nil)

	cursor := &TransactionCursor{Position: 5, Limit: 5, MaxCreationTime: maxCreationTime}
	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, TransactionQuery{}, cursor)

	assert.NoError(t, err)
	assert.Len(t, txs, 5)
	if assert.NotNil(t, nextCursor) {
		assert.Equal(t, 10, nextCursor.Position)
		assert.Equal(t, 5, nextCursor.Limit)
		assert.True(t, nextCursor.MaxCreationTime.Equal(maxCreationTime))
	}
}

func TestListTransactions_FiltersPassedThrough(t *testing.T) {
	svc, mockTable, userID := newTransactionTestService(t)

	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.AccountID != nil && *f.AccountID == accountID &&
			f.CategoryID != nil && *f.CategoryID == categoryID
	})).Return([]*transaction.Transaction{}, nil)

	query := TransactionQuery{AccountID: &accountID, CategoryID: &categoryID}
	_, _, err := svc.ListTransactions(context.Background(), userID, query, nil)

	assert.NoError(t, err)
	mockTable.AssertExpectations(t)
}

func TestListTransactions_NullCategoryMapsToNil(t *testing.T) {
	svc, mockTable, userID := newTransactionTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(userID, 1, now)
	rows[0].CategoryID = uuid.NullUUID{}

	mockTable.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	txs, _, err := svc.ListTransactions(context.Background(), userID, TransactionQuery{}, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Nil(t, txs[0].CategoryID)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable, userID := newTransactionTestService(t)

	mockTable.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, TransactionQuery{}, nil)

	assert.Error(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestGetTransaction_NotFound(t *testing.T) {
	svc, mockTable, userID := newTransactionTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.On("FindByID", mock.Anything, userID, id).
		Return(nil, transaction.ErrNotFound)

	tx, err := svc.GetTransaction(context.Background(), userID, id)

	assert.ErrorIs(t, err, transaction.ErrNotFound)
	assert.Nil(t, tx)
}
