package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annie29007/ds-cart/internal/order/domain"
)

func testOrder(user string, at time.Time) domain.Order {
	return domain.Order{
		ID:          "ignored-by-the-file",
		UserID:      user,
		Currency:    "INR",
		TotalAmount: 5000,
		CreatedAt:   at,
		Lines: []domain.Line{
			{ProductID: 101, Name: "Pen", UnitAmount: 1000, Quantity: 5, LineTotalAmount: 5000},
		},
	}
}

func TestAppendWritesBlockFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.txt")
	repo := NewOrderRepo(path)
	at := time.Date(2026, 9, 1, 14, 30, 5, 0, time.Local)

	require.NoError(t, repo.Append(context.Background(), testOrder("alice", at)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "USER:alice DATE:2026-09-01_14:30:05 TOTAL:50.00")
	assert.Contains(t, text, "  101 Pen 5 10.00")
	assert.Contains(t, text, separator)
	assert.True(t, strings.HasSuffix(text, separator+"\n"))
}

func TestAppendThenReadAllRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.txt")
	repo := NewOrderRepo(path)
	ctx := context.Background()

	first := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	second := first.Add(time.Hour)

	require.NoError(t, repo.Append(ctx, testOrder("alice", first)))

	multi := domain.Order{
		UserID:      "bob",
		TotalAmount: 1000 + 2*5000,
		CreatedAt:   second,
		Lines: []domain.Line{
			{ProductID: 101, Name: "Pen", UnitAmount: 1000, Quantity: 1, LineTotalAmount: 1000},
			{ProductID: 102, Name: "Notebook", UnitAmount: 5000, Quantity: 2, LineTotalAmount: 10000},
		},
	}
	require.NoError(t, repo.Append(ctx, multi))

	orders, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2, "append keeps prior blocks intact")

	assert.Equal(t, "alice", orders[0].UserID)
	assert.Equal(t, first, orders[0].CreatedAt)
	assert.Equal(t, int64(5000), orders[0].TotalAmount)
	require.Len(t, orders[0].Lines, 1)
	assert.Equal(t, domain.Line{ProductID: 101, Name: "Pen", UnitAmount: 1000, Quantity: 5, LineTotalAmount: 5000}, orders[0].Lines[0])

	assert.Equal(t, "bob", orders[1].UserID)
	require.Len(t, orders[1].Lines, 2)
	assert.Equal(t, "Notebook", orders[1].Lines[1].Name)
	assert.Equal(t, 2, orders[1].Lines[1].Quantity)
}

func TestReadAllMissingFile(t *testing.T) {
	repo := NewOrderRepo(filepath.Join(t.TempDir(), "absent.txt"))
	orders, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestReadAllNameWithSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.txt")
	repo := NewOrderRepo(path)
	ctx := context.Background()

	order := testOrder("alice", time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local))
	order.Lines[0].Name = "Gel Pen Blue"
	require.NoError(t, repo.Append(ctx, order))

	orders, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 1)
	assert.Equal(t, "Gel Pen Blue", orders[0].Lines[0].Name)
}
