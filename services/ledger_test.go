package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbet/database"
	"bitbet/models"
)

func TestAdjustBalances(t *testing.T) {
	setupTestDB(t)
	u := createTestUser(t, models.DirectionActual, 1000)

	err := AdjustBalances(database.DB, u.ID, BalanceDelta{
		Available: decimal.NewFromInt(-300),
		Frozen:    decimal.NewFromInt(300),
		Total:     decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	got := reloadUser(t, u.ID)
	assertMoney(t, 700, got.AvailableBalance)
	assertMoney(t, 300, got.FrozenBalance)
	assertMoney(t, 50, got.TotalBalance)
	assert.Equal(t, 100, got.Reputation)
}

func TestAdjustBalancesUnknownUser(t *testing.T) {
	setupTestDB(t)

	err := AdjustBalances(database.DB, 9999, BalanceDelta{Available: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAdjustBalancesEmptyDeltaIsNoop(t *testing.T) {
	setupTestDB(t)
	u := createTestUser(t, models.DirectionActual, 1000)

	require.NoError(t, AdjustBalances(database.DB, u.ID, BalanceDelta{}))
	assertMoney(t, 1000, reloadUser(t, u.ID).AvailableBalance)
}

func TestAdjustBalancesClampsReputationHigh(t *testing.T) {
	setupTestDB(t)
	u := createTestUser(t, models.DirectionActual, 1000)

	require.NoError(t, AdjustBalances(database.DB, u.ID, BalanceDelta{Reputation: 5}))
	assert.Equal(t, 100, reloadUser(t, u.ID).Reputation)
}

func TestAdjustBalancesClampsReputationLow(t *testing.T) {
	setupTestDB(t)
	u := createTestUser(t, models.DirectionActual, 1000)
	require.NoError(t, database.DB.Model(u).Update("reputation", 3).Error)

	require.NoError(t, AdjustBalances(database.DB, u.ID, BalanceDelta{Reputation: -5}))
	assert.Equal(t, 0, reloadUser(t, u.ID).Reputation)
}

func TestFreezeForOrder(t *testing.T) {
	setupTestDB(t)
	u := createTestUser(t, models.DirectionActual, 5000)

	require.NoError(t, FreezeForOrder(database.DB, u.ID, decimal.NewFromInt(2000)))

	got := reloadUser(t, u.ID)
	assertMoney(t, 3000, got.AvailableBalance)
	assertMoney(t, 2000, got.FrozenBalance)
}

func TestFreezeForOrderInsufficient(t *testing.T) {
	setupTestDB(t)
	u := createTestUser(t, models.DirectionActual, 1500)

	err := FreezeForOrder(database.DB, u.ID, decimal.NewFromInt(2000))
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	got := reloadUser(t, u.ID)
	assertMoney(t, 1500, got.AvailableBalance)
	assertMoney(t, 0, got.FrozenBalance)
}

func TestFreezeForOrderExactBalance(t *testing.T) {
	setupTestDB(t)
	u := createTestUser(t, models.DirectionActual, 2000)

	require.NoError(t, FreezeForOrder(database.DB, u.ID, decimal.NewFromInt(2000)))

	got := reloadUser(t, u.ID)
	assertMoney(t, 0, got.AvailableBalance)
	assertMoney(t, 2000, got.FrozenBalance)
}
