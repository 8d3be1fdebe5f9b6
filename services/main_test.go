package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bitbet/database"
	"bitbet/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.BettingOrder{},
		&models.BalanceTransaction{},
	))

	database.DB = db
}

func createTestUser(t *testing.T, direction string, available int64) *models.User {
	t.Helper()

	u := &models.User{
		Username:         fmt.Sprintf("user-%s", uuid.New().String()[:8]),
		AvailableBalance: decimal.NewFromInt(available),
		Direction:        direction,
		Reputation:       100,
		IsActive:         true,
	}
	require.NoError(t, database.DB.Create(u).Error)
	return u
}

func reloadUser(t *testing.T, id uint) *models.User {
	t.Helper()

	var u models.User
	require.NoError(t, database.DB.First(&u, id).Error)
	return &u
}

func reloadOrder(t *testing.T, id uint) *models.BettingOrder {
	t.Helper()

	var o models.BettingOrder
	require.NoError(t, database.DB.First(&o, id).Error)
	return &o
}

func assertMoney(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.NewFromInt(want)), "want %d, got %s", want, got.String())
}
