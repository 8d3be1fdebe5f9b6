package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbet/models"
)

// BalanceDelta describes one atomic adjustment of a user's ledger row.
type BalanceDelta struct {
	Available  decimal.Decimal
	Frozen     decimal.Decimal
	Total      decimal.Decimal
	Reputation int
}

// AdjustBalances applies the delta as a single UPDATE with SQL-side
// arithmetic so concurrent adjustments for the same user can never
// lose each other. Reputation is clamped to [0, 100] afterwards.
func AdjustBalances(tx *gorm.DB, userID uint, d BalanceDelta) error {
	updates := map[string]any{}
	if !d.Available.IsZero() {
		updates["available_balance"] = gorm.Expr("available_balance + ?", d.Available)
	}
	if !d.Frozen.IsZero() {
		updates["frozen_balance"] = gorm.Expr("frozen_balance + ?", d.Frozen)
	}
	if !d.Total.IsZero() {
		updates["total_balance"] = gorm.Expr("total_balance + ?", d.Total)
	}
	if d.Reputation != 0 {
		updates["reputation"] = gorm.Expr("reputation + ?", d.Reputation)
	}
	if len(updates) == 0 {
		return nil
	}

	res := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	if d.Reputation != 0 {
		if err := tx.Model(&models.User{}).
			Where("id = ? AND reputation > 100", userID).
			Update("reputation", 100).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ? AND reputation < 0", userID).
			Update("reputation", 0).Error; err != nil {
			return err
		}
	}

	return nil
}

// FreezeForOrder moves the wager principal from available to frozen.
// The balance check lives in the WHERE clause, so two concurrent
// placements cannot both spend the same funds.
func FreezeForOrder(tx *gorm.DB, userID uint, amount decimal.Decimal) error {
	res := tx.Model(&models.User{}).
		Where("id = ? AND available_balance >= ?", userID, amount).
		Updates(map[string]any{
			"available_balance": gorm.Expr("available_balance - ?", amount),
			"frozen_balance":    gorm.Expr("frozen_balance + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// recordMovement writes the audit row for a movement that has already
// been applied. availableDelta is the signed change to the available
// balance; the before value is derived from the fresh row.
func recordMovement(tx *gorm.DB, userID uint, orderID, trxType string, availableDelta decimal.Decimal, refID, note string) error {
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}
	return tx.Create(&models.BalanceTransaction{
		UserID:        userID,
		OrderID:       orderID,
		TrxType:       trxType,
		Amount:        availableDelta.Abs(),
		BalanceBefore: user.AvailableBalance.Sub(availableDelta),
		BalanceAfter:  user.AvailableBalance,
		Note:          note,
		RefID:         refID,
	}).Error
}
