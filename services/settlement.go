package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbet/database"
	"bitbet/helpers"
	"bitbet/models"
	"bitbet/providers"
)

// Allowed wager durations (seconds) and the profit percentage each one
// pays. An unknown duration never reaches settlement: it is rejected
// at placement.
var durationProfitPercent = map[int]decimal.Decimal{
	30:  decimal.NewFromFloat(0.20),
	60:  decimal.NewFromFloat(0.30),
	120: decimal.NewFromFloat(0.40),
	180: decimal.NewFromFloat(0.50),
	240: decimal.NewFromFloat(0.60),
}

const defaultMinOrderAmount = 1000

// MinOrderAmount returns the smallest accepted wager. Overridable via
// MIN_ORDER_AMOUNT.
func MinOrderAmount() decimal.Decimal {
	if v := os.Getenv("MIN_ORDER_AMOUNT"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			return d
		}
		log.Printf("⚠️  Invalid value for MIN_ORDER_AMOUNT: %s\n", v)
	}
	return decimal.NewFromInt(defaultMinOrderAmount)
}

type PlaceOrderRequest struct {
	Asset      string
	Amount     decimal.Decimal
	Direction  string
	Duration   int
	EntryPrice *decimal.Decimal
}

// PlaceOrder validates the wager, escrows the principal and persists
// the order in one transaction. The order stores the customer's own
// direction; any admin override is applied later, at settlement.
func PlaceOrder(userID uint, req PlaceOrderRequest) (*models.BettingOrder, error) {
	if _, ok := durationProfitPercent[req.Duration]; !ok {
		return nil, ErrInvalidDuration
	}
	if req.Direction != models.DirectionBuyUp && req.Direction != models.DirectionBuyDown {
		return nil, ErrInvalidDirection
	}
	if req.Amount.LessThan(MinOrderAmount()) {
		return nil, ErrBelowMinimum
	}

	quote := providers.Oracle.Quote(req.Asset, req.EntryPrice)

	var order *models.BettingOrder
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("load user: %w", err)
		}
		if !user.IsActive {
			return ErrUserInactive
		}

		if err := FreezeForOrder(tx, user.ID, req.Amount); err != nil {
			return err
		}

		now := time.Now()
		order = &models.BettingOrder{
			OrderID:     helpers.GenerateOrderID(),
			UserID:      user.ID,
			Asset:       req.Asset,
			Amount:      req.Amount,
			Direction:   req.Direction,
			Duration:    req.Duration,
			EntryPrice:  quote.Price,
			Status:      models.OrderStatusActive,
			ExpiresAt:   now.Add(time.Duration(req.Duration) * time.Second),
			OracleQuote: quote.Raw,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		return recordMovement(tx, user.ID, order.OrderID, models.TrxTypeEscrow,
			req.Amount.Neg(), order.OrderID, "Escrow for betting order")
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Order %s placed: user=%d %s %s %s for %ds\n",
		order.OrderID, userID, req.Asset, helpers.Money(req.Amount), req.Direction, req.Duration)
	return order, nil
}

// Settle moves an active order to completed and reconciles the ledger.
// It is idempotent: both expiration triggers may call it, but the
// conditional status update lets only one application of the ledger
// effects through. Every other call gets ErrOrderNotActive.
func Settle(orderID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var order models.BettingOrder
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("load order: %w", err)
		}
		if order.Status != models.OrderStatusActive {
			return ErrOrderNotActive
		}

		var user models.User
		if err := tx.First(&user, order.UserID).Error; err != nil {
			return fmt.Errorf("load order user: %w", err)
		}

		percent, ok := durationProfitPercent[order.Duration]
		if !ok {
			return fmt.Errorf("order %s has unknown duration %d", order.OrderID, order.Duration)
		}
		baseProfit := order.Amount.Mul(percent).Round(2)

		outcome := ResolveOutcome(user.Direction, order.Direction)
		impact := baseProfit
		trxType := models.TrxTypeSettleWin
		if !outcome.Win {
			impact = baseProfit.Neg()
			trxType = models.TrxTypeSettleLoss
		}

		// Single-writer guard: whichever trigger flips the status first
		// owns the ledger update. RowsAffected == 0 means we lost.
		res := tx.Model(&models.BettingOrder{}).
			Where("id = ? AND status = ?", order.ID, models.OrderStatusActive).
			Updates(map[string]any{
				"status":     models.OrderStatusCompleted,
				"result":     outcome.Result,
				"exit_price": order.EntryPrice,
				"profit":     baseProfit,
			})
		if res.Error != nil {
			return fmt.Errorf("complete order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotActive
		}

		// Principal comes back from frozen in full; the signed outcome
		// lands on available and total.
		if err := AdjustBalances(tx, user.ID, BalanceDelta{
			Available:  order.Amount.Add(impact),
			Frozen:     order.Amount.Neg(),
			Total:      impact,
			Reputation: outcome.ReputationDelta,
		}); err != nil {
			return err
		}

		if err := recordMovement(tx, user.ID, order.OrderID, trxType,
			order.Amount.Add(impact), order.OrderID, "Betting order settled"); err != nil {
			return err
		}

		log.Printf("✅ Order %s settled: user=%d result=%s impact=%s\n",
			order.OrderID, user.ID, outcome.Result, helpers.Money(impact))
		return nil
	})
}

// Cancel voids an active order and returns the escrowed principal to
// the available balance. Total balance is untouched: no profit or loss
// was realized.
func Cancel(orderID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var order models.BettingOrder
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("load order: %w", err)
		}
		if order.Status != models.OrderStatusActive {
			return ErrOrderNotActive
		}

		res := tx.Model(&models.BettingOrder{}).
			Where("id = ? AND status = ?", order.ID, models.OrderStatusActive).
			Update("status", models.OrderStatusCancelled)
		if res.Error != nil {
			return fmt.Errorf("cancel order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotActive
		}

		if err := AdjustBalances(tx, order.UserID, BalanceDelta{
			Available: order.Amount,
			Frozen:    order.Amount.Neg(),
		}); err != nil {
			return err
		}

		if err := recordMovement(tx, order.UserID, order.OrderID, models.TrxTypeCancelRefund,
			order.Amount, order.OrderID, "Betting order cancelled, escrow returned"); err != nil {
			return err
		}

		log.Printf("✅ Order %s cancelled: user=%d escrow %s returned\n",
			order.OrderID, order.UserID, helpers.Money(order.Amount))
		return nil
	})
}
