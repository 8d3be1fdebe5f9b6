package services

import "bitbet/models"

// BiasOutcome is the resolved result of a settled order: whether it
// pays out, what result label it carries, and how reputation moves.
type BiasOutcome struct {
	Result          string
	Win             bool
	ReputationDelta int
}

// ResolveOutcome applies the admin-configured user direction to the
// direction stored on the order. "Actual" defers to the order; any
// other value forces the outcome regardless of what the customer
// picked. Reputation only moves when the outcome was forced.
func ResolveOutcome(userDirection, orderDirection string) BiasOutcome {
	effective := orderDirection
	forced := userDirection != models.DirectionActual && userDirection != ""
	if forced {
		effective = userDirection
	}

	out := BiasOutcome{Result: models.OrderResultLoss}
	if effective == models.DirectionBuyUp {
		out.Result = models.OrderResultWin
		out.Win = true
	}

	if forced {
		if out.Win {
			out.ReputationDelta = 5
		} else {
			out.ReputationDelta = -5
		}
	}

	return out
}
