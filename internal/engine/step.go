package engine

import "DCASimulator/internal/model"

// Step applies one period's transition to the portfolio and emits the
// period's snapshot. prevPrice <= 0 marks the first period: the return is
// taken as 0 and the trigger stays inactive.
//
// Order within a period is fixed: cash accrual, trigger evaluation, base DCA
// buy, optional profit-taking, rebalancing, snapshot.
func Step(st model.PortfolioState, obs model.PriceObservation, prevPrice, baseAmount float64, p model.Parameters) (model.PortfolioState, model.PortfolioSnapshot) {
	price := obs.Price

	// Idle cash earns one month of yield before anything trades.
	st.Cash *= 1 + p.AnnualCashYield/12

	periodReturn := 0.0
	if prevPrice > 0 {
		periodReturn = (price - prevPrice) / prevPrice
	}
	triggerActive := periodReturn <= -p.DropTrigger

	// Base DCA buy, accelerated on a trigger month, never overdrawing cash.
	buyAmount := baseAmount
	if triggerActive {
		buyAmount = baseAmount * float64(p.DropMultiplier)
	}
	actualBuy := buyAmount
	if actualBuy > st.Cash {
		actualBuy = st.Cash
	}
	st.Shares += actualBuy / price
	st.Cash -= actualBuy
	st.InvestedBasis += actualBuy

	// Profit-taking: harvest the value in excess of the target-adjusted basis.
	if p.ProfitTakeEnabled && st.InvestedBasis > 0 {
		equityValue := st.Shares * price
		if equityValue/st.InvestedBasis-1 > p.ProfitTakeTarget {
			surplus := equityValue - st.InvestedBasis*(1+p.ProfitTakeTarget)
			sharesSold := surplus / price
			st.InvestedBasis -= sharesSold * (st.InvestedBasis / st.Shares)
			st.Shares -= sharesSold
			st.Cash += surplus
		}
	}

	// Rebalance back to the target equity ratio.
	equityValue := st.Shares * price
	totalValue := st.Cash + equityValue
	adjustment := totalValue*p.EquityRatio - equityValue
	if adjustment > 0 {
		v := adjustment
		if v > st.Cash {
			v = st.Cash
		}
		st.Shares += v / price
		st.Cash -= v
		st.InvestedBasis += v
	} else {
		v := -adjustment
		sharesSold := v / price
		if st.Shares > 0 {
			// Average-cost method: reduce the basis in proportion to the sale.
			st.InvestedBasis -= sharesSold * (st.InvestedBasis / st.Shares)
		}
		st.Shares -= sharesSold
		st.Cash += v
	}

	snap := model.PortfolioSnapshot{
		Time:          obs.Time,
		Price:         price,
		TotalValue:    st.Cash + st.Shares*price,
		Cash:          st.Cash,
		EquityValue:   st.Shares * price,
		TriggerActive: triggerActive,
	}
	return st, snap
}
