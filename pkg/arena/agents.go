package arena

import (
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/quant"
)

// Agent is one discussion participant. Agents are not persisted: the roster
// is rebuilt deterministically from the arena's agent count, so a restart
// reproduces the same IDs and roles that seeded the strategies.
type Agent struct {
	ID   string
	Name string
	Role models.AgentRole
}

// IsGenerator reports whether the agent owns a competing strategy.
func (a Agent) IsGenerator() bool {
	return a.Role == models.AgentRoleStrategyGenerator
}

// supportRoles are dealt in order to the non-generator seats, cycling when
// the seat count outruns the list.
var supportRoles = []models.AgentRole{
	models.AgentRoleStrategyReviewer,
	models.AgentRoleRiskAnalyst,
	models.AgentRoleMarketSentiment,
	models.AgentRoleQuantResearcher,
}

// buildRoster deals count seats. The first half, rounded up, are strategy
// generators so every arena seeds more than one competing strategy; the
// rest take support roles in a fixed order.
func buildRoster(count int) []Agent {
	genCount := (count + 1) / 2
	roster := make([]Agent, 0, count)
	for i := 0; i < count; i++ {
		var role models.AgentRole
		var ordinal int
		if i < genCount {
			role = models.AgentRoleStrategyGenerator
			ordinal = i + 1
		} else {
			role = supportRoles[(i-genCount)%len(supportRoles)]
			ordinal = (i-genCount)/len(supportRoles) + 1
		}
		roster = append(roster, Agent{
			ID:   fmt.Sprintf("agent-%d", i+1),
			Name: fmt.Sprintf("%s %d", roleTitle(role), ordinal),
			Role: role,
		})
	}
	return roster
}

func roleTitle(role models.AgentRole) string {
	switch role {
	case models.AgentRoleStrategyGenerator:
		return "Strategy Generator"
	case models.AgentRoleStrategyReviewer:
		return "Strategy Reviewer"
	case models.AgentRoleRiskAnalyst:
		return "Risk Analyst"
	case models.AgentRoleMarketSentiment:
		return "Market Sentiment Analyst"
	case models.AgentRoleQuantResearcher:
		return "Quant Researcher"
	default:
		return string(role)
	}
}

// seedPalette holds the starting rule-sets dealt to generator agents in
// order. Each entry uses a different indicator family so the first scoring
// pass compares genuinely different behaviors.
var seedPalette = []struct {
	name  string
	logic string
	rules models.StrategyRules
}{
	{
		name:  "SMA Trend Follower",
		logic: "Hold long while the 5-day SMA stays above the 20-day SMA; exit on the cross-down or a 5% stop.",
		rules: models.StrategyRules{Indicator: quant.IndicatorSMACross, FastPeriod: 5, SlowPeriod: 20, StopLossPct: 0.05},
	},
	{
		name:  "EMA Swing",
		logic: "Ride medium swings with a 10/30 EMA cross and a 6% stop.",
		rules: models.StrategyRules{Indicator: quant.IndicatorEMACross, FastPeriod: 10, SlowPeriod: 30, StopLossPct: 0.06},
	},
	{
		name:  "RSI Reversal",
		logic: "Buy oversold dips below RSI 30, sell overbought above RSI 70, 4% stop.",
		rules: models.StrategyRules{Indicator: quant.IndicatorRSI, Period: 14, EntryLevel: 30, ExitLevel: 70, StopLossPct: 0.04},
	},
	{
		name:  "MACD Momentum",
		logic: "Stay long while the 12/26 MACD histogram is positive, 5% stop.",
		rules: models.StrategyRules{Indicator: quant.IndicatorMACD, FastPeriod: 12, SlowPeriod: 26, StopLossPct: 0.05},
	},
	{
		name:  "Rate-of-Change Rider",
		logic: "Enter when the 10-day rate of change exceeds 2%, flat otherwise, 5% stop.",
		rules: models.StrategyRules{Indicator: quant.IndicatorMomentum, Period: 10, EntryLevel: 2, StopLossPct: 0.05},
	},
}

// seedFor returns the palette entry dealt to the i-th generator.
func seedFor(i int) (name, logic string, rules models.StrategyRules) {
	entry := seedPalette[i%len(seedPalette)]
	return entry.name, entry.logic, entry.rules
}
