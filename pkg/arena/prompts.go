package arena

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/quant"
)

// conclusionMarker is the line prefix participants are instructed to end
// their replies with. Everything after the last marker becomes the stored
// conclusion.
const conclusionMarker = "CONCLUSION:"

func systemPrompt(agent Agent, a *models.Arena) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, one of %d agents competing in the %q trading strategy arena.\n\n",
		agent.Name, a.Config.AgentCount, a.Name)
	b.WriteString(roleCharter(agent.Role))
	b.WriteString("\n\nRules of engagement:\n")
	b.WriteString("- Reason openly; your thinking is streamed to observers.\n")
	b.WriteString("- Strategies are rule-sets over daily bars scored by the competition engine. Supported indicators: sma_cross, ema_cross, rsi, macd, momentum.\n")
	b.WriteString("- To revise a rule-set, include one fenced ```json block with fields indicator, fast_period, slow_period, period, entry_level, exit_level, stop_loss_pct. A revised strategy re-enters validation at the backtest stage.\n")
	fmt.Fprintf(&b, "- End your reply with a line starting %q followed by your position in one or two sentences.\n", conclusionMarker)
	return b.String()
}

func roleCharter(role models.AgentRole) string {
	switch role {
	case models.AgentRoleStrategyGenerator:
		return "Your mandate: own and continually improve one trading strategy. Defend its edge, fix its weaknesses, and revise its rules when the evidence demands it."
	case models.AgentRoleStrategyReviewer:
		return "Your mandate: audit the other agents' strategies for curve-fitting, fragile parameters and unjustified complexity. Be specific about what should change."
	case models.AgentRoleRiskAnalyst:
		return "Your mandate: interrogate drawdown, stop placement and survival in hostile regimes. A strategy that cannot lose slowly is not a strategy."
	case models.AgentRoleMarketSentiment:
		return "Your mandate: read the recent tape and argue what the prevailing regime rewards. Ground every claim in the supplied market data."
	case models.AgentRoleQuantResearcher:
		return "Your mandate: judge statistical robustness: sample size, stability of returns, regime sensitivity. Prefer evidence to narrative."
	default:
		return "Your mandate: contribute your expertise to the discussion."
	}
}

// promptInput carries everything one participant's user turn is built from.
type promptInput struct {
	round       *models.DiscussionRound
	agent       Agent
	own         *models.Strategy   // nil for support roles
	peers       []*models.Strategy // other active strategies
	conclusions []conclusionEntry  // positions taken earlier this round
	market      string             // compact market snapshot, may be empty
}

type conclusionEntry struct {
	agentID string
	text    string
}

func discussionPrompt(in promptInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Discussion round %d, %s mode.\n\n", in.round.RoundNumber, in.round.Mode)
	if in.market != "" {
		b.WriteString("Recent market data:\n")
		b.WriteString(in.market)
		b.WriteString("\n\n")
	}
	if in.own != nil {
		fmt.Fprintf(&b, "Your strategy %q (score %.1f, rank %d, stage %s):\n%s\nRules: %s\n\n",
			in.own.Name, in.own.CurrentScore, in.own.CurrentRank, in.own.Stage, in.own.Logic, renderRules(in.own.Rules))
	}
	if len(in.peers) > 0 {
		b.WriteString("Competing strategies:\n")
		for _, s := range in.peers {
			fmt.Fprintf(&b, "- %q by %s: score %.1f, stage %s, rules %s\n",
				s.Name, s.AgentID, s.CurrentScore, s.Stage, renderRules(s.Rules))
		}
		b.WriteString("\n")
	}
	if len(in.conclusions) > 0 {
		b.WriteString("Positions taken earlier this round:\n")
		for _, c := range in.conclusions {
			fmt.Fprintf(&b, "- %s: %s\n", c.agentID, c.text)
		}
		b.WriteString("\n")
	}
	switch in.round.Mode {
	case models.DiscussionModeDebate:
		b.WriteString("Take a clear side and challenge the opposing position directly.")
	case models.DiscussionModeReview:
		b.WriteString("Deliver your review of the strategies above: the strongest, the weakest, and the single change that matters most.")
	default:
		b.WriteString("Contribute your strongest improvement to the group's strategies.")
	}
	return b.String()
}

func renderRules(rules models.StrategyRules) string {
	raw, err := json.Marshal(rules)
	if err != nil {
		return rules.Indicator
	}
	return string(raw)
}

// extractConclusion pulls the participant's final position out of its
// argument: the text after the last conclusion marker, or the last
// non-empty paragraph when the model ignored the format.
func extractConclusion(text string) string {
	if idx := strings.LastIndex(text, conclusionMarker); idx >= 0 {
		return strings.TrimSpace(text[idx+len(conclusionMarker):])
	}
	paragraphs := strings.Split(strings.TrimSpace(text), "\n\n")
	for i := len(paragraphs) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(paragraphs[i]); p != "" {
			return p
		}
	}
	return ""
}

// extractRules finds the first fenced json block in text and decodes it as
// a rule-set. Returns false when no block parses or the indicator is not
// supported.
func extractRules(text string) (models.StrategyRules, bool) {
	const fence = "```json"
	start := strings.Index(text, fence)
	if start < 0 {
		return models.StrategyRules{}, false
	}
	rest := text[start+len(fence):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return models.StrategyRules{}, false
	}
	var rules models.StrategyRules
	if err := json.Unmarshal([]byte(strings.TrimSpace(rest[:end])), &rules); err != nil {
		return models.StrategyRules{}, false
	}
	if !quant.KnownIndicator(rules.Indicator) {
		return models.StrategyRules{}, false
	}
	return rules, true
}
