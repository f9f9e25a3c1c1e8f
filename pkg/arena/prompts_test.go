package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

func TestExtractConclusion(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "marker present",
			text: "Long argument here.\n\nCONCLUSION: hold the current rules.",
			want: "hold the current rules.",
		},
		{
			name: "last marker wins",
			text: "CONCLUSION: draft position.\n\nMore thought.\n\nCONCLUSION: final position.",
			want: "final position.",
		},
		{
			name: "no marker falls back to last paragraph",
			text: "Opening thoughts.\n\nClosing thoughts without a marker.",
			want: "Closing thoughts without a marker.",
		},
		{
			name: "whitespace only",
			text: "   \n\n  ",
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractConclusion(tc.text))
		})
	}
}

func TestExtractRules(t *testing.T) {
	valid := "Reasoning first.\n\n```json\n{\"indicator\": \"ema_cross\", \"fast_period\": 8, \"slow_period\": 21, \"stop_loss_pct\": 0.05}\n```\n\nCONCLUSION: revised."

	rules, ok := extractRules(valid)
	require.True(t, ok)
	assert.Equal(t, models.StrategyRules{
		Indicator:   "ema_cross",
		FastPeriod:  8,
		SlowPeriod:  21,
		StopLossPct: 0.05,
	}, rules)

	cases := []struct {
		name string
		text string
	}{
		{"no fence", "Just prose, no rules block."},
		{"unterminated fence", "```json\n{\"indicator\": \"rsi\"}"},
		{"malformed json", "```json\n{indicator: rsi}\n```"},
		{"unknown indicator", "```json\n{\"indicator\": \"tea_leaves\"}\n```"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := extractRules(tc.text)
			assert.False(t, ok)
		})
	}
}

func TestSystemPromptFramesTheAgent(t *testing.T) {
	a := &models.Arena{
		Name:   "q3 tournament",
		Config: models.ArenaConfig{AgentCount: 5},
	}
	agent := Agent{ID: "agent-4", Name: "Risk Analyst 1", Role: models.AgentRoleRiskAnalyst}

	prompt := systemPrompt(agent, a)
	assert.Contains(t, prompt, "Risk Analyst 1")
	assert.Contains(t, prompt, "q3 tournament")
	assert.Contains(t, prompt, "5 agents")
	assert.Contains(t, prompt, "drawdown")
	assert.Contains(t, prompt, conclusionMarker)
	assert.Contains(t, prompt, "sma_cross, ema_cross, rsi, macd, momentum")
}

func TestRoleCharterCoversEveryRole(t *testing.T) {
	roles := []models.AgentRole{
		models.AgentRoleStrategyGenerator,
		models.AgentRoleStrategyReviewer,
		models.AgentRoleRiskAnalyst,
		models.AgentRoleMarketSentiment,
		models.AgentRoleQuantResearcher,
	}
	seen := map[string]bool{}
	for _, role := range roles {
		charter := roleCharter(role)
		assert.Contains(t, charter, "Your mandate", "charter for %s", role)
		assert.False(t, seen[charter], "charter for %s duplicates another role", role)
		seen[charter] = true
	}
}

func TestDiscussionPromptCarriesRoundContext(t *testing.T) {
	round := &models.DiscussionRound{RoundNumber: 2, Mode: models.DiscussionModeDebate}
	own := &models.Strategy{
		Name:         "SMA Trend Follower",
		CurrentScore: 61.5,
		CurrentRank:  2,
		Stage:        models.StrategyStageSimulated,
		Logic:        "Hold long above the cross.",
		Rules:        models.StrategyRules{Indicator: "sma_cross", FastPeriod: 5, SlowPeriod: 20},
	}
	peer := &models.Strategy{
		Name:         "RSI Reversal",
		AgentID:      "agent-2",
		CurrentScore: 70.2,
		Stage:        models.StrategyStageLive,
		Rules:        models.StrategyRules{Indicator: "rsi", Period: 14},
	}

	prompt := discussionPrompt(promptInput{
		round:       round,
		agent:       Agent{ID: "agent-1", Role: models.AgentRoleStrategyGenerator},
		own:         own,
		peers:       []*models.Strategy{peer},
		conclusions: []conclusionEntry{{agentID: "agent-2", text: "cut the stop to 3%"}},
		market:      "600000.SH: last close 104.20",
	})

	assert.Contains(t, prompt, "round 2, debate mode")
	assert.Contains(t, prompt, "600000.SH: last close 104.20")
	assert.Contains(t, prompt, `"SMA Trend Follower" (score 61.5, rank 2, stage simulated)`)
	assert.Contains(t, prompt, "Hold long above the cross.")
	assert.Contains(t, prompt, `"RSI Reversal" by agent-2`)
	assert.Contains(t, prompt, "agent-2: cut the stop to 3%")
	assert.Contains(t, prompt, "challenge the opposing position")
}

func TestDiscussionPromptForSupportRole(t *testing.T) {
	round := &models.DiscussionRound{RoundNumber: 1, Mode: models.DiscussionModeReview}
	prompt := discussionPrompt(promptInput{
		round: round,
		agent: Agent{ID: "agent-3", Role: models.AgentRoleStrategyReviewer},
		peers: []*models.Strategy{
			{Name: "EMA Swing", AgentID: "agent-1", Rules: models.StrategyRules{Indicator: "ema_cross"}},
		},
	})

	assert.NotContains(t, prompt, "Your strategy")
	assert.Contains(t, prompt, "Competing strategies")
	assert.Contains(t, prompt, "Deliver your review")
}
