package arena

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/quant"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
)

// snapshotLookback is how many bars the market snapshot summarizes per
// symbol.
const snapshotLookback = 20

// waitFunc blocks at a yield point until the arena may proceed. The run
// loop passes its pause gate; a context error aborts the caller.
type waitFunc func(context.Context) error

// Orchestrator runs multi-agent discussion rounds. It is stateless between
// calls; everything it needs is read fresh from the stores so pauses and
// restarts resume cleanly.
type Orchestrator struct {
	stores *store.Stores
	stream *stream.Processor
	llm    llm.Client
	bars   BarSource
	nowFn  func() time.Time
	logger *slog.Logger
}

func newOrchestrator(stores *store.Stores, sp *stream.Processor, client llm.Client, bars BarSource, nowFn func() time.Time) *Orchestrator {
	return &Orchestrator{
		stores: stores,
		stream: sp,
		llm:    client,
		bars:   bars,
		nowFn:  nowFn,
		logger: slog.With("component", "arena.discussion"),
	}
}

// RunRounds executes discussion rounds up to the arena's round budget,
// checking wait before every round and every participant. Returns how many
// strategy rule edits the discussion applied.
func (o *Orchestrator) RunRounds(ctx context.Context, a *models.Arena, roster []Agent, wait waitFunc) (int, error) {
	edits := 0
	for i := 0; i < a.Config.DiscussionMaxRounds; i++ {
		if err := wait(ctx); err != nil {
			return edits, err
		}
		n, err := o.runRound(ctx, a, roster, wait)
		edits += n
		if err != nil {
			return edits, err
		}
	}
	return edits, nil
}

func (o *Orchestrator) runRound(ctx context.Context, a *models.Arena, roster []Agent, wait waitFunc) (int, error) {
	fresh, err := o.stores.Arenas.Get(ctx, a.ArenaID)
	if err != nil {
		return 0, err
	}
	active, err := o.stores.Strategies.ListActive(ctx, a.ArenaID)
	if err != nil {
		return 0, err
	}
	mode := a.Config.DiscussionMode
	if mode == "" {
		mode = models.DiscussionModeCollaboration
	}
	participants := pickParticipants(mode, activeRoster(roster, active))
	if len(participants) == 0 {
		return 0, fmt.Errorf("no participants available for %s round", mode)
	}

	round := &models.DiscussionRound{
		RoundID:      uuid.NewString(),
		ArenaID:      a.ArenaID,
		RoundNumber:  fresh.RoundsCompleted + 1,
		Mode:         mode,
		Participants: agentIDs(participants),
		Conclusions:  map[string]string{},
		StartedAt:    o.nowFn().UTC(),
	}
	if err := o.stores.Rounds.Create(ctx, round); err != nil {
		return 0, err
	}
	o.publishSystem(ctx, a.ArenaID, round.RoundID,
		fmt.Sprintf("round %d started: %s discussion with %d participants", round.RoundNumber, mode, len(participants)),
		map[string]any{"round_number": round.RoundNumber, "mode": string(mode)})

	market := o.marketSnapshot(ctx, a)
	var concluded []conclusionEntry
	edits, failures := 0, 0
	for _, agent := range participants {
		// rounds are cancellable between participants, never inside one
		if err := wait(ctx); err != nil {
			return edits, err
		}
		n, conclusion, err := o.runParticipant(ctx, a, round, agent, market, concluded)
		if err != nil {
			if ctx.Err() != nil {
				return edits, ctx.Err()
			}
			failures++
			o.logger.Error("Participant generation failed",
				"arena_id", a.ArenaID, "round_id", round.RoundID, "agent_id", agent.ID, "error", err)
			o.publishFailure(ctx, a.ArenaID, round.RoundID, agent, err)
			if errors.Is(err, stream.ErrStreamClosed) {
				return edits, err
			}
			continue
		}
		edits += n
		round.Conclusions[agent.ID] = conclusion
		concluded = append(concluded, conclusionEntry{agentID: agent.ID, text: conclusion})
	}
	if failures == len(participants) {
		return edits, fmt.Errorf("discussion round %d: every participant failed", round.RoundNumber)
	}

	now := o.nowFn().UTC()
	round.CompletedAt = &now
	if err := o.stores.Rounds.Update(ctx, round); err != nil {
		return edits, err
	}
	fresh, err = o.stores.Arenas.Get(ctx, a.ArenaID)
	if err != nil {
		return edits, err
	}
	fresh.RoundsCompleted++
	fresh.UpdatedAt = now
	if err := o.stores.Arenas.Update(ctx, fresh); err != nil {
		return edits, err
	}
	o.publishSystem(ctx, a.ArenaID, round.RoundID,
		fmt.Sprintf("round %d completed: %d conclusions, %d rule edits", round.RoundNumber, len(round.Conclusions), edits),
		map[string]any{"round_number": round.RoundNumber})
	return edits, nil
}

// runParticipant drives one agent through its thinking, argument and
// conclusion messages and applies any rule edit the argument carries.
func (o *Orchestrator) runParticipant(ctx context.Context, a *models.Arena, round *models.DiscussionRound, agent Agent, market string, concluded []conclusionEntry) (int, string, error) {
	strategies, err := o.stores.Strategies.ListActive(ctx, a.ArenaID)
	if err != nil {
		return 0, "", err
	}
	var own *models.Strategy
	peers := make([]*models.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s.AgentID == agent.ID {
			own = s
		} else {
			peers = append(peers, s)
		}
	}

	input := &llm.GenerateInput{
		ArenaID: a.ArenaID,
		AgentID: agent.ID,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt(agent, a)},
			{Role: llm.RoleUser, Content: discussionPrompt(promptInput{
				round:       round,
				agent:       agent,
				own:         own,
				peers:       peers,
				conclusions: concluded,
				market:      market,
			})},
		},
	}
	flush := func(delta string) error {
		return o.stream.Publish(ctx, &models.ThinkingMessage{
			ArenaID:   a.ArenaID,
			AgentID:   agent.ID,
			AgentRole: agent.Role,
			RoundID:   round.RoundID,
			Type:      models.MessageTypeThinking,
			Content:   delta,
		})
	}
	res, err := o.generate(ctx, input, flush)
	if err != nil {
		return 0, "", err
	}
	// an abandoned generation ends with a bare channel close; surface the
	// cancellation, not a bogus empty-argument error
	if err := ctx.Err(); err != nil {
		return 0, "", err
	}
	if strings.TrimSpace(res.Text) == "" {
		return 0, "", fmt.Errorf("agent %s produced no argument", agent.ID)
	}

	var usage map[string]any
	if res.InputTokens > 0 || res.OutputTokens > 0 {
		usage = map[string]any{"input_tokens": res.InputTokens, "output_tokens": res.OutputTokens}
	}
	if err := o.stream.Publish(ctx, &models.ThinkingMessage{
		ArenaID:   a.ArenaID,
		AgentID:   agent.ID,
		AgentRole: agent.Role,
		RoundID:   round.RoundID,
		Type:      models.MessageTypeArgument,
		Content:   res.Text,
		Metadata:  usage,
	}); err != nil {
		return 0, "", err
	}
	conclusion := extractConclusion(res.Text)
	if err := o.stream.Publish(ctx, &models.ThinkingMessage{
		ArenaID:   a.ArenaID,
		AgentID:   agent.ID,
		AgentRole: agent.Role,
		RoundID:   round.RoundID,
		Type:      models.MessageTypeConclusion,
		Content:   conclusion,
	}); err != nil {
		return 0, "", err
	}

	edits := 0
	if own != nil {
		if rules, ok := extractRules(res.Text); ok && rules != own.Rules {
			own.Rules = rules
			// a revised rule-set must re-validate from scratch
			own.Stage = models.StrategyStageBacktest
			own.UpdatedAt = o.nowFn().UTC()
			if err := o.stores.Strategies.Update(ctx, own); err != nil {
				return 0, conclusion, err
			}
			edits = 1
			o.publishSystem(ctx, a.ArenaID, round.RoundID,
				fmt.Sprintf("strategy %q revised by %s; returning to backtest stage", own.Name, agent.Name),
				map[string]any{"strategy_id": own.StrategyID})
			o.logger.Info("Strategy rules revised",
				"arena_id", a.ArenaID, "strategy_id", own.StrategyID, "agent_id", agent.ID)
		}
	}
	return edits, conclusion, nil
}

// pickParticipants selects the round's speakers. Debate stages one
// generator against the sharpest opposing seat, review hands the floor to
// the non-generator seats, collaboration includes everyone.
func pickParticipants(mode models.DiscussionMode, roster []Agent) []Agent {
	switch mode {
	case models.DiscussionModeDebate:
		var gen, opp *Agent
		for i := range roster {
			if roster[i].IsGenerator() {
				gen = &roster[i]
				break
			}
		}
		for _, pref := range []models.AgentRole{
			models.AgentRoleStrategyReviewer,
			models.AgentRoleRiskAnalyst,
			models.AgentRoleQuantResearcher,
			models.AgentRoleMarketSentiment,
		} {
			for i := range roster {
				if roster[i].Role == pref {
					opp = &roster[i]
					break
				}
			}
			if opp != nil {
				break
			}
		}
		if gen == nil || opp == nil {
			if len(roster) > 2 {
				return roster[:2]
			}
			return roster
		}
		return []Agent{*gen, *opp}
	case models.DiscussionModeReview:
		var reviewers []Agent
		for _, a := range roster {
			if !a.IsGenerator() {
				reviewers = append(reviewers, a)
			}
		}
		if len(reviewers) == 0 {
			return roster
		}
		return reviewers
	default:
		return roster
	}
}

// activeRoster drops generators whose strategy has been eliminated; support
// seats always stay.
func activeRoster(roster []Agent, active []*models.Strategy) []Agent {
	owned := make(map[string]bool, len(active))
	for _, s := range active {
		owned[s.AgentID] = true
	}
	out := make([]Agent, 0, len(roster))
	for _, a := range roster {
		if a.IsGenerator() && !owned[a.ID] {
			continue
		}
		out = append(out, a)
	}
	return out
}

func agentIDs(agents []Agent) []string {
	ids := make([]string, len(agents))
	for i, a := range agents {
		ids[i] = a.ID
	}
	return ids
}

// marketSnapshot renders a compact per-symbol summary of the recent tape
// for the prompts. Unavailable symbols are skipped, never fatal.
func (o *Orchestrator) marketSnapshot(ctx context.Context, a *models.Arena) string {
	to := o.nowFn()
	from := to.AddDate(0, 0, -a.Config.BacktestWindowDays)
	var b strings.Builder
	for _, symbol := range a.Config.Symbols {
		bars, err := o.bars.DailyBars(ctx, symbol, models.FormatTradeDate(from), models.FormatTradeDate(to))
		if err != nil {
			o.logger.Warn("Market snapshot unavailable", "symbol", symbol, "error", err)
			continue
		}
		if len(bars) == 0 {
			continue
		}
		last := bars[len(bars)-1]
		fmt.Fprintf(&b, "%s: last close %.2f", symbol, last.Close)
		if len(bars) > snapshotLookback {
			closes := make([]float64, 0, snapshotLookback+1)
			for _, bar := range bars[len(bars)-snapshotLookback-1:] {
				closes = append(closes, bar.Close)
			}
			change := (last.Close/closes[0] - 1) * 100
			vol := quant.StdDev(quant.Returns(closes)) * 100
			fmt.Fprintf(&b, ", %d-day change %+.1f%%, daily vol %.1f%%", snapshotLookback, change, vol)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (o *Orchestrator) publishSystem(ctx context.Context, arenaID, roundID, content string, metadata map[string]any) {
	err := o.stream.Publish(ctx, &models.ThinkingMessage{
		ArenaID:  arenaID,
		RoundID:  roundID,
		Type:     models.MessageTypeSystem,
		Content:  content,
		Metadata: metadata,
	})
	if err != nil && !errors.Is(err, stream.ErrStreamClosed) {
		o.logger.Warn("Publishing system message failed", "arena_id", arenaID, "error", err)
	}
}

func (o *Orchestrator) publishFailure(ctx context.Context, arenaID, roundID string, agent Agent, genErr error) {
	err := o.stream.Publish(ctx, &models.ThinkingMessage{
		ArenaID:   arenaID,
		AgentID:   agent.ID,
		AgentRole: agent.Role,
		RoundID:   roundID,
		Type:      models.MessageTypeError,
		Content:   genErr.Error(),
	})
	if err != nil && !errors.Is(err, stream.ErrStreamClosed) {
		o.logger.Warn("Publishing error message failed", "arena_id", arenaID, "error", err)
	}
}
