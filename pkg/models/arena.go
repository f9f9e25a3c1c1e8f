package models

import "time"

// ArenaState is the lifecycle state of an Arena aggregate.
type ArenaState string

const (
	ArenaStateCreated      ArenaState = "created"
	ArenaStateInitializing ArenaState = "initializing"
	ArenaStateDiscussing   ArenaState = "discussing"
	ArenaStateBacktesting  ArenaState = "backtesting"
	ArenaStateSimulating   ArenaState = "simulating"
	ArenaStateEvaluating   ArenaState = "evaluating"
	ArenaStatePaused       ArenaState = "paused"
	ArenaStateCompleted    ArenaState = "completed"
	ArenaStateFailed       ArenaState = "failed"
)

// IsValid checks if the arena state is valid
func (s ArenaState) IsValid() bool {
	switch s {
	case ArenaStateCreated, ArenaStateInitializing, ArenaStateDiscussing,
		ArenaStateBacktesting, ArenaStateSimulating, ArenaStateEvaluating,
		ArenaStatePaused, ArenaStateCompleted, ArenaStateFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the arena has finished for good.
func (s ArenaState) IsTerminal() bool {
	return s == ArenaStateCompleted || s == ArenaStateFailed
}

// IsActive reports the states the run loop cycles through. Paused and the
// terminals are not active.
func (s ArenaState) IsActive() bool {
	switch s {
	case ArenaStateInitializing, ArenaStateDiscussing, ArenaStateBacktesting,
		ArenaStateSimulating, ArenaStateEvaluating:
		return true
	default:
		return false
	}
}

// AgentRole fixes an agent's behavior inside discussions.
type AgentRole string

const (
	AgentRoleStrategyGenerator AgentRole = "strategy_generator"
	AgentRoleStrategyReviewer  AgentRole = "strategy_reviewer"
	AgentRoleRiskAnalyst       AgentRole = "risk_analyst"
	AgentRoleMarketSentiment   AgentRole = "market_sentiment"
	AgentRoleQuantResearcher   AgentRole = "quant_researcher"
)

// IsValid checks if the agent role is valid
func (r AgentRole) IsValid() bool {
	switch r {
	case AgentRoleStrategyGenerator, AgentRoleStrategyReviewer, AgentRoleRiskAnalyst,
		AgentRoleMarketSentiment, AgentRoleQuantResearcher:
		return true
	default:
		return false
	}
}

// StrategyStage is the competition stage a strategy is being scored in.
type StrategyStage string

const (
	StrategyStageBacktest  StrategyStage = "backtest"
	StrategyStageSimulated StrategyStage = "simulated"
	StrategyStageLive      StrategyStage = "live"
)

// Next returns the following stage, or the same stage at the end of the
// progression.
func (s StrategyStage) Next() StrategyStage {
	switch s {
	case StrategyStageBacktest:
		return StrategyStageSimulated
	case StrategyStageSimulated:
		return StrategyStageLive
	default:
		return s
	}
}

// DiscussionMode selects how round participants interact.
type DiscussionMode string

const (
	DiscussionModeDebate        DiscussionMode = "debate"
	DiscussionModeCollaboration DiscussionMode = "collaboration"
	DiscussionModeReview        DiscussionMode = "review"
)

// IsValid checks if the discussion mode is valid
func (m DiscussionMode) IsValid() bool {
	return m == DiscussionModeDebate || m == DiscussionModeCollaboration || m == DiscussionModeReview
}

// MessageType classifies a thinking-stream message.
type MessageType string

const (
	MessageTypeThinking     MessageType = "thinking"
	MessageTypeArgument     MessageType = "argument"
	MessageTypeConclusion   MessageType = "conclusion"
	MessageTypeIntervention MessageType = "intervention"
	MessageTypeSystem       MessageType = "system"
	MessageTypeError        MessageType = "error"
)

// EvaluationPeriod is the cadence an evaluation ran under.
type EvaluationPeriod string

const (
	EvaluationPeriodDaily   EvaluationPeriod = "daily"
	EvaluationPeriodWeekly  EvaluationPeriod = "weekly"
	EvaluationPeriodMonthly EvaluationPeriod = "monthly"
	// EvaluationPeriodManual marks operator-initiated eliminations
	EvaluationPeriodManual EvaluationPeriod = "manual"
)

// IsValid checks if the evaluation period is valid
func (p EvaluationPeriod) IsValid() bool {
	switch p {
	case EvaluationPeriodDaily, EvaluationPeriodWeekly, EvaluationPeriodMonthly, EvaluationPeriodManual:
		return true
	default:
		return false
	}
}

// EliminationRatio is the tail fraction removed at this cadence.
func (p EvaluationPeriod) EliminationRatio() float64 {
	switch p {
	case EvaluationPeriodWeekly:
		return 0.20
	case EvaluationPeriodMonthly:
		return 0.10
	default:
		return 0
	}
}

// ArenaConfig is the configuration an arena is created with. Discussion
// mode and round budget can still be steered before a run starts; the rest
// is fixed for the arena's lifetime.
type ArenaConfig struct {
	AgentCount          int            `json:"agent_count"`
	MinActiveStrategies int            `json:"min_active_strategies"`
	DiscussionMaxRounds int            `json:"discussion_max_rounds"`
	DiscussionMode      DiscussionMode `json:"discussion_mode,omitempty"`
	Symbols             []string       `json:"symbols,omitempty"`
	BacktestWindowDays  int            `json:"backtest_window_days,omitempty"`
}

// Arena is the tournament aggregate. Children (strategies, rounds, messages)
// are stored by id and reached through the store, never by pointer.
type Arena struct {
	ArenaID         string      `json:"arena_id"`
	Name            string      `json:"name"`
	Config          ArenaConfig `json:"config"`
	State           ArenaState  `json:"state"`
	ResumeState     ArenaState  `json:"resume_state,omitempty"`
	RoundsCompleted int         `json:"rounds_completed"`
	EvaluationsRun  int         `json:"evaluations_run"`
	LastError       string      `json:"last_error,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// StrategyRules is the typed rule-set the scoring engine evaluates.
type StrategyRules struct {
	Indicator   string  `json:"indicator"`
	FastPeriod  int     `json:"fast_period,omitempty"`
	SlowPeriod  int     `json:"slow_period,omitempty"`
	Period      int     `json:"period,omitempty"`
	EntryLevel  float64 `json:"entry_level,omitempty"`
	ExitLevel   float64 `json:"exit_level,omitempty"`
	StopLossPct float64 `json:"stop_loss_pct,omitempty"`
}

// Strategy is a rule-set competing inside an Arena.
type Strategy struct {
	StrategyID         string        `json:"strategy_id"`
	ArenaID            string        `json:"arena_id"`
	Name               string        `json:"name"`
	AgentID            string        `json:"agent_id"`
	AgentRole          AgentRole     `json:"agent_role"`
	Stage              StrategyStage `json:"stage"`
	IsActive           bool          `json:"is_active"`
	CurrentScore       float64       `json:"current_score"`
	CurrentRank        int           `json:"current_rank"`
	Logic              string        `json:"logic,omitempty"`
	Rules              StrategyRules `json:"rules"`
	ProfitabilityScore float64       `json:"profitability_score"`
	RiskScore          float64       `json:"risk_score"`
	StabilityScore     float64       `json:"stability_score"`
	AdaptabilityScore  float64       `json:"adaptability_score"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// DiscussionRound is one multi-agent exchange inside an Arena.
type DiscussionRound struct {
	RoundID      string            `json:"round_id"`
	ArenaID      string            `json:"arena_id"`
	RoundNumber  int               `json:"round_number"`
	Mode         DiscussionMode    `json:"mode"`
	Participants []string          `json:"participants"`
	Conclusions  map[string]string `json:"conclusions,omitempty"`
	StartedAt    time.Time         `json:"started_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}

// ThinkingMessage is one append-only entry in an arena's live stream.
// Sequence is assigned at publish time and is strictly increasing per arena.
type ThinkingMessage struct {
	ID        string         `json:"id"`
	ArenaID   string         `json:"arena_id"`
	AgentID   string         `json:"agent_id,omitempty"`
	AgentRole AgentRole      `json:"agent_role,omitempty"`
	RoundID   string         `json:"round_id,omitempty"`
	Type      MessageType    `json:"type"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Sequence  int64          `json:"sequence"`
	Timestamp time.Time      `json:"timestamp"`
}

// EliminationEvent records one strategy removal.
type EliminationEvent struct {
	ID         int64            `json:"id"`
	ArenaID    string           `json:"arena_id"`
	Period     EvaluationPeriod `json:"period"`
	StrategyID string           `json:"strategy_id"`
	Score      float64          `json:"score"`
	Reason     string           `json:"reason"`
	Timestamp  time.Time        `json:"timestamp"`
}

// RankingEntry is one leaderboard row captured by an evaluation.
type RankingEntry struct {
	StrategyID string  `json:"strategy_id"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	IsActive   bool    `json:"is_active"`
}

// EvaluationReport is the persisted summary of one evaluator pass.
type EvaluationReport struct {
	ID              string           `json:"id"`
	ArenaID         string           `json:"arena_id"`
	Period          EvaluationPeriod `json:"period"`
	Evaluated       int              `json:"evaluated"`
	Eliminated      int              `json:"eliminated"`
	MinFloorApplied bool             `json:"min_floor_applied"`
	Rankings        []RankingEntry   `json:"rankings"`
	CreatedAt       time.Time        `json:"created_at"`
}

// CreateArenaRequest contains fields for creating a new arena
type CreateArenaRequest struct {
	Name   string      `json:"name"`
	Config ArenaConfig `json:"config"`
}

// ArenaStatusResponse is the status summary surface of one arena.
type ArenaStatusResponse struct {
	*Arena
	ActiveStrategies int `json:"active_strategies"`
	TotalStrategies  int `json:"total_strategies"`
	CurrentRound     int `json:"current_round"`
}

// InterventionAction selects a human intervention on a running discussion.
type InterventionAction string

const (
	InterventionInjectMessage     InterventionAction = "inject_message"
	InterventionAdjustScore       InterventionAction = "adjust_score"
	InterventionEliminateStrategy InterventionAction = "eliminate_strategy"
)

// InterventionRequest is a human action applied to an arena.
type InterventionRequest struct {
	Action     InterventionAction `json:"action"`
	Content    string             `json:"content,omitempty"`
	StrategyID string             `json:"strategy_id,omitempty"`
	Delta      float64            `json:"delta,omitempty"`
}

// EvaluateRequest triggers one evaluation pass.
type EvaluateRequest struct {
	Period EvaluationPeriod `json:"period"`
}

// StartDiscussionRequest optionally overrides mode and round budget.
type StartDiscussionRequest struct {
	Mode      DiscussionMode `json:"mode,omitempty"`
	MaxRounds int            `json:"max_rounds,omitempty"`
}
