package config

// ArenaDefaults are the fallback values applied to arena creation requests
// that leave fields unset, plus the evaluation timer schedule.
type ArenaDefaults struct {
	// AgentCount is the default number of agents per arena. Valid range is
	// 3 to 10 inclusive.
	AgentCount int `yaml:"agent_count"`

	// MinActiveStrategies is the elimination floor.
	MinActiveStrategies int `yaml:"min_active_strategies"`

	// DiscussionMaxRounds bounds one discussion phase.
	DiscussionMaxRounds int `yaml:"discussion_max_rounds"`

	// BacktestWindowDays is the market-data lookback used for scoring.
	BacktestWindowDays int `yaml:"backtest_window_days"`

	// DailyEvaluationTime is the wall-clock "HH:MM" of the daily evaluator.
	DailyEvaluationTime string `yaml:"daily_evaluation_time"`

	// WeeklyEvaluationDay is the day of week (0=Sunday) of the weekly
	// evaluator.
	WeeklyEvaluationDay int `yaml:"weekly_evaluation_day"`

	// MonthlyEvaluationDay is the day of month of the monthly evaluator.
	MonthlyEvaluationDay int `yaml:"monthly_evaluation_day"`

	// PortfolioAnalysisTime is the wall-clock "HH:MM" of the portfolio daily
	// analysis job. Independent of the evaluator timers.
	PortfolioAnalysisTime string `yaml:"portfolio_analysis_time"`

	// StreamQueueSize bounds each SSE subscriber's queue before the
	// subscriber is dropped.
	StreamQueueSize int `yaml:"stream_queue_size"`
}

// DefaultArenaDefaults returns the built-in arena defaults.
func DefaultArenaDefaults() *ArenaDefaults {
	return &ArenaDefaults{
		AgentCount:            5,
		MinActiveStrategies:   3,
		DiscussionMaxRounds:   3,
		BacktestWindowDays:    120,
		DailyEvaluationTime:   "18:00",
		WeeklyEvaluationDay:   5,
		MonthlyEvaluationDay:  1,
		PortfolioAnalysisTime: "18:00",
		StreamQueueSize:       256,
	}
}
