package scheduler

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// incrementalLookbackDays bounds the search for the most recent trading day
// when an incremental sync fires on a holiday or weekend.
const incrementalLookbackDays = 30

// registerCronTriggers builds the cron table from the registry's static
// schedules. The runtime schedule_enabled override is consulted at fire
// time, not here, so toggling a plugin takes effect without restart.
func (s *Scheduler) registerCronTriggers() error {
	s.cron = cron.New()
	for _, p := range s.registry.List() {
		if p.Schedule.Frequency == config.ScheduleFrequencyManual {
			continue
		}
		spec, err := cronSpec(p.Schedule)
		if err != nil {
			return fmt.Errorf("plugin %s: %w", p.Name, err)
		}
		name := p.Name
		if _, err := s.cron.AddFunc(spec, func() { s.cronFire(name) }); err != nil {
			return fmt.Errorf("registering cron trigger for plugin %s: %w", name, err)
		}
		s.logger.Info("Registered cron trigger", "plugin", name, "spec", spec)
	}
	return nil
}

// cronSpec renders a plugin schedule as a standard 5-field cron expression.
func cronSpec(sc config.ScheduleConfig) (string, error) {
	hour, minute, err := config.ParseWallClock(sc.Time)
	if err != nil {
		return "", err
	}
	if sc.Frequency == config.ScheduleFrequencyWeekly {
		return fmt.Sprintf("%d %d * * %d", minute, hour, sc.DayOfWeek), nil
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

// cronFire runs one scheduled trigger. Failures are logged, never fatal:
// the next tick tries again.
func (s *Scheduler) cronFire(pluginName string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	log := s.logger.With("plugin", pluginName, "trigger", models.TriggerTypeScheduled)

	p, err := s.registry.Get(pluginName)
	if err != nil {
		log.Error("Cron trigger references unknown plugin", "error", err)
		return
	}
	enabled, err := s.effectiveScheduleEnabled(ctx, p)
	if err != nil {
		log.Error("Checking schedule override failed", "error", err)
		return
	}
	if !enabled {
		log.Debug("Cron trigger skipped, schedule disabled")
		return
	}
	if p.CalendarBound {
		today := models.FormatTradeDate(s.now())
		open, err := s.cal.IsTradingDay(ctx, today)
		if err != nil {
			log.Error("Trading-day check failed", "error", err)
			return
		}
		if !open {
			log.Info("Cron trigger skipped, not a trading day", "date", today)
			return
		}
	}

	exec, err := s.createExecution(ctx, models.TriggerTypeScheduled, "", []*plugin.Plugin{p}, models.TaskTypeIncremental, nil, false)
	if err != nil {
		log.Error("Cron trigger failed", "error", err)
		return
	}
	log.Info("Cron trigger fired", "execution_id", exec.ExecutionID)
}

// TriggerManual starts a sync for one plugin. Trade dates are accepted for
// backfill only; incremental resolves its own date and full walks the
// declared window.
func (s *Scheduler) TriggerManual(ctx context.Context, req models.SyncRequest) (*models.BatchExecution, error) {
	if !s.started {
		return nil, ErrNotStarted
	}
	if req.PluginName == "" {
		return nil, fmt.Errorf("%w: plugin_name is required", ErrInvalidRequest)
	}
	// Disabled plugins are dropped at registry construction, so they read
	// as not found here.
	p, err := s.registry.Get(req.PluginName)
	if err != nil {
		return nil, err
	}

	taskType := req.TaskType
	if taskType == "" {
		taskType = models.TaskTypeIncremental
	}
	if !taskType.IsValid() {
		return nil, fmt.Errorf("%w: unknown task_type %q", ErrInvalidRequest, req.TaskType)
	}

	dates, err := normalizeDates(req.TradeDates)
	if err != nil {
		return nil, err
	}
	if err := checkDatesForTaskType(taskType, dates, p.Dated()); err != nil {
		return nil, err
	}

	return s.createExecution(ctx, models.TriggerTypeManual, "", []*plugin.Plugin{p}, taskType, dates, req.ForceOverwrite)
}

// TriggerGroup starts a sync for a configured plugin group. Disabled
// members are skipped; the remaining plugins run in dependency order.
func (s *Scheduler) TriggerGroup(ctx context.Context, groupName string, req models.GroupTriggerRequest) (*models.BatchExecution, error) {
	if !s.started {
		return nil, ErrNotStarted
	}
	group, ok := s.groups[groupName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", config.ErrGroupNotFound, groupName)
	}

	taskType := req.TaskType
	if taskType == "" && group.TaskType != "" {
		taskType = models.TaskType(group.TaskType)
	}
	if taskType == "" {
		taskType = models.TaskTypeIncremental
	}
	if !taskType.IsValid() {
		return nil, fmt.Errorf("%w: unknown task_type %q", ErrInvalidRequest, taskType)
	}

	var plugins []*plugin.Plugin
	anyDated := false
	for _, name := range group.Plugins {
		p, err := s.registry.Get(name)
		if err != nil {
			// Configured but disabled since, so not registered. The rest of
			// the group still runs.
			s.logger.Info("Skipping unregistered plugin in group trigger",
				"group", groupName, "plugin", name)
			continue
		}
		plugins = append(plugins, p)
		anyDated = anyDated || p.Dated()
	}
	if len(plugins) == 0 {
		return nil, fmt.Errorf("%w: group %s has no enabled plugins", ErrInvalidRequest, groupName)
	}

	dates, err := normalizeDates(req.TradeDates)
	if err != nil {
		return nil, err
	}
	if err := checkDatesForTaskType(taskType, dates, anyDated); err != nil {
		return nil, err
	}

	return s.createExecution(ctx, models.TriggerTypeGroup, groupName, plugins, taskType, dates, req.ForceOverwrite)
}

// normalizeDates validates, deduplicates, and sorts a trade date list.
func normalizeDates(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, d := range in {
		if _, err := models.ParseTradeDate(d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	slices.Sort(out)
	return out, nil
}

func checkDatesForTaskType(taskType models.TaskType, dates []string, dated bool) error {
	if taskType == models.TaskTypeBackfill {
		if dated && len(dates) == 0 {
			return fmt.Errorf("%w: backfill requires trade_dates", ErrInvalidRequest)
		}
		return nil
	}
	if len(dates) > 0 {
		return fmt.Errorf("%w: trade_dates only apply to backfill", ErrInvalidRequest)
	}
	return nil
}

// createExecution decomposes a trigger into sub-task units and persists the
// new execution in pending state. Workers pick the units up from the live
// index.
func (s *Scheduler) createExecution(ctx context.Context, trigger models.TriggerType, groupName string, plugins []*plugin.Plugin, taskType models.TaskType, dates []string, force bool) (*models.BatchExecution, error) {
	ordered, err := s.topoSort(plugins)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	units, err := s.decompose(ctx, ordered, taskType, dates, force)
	if err != nil {
		return nil, err
	}
	return s.persistExecution(ctx, trigger, groupName, units)
}

// topoSort maps plugin names through the registry's dependency order.
func (s *Scheduler) topoSort(plugins []*plugin.Plugin) ([]*plugin.Plugin, error) {
	names := make([]string, len(plugins))
	for i, p := range plugins {
		names[i] = p.Name
	}
	ordered, err := s.registry.TopoOrder(names)
	if err != nil {
		return nil, err
	}
	out := make([]*plugin.Plugin, 0, len(ordered))
	for _, name := range ordered {
		p, err := s.registry.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// decompose expands (plugins × task type × dates) into sub-task units.
// Backfill clusters units date-major so each date's dependency chain
// completes before the next date starts filling; within a date the plugins
// keep their topological order. Date-less plugins always contribute exactly
// one unit.
func (s *Scheduler) decompose(ctx context.Context, ordered []*plugin.Plugin, taskType models.TaskType, dates []string, force bool) ([]*taskState, error) {
	var units []*taskState

	switch taskType {
	case models.TaskTypeIncremental:
		for _, p := range ordered {
			if !p.Dated() {
				units = append(units, newTaskUnit(p, taskType, nil, nil, force))
				continue
			}
			d, err := s.incrementalDate(ctx, p)
			if err != nil {
				return nil, err
			}
			units = append(units, newDatedUnit(p, taskType, d, force))
		}

	case models.TaskTypeBackfill:
		for _, p := range ordered {
			if !p.Dated() {
				units = append(units, newTaskUnit(p, taskType, nil, nil, force))
			}
		}
		for _, d := range dates {
			for _, p := range ordered {
				if p.Dated() {
					units = append(units, newDatedUnit(p, taskType, d, force))
				}
			}
		}

	case models.TaskTypeFull:
		var from, to string
		var rangeDates []string
		for _, p := range ordered {
			if !p.Dated() {
				units = append(units, newTaskUnit(p, taskType, nil, nil, force))
				continue
			}
			if rangeDates == nil {
				var err error
				from, to, rangeDates, err = s.fullRange(ctx)
				if err != nil {
					return nil, err
				}
			}
			units = append(units, newRangeUnit(p, taskType, from, to, rangeDates, force))
		}
	}
	return units, nil
}

// incrementalDate resolves the single date an incremental sync targets:
// today, or the most recent trading day for calendar-bound plugins.
func (s *Scheduler) incrementalDate(ctx context.Context, p *plugin.Plugin) (string, error) {
	today := models.FormatTradeDate(s.now())
	if !p.CalendarBound {
		return today, nil
	}
	d, err := s.cal.MostRecentTradingDay(ctx, today, incrementalLookbackDays)
	if err != nil {
		return "", fmt.Errorf("resolving latest trading day for %s: %w", p.Name, err)
	}
	return d, nil
}

// fullRange enumerates the trading days of the configured history window.
func (s *Scheduler) fullRange(ctx context.Context) (from, to string, dates []string, err error) {
	now := s.now()
	to = models.FormatTradeDate(now)
	from = models.FormatTradeDate(now.AddDate(0, 0, -s.cfg.MissingWindowDays))
	dates, err = s.cal.TradingDaysBetween(ctx, from, to)
	if err != nil {
		return "", "", nil, fmt.Errorf("enumerating trading days: %w", err)
	}
	if len(dates) == 0 {
		return "", "", nil, fmt.Errorf("%w: no trading days between %s and %s", ErrInvalidRequest, from, to)
	}
	return from, to, dates, nil
}

// persistExecution writes the execution and its sub-tasks, then registers
// the run for dispatch.
func (s *Scheduler) persistExecution(ctx context.Context, trigger models.TriggerType, groupName string, units []*taskState) (*models.BatchExecution, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: nothing to ingest", ErrInvalidRequest)
	}

	now := s.now()
	exec := &models.BatchExecution{
		ExecutionID:  uuid.NewString(),
		TriggerType:  trigger,
		GroupName:    groupName,
		DateRange:    dateRangeOf(units),
		Status:       models.ExecutionStatusPending,
		TotalPlugins: len(units),
		StartedAt:    now,
	}

	subs := make([]*models.SubTask, len(units))
	for i, u := range units {
		u.base.TaskID = uuid.NewString()
		u.base.ExecutionID = exec.ExecutionID
		// CreatedAt offsets keep the persisted order identical to the
		// decomposition order.
		u.base.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		subs[i] = u.base
	}

	if err := s.executions.Create(ctx, exec); err != nil {
		return nil, fmt.Errorf("persisting execution: %w", err)
	}
	if err := s.subtasks.CreateBatch(ctx, subs); err != nil {
		if derr := s.executions.Delete(context.Background(), exec.ExecutionID); derr != nil {
			s.logger.Error("Orphaned execution row after sub-task persist failure",
				"execution_id", exec.ExecutionID, "error", derr)
		}
		return nil, fmt.Errorf("persisting sub-tasks: %w", err)
	}

	s.registerRun(newExecRun(exec.ExecutionID, units))

	s.logger.Info("Execution created",
		"execution_id", exec.ExecutionID,
		"trigger", trigger,
		"group", groupName,
		"sub_tasks", len(units))
	return exec, nil
}

// dateRangeOf collects the distinct dates the units reference. Range units
// contribute their endpoints only, so a full sync does not inflate the
// execution row.
func dateRangeOf(units []*taskState) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(d string) {
		if d == "" {
			return
		}
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	for _, u := range units {
		add(paramString(u.base.Parameters, "trade_date"))
		add(paramString(u.base.Parameters, "start_date"))
		add(paramString(u.base.Parameters, "end_date"))
	}
	slices.Sort(out)
	return out
}

func paramString(params map[string]any, key string) string {
	if params == nil {
		return ""
	}
	v, _ := params[key].(string)
	return v
}
