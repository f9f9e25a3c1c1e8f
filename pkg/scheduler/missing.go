package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// effectiveScheduleEnabled resolves a plugin's schedule flag. The persisted
// runtime override wins over the static declaration.
func (s *Scheduler) effectiveScheduleEnabled(ctx context.Context, p *plugin.Plugin) (bool, error) {
	setting, err := s.settings.Get(ctx, p.Name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return p.ScheduleEnabled, nil
		}
		return false, err
	}
	return setting.ScheduleEnabled, nil
}

// SetScheduleEnabled persists a runtime schedule override for one plugin.
// It takes effect at the next cron fire; no restart needed.
func (s *Scheduler) SetScheduleEnabled(ctx context.Context, pluginName string, enabled bool) (*models.PluginSetting, error) {
	if _, err := s.registry.Get(pluginName); err != nil {
		return nil, err
	}
	setting := &models.PluginSetting{
		PluginName:      pluginName,
		ScheduleEnabled: enabled,
		UpdatedAt:       s.now(),
	}
	if err := s.settings.Put(ctx, setting); err != nil {
		return nil, err
	}
	s.logger.Info("Schedule override saved", "plugin", pluginName, "schedule_enabled", enabled)
	return setting, nil
}

// MissingData reports, per daily plugin, the trading days of the window
// with no rows present. windowDays <= 0 uses the configured window. Plugins
// that are disabled, date-less, or not on a daily schedule are not listed;
// empty slices mean fully covered.
func (s *Scheduler) MissingData(ctx context.Context, windowDays int) (*models.MissingDataReport, error) {
	if windowDays <= 0 {
		windowDays = s.cfg.MissingWindowDays
	}
	now := s.now()
	from := models.FormatTradeDate(now.AddDate(0, 0, -windowDays))
	to := models.FormatTradeDate(now)
	tradingDays, err := s.cal.TradingDaysBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("enumerating trading days: %w", err)
	}

	report := &models.MissingDataReport{
		WindowDays: windowDays,
		Missing:    make(map[string][]string),
	}
	for _, p := range s.registry.List() {
		include, err := s.detectorCovers(ctx, p)
		if err != nil {
			return nil, err
		}
		if !include {
			continue
		}
		present, err := s.reader.PresentDates(ctx, p.Table, p.DateParam)
		if err != nil {
			return nil, fmt.Errorf("listing present dates of %s: %w", p.Table, err)
		}
		set := make(map[string]struct{}, len(present))
		for _, d := range present {
			set[d] = struct{}{}
		}
		missing := []string{}
		for _, d := range tradingDays {
			if _, ok := set[d]; !ok {
				missing = append(missing, d)
			}
		}
		report.Missing[p.Name] = missing
	}
	return report, nil
}

// detectorCovers limits the report to daily plugins with a date dimension
// and an effective schedule. The registry only holds enabled plugins.
func (s *Scheduler) detectorCovers(ctx context.Context, p *plugin.Plugin) (bool, error) {
	if !p.Dated() || !p.Daily() {
		return false, nil
	}
	return s.effectiveScheduleEnabled(ctx, p)
}

// PluginStatuses summarizes every registered plugin for the overview
// endpoint: effective schedule flag, latest loaded date, and how many
// trading days the detector window is missing.
func (s *Scheduler) PluginStatuses(ctx context.Context) ([]*models.PluginStatus, error) {
	report, err := s.MissingData(ctx, 0)
	if err != nil {
		return nil, err
	}
	plugins := s.registry.List()
	out := make([]*models.PluginStatus, 0, len(plugins))
	for _, p := range plugins {
		enabled, err := s.effectiveScheduleEnabled(ctx, p)
		if err != nil {
			return nil, err
		}
		st := &models.PluginStatus{
			Name:               p.Name,
			Table:              p.Table,
			Role:               string(p.Role),
			Category:           p.Category,
			Frequency:          string(p.Schedule.Frequency),
			RateLimitPerMinute: p.RateLimitPerMinute,
			ScheduleEnabled:    enabled,
			MissingCount:       len(report.Missing[p.Name]),
		}
		if p.Dated() {
			latest, err := s.reader.LatestDate(ctx, p.Table, p.DateParam)
			if err != nil {
				s.logger.Debug("Reading latest date failed", "plugin", p.Name, "error", err)
			} else {
				st.LatestDataDate = latest
			}
		}
		out = append(out, st)
	}
	return out, nil
}
