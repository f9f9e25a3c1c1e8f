package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/pluginsetting"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// PluginSettingStore is an Ent-backed implementation of store.PluginSettingStore.
type PluginSettingStore struct {
	client *ent.Client
}

// NewPluginSettingStore creates a new plugin setting store on the given client.
func NewPluginSettingStore(client *ent.Client) *PluginSettingStore {
	return &PluginSettingStore{client: client}
}

// Put inserts or replaces the setting for a plugin. Settings change at
// operator pace, so update-then-create is contention-safe enough here.
func (s *PluginSettingStore) Put(_ context.Context, setting *models.PluginSetting) error {
	if setting == nil || setting.PluginName == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	err := s.client.PluginSetting.UpdateOneID(setting.PluginName).
		SetScheduleEnabled(setting.ScheduleEnabled).
		SetUpdatedAt(setting.UpdatedAt).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update plugin setting: %w", err)
	}

	err = s.client.PluginSetting.Create().
		SetID(setting.PluginName).
		SetScheduleEnabled(setting.ScheduleEnabled).
		SetUpdatedAt(setting.UpdatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create plugin setting: %w", err)
	}
	return nil
}

// Get retrieves the setting for a plugin. Returns ErrNotFound when no
// override has been stored.
func (s *PluginSettingStore) Get(ctx context.Context, pluginName string) (*models.PluginSetting, error) {
	row, err := s.client.PluginSetting.Get(ctx, pluginName)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plugin setting: %w", err)
	}
	return settingFromRow(row), nil
}

// List retrieves all stored settings ordered by plugin name.
func (s *PluginSettingStore) List(ctx context.Context) ([]*models.PluginSetting, error) {
	rows, err := s.client.PluginSetting.Query().
		Order(ent.Asc(pluginsetting.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plugin settings: %w", err)
	}

	result := make([]*models.PluginSetting, 0, len(rows))
	for _, row := range rows {
		result = append(result, settingFromRow(row))
	}
	return result, nil
}

func settingFromRow(row *ent.PluginSetting) *models.PluginSetting {
	return &models.PluginSetting{
		PluginName:      row.ID,
		ScheduleEnabled: row.ScheduleEnabled,
		UpdatedAt:       row.UpdatedAt,
	}
}

// Verify interface compliance at compile time.
var _ store.PluginSettingStore = (*PluginSettingStore)(nil)
