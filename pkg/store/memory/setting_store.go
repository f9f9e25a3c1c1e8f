package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// PluginSettingStore is an in-memory implementation of store.PluginSettingStore.
type PluginSettingStore struct {
	mu   sync.RWMutex
	data map[string]*models.PluginSetting // keyed by plugin name
}

// NewPluginSettingStore creates a new in-memory plugin setting store.
func NewPluginSettingStore() *PluginSettingStore {
	return &PluginSettingStore{
		data: make(map[string]*models.PluginSetting),
	}
}

// Put inserts or replaces the setting for a plugin.
func (s *PluginSettingStore) Put(_ context.Context, setting *models.PluginSetting) error {
	if setting == nil || setting.PluginName == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := *setting
	s.data[setting.PluginName] = &c
	return nil
}

// Get retrieves the setting for a plugin. Returns ErrNotFound when no
// override has been stored.
func (s *PluginSettingStore) Get(_ context.Context, pluginName string) (*models.PluginSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.data[pluginName]
	if !exists {
		return nil, store.ErrNotFound
	}
	c := *v
	return &c, nil
}

// List retrieves all stored settings ordered by plugin name.
func (s *PluginSettingStore) List(_ context.Context) ([]*models.PluginSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.PluginSetting, 0, len(s.data))
	for _, v := range s.data {
		c := *v
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PluginName < result[j].PluginName
	})
	return result, nil
}

// Verify interface compliance at compile time.
var _ store.PluginSettingStore = (*PluginSettingStore)(nil)
