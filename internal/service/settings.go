// Settings access: opaque JSON payloads keyed by name, last write wins.
package service

import (
	"github.com/notespend/notespend/pkg/types"
)

// PutSetting stores value under key, replacing any previous payload.
func (s *Service) PutSetting(key string, value any) error {
	coll, err := s.store.Collection(types.SettingsCollection)
	if err != nil {
		return err
	}
	return coll.Put(&types.Setting{Key: key, Value: value})
}

// GetSetting returns the payload stored under key, or ErrNotFound.
func (s *Service) GetSetting(key string) (*types.Setting, error) {
	coll, err := s.store.Collection(types.SettingsCollection)
	if err != nil {
		return nil, err
	}
	rec, err := coll.Get(key)
	if err != nil {
		return nil, err
	}
	return rec.(*types.Setting), nil
}

// AllSettings returns every settings row sorted by key.
func (s *Service) AllSettings() ([]*types.Setting, error) {
	return s.store.AllSettings()
}
