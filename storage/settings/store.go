// Package settings persists the notification configuration as a JSON file,
// the service-side analog of the browser app's localStorage entry.
package settings

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/notif"
)

type Store struct {
	path   string
	logger core.Logger
	mutex  sync.Mutex
}

var _ notif.ConfigStore = (*Store)(nil)

func NewStore(path string, logger core.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the persisted configuration. A missing or malformed file
// falls back to the defaults: a corrupted settings file must never fail a
// read, only cost the user their saved preferences.
func (s *Store) Load() (notif.Config, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := ioutil.ReadFile(s.path)
	if os.IsNotExist(err) {
		return notif.DefaultConfig(), nil
	}
	if err != nil {
		return notif.Config{}, errors.Wrapf(err, "reading %s", s.path)
	}

	var cfg notif.Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("malformed notification config; falling back to defaults", err)
		return notif.DefaultConfig(), nil
	}
	return cfg, nil
}

// Save overwrites the persisted configuration wholesale (last-writer-wins).
func (s *Store) Save(cfg notif.Config) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling notification config")
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(s.path))
	}
	if err = ioutil.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", s.path)
	}
	return nil
}

// Reset restores and persists the default configuration.
func (s *Store) Reset() (notif.Config, error) {
	cfg := notif.DefaultConfig()
	if err := s.Save(cfg); err != nil {
		return notif.Config{}, err
	}
	return cfg, nil
}
