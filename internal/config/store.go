package config

import (
    "fmt"
    "path/filepath"
    "sync"

    "github.com/spf13/afero"
    "go.uber.org/zap"
    "gopkg.in/yaml.v3"
)

// Store is a flat string key-value file. It is read once when opened and
// rewritten on every Set.
type Store struct {
    mu   sync.Mutex
    fs   afero.Fs
    path string
    vals map[string]string
}

// OpenStore loads path from fs. A missing, unreadable or malformed file
// yields an empty store; the problem is only logged.
func OpenStore(fs afero.Fs, path string, log *zap.Logger) *Store {
    if log == nil {
        log = zap.NewNop()
    }
    s := &Store{fs: fs, path: path, vals: map[string]string{}}
    data, err := afero.ReadFile(fs, path)
    if err != nil {
        log.Debug("settings not loaded", zap.String("path", path), zap.Error(err))
        return s
    }
    var raw map[string]any
    if err := yaml.Unmarshal(data, &raw); err != nil {
        log.Debug("settings discarded", zap.String("path", path), zap.Error(err))
        return s
    }
    for k, v := range raw {
        // non-string values are malformed and treated as absent
        if str, ok := v.(string); ok {
            s.vals[k] = str
        }
    }
    return s
}

// Get returns the stored value for key.
func (s *Store) Get(key string) (string, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    v, ok := s.vals[key]
    return v, ok
}

// Set stores value under key and writes the whole file.
func (s *Store) Set(key, value string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.vals[key] = value
    data, err := yaml.Marshal(s.vals)
    if err != nil {
        return fmt.Errorf("encode settings: %w", err)
    }
    if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
        return fmt.Errorf("create settings dir: %w", err)
    }
    if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
        return fmt.Errorf("write settings: %w", err)
    }
    return nil
}

// Path is the backing file location.
func (s *Store) Path() string { return s.path }
