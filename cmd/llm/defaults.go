package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Defaults holds values saved between runs, in a JSON file
type Defaults struct {
	sync.RWMutex
	path string
	data map[string]string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultModel = "model"
	defaultsFile = "defaults.json"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewDefaults loads saved values from path. A missing file is an empty store.
func NewDefaults(path string) (*Defaults, error) {
	d := &Defaults{path: path, data: make(map[string]string)}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return d, nil
	} else if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &d.data); err != nil {
		return nil, err
	}
	return d, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetString returns a saved value, or empty string
func (d *Defaults) GetString(key string) string {
	if d == nil {
		return ""
	}
	d.RLock()
	defer d.RUnlock()
	return d.data[key]
}

// Set saves a value, or removes it when empty
func (d *Defaults) Set(key, value string) error {
	d.Lock()
	defer d.Unlock()
	if value == "" {
		delete(d.data, key)
	} else {
		d.data[key] = value
	}
	return d.save()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (d *Defaults) save() error {
	if err := os.MkdirAll(filepath.Dir(d.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(d.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, data, 0o600)
}

// defaultsPath returns the file for saved values under the user
// configuration directory
func defaultsPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name, defaultsFile), nil
}
