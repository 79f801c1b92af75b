// Copyright © 2025 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v2"
)

const FilePermissions = 0755

var ErrRosterNotFound = errors.New("roster not found")

var (
	Directory   = filepath.Join(xdg.Home, "rotation")
	RostersFile = filepath.Join(Directory, "rosters.yaml")
)

// A Store is a named-roster registry backed by a yaml file, so that a team's
// player names only need to be typed out once.
type Store struct {
	path string

	Rosters map[string][]string
}

// Open loads the roster registry at the given path, bootstrapping an empty
// registry (and its parent directory) if none exists yet.
func Open(path string) (*Store, error) {
	TryMkdir(filepath.Dir(path))
	TryCreate(path, []byte("{}\n"))

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	store := &Store{path: path, Rosters: map[string][]string{}}
	if err := yaml.Unmarshal(file, &store.Rosters); err != nil {
		return nil, fmt.Errorf("open roster store: %w", err)
	}

	return store, nil
}

// Get looks up a saved roster and materializes it as a player list.
func (store *Store) Get(name string) ([]Player, error) {
	names, found := store.Rosters[name]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, name)
	}

	return New(names), nil
}

func (store *Store) Save(name string, names []string) error {
	store.Rosters[name] = names
	return store.Dump()
}

func (store *Store) Remove(name string) error {
	if _, found := store.Rosters[name]; !found {
		return fmt.Errorf("%w: %s", ErrRosterNotFound, name)
	}

	delete(store.Rosters, name)
	return store.Dump()
}

// Dump writes the registry back to its file.
func (store *Store) Dump() error {
	file, err := yaml.Marshal(store.Rosters)
	if err != nil {
		return err
	}

	return os.WriteFile(store.path, file, FilePermissions)
}

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, FilePermissions)
	}
}

func TryCreate(file string, data []byte) {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		_ = os.WriteFile(file, data, FilePermissions)
	}
}
