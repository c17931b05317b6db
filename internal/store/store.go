// Package store persists the local side of each environment: one dotenv
// file per environment under a configured directory.
//
// A missing file is not an error. First access creates an empty file so
// that a fresh checkout becomes a valid (empty) local store, and every
// write goes through the atomic envfile writer so interrupts never leave
// a torn file behind.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Marian1309/vercel-env/pkg/constants"
	"github.com/Marian1309/vercel-env/pkg/envfile"
	"github.com/Marian1309/vercel-env/pkg/envs"
	pkgerrors "github.com/Marian1309/vercel-env/pkg/errors"
	"github.com/Marian1309/vercel-env/pkg/logging"
)

// Local reads and writes the env files for a project directory.
type Local struct {
	dir string
}

// NewLocal creates a local store rooted at dir. An empty dir means the
// current directory.
func NewLocal(dir string) *Local {
	if dir == "" {
		dir = constants.DefaultEnvDir
	}
	return &Local{dir: dir}
}

// Path returns the env file path for environment.
func (s *Local) Path(environment envs.Environment) string {
	return filepath.Join(s.dir, environment.LocalFile())
}

// Read loads the environment's mapping. A missing file yields an empty
// mapping and creates the file, so the next write has a home and the
// operator sees where local values will land.
func (s *Local) Read(environment envs.Environment) (*envs.Mapping, error) {
	path := s.Path(environment)

	mapping, err := envfile.Read(path)
	if err == nil {
		return mapping, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := s.create(path); err != nil {
		return nil, err
	}
	logging.Debug().
		Str("environment", environment.String()).
		Str("path", path).
		Msg("created empty env file")
	return envs.NewMapping(), nil
}

// Write atomically replaces the environment's file with mapping.
func (s *Local) Write(environment envs.Environment, mapping *envs.Mapping) error {
	return envfile.Write(s.Path(environment), mapping)
}

// Set stores a single key and persists the file.
func (s *Local) Set(environment envs.Environment, key, value string) error {
	mapping, err := s.Read(environment)
	if err != nil {
		return err
	}
	mapping.Set(key, envs.Known(value))
	return s.Write(environment, mapping)
}

// Remove deletes a single key and persists the file. Removing a key that
// is not present is a no-op, not an error.
func (s *Local) Remove(environment envs.Environment, key string) error {
	mapping, err := s.Read(environment)
	if err != nil {
		return err
	}
	if !mapping.Has(key) {
		return nil
	}
	mapping.Delete(key)
	return s.Write(environment, mapping)
}

// create writes a fresh empty env file with secret-safe permissions.
func (s *Local) create(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return pkgerrors.WrapIO("create", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, nil, constants.EnvFilePermissions); err != nil {
		return pkgerrors.WrapIO("create", path, err)
	}
	return nil
}
