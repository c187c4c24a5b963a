// Package store persists profiles, sessions and credentials as JSON files
// under a single data directory. Every write replaces the file atomically.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/schemas"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

const (
	profileFile     = "profile.json"
	sessionsFile    = "sessions.json"
	credentialsFile = "credentials.json"
)

// Store reads and writes the data directory. It is not safe for
// concurrent use from multiple processes.
type Store struct {
	dir        string
	schemaPath string
	validate   *validator.Validate
	log        *zap.Logger
}

// New creates the data directory if needed and returns a Store over it.
// A nil logger disables logging.
func New(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{
		dir:        dir,
		schemaPath: schemas.ResolveSchemaPath(schemas.ProfileSchemaPath),
		validate:   validator.New(),
		log:        log,
	}, nil
}

// ProfilePath returns the location of the persisted profile.
func (s *Store) ProfilePath() string {
	return filepath.Join(s.dir, profileFile)
}

// LoadProfile reads the persisted profile. A missing file yields an empty
// profile, not an error.
func (s *Store) LoadProfile() (*types.Profile, error) {
	data, err := os.ReadFile(s.ProfilePath())
	if errors.Is(err, os.ErrNotExist) {
		return &types.Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile validates the profile and overwrites the stored copy. Schema
// validation is skipped with a warning when the schema file cannot be
// found; struct-level validation always runs.
func (s *Store) SaveProfile(profile *types.Profile) error {
	if err := s.validate.Struct(profile); err != nil {
		return fmt.Errorf("profile rejected: %w", err)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if s.schemaPath == "" {
		s.log.Warn("profile schema not found, skipping schema validation",
			zap.String("schema", schemas.ProfileSchemaPath))
	} else if err := schemas.ValidateBytes(s.schemaPath, data); err != nil {
		return fmt.Errorf("profile rejected: %w", err)
	}

	return s.writeAtomic(s.ProfilePath(), data, 0o644)
}

// LoadSessions reads all persisted sessions keyed by domain. A missing
// file yields an empty map.
func (s *Store) LoadSessions() (map[string]types.Session, error) {
	sessions := make(map[string]types.Session)
	if err := s.readJSON(sessionsFile, &sessions); err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	return sessions, nil
}

// Session returns the stored session for a domain.
func (s *Store) Session(domain string) (types.Session, bool) {
	sessions, err := s.LoadSessions()
	if err != nil {
		s.log.Warn("could not load sessions", zap.Error(err))
		return types.Session{}, false
	}
	session, ok := sessions[domain]
	return session, ok
}

// SaveSession upserts one session, keeping at most one per domain.
func (s *Store) SaveSession(session types.Session) error {
	sessions, err := s.LoadSessions()
	if err != nil {
		return err
	}
	sessions[session.Domain] = session

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	return s.writeAtomic(filepath.Join(s.dir, sessionsFile), data, 0o600)
}

// LoadCredentials reads stored credentials keyed by domain or site
// keyword. A missing file yields an empty map. Values stay out of logs.
func (s *Store) LoadCredentials() (map[string]types.Credential, error) {
	credentials := make(map[string]types.Credential)
	if err := s.readJSON(credentialsFile, &credentials); err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	return credentials, nil
}

// SaveCredentials overwrites the stored credential map.
func (s *Store) SaveCredentials(credentials map[string]types.Credential) error {
	data, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	return s.writeAtomic(filepath.Join(s.dir, credentialsFile), data, 0o600)
}

func (s *Store) readJSON(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// writeAtomic writes to a temp file in the same directory and renames it
// over the target, so readers never observe a partial file.
func (s *Store) writeAtomic(path string, data []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
