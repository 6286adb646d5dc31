package harness

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/adapters/storage"
	"github.com/lagreeflow/lagree/internal/domain"
)

// TestEnvironment provides an isolated test environment with its own LAGREE_HOME.
type TestEnvironment struct {
	LagreeHome string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp LAGREE_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		LagreeHome: tb.TempDir(),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It drops inherited LAGREE_* variables, points LAGREE_HOME at the temp
// directory and disables debug logging.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "LAGREE_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"LAGREE_HOME="+e.LagreeHome,
		"LAGREE_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test workout log.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.LagreeHome, "lagree.db")
}

// SettingsPath returns the path to the test settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.LagreeHome, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteSettings writes raw JSON to settings.json.
func (e *TestEnvironment) WriteSettings(json string) {
	e.tb.Helper()
	require.NoError(e.tb, os.WriteFile(e.SettingsPath(), []byte(json), 0644))
}

// WriteFile writes a file relative to the temp LAGREE_HOME and returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.LagreeHome, name)
	require.NoError(e.tb, os.WriteFile(path, []byte(content), 0644))
	return path
}

// SeedEvents appends events to the test workout log.
func (e *TestEnvironment) SeedEvents(events ...domain.WorkoutEvent) {
	e.tb.Helper()

	repo, err := storage.NewSQLiteRepositoryForPath(e.LagreeHome)
	require.NoError(e.tb, err)
	defer repo.Close()

	require.NoError(e.tb, repo.Append(context.Background(), events))
}
