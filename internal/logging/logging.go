package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Logger is shared by every package. It discards records until Initialize
// turns debug logging on.
var Logger = slog.New(slog.DiscardHandler)

// DefaultMaxFiles is the rotation limit used when nothing else is configured
const DefaultMaxFiles = 1000

// Options says where debug records go
type Options struct {
	Debug    bool
	Dir      string // Rotated log directory, normally $LAGREE_HOME/logs
	File     string // Fixed log file; disables rotation
	MaxFiles int    // Files kept in Dir, 0 keeps all of them
}

// Initialize points Logger at a JSON log file, or discards everything when
// neither debug nor a fixed file is requested. LAGREE_DEBUG, LAGREE_DEBUG_FILE
// and LAGREE_MAX_LOG_FILES are inherited so `lagree serve` children and
// integration runs log like their parent.
func Initialize(opts Options) error {
	opts = opts.withEnv()
	if !opts.Debug && opts.File == "" {
		Logger = slog.New(slog.DiscardHandler)
		return nil
	}

	path, err := opts.logPath(time.Now())
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = newLogger(f)
	Logger.Info("Debug logging initialized", "log_file", path)
	if os.Getenv("LAGREE_DEBUG") == "" {
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)
	}
	return nil
}

// ForWorkout returns a logger that tags every record with the workout session
// and its lesson, so one session can be followed through timer, storage and
// sound records.
func ForWorkout(sessionID string, lessonID int) *slog.Logger {
	return Logger.With("session_id", sessionID, "lesson_id", lessonID)
}

func newLogger(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("pid", os.Getpid())
}

func (o Options) withEnv() Options {
	if os.Getenv("LAGREE_DEBUG") == "1" {
		o.Debug = true
	}
	if file := os.Getenv("LAGREE_DEBUG_FILE"); file != "" && o.File == "" {
		o.File = file
	}
	// An explicit --max-log-files wins over the environment
	if raw := os.Getenv("LAGREE_MAX_LOG_FILES"); raw != "" && o.MaxFiles == DefaultMaxFiles {
		if n, err := strconv.Atoi(raw); err == nil {
			o.MaxFiles = n
		}
	}
	return o
}

// logPath returns the file to log to, creating its directory. Rotated files
// are named lagree-<start time>-<id>.log.
func (o Options) logPath(now time.Time) (string, error) {
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0o755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return o.File, nil
	}

	if o.Dir == "" {
		return "", fmt.Errorf("no log directory configured")
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	if o.MaxFiles > 0 {
		// Leave room for the file about to be created
		if err := prune(o.Dir, o.MaxFiles-1); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	name := fmt.Sprintf("lagree-%s-%s.log", now.Format("20060102-150405"), uuid.NewString()[:8])
	return filepath.Join(o.Dir, name), nil
}

// prune deletes the oldest *.log files in dir until at most keep remain.
// Other files are left alone.
func prune(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		path    string
	}
	var files []logFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{modTime: info.ModTime(), path: filepath.Join(dir, entry.Name())})
	}
	if len(files) <= keep {
		return nil
	}

	slices.SortFunc(files, func(a, b logFile) int {
		return a.modTime.Compare(b.modTime)
	})
	for _, f := range files[:len(files)-keep] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
		}
	}
	return nil
}
