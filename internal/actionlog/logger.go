// Package actionlog records click-through operations to a size-rotated file.
package actionlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Action names the operation being recorded.
type Action string

const (
	ActionSet   Action = "SET"
	ActionQuery Action = "QUERY"
	ActionMove  Action = "MOVE"
)

// Config holds configuration for the action logger.
type Config struct {
	Enabled   bool
	FilePath  string
	MaxSizeMB int
	MaxFiles  int
}

// Logger appends one line per action. A nil or disabled Logger is a no-op.
type Logger struct {
	mu          sync.Mutex
	file        *os.File
	config      Config
	currentSize int64
	maxBytes    int64
	now         func() time.Time
}

// New opens the log file, creating its directory when needed.
func New(cfg Config) (*Logger, error) {
	if !cfg.Enabled {
		return &Logger{config: cfg}, nil
	}

	dir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.FilePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &Logger{
		file:        f,
		config:      cfg,
		currentSize: stat.Size(),
		maxBytes:    int64(cfg.MaxSizeMB) * 1024 * 1024,
		now:         time.Now,
	}, nil
}

// Log records action against window with details rendered as sorted
// key=value pairs.
func (l *Logger) Log(action Action, window uint64, details map[string]any) {
	if l == nil || !l.config.Enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	if l.maxBytes > 0 && l.currentSize >= l.maxBytes {
		if err := l.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "action log rotation failed: %v\n", err)
		}
		if l.file == nil {
			return
		}
	}

	var sb strings.Builder
	sb.WriteString(l.now().Format("2006-01-02 15:04:05"))
	sb.WriteString(" [")
	sb.WriteString(string(action))
	sb.WriteString("]")
	fmt.Fprintf(&sb, " window=0x%x", window)

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := details[k].(type) {
		case string:
			fmt.Fprintf(&sb, " %s=%q", k, v)
		case error:
			fmt.Fprintf(&sb, " %s=%q", k, v.Error())
		default:
			fmt.Fprintf(&sb, " %s=%v", k, v)
		}
	}
	sb.WriteString("\n")

	n, err := l.file.WriteString(sb.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write action log entry: %v\n", err)
		return
	}
	l.currentSize += int64(n)
}

// Close closes the logger and releases resources.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// rotate shifts actions.log -> actions.log.1 -> ... keeping MaxFiles
// rotated files.
func (l *Logger) rotate() error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	base := l.config.FilePath
	for i := l.config.MaxFiles; i >= 1; i-- {
		older := fmt.Sprintf("%s.%d", base, i)
		if i == l.config.MaxFiles {
			os.Remove(older)
			continue
		}
		os.Rename(older, fmt.Sprintf("%s.%d", base, i+1))
	}

	if l.config.MaxFiles > 0 {
		if err := os.Rename(base, base+".1"); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	} else if err := os.Remove(base); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to truncate log file: %w", err)
	}

	f, err := os.OpenFile(base, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new log file: %w", err)
	}

	l.file = f
	l.currentSize = 0
	return nil
}
