package desktop

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lvim-tech/qmenu/pkg/utils"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	// DefaultDirectory is the system-wide application directory.
	DefaultDirectory = "/usr/share/applications"

	entrySection = "Desktop Entry"
	entryMarker  = ".desktop"
)

// ErrParse is wrapped by every error that aborts a scan.
var ErrParse = errors.New("unparsable desktop entry")

// Scanner reads desktop entry directories.
type Scanner struct {
	fs      afero.Fs
	exclude []string
	logger  *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExclude drops files whose name matches any of the glob patterns.
func WithExclude(patterns ...string) Option {
	return func(s *Scanner) {
		s.exclude = append(s.exclude, patterns...)
	}
}

// WithLogger sets the logger used for skipped directories and entries.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a scanner over fs. A nil fs means the OS filesystem.
func NewScanner(fs afero.Fs, opts ...Option) *Scanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s := &Scanner{
		fs:     fs,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanAll scans every directory in order and concatenates the results.
func (s *Scanner) ScanAll(dirs []string) ([]Application, error) {
	var apps []Application
	for _, dir := range dirs {
		found, err := s.Scan(utils.ExpandHomeDir(dir))
		if err != nil {
			return nil, err
		}
		apps = append(apps, found...)
	}
	return apps, nil
}

// Scan returns the complete applications described by the entry files in dir.
// An unreadable directory yields no applications. A file that cannot be read
// or parsed aborts the scan.
func (s *Scanner) Scan(dir string) ([]Application, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		s.logger.Debug("skipping unreadable directory", "dir", dir, "error", err)
		return nil, nil
	}

	var apps []Application
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.Contains(name, entryMarker) {
			continue
		}
		if s.excluded(name) {
			s.logger.Debug("excluded desktop entry", "file", name)
			continue
		}

		path := filepath.Join(dir, name)
		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
		}

		app, ok, err := ParseEntry(path, data)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Debug("dropping incomplete desktop entry", "file", path)
			continue
		}
		apps = append(apps, app)
	}

	return apps, nil
}

func (s *Scanner) excluded(name string) bool {
	for _, pattern := range s.exclude {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ParseEntry parses one desktop entry file. ok is false when the
// [Desktop Entry] section or any of Name, TryExec/Exec and Icon is missing.
// Presence is what counts: a key with an empty value is kept, and an empty
// TryExec still wins over Exec.
func ParseEntry(path string, data []byte) (app Application, ok bool, err error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
		KeyValueDelimiters:      "=",
	}, protectLiterals(data))
	if err != nil {
		return Application{}, false, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	section, err := file.GetSection(entrySection)
	if err != nil {
		return Application{}, false, nil
	}

	name, hasName := value(section, "Name")
	exec, hasExec := value(section, "TryExec")
	if !hasExec {
		exec, hasExec = value(section, "Exec")
	}
	icon, hasIcon := value(section, "Icon")

	if !hasName || !hasExec || !hasIcon {
		return Application{}, false, nil
	}

	return Application{
		SourcePath: path,
		Name:       name,
		Exec:       exec,
		Icon:       icon,
	}, true, nil
}

func value(section *ini.Section, key string) (string, bool) {
	if !section.HasKey(key) {
		return "", false
	}
	v := strings.TrimSpace(section.Key(key).String())
	return strings.TrimPrefix(v, literalMark), true
}

// literalMark is put in front of values that ini would otherwise read as
// quoted (`...` or """...""") and removed again by value.
const literalMark = "\uE000"

func protectLiterals(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' || trimmed[0] == '[' {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		val := strings.TrimLeft(line[eq+1:], " \t")
		if strings.HasPrefix(val, "`") || strings.HasPrefix(val, `"""`) {
			lines[i] = line[:eq+1] + literalMark + val
		}
	}
	return []byte(strings.Join(lines, "\n"))
}
