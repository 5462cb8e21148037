package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads FileSettings from a TOML file.
type TOMLLoader struct {
	path string
}

// NewTOMLLoader creates a new TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{path: path}
}

// Load reads FileSettings from the configured path.
func (l *TOMLLoader) Load() (FileSettings, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads FileSettings from a specific path. A missing file yields
// the zero value and no error.
func (l *TOMLLoader) LoadFrom(path string) (FileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileSettings{}, nil
		}
		return FileSettings{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fs FileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return FileSettings{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return fs, nil
}

// LoadWithIncludes loads a TOML file and processes its @include directive,
// a top-level array of paths (relative to the including file unless
// absolute) merged in order before the file's own settings are applied on
// top. maxDepth bounds the include chain to prevent infinite recursion.
func (l *TOMLLoader) LoadWithIncludes(path string, maxDepth int) (FileSettings, error) {
	if maxDepth <= 0 {
		return FileSettings{}, fmt.Errorf("include depth exceeded for %s", path)
	}

	fs, err := l.LoadFrom(path)
	if err != nil {
		return FileSettings{}, err
	}
	if len(fs.Include) == 0 {
		return fs, nil
	}

	baseDir := filepath.Dir(path)
	merged := FileSettings{}
	for _, inc := range fs.Include {
		incPath := inc
		if !filepath.IsAbs(inc) {
			incPath = filepath.Join(baseDir, inc)
		}
		incFS, err := NewTOMLLoader(incPath).LoadWithIncludes(incPath, maxDepth-1)
		if err != nil {
			return FileSettings{}, fmt.Errorf("loading include %s: %w", incPath, err)
		}
		merged = mergeFileSettings(merged, incFS)
	}

	fs.Include = nil
	return mergeFileSettings(merged, fs), nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
