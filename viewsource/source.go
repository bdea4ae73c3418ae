package viewsource

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
	"unicode"
)

// Source is a template whose text can be read.
type Source interface {
	Open() (io.ReadCloser, error)
	FilePath() string
	FileName() string
	TimeStamp() time.Time
	ClassName() string
}

// ClassNameFor derives a generated class name from a template path: letters
// are kept and every other rune becomes '_'.
func ClassNameFor(templatePath string) string {
	var sb strings.Builder
	for _, r := range templatePath {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// FSSource is a template stored in a file system.
type FSSource struct {
	fsys      fs.FS
	path      string
	modTime   time.Time
	className string
}

// NewFSSource returns a source for the file at path in fsys. The file must
// exist and be a regular file.
func NewFSSource(fsys fs.FS, filePath string) (*FSSource, error) {
	info, err := fs.Stat(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("stat template %s: %w", filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("template %s is a directory", filePath)
	}
	return &FSSource{fsys: fsys, path: filePath, modTime: info.ModTime()}, nil
}

func (s *FSSource) Open() (io.ReadCloser, error) { return s.fsys.Open(s.path) }
func (s *FSSource) FilePath() string             { return s.path }
func (s *FSSource) FileName() string             { return path.Base(s.path) }
func (s *FSSource) TimeStamp() time.Time         { return s.modTime }

// ClassName returns the override set with SetClassName, or the name derived
// from the file path.
func (s *FSSource) ClassName() string {
	if s.className != "" {
		return s.className
	}
	return ClassNameFor(s.path)
}

// SetClassName overrides the derived class name. An empty name restores
// the derived one.
func (s *FSSource) SetClassName(name string) { s.className = name }

// StringSource is a template held in memory.
type StringSource struct {
	path      string
	text      string
	created   time.Time
	className string
}

// NewStringSource returns an in-memory source. Its timestamp is the time of
// construction.
func NewStringSource(filePath, text string) *StringSource {
	return &StringSource{path: filePath, text: text, created: time.Now()}
}

func (s *StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.text)), nil
}
func (s *StringSource) FilePath() string     { return s.path }
func (s *StringSource) FileName() string     { return path.Base(s.path) }
func (s *StringSource) TimeStamp() time.Time { return s.created }

func (s *StringSource) ClassName() string {
	if s.className != "" {
		return s.className
	}
	return ClassNameFor(s.path)
}

func (s *StringSource) SetClassName(name string) { s.className = name }
