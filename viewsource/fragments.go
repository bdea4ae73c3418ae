package viewsource

import (
	"bufio"
	"fmt"
	"strings"
)

// Fragment is one attribute fragment read from a source.
type Fragment struct {
	Text string
	Line int // 1-based line in the source
}

// ReadFragments reads one fragment per line. Blank lines and lines whose
// first non-blank character is '#' are skipped.
func ReadFragments(src Source) ([]Fragment, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src.FilePath(), err)
	}
	defer rc.Close()

	var frags []Fragment
	sc := bufio.NewScanner(rc)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		frags = append(frags, Fragment{Text: text, Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", src.FilePath(), err)
	}
	return frags, nil
}

