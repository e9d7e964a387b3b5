package intake

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/mattn/go-shellwords"
)

// windowsPath matches a drive-letter or UNC path at the start of a word.
var windowsPath = regexp.MustCompile(`(?:^|[\s"])(?:[A-Za-z]:\\|\\\\[^\\\s])`)

// ParseDropped splits text pasted by a terminal when files are dragged onto
// it. Terminals emit one or more paths separated by whitespace, either
// shell-quoted, backslash-escaped, or as file:// URIs. Windows terminals
// emit bare or double-quoted paths whose backslashes are separators, so in
// that case backslashes are kept literally.
func ParseDropped(s string) []string {
	line := s
	if windowsPath.MatchString(s) {
		line = strings.ReplaceAll(s, `\`, `\\`)
	}

	// An unescaped shell metacharacter stops the parser early; a drop has
	// no such syntax, so fall back to plain whitespace splitting.
	p := shellwords.NewParser()
	words, err := p.Parse(line)
	if err != nil || p.Position > 0 {
		words = strings.Fields(s)
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = normaliseDropped(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func normaliseDropped(p string) string {
	if !strings.HasPrefix(p, "file://") {
		return p
	}
	u, err := url.Parse(p)
	if err != nil {
		return strings.TrimPrefix(p, "file://")
	}
	return u.Path
}
