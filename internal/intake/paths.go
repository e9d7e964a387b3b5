package intake

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gabriel-vasile/mimetype"
	"github.com/maruel/natural"
)

// FromPath builds a candidate from a regular file. The media type is sniffed
// from the file's content, not trusted from its extension.
func FromPath(path string) (Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return Candidate{}, fmt.Errorf("%s is not a regular file", path)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("detecting type of %s: %w", path, err)
	}
	return Candidate{
		Name:      filepath.Base(path),
		MediaType: mt.String(),
		SizeBytes: info.Size(),
	}, nil
}

// FromPaths builds candidates for every path in order. A directory expands to
// the regular files directly inside it, in natural name order.
func FromPaths(paths []string) ([]Candidate, error) {
	var out []Candidate
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if !info.IsDir() {
			c, err := FromPath(p)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
			continue
		}

		files, err := listDir(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			c, err := FromPath(f)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Sort(natural.StringSlice(names))

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = filepath.Join(dir, n)
	}
	return out, nil
}
