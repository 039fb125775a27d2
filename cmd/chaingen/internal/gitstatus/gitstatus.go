// Package gitstatus parses the short-form (porcelain v1) output of
// "git status --porcelain".
package gitstatus

import "strings"

// Entry is a single line of porcelain status output.
type Entry struct {
	// Staged and Unstaged are the two status runes (index and working tree).
	Staged   byte
	Unstaged byte
	// Path is the file path; for renames this is the new path.
	Path string
	// From is the original path of a rename, empty otherwise.
	From string
}

// Untracked reports whether the entry is an untracked file.
func (e Entry) Untracked() bool {
	return e.Staged == '?' && e.Unstaged == '?'
}

func (e Entry) String() string {
	if e.From != "" {
		return string(e.Staged) + string(e.Unstaged) + " " + e.From + " -> " + e.Path
	}
	return string(e.Staged) + string(e.Unstaged) + " " + e.Path
}

// Parse splits porcelain v1 output into entries. Empty input yields nil,
// which is the clean-tree verdict.
func Parse(out string) []Entry {
	out = strings.TrimRight(out, "\n")
	if strings.TrimSpace(out) == "" {
		return nil
	}

	var entries []Entry
	for line := range strings.SplitSeq(out, "\n") {
		if len(line) < 4 {
			continue
		}

		entry := Entry{
			Staged:   line[0],
			Unstaged: line[1],
			Path:     unquote(line[3:]),
		}

		if from, to, ok := strings.Cut(entry.Path, " -> "); ok {
			entry.From = unquote(from)
			entry.Path = unquote(to)
		}

		entries = append(entries, entry)
	}

	return entries
}

// unquote strips the double quotes git puts around paths with special
// characters. Escape sequences inside are left as-is; we only display paths.
func unquote(path string) string {
	if len(path) >= 2 && path[0] == '"' && path[len(path)-1] == '"' {
		return path[1 : len(path)-1]
	}
	return path
}
