// Package treehash computes a content-based hash of the generated output
// tree so drift can be detected without a clean git checkout. Patterns in a
// .chaingenignore file at the tree root exclude files from the hash.
package treehash

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/moby/patternmatcher"
)

const IgnoreFileName = ".chaingenignore"

// Hash computes the sha256 content hash of the directory. Files are hashed
// in sorted relative-path order, each contributing its slash-separated path,
// a NUL separator, and its contents. The ignore file itself is never hashed.
func Hash(dir string) (string, error) {
	matcher, err := loadIgnorePatterns(dir)
	if err != nil {
		return "", err
	}

	files, err := collectFiles(dir, matcher)
	if err != nil {
		return "", err
	}

	hash := sha256.New()
	for _, relPath := range files {
		content, err := os.ReadFile(filepath.Join(dir, relPath))
		if err != nil {
			return "", errors.Wrapf(err, "failed to read %s", relPath)
		}

		hash.Write([]byte(relPath))
		hash.Write([]byte{0})
		hash.Write(content)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

func loadIgnorePatterns(dir string) (*patternmatcher.PatternMatcher, error) {
	f, err := os.Open(filepath.Join(dir, IgnoreFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return patternmatcher.New(nil)
		}
		return nil, errors.Wrapf(err, "failed to open %s", IgnoreFileName)
	}
	defer f.Close()

	patterns, err := parsePatterns(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", IgnoreFileName)
	}

	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile patterns from %s", IgnoreFileName)
	}

	return pm, nil
}

// parsePatterns reads dockerignore-style patterns: one per line, blank lines
// and #-comments skipped.
func parsePatterns(r io.Reader) ([]string, error) {
	var patterns []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}

func collectFiles(dir string, matcher *patternmatcher.PatternMatcher) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			matched, err := matcher.MatchesOrParentMatches(relPath)
			if err != nil {
				return errors.Wrapf(err, "pattern match failed for %s", relPath)
			}
			if matched && !matcher.Exclusions() {
				return filepath.SkipDir
			}
			return nil
		}

		if relPath == IgnoreFileName {
			return nil
		}

		matched, err := matcher.MatchesOrParentMatches(relPath)
		if err != nil {
			return errors.Wrapf(err, "pattern match failed for %s", relPath)
		}
		if matched {
			return nil
		}

		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to walk directory")
	}

	sort.Strings(files)
	return files, nil
}
