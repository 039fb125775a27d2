package treehash

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const LockFileName = ".chaingen.lock"

// WriteLock records the hash of the generated tree in the project root,
// in sha256sum-style "<hash>  <path>" format.
func WriteLock(projectDir, outputPath, hash string) error {
	line := hash + "  " + outputPath + "\n"
	path := filepath.Join(projectDir, LockFileName)
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return errors.Wrap(err, "failed to write lock file")
	}
	return nil
}

// ReadLock returns the recorded hash and output path from the lock file.
func ReadLock(projectDir string) (hash, outputPath string, err error) {
	data, err := os.ReadFile(filepath.Join(projectDir, LockFileName))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to read lock file")
	}

	line := strings.TrimSpace(string(data))
	hash, outputPath, ok := strings.Cut(line, "  ")
	if !ok || !validHash(hash) || outputPath == "" {
		return "", "", errors.Newf("malformed lock file %s", LockFileName)
	}

	return hash, outputPath, nil
}

// validHash accepts exactly what Hash produces: 64 lowercase hex characters.
// Anything else means the lock file was corrupted or hand-edited.
func validHash(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
