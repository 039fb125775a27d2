package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const testGenScript = `#!/bin/sh
mkdir -p "$2"
echo "pub struct Runtime;" > "$2/bindings.rs"
`

const testFmtScript = `#!/bin/sh
exit 0
`

// setupDriftRepo creates a git repository with stub generator/formatter
// scripts and the generated output committed.
func setupDriftRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()

	writeExecutable(t, dir, "gen.sh", testGenScript)
	writeExecutable(t, dir, "fmt.sh", testFmtScript)

	cfg := `version: "1"
generator:
  bin: ./gen.sh
  path: generated/src
formatter:
  bin: ./fmt.sh
`
	if err := os.WriteFile(filepath.Join(dir, ".chaingen.yml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	git(t, dir, "init")
	runScript(t, dir, "./gen.sh", "--path", filepath.Join(dir, "generated", "src"))
	git(t, dir, "add", "-A")
	git(t, dir, "-c", "user.email=test@example.com", "-c", "user.name=test", "commit", "-m", "generated bindings")

	return dir
}

func writeExecutable(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
}

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func runScript(t *testing.T, dir, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("%s failed: %v\n%s", name, err, out)
	}
}

func runChaingen(t *testing.T, dir string, args ...string) error {
	t.Helper()
	t.Chdir(dir)
	return rootCmd().Run(context.Background(), append([]string{"chaingen"}, args...))
}

func TestCheckDriftCleanTree(t *testing.T) {
	dir := setupDriftRepo(t)

	if err := runChaingen(t, dir, "check", "drift"); err != nil {
		t.Fatalf("expected clean check to succeed, got %v", err)
	}
}

func TestCheckDriftDirtyTreeIsAdvisory(t *testing.T) {
	dir := setupDriftRepo(t)

	// An uncommitted file dirties the tree, but drift stays advisory.
	if err := os.WriteFile(filepath.Join(dir, "untracked.rs"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runChaingen(t, dir, "check", "drift"); err != nil {
		t.Fatalf("expected advisory check to succeed, got %v", err)
	}
}

func TestCheckDriftModifiedTrackedFile(t *testing.T) {
	dir := setupDriftRepo(t)

	// The generator now emits different bindings than what is committed,
	// leaving a modified tracked file (" M generated/src/bindings.rs").
	writeExecutable(t, dir, "gen.sh", `#!/bin/sh
mkdir -p "$2"
echo "pub struct Runtime { pub spec_version: u32 }" > "$2/bindings.rs"
`)
	git(t, dir, "add", "-A")
	git(t, dir, "-c", "user.email=test@example.com", "-c", "user.name=test", "commit", "-m", "new generator version")

	// Advisory by default, even with real drift in the bindings.
	if err := runChaingen(t, dir, "check", "drift"); err != nil {
		t.Fatalf("expected advisory check to succeed, got %v", err)
	}

	// Strict mode must flag the modified tracked file as drift.
	err := runChaingen(t, dir, "check", "drift", "--strict")
	if err == nil {
		t.Fatal("expected strict check to fail on modified bindings")
	}
	if !strings.Contains(err.Error(), "outdated") {
		t.Errorf("expected drift error, got %v", err)
	}
}

func TestCheckDriftStrictFlagFails(t *testing.T) {
	dir := setupDriftRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "untracked.rs"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runChaingen(t, dir, "check", "drift", "--strict")
	if err == nil {
		t.Fatal("expected strict check to fail on dirty tree")
	}
	if !strings.Contains(err.Error(), "outdated") {
		t.Errorf("expected drift error, got %v", err)
	}
}

func TestCheckDriftFailOnDriftConfig(t *testing.T) {
	dir := setupDriftRepo(t)

	cfg := `version: "1"
generator:
  bin: ./gen.sh
  path: generated/src
formatter:
  bin: ./fmt.sh
check:
  fail_on_drift: true
`
	if err := os.WriteFile(filepath.Join(dir, ".chaingen.yml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	// Rewriting the config file itself dirties the tree.
	if err := runChaingen(t, dir, "check", "drift"); err == nil {
		t.Fatal("expected configured strict check to fail on dirty tree")
	}
}

func TestCheckDriftGeneratorFailureAborts(t *testing.T) {
	dir := setupDriftRepo(t)

	writeExecutable(t, dir, "gen.sh", "#!/bin/sh\nexit 1\n")
	writeExecutable(t, dir, "fmt.sh", "#!/bin/sh\ntouch fmt-ran\nexit 0\n")
	git(t, dir, "add", "-A")
	git(t, dir, "-c", "user.email=test@example.com", "-c", "user.name=test", "commit", "-m", "break generator")

	if err := runChaingen(t, dir, "check", "drift"); err == nil {
		t.Fatal("expected check to fail when generator fails")
	}

	// Fail-fast: the formatter must not have run.
	if _, err := os.Stat(filepath.Join(dir, "fmt-ran")); !os.IsNotExist(err) {
		t.Error("formatter ran despite generator failure")
	}
}

func TestCheckDriftFormatterFailureAborts(t *testing.T) {
	dir := setupDriftRepo(t)

	writeExecutable(t, dir, "fmt.sh", "#!/bin/sh\nexit 1\n")
	git(t, dir, "add", "-A")
	git(t, dir, "-c", "user.email=test@example.com", "-c", "user.name=test", "commit", "-m", "break formatter")

	if err := runChaingen(t, dir, "check", "drift"); err == nil {
		t.Fatal("expected check to fail when formatter fails")
	}
}

func TestVerdictMessages(t *testing.T) {
	t.Parallel()

	if !strings.Contains(upToDateMessage, "up to date") {
		t.Errorf("unexpected up-to-date message %q", upToDateMessage)
	}
	if !strings.Contains(outdatedMessage, "outdated") {
		t.Errorf("unexpected outdated message %q", outdatedMessage)
	}
}
