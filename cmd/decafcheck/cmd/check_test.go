package cmd

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

const validFixture = `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      stmts: []
`

const invalidFixture = `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      stmts:
        - kind: break
`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "fixture-*.yaml")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(contents); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	return f.Name()
}

// snapshotFixturePath is a stand-in for writeFixture's output when a test
// needs the printed diagnostics to be stable across runs: writeFixture's
// temp path changes every invocation, which would make every snapshot fail.
const snapshotFixturePath = "fixture.yaml"

// normalizeFixturePath rewrites an absolute temp fixture path in out back to
// the stable snapshotFixturePath, so a snapshot of CLI output doesn't churn
// on every run's random temp directory.
func normalizeFixturePath(out, path string) string {
	return strings.ReplaceAll(out, path, snapshotFixturePath)
}

// captureStdout redirects os.Stdout for the duration of fn and returns what
// was written to it. runCheck prints straight to os.Stdout/os.Stderr rather
// than through cobra's configurable writers, so the test has to intercept
// the file descriptor itself.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out)
}

func TestCheckCmdValidFixture(t *testing.T) {
	path := writeFixture(t, validFixture)

	var runErr error
	out := captureStdout(t, func() {
		runErr = runCheck(checkCmd, []string{path})
	})
	if runErr != nil {
		t.Fatalf("runCheck: %v", runErr)
	}
	if !strings.Contains(out, "no semantic errors") {
		t.Errorf("expected success message, got %q", out)
	}
}

func TestCheckCmdInvalidFixture(t *testing.T) {
	path := writeFixture(t, invalidFixture)

	runErr := runCheck(checkCmd, []string{path})
	if runErr == nil {
		t.Fatal("expected an error for a fixture with semantic diagnostics")
	}
	if !strings.Contains(runErr.Error(), "semantic error") {
		t.Errorf("error message %q should mention the diagnostic count", runErr.Error())
	}
}

// captureStderr is captureStdout's counterpart for os.Stderr, which is
// where runCheck prints the diagnostics themselves (stdout only ever gets
// the success message).
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out)
}

// TestCheckCmdStdoutSnapshot snapshots the CLI's stdout for a clean fixture,
// catching any regression in the success-message format runCheck prints.
func TestCheckCmdStdoutSnapshot(t *testing.T) {
	path := writeFixture(t, validFixture)

	out := captureStdout(t, func() {
		if err := runCheck(checkCmd, []string{path}); err != nil {
			t.Fatalf("runCheck: %v", err)
		}
	})
	snaps.MatchSnapshot(t, normalizeFixturePath(out, path))
}

// TestCheckCmdStderrSnapshot snapshots the CLI's formatted diagnostic
// output for a fixture with a semantic error, catching any regression in
// the one-line-per-diagnostic format printed by runCheck.
func TestCheckCmdStderrSnapshot(t *testing.T) {
	path := writeFixture(t, invalidFixture)

	out := captureStderr(t, func() {
		_ = runCheck(checkCmd, []string{path})
	})
	snaps.MatchSnapshot(t, normalizeFixturePath(out, path))
}

func TestCheckCmdMissingFile(t *testing.T) {
	runErr := runCheck(checkCmd, []string{"does-not-exist.yaml"})
	if runErr == nil {
		t.Fatal("expected an error for a missing fixture file")
	}
}
