package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv is an Environment with captured output and a fake console.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	keyReads int
}

// newTestEnv returns an Environment reading stdin from the given string,
// with vars as the only environment variables and no terminal attached.
func newTestEnv(stdin string, vars map[string]string) *testEnv {
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.Environment = &Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		IsTerminal: func() bool { return false },
		ReadKey: func() error {
			te.keyReads++
			return nil
		},
	}
	return te
}

// withTerminal marks the fake console as interactive.
func (te *testEnv) withTerminal() *testEnv {
	te.IsTerminal = func() bool { return true }
	return te
}

// writeInput creates a file under a fresh temp dir and returns its path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
