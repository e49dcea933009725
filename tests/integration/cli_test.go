// Package integration provides integration tests for mix commands.
package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	mixBinary     string
	mixBinaryOnce sync.Once
	mixBinaryErr  error
)

// getMixBinary builds the mix binary once and returns its path.
func getMixBinary(t *testing.T) string {
	t.Helper()
	mixBinaryOnce.Do(func() {
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			mixBinaryErr = os.ErrInvalid
			return
		}
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))

		tmpDir, err := os.MkdirTemp("", "mix-test-*")
		if err != nil {
			mixBinaryErr = err
			return
		}
		mixBinary = filepath.Join(tmpDir, "mix")

		cmd := exec.Command("go", "build", "-o", mixBinary, "./cmd/mix")
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			mixBinaryErr = &buildError{output: string(output), err: err}
			return
		}
	})
	if mixBinaryErr != nil {
		t.Fatalf("failed to build mix: %v", mixBinaryErr)
	}
	return mixBinary
}

type buildError struct {
	output string
	err    error
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

const testCSV = `title,glass,garnish,recipe,source,ingredients
Gin Sour,Coupe,,SHAKE and STRAIN,test,"[['2 oz', 'Gin'], ['1 oz', 'Lemon'], ['3/4 oz', 'Syrup']]"
Gimlet,Coupe,Lime,SHAKE and STRAIN,test,"[['2 oz', 'Gin'], ['1 oz', 'Lime'], ['3/4 oz', 'Syrup']]"
Southside,Coupe,Mint,"MUDDLE, SHAKE and STRAIN",test,"[['2 oz', 'Gin'], ['1 oz', 'Lime'], ['6', 'Mint']]"
Hot Toddy,Mug,,BUILD,test,"[['2 oz', 'Whiskey'], ['4 oz', 'Water']]"
Broken,Coupe
`

// setupTestLibrary initializes a library in a temp dir and imports testCSV.
func setupTestLibrary(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	if _, code := runMix(t, dir, "init"); code != 0 {
		t.Fatalf("init exit code = %d", code)
	}

	csvPath := filepath.Join(dir, "cocktails.csv")
	if err := os.WriteFile(csvPath, []byte(testCSV), 0644); err != nil {
		t.Fatal(err)
	}

	out, code := runMix(t, dir, "import", csvPath)
	if code != 0 {
		t.Fatalf("import exit code = %d: %s", code, out)
	}
	return dir
}

// runMix executes mix in dir and returns stdout and the exit code. The global
// config is isolated under dir so a developer's library_path is not used.
func runMix(t *testing.T, dir string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(getMixBinary(t), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+filepath.Join(dir, "xdg"), "MIX_LOG_LEVEL=disabled")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), exitErr.ExitCode()
	}
	if err != nil {
		t.Fatalf("running mix %v: %v\n%s", args, err, stderr.String())
	}
	return stdout.String(), 0
}

func decode(t *testing.T, out string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(out), v); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	runMix(t, dir, "init")

	csvPath := filepath.Join(dir, "cocktails.csv")
	if err := os.WriteFile(csvPath, []byte(testCSV), 0644); err != nil {
		t.Fatal(err)
	}

	out, code := runMix(t, dir, "import", csvPath)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var result struct {
		New     int      `json:"new"`
		Skipped int      `json:"skipped"`
		Errors  []string `json:"errors"`
	}
	decode(t, out, &result)
	if result.New != 4 || result.Skipped != 1 || len(result.Errors) != 1 {
		t.Errorf("import result = %+v", result)
	}

	out, _ = runMix(t, dir, "import", csvPath)
	var again struct {
		New       int `json:"new"`
		Unchanged int `json:"unchanged"`
	}
	decode(t, out, &again)
	if again.New != 0 || again.Unchanged != 4 {
		t.Errorf("re-import result = %+v", again)
	}
}

func TestGet(t *testing.T) {
	dir := setupTestLibrary(t)

	out, code := runMix(t, dir, "get", "Gimlet")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var r struct {
		Name       string   `json:"name"`
		Techniques []string `json:"techniques"`
	}
	decode(t, out, &r)
	if r.Name != "Gimlet" || strings.Join(r.Techniques, ",") != "SHAKE,STRAIN" {
		t.Errorf("get = %+v", r)
	}

	out, code = runMix(t, dir, "get", "Gimlett")
	if code != 4 {
		t.Fatalf("unknown name exit code = %d, want 4", code)
	}
	var miss struct {
		Suggestions []string `json:"suggestions"`
	}
	decode(t, out, &miss)
	if len(miss.Suggestions) == 0 || miss.Suggestions[0] != "Gimlet" {
		t.Errorf("suggestions = %v", miss.Suggestions)
	}
}

func TestPath(t *testing.T) {
	dir := setupTestLibrary(t)

	out, code := runMix(t, dir, "path", "Gin Sour", "Southside")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var result struct {
		Path []string `json:"path"`
		Cost float64  `json:"cost"`
	}
	decode(t, out, &result)
	if strings.Join(result.Path, " -> ") != "Gin Sour -> Gimlet -> Southside" {
		t.Errorf("path = %v", result.Path)
	}
	if result.Cost != 0.25 {
		t.Errorf("cost = %v, want 0.25", result.Cost)
	}

	if _, code := runMix(t, dir, "path", "Gin Sour", "Hot Toddy"); code != 5 {
		t.Errorf("disconnected exit code = %d, want 5", code)
	}
}

func TestCompare(t *testing.T) {
	dir := setupTestLibrary(t)

	out, code := runMix(t, dir, "compare", "Gin Sour", "Gimlet")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var result struct {
		Similarity struct {
			Score int `json:"score"`
		} `json:"similarity"`
		Linked bool `json:"linked"`
	}
	decode(t, out, &result)
	if result.Similarity.Score != 8 || !result.Linked {
		t.Errorf("compare = %+v", result)
	}

	if _, code := runMix(t, dir, "compare", "Gin Sour", "Nope"); code != 4 {
		t.Errorf("unknown name exit code = %d, want 4", code)
	}
}

func TestThresholdConfig(t *testing.T) {
	dir := setupTestLibrary(t)

	if _, code := runMix(t, dir, "config", "threshold", "9"); code != 0 {
		t.Fatalf("config set exit code = %d", code)
	}
	if _, code := runMix(t, dir, "path", "Gin Sour", "Gimlet"); code != 5 {
		t.Errorf("path above threshold exit code = %d, want 5", code)
	}

	if _, code := runMix(t, dir, "config", "threshold", "0"); code != 2 {
		t.Errorf("invalid threshold exit code = %d, want 2", code)
	}
}

func TestFind(t *testing.T) {
	dir := setupTestLibrary(t)

	out, code := runMix(t, dir, "find", "Lime")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var results []struct {
		Name string `json:"name"`
	}
	decode(t, out, &results)
	if len(results) != 2 || results[0].Name != "Gimlet" || results[1].Name != "Southside" {
		t.Errorf("find Lime = %+v", results)
	}
}

func TestSummary(t *testing.T) {
	dir := setupTestLibrary(t)

	out, code := runMix(t, dir, "summary")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var s struct {
		NodeCount      int `json:"node_count"`
		EdgeCount      int `json:"edge_count"`
		ComponentCount int `json:"component_count"`
	}
	decode(t, out, &s)
	if s.NodeCount != 4 || s.EdgeCount != 2 || s.ComponentCount != 2 {
		t.Errorf("summary = %+v", s)
	}
}

func TestNoLibrary(t *testing.T) {
	dir := t.TempDir()
	if _, code := runMix(t, dir, "get", "Gimlet"); code != 2 {
		t.Errorf("exit code outside library = %d, want 2", code)
	}
}
