package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// testEnv isolates the config directory and inventory file of one test.
type testEnv struct {
	t         *testing.T
	configDir string
	dataFile  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, key := range []string{"STOCKROOM_CONFIG_DIR", "STOCKROOM_DATA_FILE", "STOCKROOM_BACKEND", "STOCKROOM_LOG_LEVEL", "STOCKROOM_LOW_STOCK_THRESHOLD"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	return &testEnv{
		t:         t,
		configDir: filepath.Join(dir, "config"),
		dataFile:  filepath.Join(dir, "data", "inventory.json"),
	}
}

// run executes the CLI in-process and returns combined output and the
// exit code the process would have used.
func (e *testEnv) run(args ...string) (string, int) {
	e.t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config-dir", e.configDir, "--data-file", e.dataFile}, args...))
	err := root.Execute()
	return out.String(), exitCode(err)
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, code := e.run(args...)
	require.Equal(e.t, exitSuccess, code, "output: %s", out)
	return out
}

func TestDemoFirstRun(t *testing.T) {
	e := newTestEnv(t)

	out := e.mustRun()

	assert.Contains(t, out, "Apple stock: 7\n")
	assert.Contains(t, out, "Low items: []\n")
	assert.Contains(t, out, "\n--- Items Report ---\napple -> 7\n--------------------\n")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "Attempted to remove item that is not in stock")
	assert.Contains(t, out, `"item": "orange"`)
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, `"session": "`)

	data, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"apple\": 7\n}\n", string(data))
}

func TestDemoMalformedInventoryStillExitsZero(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(e.dataFile), 0o755))
	require.NoError(t, os.WriteFile(e.dataFile, []byte(`"not an object"`), 0o644))

	out := e.mustRun()
	assert.Contains(t, out, "Invalid inventory data")
	assert.Contains(t, out, "apple -> 7")
}

func TestAddGetRemove(t *testing.T) {
	e := newTestEnv(t)

	assert.Equal(t, "apple: 10\n", e.mustRun("--log-level", "error", "add", "apple", "10"))
	assert.Equal(t, "apple: 14\n", e.mustRun("--log-level", "error", "add", "apple", "4"))
	assert.Equal(t, "14\n", e.mustRun("get", "apple"))
	assert.Equal(t, "0\n", e.mustRun("get", "pear"))

	assert.Equal(t, "apple: 11\n", e.mustRun("--log-level", "error", "remove", "apple", "3"))
	assert.Equal(t, "apple: 0\n", e.mustRun("--log-level", "error", "remove", "apple", "20"))
	assert.Equal(t, "0\n", e.mustRun("get", "apple"))

	data, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestAddLogsTimestampedInfo(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun("add", "bolt", "2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T`, lines[0])
	assert.Contains(t, out, "INFO\tAdded item")
}

func TestAddInvalid(t *testing.T) {
	e := newTestEnv(t)

	out, code := e.run("add", "apple", "ten")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, out, "Invalid quantity")

	_, code = e.run("add", "banana", "-2")
	assert.Equal(t, exitUserError, code)

	_, code = e.run("add", " ", "3")
	assert.Equal(t, exitUserError, code)

	_, code = e.run("add", "apple")
	assert.Equal(t, exitUserError, code, "missing argument")

	_, err := os.Stat(e.dataFile)
	assert.True(t, os.IsNotExist(err), "rejected adds must not write the inventory")
}

func TestRemoveMissingItem(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("add", "apple", "5")
	before, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)

	out, code := e.run("remove", "orange", "1")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, out, "WARN")

	after, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLowAndReport(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("add", "zinc", "2")
	e.mustRun("add", "apple", "8")
	e.mustRun("add", "bolt", "4")

	assert.Equal(t, "zinc\nbolt\n", e.mustRun("low"))
	assert.Equal(t, "zinc\napple\nbolt\n", e.mustRun("low", "--threshold", "9"))
	assert.Equal(t, "", e.mustRun("low", "--threshold", "0"))

	_, code := e.run("low", "--threshold", "-1")
	assert.Equal(t, exitUserError, code)

	assert.Equal(t,
		"\n--- Items Report ---\nzinc -> 2\napple -> 8\nbolt -> 4\n--------------------\n\n",
		e.mustRun("report"))
}

func TestThresholdFromConfig(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, "config.yaml"),
		[]byte("backend: json\nlow_stock_threshold: 10\nlog_level: error\n"), 0o644))

	e.mustRun("add", "apple", "8")
	e.mustRun("add", "bolt", "12")
	assert.Equal(t, "apple\n", e.mustRun("low"))
}

func TestZeroThresholdFromConfig(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, "config.yaml"),
		[]byte("backend: json\nlow_stock_threshold: 0\nlog_level: error\n"), 0o644))

	e.mustRun("add", "apple", "3")
	assert.Equal(t, "", e.mustRun("low"))
}

func TestAddOverflowRejected(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("add", "bolt", "9223372036854775807")

	before, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)

	_, code := e.run("add", "bolt", "1")
	assert.Equal(t, exitUserError, code)

	after, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestReportEmpty(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun("report")
	assert.Contains(t, out, "Inventory is empty.\n")
	assert.Contains(t, out, "Inventory file not found")
}

func TestSQLiteBackend(t *testing.T) {
	e := newTestEnv(t)
	e.dataFile = filepath.Join(filepath.Dir(e.dataFile), "inventory.db")

	e.mustRun("--backend", "sqlite", "add", "apple", "3")
	e.mustRun("--backend", "sqlite", "add", "bolt", "9")
	assert.Equal(t, "3\n", e.mustRun("--backend", "sqlite", "get", "apple"))
	assert.Equal(t, "apple\n", e.mustRun("--backend", "sqlite", "low"))
}

func TestUnknownBackend(t *testing.T) {
	e := newTestEnv(t)
	out, code := e.run("--backend", "redis", "report")
	assert.Equal(t, exitUserError, code)
	assert.NotContains(t, out, "Items Report")
}

func TestInvalidLogLevel(t *testing.T) {
	e := newTestEnv(t)
	_, code := e.run("--log-level", "loud", "report")
	assert.Equal(t, exitUserError, code)
}

func TestInit(t *testing.T) {
	e := newTestEnv(t)

	out := e.mustRun("init")
	assert.Contains(t, out, "Stockroom initialized successfully")

	raw, err := os.ReadFile(filepath.Join(e.configDir, "config.yaml"))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(raw, &cfg))
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, e.dataFile, cfg.DataFile)
	assert.Equal(t, 5, cfg.LowStockThreshold)

	data, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	// Idempotent: existing inventory is kept.
	e.mustRun("add", "apple", "1")
	e.mustRun("init")
	assert.Equal(t, "1\n", e.mustRun("get", "apple"))
}

func TestInitRejectsMalformedInventory(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(e.dataFile), 0o755))
	require.NoError(t, os.WriteFile(e.dataFile, []byte("[]"), 0o644))

	_, code := e.run("init")
	assert.Equal(t, exitUserError, code)

	data, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDefaultConfigWrittenOnFirstRun(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("get", "apple")

	raw, err := os.ReadFile(filepath.Join(e.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfigYAML, string(raw))
}

func TestVersion(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun("version")
	assert.Contains(t, out, "stockroom v")
	assert.Contains(t, out, modulePath)
}
