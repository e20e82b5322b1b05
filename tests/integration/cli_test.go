// CLI integration tests for panel: catalog listing, text get/set round
// trips, validation rejections, and exit codes.
package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the panel binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "panel-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "panel")
	panelBin = binPath

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/panel")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestCLI_Version(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPanel("version")
	assert.Contains(t, result.Stdout, "panel v")
	assert.Contains(t, result.Stdout, "github.com/mesh-intelligence/knobs")
}

func TestCLI_ListShowsCatalog(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPanel("list")
	for _, key := range []string{
		"temperature_setpoint",
		"high_temperature_alarm",
		"supply_voltage",
		"fan_duty_cycle",
		"heartbeat_interval",
	} {
		assert.Contains(t, result.Stdout, key)
	}
	assert.Contains(t, result.Stdout, "volatile")
}

func TestCLI_ListJSON(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPanel("--json", "list")

	var catalog []struct {
		Key     string `json:"key"`
		Name    string `json:"name"`
		Size    int    `json:"size"`
		Storage string `json:"storage"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &catalog))
	require.Len(t, catalog, 5)
	assert.Equal(t, "temperature_setpoint", catalog[0].Key)
	assert.Equal(t, 4, catalog[0].Size)
	assert.Equal(t, "volatile", catalog[0].Storage)
}

func TestCLI_GetReturnsDefault(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPanel("get", "temperature_setpoint")
	assert.Contains(t, result.Stdout, "temperature_setpoint = 23.00")
}

func TestCLI_SetEchoesCommittedValue(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPanel("set", "temperature_setpoint", "37.5")
	assert.Contains(t, result.Stdout, "temperature_setpoint = 37.50")

	result = env.MustRunPanel("set", "supply_voltage", "1015")
	assert.Contains(t, result.Stdout, "supply_voltage = 1015")
}

func TestCLI_SetRejectsUnparseableValue(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunPanel("set", "temperature_setpoint", "warm")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "does not parse")
}

func TestCLI_SetAcceptsNegativeValue(t *testing.T) {
	env := NewTestEnv(t)

	// Leading-dash values must reach the store as positional arguments.
	result := env.MustRunPanel("set", "temperature_setpoint", "-15.5")
	assert.Contains(t, result.Stdout, "temperature_setpoint = -15.50")

	result = env.MustRunPanel("check", "temperature_setpoint", "-15.5")
	assert.Contains(t, result.Stdout, "ok: temperature_setpoint = -15.50")
}

func TestCLI_SetRejectsOutOfDomainValue(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunPanel("set", "temperature_setpoint", "-1234.0")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "outside the accepted domain")
}

func TestCLI_UnknownKeyListsValidKeys(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunPanel("get", "warp_drive")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "unknown parameter")
	assert.Contains(t, result.Stderr, "temperature_setpoint")
}

func TestCLI_ShowPrintsAllDefaults(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPanel("show")
	assert.Contains(t, result.Stdout, "temperature_setpoint = 23.00")
	assert.Contains(t, result.Stdout, "high_temperature_alarm = 80.00")
	assert.Contains(t, result.Stdout, "supply_voltage = 12000")
	assert.Contains(t, result.Stdout, "fan_duty_cycle = 40")
	assert.Contains(t, result.Stdout, "heartbeat_interval = 30")
}

func TestCLI_CheckSeparatesParseFromValidation(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPanel("check", "supply_voltage", "1015")
	assert.Contains(t, result.Stdout, "ok: supply_voltage = 1015")

	result = env.RunPanel("check", "supply_voltage", "volts")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "does not parse")

	result = env.RunPanel("check", "supply_voltage", "20000")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "parses but is outside")
}

func TestCLI_InitWritesConfig(t *testing.T) {
	env := NewTestEnv(t)
	freshDir := filepath.Join(env.TempDir, "fresh-config")

	result := env.MustRunPanel("--config-dir", freshDir, "init")
	assert.Contains(t, result.Stdout, "config.yaml")

	content, err := os.ReadFile(filepath.Join(freshDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "backend: memory")
}

func TestCLI_UnknownBackendFails(t *testing.T) {
	env := NewTestEnv(t)
	badDir := filepath.Join(env.TempDir, "bad-config")
	require.NoError(t, os.MkdirAll(badDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(badDir, "config.yaml"), []byte("backend: flash\n"), 0o644))

	result := env.RunPanel("--config-dir", badDir, "show")
	assert.Equal(t, 2, result.ExitCode)
	assert.Contains(t, result.Stderr, "unknown backend")
}
