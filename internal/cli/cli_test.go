package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/osmeac/internal/render"
	"github.com/BartekS5/osmeac/internal/share"
	"github.com/BartekS5/osmeac/pkg/models"
)

// setup isolates config and store in temp directories and returns the
// store directory.
func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, k := range []string{"OSMEAC_STORE_DRIVER", "OSMEAC_STORE_DSN", "OSMEAC_SHARE_BASE_URL", "OSMEAC_SHARE_MAX_VERSION", "OSMEAC_LOG_LEVEL", "OSMEAC_LOG_FORMAT", "OSMEAC_PREVIEW_DEBOUNCE"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Setenv("OSMEAC_STORE_DIR", dir)
	t.Setenv("OSMEAC_LOG_OUTPUT", filepath.Join(t.TempDir(), "test.log"))
	chdir(t, t.TempDir())
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setNow(t *testing.T, ts time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, out)
	return out
}

func TestSetGetAndMission(t *testing.T) {
	setup(t)

	mustRun(t, "set", "mission-who", "1st", "Squad")
	mustRun(t, "set", "mission-what", "attacks to seize")
	assert.Equal(t, "1st Squad\n", mustRun(t, "get", "mission-who"))

	assert.Equal(t, "1st Squad attacks to seize ___ ___ IOT ___.\n", mustRun(t, "mission"))
	assert.Equal(t, "\"1st Squad attacks to seize [WHERE] [WHEN] IOT [WHY].\"\n", mustRun(t, "mission", "--inline"))

	mustRun(t, "set", "mission-who")
	assert.Equal(t, "\n", mustRun(t, "get", "mission-who"))

	_, err := run(t, "set", "no-such-field", "x")
	assert.Error(t, err)
	_, err = run(t, "get", "no-such-field")
	assert.Error(t, err)
}

func TestNewAndExample(t *testing.T) {
	setup(t)

	mustRun(t, "example")
	assert.Equal(t, render.Text(models.ExampleOrder()), mustRun(t, "render"))

	mustRun(t, "new")
	assert.Equal(t, render.Text(models.EmptyOrder()), mustRun(t, "render"))
}

func TestRenderFormats(t *testing.T) {
	setup(t)
	mustRun(t, "example")

	html := mustRun(t, "render", "--format", "html")
	assert.Contains(t, html, `class="order-header"`)

	page := mustRun(t, "render", "--format", "page", "--title", "OPORD 7")
	assert.Contains(t, page, "<title>OPORD 7</title>")

	out := filepath.Join(t.TempDir(), "order.txt")
	mustRun(t, "render", "--out", out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, render.Text(models.ExampleOrder()), string(data))

	_, err = run(t, "render", "--format", "pdf")
	assert.Error(t, err)
}

func TestExportDefaultFilename(t *testing.T) {
	setup(t)
	mustRun(t, "example")

	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	setNow(t, ts)
	out := mustRun(t, "export")
	name := render.ExportFilename(ts)
	assert.Contains(t, out, name)
	assert.FileExists(t, name)
}

func TestExportReusedCommandDatesEachRun(t *testing.T) {
	setup(t)
	mustRun(t, "example")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"export"})

	first := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	second := first.AddDate(0, 0, 1)

	setNow(t, first)
	require.NoError(t, cmd.Execute(), out.String())
	setNow(t, second)
	require.NoError(t, cmd.Execute(), out.String())

	assert.FileExists(t, render.ExportFilename(first))
	assert.FileExists(t, render.ExportFilename(second))
	assert.Contains(t, out.String(), "Exported to "+render.ExportFilename(second))
}

func TestShareAndImport(t *testing.T) {
	setup(t)
	mustRun(t, "example")

	out := mustRun(t, "share", "--link-only")
	link := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(link, "https://osmeac.app/?order="), link)

	got, ok := share.FromLink(link)
	require.True(t, ok)
	assert.Equal(t, models.ExampleOrder(), got)

	mustRun(t, "new")
	assert.Contains(t, mustRun(t, "import", link, "--save", "From radio"), "Order loaded from shared link.")
	assert.Equal(t, render.Text(models.ExampleOrder()), mustRun(t, "render"))
	assert.Contains(t, mustRun(t, "orders", "list"), "From radio")

	_, err := run(t, "import", "definitely-not-a-token!")
	assert.Error(t, err)
}

func TestShareDefaultConfigPrintsQR(t *testing.T) {
	setup(t)
	mustRun(t, "new")

	out := mustRun(t, "share")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 10, out)
	assert.True(t, strings.HasPrefix(lines[0], "https://osmeac.app/?order="), lines[0])
	assert.Contains(t, out, "█")
	assert.NotContains(t, out, "too large")
}

func TestShareWritesImages(t *testing.T) {
	setup(t)
	mustRun(t, "set", "mission-who", "1st Squad")

	dir := t.TempDir()
	png := filepath.Join(dir, "order.png")
	svg := filepath.Join(dir, "order.svg")
	mustRun(t, "share", "--png", png, "--svg", svg, "--size", "128")

	assert.FileExists(t, png)
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
}

func TestOrdersLifecycle(t *testing.T) {
	setup(t)

	assert.Equal(t, "No saved orders.\n", mustRun(t, "orders", "list"))

	mustRun(t, "example")
	out := mustRun(t, "orders", "save", "Raid", "on", "OBJ", "Bravo")
	require.Contains(t, out, `Saved "Raid on OBJ Bravo" as `)
	id := strings.TrimSpace(out[strings.LastIndex(out, " ")+1:])

	assert.Contains(t, mustRun(t, "orders", "list"), "Raid on OBJ Bravo")

	mustRun(t, "new")
	mustRun(t, "set", "time-hack", "0600")
	mustRun(t, "orders", "update", id)

	mustRun(t, "example")
	mustRun(t, "orders", "load", id)
	assert.Equal(t, "0600\n", mustRun(t, "get", "time-hack"))
	assert.Equal(t, "\n", mustRun(t, "get", "mission-who"))

	mustRun(t, "orders", "delete", id)
	assert.Equal(t, "No saved orders.\n", mustRun(t, "orders", "list"))

	_, err := run(t, "orders", "update", id)
	assert.Error(t, err)
	_, err = run(t, "orders", "load", id)
	assert.Error(t, err)
}

func TestTransferToSQLite(t *testing.T) {
	setup(t)
	mustRun(t, "example")
	mustRun(t, "orders", "save", "Raid")
	mustRun(t, "orders", "save", "Ambush")

	dsn := filepath.Join(t.TempDir(), "backup.db")
	assert.Contains(t, mustRun(t, "transfer", "--to-driver", "sqlite", "--to-dsn", dsn, "--dry-run"), "2 saved orders would be copied")
	assert.Contains(t, mustRun(t, "transfer", "--to-driver", "sqlite", "--to-dsn", dsn, "--include-current"), "Copied 2 saved orders")

	t.Setenv("OSMEAC_STORE_DRIVER", "sqlite")
	t.Setenv("OSMEAC_STORE_DSN", dsn)
	list := mustRun(t, "orders", "list")
	assert.Contains(t, list, "Raid")
	assert.Contains(t, list, "Ambush")
	assert.Equal(t, render.Text(models.ExampleOrder()), mustRun(t, "render"))
}

func TestTransferValidatesTarget(t *testing.T) {
	setup(t)
	_, err := run(t, "transfer", "--to-driver", "mongo")
	assert.Error(t, err)
	_, err = run(t, "transfer", "--to-driver", "file")
	assert.Error(t, err)
	_, err = run(t, "transfer", "--to-driver", "redis", "--to-dsn", "x")
	assert.Error(t, err)
}

func TestFieldsAndTasks(t *testing.T) {
	setup(t)
	mustRun(t, "example")

	out := mustRun(t, "fields", "--section", "mission")
	assert.Equal(t, 6, strings.Count(out, "\n"))
	assert.Contains(t, out, "mission.who")

	tasks := mustRun(t, "tasks")
	assert.Contains(t, tasks, "Offensive Tasks")
	assert.Contains(t, tasks, "  attacks to seize")
}

func TestCustomMapping(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "mapping.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"unit": "mission.who"}`), 0o644))

	mustRun(t, "--mapping", path, "set", "unit", "Weapons Squad")
	assert.Equal(t, "Weapons Squad\n", mustRun(t, "get", "mission-who"))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"unit": "mission.nobody"}`), 0o644))
	_, err := run(t, "--mapping", bad, "fields")
	assert.Error(t, err)
}

func TestExecuteLogsFailureAndClosesLogger(t *testing.T) {
	setup(t)
	logPath := filepath.Join(t.TempDir(), "run.log")
	t.Setenv("OSMEAC_LOG_OUTPUT", logPath)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"render", "--format", "pdf"})

	require.Error(t, Execute(context.Background(), cmd))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Command failed")
	assert.Contains(t, string(data), "pdf")

	// A closed logger is re-opened by the next command.
	mustRun(t, "new")
}
