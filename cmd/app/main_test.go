package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
	"github.com/akyairhashvil/countdown/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
)

const testConfigPath = "/cfg/config.yaml"

var testNow = time.Date(2026, 10, 15, 18, 0, 0, 0, time.Local)

type harness struct {
	env     env
	stdout  *bytes.Buffer
	started *tui.MainModel
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("COUNTDOWN_DEBUG", "")
	h := &harness{stdout: &bytes.Buffer{}}
	h.env = env{
		fs:     afero.NewMemMapFs(),
		stdout: h.stdout,
		stderr: &bytes.Buffer{},
		isTTY:  func() bool { return true },
		program: func(m tea.Model) error {
			mm := m.(tui.MainModel)
			h.started = &mm
			return nil
		},
		now: func() time.Time { return testNow },
	}
	return h
}

func (h *harness) writeConfig(t *testing.T, body string) {
	t.Helper()
	if err := afero.WriteFile(h.env.fs, testConfigPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func (h *harness) run(args ...string) error {
	full := append([]string{"countdown", "--config", testConfigPath}, args...)
	return newApp(h.env).Run(full)
}

func TestDefaultsStartTimer(t *testing.T) {
	h := newHarness(t)
	if err := h.run("--no-history"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if h.started == nil {
		t.Fatalf("expected the program to start")
	}
	got := h.started.Timer().Controller().Duration()
	if got != (countdown.Duration{Minutes: 5}) {
		t.Fatalf("expected default 0h5m0s, got %s", got)
	}
	if exists, _ := afero.Exists(h.env.fs, testConfigPath); !exists {
		t.Fatalf("expected default config to be written")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	h := newHarness(t)
	h.writeConfig(t, "timer:\n  hours: 1\n  minutes: 10\n  seconds: 0\nui:\n  theme: dracula\nhistory:\n  enabled: false\n")
	if err := h.run("-m", "2", "--seconds", "30", "--theme", "mono"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	timer := h.started.Timer()
	if got := timer.Controller().Duration(); got != (countdown.Duration{Hours: 1, Minutes: 2, Seconds: 30}) {
		t.Fatalf("unexpected duration %s", got)
	}
	if timer.ThemeName() != "mono" {
		t.Fatalf("expected mono theme, got %q", timer.ThemeName())
	}
}

func TestFlagsAreClamped(t *testing.T) {
	h := newHarness(t)
	if err := h.run("--no-history", "-H", "99", "-m", "75", "-s", "90"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := h.started.Timer().Controller().Duration(); got != (countdown.Duration{Hours: 23, Minutes: 59, Seconds: 59}) {
		t.Fatalf("expected clamped duration, got %s", got)
	}
}

func TestRefusesWithoutTerminal(t *testing.T) {
	h := newHarness(t)
	h.env.isTTY = func() bool { return false }
	if err := h.run(); !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal, got %v", err)
	}
	if h.started != nil {
		t.Fatalf("program must not start without a terminal")
	}
}

func TestUnknownThemeFlag(t *testing.T) {
	h := newHarness(t)
	err := h.run("--theme", "neon")
	if err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Fatalf("expected unknown theme error, got %v", err)
	}
}

func TestMalformedConfig(t *testing.T) {
	h := newHarness(t)
	h.writeConfig(t, "timer: [1, 2\n")
	if err := h.run(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLogPath(t *testing.T) {
	vars := map[string]string{}
	getenv := func(k string) string { return vars[k] }
	if got := logPath("", getenv); got != "" {
		t.Fatalf("expected logging off, got %q", got)
	}
	if got := logPath("/tmp/x.log", getenv); got != "/tmp/x.log" {
		t.Fatalf("expected flag path, got %q", got)
	}
	vars["COUNTDOWN_DEBUG"] = "1"
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := logPath("", getenv); got != filepath.Join("/data", "countdown", "debug.log") {
		t.Fatalf("unexpected debug log path %q", got)
	}
}

func TestOpenLogDiscardByDefault(t *testing.T) {
	logger, closeLog, err := openLog("")
	if err != nil || logger == nil {
		t.Fatalf("expected discard logger, got %v", err)
	}
	closeLog()
}

func seedHistory(t *testing.T, h *harness, runs ...models.Run) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	h.writeConfig(t, "history:\n  enabled: true\n  path: "+dbPath+"\n")
	ctx := context.Background()
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	for _, r := range runs {
		if _, err := db.RecordRun(ctx, r); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}
	return dbPath
}

func TestHistoryCommand(t *testing.T) {
	h := newHarness(t)
	seedHistory(t, h,
		testutil.NewRun().WithSeconds(3).FinishedAt(testNow.Add(-10*time.Minute)).Build(),
		testutil.NewRun().WithSeconds(300).FinishedAt(testNow.Add(-2*time.Minute)).Build(),
	)
	if err := h.run("history"); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	out := h.stdout.String()
	for _, want := range []string{"0h5m0s", "0h0m3s", "2 minutes ago", "00:05:03 counted over 2 countdowns"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "0h5m0s") > strings.Index(out, "0h0m3s") {
		t.Fatalf("expected newest first:\n%s", out)
	}

	h.stdout.Reset()
	if err := h.run("history", "--limit", "1"); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if strings.Contains(h.stdout.String(), "0h0m3s") {
		t.Fatalf("limit not honored:\n%s", h.stdout.String())
	}
}

func TestHistoryDelete(t *testing.T) {
	h := newHarness(t)
	seedHistory(t, h, testutil.NewRun().WithSeconds(3).FinishedAt(testNow).Build())
	if err := h.run("history", "--delete", "1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "Removed countdown #1") {
		t.Fatalf("unexpected output %q", h.stdout.String())
	}
	if err := h.run("history", "--delete", "1"); err == nil {
		t.Fatalf("expected an error deleting a missing entry")
	}
	h.stdout.Reset()
	if err := h.run("history"); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "no finished countdowns yet") {
		t.Fatalf("entry not removed:\n%s", h.stdout.String())
	}
}

func TestHistoryCommandEmpty(t *testing.T) {
	h := newHarness(t)
	seedHistory(t, h)
	if err := h.run("history"); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "no finished countdowns yet") {
		t.Fatalf("unexpected output %q", h.stdout.String())
	}
}

func TestReportCommand(t *testing.T) {
	h := newHarness(t)
	seedHistory(t, h, models.Run{DurationSeconds: 60, StartedAt: testNow.Add(-time.Hour), FinishedAt: testNow.Add(-59 * time.Minute)})
	out := filepath.Join(t.TempDir(), "reports", "today.pdf")
	if err := h.run("report", "--out", out); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF file")
	}
	if !strings.Contains(h.stdout.String(), "1 countdown") {
		t.Fatalf("unexpected output %q", h.stdout.String())
	}
}

func TestReportCommandBadDate(t *testing.T) {
	h := newHarness(t)
	if err := h.run("report", "--date", "15/10/2026"); err == nil || !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Fatalf("expected date error, got %v", err)
	}
}

func TestPrintRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, nil, testNow)
	if !strings.Contains(buf.String(), "no finished countdowns yet") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
