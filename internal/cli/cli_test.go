package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/emailpro/internal/clipboard"
	"github.com/opencode-ai/emailpro/internal/config"
	"github.com/opencode-ai/emailpro/internal/events"
	"github.com/opencode-ai/emailpro/internal/logging"
	"github.com/opencode-ai/emailpro/internal/templates"
)

// isolate points config and template discovery at empty temp directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg := config.Default()
	cfg.Catalog.ProjectDir = t.TempDir()
	original := appConfig
	appConfig = cfg
	t.Cleanup(func() { appConfig = original })
}

type captureSink struct {
	events []*events.CopyEvent
}

func (s *captureSink) Record(_ context.Context, event *events.CopyEvent) error {
	s.events = append(s.events, event)
	return nil
}

type failingSink struct{}

func (failingSink) Record(context.Context, *events.CopyEvent) error {
	return errors.New("disk full")
}

// resetFlags restores the persistent flag globals after a test sets them.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile, logLevel, logFile = "", "", ""
		jsonOutput, nonInteractive, noColor, noProgress = false, false, false, false
		_ = logging.Close()
	})
}

func TestParseAssignments(t *testing.T) {
	values, err := parseAssignments([]string{"Name=Alex", "duration=30 minutes", "Option 1=a=b", "request="})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"Name":     "Alex",
		"duration": "30 minutes",
		"Option 1": "a=b",
		"request":  "",
	}
	for key, value := range want {
		if values[key] != value {
			t.Errorf("values[%q] = %q, want %q", key, values[key], value)
		}
	}

	for _, bad := range []string{"Name", "=value"} {
		if _, err := parseAssignments([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestRenderFromArgs(t *testing.T) {
	isolate(t)

	result, err := renderFromArgs("scheduling-meeting", []string{"Name=Alex", "unknown=ignored"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.Text, "Hi Alex,") {
		t.Errorf("unexpected text: %q", result.Text)
	}
	if strings.Contains(result.Text, "ignored") {
		t.Errorf("unknown key leaked into output: %q", result.Text)
	}

	wantUnfilled := []string{"specific topic", "duration", "Option 1", "Option 2"}
	if strings.Join(result.Unfilled, "|") != strings.Join(wantUnfilled, "|") {
		t.Errorf("unfilled = %v, want %v", result.Unfilled, wantUnfilled)
	}
}

func TestRenderFromArgsUnknownTemplate(t *testing.T) {
	isolate(t)

	_, err := renderFromArgs("nope", nil)
	if !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRenderResultJSON(t *testing.T) {
	isolate(t)

	result, err := renderFromArgs("saying-no", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["id"] != "saying-no" {
		t.Errorf("unexpected id %v", decoded["id"])
	}
	if _, ok := decoded["copied"]; ok {
		t.Error("copied should be omitted for render")
	}
	if !strings.Contains(decoded["text"].(string), "[Name]") {
		t.Error("expected markers to be kept when no values are given")
	}
}

func TestWriteTemplateList(t *testing.T) {
	isolate(t)
	catalog, err := loadCatalog(zerolog.Nop())
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}

	var buf bytes.Buffer
	if err := writeTemplateList(&buf, catalog.Filter("feedback"), false); err != nil {
		t.Fatalf("writeTemplateList: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.HasPrefix(lines[1], "giving-feedback") {
		t.Errorf("unexpected table: %q", buf.String())
	}

	buf.Reset()
	if err := writeTemplateList(&buf, nil, false); err != nil {
		t.Fatalf("writeTemplateList: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No templates found." {
		t.Errorf("unexpected empty output %q", buf.String())
	}

	buf.Reset()
	if err := writeTemplateList(&buf, catalog.All(), true); err != nil {
		t.Fatalf("writeTemplateList: %v", err)
	}
	var summaries []templateSummary
	if err := json.Unmarshal(buf.Bytes(), &summaries); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(summaries) != 9 || summaries[0].ID != "saying-no" || summaries[0].Placeholders != 5 {
		t.Errorf("unexpected summaries: %+v", summaries)
	}
}

func TestWriteTemplateDetail(t *testing.T) {
	isolate(t)
	catalog, err := loadCatalog(zerolog.Nop())
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	tmpl, err := catalog.Get("saying-no")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	var buf bytes.Buffer
	if err := writeTemplateDetail(&buf, tmpl); err != nil {
		t.Fatalf("writeTemplateDetail: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Saying No Professionally", "ID:       saying-no", "[Alternative 1]", tmpl.Body} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCopyRendered(t *testing.T) {
	var copied string
	writer := clipboard.WriterFunc(func(_ context.Context, text string) error {
		copied = text
		return nil
	})
	sink := &captureSink{}
	result := &renderResult{ID: "saying-no", Text: "Hi Alex,", Unfilled: []string{"request"}}

	var status bytes.Buffer
	if err := copyRendered(context.Background(), &status, writer, sink, time.Second, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if copied != "Hi Alex," {
		t.Errorf("clipboard got %q", copied)
	}
	if len(sink.events) != 1 || sink.events[0].Outcome != events.OutcomeCopied || sink.events[0].Unfilled != 1 {
		t.Errorf("unexpected events: %+v", sink.events)
	}

	line := status.String()
	if !strings.HasPrefix(line, "Copying saying-no (8 chars)... copied in ") || !strings.HasSuffix(line, ", 1 unfilled\n") {
		t.Errorf("unexpected status line %q", line)
	}
}

func TestCopyRenderedQuiet(t *testing.T) {
	noProgress = true
	defer func() { noProgress = false }()

	writer := clipboard.WriterFunc(func(context.Context, string) error { return nil })
	var status bytes.Buffer
	if err := copyRendered(context.Background(), &status, writer, &captureSink{}, time.Second, &renderResult{ID: "saying-no", Text: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Len() != 0 {
		t.Errorf("expected no status output, got %q", status.String())
	}
}

func TestCopyRenderedSinkError(t *testing.T) {
	var copied string
	writer := clipboard.WriterFunc(func(_ context.Context, text string) error {
		copied = text
		return nil
	})

	var status bytes.Buffer
	err := copyRendered(context.Background(), &status, writer, failingSink{}, time.Second, &renderResult{ID: "weekly-update", Text: "Hi team,"})
	if err != nil {
		t.Fatalf("a failing event sink must not fail the copy: %v", err)
	}
	if copied != "Hi team," {
		t.Errorf("clipboard got %q", copied)
	}
	if !strings.Contains(status.String(), "copied in ") {
		t.Errorf("unexpected status line %q", status.String())
	}
}

func TestCopyRenderedFailure(t *testing.T) {
	writer := clipboard.WriterFunc(func(context.Context, string) error {
		return clipboard.ErrUnsupported
	})
	sink := &captureSink{}

	var status bytes.Buffer
	err := copyRendered(context.Background(), &status, writer, sink, time.Second, &renderResult{ID: "saying-no", Text: "x"})
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		t.Fatalf("expected PreflightError, got %v", err)
	}
	if !strings.Contains(status.String(), "not copied: clipboard unsupported") {
		t.Errorf("unexpected status line %q", status.String())
	}
	if preflight.NextStep != "emailpro render saying-no" {
		t.Errorf("unexpected next step %q", preflight.NextStep)
	}
	if len(sink.events) != 1 || sink.events[0].Outcome != events.OutcomeFailed {
		t.Errorf("unexpected events: %+v", sink.events)
	}
}

func TestSetupLoadsConfigFile(t *testing.T) {
	isolate(t)
	resetFlags(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	logPath := filepath.Join(dir, "emailpro.log")
	content := "logging:\n  level: debug\n  file: " + logPath + "\nclipboard:\n  mode: osc52\n  osc52_wrap: tmux\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfgFile = path
	if err := setup(listCmd, nil); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg := GetConfig()
	if cfg.Path != path {
		t.Errorf("expected config path %s, got %s", path, cfg.Path)
	}
	if cfg.Clipboard.Mode != config.ClipboardOSC52 || cfg.Clipboard.OSC52Wrap != config.WrapTmux {
		t.Errorf("unexpected clipboard config %+v", cfg.Clipboard)
	}

	if err := logging.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "configuration loaded") {
		t.Errorf("expected setup to log at debug level, got %q", data)
	}
}

func TestSetupRejectsBadLogLevel(t *testing.T) {
	isolate(t)
	resetFlags(t)

	logLevel = "loud"
	if err := setup(listCmd, nil); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}

func TestExecuteClosesLogOnError(t *testing.T) {
	isolate(t)
	resetFlags(t)
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })

	logPath := filepath.Join(t.TempDir(), "emailpro.log")
	rootCmd.SetArgs([]string{"--log-file", logPath, "--non-interactive", "render", "no-such-template"})

	if err := Execute(); !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if level := logging.Logger().GetLevel(); level != zerolog.Disabled {
		t.Errorf("expected the logger to be closed after Execute, level is %v", level)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("expected log file to be created: %v", err)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &PreflightError{Message: "boom", Hint: "try this", NextStep: "emailpro list"})

	out := buf.String()
	for _, want := range []string{"Error: boom", "Hint: try this", "Try: emailpro list"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}

	jsonOutput = true
	defer func() { jsonOutput = false }()
	buf.Reset()
	printError(&buf, errors.New("plain"))

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["error"] != "plain" {
		t.Errorf("unexpected payload %v", decoded)
	}
}

func TestRunTUIRequiresInteractive(t *testing.T) {
	nonInteractive = true
	defer func() { nonInteractive = false }()

	err := runTUI()
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		t.Fatalf("expected PreflightError, got %v", err)
	}
}

func TestIsInteractive(t *testing.T) {
	nonInteractive = true
	if IsInteractive() {
		t.Error("--non-interactive should disable the UI")
	}
	nonInteractive = false

	t.Setenv("EMAILPRO_NON_INTERACTIVE", "1")
	if IsInteractive() {
		t.Error("EMAILPRO_NON_INTERACTIVE should disable the UI")
	}
	if !IsNonInteractive() {
		t.Error("IsNonInteractive should agree with IsInteractive")
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, []string{"ID", "TITLE"}, [][]string{{"a", "Alpha"}, {"bb", "Beta"}}); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	want := "ID  TITLE\na   Alpha\nbb  Beta\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
