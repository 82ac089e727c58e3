package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = execute(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func TestSummarize_ListReport(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"warnings": ["a", "b"], "errors": ["x"]},
		{"warnings": [], "errors": []},
		{"warnings": ["c"], "errors": ["y", "z"]}
	]`), 0o644))

	code, out, _ := run(t, "summarize", path)
	require.Equal(t, 0, code)
	require.Equal(t, "files=3 warnings=3 errors=3\n", out)
}

func TestSummarize_DefaultPathFromConfig(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "open_ics_report.json"),
		[]byte(`{"files_scanned": 40, "warnings": "7", "errors": null}`), 0o644))

	code, out, _ := run(t, "summarize")
	require.Equal(t, 0, code)
	require.Equal(t, "files=40 warnings=7 errors=0\n", out)
}

func TestSummarize_BadInputStillExitsZero(t *testing.T) {
	dir := inTempDir(t)
	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte(`{"files_scanned":`), 0o644))

	for _, p := range []string{filepath.Join(dir, "missing.json"), corrupt} {
		code, out, stderr := run(t, "summarize", p)
		require.Equal(t, 0, code, "path=%s", p)
		require.Equal(t, "files=0 warnings=0 errors=0\n", out)
		require.Contains(t, stderr, "report unreadable")
	}
}

func TestSummarize_StepSummary(t *testing.T) {
	dir := inTempDir(t)
	summaryFile := filepath.Join(dir, "step.md")
	t.Setenv("GITHUB_STEP_SUMMARY", summaryFile)
	report := filepath.Join(dir, "r.json")
	require.NoError(t, os.WriteFile(report, []byte(`[{"errors": ["e"]}]`), 0o644))

	code, out, _ := run(t, "summarize", "--step-summary", report)
	require.Equal(t, 0, code)
	require.Equal(t, "files=1 warnings=0 errors=1\n", out)

	b, err := os.ReadFile(summaryFile)
	require.NoError(t, err)
	require.Contains(t, string(b), "`files=1 warnings=0 errors=1`")
}

func TestSummarize_RunJournal(t *testing.T) {
	dir := inTempDir(t)
	journal := filepath.Join(dir, "logs", "runs.ndjson")
	t.Setenv("CK_RUNLOG_PATH", journal)

	code, _, _ := run(t, "summarize", "nothing.json")
	require.Equal(t, 0, code)

	f, err := os.Open(journal)
	require.NoError(t, err)
	defer f.Close()
	sc := bufio.NewScanner(f)
	require.True(t, sc.Scan())
	line := sc.Text()
	require.Contains(t, line, `"type":"summary"`)
	require.Contains(t, line, `"src":"nothing.json"`)
	require.Contains(t, line, `"run_id":"run-`)
}

func TestSummarize_IgnoresExtraArgs(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("a.json", []byte(`[{"warnings": ["w"], "errors": []}]`), 0o644))
	code, out, stderr := run(t, "summarize", "a.json", "b.json", "c.json")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "files=1 warnings=1 errors=0\n", out)
}

func TestSummarize_BadConfigFails(t *testing.T) {
	inTempDir(t)
	code, out, stderr := run(t, "--config", "does-not-exist.yaml", "summarize")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "command failed")
}

func TestFlyers_OnlyOneSlug(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
	dir := inTempDir(t)
	outDir := filepath.Join(dir, "flyers")

	code, out, stderr := run(t, "flyers", "--out", outDir, "--only", "mission_dolores", "--dpi", "100")
	require.Equal(t, 0, code, stderr)

	png := filepath.Join(outDir, "flyer_mission_dolores_letter.png")
	pdf := filepath.Join(outDir, "flyer_mission_dolores_letter.pdf")
	require.Equal(t, "Wrote "+png+"\nWrote "+pdf+"\n", out)
	require.FileExists(t, png)
	require.FileExists(t, pdf)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestFlyers_UnknownSlug(t *testing.T) {
	inTempDir(t)
	code, out, stderr := run(t, "flyers", "--only", "nowhere")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "unknown slug")
	_, err := os.Stat("assets/flyers")
	require.True(t, os.IsNotExist(err))
}

func TestFlyers_RejectsArgs(t *testing.T) {
	inTempDir(t)
	code, _, _ := run(t, "flyers", "extra")
	require.Equal(t, 1, code)
}

func TestVersion(t *testing.T) {
	inTempDir(t)
	code, out, _ := run(t, "version")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, "cleanup-kit dev "), out)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
