package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyjia/fapiao-helper/internal/commands"
	"github.com/garyjia/fapiao-helper/internal/invoice/invoicetest"
)

// inTempDir runs the test from an empty working directory so no .env is read.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func runFapiao(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := commands.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func invoiceFolder(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	invoicetest.WritePDF(t, filepath.Join(dir, "a.pdf"), "Invoice", "Total ¥ 88.00")
	invoicetest.WritePDF(t, filepath.Join(dir, "b.pdf"), "Receipt without a currency marker")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("¥ 5.00"), 0644))
	return dir
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestProcess_EndToEnd(t *testing.T) {
	inTempDir(t)
	dir := invoiceFolder(t)

	out, err := runFapiao(t, "process", dir)
	require.NoError(t, err, out)

	assert.Contains(t, out, "PDF 扫描数量：2\n")
	assert.Contains(t, out, "成功改名：1\n")
	assert.Contains(t, out, "失败/跳过：1\n")
	assert.Contains(t, out, "报表条目数：1\n")
	assert.Contains(t, out, "合计金额：88.00 元\n")
	assert.FileExists(t, filepath.Join(dir, "a_88.00元.pdf"))
	assert.FileExists(t, filepath.Join(dir, "b.pdf"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))

	reports, err := filepath.Glob(filepath.Join(dir, "*_报销88.00元.xlsx"))
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestProcess_VerboseAndJSON(t *testing.T) {
	inTempDir(t)
	dir := invoiceFolder(t)

	out, err := runFapiao(t, "process", dir, "--verbose")
	require.NoError(t, err, out)
	assert.Contains(t, out, "[renamed] a.pdf -> a_88.00元.pdf")
	assert.Contains(t, out, "[failed]  b.pdf")

	out, err = runFapiao(t, "process", dir, "--json")
	require.NoError(t, err, out)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.Equal(t, float64(2), result["scanned"])
	assert.Equal(t, float64(0), result["renamed"])
	assert.Equal(t, "88.00", result["total"])
}

func TestProcess_DryRunLeavesFolderUnchanged(t *testing.T) {
	inTempDir(t)
	dir := invoiceFolder(t)
	before, err := os.ReadDir(dir)
	require.NoError(t, err)

	out, err := runFapiao(t, "process", dir, "--dry-run", "--verbose")
	require.NoError(t, err, out)

	assert.Contains(t, out, "[planned] a.pdf -> a_88.00元.pdf")
	assert.Contains(t, out, "成功改名：0\n")
	assert.Contains(t, out, "预计改名：1\n")
	after, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
	assert.FileExists(t, filepath.Join(dir, "a.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "a_88.00元.pdf"))
	reports, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestRename_DryRunFromConfig(t *testing.T) {
	inTempDir(t)
	dir := invoiceFolder(t)
	cfg := writeConfig(t, "rename:\n  dry_run: true\n")

	out, err := runFapiao(t, "rename", dir, "--config", cfg)
	require.NoError(t, err, out)
	assert.Contains(t, out, "预计改名：1")
	assert.FileExists(t, filepath.Join(dir, "a.pdf"))

	// the flag overrides the file
	out, err = runFapiao(t, "rename", dir, "--config", cfg, "--dry-run=false")
	require.NoError(t, err, out)
	assert.Contains(t, out, "成功改名：1")
	assert.FileExists(t, filepath.Join(dir, "a_88.00元.pdf"))
}

func TestProcess_MissingFolder(t *testing.T) {
	inTempDir(t)

	_, err := runFapiao(t, "process", filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}

func TestStageCommands(t *testing.T) {
	inTempDir(t)
	dir := invoiceFolder(t)

	out, err := runFapiao(t, "rename", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "成功改名：1")
	reports, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	require.NoError(t, err)
	assert.Empty(t, reports)

	out, err = runFapiao(t, "report", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "报表条目数：1")
	assert.Contains(t, out, "合计金额：88.00 元")
}

func TestProcess_SkipReportFromEnvironment(t *testing.T) {
	inTempDir(t)
	dir := invoiceFolder(t)
	t.Setenv("FAPIAO_REPORT_SKIP", "true")

	out, err := runFapiao(t, "process", dir)
	require.NoError(t, err, out)

	assert.Contains(t, out, "成功改名：1")
	reports, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestHistory(t *testing.T) {
	inTempDir(t)
	dir := invoiceFolder(t)
	cfg := writeConfig(t, "database:\n  enabled: true\n  path: "+filepath.Join(t.TempDir(), "runs.db")+"\n")

	out, err := runFapiao(t, "process", dir, "--json", "--config", cfg)
	require.NoError(t, err, out)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	runID, _ := result["run_id"].(string)
	require.NotEmpty(t, runID)

	out, err = runFapiao(t, "history", "--config", cfg)
	require.NoError(t, err, out)
	assert.Contains(t, out, runID)
	assert.Contains(t, out, dir)
	assert.Contains(t, out, "88.00")

	out, err = runFapiao(t, "history", runID, "--config", cfg)
	require.NoError(t, err, out)
	assert.Contains(t, out, "a_88.00元.pdf")
	assert.Contains(t, out, "failed")
}

func TestHistory_Disabled(t *testing.T) {
	inTempDir(t)

	_, err := runFapiao(t, "history")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestExtractText(t *testing.T) {
	inTempDir(t)
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "invoice.pdf")
	invoicetest.WritePDF(t, pdfPath, "Total ¥ 88.00")

	out, err := runFapiao(t, "extract-text", pdfPath)
	require.NoError(t, err, out)

	txt := filepath.Join(dir, "invoice.txt")
	assert.Contains(t, out, "输出文件: "+txt)
	assert.Contains(t, out, "识别金额: 88.00 元")
	assert.Contains(t, out, strings.Repeat("-", 50))

	data, err := os.ReadFile(txt)
	require.NoError(t, err)
	assert.Contains(t, string(data), "88.00")
}

func TestRoot_UnknownEngineFailsFast(t *testing.T) {
	inTempDir(t)
	cfg := writeConfig(t, "pdf:\n  engine: ocr\n")

	_, err := runFapiao(t, "process", t.TempDir(), "--config", cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf.engine")
}
