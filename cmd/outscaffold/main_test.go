package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testhelp "git.home.luguber.info/inful/outscaffold/internal/testing"
)

var expectedTree = []string{
	"outputs",
	"outputs/CIFAR",
	"outputs/CIFAR/boosted",
	"outputs/CIFAR/heatmaps",
	"outputs/CIFAR/inits",
	"outputs/CIFAR/logs",
	"outputs/CIFAR/masks",
	"outputs/CIFAR/perturbations",
	"outputs/OpenALPRBorder",
	"outputs/OpenALPRBorder/boosted",
	"outputs/OpenALPRBorder/heatmaps",
	"outputs/OpenALPRBorder/inits",
	"outputs/OpenALPRBorder/masks",
	"outputs/OpenALPRBorder/perturbations",
	"outputs/boosted",
	"outputs/heatmaps",
	"outputs/inits",
	"outputs/masks",
	"outputs/perturbations",
	"outputs/whitebox",
}

// inTempDir switches the test into an empty working directory.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_NoArgumentsCreatesLayout(t *testing.T) {
	dir := inTempDir(t)

	code, _, stderr := runCLI(t)
	require.Equal(t, 0, code, stderr)

	testhelp.NewFileAssertions(t, dir).AssertTree(expectedTree...)
}

func TestRun_TwiceSucceeds(t *testing.T) {
	dir := inTempDir(t)

	code, _, _ := runCLI(t)
	require.Equal(t, 0, code)
	code, _, stderr := runCLI(t)
	require.Equal(t, 0, code, stderr)

	testhelp.NewFileAssertions(t, dir).AssertTree(expectedTree...)
}

func TestRun_FileCollisionFails(t *testing.T) {
	dir := inTempDir(t)
	testhelp.NewFileAssertions(t, dir).WriteFile("outputs/CIFAR", "not a dir")

	code, _, stderr := runCLI(t)

	assert.Equal(t, 6, code)
	assert.Equal(t, "Error: path component exists and is not a directory: outputs/CIFAR\n", stderr,
		"a plain run prints exactly one diagnostic")
}

func TestRun_VerboseLogsFailure(t *testing.T) {
	dir := inTempDir(t)
	testhelp.NewFileAssertions(t, dir).WriteFile("outputs/CIFAR", "not a dir")

	code, _, stderr := runCLI(t, "--verbose")

	assert.Equal(t, 6, code)
	assert.Contains(t, stderr, "level=ERROR")
	assert.Contains(t, stderr, "category=invalid_path")
	assert.Contains(t, stderr, "outputs/CIFAR")
}

func TestRun_PermissionDenied(t *testing.T) {
	testhelp.SkipIfRoot(t)
	dir := inTempDir(t)
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	code, _, stderr := runCLI(t)

	assert.Equal(t, 5, code)
	assert.Contains(t, stderr, "Error: permission denied creating directory: outputs")
	testhelp.NewFileAssertions(t, dir).AssertEmpty()
}

func TestRun_Plan(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "outputs"), 0o755))

	code, stdout, stderr := runCLI(t, "plan")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(expectedTree))
	assert.Equal(t, "exists outputs", lines[0])
	assert.Equal(t, "create outputs/boosted", lines[1])
	testhelp.NewFileAssertions(t, dir).AssertTree("outputs")
}

func TestRun_InitThenCustomLayout(t *testing.T) {
	dir := inTempDir(t)

	code, stdout, stderr := runCLI(t, "init", "--output", "layout.yaml")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Wrote layout to layout.yaml")

	code, _, _ = runCLI(t, "init", "--output", "layout.yaml")
	assert.Equal(t, 7, code, "refuses to overwrite without --force")

	custom := "root: results\nkinds: [masks]\nnamespaces:\n  - name: ImageNet\n    kinds: [logs]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "layout.yaml"), []byte(custom), 0o600))

	code, _, stderr = runCLI(t, "--layout", "layout.yaml")
	require.Equal(t, 0, code, stderr)

	testhelp.NewFileAssertions(t, dir).AssertTree(
		"layout.yaml",
		"results",
		"results/ImageNet",
		"results/ImageNet/logs",
		"results/masks",
	)
}

func TestRun_InvalidLayoutFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "layout.yaml"), []byte("kinds: [a/b]\n"), 0o600))

	code, _, _ := runCLI(t, "-l", "layout.yaml")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "-l", "missing.yaml")
	assert.Equal(t, 7, code)
	testhelp.NewFileAssertions(t, dir).AssertTree("layout.yaml")
}

func TestRun_MetricsFile(t *testing.T) {
	dir := inTempDir(t)
	metricsDir := t.TempDir()
	metricsFile := filepath.Join(metricsDir, "outscaffold.prom")

	code, _, stderr := runCLI(t, "create", "--metrics-file", metricsFile)
	require.Equal(t, 0, code, stderr)
	testhelp.NewFileAssertions(t, dir).AssertTree(expectedTree...)

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `outscaffold_directories_total{result="created"} 20`)
	assert.Contains(t, string(data), `outscaffold_runs_total{outcome="success"} 1`)
}

func TestRun_UnknownFlag(t *testing.T) {
	inTempDir(t)

	code, _, stderr := runCLI(t, "--no-such-flag")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "no-such-flag")
}
