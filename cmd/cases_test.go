package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores flag defaults so tests do not leak into each other.
func resetFlags(c *cobra.Command) {
	for _, sub := range c.Commands() {
		sub.Flags().VisitAll(func(f *pflag.Flag) {
			f.Value.Set(f.DefValue)
			f.Changed = false
		})
		resetFlags(sub)
	}
}

func TestCasesList_HidesAnswers(t *testing.T) {
	out, err := execute(t, "cases", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "28 / Male")
	assert.Contains(t, out, "5 cases")
	assert.Equal(t, 5, strings.Count(out, "(hidden)"))
	assert.NotContains(t, out, "Bipolar Disorder")
}

func TestCasesList_WithAnswers(t *testing.T) {
	out, err := execute(t, "cases", "list", "--answers")
	require.NoError(t, err)

	assert.Contains(t, out, "Bipolar Disorder – Manic Episode")
	assert.Contains(t, out, "Schizoaffective Disorder – Manic Type")
	assert.NotContains(t, out, "(hidden)")
}

func TestCasesExport_YAMLToStdout(t *testing.T) {
	out, err := execute(t, "cases", "export", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc["cases"], 5)
}

func TestCasesExport_XLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.xlsx")
	_, err := execute(t, "cases", "export", "--format", "xlsx", "--out", path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cases")
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}

func TestCasesExport_XLSXNeedsOut(t *testing.T) {
	_, err := execute(t, "cases", "export", "--format", "xlsx")
	assert.Error(t, err)
}

func TestCasesExport_UnknownFormat(t *testing.T) {
	_, err := execute(t, "cases", "export", "--format", "csv", "--out", filepath.Join(t.TempDir(), "x"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "casesim (devel)\n", out)
}

func TestTUILogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")
	c := &cobra.Command{}
	c.Flags().String("log-file", path, "")

	logger, closeLog, err := tuiLogger(c)
	require.NoError(t, err)
	logger.Debug("hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestTUILogger_NoFile(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().String("log-file", "", "")

	logger, closeLog, err := tuiLogger(c)
	require.NoError(t, err)
	defer closeLog()
	assert.NotNil(t, logger)
}

func TestPickerFromFlags_Seeded(t *testing.T) {
	seeded := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().Uint64("seed", 42, "")
		return c
	}

	a, b := pickerFromFlags(seeded()), pickerFromFlags(seeded())
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick().Diagnosis, b.Pick().Diagnosis, "draw %d", i)
	}
}
