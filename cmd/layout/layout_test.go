package layout_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HMetcalfeW/terracarta/cmd"
)

// writeTemp writes content to a temp file with the given suffix and returns
// its path. The file is removed when the test finishes.
func writeTemp(t *testing.T, suffix, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "layout-test-*"+suffix)
	require.NoError(t, err, "failed to create temp file")
	t.Cleanup(func() {
		if err := os.Remove(tmpfile.Name()); err != nil {
			t.Logf("failed to remove temp file: %v", err)
		}
	})

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err, "failed to write temp file")
	require.NoError(t, tmpfile.Close(), "failed to close temp file")
	return tmpfile.Name()
}

// runLayout executes the layout subcommand with the given flags and returns
// the captured output and the execution error.
func runLayout(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.RootCmd
	root.SetArgs(append([]string{"layout"}, args...))

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)

	err := root.Execute()
	return buf.String(), err
}

func TestLayoutCommand_NoInput(t *testing.T) {
	_, err := runLayout(t, "--input", "")
	require.Error(t, err, "expected error when no input is provided")
	assert.Contains(t, err.Error(), "no input file provided")
}

func TestLayoutCommand_MissingFile(t *testing.T) {
	_, err := runLayout(t, "--input", "/nonexistent/main.tf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestLayoutCommand_SourceInput(t *testing.T) {
	path := writeTemp(t, ".tf", `
resource "aws_vpc" "main" {
  cidr_block = "10.0.0.0/16"
}

resource "aws_instance" "web" {
  vpc_id = aws_vpc.main.id
}
`)

	out, err := runLayout(t, "--input", path, "--format", "json", "--output", "")
	require.NoError(t, err)
	assert.Contains(t, out, `"aws_vpc.main"`)
	assert.Contains(t, out, `"aws_instance.web"`)
	assert.Contains(t, out, `"position"`)
}

func TestLayoutCommand_PrebuiltInput(t *testing.T) {
	path := writeTemp(t, ".json", `{
  "nodes": [
    {"id": "aws_vpc.main", "type": "aws_vpc", "label": "main"},
    {"id": "aws_instance.web", "type": "aws_instance", "label": "web"}
  ],
  "edges": [
    {"source": "aws_vpc.main", "target": "aws_instance.web"}
  ]
}`)

	out, err := runLayout(t, "--input", path, "--format", "json", "--output", "")
	require.NoError(t, err)
	assert.Contains(t, out, `"aws_instance.web"`)
	assert.Contains(t, out, `"edges"`)
}

func TestLayoutCommand_DotFormat(t *testing.T) {
	path := writeTemp(t, ".tf", `
resource "aws_s3_bucket" "logs" {}
`)

	out, err := runLayout(t, "--input", path, "--format", "dot", "--output", "")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "aws_s3_bucket.logs")
}

func TestLayoutCommand_MermaidFormat(t *testing.T) {
	path := writeTemp(t, ".tf", `
resource "aws_s3_bucket" "logs" {}
`)

	out, err := runLayout(t, "--input", path, "--format", "mermaid", "--output", "")
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
}

func TestLayoutCommand_WritesOutputFile(t *testing.T) {
	input := writeTemp(t, ".tf", `
resource "aws_vpc" "main" {}
`)
	output := writeTemp(t, ".out.json", "")

	_, err := runLayout(t, "--input", input, "--format", "json", "--output", output)
	require.NoError(t, err)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(written), `"aws_vpc.main"`)
}

func TestLayoutCommand_BinaryFormatRequiresOutput(t *testing.T) {
	path := writeTemp(t, ".tf", `
resource "aws_vpc" "main" {}
`)

	_, err := runLayout(t, "--input", path, "--format", "png", "--output", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires --output")
}

func TestLayoutCommand_UnsupportedFormat(t *testing.T) {
	path := writeTemp(t, ".tf", `
resource "aws_vpc" "main" {}
`)

	_, err := runLayout(t, "--input", path, "--format", "gif", "--output", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestLayoutCommand_ExcludeFlags(t *testing.T) {
	path := writeTemp(t, ".tf", `
resource "aws_vpc" "main" {}

resource "aws_instance" "web" {}
`)

	out, err := runLayout(t, "--input", path, "--format", "json", "--output", "",
		"--exclude-type", "aws_vpc")
	require.NoError(t, err)
	assert.NotContains(t, out, `"aws_vpc.main"`)
	assert.Contains(t, out, `"aws_instance.web"`)
}
