package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/urncode40/internal/config"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	var stdout, stderr bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEncodeCmd(t *testing.T) {
	out, _, err := run(t, "", "encode", "ABC", "A&B")
	require.NoError(t, err)
	assert.Equal(t, "0694\n0641FC260C81\n", out)
}

func TestEncodeCmd_Stdin(t *testing.T) {
	out, _, err := run(t, "1234567890123456\n\n€\n", "encode")
	require.NoError(t, err)
	assert.Equal(t, "FB730462D53C8ABAC0\nFEE282AC\n", out)
}

func TestEncodeCmd_Failure(t *testing.T) {
	out, logs, err := run(t, "", "encode", "ABC", "\U0001F600")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "0694\n", out)
	assert.Contains(t, logs, "code point above U+FFFF")
}

func TestDecodeCmd(t *testing.T) {
	out, _, err := run(t, "", "decode", "0641FC260C81")
	require.NoError(t, err)
	assert.Equal(t, "A&B\n", out)

	out, _, err = run(t, "", "decode", "--preserve-padding", "0641FC260C81")
	require.NoError(t, err)
	assert.Equal(t, "A  &B\n", out)
}

func TestDecodeCmd_ConfigPadding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preserve_trailing_padding: true\n"), 0o644))

	out, _, err := run(t, "", "--config", path, "decode", "0641FC260C81")
	require.NoError(t, err)
	assert.Equal(t, "A  &B\n", out)

	out, _, err = run(t, "", "--config", path, "decode", "--preserve-padding=false", "0641FC260C81")
	require.NoError(t, err)
	assert.Equal(t, "A&B\n", out)
}

func TestValidateCmd(t *testing.T) {
	out, _, err := run(t, "", "validate", "ABC", "\U0001F600")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "ok\tABC\ninvalid\t\U0001F600\n", out)
}

func TestInspectCmd(t *testing.T) {
	out, _, err := run(t, "", "inspect", "0694FC7E")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"OFFSET", "KIND", "RAW", "TEXT"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "standard", "0694", `"ABC"`}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"4", "ascii", "FC7E", `"~"`}, strings.Fields(lines[2]))

	_, _, err = run(t, "", "inspect", "FB00")
	assert.Error(t, err)
}

func TestBatchCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	require.NoError(t, os.WriteFile(path, []byte("ABC\nA&B\n"), 0o644))

	out, logs, err := run(t, "", "batch", "encode", "--format", "tsv", path)
	require.NoError(t, err)
	assert.Equal(t, "ABC\t0694\nA&B\t0641FC260C81\n", out)
	assert.Contains(t, logs, "batch complete")
}

func TestBatchCmd_StdinDecode(t *testing.T) {
	out, logs, err := run(t, "0694\nZZZZ\n", "--log-format", "json", "batch", "decode")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "ABC\n\n", out)
	assert.Contains(t, logs, `"line":2`)
}

func TestBatchCmd_BadOperation(t *testing.T) {
	_, _, err := run(t, "", "batch", "compress")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "urncode40 "+libVersion+"\n", out)
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "", "--log-level", "loud", "version")
	assert.Error(t, err)
}
