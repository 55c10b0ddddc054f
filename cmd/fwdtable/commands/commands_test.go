package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-metaforward/proxy"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, outputFormat = "", "text"
	showFamily, showIgnore, showReducing = "", nil, false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

const familyFile = `
families:
  - name: Buffers
    target: bytes.Buffer
    ignore: [Grow]
  - name: Readers
    target: io.Reader
  - name: StringReaders
    base: Readers
    target: strings.Reader
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "families.yaml")
	require.NoError(t, os.WriteFile(path, []byte(familyFile), 0o600))
	return path
}

func TestShow_Text(t *testing.T) {
	out, err := execute(t, "show", "bytes.Buffer")
	require.NoError(t, err)
	assert.Contains(t, out, "target:      *bytes.Buffer")
	assert.Contains(t, out, "Len_ (Len)")
	assert.Contains(t, out, "WriteString")
	assert.Contains(t, out, "fingerprint:")
}

func TestShow_Ignore(t *testing.T) {
	out, err := execute(t, "show", "--ignore", "WriteString,Grow", "bytes.Buffer")
	require.NoError(t, err)
	assert.NotContains(t, out, "WriteString")
	assert.NotContains(t, out, "Grow")
	assert.Contains(t, out, "WriteByte")
	assert.Contains(t, out, "family:      TypedListForBuffer\n")
	assert.NotContains(t, out, "family:      List\n")
}

func TestShow_YAML(t *testing.T) {
	out, err := execute(t, "show", "--format", "yaml", "io.Reader")
	require.NoError(t, err)

	var info proxy.TableInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	assert.Equal(t, "io.Reader", info.Target)
	assert.Contains(t, out, "family: TypedListForReader\n")
	require.Len(t, info.Members, 1)
	assert.Equal(t, "Read", info.Members[0].Name)
	assert.Equal(t, "method", info.Members[0].Kind)
}

func TestShow_Reducing(t *testing.T) {
	out, err := execute(t, "show", "--reducing", "strings.Builder")
	require.NoError(t, err)
	assert.Contains(t, out, "Len_ (Len)")
	assert.Contains(t, out, "String_ (String)")
}

func TestShow_Errors(t *testing.T) {
	_, err := execute(t, "show", "nope.Type")
	assert.ErrorContains(t, err, "unknown type")

	_, err = execute(t, "show", "--format", "json", "bytes.Buffer")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "show")
	assert.Error(t, err)

	_, err = execute(t, "show", "--family", "Missing", "bytes.Buffer")
	assert.ErrorContains(t, err, "unknown family")
}

func TestShow_Family(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "show", "--config", cfg, "--family", "Readers", "bytes.Buffer")
	require.NoError(t, err)
	assert.Contains(t, out, "ReadFrom")

	_, err = execute(t, "show", "--config", cfg, "--family", "Readers", "time.Time")
	assert.ErrorIs(t, err, proxy.ErrType)
}

func TestFamilies(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "families", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Buffers")
	assert.Contains(t, out, "StringReaders")
	assert.Contains(t, out, "Grow")

	out, err = execute(t, "families", "--config", cfg, "--format", "yaml")
	require.NoError(t, err)
	var infos []familyInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 4)
	assert.Equal(t, "Buffers", infos[0].Name)
	assert.Equal(t, "List", infos[0].Base)
	assert.Equal(t, []string{"Grow"}, infos[0].Ignore)
	assert.Equal(t, "Readers", infos[3].Base)

	_, err = execute(t, "families", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "bytes.Buffer")
	assert.Contains(t, out, "*bytes.Buffer")
	assert.Contains(t, out, "io.Reader")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fwdtable version dev")
}
