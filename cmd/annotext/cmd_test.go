package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/annotext/config"
	"github.com/getzep/annotext/pkg/testutils"
)

// resetFlags rebuilds the flag sets so that no value or changed state leaks from one
// execution into the next.
func resetFlags() {
	for _, c := range []*cobra.Command{cmd, annotateCmd, vectorizeCmd, dumpJSONSchemaCmd} {
		c.ResetFlags()
	}
	bindFlags()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestHandleCLIOptions(t *testing.T) {
	t.Cleanup(resetFlags)
	cfg := &config.Config{Auth: config.AuthConfig{Secret: "test-secret"}}

	var out bytes.Buffer
	done, err := handleCLIOptions(&out, cfg)
	require.NoError(t, err)
	assert.False(t, done)

	showVersion = true
	done, err = handleCLIOptions(&out, cfg)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, config.VersionString+"\n", out.String())
	showVersion = false

	out.Reset()
	generateKey = true
	_, err = handleCLIOptions(&out, cfg)
	require.NoError(t, err)
	token := strings.TrimSpace(out.String())
	_, err = jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	generateKey = false

	out.Reset()
	dumpConfig = true
	_, err = handleCLIOptions(&out, cfg)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "********")
	assert.NotContains(t, out.String(), "test-secret")
	// the caller's config is not modified
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
}

func TestJSONSchemaCommand(t *testing.T) {
	out, err := execute(t, "json-schema")
	require.NoError(t, err)
	assert.Contains(t, out, "\"$schema\"")
}

func TestVectorizeCommand(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: error\n")
	input := filepath.Join(t.TempDir(), "automation_1.json")
	require.NoError(t, os.WriteFile(input, []byte(testutils.TestAnnotationJSON), 0o644))
	dir := filepath.Join(t.TempDir(), "vectors")

	out, err := execute(t, "vectorize", "--config", cfgPath, "-o", dir, input)
	require.NoError(t, err)
	assert.Contains(t, out, "[success] Vectorized data saved to "+filepath.Join(dir, "vec_1.npy"))
	assert.FileExists(t, filepath.Join(dir, "vec_1.npy"))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	out, err = execute(t, "vectorize", "--config", cfgPath, "-o", dir, bad)
	assert.ErrorIs(t, err, errFlowFailed)
	assert.Contains(t, out, "[error]")
}

func TestAnnotateCommand(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: error\nnlp:\n  analyzer: local\n")
	input := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("Hello world. This is a test."), 0o644))
	dir := t.TempDir()

	out, err := execute(t, "annotate", "--config", cfgPath, "-o", dir, "-k", "pos", input)
	require.NoError(t, err)
	assert.Contains(t, out, "[success] Annotations saved to "+filepath.Join(dir, "automation_1.json"))

	_, err = execute(t, "annotate", "--config", cfgPath, "-k", "lemmas", input)
	assert.Error(t, err)

	_, err = execute(t, "annotate", "--config", cfgPath, "-k", "pos", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// the kinds of an earlier run do not carry over
	out, err = execute(t, "annotate", "--config", cfgPath, "-o", dir, input)
	require.NoError(t, err)
	assert.Contains(t, out, "[success] Annotations saved to "+filepath.Join(dir, "automation_2.json"))
	assert.Equal(t, []string{"sentences", "pos", "entities"}, kinds)
}
