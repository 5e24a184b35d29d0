package bind_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeguess/bind"
)

const configYAML = `
port: "8080"
debug: "on"
ratio: "0.75"
hosts:
  - alpha
  - beta
name: service-a
extra: untouched
`

func TestBindBytes(t *testing.T) {
	t.Parallel()

	binder := bind.New(nil, nil)
	schema := bind.Schema{
		"port":  "integer",
		"debug": "boolean",
		"ratio": "float",
		"hosts": "string[]",
		"name":  "string",
	}

	values, diags, err := binder.Bytes([]byte(configYAML), schema)
	require.NoError(t, err)
	assert.False(t, diags.HasWarnings(), "unexpected diagnostics: %v", diags.Warnings)

	assert.Equal(t, int64(8080), values["port"])
	assert.Equal(t, true, values["debug"])
	assert.Equal(t, 0.75, values["ratio"])
	assert.Equal(t, []any{"alpha", "beta"}, values["hosts"])
	assert.Equal(t, "service-a", values["name"])

	// undeclared keys pass through untouched
	assert.Equal(t, "untouched", values["extra"])
}

func TestBindMultiCandidate(t *testing.T) {
	t.Parallel()

	binder := bind.New(nil, nil)

	values, diags, err := binder.Bind(map[string]any{
		"limit":   "100",
		"timeout": "2.5",
	}, bind.Schema{
		"limit":   "integer|float|string",
		"timeout": "integer|float|string",
	})
	require.NoError(t, err)
	assert.False(t, diags.HasWarnings())

	assert.Equal(t, int64(100), values["limit"])
	assert.Equal(t, 2.5, values["timeout"])
}

func TestBindImpossibleCast(t *testing.T) {
	t.Parallel()

	binder := bind.New(nil, nil)

	values, diags, err := binder.Bind(map[string]any{
		"port": "not-a-number",
	}, bind.Schema{
		"port": "integer",
	})
	require.NoError(t, err)

	// the original value is kept and the failure surfaces as a warning
	assert.Equal(t, "not-a-number", values["port"])
	require.True(t, diags.HasWarnings())
	assert.Equal(t, "port", diags.Warnings[0].Key)
}

func TestBindBadSchema(t *testing.T) {
	t.Parallel()

	binder := bind.New(nil, nil)

	_, _, err := binder.Bind(map[string]any{"key": 1}, bind.Schema{"key": "[]"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `schema key "key"`)
}

func TestBindDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	binder := bind.New(nil, nil)
	in := map[string]any{"port": "8080"}

	_, _, err := binder.Bind(in, bind.Schema{"port": "integer"})
	require.NoError(t, err)
	assert.Equal(t, "8080", in["port"])
}

func TestFileAndSchemaLoading(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o644))

	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte("port: integer\ndebug: boolean\n"), 0o644))

	schema, err := bind.LoadSchema(schemaPath)
	require.NoError(t, err)
	assert.Equal(t, bind.Schema{"port": "integer", "debug": "boolean"}, schema)

	values, diags, err := bind.New(nil, nil).File(configPath, schema)
	require.NoError(t, err)
	assert.False(t, diags.HasWarnings())
	assert.Equal(t, int64(8080), values["port"])
	assert.Equal(t, true, values["debug"])

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := bind.New(nil, nil).File(filepath.Join(dir, "absent.yaml"), schema)
		assert.Error(t, err)
	})
}
