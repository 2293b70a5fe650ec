package root

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dir", dir, "--health-provider", "mock"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShow_FreshDirectory(t *testing.T) {
	out, err := run(t, t.TempDir(), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "level 1, 0 XP, 100/100 HP")
	assert.Contains(t, out, "Squelette Maudit at 100%")
	assert.Contains(t, out, "Forêt des Brumes")
}

func TestCloseDay_WritesHistory(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "close-day")
	require.NoError(t, err)
	assert.Contains(t, out, "Closed ")
	assert.Contains(t, out, "Report ")

	out, err = run(t, dir, "history")
	require.NoError(t, err)
	dates := strings.Fields(out)
	require.Len(t, dates, 1)

	out, err = run(t, dir, "history", dates[0])
	require.NoError(t, err)
	assert.Contains(t, out, `"date": "`+dates[0]+`"`)
}

func TestHistory_UnknownDate(t *testing.T) {
	_, err := run(t, t.TempDir(), "history", "1999-01-01")
	assert.Error(t, err)
}

func TestExportImport(t *testing.T) {
	src := t.TempDir()
	_, err := run(t, src, "close-day")
	require.NoError(t, err)

	t.Run("json to stdout", func(t *testing.T) {
		out, err := run(t, src, "export")
		require.NoError(t, err)
		assert.Contains(t, out, `"schemaVersion"`)
	})

	t.Run("yaml to stdout", func(t *testing.T) {
		out, err := run(t, src, "export", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "avatar:")
	})

	t.Run("folder export", func(t *testing.T) {
		out, err := run(t, src, "export", "--folder")
		require.NoError(t, err)
		path := strings.TrimSpace(out)
		assert.True(t, strings.HasPrefix(path, filepath.Join(src, "export")), path)
		assert.FileExists(t, path)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, src, "export", "--format", "xml")
		assert.Error(t, err)
	})

	t.Run("round trip into a new directory", func(t *testing.T) {
		exported, err := run(t, src, "export")
		require.NoError(t, err)
		file := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(file, []byte(exported), 0o644))

		dst := t.TempDir()
		out, err := run(t, dst, "import", file)
		require.NoError(t, err)
		assert.Contains(t, out, "Imported")

		again, err := run(t, dst, "export")
		require.NoError(t, err)
		assert.JSONEq(t, exported, again)
	})
}

func TestImport_Rejects(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, t.TempDir(), "import", filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("invalid document", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(file, []byte(`{"avatar": "nope"}`), 0o644))

		_, err := run(t, t.TempDir(), "import", file)
		assert.Error(t, err)
	})

	t.Run("argument required", func(t *testing.T) {
		_, err := run(t, t.TempDir(), "import")
		assert.Error(t, err)
	})
}

func TestUsageAndRotate(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "usage")
	require.NoError(t, err)
	assert.Contains(t, out, "of 50 MB")

	out, err = run(t, dir, "rotate")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to rotate")
}

func TestUnknownProvider(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", t.TempDir(), "--health-provider", "pigeon", "usage"})

	assert.Error(t, cmd.Execute())
}
