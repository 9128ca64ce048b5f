package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfs/update-version/pkg/version"
	"github.com/agentfs/update-version/pkg/workspace"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func writeManifest(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func makeRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"cli", "sandbox", "sdk/rust"} {
		writeManifest(t, root, name+"/Cargo.toml",
			fmt.Sprintf("[package]\nname = \"agentfs-%s\"\nversion = \"0.1.0\"\n", filepath.Base(name)))
	}
	writeManifest(t, root, "sdk/typescript/package.json", "{\n  \"name\": \"@agentfs/sdk\",\n  \"version\": \"0.1.0\"\n}\n")
	return root
}

func readManifest(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(t, err)
	return string(data)
}

func TestRootCmdArgs(t *testing.T) {
	t.Run("NoArgs", func(t *testing.T) {
		assert.Error(t, execute(t))
	})

	t.Run("TooManyArgs", func(t *testing.T) {
		assert.Error(t, execute(t, "1.2.3", "2.0.0"))
	})
}

func TestRootCmdValidation(t *testing.T) {
	t.Run("RejectsInvalidVersion", func(t *testing.T) {
		err := execute(t, "v1.2.3")
		require.Error(t, err)
		assert.ErrorIs(t, err, version.ErrInvalidFormat)
	})

	t.Run("ValidationPrecedesDryRun", func(t *testing.T) {
		err := execute(t, "1.2", "--dry-run")
		require.Error(t, err)
		assert.ErrorIs(t, err, version.ErrInvalidFormat)
	})

	t.Run("RootNotFound", func(t *testing.T) {
		t.Chdir(t.TempDir())

		err := execute(t, "1.2.3")
		require.Error(t, err)
		assert.ErrorIs(t, err, workspace.ErrRootNotFound)
	})
}

func TestRootCmdDryRun(t *testing.T) {
	t.Run("MutatesNothing", func(t *testing.T) {
		root := makeRepo(t)
		before := map[string]string{}
		for _, rel := range []string{"cli/Cargo.toml", "sandbox/Cargo.toml", "sdk/rust/Cargo.toml", "sdk/typescript/package.json"} {
			before[rel] = readManifest(t, root, rel)
		}

		t.Chdir(filepath.Join(root, "cli"))

		require.NoError(t, execute(t, "9.9.9", "--dry-run"))

		for rel, content := range before {
			assert.Equal(t, content, readManifest(t, root, rel), "%s changed during dry-run", rel)
		}
	})

	t.Run("MissingManifestStillSucceeds", func(t *testing.T) {
		root := makeRepo(t)
		require.NoError(t, os.Remove(filepath.Join(root, "sandbox/Cargo.toml")))

		t.Chdir(root)

		assert.NoError(t, execute(t, "1.2.3", "--dry-run"))
	})
}
