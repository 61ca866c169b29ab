package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// initTemplateRepo creates a local git repository that looks like a starter
// template, so tests never touch the network.
func initTemplateRepo(t *testing.T, withConfig bool) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	if withConfig {
		contents := "version: \"1.0\"\nname: Starter\nsections:\n  - id: s\n    type: codeviewer\n    source: \"true\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, StarterConfigName), []byte(contents), 0o644))
	} else {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("starter"), 0o644))
	}

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(".")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	return dir
}

func TestInitClonesStarter(t *testing.T) {
	t.Parallel()

	template := initTemplateRepo(t, true)
	destination := filepath.Join(t.TempDir(), "site")

	err := Init(context.Background(), Options{URL: template, Destination: destination}, nil)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(destination, StarterConfigName))
	require.NoError(t, statErr)
}

func TestInitRejectsNonEmptyDestination(t *testing.T) {
	t.Parallel()

	template := initTemplateRepo(t, true)
	destination := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(destination, "existing.txt"), []byte("x"), 0o644))

	err := Init(context.Background(), Options{URL: template, Destination: destination}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not empty")
}

func TestInitRequiresStarterConfig(t *testing.T) {
	t.Parallel()

	template := initTemplateRepo(t, false)
	destination := filepath.Join(t.TempDir(), "site")

	err := Init(context.Background(), Options{URL: template, Destination: destination}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not include a page config")
}

func TestInitRequiresDestination(t *testing.T) {
	t.Parallel()

	err := Init(context.Background(), Options{URL: "ignored"}, nil)
	require.Error(t, err)
}

func TestInitBadURL(t *testing.T) {
	t.Parallel()

	destination := filepath.Join(t.TempDir(), "site")
	err := Init(context.Background(), Options{URL: filepath.Join(t.TempDir(), "absent"), Destination: destination}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to clone starter template")
}
