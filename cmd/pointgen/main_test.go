package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointgen/blobstore"
	"github.com/hupe1980/pointgen/snapshot"
)

func writeRecipe(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "recipe.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestRun_Local(t *testing.T) {
	dir := t.TempDir()
	recipe := writeRecipe(t, `
seed = 7

[store]
kind = "local"
path = "`+filepath.ToSlash(dir)+`"
compression = "zstd"

[[dataset]]
name = "blobs"
layout = "gaussian"
amount = 60
clusters = 3
variance = 0.2
k = 3

[[dataset]]
name = "moons"
layout = "crescent"
amount = 40
`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-recipe", recipe}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.Contains(t, stdout.String(), "blobs")
	assert.Contains(t, stdout.String(), "moons")
	assert.Contains(t, stderr.String(), "run completed")
	assert.Contains(t, stderr.String(), `msg="clustering step" dataset=blobs layout=gaussian k=3`)

	store := snapshot.NewStore(blobstore.NewLocalStore(dir))

	blobs, err := store.Load(context.Background(), "blobs")
	require.NoError(t, err)
	assert.Equal(t, "gaussian", blobs.Layout)
	assert.Len(t, blobs.Points, 60)
	assert.Len(t, blobs.CentroidSteps, 2)
	for _, p := range blobs.Points {
		_, ok := p.Assigned()
		assert.True(t, ok)
	}

	moons, err := store.Load(context.Background(), "moons")
	require.NoError(t, err)
	assert.Len(t, moons.Points, 42)
	assert.Empty(t, moons.CentroidSteps)
}

func TestRun_DryRun(t *testing.T) {
	recipe := writeRecipe(t, "[[dataset]]\nname = \"x\"\nlayout = \"eye\"\namount = 10\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-recipe", recipe, "-dry-run"}, &stdout, &stderr))
	assert.Equal(t, "recipe ok: 1 datasets\n", stdout.String())
}

func TestRun_MissingRecipe(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-recipe", filepath.Join(t.TempDir(), "nope.toml")}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestOpenStore_Throttled(t *testing.T) {
	store, err := openStore(context.Background(), Store{Kind: "memory", BytesPerSec: 1 << 20})
	require.NoError(t, err)
	_, ok := store.(*blobstore.ThrottledStore)
	assert.True(t, ok)
}
