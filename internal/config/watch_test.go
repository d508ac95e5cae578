package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vectoriser/internal/config"
	"vectoriser/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type reload struct {
	cfg *config.Config
	err error
}

func TestWatcherReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := testutils.WriteConfig(t, dir, "dialog:\n  title: \"First\"\n")

	w, err := config.NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan reload, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(cfg *config.Config, err error) {
			reloads <- reload{cfg, err}
		})
	}()

	require.NoError(t, os.WriteFile(path, []byte("dialog:\n  title: \"Second\"\n"), 0o644))

	select {
	case r := <-reloads:
		require.NoError(t, r.err)
		assert.Equal(t, "Second", r.cfg.Dialog.Title)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := testutils.WriteConfig(t, dir, "")

	w, err := config.NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan reload, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(cfg *config.Config, err error) {
			reloads <- reload{cfg, err}
		})
	}()

	require.NoError(t, os.WriteFile(path, []byte("dialog:\n  extensions: [\"\"]\n"), 0o644))

	select {
	case r := <-reloads:
		assert.Error(t, r.err)
		assert.Nil(t, r.cfg)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config change")
	}

	cancel()
	<-done
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := testutils.WriteConfig(t, dir, "")

	w, err := config.NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan reload, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(cfg *config.Config, err error) {
			reloads <- reload{cfg, err}
		})
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case <-reloads:
		t.Fatal("reload triggered by an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}

	cancel()
	<-done
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	_, err := config.NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	assert.Error(t, err)
}

func TestWatcherKeepsSettingsWhenFileMovedAway(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := testutils.WriteConfig(t, dir, "dialog:\n  title: \"First\"\n")

	w, err := config.NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan reload, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(cfg *config.Config, err error) {
			reloads <- reload{cfg, err}
		})
	}()

	require.NoError(t, os.Rename(path, filepath.Join(dir, "config.yaml.bak")))

	select {
	case r := <-reloads:
		t.Fatalf("reload delivered after the file was moved away: %+v", r)
	case <-time.After(500 * time.Millisecond):
	}

	// the file coming back is picked up again
	require.NoError(t, os.WriteFile(path, []byte("dialog:\n  title: \"Second\"\n"), 0o644))

	select {
	case r := <-reloads:
		require.NoError(t, r.err)
		assert.Equal(t, "Second", r.cfg.Dialog.Title)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config was restored")
	}

	cancel()
	<-done
}
