package outbox_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashikshan/prashikshan-cli/outbox"
)

func writeDraftFile(t *testing.T, dir, id string) {
	t.Helper()
	draft := outbox.Draft{
		ID:            id,
		ApplicationID: "app-1",
		EntryDate:     "2025-06-02",
		Hours:         4,
		Description:   "Queued offline",
		CreatedAt:     time.Now().UTC(),
		Status:        outbox.StatusPending,
	}
	data, err := json.Marshal(&draft)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), data, 0o600))
}

func TestWatcher_SyncsDraftsAsTheyAppear(t *testing.T) {
	creator := &fakeCreator{}
	dataDir := t.TempDir()
	manager, err := outbox.NewManager(dataDir, creator)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := outbox.NewWatcher(manager, outbox.WithDebounce(20*time.Millisecond))
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = watcher.Run(ctx)
	}()

	// Give the watcher a moment to register before dropping a draft in.
	time.Sleep(50 * time.Millisecond)
	writeDraftFile(t, manager.Dir(), "draft-1")

	require.Eventually(t, func() bool {
		drafts, err := manager.List()
		return err == nil && len(drafts) == 0
	}, 3*time.Second, 20*time.Millisecond, "draft should be synced and removed")

	assert.GreaterOrEqual(t, creator.calls.Load(), int32(1))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatcher_DrainsExistingDraftsAtStartup(t *testing.T) {
	creator := &fakeCreator{}
	dataDir := t.TempDir()
	manager, err := outbox.NewManager(dataDir, creator)
	require.NoError(t, err)

	writeDraftFile(t, manager.Dir(), "draft-1")
	writeDraftFile(t, manager.Dir(), "draft-2")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := outbox.NewWatcher(manager, outbox.WithDebounce(20*time.Millisecond))
	go func() { _ = watcher.Run(ctx) }()

	require.Eventually(t, func() bool {
		drafts, err := manager.List()
		return err == nil && len(drafts) == 0
	}, 3*time.Second, 20*time.Millisecond)
}
