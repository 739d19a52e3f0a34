package outbox_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/outbox"
)

// fakeCreator simulates the API's logbook create endpoint.
type fakeCreator struct {
	calls atomic.Int32
	fail  atomic.Bool
	fatal atomic.Bool
}

func (f *fakeCreator) CreateLogbookEntry(ctx context.Context, create api.LogbookEntryCreate) (*api.LogbookEntry, error) {
	n := f.calls.Add(1)
	if f.fatal.Load() {
		return nil, api.NewFatalError(&api.Error{Status: 422, Detail: "hours must be positive"})
	}
	if f.fail.Load() {
		return nil, api.NewTransientError(errors.New("dial tcp: connection refused"))
	}
	return &api.LogbookEntry{
		ID:            fmt.Sprintf("entry-%d", n),
		ApplicationID: create.ApplicationID,
		EntryDate:     create.EntryDate,
		Hours:         create.Hours,
		Description:   create.Description,
	}, nil
}

func testPayload() api.LogbookEntryCreate {
	return api.LogbookEntryCreate{
		ApplicationID: "app-1",
		EntryDate:     "2025-06-02",
		Hours:         6,
		Description:   "Implemented the ingestion pipeline",
	}
}

func TestSubmit_ImmediateSuccessPersistsNothing(t *testing.T) {
	creator := &fakeCreator{}
	manager, err := outbox.NewManager(t.TempDir(), creator)
	require.NoError(t, err)

	result, err := manager.Submit(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, outbox.SubmitSynced, result.Status)
	require.NotNil(t, result.Entry)

	drafts, err := manager.List()
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestSubmit_NetworkFailureQueuesPendingDraft(t *testing.T) {
	creator := &fakeCreator{}
	creator.fail.Store(true)
	dir := t.TempDir()
	manager, err := outbox.NewManager(dir, creator)
	require.NoError(t, err)

	result, err := manager.Submit(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, outbox.SubmitQueued, result.Status)
	require.NotNil(t, result.Draft)
	assert.Equal(t, outbox.StatusPending, result.Draft.Status)
	assert.NotEmpty(t, result.Draft.ID)

	// The draft survives manager reconstruction.
	reopened, err := outbox.NewManager(dir, creator)
	require.NoError(t, err)
	drafts, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, result.Draft.ID, drafts[0].ID)
	assert.Equal(t, outbox.StatusPending, drafts[0].Status)
	assert.Equal(t, "app-1", drafts[0].ApplicationID)
}

func TestSubmit_FatalFailureIsNotQueued(t *testing.T) {
	creator := &fakeCreator{}
	creator.fatal.Store(true)
	manager, err := outbox.NewManager(t.TempDir(), creator)
	require.NoError(t, err)

	_, err = manager.Submit(context.Background(), testPayload())
	require.Error(t, err)
	assert.True(t, api.IsFatal(err))

	drafts, err := manager.List()
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestSyncDraft_SuccessRemovesDraft(t *testing.T) {
	creator := &fakeCreator{}
	creator.fail.Store(true)
	manager, err := outbox.NewManager(t.TempDir(), creator)
	require.NoError(t, err)

	result, err := manager.Submit(context.Background(), testPayload())
	require.NoError(t, err)

	creator.fail.Store(false)
	entry, err := manager.SyncDraft(context.Background(), result.Draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "app-1", entry.ApplicationID)

	drafts, err := manager.List()
	require.NoError(t, err)
	assert.Empty(t, drafts)

	_, err = manager.Get(result.Draft.ID)
	assert.ErrorIs(t, err, outbox.ErrDraftNotFound)
}

func TestSyncDraft_FailureRecordsErrorAndKeepsDraft(t *testing.T) {
	creator := &fakeCreator{}
	creator.fail.Store(true)
	manager, err := outbox.NewManager(t.TempDir(), creator)
	require.NoError(t, err)

	result, err := manager.Submit(context.Background(), testPayload())
	require.NoError(t, err)

	_, err = manager.SyncDraft(context.Background(), result.Draft.ID)
	require.Error(t, err)

	draft, err := manager.Get(result.Draft.ID)
	require.NoError(t, err)
	assert.Equal(t, outbox.StatusFailed, draft.Status)
	assert.NotEmpty(t, draft.LastError)

	// Manual retry is still allowed once the failure clears.
	creator.fail.Store(false)
	_, err = manager.SyncDraft(context.Background(), result.Draft.ID)
	require.NoError(t, err)

	drafts, err := manager.List()
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestSyncDraft_UnknownID(t *testing.T) {
	manager, err := outbox.NewManager(t.TempDir(), &fakeCreator{})
	require.NoError(t, err)

	_, err = manager.SyncDraft(context.Background(), "no-such-draft")
	assert.ErrorIs(t, err, outbox.ErrDraftNotFound)
}

func TestRemove_DiscardsWithoutNetworkCall(t *testing.T) {
	creator := &fakeCreator{}
	creator.fail.Store(true)
	manager, err := outbox.NewManager(t.TempDir(), creator)
	require.NoError(t, err)

	result, err := manager.Submit(context.Background(), testPayload())
	require.NoError(t, err)
	callsBefore := creator.calls.Load()

	require.NoError(t, manager.Remove(result.Draft.ID))
	assert.Equal(t, callsBefore, creator.calls.Load())

	assert.ErrorIs(t, manager.Remove(result.Draft.ID), outbox.ErrDraftNotFound)
}

func TestSyncAll_SyncsOldestFirstAndSkipsNothingOnFailure(t *testing.T) {
	creator := &fakeCreator{}
	creator.fail.Store(true)
	manager, err := outbox.NewManager(t.TempDir(), creator)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := manager.Submit(context.Background(), testPayload())
		require.NoError(t, err)
	}

	creator.fail.Store(false)
	synced, err := manager.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, synced)

	drafts, err := manager.List()
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestSyncPending_LeavesFailedDraftsForManualRetry(t *testing.T) {
	creator := &fakeCreator{}
	creator.fail.Store(true)
	manager, err := outbox.NewManager(t.TempDir(), creator)
	require.NoError(t, err)

	result, err := manager.Submit(context.Background(), testPayload())
	require.NoError(t, err)

	// First pass fails the draft; it is no longer pending.
	_, err = manager.SyncDraft(context.Background(), result.Draft.ID)
	require.Error(t, err)

	creator.fail.Store(false)
	synced, err := manager.SyncPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, synced)

	draft, err := manager.Get(result.Draft.ID)
	require.NoError(t, err)
	assert.Equal(t, outbox.StatusFailed, draft.Status)
}
