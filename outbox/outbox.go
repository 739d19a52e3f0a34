// Package outbox queues logbook entries that could not be created against
// the API at the moment the user recorded them. Each draft lives in its own
// JSON file under the data directory and is synced only when the user asks,
// never by a background scheduler.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prashikshan/prashikshan-cli/api"
)

// DraftsDir is the directory name for queued drafts within the data dir.
const DraftsDir = "logbook-drafts"

// SyncStatus is the lifecycle state of a queued draft.
type SyncStatus string

// Draft lifecycle: pending -> syncing -> synced or failed. A failed draft
// may go back to syncing on manual retry. Synced drafts are removed rather
// than kept, so the state never appears on disk.
const (
	StatusPending SyncStatus = "pending"
	StatusSyncing SyncStatus = "syncing"
	StatusSynced  SyncStatus = "synced"
	StatusFailed  SyncStatus = "failed"
)

// Sentinel errors for draft operations.
var (
	ErrDraftNotFound = errors.New("draft not found")
)

// Draft is a locally queued, not-yet-server-persisted logbook entry.
type Draft struct {
	ID            string                  `json:"id"`
	ApplicationID string                  `json:"application_id"`
	EntryDate     string                  `json:"entry_date"`
	Hours         float64                 `json:"hours"`
	Description   string                  `json:"description"`
	Attachments   []api.LogbookAttachment `json:"attachments,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	Status        SyncStatus              `json:"status"`
	LastError     string                  `json:"last_error,omitempty"`
}

// EntryCreator is the slice of the API client the outbox needs.
type EntryCreator interface {
	CreateLogbookEntry(ctx context.Context, create api.LogbookEntryCreate) (*api.LogbookEntry, error)
}

// Manager owns the draft queue rooted at a data directory.
type Manager struct {
	dir     string
	client  EntryCreator
	logger  *slog.Logger
	metrics *api.Metrics

	// locksMu guards locks; each draft gets its own mutex so syncs of
	// different drafts never serialize against each other.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMetrics sets the metrics collector shared with the API client.
func WithMetrics(metrics *api.Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// NewManager creates a draft queue under dataDir, creating the drafts
// directory if needed.
func NewManager(dataDir string, client EntryCreator, opts ...ManagerOption) (*Manager, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if client == nil {
		return nil, fmt.Errorf("entry creator is required")
	}

	m := &Manager{
		dir:    filepath.Join(dataDir, DraftsDir),
		client: client,
		logger: slog.Default(),
		locks:  make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return nil, fmt.Errorf("create drafts directory: %w", err)
	}
	return m, nil
}

// Dir returns the drafts directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// SubmitStatus reports how a submission was resolved.
type SubmitStatus string

// Submit outcomes: synced means the entry was created server-side and no
// draft exists; queued means a pending draft was persisted for later sync.
const (
	SubmitSynced SubmitStatus = "synced"
	SubmitQueued SubmitStatus = "queued"
)

// SubmitResult is the outcome of a Submit call.
type SubmitResult struct {
	Status SubmitStatus

	// Entry is set when Status is synced.
	Entry *api.LogbookEntry

	// Draft is set when Status is queued.
	Draft *Draft
}

// Submit attempts to create the entry immediately. On a transient failure
// (network, timeout, server error) the entry is queued as a pending draft
// instead. Fatal failures, such as validation errors, are returned as-is:
// queueing a payload the API will never accept helps nobody.
func (m *Manager) Submit(ctx context.Context, create api.LogbookEntryCreate) (*SubmitResult, error) {
	entry, err := m.client.CreateLogbookEntry(ctx, create)
	if err == nil {
		return &SubmitResult{Status: SubmitSynced, Entry: entry}, nil
	}
	if !api.IsTransient(err) {
		return nil, err
	}

	draft := &Draft{
		ID:            uuid.New().String(),
		ApplicationID: create.ApplicationID,
		EntryDate:     create.EntryDate,
		Hours:         create.Hours,
		Description:   create.Description,
		Attachments:   create.Attachments,
		CreatedAt:     time.Now().UTC(),
		Status:        StatusPending,
	}
	if saveErr := m.save(draft); saveErr != nil {
		return nil, fmt.Errorf("queue draft after failed create: %w", saveErr)
	}

	m.logger.Info("Logbook entry queued for later sync",
		"draft_id", draft.ID,
		"application_id", draft.ApplicationID,
		"error", err)
	return &SubmitResult{Status: SubmitQueued, Draft: draft}, nil
}

// SyncDraft attempts to create the draft's entry server-side. On success
// the draft is removed from the queue. On failure the draft stays queued
// with status failed and the error recorded for the user to inspect.
func (m *Manager) SyncDraft(ctx context.Context, id string) (*api.LogbookEntry, error) {
	lock := m.draftLock(id)
	lock.Lock()
	defer lock.Unlock()

	draft, err := m.load(id)
	if err != nil {
		return nil, err
	}

	draft.Status = StatusSyncing
	draft.LastError = ""
	if err := m.save(draft); err != nil {
		return nil, err
	}

	entry, err := m.client.CreateLogbookEntry(ctx, api.LogbookEntryCreate{
		ApplicationID: draft.ApplicationID,
		EntryDate:     draft.EntryDate,
		Hours:         draft.Hours,
		Description:   draft.Description,
		Attachments:   draft.Attachments,
	})
	if err != nil {
		draft.Status = StatusFailed
		draft.LastError = err.Error()
		if saveErr := m.save(draft); saveErr != nil {
			m.logger.Warn("Failed to record draft sync failure", "draft_id", id, "error", saveErr)
		}
		m.metrics.ObserveDraftSync(false)
		return nil, fmt.Errorf("sync draft %s: %w", id, err)
	}

	// The entry now exists server-side; the draft has served its purpose.
	if err := m.remove(id); err != nil {
		m.logger.Warn("Synced draft could not be removed", "draft_id", id, "error", err)
	}
	m.metrics.ObserveDraftSync(true)
	m.logger.Info("Draft synced", "draft_id", id, "entry_id", entry.ID)
	return entry, nil
}

// SyncAll syncs every pending and failed draft, oldest first. Failures are
// logged and recorded on the draft; the remaining drafts still get their
// attempt. Returns the number of drafts synced.
func (m *Manager) SyncAll(ctx context.Context) (int, error) {
	return m.syncWhere(ctx, func(d *Draft) bool {
		return d.Status != StatusSyncing
	})
}

// SyncPending syncs only pending drafts. The watcher uses this so a draft
// that keeps failing does not retrigger itself through its own status
// rewrite; failed drafts wait for an explicit retry.
func (m *Manager) SyncPending(ctx context.Context) (int, error) {
	return m.syncWhere(ctx, func(d *Draft) bool {
		return d.Status == StatusPending
	})
}

func (m *Manager) syncWhere(ctx context.Context, include func(*Draft) bool) (int, error) {
	drafts, err := m.List()
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, draft := range drafts {
		if err := ctx.Err(); err != nil {
			return synced, err
		}
		if !include(draft) {
			continue
		}
		if _, err := m.SyncDraft(ctx, draft.ID); err != nil {
			m.logger.Warn("Draft sync failed", "draft_id", draft.ID, "error", err)
			continue
		}
		synced++
	}
	return synced, nil
}

// Remove deletes a draft unconditionally. No network call is made.
func (m *Manager) Remove(id string) error {
	lock := m.draftLock(id)
	lock.Lock()
	defer lock.Unlock()
	return m.remove(id)
}

// Get loads a single draft by ID.
func (m *Manager) Get(id string) (*Draft, error) {
	return m.load(id)
}

// List returns all queued drafts, oldest first.
func (m *Manager) List() ([]*Draft, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read drafts directory: %w", err)
	}

	var drafts []*Draft
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		draft, err := m.load(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			m.logger.Warn("Skipping unreadable draft", "file", entry.Name(), "error", err)
			continue
		}
		drafts = append(drafts, draft)
	}

	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].CreatedAt.Before(drafts[j].CreatedAt)
	})
	return drafts, nil
}

// draftLock returns the mutex for the given draft ID.
func (m *Manager) draftLock(id string) *sync.Mutex {
	m.locksMu.Lock()
	defer m.locksMu.Unlock()
	if m.locks[id] == nil {
		m.locks[id] = &sync.Mutex{}
	}
	return m.locks[id]
}

func (m *Manager) path(id string) string {
	return filepath.Join(m.dir, id+".json")
}

func (m *Manager) load(id string) (*Draft, error) {
	data, err := os.ReadFile(m.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDraftNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("parse draft %s: %w", id, err)
	}
	return &draft, nil
}

func (m *Manager) save(draft *Draft) error {
	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := os.WriteFile(m.path(draft.ID), data, 0o600); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}

func (m *Manager) remove(id string) error {
	if err := os.Remove(m.path(id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDraftNotFound, id)
		}
		return fmt.Errorf("remove draft: %w", err)
	}
	return nil
}
