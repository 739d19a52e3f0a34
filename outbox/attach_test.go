package outbox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashikshan/prashikshan-cli/outbox"
)

func TestExpandAttachments_GlobAndLiteral(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "week1"), 0o755))
	for _, name := range []string{"week1/notes.pdf", "week1/diagram.png", "summary.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	attachments, err := outbox.ExpandAttachments([]string{
		filepath.Join(dir, "**", "*.pdf"),
		filepath.Join(dir, "week1", "diagram.png"),
	})
	require.NoError(t, err)
	require.Len(t, attachments, 3)

	names := make([]string, 0, len(attachments))
	for _, a := range attachments {
		names = append(names, a.Name)
		assert.Contains(t, a.URL, "file://")
	}
	assert.ElementsMatch(t, []string{"notes.pdf", "diagram.png", "summary.pdf"}, names)
}

func TestExpandAttachments_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	attachments, err := outbox.ExpandAttachments([]string{path, filepath.Join(dir, "*.pdf")})
	require.NoError(t, err)
	assert.Len(t, attachments, 1)
}

func TestExpandAttachments_NoMatchIsAnError(t *testing.T) {
	_, err := outbox.ExpandAttachments([]string{filepath.Join(t.TempDir(), "*.pdf")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matched no files")
}

func TestExpandAttachments_EmptyPatternsIgnored(t *testing.T) {
	attachments, err := outbox.ExpandAttachments([]string{"", "  "})
	require.NoError(t, err)
	assert.Empty(t, attachments)
}
