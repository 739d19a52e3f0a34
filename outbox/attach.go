package outbox

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/prashikshan/prashikshan-cli/api"
)

// ExpandAttachments resolves attachment patterns to logbook attachments.
// Patterns may be literal paths or globs, including recursive ** globs
// (e.g. "reports/**/*.pdf"). Matches are deduplicated and sorted; each
// attachment is named after its base filename and referenced by a file URL
// the faculty-side tooling resolves on review.
func ExpandAttachments(patterns []string) ([]api.LogbookAttachment, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand attachment pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("attachment pattern %q matched no files", pattern)
		}

		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, fmt.Errorf("resolve attachment path %q: %w", match, err)
			}
			if !seen[abs] {
				seen[abs] = true
				paths = append(paths, abs)
			}
		}
	}

	sort.Strings(paths)

	attachments := make([]api.LogbookAttachment, 0, len(paths))
	for _, path := range paths {
		attachments = append(attachments, api.LogbookAttachment{
			Name: filepath.Base(path),
			URL:  "file://" + filepath.ToSlash(path),
		})
	}
	return attachments, nil
}
