package slug

import "strings"

// Make derives a URL-friendly slug from a username: lowercase with spaces
// replaced by hyphens. The transform is deterministic and idempotent, so a
// slug can be recomputed safely whenever the username changes.
func Make(username string) string {
	return strings.ReplaceAll(strings.ToLower(username), " ", "-")
}
