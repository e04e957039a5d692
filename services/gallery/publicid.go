package gallery

import (
	"net/url"
	"strings"
)

// storagePublicID derives the CDN public ID from a delivery URL, e.g.
// ".../image/upload/v17123/clinic/gallery/abc.jpg" -> "clinic/gallery/abc".
// Returns "" when the URL does not look like an upload delivery URL.
func storagePublicID(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part != "upload" || i+1 >= len(parts) {
			continue
		}
		rest := parts[i+1:]
		// Skip the version segment when present.
		if strings.HasPrefix(rest[0], "v") && len(rest) > 1 {
			rest = rest[1:]
		}
		id := strings.Join(rest, "/")
		if dot := strings.LastIndex(id, "."); dot > 0 {
			id = id[:dot]
		}
		return id
	}
	return ""
}
