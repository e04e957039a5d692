package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoragePublicID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345/clinic/gallery/abc123.jpg", "clinic/gallery/abc123"},
		{"https://res.cloudinary.com/demo/image/upload/clinic/gallery/abc123.png", "clinic/gallery/abc123"},
		{"https://example.com/static/logo.png", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, storagePublicID(c.url), c.url)
	}
}
