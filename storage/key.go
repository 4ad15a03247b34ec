package storage

import (
	"fmt"
	"regexp"
	"time"
)

var whitespace = regexp.MustCompile(`\s+`)

// ObjectKey builds a storage key for an uploaded file, namespaced by
// entity type: {prefix}/{unixMillis}-{sanitizedFilename}. The timestamp
// prefix keeps keys unique so cached objects never change content.
func ObjectKey(prefix string, filename string) string {
	return fmt.Sprintf("%s/%d-%s", prefix, time.Now().UnixMilli(), sanitizeFilename(filename))
}

// ObjectKeyIndexed is ObjectKey with a slot index, used by entities
// with more than one image.
func ObjectKeyIndexed(prefix string, index int, filename string) string {
	return fmt.Sprintf("%s/%d-%d-%s", prefix, time.Now().UnixMilli(), index, sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	return whitespace.ReplaceAllString(name, "-")
}
