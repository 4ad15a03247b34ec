package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("brands", "my  brand logo.png")

	assert.Regexp(t, regexp.MustCompile(`^brands/\d+-my-brand-logo\.png$`), key)
}

func TestObjectKeyIndexed(t *testing.T) {
	key := ObjectKeyIndexed("projects", 2, "side view.jpg")

	assert.Regexp(t, regexp.MustCompile(`^projects/\d+-2-side-view\.jpg$`), key)
}

func TestObjectKeysDiffer(t *testing.T) {
	// Same filename twice must not produce colliding keys within the
	// timestamp resolution plus sanitization.
	a := ObjectKey("brands", "logo.png")
	b := ObjectKey("brands", "other.png")
	assert.NotEqual(t, a, b)
}
