package differ

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnified(t *testing.T) {
	before := []byte("{\n    \"a\": \"X\",\n    \"b\": \"Z\"\n}")
	after := []byte("{\n    \"a\": \"Y\",\n    \"b\": \"Z\"\n}")

	patch := Unified("lang/ko.json", before, after, 3)

	assert.True(t, strings.HasPrefix(patch, "--- a/lang/ko.json\n+++ b/lang/ko.json\n"), patch)
	assert.Contains(t, patch, "@@ -1,4 +1,4 @@\n")
	assert.Contains(t, patch, "-    \"a\": \"X\",\n")
	assert.Contains(t, patch, "+    \"a\": \"Y\",\n")
	assert.Contains(t, patch, "     \"b\": \"Z\"\n")
	assert.Contains(t, patch, " }\n\\ No newline at end of file\n")
}

func TestUnifiedZeroContext(t *testing.T) {
	before := []byte("{\n    \"a\": \"X\",\n    \"b\": \"Z\"\n}")
	after := []byte("{\n    \"a\": \"Y\",\n    \"b\": \"Z\"\n}")

	patch := Unified("lang/ko.json", before, after, 0)

	assert.Contains(t, patch, "-    \"a\": \"X\",\n")
	assert.Contains(t, patch, "+    \"a\": \"Y\",\n")
	assert.NotContains(t, patch, "\"b\"")
	assert.NotContains(t, patch, " }")
}

func TestUnifiedTrailingNewlineOnly(t *testing.T) {
	before := []byte("{\n    \"a\": \"K\"\n}\n")
	after := []byte("{\n    \"a\": \"K\"\n}")

	patch := Unified("lang/ko.json", before, after, 3)

	assert.NotEmpty(t, patch)
	assert.Contains(t, patch, "-}\n+}\n\\ No newline at end of file\n")

	added, removed := Stat(patch)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestUnifiedLastLineWithoutNewline(t *testing.T) {
	patch := Unified("x.json", []byte("{}"), []byte("{\n    \"a\": \"1\"\n}"), 3)

	assert.Contains(t, patch, "-{}\n")
	assert.Contains(t, patch, "+{\n")
	assert.Contains(t, patch, "+}\n")
}

func TestUnifiedEqual(t *testing.T) {
	assert.Empty(t, Unified("x.json", []byte("{}"), []byte("{}"), 3))
}

func TestAdded(t *testing.T) {
	patch := Added("editable/ko.editable.json", []byte("{\n    \"a\": \"X\"\n}"))

	assert.True(t, strings.HasPrefix(patch, "--- /dev/null\n+++ b/editable/ko.editable.json\n"), patch)
	assert.Contains(t, patch, "@@ -0,0 +1,3 @@\n")
	assert.Contains(t, patch, "+    \"a\": \"X\"\n")
}

func TestStat(t *testing.T) {
	patch := Unified("x.json",
		[]byte("{\n    \"a\": \"X\",\n    \"b\": \"Z\"\n}"),
		[]byte("{\n    \"a\": \"Y\"\n}"),
		3)

	added, removed := Stat(patch)
	assert.Equal(t, 1, added)
	assert.Equal(t, 2, removed)

	added, removed = Stat("")
	assert.Zero(t, added)
	assert.Zero(t, removed)
}

func TestAbsolutePathLabels(t *testing.T) {
	patch := Unified("/proj/lang/ko.json", []byte("{}"), []byte("{\n}"), 3)
	assert.True(t, strings.HasPrefix(patch, "--- a/proj/lang/ko.json\n+++ b/proj/lang/ko.json\n"), patch)
}
