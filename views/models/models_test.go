package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short...", Excerpt("short"))
	assert.Equal(t, "...", Excerpt(""))

	long := strings.Repeat("a", 150)
	assert.Equal(t, strings.Repeat("a", 100)+"...", Excerpt(long))

	exact := strings.Repeat("b", 100)
	assert.Equal(t, exact+"...", Excerpt(exact))

	// counted in characters, not bytes
	wide := strings.Repeat("é", 120)
	assert.Equal(t, strings.Repeat("é", 100)+"...", Excerpt(wide))
}

func TestPublishedOrNA(t *testing.T) {
	date := "2024-03-01"
	empty := ""
	assert.Equal(t, "2024-03-01", PublishedOrNA(&date))
	assert.Equal(t, NoDate, PublishedOrNA(nil))
	assert.Equal(t, NoDate, PublishedOrNA(&empty))
}
