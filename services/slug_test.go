package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+-[0-9a-z]{1,6}$`)

func TestGenerateSlug_Format(t *testing.T) {
	titles := []string{
		"Hello World",
		"Go 1.25 release notes",
		"  Leading and trailing spaces  ",
		"Why?! Punctuation, everywhere...",
		"UPPER case TITLE",
		"Привет мир",
		"Crème brûlée",
		"snake_case title",
		"a__b",
		"__init__",
		"_ leading and trailing _",
	}

	for _, title := range titles {
		for i := 0; i < 50; i++ {
			slug := GenerateSlug(title)
			assert.Regexp(t, slugPattern, slug, "title %q", title)
		}
	}
}

func TestGenerateSlug_HelloWorldPrefix(t *testing.T) {
	slug := GenerateSlug("Hello World")

	assert.True(t, strings.HasPrefix(slug, "hello-world-"), slug)
	assert.LessOrEqual(t, len(strings.TrimPrefix(slug, "hello-world-")), 6)
}

func TestGenerateSlug_UnderscoresBecomeHyphens(t *testing.T) {
	tests := map[string]string{
		"snake_case title": "snake-case-title-",
		"a__b":             "a-b-",
		"__init__":         "init-",
	}

	for title, prefix := range tests {
		slug := GenerateSlug(title)
		assert.True(t, strings.HasPrefix(slug, prefix), "title %q gave %q", title, slug)
		assert.NotContains(t, slug, "_")
	}
}

func TestGenerateSlug_Transliterates(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateSlug("Crème brûlée"), "creme-brulee-"))
}

func TestGenerateSlug_EmptyTitleIsSuffixOnly(t *testing.T) {
	suffixOnly := regexp.MustCompile(`^[0-9a-z]{1,6}$`)

	for _, title := range []string{"", "   ", "!!!", "___"} {
		assert.Regexp(t, suffixOnly, GenerateSlug(title), "title %q", title)
	}
}

func TestGenerateSlug_SuffixesDiffer(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		seen[GenerateSlug("same title")] = struct{}{}
	}

	// 1000 draws from 36^6 values; a handful of collisions would already be suspicious.
	assert.Greater(t, len(seen), 995)
}
