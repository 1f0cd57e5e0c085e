package services

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

var slugSuffixRange = math.Pow(36, 6)

// GenerateSlug turns a title into a URL-safe identifier with a random base-36
// suffix of up to six characters. Uniqueness is probabilistic only; the
// suffix is not suitable as a secret.
func GenerateSlug(title string) string {
	suffix := strconv.FormatInt(int64(rand.Float64()*slugSuffixRange), 36)

	// slug.Make keeps underscores; only hyphens may separate words here.
	base := slug.Make(strings.ReplaceAll(title, "_", "-"))
	if base == "" {
		return suffix
	}

	return base + "-" + suffix
}
