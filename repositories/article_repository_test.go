package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{tag: "go", want: `%go%`},
		{tag: "_", want: `%\_%`},
		{tag: "%", want: `%\%%`},
		{tag: "a_b", want: `%a\_b%`},
		{tag: `c\d`, want: `%c\\d%`},
		{tag: `100%_\`, want: `%100\%\_\\%`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.tag), "tag %q", tt.tag)
	}
}
