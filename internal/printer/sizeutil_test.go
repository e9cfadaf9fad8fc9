package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMiB(t *testing.T) {
	tests := map[string]struct {
		input int
		exp   string
	}{
		"zero": {
			input: 0,
			exp:   "0 MiB",
		},
		"negative should return zero": {
			input: -100,
			exp:   "0 MiB",
		},
		"mebibytes": {
			input: 512,
			exp:   "512 MiB",
		},
		"one gibibyte": {
			input: 1024,
			exp:   "1.0 GiB",
		},
		"fractional gibibytes": {
			input: 1536,
			exp:   "1.5 GiB",
		},
		"tebibytes": {
			input: 2 * 1024 * 1024,
			exp:   "2.0 TiB",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, FormatMiB(test.input))
		})
	}
}
