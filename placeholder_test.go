package fmtcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlaceholder(t *testing.T) {
	testCases := []struct {
		name               string
		format             string
		expectedValid      bool
		expectedCategories []ArgumentCategory
		expectedLength     int
	}{
		{
			name:               "bare specifier",
			format:             "%d",
			expectedValid:      true,
			expectedCategories: []ArgumentCategory{SignedInteger},
			expectedLength:     2,
		},
		{
			name:               "all stages populated",
			format:             "%-10.3Lf trailing",
			expectedValid:      true,
			expectedCategories: []ArgumentCategory{Floating},
			expectedLength:     8,
		},
		{
			name:               "star width and precision in call order",
			format:             "%*.*s",
			expectedValid:      true,
			expectedCategories: []ArgumentCategory{UnsignedInteger, UnsignedInteger, String},
			expectedLength:     5,
		},
		{
			name:               "length stops at specifier",
			format:             "%lld rest",
			expectedValid:      true,
			expectedCategories: []ArgumentCategory{SignedInteger},
			expectedLength:     4,
		},
		{
			name:   "not a placeholder start",
			format: "d%",
		},
		{
			name:   "specifier illegal for length modifier",
			format: "%Ld",
		},
		{
			name:   "unrecognized specifier",
			format: "%q",
		},
		{
			name:   "truncated at end of text",
			format: "%l",
		},
		{
			name:   "lone percent",
			format: "%",
		},
		{
			name:   "empty",
			format: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ph, valid := parsePlaceholder(tc.format)
			assert.Equal(t, tc.expectedValid, valid)
			assert.Equal(t, tc.expectedCategories, ph.categories)
			assert.Equal(t, tc.expectedLength, ph.length)
		})
	}
}
