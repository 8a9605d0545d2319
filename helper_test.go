// FILE: typeconf/helper_test.go
package typeconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsValidModulePath verifies dotted-path validation
func TestIsValidModulePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "SingleSegment", input: "main", want: true},
		{name: "NestedPath", input: "pkg.sub.mod", want: true},
		{name: "MixedCaseSegments", input: "App.Server_v2", want: true},
		{name: "DigitsInsideSegment", input: "gen.pb2", want: true},
		{name: "Empty", input: "", want: false},
		{name: "LeadingDot", input: ".pkg", want: false},
		{name: "TrailingDot", input: "pkg.", want: false},
		{name: "EmptyMiddleSegment", input: "pkg..sub", want: false},
		{name: "SegmentStartsWithDigit", input: "pkg.2sub", want: false},
		{name: "Hyphen", input: "pkg.sub-mod", want: false},
		{name: "Space", input: "pkg. sub", want: false},
		{name: "Wildcard", input: "pkg.*", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidModulePath(tt.input))
		})
	}
}
