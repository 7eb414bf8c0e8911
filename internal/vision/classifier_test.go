package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractObjectType(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "specific match precedes generic",
			description: "A PET bottle, slightly scratched on the side",
			want:        "plastic bottle",
		},
		{
			name:        "generic plastic",
			description: "A polymer casing with visible wear",
			want:        "plastic",
		},
		{
			name:        "glass jar before glass",
			description: "A mason jar with dried residue inside",
			want:        "glass jar",
		},
		{
			name:        "metal can",
			description: "A dented aluminum can, partially rusted",
			want:        "metal can",
		},
		{
			name:        "cardboard box",
			description: "A carton box with water damage on one corner",
			want:        "cardboard box",
		},
		{
			name:        "corrugated maps to cardboard",
			description: "Corrugated sheet, torn at the edges",
			want:        "cardboard",
		},
		{
			name:        "fabric",
			description: "Worn textile, heavily stained",
			want:        "fabric",
		},
		{
			name:        "electronics",
			description: "A small device with an exposed circuit board",
			want:        "electronics",
		},
		{
			name:        "case insensitive",
			description: "WOODEN crate, intact",
			want:        "wood",
		},
		{
			name:        "no match",
			description: "An unrecognizable lump of material",
			want:        UnidentifiedObject,
		},
		{
			name:        "empty description",
			description: "",
			want:        UnidentifiedObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractObjectType(tt.description))
		})
	}
}
