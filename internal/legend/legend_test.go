package legend

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	cats := Catalog()
	require.Len(t, cats, 18)
	assert.Equal(t, Ground, cats[0].Type, "legend starts with the ground colour")
	assert.Equal(t, GroundLine, cats[len(cats)-1].Type)

	seen := make(map[SemanticType]bool)
	hex := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for _, c := range cats {
		assert.False(t, seen[c.Type], "duplicate category %s", c.Type)
		seen[c.Type] = true
		assert.Regexp(t, hex, c.Color, "color for %s", c.Type)
		assert.NotEmpty(t, c.ChineseName)
		assert.NotEmpty(t, c.Hint)
	}
}

func TestCatalogIsACopy(t *testing.T) {
	cats := Catalog()
	cats[0].Color = "#123456"

	again := Catalog()
	assert.Equal(t, "#10B981", again[0].Color)
}

func TestPromptOrder(t *testing.T) {
	cats := PromptOrder()
	require.Len(t, cats, Len())
	assert.Equal(t, DrivingLane, cats[0].Type)
	assert.Equal(t, ConvexMirror, cats[17].Type)

	// same set as the display catalog
	display := make(map[SemanticType]Category)
	for _, c := range Catalog() {
		display[c.Type] = c
	}
	for _, c := range cats {
		assert.Equal(t, display[c.Type], c)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		typ   SemanticType
		color string
		label string
	}{
		{DrivingLane, "#374151", "Driving Lane (行车道)"},
		{ParkingSpace, "#FBCFE8", "Parking Space (停车位)"},
		{DecelerationZone, "#FCD34D", "Deceleration Zone (减速带)"},
		{ConvexMirror, "#F87171", "Convex Mirror (凸面镜)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			c, ok := Lookup(tt.typ)
			require.True(t, ok)
			assert.Equal(t, tt.color, c.Color)
			assert.Equal(t, tt.label, c.Label())
			assert.Equal(t, string(tt.typ), c.Name())
		})
	}

	_, ok := Lookup("Helipad")
	assert.False(t, ok)
}
