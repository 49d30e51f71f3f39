package internal

import (
	"embed"
	"log"
)

// Test fixtures are small SVG documents in fixtures/, loaded with the same
// reader the command line uses. Any failure to load one is a broken test setup,
// so it's fatal.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Shape {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	shapes, err := LoadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return shapes
}

// Raw fixture bytes, for tests that expect LoadSVG to fail.
func ReadFixture(name string) []byte {
	data, err := fixtures.ReadFile("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	return data
}
