package gimages

import (
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 45 45">
<circle cx="22.5" cy="22.5" r="18" fill="#333333"/>
</svg>`

func TestRasterizeSVG(t *testing.T) {
	rgba, err := RasterizeSVG([]byte(testSVG), 60)
	if err != nil {
		t.Fatalf("RasterizeSVG: %v", err)
	}
	if got := rgba.Bounds().Dx(); got != 60 {
		t.Fatalf("width = %d, want 60", got)
	}

	// center pixel of the circle must be opaque
	if _, _, _, a := rgba.At(30, 30).RGBA(); a == 0 {
		t.Fatal("center pixel is transparent, nothing was drawn")
	}
	// corner stays transparent
	if _, _, _, a := rgba.At(1, 1).RGBA(); a != 0 {
		t.Fatal("corner pixel should be transparent")
	}
}

func TestRasterizeSVGMalformed(t *testing.T) {
	if _, err := RasterizeSVG([]byte("<svg"), 60); err == nil {
		t.Fatal("expected error on malformed SVG")
	}
}
