package render

import "testing"

func TestGlowPixels(t *testing.T) {
	const size = 33
	pix := glowPixels(size)
	if len(pix) != size*size*4 {
		t.Fatalf("len = %d, want %d", len(pix), size*size*4)
	}
	alpha := func(x, y int) byte { return pix[(y*size+x)*4+3] }

	if a := alpha(16, 16); a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := alpha(0, 0); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	for x := 17; x < size; x++ {
		if alpha(x, 16) > alpha(x-1, 16) {
			t.Errorf("alpha rises from x=%d to x=%d", x-1, x)
		}
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+3] || pix[i+1] != pix[i+3] || pix[i+2] != pix[i+3] {
			t.Fatalf("pixel %d not premultiplied white: %v", i/4, pix[i:i+4])
		}
	}
}
