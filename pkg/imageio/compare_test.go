package imageio

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	black := image.NewRGBA(image.Rect(0, 0, 2, 1))
	for i := 3; i < len(black.Pix); i += 4 {
		black.Pix[i] = 255
	}
	oneWhite := image.NewRGBA(black.Bounds())
	copy(oneWhite.Pix, black.Pix)
	oneWhite.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	diff, err := Compare(black, oneWhite)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	// Three of six channels differ by 1
	if math.Abs(diff.RMS-math.Sqrt(0.5)) > 1e-9 {
		t.Errorf("Expected RMS %f, got %f", math.Sqrt(0.5), diff.RMS)
	}
	if diff.MaxChannel != 1 || diff.Differing != 1 {
		t.Errorf("Unexpected difference %+v", diff)
	}

	same, _ := Compare(black, black)
	if same != (Difference{}) {
		t.Errorf("Expected zero difference, got %+v", same)
	}
}

func TestCompare_SizeMismatch(t *testing.T) {
	_, err := Compare(image.NewRGBA(image.Rect(0, 0, 2, 2)), image.NewRGBA(image.Rect(0, 0, 3, 2)))
	if err == nil {
		t.Error("Expected an error for mismatched sizes")
	}
}

func TestAnnotate(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 60))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}

	out := Annotate(src, "scene: default", "ss: 2x2")
	if out.Bounds() != src.Bounds() {
		t.Fatalf("Expected bounds %v, got %v", src.Bounds(), out.Bounds())
	}

	lit := 0
	for y := 0; y < 2*lineHeight; y++ {
		for x := 0; x < 200; x++ {
			if out.RGBAAt(x, y).R > 128 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected text pixels in the caption band")
	}
	if out.RGBAAt(199, 59) != src.RGBAAt(199, 59) {
		t.Error("Pixels outside the caption band should be unchanged")
	}
	if src.RGBAAt(5, 5).R != 0 {
		t.Error("Annotate must not modify the source image")
	}
}

func TestAnnotate_NoLines(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.RGBA{R: 10, A: 255})
	out := Annotate(src)
	if out.RGBAAt(1, 1) != src.RGBAAt(1, 1) {
		t.Error("Expected an unchanged copy")
	}
}
