package imageio

import (
	"fmt"
	"image"
	"math"
)

// Difference summarizes how far one image is from another
type Difference struct {
	RMS        float64 // Root mean square channel difference in [0,1]
	MaxChannel float64 // Largest single channel difference in [0,1]
	Differing  int     // Pixels with any channel differing by more than 1/255
}

// Compare measures the per-channel difference between two images of equal size
func Compare(a, b image.Image) (Difference, error) {
	aw, ah, ap := ToColors(a)
	bw, bh, bp := ToColors(b)
	if aw != bw || ah != bh {
		return Difference{}, fmt.Errorf("image sizes differ: %dx%d vs %dx%d", aw, ah, bw, bh)
	}
	if len(ap) == 0 {
		return Difference{}, nil
	}

	var diff Difference
	sum := 0.0
	for i := range ap {
		dr := ap[i].R - bp[i].R
		dg := ap[i].G - bp[i].G
		db := ap[i].B - bp[i].B
		sum += dr*dr + dg*dg + db*db

		worst := max(math.Abs(dr), math.Abs(dg), math.Abs(db))
		diff.MaxChannel = max(diff.MaxChannel, worst)
		if worst > 1.0/255.0 {
			diff.Differing++
		}
	}
	diff.RMS = math.Sqrt(sum / float64(3*len(ap)))
	return diff, nil
}
