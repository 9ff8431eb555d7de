package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Tile represents a rectangular region of the output image. A tile always
// covers whole super-sampled blocks, so it can be resolved on its own.
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Output pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of passes completed for this tile
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}

// renderTile traces every sub-pixel under the tile into buf. Tiles never
// overlap, so concurrent calls for different tiles need no locking.
func renderTile(rt *Raytracer, buf *Buffer, tile *Tile, objects []*scene.Object, pl lights.PointLight, dl lights.DirectionalLight) {
	ss := buf.SuperSampling
	for y := tile.Bounds.Min.Y * ss; y < tile.Bounds.Max.Y*ss; y++ {
		for x := tile.Bounds.Min.X * ss; x < tile.Bounds.Max.X*ss; x++ {
			buf.set(x, y, rt.TracePixel(objects, x, y, pl, dl))
		}
	}
}
