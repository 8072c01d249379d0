package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/toromaze/maze"
)

var (
	wallColor     = color.Black
	floorColor    = color.White
	pathColor     = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	startColor    = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	endColor      = color.RGBA{R: 100, G: 120, B: 255, A: 255}
	explorerColor = color.RGBA{R: 250, G: 190, B: 20, A: 255}
)

// planeImage satisfies image.Image, drawing each cell as a square of
// px×px pixels whose top and left edges are its walls. One extra pixel
// row and column close the far edges with the wraparound walls.
type planeImage struct {
	p  *plane
	px int
}

func (im *planeImage) ColorModel() color.Model { return color.RGBAModel }

func (im *planeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.p.cols*im.px+1, im.p.rows*im.px+1)
}

func (im *planeImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(im.Bounds())) {
		return color.Transparent
	}
	r, dy := y/im.px, y%im.px
	c, dx := x/im.px, x%im.px
	switch {
	case dx == 0 && dy == 0:
		return wallColor
	case dy == 0:
		return wallOrFloor(im.p.wallAbove(r, c))
	case dx == 0:
		return wallOrFloor(im.p.wallLeft(r, c))
	case r >= im.p.rows || c >= im.p.cols:
		return floorColor
	case dx == 1 || dy == 1 || dx == im.px-1 || dy == im.px-1:
		// one-pixel floor margin around the mark
		return floorColor
	}

	switch im.p.mark(r, c) {
	case markPath:
		return pathColor
	case markStart:
		return startColor
	case markEnd:
		return endColor
	case markExplorer:
		return explorerColor
	}

	return floorColor
}

func wallOrFloor(present bool) color.Color {
	if present {
		return wallColor
	}

	return floorColor
}

// Image rasterizes the view plane. Start and end cells that lie on the
// plane get an arrow drawn next to them.
func Image(m *maze.Maze, opts ...Option) (*image.RGBA, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := newPlane(m, cfg)
	pic := &planeImage{p: p, px: cfg.CellPixels}

	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(image_utils.ToRGBA(pic), image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: adding maze plane: %w", err)
	}

	arrowSize := max(cfg.CellPixels-2, 1)
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			k := p.mark(r, c)
			if k != markStart && k != markEnd {
				continue
			}
			arrow, at := arrowFor(k, r, c, cfg.CellPixels, p.rows)
			resized := image_utils.ResizeImage(arrow, arrowSize, arrowSize)
			if err := composite.AddImage(resized, at); err != nil {
				return nil, fmt.Errorf("render: adding arrow at (%d, %d): %w", r, c, err)
			}
		}
	}

	return image_utils.ToRGBA(composite), nil
}

// arrowFor returns the arrow marking cell (r, c) and its top-left corner.
// The arrow points down from the cell above; first-row cells get an arrow
// pointing up from the cell below, and single-row planes draw it in place.
func arrowFor(k mark, r, c, px, rows int) (image.Image, image.Point) {
	fill := endColor
	if k == markStart {
		fill = startColor
	}
	x := c*px + 1
	switch {
	case r > 0:
		return image_utils.DownArrow(fill), image.Pt(x, (r-1)*px+1)
	case rows > 1:
		return image_utils.UpArrow(fill), image.Pt(x, px+1)
	default:
		return image_utils.DownArrow(fill), image.Pt(x, 1)
	}
}

// WritePNG encodes Image(m, opts...) to w.
func WritePNG(w io.Writer, m *maze.Maze, opts ...Option) error {
	pic, err := Image(m, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, pic); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}

	return nil
}
