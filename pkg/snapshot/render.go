package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/binder/pkg/widget"
)

// Theme is the palette used by Render.
type Theme struct {
	Background color.RGBA
	Foreground color.RGBA
	Disabled   color.RGBA
	Border     color.RGBA
	Accent     color.RGBA
}

// Themes are the palettes selectable by name.
var Themes = map[string]Theme{
	"light": {
		Background: color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
		Foreground: color.RGBA{0x21, 0x21, 0x21, 0xff},
		Disabled:   color.RGBA{0x9e, 0x9e, 0x9e, 0xff},
		Border:     color.RGBA{0xbd, 0xbd, 0xbd, 0xff},
		Accent:     color.RGBA{0xbb, 0xde, 0xfb, 0xff},
	},
	"dark": {
		Background: color.RGBA{0x21, 0x21, 0x21, 0xff},
		Foreground: color.RGBA{0xee, 0xee, 0xee, 0xff},
		Disabled:   color.RGBA{0x75, 0x75, 0x75, 0xff},
		Border:     color.RGBA{0x61, 0x61, 0x61, 0xff},
		Accent:     color.RGBA{0x1e, 0x88, 0xe5, 0xff},
	},
}

// RenderOptions controls Render.
type RenderOptions struct {
	Width  int
	Height int
	Theme  string
}

const (
	indent  = 12
	padding = 4
)

// Render draws c and its visible descendants as stacked rows, one row per
// line of content, indented by depth. Rows past the bottom edge are clipped.
func Render(c widget.Component, opts RenderOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid render size %dx%d", opts.Width, opts.Height)
	}
	theme, ok := Themes[opts.Theme]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", opts.Theme)
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	fill(img, img.Bounds(), theme.Background)

	p := &painter{img: img, theme: theme, face: basicfont.Face7x13}
	m := p.face.Metrics()
	p.ascent = m.Ascent.Ceil()
	p.line = m.Height.Ceil() + padding
	p.y = padding
	if c != nil {
		p.component(c, 0)
	}
	return img, nil
}

// WritePNG renders c and encodes it as PNG to w.
func WritePNG(w io.Writer, c widget.Component, opts RenderOptions) error {
	img, err := Render(c, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

type painter struct {
	img    *image.RGBA
	theme  Theme
	face   font.Face
	ascent int
	line   int
	y      int
}

func (p *painter) full() bool {
	return p.y >= p.img.Bounds().Dy()
}

func (p *painter) component(c widget.Component, depth int) {
	if !c.Visible() || p.full() {
		return
	}
	fg := p.theme.Foreground
	if !c.Enabled() {
		fg = p.theme.Disabled
	}
	x := padding + depth*indent

	switch c := c.(type) {
	case *widget.Frame:
		p.bar(x, c.Title(), fg)
	case *widget.Button:
		p.boxed(x, "["+c.Text()+"]", fg)
	case *widget.Label:
		p.row(x, c.Text(), fg, false)
	case *widget.List:
		sel := selected(c.SelectedIndices())
		r := c.VisibleRange()
		for i := r.First; i <= r.Last; i++ {
			p.row(x, fmt.Sprint(c.Items()[i]), fg, sel[i])
		}
	case *widget.Table:
		p.row(x, strings.Join(c.Columns(), " | "), fg, false)
		p.rule(x)
		sel := selected(c.SelectedIndices())
		for i, row := range c.Rows() {
			p.row(x, strings.Join(stringify(row), " | "), fg, sel[i])
		}
	case widget.TextComponent:
		for _, line := range strings.Split(c.Text(), "\n") {
			p.boxed(x, line, fg)
		}
	}

	if ct, ok := c.(widget.Container); ok {
		for _, child := range ct.Children() {
			p.component(child, depth+1)
		}
	}
}

func selected(indices []int) map[int]bool {
	m := make(map[int]bool, len(indices))
	for _, i := range indices {
		m[i] = true
	}
	return m
}

func (p *painter) row(x int, s string, fg color.RGBA, highlight bool) {
	if p.full() {
		return
	}
	if highlight {
		fill(p.img, image.Rect(x-2, p.y-2, p.img.Bounds().Dx()-padding, p.y+p.line-2), p.theme.Accent)
	}
	p.text(x, s, fg)
	p.y += p.line
}

func (p *painter) boxed(x int, s string, fg color.RGBA) {
	if p.full() {
		return
	}
	w := font.MeasureString(p.face, s).Ceil() + 2*padding
	outline(p.img, image.Rect(x-2, p.y-2, x-2+w, p.y+p.line-2), p.theme.Border)
	p.text(x+padding-2, s, fg)
	p.y += p.line
}

func (p *painter) bar(x int, title string, fg color.RGBA) {
	if p.full() {
		return
	}
	fill(p.img, image.Rect(0, p.y-2, p.img.Bounds().Dx(), p.y+p.line-2), p.theme.Border)
	p.text(x, title, fg)
	p.y += p.line
}

func (p *painter) rule(x int) {
	fill(p.img, image.Rect(x, p.y-2, p.img.Bounds().Dx()-padding, p.y-1), p.theme.Border)
}

func (p *painter) text(x int, s string, fg color.RGBA) {
	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(fg),
		Face: p.face,
		Dot:  fixed.P(x, p.y+p.ascent),
	}
	d.DrawString(s)
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}
