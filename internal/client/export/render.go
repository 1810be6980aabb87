package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"os"
	"strings"

	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/go-resty/resty/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"
)

// Logical layout, before scaling.
const (
	cardWidth   = 360
	cardPadding = 16
	imageHeight = 240
	lineGap     = 6
	maxLines    = 12
)

var (
	Background  = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	textColor   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	mutedColor  = color.RGBA{0x88, 0x88, 0x88, 0xff}
	placeholder = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// Renderer rasterizes cards.
type Renderer struct {
	Scale int

	rc   *resty.Client
	face font.Face
	log  logging.Logger
}

type RendererOption func(*Renderer) error

// WithHTTPClient replaces the client used to fetch card images.
func WithHTTPClient(hc *http.Client) RendererOption {
	return func(r *Renderer) error {
		r.rc = resty.NewWithClient(hc)
		return nil
	}
}

// WithFontFile renders text with a TrueType/OpenType font instead of the
// built-in ASCII bitmap face. Hangul needs one.
func WithFontFile(path string, size float64) RendererOption {
	return func(r *Renderer) error {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		f, err := opentype.Parse(b)
		if err != nil {
			return fmt.Errorf("parse font: %w", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return fmt.Errorf("font face: %w", err)
		}
		r.face = face
		return nil
	}
}

func NewRenderer(log logging.Logger, opts ...RendererOption) (*Renderer, error) {
	if log == nil {
		log = logging.Discard()
	}
	r := &Renderer{
		Scale: 2,
		rc:    resty.New(),
		face:  basicfont.Face7x13,
		log:   log.With("component", "export"),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render lays card out and returns the scaled raster.
func (r *Renderer) Render(ctx context.Context, card Card) (*image.RGBA, error) {
	scale := r.Scale
	if scale < 1 {
		scale = 1
	}

	inner := cardWidth - 2*cardPadding
	var lines []textLine
	lines = append(lines, r.wrap(card.Title, inner, textColor)...)
	if card.Subtitle != "" {
		lines = append(lines, r.wrap(card.Subtitle, inner, mutedColor)...)
	}
	for _, l := range card.Lines {
		lines = append(lines, r.wrap(l, inner, textColor)...)
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	metrics := r.face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil() + lineGap

	height := cardPadding
	imgTop := height
	if card.ImageURL != "" {
		height += imageHeight + cardPadding
	}
	textTop := height
	height += len(lines)*lineHeight + cardPadding

	// Text is drawn at logical size on a transparent layer and scaled with
	// nearest neighbour so bitmap glyphs stay crisp.
	layer := image.NewRGBA(image.Rect(0, 0, cardWidth, height))
	for i, l := range lines {
		d := &font.Drawer{
			Dst:  layer,
			Src:  image.NewUniform(l.color),
			Face: r.face,
			Dot:  fixed.P(cardPadding, textTop+i*lineHeight+metrics.Ascent.Ceil()),
		}
		d.DrawString(l.text)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, cardWidth*scale, height*scale))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	if card.ImageURL != "" {
		dst := image.Rect(cardPadding*scale, imgTop*scale, (cardWidth-cardPadding)*scale, (imgTop+imageHeight)*scale)
		if src, err := r.fetchImage(ctx, card.ImageURL); err != nil {
			r.log.Warn(ctx, "card image unavailable, using placeholder", "url", card.ImageURL, "err", err)
			draw.Draw(canvas, dst, image.NewUniform(placeholder), image.Point{}, draw.Src)
		} else {
			xdraw.CatmullRom.Scale(canvas, fit(dst, src.Bounds()), src, src.Bounds(), xdraw.Over, nil)
		}
	}

	xdraw.NearestNeighbor.Scale(canvas, canvas.Bounds(), layer, layer.Bounds(), xdraw.Over, nil)
	return canvas, nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) fetchImage(ctx context.Context, url string) (image.Image, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("not a remote image: %q", url)
	}

	resp, err := r.rc.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch image: %s", resp.Status())
	}

	img, _, err := image.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// fit centres src's aspect ratio inside dst.
func fit(dst, src image.Rectangle) image.Rectangle {
	dw, dh := dst.Dx(), dst.Dy()
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return dst
	}

	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

type textLine struct {
	text  string
	color color.Color
}

// wrap breaks s into lines no wider than width, preferring spaces.
func (r *Renderer) wrap(s string, width int, c color.Color) []textLine {
	var out []textLine
	for _, para := range strings.Split(s, "\n") {
		var line []rune
		lastSpace := -1
		for _, ch := range para {
			line = append(line, ch)
			if ch == ' ' {
				lastSpace = len(line) - 1
			}
			if font.MeasureString(r.face, string(line)).Ceil() <= width {
				continue
			}
			cut := len(line) - 1
			if lastSpace > 0 {
				cut = lastSpace
			}
			if cut == 0 {
				cut = len(line)
			}
			out = append(out, textLine{text: strings.TrimSpace(string(line[:cut])), color: c})
			line = []rune(strings.TrimLeft(string(line[cut:]), " "))
			lastSpace = -1
		}
		if len(line) > 0 {
			out = append(out, textLine{text: string(line), color: c})
		}
	}
	return out
}
