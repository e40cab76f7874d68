package iconrender

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Константа для аппроксимации четверти окружности кубической кривой Безье
const circleKappa = 0.5522847498

// Style задаёт внешний вид иконки
type Style struct {
	Background color.Color
	Foreground color.Color
	Text       string
	FontScale  float64 // доля размера иконки, отводимая под кегль
}

// DefaultStyle — красный круг с тёмно-зелёной надписью TXFL
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF},
		Foreground: color.RGBA{R: 0x1B, G: 0x5E, B: 0x20, A: 0xFF},
		Text:       "TXFL",
		FontScale:  0.27,
	}
}

// FaceResolver выдаёт начертание нужного кегля и имя его источника
type FaceResolver interface {
	Resolve(size float64) (font.Face, string)
}

// Renderer рисует иконки одного стиля
type Renderer struct {
	style Style
	fonts FaceResolver
}

// New создаёт Renderer
func New(style Style, fonts FaceResolver) *Renderer {
	return &Renderer{style: style, fonts: fonts}
}

// FontSize возвращает кегль для иконки: round(size * scale)
func FontSize(size int, scale float64) float64 {
	return math.Round(float64(size) * scale)
}

// Render рисует иконку size×size на прозрачном фоне.
// Второе значение — имя использованного шрифта.
func (r *Renderer) Render(size int) (*image.RGBA, string) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillCircle(img, r.style.Background)

	if r.style.Text == "" {
		return img, ""
	}

	face, name := r.fonts.Resolve(FontSize(size, r.style.FontScale))
	defer face.Close()
	drawCentered(img, face, r.style.Text, r.style.Foreground)
	return img, name
}

// fillCircle заливает круг, вписанный в холст без отступов
func fillCircle(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	rx, ry := float32(w)/2, float32(h)/2
	cx, cy := rx, ry
	kx, ky := rx*circleKappa, ry*circleKappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

// drawCentered центрирует по рамке самих глифов, а не по рамке строки,
// поэтому верхний отступ (ascent) компенсируется через bounds.Min.Y.
func drawCentered(img *image.RGBA, face font.Face, text string, c color.Color) {
	bounds, _ := font.BoundString(face, text)
	textW := bounds.Max.X - bounds.Min.X
	textH := bounds.Max.Y - bounds.Min.Y

	w := fixed.I(img.Bounds().Dx())
	h := fixed.I(img.Bounds().Dy())

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: (w-textW)/2 - bounds.Min.X,
			Y: (h-textH)/2 - bounds.Min.Y,
		},
	}
	d.DrawString(text)
}
