package iconrender

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"
)

// Save рисует иконку и записывает её в path. Существующий файл перезаписывается.
func (r *Renderer) Save(size int, path string) (string, error) {
	img, fontName := r.Render(size)
	if err := WritePNG(path, img); err != nil {
		return fontName, err
	}
	return fontName, nil
}

// WritePNG сохраняет изображение в формате PNG
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("создание файла %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("кодирование PNG %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("запись файла %s: %w", path, err)
	}
	return nil
}

// ParseHexColor разбирает цвета вида #RGB, #RRGGBB и #RRGGBBAA
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("неверный цвет %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("неверный цвет %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
