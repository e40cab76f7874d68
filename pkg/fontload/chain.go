package fontload

import (
	"errors"

	log "github.com/schollz/logger"
	"golang.org/x/image/font"
)

// Chain перебирает источники по порядку, первый успешный побеждает.
// Если ни один не сработал, используется встроенный шрифт.
type Chain struct {
	sources  []Source
	fallback Source
}

// NewChain создаёт цепочку с Builtin() в качестве последнего шага
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources, fallback: Builtin()}
}

// DefaultChain повторяет порядок поиска жирного шрифта Arial
func DefaultChain() *Chain {
	return NewChain(DefaultSources()...)
}

// DefaultSources возвращает три попытки до встроенного шрифта
func DefaultSources() []Source {
	return []Source{
		Named("arialbd.ttf"),
		Named("Arial Bold.ttf"),
		Path("C:/Windows/Fonts/arialbd.ttf"),
	}
}

// Sources возвращает копию списка попыток без встроенного шрифта
func (c *Chain) Sources() []Source {
	return append([]Source(nil), c.sources...)
}

// Resolve возвращает начертание и имя источника. Ошибок не бывает:
// отсутствующий шрифт пропускается молча, прочие сбои загрузки
// пишутся в журнал как предупреждения.
func (c *Chain) Resolve(size float64) (font.Face, string) {
	for _, src := range c.sources {
		face, err := src.Face(size)
		if err == nil {
			log.Debugf("шрифт %s, кегль %.0f", src.Name(), size)
			return face, src.Name()
		}
		if errors.Is(err, ErrNotFound) {
			log.Debugf("шрифт %s не найден", src.Name())
		} else {
			log.Warnf("шрифт %s пропущен: %v", src.Name(), err)
		}
	}

	face, _ := c.fallback.Face(size)
	log.Debugf("используется встроенный шрифт %s, кегль %.0f", c.fallback.Name(), size)
	return face, c.fallback.Name()
}
