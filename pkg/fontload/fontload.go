package fontload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	log "github.com/schollz/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// ErrNotFound означает, что файл шрифта отсутствует
var ErrNotFound = errors.New("шрифт не найден")

// Source — одна попытка получить шрифт заданного кегля
type Source interface {
	Name() string
	Face(size float64) (font.Face, error)
}

// Named ищет шрифт по короткому имени файла: сначала относительно
// рабочей директории, затем в системных каталогах шрифтов.
// Если dirs не заданы, используются SystemDirs().
func Named(file string, dirs ...string) Source {
	return &namedSource{file: file, dirs: dirs}
}

// Path загружает шрифт по абсолютному пути
func Path(path string) Source {
	return &pathSource{path: path}
}

// Bytes использует уже загруженные данные TTF/OTF
func Bytes(name string, data []byte) Source {
	return &bytesSource{name: name, data: data}
}

// Builtin возвращает встроенный шрифт Go Bold. Попытка не может завершиться ошибкой.
func Builtin() Source {
	return builtinSource{}
}

type namedSource struct {
	file string
	dirs []string
}

func (s *namedSource) Name() string { return s.file }

func (s *namedSource) Face(size float64) (font.Face, error) {
	path, err := s.locate()
	if err != nil {
		return nil, err
	}
	return loadFile(path, size)
}

func (s *namedSource) locate() (string, error) {
	if info, err := os.Stat(s.file); err == nil && !info.IsDir() {
		return s.file, nil
	}

	dirs := s.dirs
	if len(dirs) == 0 {
		dirs = SystemDirs()
	}
	for _, dir := range dirs {
		if path, ok := findInDir(dir, s.file); ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s: %w", s.file, ErrNotFound)
}

// findInDir рекурсивно ищет файл без учёта регистра
func findInDir(dir, file string) (string, bool) {
	direct := filepath.Join(dir, file)
	if info, err := os.Stat(direct); err == nil && !info.IsDir() {
		return direct, true
	}

	var found string
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Недоступные подкаталоги пропускаем
			if d != nil && d.IsDir() && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), file) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	return found, found != ""
}

type pathSource struct {
	path string
}

func (s *pathSource) Name() string { return s.path }

func (s *pathSource) Face(size float64) (font.Face, error) {
	return loadFile(s.path, size)
}

type bytesSource struct {
	name string
	data []byte
}

func (s *bytesSource) Name() string { return s.name }

func (s *bytesSource) Face(size float64) (font.Face, error) {
	if len(s.data) == 0 {
		return nil, fmt.Errorf("%s: %w", s.name, ErrNotFound)
	}
	return newFace(s.data, size)
}

type builtinSource struct{}

func (builtinSource) Name() string { return "gobold" }

func (builtinSource) Face(size float64) (font.Face, error) {
	face, err := newFace(gobold.TTF, size)
	if err != nil {
		log.Warnf("встроенный шрифт не разобран, используется растровый: %v", err)
		return basicfont.Face7x13, nil
	}
	return face, nil
}

func loadFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("чтение шрифта %s: %w", path, err)
	}
	face, err := newFace(data, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return face, nil
}

// newFace разбирает TTF/OTF, а для коллекций (.ttc) берёт первый шрифт
func newFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		coll, collErr := opentype.ParseCollection(data)
		if collErr != nil || coll.NumFonts() == 0 {
			return nil, fmt.Errorf("разбор шрифта: %w", err)
		}
		if f, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("разбор коллекции шрифтов: %w", err)
		}
	}
	// DPI 72: кегль в пунктах совпадает с размером в пикселях
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("создание начертания: %w", err)
	}
	return face, nil
}

// SystemDirs возвращает каталоги шрифтов текущей платформы
func SystemDirs() []string {
	var dirs []string
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs, "/Library/Fonts", "/System/Library/Fonts", "/System/Library/Fonts/Supplemental")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	default:
		if data := os.Getenv("XDG_DATA_HOME"); data != "" {
			dirs = append(dirs, filepath.Join(data, "fonts"))
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		dirs = append(dirs, "/usr/local/share/fonts", "/usr/share/fonts")
	}
	return dirs
}
