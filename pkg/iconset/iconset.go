package iconset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/schollz/logger"

	"launcher_icons/pkg/config"
	"launcher_icons/pkg/fontload"
	"launcher_icons/pkg/gitstage"
	"launcher_icons/pkg/iconrender"
)

// FileName — имя файла иконки в каждой папке плотности
const FileName = "ic_launcher.png"

// Density связывает папку плотности экрана с размером иконки в пикселях
type Density struct {
	Folder string
	Size   int
}

// Densities возвращает таблицу плотностей Android в фиксированном порядке
func Densities() []Density {
	return []Density{
		{Folder: "mipmap-mdpi", Size: 48},
		{Folder: "mipmap-hdpi", Size: 72},
		{Folder: "mipmap-xhdpi", Size: 96},
		{Folder: "mipmap-xxhdpi", Size: 144},
		{Folder: "mipmap-xxxhdpi", Size: 192},
	}
}

// OutputPath возвращает <base>/<folder>/ic_launcher.png
func OutputPath(base string, d Density) string {
	return filepath.Join(base, d.Folder, FileName)
}

// Result описывает одну сгенерированную иконку
type Result struct {
	Density Density
	Path    string
	Font    string
}

// FontChain собирает цепочку шрифтов: шрифт из настроек, стандартные
// попытки, дополнительные источники вызывающего, встроенный шрифт.
func FontChain(cfg Config, extra ...fontload.Source) *fontload.Chain {
	var sources []fontload.Source
	if cfg.FontPath != "" {
		sources = append(sources, fontload.Path(cfg.FontPath))
	}
	sources = append(sources, fontload.DefaultSources()...)
	sources = append(sources, extra...)
	return fontload.NewChain(sources...)
}

// Generate рисует и сохраняет иконки для всех плотностей по очереди.
// Первая ошибка прерывает генерацию; уже записанные файлы остаются.
func Generate(cfg Config, fonts iconrender.FaceResolver, out io.Writer) ([]Result, error) {
	if out == nil {
		return nil, errors.New("output is required")
	}
	if fonts == nil {
		return nil, errors.New("font resolver is required")
	}
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	renderer := iconrender.New(style, fonts)

	var results []Result
	for _, d := range Densities() {
		path := OutputPath(cfg.BaseDir, d)

		if cfg.DryRun {
			_, fontName := renderer.Render(d.Size)
			log.Debugf("%s: %dx%d, шрифт %s", d.Folder, d.Size, d.Size, fontName)
			fmt.Fprintf(out, "Dry run: %s\n", path)
			results = append(results, Result{Density: d, Path: path, Font: fontName})
			continue
		}

		if cfg.MkdirAll {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return results, fmt.Errorf("ошибка создания директории: %w", err)
			}
		}

		fontName, err := renderer.Save(d.Size, path)
		if err != nil {
			return results, err
		}
		log.Debugf("%s: %dx%d, шрифт %s", d.Folder, d.Size, d.Size, fontName)
		fmt.Fprintf(out, "Created: %s\n", path)
		results = append(results, Result{Density: d, Path: path, Font: fontName})
	}

	fmt.Fprintln(out, "All icons generated!")
	return results, nil
}

// Run генерирует иконки со стандартной цепочкой шрифтов
func Run(cfg Config, out io.Writer) error {
	return RunWith(cfg, FontChain(cfg), out)
}

// RunWith генерирует иконки и при необходимости индексирует их в git
func RunWith(cfg Config, fonts iconrender.FaceResolver, out io.Writer) error {
	config.SetupLogger(cfg.Verbose, nil)

	results, err := Generate(cfg, fonts, out)
	if err != nil {
		return err
	}

	if !cfg.Stage && !cfg.Commit {
		return nil
	}

	paths := make([]string, 0, len(results))
	for _, r := range results {
		paths = append(paths, r.Path)
	}
	res, err := gitstage.Stage(paths, gitstage.Options{
		Commit:          cfg.Commit,
		Author:          cfg.Author,
		Email:           cfg.Email,
		MessageTemplate: cfg.MessageTemplate,
		Text:            cfg.Text,
		DryRun:          cfg.DryRun,
	})
	if err != nil {
		return fmt.Errorf("git: %w", err)
	}

	if !res.Commit.IsZero() {
		fmt.Fprintf(out, "Committed: %s\n", res.Commit)
	} else if len(res.Staged) > 0 {
		fmt.Fprintf(out, "Staged: %d files\n", len(res.Staged))
	}
	return nil
}
