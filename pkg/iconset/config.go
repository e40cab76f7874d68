package iconset

import (
	"flag"
	"fmt"

	"launcher_icons/pkg/config"
	"launcher_icons/pkg/iconrender"
)

// Config содержит настройки генерации
type Config struct {
	BaseDir    string  `env:"ICON_BASE_DIR" envDefault:"android/app/src/main/res"`
	Text       string  `env:"ICON_TEXT" envDefault:"TXFL"`
	Background string  `env:"ICON_BACKGROUND" envDefault:"#E53935"`
	Foreground string  `env:"ICON_FOREGROUND" envDefault:"#1B5E20"`
	FontScale  float64 `env:"ICON_FONT_SCALE" envDefault:"0.27"`
	FontPath   string  `env:"ICON_FONT"` // шрифт, проверяемый до стандартной цепочки
	DryRun     bool    `env:"ICON_DRY_RUN"`
	Verbose    bool    `env:"ICON_VERBOSE"`
	MkdirAll   bool    `env:"ICON_MKDIR"`

	// Индексирование в git-репозитории проекта
	Stage           bool   `env:"ICON_GIT_STAGE"`
	Commit          bool   `env:"ICON_GIT_COMMIT"`
	Author          string `env:"ICON_GIT_AUTHOR" envDefault:"Developer"`
	Email           string `env:"ICON_GIT_EMAIL" envDefault:"dev@example.com"`
	MessageTemplate string `env:"ICON_GIT_MESSAGE"`
}

// DefaultConfig возвращает настройки из окружения без учёта флагов
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig читает окружение, затем флаги командной строки
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.BaseDir, "base", cfg.BaseDir, "каталог res Android-проекта")
	fs.StringVar(&cfg.Text, "text", cfg.Text, "надпись на иконке")
	fs.StringVar(&cfg.Background, "bg", cfg.Background, "цвет круга")
	fs.StringVar(&cfg.Foreground, "fg", cfg.Foreground, "цвет надписи")
	fs.Float64Var(&cfg.FontScale, "font-scale", cfg.FontScale, "кегль как доля размера иконки")
	fs.StringVar(&cfg.FontPath, "font", cfg.FontPath, "путь к файлу шрифта")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "тестовый режим, файлы не записываются")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "подробный вывод")
	fs.BoolVar(&cfg.MkdirAll, "mkdir", cfg.MkdirAll, "создавать отсутствующие папки mipmap-*")
	fs.BoolVar(&cfg.Stage, "stage", cfg.Stage, "добавить иконки в индекс git")
	fs.BoolVar(&cfg.Commit, "commit", cfg.Commit, "создать коммит (включает -stage)")
	fs.StringVar(&cfg.Author, "author", cfg.Author, "имя автора коммита")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "email автора коммита")
	fs.StringVar(&cfg.MessageTemplate, "message", cfg.MessageTemplate, "шаблон сообщения коммита ({files}, {text}, {date})")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Style переводит настройки в стиль отрисовки
func (c Config) Style() (iconrender.Style, error) {
	style := iconrender.DefaultStyle()

	bg, err := iconrender.ParseHexColor(c.Background)
	if err != nil {
		return style, fmt.Errorf("цвет круга: %w", err)
	}
	fg, err := iconrender.ParseHexColor(c.Foreground)
	if err != nil {
		return style, fmt.Errorf("цвет надписи: %w", err)
	}

	style.Background = bg
	style.Foreground = fg
	style.Text = c.Text
	if c.FontScale > 0 {
		style.FontScale = c.FontScale
	}
	return style, nil
}
