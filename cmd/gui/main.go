package main

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/zenity"

	"launcher_icons/pkg/config"
	"launcher_icons/pkg/fontload"
	"launcher_icons/pkg/iconrender"
	"launcher_icons/pkg/iconset"
)

type GUI struct {
	window fyne.Window
	theme  *nativeTheme
	config iconset.Config

	// Виджеты
	baseEntry      *widget.Entry
	textEntry      *widget.Entry
	bgEntry        *widget.Entry
	fgEntry        *widget.Entry
	fontEntry      *widget.Entry
	authorEntry    *widget.Entry
	emailEntry     *widget.Entry
	messageEntry   *widget.Entry
	dryRunCheck    *widget.Check
	verboseCheck   *widget.Check
	mkdirCheck     *widget.Check
	stageCheck     *widget.Check
	commitCheck    *widget.Check
	preview        *canvas.Image
	logText        *widget.TextGrid
	generateButton *widget.Button
}

func main() {
	cfg, err := iconset.DefaultConfig()
	if err != nil {
		config.Exitf("parse env: %v", err)
	}

	a := app.NewWithID("com.launchericons.app")
	th := newNativeTheme()
	a.Settings().SetTheme(th)
	window := a.NewWindow("Генератор иконок приложения")

	gui := &GUI{
		window: window,
		theme:  th,
		config: cfg,
	}

	gui.setupUI()
	window.Resize(fyne.NewSize(700, 800))
	window.ShowAndRun()
}

func (g *GUI) setupUI() {
	g.baseEntry = newEntry(g.config.BaseDir, "android/app/src/main/res")
	g.textEntry = newEntry(g.config.Text, "TXFL")
	g.bgEntry = newEntry(g.config.Background, "#E53935")
	g.fgEntry = newEntry(g.config.Foreground, "#1B5E20")
	g.fontEntry = newEntry(g.config.FontPath, "необязательно: путь к .ttf")
	g.authorEntry = newEntry(g.config.Author, "Иван Иванов")
	g.emailEntry = newEntry(g.config.Email, "ivan@example.com")
	g.messageEntry = newEntry(g.config.MessageTemplate, "Regenerate launcher icons ({files} files)")

	baseBrowse := widget.NewButtonWithIcon("Обзор", theme.FolderOpenIcon(), func() {
		path, err := zenity.SelectFile(
			zenity.Title("Выберите каталог res проекта"),
			zenity.Directory(),
		)
		if err == nil && path != "" {
			g.baseEntry.SetText(path)
		}
	})
	styleNativeButton(baseBrowse)

	fontBrowse := widget.NewButtonWithIcon("Обзор", theme.FileIcon(), func() {
		path, err := zenity.SelectFile(
			zenity.Title("Выберите файл шрифта"),
			zenity.FileFilters{
				{Name: "Шрифты", Patterns: []string{"*.ttf", "*.otf", "*.ttc"}},
			},
		)
		if err == nil && path != "" {
			g.fontEntry.SetText(path)
		}
	})
	styleNativeButton(fontBrowse)

	// Чекбоксы
	g.dryRunCheck = widget.NewCheck("Тестовый режим", nil)
	g.dryRunCheck.SetChecked(g.config.DryRun)
	g.verboseCheck = widget.NewCheck("Подробный вывод", nil)
	g.verboseCheck.SetChecked(g.config.Verbose)
	g.mkdirCheck = widget.NewCheck("Создавать папки", nil)
	g.mkdirCheck.SetChecked(g.config.MkdirAll)
	g.stageCheck = widget.NewCheck("Добавить в git", nil)
	g.stageCheck.SetChecked(g.config.Stage)
	g.commitCheck = widget.NewCheck("Создать коммит", nil)
	g.commitCheck.SetChecked(g.config.Commit)

	// Предпросмотр самой крупной иконки
	g.preview = canvas.NewImageFromImage(nil)
	g.preview.FillMode = canvas.ImageFillContain
	g.preview.SetMinSize(fyne.NewSize(192, 192))

	g.logText = widget.NewTextGrid()
	g.logText.SetText("Укажите каталог res проекта и нажмите 'Сгенерировать иконки'")

	g.generateButton = widget.NewButtonWithIcon("Сгенерировать иконки", theme.MediaPlayIcon(), g.startGeneration)
	styleNativePrimaryButton(g.generateButton)

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Каталог res", Widget: container.NewBorder(nil, nil, nil, baseBrowse, g.baseEntry)},
			{Text: "Надпись", Widget: g.textEntry},
			{Text: "Цвет круга", Widget: g.bgEntry},
			{Text: "Цвет надписи", Widget: g.fgEntry},
			{Text: "Шрифт", Widget: container.NewBorder(nil, nil, nil, fontBrowse, g.fontEntry)},
			{Text: "Имя автора", Widget: g.authorEntry},
			{Text: "Email автора", Widget: g.emailEntry},
			{Text: "Сообщение коммита", Widget: g.messageEntry},
		},
	}

	options := container.NewHBox(
		g.dryRunCheck,
		g.verboseCheck,
		g.mkdirCheck,
		g.stageCheck,
		g.commitCheck,
	)

	buttons := container.NewHBox(
		g.generateButton,
		widget.NewButtonWithIcon("Очистить лог", theme.ContentClearIcon(), func() {
			g.logText.SetText("")
		}),
	)

	optionsLabel := widget.NewLabel("Дополнительные опции")
	optionsLabel.TextStyle = fyne.TextStyle{Bold: true}
	previewLabel := widget.NewLabel("Предпросмотр")
	previewLabel.TextStyle = fyne.TextStyle{Bold: true}
	logLabel := widget.NewLabel("Лог операций")
	logLabel.TextStyle = fyne.TextStyle{Bold: true}

	logScroll := container.NewScroll(g.logText)
	logScroll.SetMinSize(fyne.NewSize(500, 160))

	mainContainer := container.NewVBox(
		form,
		container.NewVBox(
			optionsLabel,
			widget.NewCard("", "", options),
		),
		buttons,
		container.NewVBox(
			previewLabel,
			widget.NewCard("", "", container.NewCenter(g.preview)),
		),
		container.NewVBox(
			logLabel,
			widget.NewCard("", "", logScroll),
		),
	)

	g.window.SetContent(container.NewPadded(container.NewVScroll(mainContainer)))
}

func newEntry(text, placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(text)
	entry.SetPlaceHolder(placeholder)
	entry.Resize(fyne.NewSize(300, entry.MinSize().Height))
	styleNativeEntry(entry)
	return entry
}

func styleNativeEntry(entry *widget.Entry) {
	entry.TextStyle = fyne.TextStyle{}
}

func styleNativeButton(button *widget.Button) {
	button.Importance = widget.MediumImportance
}

func styleNativePrimaryButton(button *widget.Button) {
	button.Importance = widget.HighImportance
}

// Тема в цветах иконки
type nativeTheme struct {
	defaultTheme fyne.Theme
}

func newNativeTheme() *nativeTheme {
	return &nativeTheme{
		defaultTheme: theme.DefaultTheme(),
	}
}

func (t *nativeTheme) Font(s fyne.TextStyle) fyne.Resource {
	return t.defaultTheme.Font(s)
}

func (t *nativeTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 236, G: 236, B: 236, A: 255}
	case theme.ColorNameButton:
		return color.NRGBA{R: 224, G: 224, B: 224, A: 255}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xE5, G: 0x39, B: 0x35, A: 255}
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 0x1B, G: 0x5E, B: 0x20, A: 255}
	default:
		return t.defaultTheme.Color(n, v)
	}
}

func (t *nativeTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return t.defaultTheme.Icon(n)
}

func (t *nativeTheme) Size(s fyne.ThemeSizeName) float32 {
	switch s {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameText:
		return 14
	default:
		return t.defaultTheme.Size(s)
	}
}

// boldFont — жирный шрифт самого интерфейса, последняя попытка перед встроенным
func (t *nativeTheme) boldFont() fontload.Source {
	res := t.Font(fyne.TextStyle{Bold: true})
	if res == nil {
		return fontload.Bytes("fyne-bold", nil)
	}
	return fontload.Bytes(res.Name(), res.Content())
}

func (g *GUI) readForm() iconset.Config {
	cfg := g.config
	cfg.BaseDir = strings.TrimSpace(g.baseEntry.Text)
	cfg.Text = g.textEntry.Text
	cfg.Background = strings.TrimSpace(g.bgEntry.Text)
	cfg.Foreground = strings.TrimSpace(g.fgEntry.Text)
	cfg.FontPath = strings.TrimSpace(g.fontEntry.Text)
	cfg.Author = g.authorEntry.Text
	cfg.Email = g.emailEntry.Text
	cfg.MessageTemplate = g.messageEntry.Text
	cfg.DryRun = g.dryRunCheck.Checked
	cfg.Verbose = g.verboseCheck.Checked
	cfg.MkdirAll = g.mkdirCheck.Checked
	cfg.Stage = g.stageCheck.Checked
	cfg.Commit = g.commitCheck.Checked
	return cfg
}

func (g *GUI) startGeneration() {
	cfg := g.readForm()
	if cfg.BaseDir == "" {
		dialog.ShowError(fmt.Errorf("укажите каталог res проекта"), g.window)
		return
	}
	style, err := cfg.Style()
	if err != nil {
		dialog.ShowError(err, g.window)
		return
	}
	g.config = cfg

	g.generateButton.Disable()
	g.generateButton.SetText("Выполняется...")

	go func() {
		defer func() {
			g.generateButton.Enable()
			g.generateButton.SetText("Сгенерировать иконки")
		}()

		fonts := iconset.FontChain(cfg, g.theme.boldFont())
		if err := iconset.RunWith(cfg, fonts, logWriter{g}); err != nil {
			g.logError("Ошибка генерации:", err)
			return
		}

		densities := iconset.Densities()
		largest := densities[len(densities)-1]
		img, fontName := iconrender.New(style, fonts).Render(largest.Size)
		g.preview.Image = img
		g.preview.Refresh()

		if cfg.DryRun {
			g.log("Тестовый режим завершен")
			return
		}
		if fontName != "" {
			g.log("Шрифт: " + fontName)
		}
		g.logSuccess(fmt.Sprintf("Иконки сохранены в: %s", cfg.BaseDir))
	}()
}

// logWriter перенаправляет вывод генерации в лог окна
type logWriter struct {
	g *GUI
}

func (w logWriter) Write(p []byte) (int, error) {
	w.g.log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func (g *GUI) log(msg string) {
	g.logText.SetText(g.logText.Text() + "\n" + msg)
}

func (g *GUI) logError(msg string, err error) {
	if err != nil {
		msg = fmt.Sprintf("%s %v", msg, err)
	}
	dialog.ShowError(fmt.Errorf("%s", msg), g.window)
	g.log("ОШИБКА: " + msg)
}

func (g *GUI) logSuccess(msg string) {
	dialog.ShowInformation("Успех", msg, g.window)
	g.log("УСПЕХ: " + msg)
}
