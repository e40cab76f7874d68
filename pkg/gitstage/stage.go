package gitstage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	log "github.com/schollz/logger"
)

// DefaultMessageTemplate используется, если шаблон сообщения не задан
const DefaultMessageTemplate = "Regenerate launcher icons ({files} files)"

// Options содержит настройки индексирования
type Options struct {
	Commit          bool
	Author          string
	Email           string
	MessageTemplate string // поддерживает {files}, {text}, {date}
	Text            string // надпись на иконках, для {text}
	DryRun          bool
	Now             func() time.Time
}

// Result описывает выполненные действия
type Result struct {
	Root   string
	Staged []string // пути относительно корня рабочей копии
	Commit plumbing.Hash
}

// Stage добавляет файлы в индекс репозитория, в котором они лежат,
// и при необходимости создаёт коммит
func Stage(paths []string, opts Options) (Result, error) {
	if len(paths) == 0 {
		return Result{}, errors.New("нет файлов для добавления")
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(paths[0]), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Result{}, fmt.Errorf("ошибка открытия репозитория: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return Result{}, fmt.Errorf("ошибка получения рабочей директории: %w", err)
	}
	root := worktree.Filesystem.Root()
	res := Result{Root: root}

	for _, path := range paths {
		rel, err := relativeTo(root, path)
		if err != nil {
			return res, err
		}
		res.Staged = append(res.Staged, rel)
	}

	if opts.DryRun {
		log.Infof("Тестовый режим: в %s были бы добавлены %d файлов", root, len(res.Staged))
		return res, nil
	}

	for _, rel := range res.Staged {
		if _, err := worktree.Add(rel); err != nil {
			return res, fmt.Errorf("не удалось добавить файл %s: %w", rel, err)
		}
		log.Debugf("Добавлен в индекс: %s", rel)
	}

	if !opts.Commit {
		return res, nil
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	when := now()

	commit, err := worktree.Commit(CommitMessage(opts.MessageTemplate, len(res.Staged), opts.Text, when), &git.CommitOptions{
		Author: &object.Signature{
			Name:  opts.Author,
			Email: opts.Email,
			When:  when,
		},
	})
	if err != nil {
		return res, fmt.Errorf("ошибка создания коммита: %w", err)
	}
	res.Commit = commit
	log.Infof("Создан коммит %s", commit.String())
	return res, nil
}

// CommitMessage подставляет значения в шаблон сообщения коммита
func CommitMessage(tmpl string, files int, text string, when time.Time) string {
	if tmpl == "" {
		tmpl = DefaultMessageTemplate
	}
	msg := strings.ReplaceAll(tmpl, "{files}", fmt.Sprintf("%d", files))
	msg = strings.ReplaceAll(msg, "{text}", text)
	msg = strings.ReplaceAll(msg, "{date}", when.Format("2006-01-02 15:04:05"))
	return msg
}

// relativeTo возвращает путь относительно корня рабочей копии
// со слешами, как их ожидает индекс git
func relativeTo(root, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("путь %s: %w", path, err)
	}
	// Сравниваем реальные пути: во временных каталогах бывают симлинки
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("файл %s вне рабочей копии %s", path, root)
	}
	return filepath.ToSlash(rel), nil
}
