package gitstage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
)

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	return dir, repo
}

func writeIcon(t *testing.T, dir, folder string) string {
	t.Helper()
	path := filepath.Join(dir, "res", folder, "ic_launcher.png")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestStageAddsFilesToIndex(t *testing.T) {
	dir, repo := initRepo(t)
	paths := []string{writeIcon(t, dir, "mipmap-mdpi"), writeIcon(t, dir, "mipmap-hdpi")}

	res, err := Stage(paths, Options{})
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if len(res.Staged) != 2 {
		t.Fatalf("expected 2 staged files, got %v", res.Staged)
	}
	if !res.Commit.IsZero() {
		t.Fatalf("expected no commit, got %s", res.Commit)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	status, err := wt.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, rel := range []string{"res/mipmap-mdpi/ic_launcher.png", "res/mipmap-hdpi/ic_launcher.png"} {
		if got := status.File(rel).Staging; got != git.Added {
			t.Fatalf("%s: expected staged as added, got %q", rel, string(got))
		}
	}
}

func TestStageCommitUsesTemplate(t *testing.T) {
	dir, repo := initRepo(t)
	paths := []string{writeIcon(t, dir, "mipmap-xhdpi")}
	when := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	res, err := Stage(paths, Options{
		Commit:          true,
		Author:          "Icon Bot",
		Email:           "icons@example.com",
		MessageTemplate: "Icons {text}: {files} files",
		Text:            "TXFL",
		Now:             func() time.Time { return when },
	})
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if res.Commit.IsZero() {
		t.Fatal("expected commit hash")
	}

	commit, err := repo.CommitObject(res.Commit)
	if err != nil {
		t.Fatalf("commit object: %v", err)
	}
	if commit.Message != "Icons TXFL: 1 files" {
		t.Fatalf("unexpected message %q", commit.Message)
	}
	if commit.Author.Name != "Icon Bot" || commit.Author.Email != "icons@example.com" {
		t.Fatalf("unexpected author %v", commit.Author)
	}
}

func TestStageDryRunLeavesIndexEmpty(t *testing.T) {
	dir, repo := initRepo(t)
	path := writeIcon(t, dir, "mipmap-mdpi")

	res, err := Stage([]string{path}, Options{DryRun: true, Commit: true})
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if len(res.Staged) != 1 || !res.Commit.IsZero() {
		t.Fatalf("unexpected dry run result %+v", res)
	}

	wt, _ := repo.Worktree()
	status, err := wt.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got := status.File("res/mipmap-mdpi/ic_launcher.png").Staging; got == git.Added {
		t.Fatal("expected file not to be staged in dry run")
	}
}

func TestStageOutsideRepositoryFails(t *testing.T) {
	path := writeIcon(t, t.TempDir(), "mipmap-mdpi")
	if _, err := Stage([]string{path}, Options{}); err == nil {
		t.Fatal("expected error outside repository")
	}
}

func TestStageRequiresPaths(t *testing.T) {
	if _, err := Stage(nil, Options{}); err == nil {
		t.Fatal("expected error for empty path list")
	}
}

func TestCommitMessagePlaceholders(t *testing.T) {
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	got := CommitMessage("{text} {files} {date}", 5, "TXFL", when)
	if got != "TXFL 5 2026-01-02 03:04:05" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := CommitMessage("", 5, "", when); !strings.Contains(got, "5 files") {
		t.Fatalf("expected default template, got %q", got)
	}
}
