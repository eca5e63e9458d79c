package changewallpaperlib

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"a.jpg", true},
		{"a.jpeg", true},
		{"a.gif", true},
		{"archive.tar.png", true},
		{".hidden.jpg", true},
		{"photo.PNG", false},
		{"photo.Jpg", false},
		{"a.txt", false},
		{"png", false},
		{".png", false},
		{"a.", false},
		{"a.png.bak", false},
		{"a.webp", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.name); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFindImagesFiltersEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"a.png", "b.txt", "c.jpg", "d.PNG", ".png", "e.jpeg", "f.gif", "g.JPG",
	} {
		touch(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "sub.png", "nested.png"))

	got, err := FindImages(dir)
	if err != nil {
		t.Fatalf("FindImages: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "c.jpg"),
		filepath.Join(dir, "e.jpeg"),
		filepath.Join(dir, "f.gif"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindImages = %v, want %v", got, want)
	}
}

func TestFindImagesSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "target.png")
	touch(t, target)

	if err := os.Symlink(target, filepath.Join(dir, "link.png")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "missing.png"), filepath.Join(dir, "broken.png")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(t.TempDir(), filepath.Join(dir, "dirlink.jpg")); err != nil {
		t.Fatal(err)
	}

	got, err := FindImages(dir)
	if err != nil {
		t.Fatalf("FindImages: %v", err)
	}

	want := []string{filepath.Join(dir, "link.png")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindImages = %v, want %v", got, want)
	}
}

func TestFindImagesNoMatches(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "photo.PNG"))

	_, err := FindImages(dir)
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("err = %v, want ErrNoImages", err)
	}
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want it to be an input error", err)
	}
	if !strings.Contains(err.Error(), "no supported images found in directory: "+dir) {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestFindImagesUnreadableDirectory(t *testing.T) {
	_, err := FindImages(filepath.Join(t.TempDir(), "gone"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrNoInput) {
		t.Fatalf("read failures should not be input errors: %v", err)
	}
	if ExitCode(err) != ExFailure {
		t.Fatalf("ExitCode = %d, want %d", ExitCode(err), ExFailure)
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.png")
	touch(t, file)
	missing := filepath.Join(dir, "missing")

	if err := EnsureDirectory(dir); err != nil {
		t.Fatalf("EnsureDirectory(dir) = %v", err)
	}

	tests := []struct {
		path string
		kind error
		msg  string
	}{
		{missing, ErrPathNotFound, "path does not exist: " + missing},
		{file, ErrNotDirectory, "path is not a directory: " + file},
	}
	for _, tt := range tests {
		err := EnsureDirectory(tt.path)
		if !errors.Is(err, tt.kind) {
			t.Errorf("EnsureDirectory(%q) = %v, want %v", tt.path, err, tt.kind)
			continue
		}
		if ExitCode(err) != ExNoInput {
			t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExNoInput)
		}
		if err.Error() != tt.msg {
			t.Errorf("message = %q, want %q", err.Error(), tt.msg)
		}
	}
}
