package changewallpaperlib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Case sensitive, "PNG" does not match
var imageExtensions = map[string]struct{}{
	"gif":  {},
	"jpeg": {},
	"jpg":  {},
	"png":  {},
}

// Returns the text after the final period, if any.
// A name that only starts with a period, like ".png", has no extension.
func extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

func IsImageFile(name string) bool {
	ext, ok := extension(name)
	if !ok {
		return false
	}
	_, ok = imageExtensions[ext]
	return ok
}

func EnsureDirectory(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &PathError{Kind: ErrPathNotFound, Path: path}
		}
		return fmt.Errorf("Error calling os.Stat on [%s]: %w", path, err)
	}

	if !fi.IsDir() {
		return &PathError{Kind: ErrNotDirectory, Path: path}
	}
	return nil
}

// FindImages lists the regular files directly inside dir with a supported
// extension. Entries that can't be inspected are skipped.
func FindImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory [%s]: %w", dir, err)
	}

	var images []string
	for _, e := range entries {
		if !IsImageFile(e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		if !isRegularFile(path, e) {
			continue
		}
		images = append(images, path)
	}

	if len(images) == 0 {
		return nil, &PathError{Kind: ErrNoImages, Path: dir}
	}

	Debugf("Found %d images in [%s]", len(images), dir)
	return images, nil
}

func isRegularFile(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}

	// Follow the link, broken links are skipped
	fi, err := os.Stat(path)
	if err != nil {
		Debugf("Skipping [%s]: %s", path, err)
		return false
	}
	return fi.Mode().IsRegular()
}
