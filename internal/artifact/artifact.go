package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Pattern matched inside the output directory.
const zipGlob = "*.zip"

// Artifact describes the zip file selected for upload.
type Artifact struct {
	Path string
	Name string
	Size int64
}

// SizeMB returns the file size in binary megabytes.
func (a *Artifact) SizeMB() float64 {
	return float64(a.Size) / (1024 * 1024)
}

// SizeLabel renders the size for display, e.g. "2.00 MB".
func (a *Artifact) SizeLabel() string {
	return fmt.Sprintf("%.2f MB", a.SizeMB())
}

// Find locates the zip file to upload in dir. Matches are sorted
// lexicographically and the first is selected so the choice is stable
// across filesystems; any remaining matches are returned so the caller
// can warn about them. Zero matches is an error.
func Find(dir string) (*Artifact, []string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, zipGlob))
	if err != nil {
		return nil, nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no zip files found in %s/", dir)
	}

	sort.Strings(matches)
	path := matches[0]

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var skipped []string
	for _, m := range matches[1:] {
		skipped = append(skipped, filepath.Base(m))
	}

	return &Artifact{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
	}, skipped, nil
}
