package service

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotPackage is returned when an archive is not a valid TED daily
// package (not a gzipped tarball, or the first member is not a directory).
var ErrNotPackage = errors.New("not a valid TED bulk download")

// ExtractPackage unpacks a daily package .tar.gz into destDir and returns
// the directory the archive's documents landed in. TED daily packages wrap
// everything in a single top-level directory; an archive whose first member
// is not a directory is rejected.
func ExtractPackage(archivePath, destDir string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotPackage, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)

	extractDir := ""
	first := true
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNotPackage, err)
		}

		if first {
			if hdr.Typeflag != tar.TypeDir {
				return "", fmt.Errorf("%w: archive has no top-level directory", ErrNotPackage)
			}
			extractDir = filepath.Join(destDir, filepath.Clean(hdr.Name))
			first = false
		}

		target, err := securePath(destDir, hdr.Name)
		if err != nil {
			return "", err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return "", fmt.Errorf("extract %s: %w", hdr.Name, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return "", fmt.Errorf("extract %s: %w", hdr.Name, err)
			}
			out, err := os.Create(target)
			if err != nil {
				return "", fmt.Errorf("extract %s: %w", hdr.Name, err)
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return "", fmt.Errorf("extract %s: %w", hdr.Name, err)
			}
			out.Close()
		}
	}

	if extractDir == "" {
		return "", fmt.Errorf("%w: archive is empty", ErrNotPackage)
	}
	return extractDir, nil
}

// securePath joins a tar member name onto destDir, refusing names that would
// escape it.
func securePath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.Clean(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: member %q escapes extraction dir", ErrNotPackage, name)
	}
	return target, nil
}

// ClearTempDir removes everything under dir, leaving dir itself in place.
// Called after every run, including timeouts, so partially-extracted
// packages never accumulate.
func ClearTempDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read temp dir: %w", err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("clear temp dir: %w", err)
		}
	}
	return nil
}
