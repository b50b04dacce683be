package skill

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Archiver creates a distributable archive from a skill directory. The
// packaging flow only depends on this narrow capability so the zip writer
// can be swapped without touching validation or orchestration.
type Archiver interface {
	Create(sourceDir, destFile string) error
}

// ZipArchiver writes skill archives using an in-process zip writer.
type ZipArchiver struct{}

// Create archives sourceDir into destFile. The directory itself is the sole
// top-level entry: every file is stored as "<basename>/<relative path>" so
// extraction reproduces the skill directory, never a flattened listing. Both
// paths are resolved to absolute first, so a source like "." still yields its
// real basename and a destination inside the source is not archived into
// itself. A failed write removes the partial file instead of leaving it
// behind.
func (ZipArchiver) Create(sourceDir, destFile string) error {
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return errors.Wrap(err, "failed to resolve source directory")
	}
	absDest, err := filepath.Abs(destFile)
	if err != nil {
		return errors.Wrap(err, "failed to resolve archive path")
	}

	out, err := os.Create(destFile)
	if err != nil {
		return errors.Wrap(err, "failed to create archive file")
	}

	if err := writeZip(out, absSource, absDest); err != nil {
		out.Close()
		os.Remove(destFile)
		return err
	}

	if err := out.Close(); err != nil {
		os.Remove(destFile)
		return errors.Wrap(err, "failed to finalize archive file")
	}

	return nil
}

func writeZip(out io.Writer, sourceDir, skipFile string) error {
	zw := zip.NewWriter(out)
	base := filepath.Base(sourceDir)

	err := filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		// The archive under construction may live inside the source tree.
		if path == skipFile {
			return nil
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(filepath.Join(base, relPath))
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(w, file)
		return err
	})
	if err != nil {
		zw.Close()
		return errors.Wrap(err, "failed to write archive")
	}

	return errors.Wrap(zw.Close(), "failed to finalize archive")
}
