package app

import (
	"archive/tar"
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz"
)

// ArchivePack writes packDir as a .tar.xz at out. Entries are rooted at the
// pack folder name so the archive unpacks into <id>/sprites, <id>/sounds.
func ArchivePack(packDir, out string) error {
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %q: %w", out, err)
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 1<<20)
	xw, err := xz.NewWriter(bw)
	if err != nil {
		return fmt.Errorf("xz writer: %w", err)
	}
	tw := tar.NewWriter(xw)

	root := filepath.Base(filepath.Clean(packDir))
	files := 0
	err = filepath.WalkDir(packDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(packDir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(filepath.Join(root, rel))
		if d.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		if _, err := io.Copy(tw, in); err != nil {
			return err
		}
		files++
		return nil
	})
	if err != nil {
		return fmt.Errorf("archive %q: %w", packDir, err)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("close tar: %w", err)
	}
	if err := xw.Close(); err != nil {
		return fmt.Errorf("close xz: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	log.Info().Str("archive", out).Int("files", files).Msg("packed converted character")
	return nil
}
