package publish

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sitebuilder-app/internal/domain/pages"
	"sitebuilder-app/internal/domain/sites"
)

/*
	Snapshot I/O
	------------
	Filesystem side of the publish pipeline. Republishing is always a
	full overwrite: index.html is rewritten and every media file is
	re-copied. No rollback; a failure leaves whatever was already
	written on disk and the caller reports the error.
*/

// PublishDir is the folder a published site is served from.
func PublishDir(sitesRoot string, s *sites.Site) string {
	return filepath.Join(sitesRoot, "published", s.Name)
}

// UnpublishedDir holds the starter template written at site creation.
func UnpublishedDir(sitesRoot string, s *sites.Site) string {
	return filepath.Join(sitesRoot, "unpublished", s.Name)
}

// WriteSnapshot renders the site and writes the publish folder:
// index.html plus a media/ copy of the site's upload folder, when one
// exists.
func WriteSnapshot(sitesRoot, uploadsRoot string, s *sites.Site, pgs []pages.Page) error {
	dir := PublishDir(sitesRoot, s)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create publish dir: %w", err)
	}

	html := BuildSiteHTML(s, pgs)
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	uploadDir := filepath.Join(uploadsRoot, s.ID)
	if _, err := os.Stat(uploadDir); err == nil {
		if err := copyDir(uploadDir, filepath.Join(dir, "media")); err != nil {
			return fmt.Errorf("copy media: %w", err)
		}
	}

	return nil
}

// RemoveSnapshot deletes the publish folder. Missing folder is not an
// error; unpublish is idempotent on the filesystem side.
func RemoveSnapshot(sitesRoot string, s *sites.Site) error {
	return os.RemoveAll(PublishDir(sitesRoot, s))
}

// WriteStarter writes the one-time template under the unpublished root.
func WriteStarter(sitesRoot string, s *sites.Site) error {
	dir := UnpublishedDir(sitesRoot, s)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create site dir: %w", err)
	}
	html := BuildStarterHTML(s)
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("write starter index.html: %w", err)
	}
	return nil
}

// RemoveSiteDirs deletes both site folders; used by site deletion.
func RemoveSiteDirs(sitesRoot string, s *sites.Site) error {
	if err := os.RemoveAll(PublishDir(sitesRoot, s)); err != nil {
		return err
	}
	return os.RemoveAll(UnpublishedDir(sitesRoot, s))
}

// copyDir copies the regular files of src into dst (flat; the upload
// folder has no subdirectories).
func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
