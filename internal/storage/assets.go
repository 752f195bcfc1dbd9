package storage

import (
	"context"
	"io"
	"io/fs"
	"mime"
	"path"
	"path/filepath"
	"strings"
)

// Uploader is the part of R2Client that asset publishing needs.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// Resolver maps a site-relative asset path ("/burger/patty.png") to its
// public URL. With no base URL paths are served as-is by the front end.
func Resolver(baseURL string) func(string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	return func(p string) string {
		if baseURL == "" || p == "" {
			return p
		}
		return baseURL + "/" + strings.TrimLeft(p, "/")
	}
}

// SyncDir uploads every regular, non-hidden file of fsys keyed by its
// slash path and returns the uploaded keys in walk order.
func SyncDir(ctx context.Context, up Uploader, fsys fs.FS) ([]string, error) {
	var keys []string

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		f, err := fsys.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(p)))
		key := path.Clean(p)

		if _, err := up.Upload(ctx, key, f, contentType); err != nil {
			return err
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}
