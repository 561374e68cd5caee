package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// MaxUploadSize caps a single image upload at 10 MB.
const MaxUploadSize = 10 << 20

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrFileTooLarge    = errors.New("image exceeds the maximum upload size")
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Store writes uploaded blobs to a local directory and hands out absolute
// URLs under <baseURL>/uploads/. URLs are stored as-is on the owning rows,
// so reads never rewrite them.
type Store struct {
	dir     string
	baseURL string
}

func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save reads a single optional file field from the request. It returns an
// empty URL when the field is absent; the image is optional at every call
// site.
func (s *Store) Save(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("read form file %q: %w", field, err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
	if header.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
	if err := s.write(file, name); err != nil {
		return "", err
	}

	return s.baseURL + "/uploads/" + name, nil
}

func (s *Store) write(src multipart.File, name string) error {
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("create blob file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return fmt.Errorf("write blob file: %w", err)
	}

	return nil
}

// Remove deletes the blob behind a previously issued URL. It is strictly
// best-effort: failures are logged and never reported to the caller, a
// missing blob must not fail the owning record's deletion.
func (s *Store) Remove(blobURL string) {
	if blobURL == "" {
		return
	}

	parsed, err := url.Parse(blobURL)
	if err != nil {
		log.Warnf("media: unparseable blob url %q: %v", blobURL, err)
		return
	}

	name := path.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		log.Warnf("media: refusing to remove blob for url %q", blobURL)
		return
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("media: failed to remove blob %s: %v", name, err)
		}
		return
	}

	log.Infof("media: removed blob %s", name)
}
