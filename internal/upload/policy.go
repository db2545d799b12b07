// Package upload stores image uploads on local disk under a timestamped name.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
)

const (
	DefaultDir     = "uploads"
	DefaultMaxSize = 5 << 20 // 5 MiB
)

// AllowedTypes matches both the file extension and the declared MIME type.
var AllowedTypes = regexp.MustCompile(`jpeg|jpg|png|gif|webp`)

// Reason tells why a file was rejected.
type Reason string

const (
	ReasonMissing Reason = "missing"
	ReasonType    Reason = "type"
	ReasonSize    Reason = "size"
)

var ErrRejected = errors.New("upload rejected")

type RejectedError struct {
	Reason  Reason
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

func (e *RejectedError) Is(target error) bool { return target == ErrRejected }

func reject(reason Reason, format string, args ...any) error {
	return &RejectedError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// StoredFile describes a file written by the middleware.
type StoredFile struct {
	Field        string `json:"field"`
	OriginalName string `json:"originalName"`
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	ContentType  string `json:"contentType"`
}

type Policy struct {
	Dir     string
	MaxSize int64
	Allowed *regexp.Regexp
	Now     func() time.Time
}

func DefaultPolicy() Policy {
	return Policy{Dir: DefaultDir, MaxSize: DefaultMaxSize, Allowed: AllowedTypes, Now: time.Now}
}

// PolicyFrom overrides the default dir and size with configured values.
func PolicyFrom(cfg config.Upload) Policy {
	p := DefaultPolicy()
	if cfg.Dir != "" {
		p.Dir = cfg.Dir
	}
	if cfg.MaxSizeBytes > 0 {
		p.MaxSize = cfg.MaxSizeBytes
	}
	return p
}

// Filename is "<unix millis>-<base name of original>".
func (p Policy) Filename(original string) string {
	return fmt.Sprintf("%d-%s", p.Now().UnixMilli(), filepath.Base(original))
}

// Check validates a part before anything is written. Exactly MaxSize bytes is accepted.
func (p Policy) Check(name, contentType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !p.Allowed.MatchString(ext) || !p.Allowed.MatchString(contentType) {
		return reject(ReasonType, "only image files are allowed (jpeg, jpg, png, gif, webp): got %q (%s)", name, contentType)
	}
	if size > p.MaxSize {
		return reject(ReasonSize, "file %q is %d bytes, limit is %d bytes", name, size, p.MaxSize)
	}
	return nil
}

// Save checks fh and copies it into Dir. A partially written file is left in place
// when the copy fails.
func (p Policy) Save(field string, fh *multipart.FileHeader) (StoredFile, error) {
	if fh == nil {
		return StoredFile{}, reject(ReasonMissing, "file field %q is required", field)
	}
	contentType := fh.Header.Get("Content-Type")
	if err := p.Check(fh.Filename, contentType, fh.Size); err != nil {
		return StoredFile{}, err
	}

	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return StoredFile{}, fmt.Errorf("create upload dir: %w", err)
	}
	src, err := fh.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("open part: %w", err)
	}
	defer src.Close()

	name := p.Filename(fh.Filename)
	path := filepath.Join(p.Dir, name)
	n, err := saveToFile(path, src, p.MaxSize)
	if err != nil {
		return StoredFile{}, err
	}
	if n > p.MaxSize {
		_ = os.Remove(path)
		return StoredFile{}, reject(ReasonSize, "file %q exceeds %d bytes", fh.Filename, p.MaxSize)
	}
	return StoredFile{
		Field:        field,
		OriginalName: fh.Filename,
		Filename:     name,
		Path:         path,
		Size:         n,
		ContentType:  contentType,
	}, nil
}

// saveToFile copies at most limit+1 bytes so an oversized body is detectable.
func saveToFile(path string, src io.Reader, limit int64) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer dst.Close()
	n, err := io.Copy(dst, io.LimitReader(src, limit+1))
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}
