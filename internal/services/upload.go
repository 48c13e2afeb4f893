package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/pkg/logger"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadService stores uploaded images on local disk under randomized
// filenames and returns the hosted URLs they are served from.
type UploadService struct {
	cfg *config.UploadConfig
}

func NewUploadService(cfg *config.UploadConfig) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveImages stores a batch of uploaded files. Files that fail validation or
// copying are dropped from the result (logged, not surfaced per-file); an
// error is returned only when no file succeeds.
func (s *UploadService) SaveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, errors.New("no files provided")
	}

	if err := os.MkdirAll(s.cfg.Dir, 0755); err != nil {
		return nil, err
	}

	maxSize := s.cfg.MaxSizeMB * 1024 * 1024

	var urls []string
	for _, fh := range files {
		url, err := s.saveOne(fh, maxSize)
		if err != nil {
			logger.Warnf("[Upload] skipping %s: %v", fh.Filename, err)
			continue
		}
		urls = append(urls, url)
	}

	if len(urls) == 0 {
		return nil, errors.New("no files could be uploaded")
	}

	return urls, nil
}

func (s *UploadService) saveOne(fh *multipart.FileHeader, maxSize int64) (string, error) {
	if fh.Size > maxSize {
		return "", fmt.Errorf("file exceeds %dMB limit", s.cfg.MaxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := uuid.New().String() + ext
	dstPath := filepath.Join(s.cfg.Dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", err
	}

	return s.cfg.BaseURL + "/" + filename, nil
}
