package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MediaService stores uploaded images under server-generated names. The
// raw bytes are never interpreted; the stored filename only ties an
// upload to an assessment record.
type MediaService struct {
	uploadsDir string
	log        *logrus.Logger
}

// NewMediaService creates a new media service rooted at uploadsDir.
func NewMediaService(uploadsDir string, log *logrus.Logger) *MediaService {
	return &MediaService{uploadsDir: uploadsDir, log: log}
}

// SaveUpload writes the uploaded bytes under a fresh UUID-based name,
// keeping the client file's extension, and returns the generated name.
func (s *MediaService) SaveUpload(clientFilename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	filename := uuid.NewString() + filepath.Ext(clientFilename)
	path := filepath.Join(s.uploadsDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}

	s.log.WithField("filename", filename).Info("image uploaded")
	return filename, nil
}
