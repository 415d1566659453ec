package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/job-board/internal/config"
	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var (
	ErrNoFile              = errors.New("no file uploaded")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

type ResumeServiceInterface interface {
	Store(file *multipart.FileHeader) (*dto.UploadResponse, error)
}

type ResumeService struct {
	fs           afero.Fs
	dir          string
	publicPrefix string
	maxBytes     int64
}

func NewResumeService(fs afero.Fs, cfg *config.UploadConfig) (*ResumeService, error) {
	if err := fs.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	prefix := cfg.PublicPrefix
	if prefix == "" {
		prefix = "/uploads"
	}
	return &ResumeService{
		fs:           fs,
		dir:          cfg.Dir,
		publicPrefix: strings.TrimRight(prefix, "/"),
		maxBytes:     cfg.MaxBytes,
	}, nil
}

// Store validates the upload and writes it under a generated name. Nothing
// touches the filesystem unless validation passes.
func (s *ResumeService) Store(file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file == nil {
		return nil, ErrNoFile
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedResumeExtensions[ext] {
		return nil, ErrUnsupportedFileType
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	if err := afero.WriteReader(s.fs, filepath.Join(s.dir, name), src); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &dto.UploadResponse{
		URL:      path.Join(s.publicPrefix, name),
		Filename: filepath.Base(file.Filename),
	}, nil
}
