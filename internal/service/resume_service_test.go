package service

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/fadilmartias/job-board/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/upload", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	t.Cleanup(func() { _ = req.MultipartForm.RemoveAll() })

	return req.MultipartForm.File["resume"][0]
}

func newResumeService(t *testing.T, maxBytes int64) (*ResumeService, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	svc, err := NewResumeService(fs, &config.UploadConfig{
		Dir:          "/data/uploads",
		MaxBytes:     maxBytes,
		PublicPrefix: "/uploads",
	})
	require.NoError(t, err)
	return svc, fs
}

func TestResumeServiceStore(t *testing.T) {
	svc, fs := newResumeService(t, 1024)

	res, err := svc.Store(fileHeader(t, "Ada Resume.PDF", []byte("%PDF-1.4 resume")))
	require.NoError(t, err)
	assert.Equal(t, "Ada Resume.PDF", res.Filename)
	assert.True(t, strings.HasPrefix(res.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(res.URL, ".pdf"))

	stored := "/data/uploads/" + strings.TrimPrefix(res.URL, "/uploads/")
	data, err := afero.ReadFile(fs, stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 resume"), data)

	second, err := svc.Store(fileHeader(t, "cv.docx", []byte("docx")))
	require.NoError(t, err)
	assert.NotEqual(t, res.URL, second.URL)
}

func TestResumeServiceRejects(t *testing.T) {
	svc, fs := newResumeService(t, 8)

	_, err := svc.Store(nil)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = svc.Store(fileHeader(t, "run.exe", []byte("MZ")))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = svc.Store(fileHeader(t, "noext", []byte("x")))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = svc.Store(fileHeader(t, "big.pdf", bytes.Repeat([]byte("a"), 9)))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := afero.ReadDir(fs, "/data/uploads")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
