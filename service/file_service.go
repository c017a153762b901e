package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/b5-ai/study-companion-be/store"
	"github.com/b5-ai/study-companion-be/types"
	"github.com/b5-ai/study-companion-be/utils"
	"go.uber.org/zap"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 10 << 20 // 10MB

// FileService runs the upload pipeline: validate, extract text, store.
// A copy of each accepted PDF is kept in the upload directory.
type FileService struct {
	uploadDir  string
	session    *store.Session
	pdfService *PDFService
	logger     *zap.Logger
}

func NewFileService(
	uploadDir string,
	session *store.Session,
	pdfService *PDFService,
	logger *zap.Logger,
) (*FileService, error) {
	if err := utils.EnsureDir(uploadDir); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", uploadDir, err)
	}
	return &FileService{
		uploadDir:  uploadDir,
		session:    session,
		pdfService: pdfService,
		logger:     logger,
	}, nil
}

// Upload processes a batch best-effort: a failing file is reported and
// the rest of the batch continues. Any successful upload resets the
// dialogue for a fresh session over the new material.
func (s *FileService) Upload(files []*multipart.FileHeader) (int, []string) {
	processed := 0
	var failures []string

	for _, header := range files {
		if err := s.processFile(header); err != nil {
			s.logger.Warn("upload rejected",
				zap.String("file", header.Filename),
				zap.Error(err))
			failures = append(failures, uploadFailureMessage(header.Filename, err))
			continue
		}
		processed++
	}

	if processed > 0 {
		s.session.ResetDialogue()
	}
	return processed, failures
}

func (s *FileService) processFile(header *multipart.FileHeader) error {
	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		return types.ErrNotPDF
	}
	if header.Size > MaxFileSize {
		return types.ErrFileTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxFileSize {
		return types.ErrFileTooLarge
	}

	text, err := s.pdfService.Extract(data, header.Filename)
	if err != nil {
		return err
	}

	if err := utils.SaveUpload(s.uploadDir, header.Filename, data); err != nil {
		return fmt.Errorf("failed to save upload: %w", err)
	}

	s.session.Lock()
	s.session.Documents.Put(header.Filename, text)
	s.session.Unlock()

	s.logger.Info("document stored",
		zap.String("id", strings.ToLower(header.Filename)),
		zap.Int("chars", len(text)))
	return nil
}

// Delete removes the document and its on-disk copy. The file removal
// is best-effort bookkeeping; the store is authoritative.
func (s *FileService) Delete(filename string) error {
	s.session.Lock()
	removed := s.session.Documents.Remove(filename)
	s.session.Unlock()
	if !removed {
		return types.ErrNotFound
	}
	utils.RemoveUpload(s.uploadDir, filename)
	return nil
}

func uploadFailureMessage(filename string, err error) string {
	var extractionErr *types.ExtractionError
	switch {
	case errors.Is(err, types.ErrNotPDF):
		return fmt.Sprintf("%s is not a PDF. Only PDF files are accepted.", filename)
	case errors.Is(err, types.ErrFileTooLarge):
		return fmt.Sprintf("%s exceeds the 10MB size limit.", filename)
	case errors.As(err, &extractionErr):
		return fmt.Sprintf("could not extract text from %s", filename)
	default:
		return fmt.Sprintf("failed to process %s", filename)
	}
}
