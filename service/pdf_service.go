package service

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/b5-ai/study-companion-be/types"
	pdflib "github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFService turns uploaded PDF bytes into plain text. It reads the
// embedded text layer first and falls back to rasterizing pages with
// pdftoppm and running tesseract over them when the document is a scan.
type PDFService struct {
	tempDir string
	logger  *zap.Logger
}

func NewPDFService(tempDir string, logger *zap.Logger) *PDFService {
	return &PDFService{
		tempDir: tempDir,
		logger:  logger,
	}
}

// Extract returns the text content of a PDF. The name identifies the
// originating file in failure reports. A document that yields no text
// from either path fails with types.ErrNoText.
//
// Emptiness is judged on the cleaned text: a text layer made entirely
// of control/replacement characters counts as no text, so the OCR
// fallback still gets its chance and an empty result is never
// reported as success.
func (s *PDFService) Extract(data []byte, name string) (string, error) {
	text := s.cleanText(s.extractTextLayer(data))
	if text != "" {
		return text, nil
	}

	s.logger.Info("no embedded text layer, falling back to OCR", zap.String("file", name))
	ocrText, err := s.extractWithOCR(data, name)
	if err != nil {
		return "", &types.ExtractionError{File: name, Err: err}
	}
	ocrText = s.cleanText(ocrText)
	if ocrText == "" {
		return "", &types.ExtractionError{File: name, Err: types.ErrNoText}
	}
	return ocrText, nil
}

// extractTextLayer pulls the embedded text from every page. Any parse
// failure means "no direct text", never a fatal error; the reader also
// panics on some malformed files, so that is contained here too.
func (s *PDFService) extractTextLayer(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Debug("pdf parser panicked", zap.Any("cause", r))
			text = ""
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(pageText) == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String()
}

// extractWithOCR rasterizes every page to PNG and recognizes each one
// in page order. pdftoppm zero-pads its page suffix, so a lexical sort
// of the produced files matches document order.
func (s *PDFService) extractWithOCR(data []byte, name string) (string, error) {
	workDir, err := os.MkdirTemp(s.tempDir, "ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	pdfPath := filepath.Join(workDir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write temp pdf: %w", err)
	}

	convertCmd := exec.Command("pdftoppm", "-png", pdfPath, filepath.Join(workDir, "page"))
	if err := convertCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to rasterize pdf: %w", err)
	}

	images, err := filepath.Glob(filepath.Join(workDir, "page-*.png"))
	if err != nil || len(images) == 0 {
		return "", fmt.Errorf("no page images produced for %s", name)
	}
	sort.Strings(images)

	var sb strings.Builder
	for _, image := range images {
		ocrCmd := exec.Command("tesseract",
			image,
			"stdout",
			"-l", "eng",
			"--oem", "3", // LSTM engine
			"--psm", "3", // auto page segmentation
		)
		var ocrOut bytes.Buffer
		ocrCmd.Stdout = &ocrOut
		if err := ocrCmd.Run(); err != nil {
			return "", fmt.Errorf("failed to run tesseract: %w", err)
		}
		sb.WriteString(ocrOut.String())
	}
	return sb.String(), nil
}

func (s *PDFService) cleanText(text string) string {
	replacements := map[string]string{
		"\u0000": "",   // Null character
		"\ufffd": "",   // Unicode replacement character
		"\u001b": "",   // Escape character
		"\r":     "",   // Carriage return
		"\f":     "\n", // Form feed to newline
	}
	cleaned := text
	for old, new := range replacements {
		cleaned = strings.ReplaceAll(cleaned, old, new)
	}
	return strings.TrimSpace(cleaned)
}
