package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	MaxUploadSize = 10 * 1024 * 1024 // 10MB
	sniffLength   = 512
)

// AllowedDocumentExtensions are the formats accepted for analysis
var AllowedDocumentExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

var (
	pdfMagic = []byte("%PDF")
	zipMagic = []byte("PK\x03\x04")       // .docx
	oleMagic = []byte("\xD0\xCF\x11\xE0") // legacy .doc
)

// ValidateDocumentUpload checks size, extension and that the leading bytes
// match the extension
func ValidateDocumentUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxUploadSize {
		return fmt.Errorf("file size exceeds the maximum limit of 10MB")
	}
	if fileHeader.Size == 0 {
		return fmt.Errorf("uploaded file is empty")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !isAllowedExtension(ext) {
		return fmt.Errorf("file type not allowed. Accepted formats: PDF, DOC, DOCX, TXT")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	buffer := make([]byte, sniffLength)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file content: %w", err)
	}
	return sniffDocument(ext, buffer[:n])
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range AllowedDocumentExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func sniffDocument(ext string, head []byte) error {
	switch ext {
	case ".pdf":
		if !bytes.HasPrefix(head, pdfMagic) {
			return fmt.Errorf("invalid PDF file content")
		}
	case ".docx":
		if !bytes.HasPrefix(head, zipMagic) {
			return fmt.Errorf("invalid DOCX file content")
		}
	case ".doc":
		if !bytes.HasPrefix(head, oleMagic) {
			return fmt.Errorf("invalid DOC file content")
		}
	case ".txt":
		// The sniff window may cut a multi-byte rune at the end.
		trimmed := head
		for i := 0; i < utf8.UTFMax && len(trimmed) > 0 && !utf8.Valid(trimmed); i++ {
			trimmed = trimmed[:len(trimmed)-1]
		}
		if bytes.IndexByte(head, 0) >= 0 || !utf8.Valid(trimmed) {
			return fmt.Errorf("invalid text file content")
		}
	}
	return nil
}
