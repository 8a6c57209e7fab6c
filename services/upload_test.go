package services

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createMockFileHeader(filename string, content []byte, contentType string) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", filename)
	part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(20 * 1024 * 1024)
	return form.File["file"][0]
}

func TestValidateDocumentUpload(t *testing.T) {
	t.Run("Valid PDF", func(t *testing.T) {
		content := append([]byte("%PDF-1.4\n"), make([]byte, 100)...)
		err := ValidateDocumentUpload(createMockFileHeader("contract.pdf", content, "application/pdf"))
		assert.NoError(t, err)
	})

	t.Run("Valid DOCX", func(t *testing.T) {
		content := append([]byte("PK\x03\x04"), make([]byte, 100)...)
		err := ValidateDocumentUpload(createMockFileHeader("lease.DOCX", content, "application/octet-stream"))
		assert.NoError(t, err)
	})

	t.Run("Valid DOC", func(t *testing.T) {
		content := append([]byte("\xD0\xCF\x11\xE0\xA1\xB1\x1A\xE1"), make([]byte, 100)...)
		err := ValidateDocumentUpload(createMockFileHeader("old.doc", content, "application/msword"))
		assert.NoError(t, err)
	})

	t.Run("Valid TXT", func(t *testing.T) {
		content := []byte(strings.Repeat("Clause 1. The tenant shall pay rent. ", 30) + "§")
		err := ValidateDocumentUpload(createMockFileHeader("notes.txt", content, "text/plain"))
		assert.NoError(t, err)
	})

	t.Run("File too large", func(t *testing.T) {
		content := make([]byte, 11*1024*1024)
		err := ValidateDocumentUpload(createMockFileHeader("large.pdf", content, "application/pdf"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds the maximum limit")
	})

	t.Run("Empty file", func(t *testing.T) {
		err := ValidateDocumentUpload(createMockFileHeader("empty.txt", nil, "text/plain"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("Invalid extension", func(t *testing.T) {
		err := ValidateDocumentUpload(createMockFileHeader("scan.png", []byte("\x89PNG\r\n\x1a\n"), "image/png"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "file type not allowed")
	})

	t.Run("Mismatched content (PDF extension but text)", func(t *testing.T) {
		err := ValidateDocumentUpload(createMockFileHeader("fake.pdf", []byte("this is just text"), "text/plain"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PDF file content")
	})

	t.Run("Binary disguised as text", func(t *testing.T) {
		err := ValidateDocumentUpload(createMockFileHeader("fake.txt", []byte{'M', 'Z', 0, 0, 1}, "text/plain"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid text file content")
	})
}
