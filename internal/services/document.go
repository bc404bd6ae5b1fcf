package services

import (
	"path/filepath"
	"strings"
)

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// RawDocument is an uploaded file before any parsing: the bytes, the declared
// format and the original filename. It is never persisted; once text has been
// extracted the document is discarded.
type RawDocument struct {
	Data     []byte
	Format   DocumentFormat
	Filename string
}

// ExtractedText is the ordered sequence of text fragments pulled from a
// document: one per page for PDF, one per paragraph for DOCX.
type ExtractedText []string

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// FormatForFile maps a filename and/or MIME type to a document format. The
// second return is false for anything that is not PDF or DOCX.
func FormatForFile(filename, mimeType string) (DocumentFormat, bool) {
	switch mimeType {
	case MimePDF:
		return FormatPDF, true
	case MimeDOCX:
		return FormatDOCX, true
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	}

	return "", false
}

// TitleFromFilename derives a resume title by stripping the format extension.
func TitleFromFilename(filename string) string {
	ext := filepath.Ext(filename)
	switch strings.ToLower(ext) {
	case ".pdf", ".docx":
		return strings.TrimSuffix(filename, ext)
	}
	return filename
}
