package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

type ExtractorService interface {
	Extract(doc RawDocument) (ExtractedText, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// Extract implements ExtractorService. It never mutates the document.
func (e *extractorService) Extract(doc RawDocument) (ExtractedText, error) {
	var (
		fragments ExtractedText
		err       error
	)

	switch doc.Format {
	case FormatPDF:
		fragments, err = e.extractPDF(doc.Data)
	case FormatDOCX:
		fragments, err = e.extractDOCX(doc.Data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.Format)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(strings.Join(fragments, "")) == "" {
		return nil, fmt.Errorf("%w: no text content found in document", ErrExtraction)
	}

	return fragments, nil
}

// extractPDF walks pages in ascending order and joins the text runs of each
// page with single spaces, one fragment per page. Page order is part of the
// contract; pages are never extracted concurrently.
func (e *extractorService) extractPDF(data []byte) (fragments ExtractedText, err error) {
	// The pdf library panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		var runs []string
		for _, text := range page.Content().Text {
			if text.S != "" {
				runs = append(runs, text.S)
			}
		}

		fragments = append(fragments, strings.Join(runs, " "))
	}

	return fragments, nil
}

// wordDocumentPath is where WordprocessingML keeps the main document part.
const wordDocumentPath = "word/document.xml"

// extractDOCX reads the main document part of the archive and collects the
// text runs of each paragraph in document order, one fragment per paragraph.
// Embedded objects and drawings are skipped with a logged warning.
func (e *extractorService) extractDOCX(data []byte) (ExtractedText, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == wordDocumentPath {
			document = file
			break
		}
	}
	if document == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrCorruptDocument, wordDocumentPath)
	}

	part, err := document.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer part.Close()

	return parseDocumentXML(part)
}

func parseDocumentXML(part io.Reader) (ExtractedText, error) {
	var (
		fragments ExtractedText
		paragraph strings.Builder
		inText    bool
	)

	decoder := xml.NewDecoder(part)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			switch element.Name.Local {
			case "t":
				inText = true
			case "tab":
				paragraph.WriteString(" ")
			case "br":
				paragraph.WriteString("\n")
			case "object", "drawing", "pict":
				log.Printf("⚠️  Skipping embedded %s element in DOCX", element.Name.Local)
			}
		case xml.EndElement:
			switch element.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := paragraph.String(); strings.TrimSpace(text) != "" {
					fragments = append(fragments, text)
				}
				paragraph.Reset()
			}
		case xml.CharData:
			if inText {
				paragraph.Write(element)
			}
		}
	}

	return fragments, nil
}
