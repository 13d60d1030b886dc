package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// minTextLength is the smallest extraction result considered usable.
const minTextLength = 20

var (
	// ErrUnsupportedFileType is returned for file extensions this package cannot handle.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrTooLittleText is returned when extraction yields less than minTextLength characters.
	ErrTooLittleText = errors.New("text extraction failed or document has too little text")
)

// Normalize strips null bytes and surrounding whitespace. Idempotent.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\x00", ""))
}

// Text extracts normalized plain text from an in-memory file payload,
// dispatching on the filename extension.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
func Text(data []byte, fileName string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".md":
		text = string(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".pdf":
		text, err = extractPDF(data)
	default:
		return "", ErrUnsupportedFileType
	}
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", strings.ToLower(filepath.Ext(fileName)), err)
	}

	text = Normalize(text)
	if len(text) < minTextLength {
		return "", ErrTooLittleText
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML flattens word/document.xml markup into plain text, inserting
// newlines at paragraph and break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if last := buf.Len(); last > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
