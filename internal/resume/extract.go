// Package resume extracts plain text from uploaded resume files.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported MIME types.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

// ErrUnsupportedType is returned for files that are not PDF, DOCX or text.
var ErrUnsupportedType = errors.New("unsupported file type")

// ExtractionError reports a document that could not be read.
type ExtractionError struct {
	Format string // "PDF" or "DOCX"
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Error reading %s: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ExtractText returns the text content of data according to its MIME type.
// PDF pages are concatenated in order.
func ExtractText(mime string, data []byte) (string, error) {
	switch mime {
	case MIMEText:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: text file is not valid UTF-8", ErrUnsupportedType)
		}
		return string(data), nil
	case MIMEPDF:
		return extractPDFText(data)
	case MIMEDOCX:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
}

// ExtractFile reads a resume from disk, detecting its type from the name and content.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return ExtractText(DetectMIME(path, data), data)
}

// DetectMIME picks the MIME type from the file extension, falling back to
// content sniffing. Unknown binary content yields "application/octet-stream".
func DetectMIME(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MIMEPDF
	case ".docx":
		return MIMEDOCX
	case ".txt", ".md", ".text":
		return MIMEText
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return MIMEPDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")) && bytes.Contains(data, []byte("word/")):
		return MIMEDOCX
	case utf8.Valid(data):
		return MIMEText
	default:
		return "application/octet-stream"
	}
}

func extractPDFText(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &ExtractionError{Format: "PDF", Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: "PDF", Cause: fmt.Errorf("page %d: %w", i, err)}
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	lineBreak    = regexp.MustCompile(`<w:(br|tab)[^>]*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = lineBreak.ReplaceAllString(content, " ")
	content = xmlTag.ReplaceAllString(content, "")
	return strings.TrimSpace(html.UnescapeString(content)), nil
}
