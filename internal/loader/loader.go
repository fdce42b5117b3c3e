// Package loader reads resumes and job descriptions from disk.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"mime"
	"os"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"radar/internal/domain"
)

// ErrUnsupportedFormat is returned for files that are not text, PDF or DOCX.
var ErrUnsupportedFormat = errors.New("unsupported file type")

const (
	mimeText = "text/plain"
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Load reads path and returns its plain-text content as a Document.
func Load(path string) (domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	text, err := ExtractText(data)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return domain.Document{Path: path, Content: text}, nil
}

// ExtractText detects the content type of data and returns its text.
func ExtractText(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is(mimePDF):
		return extractPDFText(data)
	case mt.Is(mimeDocx):
		return extractDocxText(data)
	}
	for m := mt; m != nil; m = m.Parent() {
		if m.Is(mimeText) {
			return decodeText(data, mt.String())
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mt.String())
}

// decodeText converts data to UTF-8 according to the charset parameter
// mimetype detected for it.
func decodeText(data []byte, mediaType string) (string, error) {
	_, params, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaType)
	}
	var enc encoding.Encoding
	switch cs := strings.ToLower(params["charset"]); cs {
	case "", "utf-8", "us-ascii":
		enc = unicode.UTF8BOM
	case "utf-16le":
		enc = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case "utf-16be":
		enc = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case "utf-32le":
		enc = utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)
	case "utf-32be":
		enc = utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)
	default:
		if enc, err = htmlindex.Get(cs); err != nil {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaType)
		}
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s text: %w", params["charset"], err)
	}
	return string(out), nil
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()
	xml := paragraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	return html.UnescapeString(xmlTag.ReplaceAllString(xml, "")), nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]*>`)
)

// ReadAll reads r fully and extracts its text, for stdin input.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return ExtractText(data)
}
