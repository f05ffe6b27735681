package translation

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/ledongthuc/pdf"
)

// TranslateFile reads a file, extracts its plain text based on the
// extension, and translates it in one Translate call. Recognized
// binary formats are .docx and .pdf (first page only); .html and .htm
// go through readability extraction; everything else is read as UTF-8
// text and trimmed.
func TranslateFile(ctx context.Context, tr Translator, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("stat file: %w", err)
	}

	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		text, err = readDocx(path)
	case ".pdf":
		text, err = readPDFFirstPage(path)
	case ".html", ".htm":
		text, err = readHTML(path)
	default:
		text, err = readPlainText(path)
	}
	if err != nil {
		return "", err
	}

	return tr.Translate(ctx, text)
}

func readPlainText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// readDocx pulls the paragraph text out of word/document.xml. A .docx
// is a zip of XML; runs live in w:t elements, paragraphs in w:p.
func readDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer archive.Close()

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document = file
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("docx has no word/document.xml")
	}

	reader, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("open docx document: %w", err)
	}
	defer reader.Close()

	decoder := xml.NewDecoder(reader)
	var (
		b      strings.Builder
		inText bool
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return cleanFileText(b.String()), nil
}

// readPDFFirstPage extracts the text of the first page only.
func readPDFFirstPage(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	if reader.NumPage() < 1 {
		return "", fmt.Errorf("pdf has no pages")
	}
	page := reader.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("pdf first page is empty")
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return cleanFileText(text), nil
}

// readHTML extracts the readable article text from a saved page.
func readHTML(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	pageURL, err := url.Parse("file:///" + filepath.ToSlash(path))
	if err != nil {
		return "", fmt.Errorf("build page url: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(raw), pageURL)
	if err != nil {
		return "", fmt.Errorf("readability parse: %w", err)
	}

	var rendered bytes.Buffer
	if err := article.RenderText(&rendered); err != nil {
		return "", fmt.Errorf("render readability text: %w", err)
	}

	text := cleanFileText(rendered.String())
	if text == "" {
		text = cleanFileText(article.Excerpt())
	}
	if text == "" {
		return "", fmt.Errorf("no readable text in %s", filepath.Base(path))
	}
	return text, nil
}

// cleanFileText normalizes line endings and collapses in-line
// whitespace, keeping paragraph breaks.
func cleanFileText(raw string) string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		clean := strings.Join(strings.Fields(strings.TrimSpace(line)), " ")
		if clean == "" {
			continue
		}
		paragraphs = append(paragraphs, clean)
	}

	return strings.TrimSpace(strings.Join(paragraphs, "\n"))
}
