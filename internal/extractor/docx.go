package extractor

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Word stores the document body as XML inside a zip archive. Only the text
// runs matter here; styling and layout elements are ignored by the decoder.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []docxText `xml:"t"`
}

type docxText struct {
	Value string `xml:",chardata"`
}

type docxTable struct {
	Rows []docxTableRow `xml:"tr"`
}

type docxTableRow struct {
	Cells []docxTableCell `xml:"tc"`
}

type docxTableCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

// extractDocx reads word/document.xml from the archive and joins paragraph
// texts with newlines. Runs inside a paragraph are concatenated directly
// because Word splits words across runs at arbitrary points.
func (e *FileExtractor) extractDocx(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", &UnreadableFileError{Path: path, Err: err}
	}
	defer r.Close()

	var data []byte
	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &UnreadableFileError{Path: path, Err: err}
		}
		data, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", &UnreadableFileError{Path: path, Err: err}
		}
		break
	}
	if data == nil {
		return "", &UnreadableFileError{Path: path, Err: errors.New("missing word/document.xml")}
	}

	var doc docxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", &UnreadableFileError{Path: path, Err: err}
	}

	var lines []string
	appendParagraphs := func(paragraphs []docxParagraph) {
		for _, p := range paragraphs {
			var b strings.Builder
			for _, run := range p.Runs {
				for _, t := range run.Texts {
					b.WriteString(t.Value)
				}
			}
			if text := strings.TrimSpace(b.String()); text != "" {
				lines = append(lines, text)
			}
		}
	}
	appendParagraphs(doc.Body.Paragraphs)
	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			for _, cell := range row.Cells {
				appendParagraphs(cell.Paragraphs)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}
