package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:body>` +
	`<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>Second line</w:t></w:r></w:p>` +
	`</w:body></w:document>`

func TestTextFromBytesDOCX(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := TextFromBytes(context.Background(), data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "Hello World\nSecond line" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromBytesSniffsDocxZip(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	// Browsers often upload DOCX as generic zip or octet-stream.
	for _, mime := range []string{"", "application/octet-stream", "application/zip"} {
		text, err := TextFromBytes(context.Background(), data, mime, "upload.bin")
		if err != nil {
			t.Fatalf("mime %q: %v", mime, err)
		}
		if !strings.Contains(text, "Hello World") {
			t.Fatalf("mime %q: unexpected text %q", mime, text)
		}
	}
}

func TestTextFromBytesUnsupported(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte("plain text"), "text/plain", "notes.txt")
	if err == nil {
		t.Fatalf("expected unsupported mime error")
	}
}

func TestTextFromBytesEmptyDocx(t *testing.T) {
	_, err := TextFromBytes(context.Background(), nil, mimeDOCX, "resume.docx")
	if err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestTextFromBytesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TextFromBytes(ctx, buildDocx(t, sampleDocumentXML), mimeDOCX, "resume.docx")
	if err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNormalizeMimeType(t *testing.T) {
	docx := buildDocx(t, sampleDocumentXML)

	tests := []struct {
		name     string
		mime     string
		fileName string
		data     []byte
		want     string
	}{
		{"explicit pdf", "application/pdf", "cv.pdf", nil, mimePDF},
		{"charset suffix stripped", "application/pdf; charset=utf-8", "cv.pdf", nil, mimePDF},
		{"extension fallback pdf", "application/octet-stream", "cv.pdf", nil, mimePDF},
		{"extension fallback docx", "", "cv.docx", nil, mimeDOCX},
		{"zip sniffed as docx", "application/zip", "upload.bin", docx, mimeDOCX},
		{"unknown stays put", "text/plain", "cv.txt", nil, "text/plain"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeMimeType(tc.mime, tc.fileName, tc.data); got != tc.want {
				t.Fatalf("normalizeMimeType(%q, %q) = %q, want %q", tc.mime, tc.fileName, got, tc.want)
			}
		})
	}
}
