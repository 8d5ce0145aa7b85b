// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package gateway

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Field is one scalar multipart field, in submission order.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FilePart is the optional binary attachment of a payload. Only images are
// ever attached; when an existing record keeps its previous image, no part
// is sent at all and the upstream retains what it has.
type FilePart struct {
	FieldName   string `json:"field_name"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

// Payload is a transport-ready submission: an ordered field list plus an
// optional file part.
//
// # Determinism
//
// Payload construction is deterministic — serializing unchanged editor state
// twice yields identical payloads. Randomness (the multipart boundary) only
// enters in [Payload.EncodeMultipart], at send time.
type Payload struct {
	Fields []Field   `json:"fields"`
	File   *FilePart `json:"file,omitempty"`
}

// Set appends a scalar field. Order is preserved.
func (p *Payload) Set(name, value string) {
	p.Fields = append(p.Fields, Field{Name: name, Value: value})
}

// Get returns the first value recorded under name.
func (p *Payload) Get(name string) (string, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Attach sets the file part.
func (p *Payload) Attach(fieldName, filename, contentType string, content []byte) {
	p.File = &FilePart{
		FieldName:   fieldName,
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	}
}

// EncodeMultipart renders the payload as a multipart/form-data body and
// returns it together with the Content-Type header value (which carries the
// generated boundary).
func (p *Payload) EncodeMultipart() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range p.Fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, "", fmt.Errorf("gateway: encode field %q: %w", field.Name, err)
		}
	}

	if p.File != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			escapeQuotes(p.File.FieldName), escapeQuotes(p.File.Filename)))
		header.Set("Content-Type", p.File.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("gateway: create file part: %w", err)
		}
		if _, err := part.Write(p.File.Content); err != nil {
			return nil, "", fmt.Errorf("gateway: write file part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("gateway: finalize multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

// escapeQuotes mirrors mime/multipart's internal quoting for header values.
func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}
