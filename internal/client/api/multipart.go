package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// ProgressFunc reports upload progress: bytes sent so far and the total
// body size. total includes multipart framing, not just file contents.
type ProgressFunc func(sent, total int64)

// filePart is one file attached to a multipart request.
type filePart struct {
	field    string
	filename string
	reader   io.Reader
}

// multipartPayload describes a multipart/form-data request body.
type multipartPayload struct {
	fields   map[string]string
	files    []filePart
	progress ProgressFunc
}

// encode renders the payload into a reader plus its content type. The whole
// body is buffered up front so the total size is known for progress
// reporting and Content-Length.
func (p *multipartPayload) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for field, value := range p.fields {
		if err := w.WriteField(field, value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", field, err)
		}
	}
	for _, f := range p.files {
		part, err := w.CreateFormFile(f.field, f.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create part %q: %w", f.field, err)
		}
		if _, err := io.Copy(part, f.reader); err != nil {
			return nil, "", fmt.Errorf("copy %q: %w", f.filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	var r io.Reader = &buf
	if p.progress != nil {
		r = &progressReader{r: r, total: int64(buf.Len()), fn: p.progress}
	}
	return r, w.FormDataContentType(), nil
}

// progressReader invokes fn after every read with the running byte count.
type progressReader struct {
	r     io.Reader
	sent  int64
	total int64
	fn    ProgressFunc
}

func (pr *progressReader) Read(b []byte) (int, error) {
	n, err := pr.r.Read(b)
	if n > 0 {
		pr.sent += int64(n)
		pr.fn(pr.sent, pr.total)
	}
	return n, err
}
