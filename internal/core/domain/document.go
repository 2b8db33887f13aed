package domain

import "strings"

// UploadedDocument is the raw payload of one request. It is never persisted;
// it lives exactly as long as the request that carried it.
type UploadedDocument struct {
	Filename  string
	MediaType string
	Data      []byte
}

func (d *UploadedDocument) IsPDF() bool {
	mt := strings.ToLower(strings.TrimSpace(d.MediaType))
	if mt == "application/pdf" || mt == "application/x-pdf" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(d.Filename), ".pdf")
}

func (d *UploadedDocument) IsPlainText() bool {
	mt := strings.ToLower(strings.TrimSpace(d.MediaType))
	if idx := strings.IndexByte(mt, ';'); idx >= 0 {
		mt = strings.TrimSpace(mt[:idx])
	}
	return strings.HasPrefix(mt, "text/") || mt == "application/json"
}
