package client

import (
	"bytes"
	"encoding/json"
	"time"
)

// Certificate is the signer certificate as described by the service. The
// payload is kept verbatim because its shape depends on the PKI involved;
// use Info for the common fields or Decode for the full model.
type Certificate struct {
	raw json.RawMessage
}

func newCertificate(raw json.RawMessage) (*Certificate, bool) {
	if isAbsent(raw) {
		return nil, false
	}
	return &Certificate{raw: cloneRaw(raw)}, true
}

// Raw returns a copy of the certificate JSON object.
func (c *Certificate) Raw() json.RawMessage {
	return cloneRaw(c.raw)
}

// Decode unmarshals the certificate object into v.
func (c *Certificate) Decode(v any) error {
	return json.Unmarshal(c.raw, v)
}

// MarshalJSON returns the certificate object unchanged.
func (c *Certificate) MarshalJSON() ([]byte, error) {
	return cloneRaw(c.raw), nil
}

// Info extracts the fields every certificate model carries.
func (c *Certificate) Info() (*CertificateInfo, error) {
	var model struct {
		SubjectName struct {
			CommonName string `json:"commonName"`
		} `json:"subjectName"`
		IssuerName struct {
			CommonName string `json:"commonName"`
		} `json:"issuerName"`
		EmailAddress  string `json:"emailAddress"`
		SerialNumber  string `json:"serialNumber"`
		ValidityStart string `json:"validityStart"`
		ValidityEnd   string `json:"validityEnd"`
	}
	if err := c.Decode(&model); err != nil {
		return nil, err
	}
	return &CertificateInfo{
		SubjectCommonName: model.SubjectName.CommonName,
		IssuerCommonName:  model.IssuerName.CommonName,
		EmailAddress:      model.EmailAddress,
		SerialNumber:      model.SerialNumber,
		ValidityStart:     parseTimestamp(model.ValidityStart),
		ValidityEnd:       parseTimestamp(model.ValidityEnd),
	}, nil
}

// CertificateInfo holds the common certificate fields. Timestamps the
// service did not send are zero.
type CertificateInfo struct {
	SubjectCommonName string
	IssuerCommonName  string
	EmailAddress      string
	SerialNumber      string
	ValidityStart     time.Time
	ValidityEnd       time.Time
}

// Preset describes where a visible signature is placed on the page. It is
// returned by the service and sent back verbatim as part of a visual
// representation.
type Preset struct {
	raw json.RawMessage
}

// Raw returns a copy of the preset JSON object.
func (p *Preset) Raw() json.RawMessage {
	return cloneRaw(p.raw)
}

// Decode unmarshals the preset object into v.
func (p *Preset) Decode(v any) error {
	return json.Unmarshal(p.raw, v)
}

// MarshalJSON returns the preset object unchanged.
func (p *Preset) MarshalJSON() ([]byte, error) {
	return cloneRaw(p.raw), nil
}

// VisualRepresentation is a convenience shape for the visible signature
// stamp. Any JSON-marshalable value is accepted by SetVisualRepresentation;
// this type covers the common text, image and position fields.
type VisualRepresentation struct {
	Text     *VisualText  `json:"text,omitempty"`
	Image    *VisualImage `json:"image,omitempty"`
	Position *Preset      `json:"position,omitempty"`
}

// VisualText is the text part of the stamp. The service expands
// placeholders such as {{signerName}}.
type VisualText struct {
	Text               string `json:"text"`
	IncludeSigningTime bool   `json:"includeSigningTime"`
	HorizontalAlign    string `json:"horizontalAlign,omitempty"`
}

// VisualImage is the image part of the stamp.
type VisualImage struct {
	Resource        VisualResource `json:"resource"`
	Opacity         int            `json:"opacity"`
	HorizontalAlign string         `json:"horizontalAlign,omitempty"`
	VerticalAlign   string         `json:"verticalAlign,omitempty"`
}

// VisualResource is either inline content or a URL the service fetches.
type VisualResource struct {
	Content  []byte `json:"content,omitempty"`
	URL      string `json:"url,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}
