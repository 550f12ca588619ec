package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/kjanat/restpki/client/pkg/api"
)

const (
	opStartPadesSignature    = "start PAdES signature"
	opFinalizePadesSignature = "finalize PAdES signature"
)

// PadesSignatureStarter collects the inputs of a PAdES signature and
// registers it with the service. Only the PDF and the signature policy are
// required.
type PadesSignatureStarter struct {
	client               *Client
	pdf                  []byte
	securityContextID    string
	signaturePolicyID    string
	visualRepresentation json.RawMessage
}

// SetPdfToSignPath reads the PDF to sign from a local file.
func (s *PadesSignatureStarter) SetPdfToSignPath(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read PDF to sign: %w", err)
	}
	s.pdf = content
	return nil
}

// SetPdfToSignContent sets the PDF to sign from memory.
func (s *PadesSignatureStarter) SetPdfToSignContent(content []byte) {
	s.pdf = content
}

// SetSecurityContext sets the trust policy used to validate the signer's
// certificate. When unset the service applies the policy's default.
func (s *PadesSignatureStarter) SetSecurityContext(securityContextID string) {
	s.securityContextID = securityContextID
}

// SetSignaturePolicy sets the signature policy, such as SignaturePolicyPadesBasic.
func (s *PadesSignatureStarter) SetSignaturePolicy(signaturePolicyID string) {
	s.signaturePolicyID = signaturePolicyID
}

// SetVisualRepresentation sets the visible signature stamp. v is marshalled
// to JSON once and forwarded verbatim; a VisualRepresentation, a
// json.RawMessage or a plain map all work. A nil v clears it.
func (s *PadesSignatureStarter) SetVisualRepresentation(v any) error {
	if v == nil {
		s.visualRepresentation = nil
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal visual representation: %w", err)
	}
	s.visualRepresentation = raw
	return nil
}

// Start validates the inputs, uploads the PDF and returns the token the
// Web PKI signing step and the finisher need.
func (s *PadesSignatureStarter) Start(ctx context.Context) (string, error) {
	if len(s.pdf) == 0 {
		return "", &ValidationError{
			Code:    ErrCodePdfNotSet,
			Message: "the PDF document to sign was not set",
		}
	}
	if s.signaturePolicyID == "" {
		return "", &ValidationError{
			Code:    ErrCodePolicyNotSet,
			Message: "the signature policy was not set",
		}
	}

	body := api.StartPadesSignatureJSONRequestBody{
		PdfToSign:            encodePdf(s.pdf),
		SignaturePolicyId:    s.signaturePolicyID,
		VisualRepresentation: s.visualRepresentation,
	}
	if s.securityContextID != "" {
		id := s.securityContextID
		body.SecurityContextId = &id
	}

	resp, err := send(ctx, s.client, opStartPadesSignature,
		func() (*http.Response, error) {
			return s.client.raw.StartPadesSignature(ctx, body)
		},
		api.ParseStartPadesSignatureResponse,
	)
	if err != nil {
		return "", err
	}

	if resp.JSON200 == nil || resp.JSON200.Token == nil || *resp.JSON200.Token == "" {
		return "", missingField(opStartPadesSignature, "token")
	}
	return *resp.JSON200.Token, nil
}

// PadesSignatureFinisher completes a PAdES signature once the signer has
// produced the signature for the token returned by the starter.
//
// A PadesSignatureFinisher is single use and must not be shared between
// goroutines.
type PadesSignatureFinisher struct {
	client      *Client
	token       string
	done        bool
	signedPdf   []byte
	certificate *Certificate
}

// SetToken sets the token returned by PadesSignatureStarter.Start.
func (f *PadesSignatureFinisher) SetToken(token string) {
	f.token = token
}

// Finish asks the service to assemble the signed PDF and returns it.
func (f *PadesSignatureFinisher) Finish(ctx context.Context) ([]byte, error) {
	if f.done {
		return nil, ErrAlreadyCompleted
	}
	if f.token == "" {
		return nil, &ValidationError{
			Code:    ErrCodeTokenNotSet,
			Message: "the token was not set",
		}
	}

	token := f.token
	resp, err := send(ctx, f.client, opFinalizePadesSignature,
		func() (*http.Response, error) {
			return f.client.raw.FinalizePadesSignature(ctx, token)
		},
		api.ParseFinalizePadesSignatureResponse,
	)
	if err != nil {
		return nil, err
	}

	if resp.JSON200 == nil {
		return nil, missingField(opFinalizePadesSignature, "body")
	}
	if resp.JSON200.SignedPdf == nil || *resp.JSON200.SignedPdf == "" {
		return nil, missingField(opFinalizePadesSignature, "signedPdf")
	}
	signed, err := decodePdf(*resp.JSON200.SignedPdf)
	if err != nil {
		return nil, &DecodingError{Operation: opFinalizePadesSignature, Field: "signedPdf", Err: err}
	}
	cert, ok := newCertificate(resp.JSON200.Certificate)
	if !ok {
		return nil, missingField(opFinalizePadesSignature, "certificate")
	}

	f.signedPdf = signed
	f.certificate = cert
	f.done = true
	return signed, nil
}

// Certificate returns the signer's certificate.
func (f *PadesSignatureFinisher) Certificate() (*Certificate, error) {
	if !f.done {
		return nil, &PreconditionError{Method: "Certificate()", Requires: "Finish()"}
	}
	return f.certificate, nil
}

// SignedPdf returns the signed document.
func (f *PadesSignatureFinisher) SignedPdf() ([]byte, error) {
	if !f.done {
		return nil, &PreconditionError{Method: "SignedPdf()", Requires: "Finish()"}
	}
	return f.signedPdf, nil
}

// WriteSignedPdfToPath writes the signed document to path, replacing any
// existing file.
func (f *PadesSignatureFinisher) WriteSignedPdfToPath(path string) (err error) {
	if !f.done {
		return &PreconditionError{Method: "WriteSignedPdfToPath()", Requires: "Finish()"}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open signed PDF: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close signed PDF: %w", closeErr))
		}
	}()

	if _, err := file.Write(f.signedPdf); err != nil {
		return fmt.Errorf("write signed PDF: %w", err)
	}
	return nil
}

func encodePdf(content []byte) string {
	return base64.StdEncoding.EncodeToString(content)
}

func decodePdf(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}
