package api

// Envelope is the part of a parsed response that every operation shares.
type Envelope interface {
	StatusCode() int
	RawBody() []byte
	ErrorBody() *ErrorModel
}

var (
	_ Envelope = (*StartAuthenticationResponse)(nil)
	_ Envelope = (*FinalizeAuthenticationResponse)(nil)
	_ Envelope = (*StartPadesSignatureResponse)(nil)
	_ Envelope = (*FinalizePadesSignatureResponse)(nil)
	_ Envelope = (*GetFootnotePresetResponse)(nil)
	_ Envelope = (*GetNewPagePresetResponse)(nil)
)

// RawBody returns the undecoded response body.
func (r StartAuthenticationResponse) RawBody() []byte { return r.Body }

// ErrorBody returns the decoded error payload, if any.
func (r StartAuthenticationResponse) ErrorBody() *ErrorModel { return r.JSONDefault }

func (r FinalizeAuthenticationResponse) RawBody() []byte        { return r.Body }
func (r FinalizeAuthenticationResponse) ErrorBody() *ErrorModel { return r.JSONDefault }

func (r StartPadesSignatureResponse) RawBody() []byte        { return r.Body }
func (r StartPadesSignatureResponse) ErrorBody() *ErrorModel { return r.JSONDefault }

func (r FinalizePadesSignatureResponse) RawBody() []byte        { return r.Body }
func (r FinalizePadesSignatureResponse) ErrorBody() *ErrorModel { return r.JSONDefault }

func (r GetFootnotePresetResponse) RawBody() []byte        { return r.Body }
func (r GetFootnotePresetResponse) ErrorBody() *ErrorModel { return r.JSONDefault }

func (r GetNewPagePresetResponse) RawBody() []byte        { return r.Body }
func (r GetNewPagePresetResponse) ErrorBody() *ErrorModel { return r.JSONDefault }
