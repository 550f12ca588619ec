package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

// stubDoer implements HttpRequestDoer for tests and captures the last request
type stubDoer struct {
	resp    *http.Response
	err     error
	lastReq *http.Request
	calls   int
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.lastReq = req
	s.calls++
	if s.resp == nil {
		return &http.Response{StatusCode: 204, Status: http.StatusText(http.StatusNoContent), Body: io.NopCloser(strings.NewReader(""))}, s.err
	}
	return s.resp, s.err
}

func newResp(status int, body string, contentType string) *http.Response {
	if contentType == "" {
		contentType = "application/json"
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{contentType}},
	}
}

func TestWithBaseURL(t *testing.T) {
	c, err := NewClient("https://example.com")
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if c.Server != "https://example.com/" {
		t.Fatalf("unexpected initial server: %s", c.Server)
	}
	opt := WithBaseURL("https://api.test.local/base")
	if err := opt(c); err != nil {
		t.Fatalf("WithBaseURL error: %v", err)
	}
	if c.Server != "https://api.test.local/base" {
		t.Fatalf("server not updated: %s", c.Server)
	}
}

func TestNewStartAuthenticationRequest(t *testing.T) {
	req, err := NewStartAuthenticationRequest("https://pki.local/", AuthenticationRequest{SecurityContextId: "ctx-1"})
	if err != nil {
		t.Fatalf("build req: %v", err)
	}
	if req.Method != http.MethodPost {
		t.Errorf("method: %s", req.Method)
	}
	if req.URL.String() != "https://pki.local/Api/Authentications" {
		t.Errorf("url: %s", req.URL.String())
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: %s", ct)
	}
	var body map[string]any
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["securityContextId"] != "ctx-1" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRequestsKeepServerBasePath(t *testing.T) {
	req, err := NewFinalizeAuthenticationRequest("https://pki.local/rest/", "tok")
	if err != nil {
		t.Fatalf("build req: %v", err)
	}
	if got := req.URL.Path; got != "/rest/Api/Authentications/tok/Finalize" {
		t.Errorf("path: %s", got)
	}
}

func TestFinalizeRequestsEscapeToken(t *testing.T) {
	req, err := NewFinalizePadesSignatureRequest("https://pki.local/", "a b/c")
	if err != nil {
		t.Fatalf("build req: %v", err)
	}
	if req.Method != http.MethodPost {
		t.Errorf("method: %s", req.Method)
	}
	if got := req.URL.EscapedPath(); got != "/Api/PadesSignatures/a%20b%2Fc/Finalize" {
		t.Errorf("escaped path: %s", got)
	}
	if req.Body != nil && req.Body != http.NoBody {
		t.Errorf("expected empty body")
	}
}

func TestNewStartPadesSignatureRequest_NullOptionalFields(t *testing.T) {
	req, err := NewStartPadesSignatureRequest("https://pki.local/", PadesSignatureRequest{
		PdfToSign:         "JVBERg==",
		SignaturePolicyId: "policy",
	})
	if err != nil {
		t.Fatalf("build req: %v", err)
	}
	raw, _ := io.ReadAll(req.Body)
	body := string(raw)
	for _, want := range []string{`"pdfToSign":"JVBERg=="`, `"signaturePolicyId":"policy"`, `"securityContextId":null`, `"visualRepresentation":null`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s missing %s", body, want)
		}
	}
}

func TestNewGetFootnotePresetRequest(t *testing.T) {
	page, rows := 2, 3
	tests := []struct {
		name      string
		params    *GetFootnotePresetParams
		wantQuery string
	}{
		{name: "no params", params: nil, wantQuery: ""},
		{name: "empty params", params: &GetFootnotePresetParams{}, wantQuery: ""},
		{name: "page only", params: &GetFootnotePresetParams{PageNumber: &page}, wantQuery: "pageNumber=2"},
		{name: "page and rows", params: &GetFootnotePresetParams{PageNumber: &page, Rows: &rows}, wantQuery: "pageNumber=2&rows=3"},
		{name: "rows only", params: &GetFootnotePresetParams{Rows: &rows}, wantQuery: "rows=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewGetFootnotePresetRequest("https://pki.local", tt.params)
			if err != nil {
				t.Fatalf("build req: %v", err)
			}
			if req.Method != http.MethodGet {
				t.Errorf("method: %s", req.Method)
			}
			if req.URL.Path != "/Api/PadesVisualPositioningPresets/Footnote" {
				t.Errorf("path: %s", req.URL.Path)
			}
			if req.URL.RawQuery != tt.wantQuery {
				t.Errorf("query: got %q want %q", req.URL.RawQuery, tt.wantQuery)
			}
		})
	}
}

func TestClientEditorsAndDoer(t *testing.T) {
	var editorCalled, perCallCalled bool
	ed1 := func(_ context.Context, req *http.Request) error {
		editorCalled = true
		req.Header.Set("X-Test", "client-editor")
		return nil
	}
	ed2 := func(_ context.Context, req *http.Request) error {
		perCallCalled = true
		req.Header.Set("X-Call", "req-editor")
		return nil
	}

	doer := &stubDoer{resp: newResp(200, `{"token":"t"}`, "application/json")} //nolint:bodyclose // closed by the parser
	c, err := NewClientWithResponses("https://host", WithHTTPClient(doer), WithRequestEditorFn(ed1))
	if err != nil {
		t.Fatalf("NewClientWithResponses: %v", err)
	}
	rsp, err := c.GetNewPagePresetWithResponse(context.Background(), ed2)
	if err != nil {
		t.Fatalf("GetNewPagePreset: %v", err)
	}
	if rsp.StatusCode() != 200 {
		t.Fatalf("unexpected status: %d", rsp.StatusCode())
	}
	if !editorCalled || !perCallCalled {
		t.Fatalf("editors not called: client=%v perCall=%v", editorCalled, perCallCalled)
	}
	if doer.lastReq.Header.Get("X-Test") != "client-editor" || doer.lastReq.Header.Get("X-Call") != "req-editor" {
		t.Errorf("headers not propagated: %+v", doer.lastReq.Header)
	}
	if doer.lastReq.URL.Path != "/Api/PadesVisualPositioningPresets/NewPage" {
		t.Errorf("path: %s", doer.lastReq.URL.Path)
	}
}

func TestEditorErrorStopsRequest(t *testing.T) {
	doer := &stubDoer{}
	c, err := NewClient("https://host", WithHTTPClient(doer), WithRequestEditorFn(func(context.Context, *http.Request) error {
		return io.ErrUnexpectedEOF
	}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = c.GetNewPagePreset(context.Background()) //nolint:bodyclose // request never sent
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("expected editor error, got %v", err)
	}
	if doer.calls != 0 {
		t.Errorf("request should not be sent, got %d calls", doer.calls)
	}
}

func TestParseFinalizeAuthenticationResponse(t *testing.T) {
	body := `{"certificate":{"subjectName":{"commonName":"Alice"}},"validationResults":{"errors":[],"warnings":[],"passedChecks":[{"type":"X","message":"ok","innerValidationResults":{"errors":[{"type":"Y","message":"bad","detail":"why"}]}}]}}`
	parsed, err := ParseFinalizeAuthenticationResponse(newResp(200, body, "application/json; charset=utf-8"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.JSON200 == nil {
		t.Fatal("JSON200 not decoded")
	}
	vr := parsed.JSON200.ValidationResults
	if vr == nil || len(vr.PassedChecks) != 1 {
		t.Fatalf("validation results not decoded: %+v", vr)
	}
	inner := vr.PassedChecks[0].InnerValidationResults
	if inner == nil || len(inner.Errors) != 1 || *inner.Errors[0].Detail != "why" {
		t.Fatalf("inner results not decoded: %+v", inner)
	}
	if !strings.Contains(string(parsed.JSON200.Certificate), "Alice") {
		t.Errorf("certificate not kept raw: %s", parsed.JSON200.Certificate)
	}
}

func TestParseErrorResponse(t *testing.T) {
	parsed, err := ParseStartAuthenticationResponse(newResp(422, `{"code":"InvalidSecurityContext","message":"unknown context"}`, ""))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.JSON200 != nil {
		t.Error("JSON200 should be nil for error status")
	}
	if parsed.JSONDefault == nil || parsed.JSONDefault.Code != "InvalidSecurityContext" {
		t.Fatalf("JSONDefault not decoded: %+v", parsed.JSONDefault)
	}
	if parsed.StatusCode() != 422 || parsed.Status() == "" {
		t.Errorf("status helpers incorrect: %d %q", parsed.StatusCode(), parsed.Status())
	}
}

func TestParseNonJSONResponse(t *testing.T) {
	parsed, err := ParseStartPadesSignatureResponse(newResp(502, "<html>bad gateway</html>", "text/html"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.JSON200 != nil || parsed.JSONDefault != nil {
		t.Error("non-JSON body should not be decoded")
	}
	if string(parsed.Body) != "<html>bad gateway</html>" {
		t.Errorf("body not kept: %q", parsed.Body)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	if _, err := ParseFinalizePadesSignatureResponse(newResp(200, `{"signedPdf":`, "")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestParsePresetKeepsRawObject(t *testing.T) {
	parsed, err := ParseGetFootnotePresetResponse(newResp(200, `{"pageNumber":-1,"container":{"left":1}}`, ""))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.JSON200 == nil || string(*parsed.JSON200) != `{"pageNumber":-1,"container":{"left":1}}` {
		t.Fatalf("preset not kept raw: %v", parsed.JSON200)
	}

	page, err := ParseGetNewPagePresetResponse(newResp(200, `{"pageNumber":-1}`, ""))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if page.JSON200 == nil || string(*page.JSON200) != `{"pageNumber":-1}` {
		t.Fatalf("preset not kept raw: %v", page.JSON200)
	}
}

func TestParseOnlyDecodesSuccessFor200(t *testing.T) {
	parsed, err := ParseStartAuthenticationResponse(newResp(201, `{"token":"t"}`, ""))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.JSON200 != nil {
		t.Errorf("JSON200 should only be set for 200, got %+v", parsed.JSON200)
	}
}

func TestParseMalformedErrorBody(t *testing.T) {
	if _, err := ParseStartAuthenticationResponse(newResp(500, `{"code":`, "")); err == nil {
		t.Fatal("expected decode error for malformed error body")
	}
}

func TestEnvelope(t *testing.T) {
	detail := "why"
	var env Envelope = &FinalizeAuthenticationResponse{
		Body:         []byte("raw"),
		HTTPResponse: &http.Response{StatusCode: 409},
		JSONDefault:  &ErrorModel{Code: "Conflict", Message: "taken", Detail: &detail},
	}
	if env.StatusCode() != 409 {
		t.Errorf("status: %d", env.StatusCode())
	}
	if string(env.RawBody()) != "raw" {
		t.Errorf("body: %q", env.RawBody())
	}
	if env.ErrorBody() == nil || env.ErrorBody().Code != "Conflict" {
		t.Errorf("error body: %+v", env.ErrorBody())
	}
}

func TestWithBodyVariantKeepsContentType(t *testing.T) {
	doer := &stubDoer{}
	c, err := NewClient("https://host", WithHTTPClient(doer))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	rsp, err := c.StartPadesSignatureWithBody(context.Background(), "application/vnd.test+json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("StartPadesSignatureWithBody: %v", err)
	}
	_ = rsp.Body.Close()
	if got := doer.lastReq.Header.Get("Content-Type"); got != "application/vnd.test+json" {
		t.Errorf("content-type: %s", got)
	}
	if doer.lastReq.URL.Path != "/Api/PadesSignatures" {
		t.Errorf("path: %s", doer.lastReq.URL.Path)
	}
}

func TestZeroResponseHelpers(t *testing.T) {
	var r StartAuthenticationResponse
	if r.StatusCode() != 0 {
		t.Errorf("expected 0, got %d", r.StatusCode())
	}
	if r.Status() != "" {
		t.Errorf("expected empty status, got %q", r.Status())
	}
}

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	if err != nil {
		t.Fatalf("GetSwagger error: %v", err)
	}
	if doc == nil || doc.Paths == nil {
		t.Fatal("document not loaded")
	}
	for _, path := range []string{
		"/Api/Authentications",
		"/Api/Authentications/{token}/Finalize",
		"/Api/PadesSignatures",
		"/Api/PadesSignatures/{token}/Finalize",
		"/Api/PadesVisualPositioningPresets/Footnote",
		"/Api/PadesVisualPositioningPresets/NewPage",
	} {
		if doc.Paths.Value(path) == nil {
			t.Errorf("path %s missing from document", path)
		}
	}
	again, err := GetSwagger()
	if err != nil || again != doc {
		t.Errorf("expected memoized document")
	}
}

func TestOperations(t *testing.T) {
	ops, err := Operations()
	if err != nil {
		t.Fatalf("Operations error: %v", err)
	}
	if len(ops) != 6 {
		t.Fatalf("expected 6 operations, got %d", len(ops))
	}
	if ops[0].Path != "/Api/Authentications" || ops[0].Method != http.MethodPost || ops[0].ID != "startAuthentication" {
		t.Errorf("unexpected first operation: %+v", ops[0])
	}
}

func TestRawSpecIsCopy(t *testing.T) {
	b := RawSpec()
	if len(b) == 0 {
		t.Fatal("empty document")
	}
	b[0] = 'X'
	if RawSpec()[0] == 'X' {
		t.Error("RawSpec must return a copy")
	}
}
