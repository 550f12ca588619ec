package client

import (
	"context"
	"net/http"

	"github.com/kjanat/restpki/client/pkg/api"
	"github.com/kjanat/restpki/client/pkg/validation"
)

const (
	opStartAuthentication    = "start authentication"
	opFinalizeAuthentication = "finalize authentication"
)

// Authentication drives one certificate authentication attempt:
// Start obtains a token, the user's browser signs the service's nonce
// with Web PKI, and Complete collects the outcome.
//
// An Authentication is single use and must not be shared between goroutines.
type Authentication struct {
	client      *Client
	certificate *Certificate
	done        bool
}

// Start asks the service for an authentication token, validating the
// certificate later against the given security context.
func (a *Authentication) Start(ctx context.Context, securityContextID string) (string, error) {
	if securityContextID == "" {
		return "", &ValidationError{
			Code:    ErrCodeSecurityContextNotSet,
			Message: "the security context was not set",
		}
	}

	body := api.StartAuthenticationJSONRequestBody{SecurityContextId: securityContextID}
	resp, err := send(ctx, a.client, opStartAuthentication,
		func() (*http.Response, error) {
			return a.client.raw.StartAuthentication(ctx, body)
		},
		api.ParseStartAuthenticationResponse,
	)
	if err != nil {
		return "", err
	}

	if resp.JSON200 == nil || resp.JSON200.Token == nil || *resp.JSON200.Token == "" {
		return "", missingField(opStartAuthentication, "token")
	}
	return *resp.JSON200.Token, nil
}

// Complete finalizes the authentication identified by token and returns
// the certificate validation results. The caller decides whether the
// results are acceptable; the certificate is available from Certificate.
func (a *Authentication) Complete(ctx context.Context, token string) (*validation.Results, error) {
	if a.done {
		return nil, ErrAlreadyCompleted
	}
	if token == "" {
		return nil, &ValidationError{
			Code:    ErrCodeTokenNotSet,
			Message: "the token was not set",
		}
	}

	resp, err := send(ctx, a.client, opFinalizeAuthentication,
		func() (*http.Response, error) {
			return a.client.raw.FinalizeAuthentication(ctx, token)
		},
		api.ParseFinalizeAuthenticationResponse,
	)
	if err != nil {
		return nil, err
	}

	if resp.JSON200 == nil {
		return nil, missingField(opFinalizeAuthentication, "body")
	}
	cert, ok := newCertificate(resp.JSON200.Certificate)
	if !ok {
		return nil, missingField(opFinalizeAuthentication, "certificate")
	}
	if resp.JSON200.ValidationResults == nil {
		return nil, missingField(opFinalizeAuthentication, "validationResults")
	}
	results, err := validation.FromModel(resp.JSON200.ValidationResults)
	if err != nil {
		return nil, &DecodingError{Operation: opFinalizeAuthentication, Field: "validationResults", Err: err}
	}

	a.certificate = cert
	a.done = true
	return results, nil
}

// Certificate returns the certificate presented by the user.
func (a *Authentication) Certificate() (*Certificate, error) {
	if !a.done {
		return nil, &PreconditionError{Method: "Certificate()", Requires: "Complete()"}
	}
	return a.certificate, nil
}

// Completed reports whether Complete has succeeded.
func (a *Authentication) Completed() bool {
	return a.done
}
