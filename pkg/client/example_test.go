package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/kjanat/restpki/client/pkg/client"
)

// fakeService answers the authentication endpoints the way the service does.
func fakeService() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /Api/Authentications", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "example-token"})
	})
	mux.HandleFunc("POST /Api/Authentications/{token}/Finalize", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"certificate": map[string]any{
				"subjectName": map[string]any{"commonName": "Alan Mathison Turing"},
			},
			"validationResults": map[string]any{
				"errors":       []any{},
				"warnings":     []any{},
				"passedChecks": []any{map[string]any{"type": "CertificateNotRevoked", "message": "Certificate not revoked"}},
			},
		})
	})
	return httptest.NewServer(mux)
}

func ExampleNew() {
	c, err := client.New("https://pki.rest/", "my-access-token",
		client.WithTimeout(10*time.Second),
		client.WithMaxRetries(2),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(c.Endpoint())
	// Output: https://pki.rest/
}

func ExampleAuthentication() {
	server := fakeService()
	defer server.Close()

	c, err := client.New(server.URL, "my-access-token")
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	auth := c.NewAuthentication()
	token, err := auth.Start(ctx, client.SecurityContextPkiBrazil)
	if err != nil {
		log.Fatal(err)
	}

	results, err := auth.Complete(ctx, token)
	if err != nil {
		log.Fatal(err)
	}
	cert, _ := auth.Certificate()
	info, _ := cert.Info()

	fmt.Println(info.SubjectCommonName)
	fmt.Println(results.IsValid(), results.ChecksPerformed())
	// Output:
	// Alan Mathison Turing
	// true 1
}

func ExampleIsValidationError() {
	c, err := client.New("https://pki.rest/", "my-access-token")
	if err != nil {
		log.Fatal(err)
	}

	_, err = c.NewPadesSignatureStarter().Start(context.Background())
	fmt.Println(client.IsValidationError(err))
	fmt.Println(err)
	// Output:
	// true
	// validation error: the PDF document to sign was not set
}
