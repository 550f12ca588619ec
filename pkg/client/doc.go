// Package client provides a high-level client for the REST PKI service.
//
// The service performs certificate validation and signature computation
// server side. This package drives its two-phase workflows: a start call
// returns an opaque token, the user's browser performs the signing ceremony
// with Web PKI, and a finish call returns the final artifacts.
//
// # Authentication
//
//	c, err := client.New("https://pki.rest/", os.Getenv("RESTPKI_ACCESS_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := c.NewAuthentication().Start(ctx, client.SecurityContextPkiBrazil)
//	// ... hand token to Web PKI, receive it back on the next request ...
//
//	auth := c.NewAuthentication()
//	results, err := auth.Complete(ctx, token)
//	if err == nil && results.IsValid() {
//	    cert, _ := auth.Certificate()
//	    info, _ := cert.Info()
//	    fmt.Println("welcome,", info.SubjectCommonName)
//	}
//
// # PAdES signatures
//
//	starter := c.NewPadesSignatureStarter()
//	if err := starter.SetPdfToSignPath("contract.pdf"); err != nil {
//	    log.Fatal(err)
//	}
//	starter.SetSignaturePolicy(client.SignaturePolicyPadesBasic)
//	starter.SetSecurityContext(client.SecurityContextPkiBrazil)
//
//	footnote, err := c.Presets().Footnote(ctx, client.FootnoteOptions{})
//	_ = starter.SetVisualRepresentation(client.VisualRepresentation{
//	    Text:     &client.VisualText{Text: "Signed by {{signerName}}", IncludeSigningTime: true},
//	    Position: footnote,
//	})
//
//	token, err := starter.Start(ctx)
//	// ... Web PKI signs ...
//	finisher := c.NewPadesSignatureFinisher()
//	finisher.SetToken(token)
//	if _, err := finisher.Finish(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	err = finisher.WriteSignedPdfToPath("contract-signed.pdf")
//
// # Error Handling
//
// Every failure is one of four types, with helper functions:
//
//	switch {
//	case client.IsValidationError(err):
//	    // A required input was not set; nothing was sent.
//	case client.IsPreconditionError(err):
//	    // A result was read before its finish step succeeded.
//	case client.IsRemoteServiceError(err):
//	    // Transport failure or non-success status; see StatusCode and Body.
//	case client.IsDecodingError(err):
//	    // The service answered 2xx with an unusable body.
//	}
package client
