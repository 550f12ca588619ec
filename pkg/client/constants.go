package client

import "strings"

// Standard security contexts defined by the service.
const (
	// SecurityContextPkiBrazil trusts the ICP-Brasil roots.
	SecurityContextPkiBrazil = "201856ce-273c-4058-a872-8937bd547d36"
	// SecurityContextPkiItaly trusts the Italian PKI roots.
	SecurityContextPkiItaly = "c438b17e-4862-446b-86ad-6f85734f0bfe"
	// SecurityContextWindowsServer trusts the roots installed on the
	// service's Windows Server host.
	SecurityContextWindowsServer = "3881384c-a54d-45c5-bbe9-976b674f5ec7"
)

// Standard signature policies defined by the service.
const (
	SignaturePolicyPadesBasic = "78d20b33-014d-440e-ad07-929f05d00cdf"
)

// StandardSecurityContexts returns the standard security contexts keyed by
// their short name.
func StandardSecurityContexts() map[string]string {
	return map[string]string{
		"pki-brazil":     SecurityContextPkiBrazil,
		"pki-italy":      SecurityContextPkiItaly,
		"windows-server": SecurityContextWindowsServer,
	}
}

// StandardSignaturePolicies returns the standard signature policies keyed by
// their short name.
func StandardSignaturePolicies() map[string]string {
	return map[string]string{
		"pades-basic": SignaturePolicyPadesBasic,
	}
}

// LookupSecurityContext resolves a short name such as "pki-brazil" to its
// identifier. Any other value is returned unchanged, as a raw identifier.
func LookupSecurityContext(nameOrID string) string {
	return lookup(StandardSecurityContexts(), nameOrID)
}

// LookupSignaturePolicy resolves a short name such as "pades-basic" to its
// identifier. Any other value is returned unchanged, as a raw identifier.
func LookupSignaturePolicy(nameOrID string) string {
	return lookup(StandardSignaturePolicies(), nameOrID)
}

func lookup(catalog map[string]string, nameOrID string) string {
	if id, ok := catalog[strings.ToLower(nameOrID)]; ok {
		return id
	}
	return nameOrID
}
