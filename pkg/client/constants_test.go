package client

import "testing"

func TestLookupSecurityContext(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pki-brazil", SecurityContextPkiBrazil},
		{"PKI-Italy", SecurityContextPkiItaly},
		{"windows-server", SecurityContextWindowsServer},
		{SecurityContextPkiBrazil, SecurityContextPkiBrazil},
		{"d480aa6b-6b0a-4a2b-9a2e-2f8b1a3c4d5e", "d480aa6b-6b0a-4a2b-9a2e-2f8b1a3c4d5e"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LookupSecurityContext(tt.in); got != tt.want {
			t.Errorf("LookupSecurityContext(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLookupSignaturePolicy(t *testing.T) {
	if got := LookupSignaturePolicy("PAdES-Basic"); got != SignaturePolicyPadesBasic {
		t.Errorf("expected %q, got %q", SignaturePolicyPadesBasic, got)
	}
	if got := LookupSignaturePolicy("custom"); got != "custom" {
		t.Errorf("unknown values should pass through, got %q", got)
	}
}

func TestStandardCatalogsAreCopies(t *testing.T) {
	contexts := StandardSecurityContexts()
	if len(contexts) != 3 {
		t.Fatalf("expected 3 security contexts, got %d", len(contexts))
	}
	contexts["pki-brazil"] = "changed"
	if StandardSecurityContexts()["pki-brazil"] != SecurityContextPkiBrazil {
		t.Error("catalog mutation leaked")
	}

	if StandardSignaturePolicies()["pades-basic"] != SignaturePolicyPadesBasic {
		t.Error("missing pades-basic policy")
	}
}
