package session

import "testing"

func TestSignInIssuesToken(t *testing.T) {
	gate := NewGate("admin@shop.test", "secret")

	token, err := gate.SignIn("admin@shop.test", "secret")
	if err != nil {
		t.Fatalf("expected sign-in to succeed, got %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	email, ok := gate.Verify(token)
	if !ok {
		t.Fatal("expected token to verify")
	}
	if email != "admin@shop.test" {
		t.Fatalf("expected admin email, got %q", email)
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	gate := NewGate("admin@shop.test", "secret")

	for _, tc := range []struct{ email, password string }{
		{"admin@shop.test", "wrong"},
		{"other@shop.test", "secret"},
		{"", ""},
	} {
		if _, err := gate.SignIn(tc.email, tc.password); err != ErrInvalidCredentials {
			t.Fatalf("SignIn(%q, %q): expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestVerifyUnknownToken(t *testing.T) {
	gate := NewGate("admin@shop.test", "secret")

	if _, ok := gate.Verify("made-up"); ok {
		t.Fatal("unknown token must not verify")
	}
	if _, ok := gate.Verify(""); ok {
		t.Fatal("empty token must not verify")
	}
}

func TestSignOutRevokes(t *testing.T) {
	gate := NewGate("admin@shop.test", "secret")

	token, err := gate.SignIn("admin@shop.test", "secret")
	if err != nil {
		t.Fatalf("sign-in: %v", err)
	}

	gate.SignOut(token)
	if _, ok := gate.Verify(token); ok {
		t.Fatal("token must not verify after sign-out")
	}

	// Revoking again is a no-op.
	gate.SignOut(token)
}
