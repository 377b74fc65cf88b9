package xaddr

import (
	"errors"
	"testing"
)

func FuzzParseIPAndPort(f *testing.F) {
	f.Add("")
	f.Add("80")
	f.Add("127.0.0.1")
	f.Add("127.0.0.1:9000")
	f.Add("[::1]:9000")
	f.Add("::1")
	f.Add("[::ffff:10.0.0.1]:53")
	f.Add("127.0.0.1:99999")
	f.Add("localhost:80")

	f.Fuzz(func(t *testing.T, s string) {
		hp, err := ParseIPAndPort(s)
		if err != nil {
			var ae *AddressError
			if !errors.As(err, &ae) || !errors.Is(err, ErrInvalidAddress) {
				t.Fatalf("ParseIPAndPort(%q) returned untyped error %v", s, err)
			}
			if ae.Input != s {
				t.Fatalf("AddressError.Input = %q, want %q", ae.Input, s)
			}
			return
		}
		if !IsValidIPv4(hp.Host) && !IsValidIPv6(hp.Host) {
			t.Fatalf("ParseIPAndPort(%q) produced unvalidated host %q", s, hp.Host)
		}
		if _, ok := hp.AddrPort(); !ok {
			t.Fatalf("AddrPort failed for %+v (from %q)", hp, s)
		}
		again, err := ParseIPAndPort(hp.String())
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v (from %q)", hp.String(), err, s)
		}
		if again != hp {
			t.Errorf("round-trip mismatch: %q → %+v → %+v", s, hp, again)
		}
	})
}

func FuzzParseAddress(f *testing.F) {
	f.Add("/tmp/app.sock")
	f.Add("127.0.0.1:80")
	f.Add("a/b")

	f.Fuzz(func(t *testing.T, s string) {
		spec, err := ParseAddress(s)
		if err != nil {
			if !errors.Is(err, ErrInvalidAddress) {
				t.Fatalf("ParseAddress(%q) returned untyped error %v", s, err)
			}
			return
		}
		back, err := WireSpecFrom(spec).ToSpec()
		if err != nil {
			t.Fatalf("wire round-trip of %q failed: %v", s, err)
		}
		if back != spec {
			t.Errorf("wire round-trip mismatch: %v → %v", spec, back)
		}
	})
}
