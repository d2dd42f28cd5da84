package schema

import "testing"

func TestParseTypeRef(t *testing.T) {
	tests := []struct {
		in   string
		want TypeRef
	}{
		{"Int", Ref("Int")},
		{"Address?", OptionalRef("Address")},
		{"void", Void()},
		{"null", TypeRef{Kind: RefNull}},
		{"map<Int, Address>", MapOf("Int", "Address")},
		{"map<Int,Bool>", MapOf("Int", "Bool")},
		{"bounced<Transfer>", BouncedRef("Transfer")},
		{"  Counter_2 ", Ref("Counter_2")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTypeRef(tt.in)
			if err != nil {
				t.Fatalf("ParseTypeRef(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTypeRef(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTypeRef_Invalid(t *testing.T) {
	for _, in := range []string{"", "map<Int>", "map<, Int>", "bounced<>", "1Int", "Int??", "a-b"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseTypeRef(in); err == nil {
				t.Errorf("ParseTypeRef(%q) expected error", in)
			}
		})
	}
}

func TestTypeRef_StringRoundTrip(t *testing.T) {
	refs := []TypeRef{Ref("Int"), OptionalRef("Cell"), MapOf("Address", "Int"), Void(), BouncedRef("Deposit")}
	for _, r := range refs {
		got, err := ParseTypeRef(r.String())
		if err != nil {
			t.Fatalf("ParseTypeRef(%q): %v", r.String(), err)
		}
		if got != r {
			t.Errorf("round trip of %q = %+v", r.String(), got)
		}
	}
}
