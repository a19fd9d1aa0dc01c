package network

import "testing"

func TestUid(t *testing.T) {
	a, b := NewUid(), NewUid()
	if a == b {
		t.Errorf("duplicate ids %v", a)
	}
	if !ValidUid(a) {
		t.Errorf("%v is not valid", a)
	}

	tests := []struct {
		uid   Uid
		valid bool
		short string
	}{
		{uid: EmptyUid, short: ""},
		{uid: "abc", short: "abc"},
		{uid: "0b8c2e64-6c2d-4f6f-9b55-6a5bd02e5f1e", valid: true, short: "0b8.f1e"},
	}
	for _, test := range tests {
		if v := ValidUid(test.uid); v != test.valid {
			t.Errorf("ValidUid(%q) = %v", test.uid, v)
		}
		if s := test.uid.Short(); s != test.short {
			t.Errorf("Short(%q) = %q, want %q", test.uid, s, test.short)
		}
	}
}
