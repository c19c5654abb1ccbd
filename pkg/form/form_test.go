package form

import "testing"

func TestCheckStrengthLevels(t *testing.T) {
	cases := []struct {
		password string
		score    int
		label    string
	}{
		{"abc", 1, "Weak"},
		{"abcdefgh", 2, "Fair"},
		{"Abcdefgh", 3, "Good"},
		{"Abcdefg1", 4, "Strong"},
		{"Abcdefg1!", 5, "Very Strong"},
	}
	for _, tc := range cases {
		got := CheckStrength(tc.password)
		if got.Score != tc.score || got.Label != tc.label {
			t.Fatalf("%q: expected %d/%s, got %d/%s", tc.password, tc.score, tc.label, got.Score, got.Label)
		}
	}
}

func TestCheckStrengthEmpty(t *testing.T) {
	got := CheckStrength("")
	if got.Tone != ToneSecondary || got.Label != "Enter a password" {
		t.Fatalf("unexpected empty result: %+v", got)
	}
}

func TestCheckStrengthReportsMissing(t *testing.T) {
	got := CheckStrength("abc")
	want := map[string]bool{
		"at least 8 characters": true,
		"uppercase letters":     true,
		"numbers":               true,
		"special characters":    true,
	}
	if len(got.Missing) != len(want) {
		t.Fatalf("unexpected missing list: %v", got.Missing)
	}
	for _, m := range got.Missing {
		if !want[m] {
			t.Fatalf("unexpected missing item: %s", m)
		}
	}
}

func TestErrorsSetAndClear(t *testing.T) {
	errs := Errors{}
	errs.Set("email", Email("not-an-address"))
	if errs.Valid() {
		t.Fatal("expected invalid form")
	}

	errs.Set("email", Email("thandi@example.com"))
	if !errs.Valid() {
		t.Fatalf("expected marker cleared, got %v", errs)
	}
}

func TestEmailShapes(t *testing.T) {
	if Email("thandi@example.com") != "" {
		t.Fatal("valid address rejected")
	}
	for _, bad := range []string{"plain", "a@b", "a b@c.com"} {
		if Email(bad) == "" {
			t.Fatalf("accepted invalid address %q", bad)
		}
	}
	if Email("") != "" {
		t.Fatal("empty value is not an email error; use Required")
	}
}

func TestPhoneShapes(t *testing.T) {
	for _, ok := range []string{"+27 11 555 0199", "(011) 555-0199", "0115550199"} {
		if Phone(ok) != "" {
			t.Fatalf("rejected valid number %q", ok)
		}
	}
	if Phone("call me") == "" {
		t.Fatal("accepted invalid number")
	}
}

func TestUploadRules(t *testing.T) {
	if msg := Upload("policy.pdf", 1024); msg != "" {
		t.Fatalf("rejected allowed upload: %s", msg)
	}
	if msg := Upload("script.exe", 1024); msg == "" {
		t.Fatal("accepted disallowed extension")
	}
	if msg := Upload("noextension", 1024); msg == "" {
		t.Fatal("accepted extensionless file")
	}
	if msg := Upload("big.pdf", MaxUploadSize+1); msg == "" {
		t.Fatal("accepted oversized file")
	}
}

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 Bytes"},
		{512, "512.00 Bytes"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
	}
	for _, tc := range cases {
		if got := FormatFileSize(tc.size); got != tc.want {
			t.Fatalf("%d: expected %q, got %q", tc.size, tc.want, got)
		}
	}
}
