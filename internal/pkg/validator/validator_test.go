package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("12345") {
		t.Error("IsNumeric(\"12345\") = false, want true")
	}
	for _, s := range []string{"", "12a45", "12.45", "-1"} {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-09"); !ok {
		t.Error("IsValidDate(\"2025-06-09\") = false, want true")
	}
	for _, s := range []string{"09-06-2025", "2025-13-01", "2025-06-32", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "password", Message: "is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["email"] != "must be a valid email address" {
		t.Errorf("ToMap()[\"email\"] = %q", m["email"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
