package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.domain.org",
		"  padded@example.com  ",
		"UPPER@EXAMPLE.COM",
	}
	for _, v := range valid {
		if !IsValidEmail(v) {
			t.Errorf("expected %q to be a valid email", v)
		}
	}

	invalid := []string{"", "plain", "missing@tld", "@example.com", "user@.com"}
	for _, v := range invalid {
		if IsValidEmail(v) {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}

func TestIsValidPassportNumber(t *testing.T) {
	valid := []string{"N1234567", "AB123456", "n1234567", " P987654 ", "123456789012"}
	for _, v := range valid {
		if !IsValidPassportNumber(v) {
			t.Errorf("expected %q to be a valid passport number", v)
		}
	}

	invalid := []string{"", "12345", "TOOLONGPASSPORT99", "AB 12345", "AB-12345"}
	for _, v := range invalid {
		if IsValidPassportNumber(v) {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}

func TestIsValidCurrency(t *testing.T) {
	valid := []string{"USD", "AUD", "EUR", " GBP "}
	for _, v := range valid {
		if !IsValidCurrency(v) {
			t.Errorf("expected %q to be a valid currency", v)
		}
	}

	invalid := []string{"", "US", "USDT", "usd", "U$D"}
	for _, v := range invalid {
		if IsValidCurrency(v) {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}

func TestIsValidName(t *testing.T) {
	if !IsValidName("Ada") {
		t.Error("expected a short name to be valid")
	}
	if IsValidName("A") {
		t.Error("expected a one character name to be rejected")
	}
	if IsValidName("   ") {
		t.Error("expected whitespace to be rejected")
	}
}
