package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"a@b.c", false},  // TLD shorter than 2 letters
		{"a@b", false},    // no TLD at all
		{"a@b.com", true},
		{"a@b.info", true},
		{"a@b.comm", true},     // 4-letter TLD still accepted
		{"a@b.museum", false},  // TLD longer than 4 letters
		{"john.doe+tag@sub.example.org", true},
		{"", false},
		{"@example.com", false},
		{"no-at-sign.com", false},
		{"a@b.co.uk", true}, // matches on the "co" label prefix
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.valid {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.valid)
		}
	}
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		inName   string
		email    string
		password string
		wantErr  string
	}{
		{"valid", "John", "john@example.com", "hunter2", ""},
		{"missing name", "", "john@example.com", "hunter2", "Name cannot be left blank"},
		{"blank name", "   ", "john@example.com", "hunter2", "Name cannot be left blank"},
		{"missing email", "John", "", "hunter2", "Email cannot be left blank"},
		{"blank email", "John", "  ", "hunter2", "Email cannot be left blank"},
		{"invalid email", "John", "not-an-email", "hunter2", "Email is not valid"},
		{"missing password", "John", "john@example.com", "", "Password cannot be left blank"},
		{"whitespace password allowed", "John", "john@example.com", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSignup(tt.inName, tt.email, tt.password)
			checkValidationError(t, err, tt.wantErr)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  string
	}{
		{"valid", "john@example.com", "hunter2", ""},
		{"missing email", "", "hunter2", "Email cannot be left blank"},
		{"invalid email", "a@b", "hunter2", "Email is not valid"},
		{"missing password", "john@example.com", "", "Password cannot be left blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.email, tt.password)
			checkValidationError(t, err, tt.wantErr)
		})
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		phone   string
		email   string
		wantErr string
	}{
		{"valid with email", "Amy", "+1 555 0100", "amy@example.com", ""},
		{"valid without email", "Amy", "+1 555 0100", "", ""},
		{"missing name", "", "+1 555 0100", "", "Name is required"},
		{"blank name", " ", "+1 555 0100", "", "Name is required"},
		{"missing phone", "Amy", "", "", "Phone is required"},
		{"blank phone", "Amy", "  ", "", "Phone is required"},
		{"bad email", "Amy", "+1 555 0100", "amy@", "Email is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContact(tt.inName, tt.phone, tt.email)
			checkValidationError(t, err, tt.wantErr)
		})
	}
}

func checkValidationError(t *testing.T, err error, want string) {
	t.Helper()
	if want == "" {
		if err != nil {
			t.Errorf("expected no error, got %q", err.Error())
		}
		return
	}
	if err == nil {
		t.Errorf("expected error %q, got nil", want)
		return
	}
	if err.Error() != want {
		t.Errorf("expected error %q, got %q", want, err.Error())
	}
}
