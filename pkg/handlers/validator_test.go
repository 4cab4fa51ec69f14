package handlers

import (
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func TestValidator(t *testing.T) {
	cases := []struct {
		name     string
		validate func() error
		expected string
	}{
		{
			name: "required nil",
			validate: func() error {
				v := &Validator{field: "username", value: nil}
				return v.Required()
			},
			expected: "username is required",
		},
		{
			name: "required present",
			validate: func() error {
				v := &Validator{field: "username", value: strPtr("ok")}
				return v.Required()
			},
		},
		{
			name: "empty",
			validate: func() error {
				v := &Validator{field: "password", value: strPtr("")}
				return v.Empty()
			},
			expected: "password cannot be blank",
		},
		{
			name: "min length",
			validate: func() error {
				v := &Validator{field: "username", value: strPtr("ab")}
				return v.MinLength(3)
			},
			expected: "username must be at least 3 characters long",
		},
		{
			name: "min length multibyte runes counted once",
			validate: func() error {
				v := &Validator{field: "username", value: strPtr("тест")}
				return v.MinLength(3)
			},
		},
		{
			name: "max length",
			validate: func() error {
				v := &Validator{field: "username", value: strPtr("very_long_username_over_limit")}
				return v.MaxLength(20)
			},
			expected: "username must be at most 20 characters long",
		},
	}

	for _, tc := range cases {
		err := tc.validate()
		if tc.expected == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err.Error())
			}
			continue
		}

		if err == nil || err.Error() != tc.expected {
			t.Fatalf("%s: expected %q, got %v", tc.name, tc.expected, err)
		}
	}
}
