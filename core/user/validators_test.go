package user

import (
	"testing"

	"github.com/mentoralabs/mentora/core"
)

func validNewUser() NewUser {
	return NewUser{
		Name:            "Awe Mata",
		Username:        "awemata",
		Email:           "awe@test.cd",
		Password:        "G0od#Pass",
		PasswordConfirm: "G0od#Pass",
	}
}

func TestNewUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(nu *NewUser)
		wantFld string
	}{
		{name: "valid", mutate: func(nu *NewUser) {}},
		{name: "missing name", mutate: func(nu *NewUser) { nu.Name = "" }, wantFld: "name"},
		{name: "short username", mutate: func(nu *NewUser) { nu.Username = "abc" }, wantFld: "username"},
		{name: "bad username chars", mutate: func(nu *NewUser) { nu.Username = "awe@mata!" }, wantFld: "username"},
		{name: "bad email", mutate: func(nu *NewUser) { nu.Email = "lol" }, wantFld: "email"},
		{name: "password mismatch", mutate: func(nu *NewUser) { nu.PasswordConfirm = "Other#Pass1" }, wantFld: "password_confirm"},
		{name: "password too short", mutate: func(nu *NewUser) { nu.Password = "G0#d"; nu.PasswordConfirm = "G0#d" }, wantFld: "password"},
		{name: "password has space", mutate: func(nu *NewUser) { nu.Password = "G0od #Pass"; nu.PasswordConfirm = "G0od #Pass" }, wantFld: "password"},
		{name: "password all numeric", mutate: func(nu *NewUser) { nu.Password = "123456789"; nu.PasswordConfirm = "123456789" }, wantFld: "password"},
		{name: "password no complexity", mutate: func(nu *NewUser) { nu.Password = "goodpassword"; nu.PasswordConfirm = "goodpassword" }, wantFld: "password"},
		{name: "password similar to username", mutate: func(nu *NewUser) { nu.Password = "Awemata#1"; nu.PasswordConfirm = "Awemata#1" }, wantFld: "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nu := validNewUser()
			tt.mutate(&nu)

			err := nu.Validate()
			if tt.wantFld == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v, want *core.ValidationError", err)
			}
			for _, f := range vErr.Fields {
				if f.Field == tt.wantFld {
					return
				}
			}
			t.Errorf("Validate() fields = %v, want an error on %q", vErr.Fields, tt.wantFld)
		})
	}
}

func TestNewUser_Validate_cleansInput(t *testing.T) {
	nu := validNewUser()
	nu.Username = "  AweMata "
	nu.Email = " AWE@Test.CD "
	if err := nu.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if nu.Username != "awemata" {
		t.Errorf("Username = %q, want %q", nu.Username, "awemata")
	}
	if nu.Email != "awe@test.cd" {
		t.Errorf("Email = %q, want %q", nu.Email, "awe@test.cd")
	}
}
