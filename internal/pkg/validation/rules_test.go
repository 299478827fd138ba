package validation_test

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/researchdesk/internal/pkg/validation"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ada@x.edu", true},
		{"grace.hopper@navy.mil", true},
		{"", false},
		{"ada", false},
		{"ada@", false},
		{"@x.edu", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := validation.IsEmail(tt.in); got != tt.want {
				t.Errorf("IsEmail(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

type named struct {
	Name string `json:"name" binding:"notblank"`
}

func TestRegister(t *testing.T) {
	validation.Register()
	validation.Register()

	err := binding.Validator.ValidateStruct(&named{Name: " \t"})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 1 {
		t.Fatalf("want one validation error, got %v", err)
	}
	if verrs[0].Field() != "name" || verrs[0].Tag() != "notblank" {
		t.Errorf("field %q tag %q, want name/notblank", verrs[0].Field(), verrs[0].Tag())
	}

	if err := binding.Validator.ValidateStruct(&named{Name: "CS"}); err != nil {
		t.Errorf("unexpected error for a non-blank name: %v", err)
	}
}
