package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule limits shared by request DTOs
var (
	// NameMaxLength is the column width of first and last names
	NameMaxLength = 50

	// EmailMaxLength is the column width of email addresses
	EmailMaxLength = 100
)

var (
	registerOnce sync.Once
	standalone   = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	configure(v)
	return v
}

// configure adds the project rules to v and reports JSON field names in errors
func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("notblank", notBlank)
}

// Register installs the project rules on gin's binding validator. Safe to call repeatedly.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			configure(v)
		}
	})
}

// IsEmail reports whether s is a syntactically valid email address
func IsEmail(s string) bool {
	return standalone.Var(s, "required,email") == nil
}

// jsonFieldName names struct fields after their json tag
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// notBlank rejects strings made only of whitespace
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}
