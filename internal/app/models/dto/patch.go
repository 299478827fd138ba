package dto

import (
	"fmt"
	"time"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/validation"
)

// patchErrors collects the first problem found while converting an update request
type patchErrors struct {
	err error
}

func (p *patchErrors) fail(format string, args ...any) {
	if p.err == nil {
		p.err = apperrors.NewValidationError(fmt.Sprintf(format, args...))
	}
}

// required converts a field whose column is NOT NULL; a present null is rejected
func required[T any](p *patchErrors, field string, o Optional[T]) *T {
	if !o.Set {
		return nil
	}
	if o.Value == nil {
		p.fail("%s cannot be null", field)
		return nil
	}
	return o.Value
}

// nonEmpty is required for text columns that must not be blank
func nonEmpty(p *patchErrors, field string, o Optional[string]) *string {
	v := required(p, field, o)
	if v != nil && *v == "" {
		p.fail("%s cannot be empty", field)
		return nil
	}
	return v
}

// email is nonEmpty with an address format check
func email(p *patchErrors, o Optional[string]) *string {
	v := nonEmpty(p, "email", o)
	if v != nil && !validation.IsEmail(*v) {
		p.fail("email must be a valid email address")
		return nil
	}
	return v
}

func nullable[T any](o Optional[T]) models.Nullable[T] {
	return models.Nullable[T]{Set: o.Set, Value: o.Value}
}

// reference converts a nullable foreign key, rejecting non-positive ids
func reference(p *patchErrors, field string, o Optional[int64]) models.Nullable[int64] {
	if o.Set && o.Value != nil && *o.Value <= 0 {
		p.fail("%s must be a positive integer", field)
	}
	return nullable(o)
}

func requiredDate(p *patchErrors, field string, o Optional[Date]) *time.Time {
	d := required(p, field, o)
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func nullableDate(o Optional[Date]) models.Nullable[time.Time] {
	if !o.Set || o.Value == nil {
		return models.Nullable[time.Time]{Set: o.Set}
	}
	return models.Assign(o.Value.Time)
}

func areaIDs(p *patchErrors, o Optional[[]int64]) *[]int64 {
	if !o.Set {
		return nil
	}
	ids := []int64{}
	if o.Value != nil {
		ids = *o.Value
	}
	for _, id := range ids {
		if id <= 0 {
			p.fail("research_areas must contain positive integers")
			return nil
		}
	}
	return &ids
}
