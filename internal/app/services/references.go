package services

import (
	"context"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
)

// references verifies optional foreign keys before a write reaches the store
type references struct {
	departments   LookupStore[models.Department]
	researchAreas LookupStore[models.ResearchArea]
}

// department checks an optional department reference
func (r references) department(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	exists, err := r.departments.Exists(ctx, *id)
	return requireExists("check department", exists, err, apperrors.ErrInvalidDepartmentID)
}

// departmentPatch checks a department reference assigned by a patch
func (r references) departmentPatch(ctx context.Context, n models.Nullable[int64]) error {
	if !n.Set {
		return nil
	}
	return r.department(ctx, n.Value)
}

// areas checks that every research area id exists
func (r references) areas(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	missing, err := r.researchAreas.MissingIDs(ctx, ids)
	if err != nil {
		return storeError("check research areas", err)
	}
	if len(missing) > 0 {
		return apperrors.ErrInvalidResearchAreaID
	}
	return nil
}

// emailTaken reports whether email belongs to a record other than self.
// self is 0 for records that do not exist yet.
func emailTaken(ctx context.Context, lookup func(context.Context, string) (int64, error), email string, self int64) error {
	owner, err := lookup(ctx, email)
	if err != nil {
		return storeError("check email", err)
	}
	if owner != 0 && owner != self {
		return apperrors.ErrEmailAlreadyRegistered
	}
	return nil
}
