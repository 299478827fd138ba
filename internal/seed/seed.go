package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/researchdesk/internal/app/models"
	appRepos "github.com/yigit/researchdesk/internal/app/repositories"
)

// Default lookup entries created on startup when seeding is enabled
var (
	DefaultDepartments = []string{
		"Computer Science",
		"Electrical Engineering",
		"Mathematics",
		"Physics",
	}

	DefaultJournals = []string{
		"Communications of the ACM",
		"IEEE Transactions on Software Engineering",
		"Journal of Machine Learning Research",
		"Nature",
	}

	DefaultResearchAreas = []string{
		"Artificial Intelligence",
		"Databases",
		"Distributed Systems",
		"Machine Learning",
		"Theory of Computation",
	}
)

// nameStore is the part of a lookup repository seeding needs
type nameStore[T any] interface {
	GetByName(ctx context.Context, name string) (*T, error)
	Create(ctx context.Context, name string) (*T, error)
}

// ensureNames creates the entries of names that do not exist yet and reports how many it created
func ensureNames[T any](ctx context.Context, store nameStore[T], names []string) (int, error) {
	created := 0
	var errs error
	for _, name := range names {
		existing, err := store.GetByName(ctx, name)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("lookup %q: %w", name, err))
			continue
		}
		if existing != nil {
			continue
		}
		if _, err := store.Create(ctx, name); err != nil {
			errs = errors.Join(errs, fmt.Errorf("create %q: %w", name, err))
			continue
		}
		created++
	}
	return created, errs
}

// CreateDefaultData creates default departments, journals and research areas if they don't exist.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Departments/Journals/Research areas)...")
	var finalErr error // collects errors without stopping the process

	n, err := ensureNames[appModels.Department](ctx, repos.DepartmentRepository, DefaultDepartments)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default departments")
		finalErr = errors.Join(finalErr, err)
	}
	lgr.Info().Int("created", n).Msg("Default departments checked")

	n, err = ensureNames[appModels.Journal](ctx, repos.JournalRepository, DefaultJournals)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default journals")
		finalErr = errors.Join(finalErr, err)
	}
	lgr.Info().Int("created", n).Msg("Default journals checked")

	n, err = ensureNames[appModels.ResearchArea](ctx, repos.ResearchAreaRepository, DefaultResearchAreas)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default research areas")
		finalErr = errors.Join(finalErr, err)
	}
	lgr.Info().Int("created", n).Msg("Default research areas checked")

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
