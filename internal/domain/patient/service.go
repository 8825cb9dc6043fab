package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/caredesk/caredesk/internal/platform/apperr"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// validate checks that every record field is present. Presence means the
// field was supplied, not that it is truthy: age 0 is a legitimate value and
// only an absent age is rejected.
func validate(in Input) error {
	if in.Name == "" || in.Gender == "" || in.Disease == "" ||
		in.Antecedent == "" || in.Diagnostic == "" || in.Medicaments == "" ||
		in.TreatmentPlan == "" || in.VaccinationDate == "" ||
		in.Allergies == "" || in.TestResults == "" || in.Age == nil {
		return apperr.Validation("all fields are required")
	}
	return nil
}

func fromInput(in Input) *Patient {
	return &Patient{
		Name:            in.Name,
		Age:             *in.Age,
		Gender:          in.Gender,
		Disease:         in.Disease,
		Antecedent:      in.Antecedent,
		Diagnostic:      in.Diagnostic,
		Medicaments:     in.Medicaments,
		TreatmentPlan:   in.TreatmentPlan,
		VaccinationDate: in.VaccinationDate,
		Allergies:       in.Allergies,
		TestResults:     in.TestResults,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*Patient, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	p := fromInput(in)
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("patient not found")
		}
		return nil, apperr.Storage(err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return patients, nil
}

// Update replaces every field of the record with the supplied values. The
// same presence rules as Create apply; partial updates are not supported.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*Patient, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	p := fromInput(in)
	p.ID = id
	if err := s.patients.Update(ctx, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("patient not found")
		}
		return nil, apperr.Storage(err)
	}
	// Re-read so the caller sees stored timestamps.
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("patient not found")
		}
		return apperr.Storage(err)
	}
	return nil
}
