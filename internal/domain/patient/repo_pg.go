package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, name, age, gender, disease, antecedent, diagnostic,
	medicaments, treatment_plan, vaccination_date, allergies, test_results,
	created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (
			id, name, age, gender, disease, antecedent, diagnostic,
			medicaments, treatment_plan, vaccination_date, allergies, test_results
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		p.ID, p.Name, p.Age, p.Gender, p.Disease, p.Antecedent, p.Diagnostic,
		p.Medicaments, p.TreatmentPlan, p.VaccinationDate, p.Allergies, p.TestResults,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

// List returns all patients in insertion order.
func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := []*Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

// Update overwrites every field of the record (full replace).
func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET
			name = $2, age = $3, gender = $4, disease = $5, antecedent = $6,
			diagnostic = $7, medicaments = $8, treatment_plan = $9,
			vaccination_date = $10, allergies = $11, test_results = $12,
			updated_at = NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Age, p.Gender, p.Disease, p.Antecedent,
		p.Diagnostic, p.Medicaments, p.TreatmentPlan,
		p.VaccinationDate, p.Allergies, p.TestResults,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	p := &Patient{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Age, &p.Gender, &p.Disease, &p.Antecedent,
		&p.Diagnostic, &p.Medicaments, &p.TreatmentPlan, &p.VaccinationDate,
		&p.Allergies, &p.TestResults, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
