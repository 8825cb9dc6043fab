package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. The JSON field names follow the
// directory's established API contract.
type Patient struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Age             int       `db:"age" json:"age"`
	Gender          string    `db:"gender" json:"gender"`
	Disease         string    `db:"disease" json:"disease"`
	Antecedent      string    `db:"antecedent" json:"antecedent"`
	Diagnostic      string    `db:"diagnostic" json:"diagnostic"`
	Medicaments     string    `db:"medicaments" json:"medicaments"`
	TreatmentPlan   string    `db:"treatment_plan" json:"planTraitement"`
	VaccinationDate string    `db:"vaccination_date" json:"dateVaccination"`
	Allergies       string    `db:"allergies" json:"allergies"`
	TestResults     string    `db:"test_results" json:"resultatsTest"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Input carries the fields of a create or full-replace update request. Age is
// a pointer so an absent field is distinguishable from a legitimate zero.
type Input struct {
	Name            string `json:"name"`
	Age             *int   `json:"age"`
	Gender          string `json:"gender"`
	Disease         string `json:"disease"`
	Antecedent      string `json:"antecedent"`
	Diagnostic      string `json:"diagnostic"`
	Medicaments     string `json:"medicaments"`
	TreatmentPlan   string `json:"planTraitement"`
	VaccinationDate string `json:"dateVaccination"`
	Allergies       string `json:"allergies"`
	TestResults     string `json:"resultatsTest"`
}
