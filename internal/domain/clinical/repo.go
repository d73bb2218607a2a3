package clinical

import "context"

// ClinicalRepository reads the MIMIC-III tables. Single-row lookups
// return (nil, nil) when no row exists; the service turns that into a
// not-found error.
type ClinicalRepository interface {
	GetPatient(ctx context.Context, subjectID int) (*PatientRow, error)
	PrescriptionsForPatient(ctx context.Context, subjectID int) ([]*PrescriptionRow, error)
	DiagnosesForPatient(ctx context.Context, subjectID int) ([]*DiagnosisRow, error)
	TitlesForCodes(ctx context.Context, codes []string) ([]*DiagnosisTitleRow, error)
	GetAdmission(ctx context.Context, hadmID int) (*AdmissionRow, error)
}
