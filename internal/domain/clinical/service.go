package clinical

import (
	"context"
	"strconv"
	"time"

	"github.com/hannahwhyatt/ddi-api/internal/platform/httpx"
)

type Service struct {
	repo ClinicalRepository
	now  func() time.Time
}

func NewService(repo ClinicalRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Portfolio assembles a patient's demographics and prescription history.
// Age counts whole 365-day years since the recorded date of birth.
func (s *Service) Portfolio(ctx context.Context, patientID int) (*Portfolio, error) {
	patient, err := s.repo.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, httpx.NotFound("Patient", strconv.Itoa(patientID))
	}

	dob, err := time.Parse(dobLayout, deref(patient.DOB))
	if err != nil {
		return nil, err
	}
	days := int(s.now().Sub(dob).Hours()) / 24
	age := days / 365

	rows, err := s.repo.PrescriptionsForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	prescriptions := make([]Prescription, 0, len(rows))
	for _, p := range rows {
		prescriptions = append(prescriptions, Prescription{
			StartDate:       deref(p.StartDate),
			EndDate:         deref(p.EndDate),
			Drug:            deref(p.Drug),
			DrugNameGeneric: deref(p.DrugNameGeneric),
			FormularyDrugCD: deref(p.FormularyDrugCD),
			DoseValRx:       deref(p.DoseValRx),
			DoseUnitRx:      deref(p.DoseUnitRx),
			Route:           deref(p.Route),
		})
	}

	return &Portfolio{
		PatientID:     patientID,
		PatientGender: deref(patient.Gender),
		PatientAge:    age,
		PatientDOB:    deref(patient.DOB),
		Prescriptions: prescriptions,
	}, nil
}

// Diagnoses lists a patient's distinct ICD-9 diagnoses, each with its
// dictionary titles and the admissions it was recorded under. Codes keep
// first-seen order; codes missing from the dictionary get "Unknown"
// titles.
func (s *Service) Diagnoses(ctx context.Context, patientID int) ([]Diagnosis, error) {
	patient, err := s.repo.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, httpx.NotFound("Patient", strconv.Itoa(patientID))
	}

	rows, err := s.repo.DiagnosesForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	var codes []string
	hadmIDs := make(map[string][]int)
	for _, d := range rows {
		if d.ICD9Code == nil {
			continue
		}
		code := *d.ICD9Code
		if _, seen := hadmIDs[code]; !seen {
			codes = append(codes, code)
			hadmIDs[code] = []int{}
		}
		if d.HadmID == nil || *d.HadmID == 0 {
			continue
		}
		if !containsInt(hadmIDs[code], *d.HadmID) {
			hadmIDs[code] = append(hadmIDs[code], *d.HadmID)
		}
	}

	titleRows, err := s.repo.TitlesForCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]*DiagnosisTitleRow, len(titleRows))
	for _, t := range titleRows {
		titles[t.ICD9Code] = t
	}

	result := make([]Diagnosis, 0, len(codes))
	for _, code := range codes {
		d := Diagnosis{ICD9Code: code, ShortTitle: "Unknown", LongTitle: "Unknown", HadmIDs: hadmIDs[code]}
		if t, ok := titles[code]; ok {
			d.ShortTitle = deref(t.ShortTitle)
			d.LongTitle = deref(t.LongTitle)
		}
		result = append(result, d)
	}
	return result, nil
}

func (s *Service) Admission(ctx context.Context, hadmID int) (*Admission, error) {
	row, err := s.repo.GetAdmission(ctx, hadmID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, httpx.NotFound("Admission", strconv.Itoa(hadmID))
	}
	return &Admission{
		HadmID:        row.HadmID,
		AdmissionTime: deref(row.AdmitTime),
		DischargeTime: deref(row.DischTime),
		Diagnosis:     deref(row.Diagnosis),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
