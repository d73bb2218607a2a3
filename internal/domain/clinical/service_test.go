package clinical

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hannahwhyatt/ddi-api/internal/platform/httpx"
)

// -- Mock Repository --

type mockClinicalRepo struct {
	patients      map[int]*PatientRow
	prescriptions map[int][]*PrescriptionRow
	diagnoses     map[int][]*DiagnosisRow
	titles        map[string]*DiagnosisTitleRow
	admissions    map[int]*AdmissionRow
}

func newMockClinicalRepo() *mockClinicalRepo {
	return &mockClinicalRepo{
		patients:      make(map[int]*PatientRow),
		prescriptions: make(map[int][]*PrescriptionRow),
		diagnoses:     make(map[int][]*DiagnosisRow),
		titles:        make(map[string]*DiagnosisTitleRow),
		admissions:    make(map[int]*AdmissionRow),
	}
}

func (m *mockClinicalRepo) GetPatient(_ context.Context, subjectID int) (*PatientRow, error) {
	return m.patients[subjectID], nil
}

func (m *mockClinicalRepo) PrescriptionsForPatient(_ context.Context, subjectID int) ([]*PrescriptionRow, error) {
	return m.prescriptions[subjectID], nil
}

func (m *mockClinicalRepo) DiagnosesForPatient(_ context.Context, subjectID int) ([]*DiagnosisRow, error) {
	return m.diagnoses[subjectID], nil
}

func (m *mockClinicalRepo) TitlesForCodes(_ context.Context, codes []string) ([]*DiagnosisTitleRow, error) {
	var out []*DiagnosisTitleRow
	for _, code := range codes {
		if t, ok := m.titles[code]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockClinicalRepo) GetAdmission(_ context.Context, hadmID int) (*AdmissionRow, error) {
	return m.admissions[hadmID], nil
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func newTestService(repo ClinicalRepository, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

// -- Tests --

func TestPortfolio(t *testing.T) {
	repo := newMockClinicalRepo()
	repo.patients[42] = &PatientRow{SubjectID: 42, Gender: strptr("F"), DOB: strptr("1950-06-15 00:00:00")}
	repo.prescriptions[42] = []*PrescriptionRow{
		{Drug: strptr("Warfarin"), Route: strptr("PO"), DoseValRx: nil},
	}
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	got, err := svc.Portfolio(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if got.PatientID != 42 || got.PatientGender != "F" {
		t.Fatalf("unexpected demographics: %+v", got)
	}
	// 27028 days elapsed, 365-day years
	if got.PatientAge != 74 {
		t.Errorf("expected age 74, got %d", got.PatientAge)
	}
	if len(got.Prescriptions) != 1 {
		t.Fatalf("expected 1 prescription, got %d", len(got.Prescriptions))
	}
	if got.Prescriptions[0].DoseValRx != "" {
		t.Error("NULL columns must coerce to empty strings")
	}
	if got.Prescriptions[0].Drug != "Warfarin" {
		t.Errorf("unexpected prescription: %+v", got.Prescriptions[0])
	}
}

func TestPortfolio_PatientNotFound(t *testing.T) {
	svc := newTestService(newMockClinicalRepo(), time.Now())

	_, err := svc.Portfolio(context.Background(), 99)
	var nf *httpx.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Kind != "Patient" || nf.ID != "99" {
		t.Errorf("unexpected error details: %+v", nf)
	}
}

func TestPortfolio_NoPrescriptionsIsEmptySlice(t *testing.T) {
	repo := newMockClinicalRepo()
	repo.patients[42] = &PatientRow{SubjectID: 42, Gender: strptr("M"), DOB: strptr("1950-06-15 00:00:00")}
	svc := newTestService(repo, time.Now())

	got, err := svc.Portfolio(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if got.Prescriptions == nil || len(got.Prescriptions) != 0 {
		t.Fatalf("expected empty initialized slice, got %v", got.Prescriptions)
	}
}

func TestDiagnoses(t *testing.T) {
	repo := newMockClinicalRepo()
	repo.patients[42] = &PatientRow{SubjectID: 42}
	repo.diagnoses[42] = []*DiagnosisRow{
		{ICD9Code: strptr("4280"), HadmID: intptr(100)},
		{ICD9Code: strptr("4280"), HadmID: intptr(100)},
		{ICD9Code: strptr("4280"), HadmID: intptr(101)},
		{ICD9Code: strptr("5849"), HadmID: nil},
	}
	repo.titles["4280"] = &DiagnosisTitleRow{ICD9Code: "4280", ShortTitle: strptr("CHF NOS"), LongTitle: strptr("Congestive heart failure, unspecified")}
	svc := newTestService(repo, time.Now())

	got, err := svc.Diagnoses(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct codes, got %d", len(got))
	}
	if got[0].ICD9Code != "4280" || got[1].ICD9Code != "5849" {
		t.Fatalf("codes must keep first-seen order: %v", got)
	}
	if len(got[0].HadmIDs) != 2 || got[0].HadmIDs[0] != 100 || got[0].HadmIDs[1] != 101 {
		t.Errorf("admission IDs must be distinct in first-seen order: %v", got[0].HadmIDs)
	}
	if got[1].ShortTitle != "Unknown" || got[1].LongTitle != "Unknown" {
		t.Errorf("missing dictionary entries must default to Unknown: %+v", got[1])
	}
	if len(got[1].HadmIDs) != 0 {
		t.Errorf("nil admission IDs must be skipped: %v", got[1].HadmIDs)
	}
}

func TestDiagnoses_PatientNotFound(t *testing.T) {
	svc := newTestService(newMockClinicalRepo(), time.Now())

	_, err := svc.Diagnoses(context.Background(), 99)
	var nf *httpx.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestAdmission(t *testing.T) {
	repo := newMockClinicalRepo()
	repo.admissions[100] = &AdmissionRow{
		HadmID:    100,
		AdmitTime: strptr("2150-01-01 10:00:00"),
		DischTime: nil,
		Diagnosis: strptr("SEPSIS"),
	}
	svc := newTestService(repo, time.Now())

	got, err := svc.Admission(context.Background(), 100)
	if err != nil {
		t.Fatal(err)
	}
	if got.HadmID != 100 || got.Diagnosis != "SEPSIS" {
		t.Fatalf("unexpected admission: %+v", got)
	}
	if got.DischargeTime != "" {
		t.Error("NULL discharge time must coerce to empty string")
	}
}

func TestAdmission_NotFound(t *testing.T) {
	svc := newTestService(newMockClinicalRepo(), time.Now())

	_, err := svc.Admission(context.Background(), 7)
	var nf *httpx.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Error() != "Admission with ID 7 not found" {
		t.Errorf("unexpected message: %q", nf.Error())
	}
}
