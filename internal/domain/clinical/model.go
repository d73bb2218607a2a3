package clinical

// Row types mirror the MIMIC-III tables, which store timestamps as text
// and leave most display columns nullable.

type PatientRow struct {
	SubjectID int     `db:"subject_id"`
	Gender    *string `db:"gender"`
	DOB       *string `db:"dob"`
}

type PrescriptionRow struct {
	StartDate       *string `db:"startdate"`
	EndDate         *string `db:"enddate"`
	Drug            *string `db:"drug"`
	DrugNameGeneric *string `db:"drug_name_generic"`
	FormularyDrugCD *string `db:"formulary_drug_cd"`
	DoseValRx       *string `db:"dose_val_rx"`
	DoseUnitRx      *string `db:"dose_unit_rx"`
	Route           *string `db:"route"`
}

type DiagnosisRow struct {
	HadmID   *int    `db:"hadm_id"`
	ICD9Code *string `db:"icd9_code"`
}

type DiagnosisTitleRow struct {
	ICD9Code   string  `db:"icd9_code"`
	ShortTitle *string `db:"short_title"`
	LongTitle  *string `db:"long_title"`
}

type AdmissionRow struct {
	HadmID    int     `db:"hadm_id"`
	AdmitTime *string `db:"admittime"`
	DischTime *string `db:"dischtime"`
	Diagnosis *string `db:"diagnosis"`
}

// Response shapes. Nullable columns are coerced to empty strings so
// clients always receive a full record.

type Prescription struct {
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Drug            string `json:"drug"`
	DrugNameGeneric string `json:"drug_name_generic"`
	FormularyDrugCD string `json:"formulary_drug_cd"`
	DoseValRx       string `json:"dose_val_rx"`
	DoseUnitRx      string `json:"dose_unit_rx"`
	Route           string `json:"route"`
}

type Portfolio struct {
	PatientID     int            `json:"patient_id"`
	PatientGender string         `json:"patient_gender"`
	PatientAge    int            `json:"patient_age"`
	PatientDOB    string         `json:"patient_dob"`
	Prescriptions []Prescription `json:"prescriptions"`
}

type Diagnosis struct {
	ICD9Code   string `json:"icd9_code"`
	ShortTitle string `json:"short_title"`
	LongTitle  string `json:"long_title"`
	HadmIDs    []int  `json:"hadm_ids"`
}

type Admission struct {
	HadmID        int    `json:"hadm_id"`
	AdmissionTime string `json:"admission_time"`
	DischargeTime string `json:"discharge_time"`
	Diagnosis     string `json:"diagnosis"`
}

// dobLayout is how MIMIC stores dates of birth.
const dobLayout = "2006-01-02 15:04:05"
