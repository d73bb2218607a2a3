package clinical

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hannahwhyatt/ddi-api/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type clinicalRepoPG struct{ pool *pgxpool.Pool }

func NewClinicalRepoPG(pool *pgxpool.Pool) ClinicalRepository {
	return &clinicalRepoPG{pool: pool}
}

func (r *clinicalRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *clinicalRepoPG) GetPatient(ctx context.Context, subjectID int) (*PatientRow, error) {
	var p PatientRow
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT "SUBJECT_ID", "GENDER", "DOB"
		FROM patients
		WHERE "SUBJECT_ID" = $1`, subjectID).Scan(&p.SubjectID, &p.Gender, &p.DOB)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *clinicalRepoPG) PrescriptionsForPatient(ctx context.Context, subjectID int) ([]*PrescriptionRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT "STARTDATE", "ENDDATE", "DRUG", "DRUG_NAME_GENERIC",
			"FORMULARY_DRUG_CD", "DOSE_VAL_RX", "DOSE_UNIT_RX", "ROUTE"
		FROM prescriptions
		WHERE "SUBJECT_ID" = $1`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PrescriptionRow
	for rows.Next() {
		var p PrescriptionRow
		if err := rows.Scan(&p.StartDate, &p.EndDate, &p.Drug, &p.DrugNameGeneric,
			&p.FormularyDrugCD, &p.DoseValRx, &p.DoseUnitRx, &p.Route); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *clinicalRepoPG) DiagnosesForPatient(ctx context.Context, subjectID int) ([]*DiagnosisRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT "HADM_ID", "ICD9_CODE"
		FROM diagnoses
		WHERE "SUBJECT_ID" = $1`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DiagnosisRow
	for rows.Next() {
		var d DiagnosisRow
		if err := rows.Scan(&d.HadmID, &d.ICD9Code); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *clinicalRepoPG) TitlesForCodes(ctx context.Context, codes []string) ([]*DiagnosisTitleRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT "ICD9_CODE", "SHORT_TITLE", "LONG_TITLE"
		FROM d_icd
		WHERE "ICD9_CODE" = ANY($1)`, codes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DiagnosisTitleRow
	for rows.Next() {
		var t DiagnosisTitleRow
		if err := rows.Scan(&t.ICD9Code, &t.ShortTitle, &t.LongTitle); err != nil {
			return nil, err
		}
		items = append(items, &t)
	}
	return items, rows.Err()
}

func (r *clinicalRepoPG) GetAdmission(ctx context.Context, hadmID int) (*AdmissionRow, error) {
	var a AdmissionRow
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT "HADM_ID", "ADMITTIME", "DISCHTIME", "DIAGNOSIS"
		FROM admissions
		WHERE "HADM_ID" = $1`, hadmID).Scan(&a.HadmID, &a.AdmitTime, &a.DischTime, &a.Diagnosis)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
