package indication

// Indication is one drug-to-condition row of sider_drug_indications.
type Indication struct {
	DrugConceptName  *string `db:"drug_concept_name" json:"drug_concept_name"`
	EventConceptName *string `db:"event_concept_name" json:"event_concept_name"`
}

// AlternativeDrug is one qualifying drug from an alternative search.
type AlternativeDrug struct {
	DrugConceptName string `json:"drug_concept_name"`
}

// The mapping source records 'Sudden death' as an indication for a number
// of drugs; it is an adverse event mislabeled upstream and is excluded
// everywhere.
const excludedIndication = "Sudden death"
