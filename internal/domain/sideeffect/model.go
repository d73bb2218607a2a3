package sideeffect

// SideEffect is one row of single_drug_positive_controls, restricted to
// the columns the API exposes.
type SideEffect struct {
	DrugConceptName  string  `db:"drug_concept_name" json:"drug_concept_name"`
	EventConceptName *string `db:"event_concept_name" json:"event_concept_name"`
	Frequency        *string `db:"frequency" json:"frequency"`
	Source           *string `db:"source" json:"source"`
}

// Rows carrying this frequency are interaction artifacts, not single-drug
// observations, and are excluded from listings.
const interactionEffectFrequency = "Not reported (Interaction Effect)"

const sourceBNF = "BNF"
