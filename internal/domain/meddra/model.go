package meddra

// Mapping is one row of the pt_to_hlt_or_hlgt concept-ancestor table. The
// HLGT class marker selects the tier used for label resolution.
type Mapping struct {
	Descendant    string `db:"descendant_concept_name" json:"descendant_concept_name"`
	Ancestor      string `db:"ancestor_concept_name" json:"ancestor_concept_name"`
	AncestorClass string `db:"ancestor_concept_class_id" json:"ancestor_concept_class_id"`
}

const ancestorClassHLGT = "HLGT"
