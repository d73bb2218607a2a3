package interaction

// Interaction is one row of all_drug_drug_interactions. Pairs are stored
// once in arbitrary orientation; queries check both sides.
type Interaction struct {
	DrugA        string  `db:"drug_a_concept_name" json:"drug_a_concept_name"`
	DrugB        string  `db:"drug_b_concept_name" json:"drug_b_concept_name"`
	Event        string  `db:"event_concept_name" json:"event_concept_name"`
	SeverityBNF  *string `db:"severity_bnf" json:"severity_bnf"`
	SeverityANSM string  `db:"severity_ansm" json:"severity_ansm"`
	SeverityCode int     `db:"severity_code" json:"severity_code"`
	Evidence     *string `db:"evidence" json:"evidence"`
	Description  string  `db:"description" json:"description"`
}
