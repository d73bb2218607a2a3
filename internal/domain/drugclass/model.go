package drugclass

// DrugClass is one row of bnf_drug_classes. bnf_order is the position of
// the class in the BNF chapter hierarchy.
type DrugClass struct {
	DrugName string  `db:"drug_name" json:"drug_name"`
	BNFOrder *string `db:"bnf_order" json:"bnf_order"`
	Title    *string `db:"title" json:"title"`
}
