package signal

// WeightedRate is one row of barkla_weighted_rate. combined_rate already
// folds the background-rate adjustment in; ranking uses it directly.
type WeightedRate struct {
	SideEffect   string  `db:"side_effect" json:"side_effect"`
	DrugName     string  `db:"drug_name" json:"drug_name"`
	CombinedRate float64 `db:"combined_rate" json:"combined_rate"`
}

// OccurrenceRate is one row of faers_counts_2024.
type OccurrenceRate struct {
	DrugName        string  `db:"drug_name" json:"drug_name"`
	SideEffect      string  `db:"side_effect" json:"side_effect"`
	OccurrenceCount int     `db:"drug_side_effect_occurrence_count" json:"drug_side_effect_occurrence_count"`
	CaseCount       int     `db:"case_count_with_drug" json:"case_count_with_drug"`
	Rate            float64 `db:"rate" json:"rate"`
	WilsonInterval  float64 `db:"wilson_interval" json:"wilson_interval"`
}

// CulpritScore is a drug's share of the summed weighted rate for one side
// effect across a portfolio.
type CulpritScore struct {
	DrugName     string  `json:"drug_name"`
	CombinedRate float64 `json:"combined_rate"`
	Score        float64 `json:"score"`
}

// LikelySideEffect is one entry of the portfolio-level side-effect
// ranking.
type LikelySideEffect struct {
	SideEffect     string  `json:"side_effect"`
	TotalRate      float64 `json:"total_rate"`
	MostLikelyDrug string  `json:"most_likely_drug"`
}
