package scoring

// Response is the slice of a survey response the engine cares about: which
// question was answered and the score captured for the selected option.
type Response struct {
	QuestionID int
	Score      float64
}

// Mapping is one row of the question-to-category weighting table. A question
// may map into several categories with independent weights. IsExternal rows
// are scored like any other; the flag is surfaced in read views only.
type Mapping struct {
	QuestionID int
	CategoryID int
	Weight     float64
	IsExternal bool
}

// Compute derives per-category aggregate scores for one survey. Each response
// contributes response.Score * mapping.Weight to every category its question
// maps into. The result is a raw weighted sum per category; no normalization
// is applied. Responses whose question has no mapping rows contribute nothing.
func Compute(responses []Response, mappings []Mapping) map[int]float64 {
	byQuestion := make(map[int][]Mapping, len(mappings))
	for _, m := range mappings {
		byQuestion[m.QuestionID] = append(byQuestion[m.QuestionID], m)
	}

	scores := make(map[int]float64)
	for _, r := range responses {
		for _, m := range byQuestion[r.QuestionID] {
			scores[m.CategoryID] += r.Score * m.Weight
		}
	}
	return scores
}
