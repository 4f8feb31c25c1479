package scoring

import (
	"math"
	"testing"
)

func TestComputeSingleQuestionSingleCategory(t *testing.T) {
	responses := []Response{{QuestionID: 1, Score: 10}}
	mappings := []Mapping{{QuestionID: 1, CategoryID: 100, Weight: 1.0}}

	scores := Compute(responses, mappings)
	if len(scores) != 1 {
		t.Fatalf("score count: want=1 got=%d", len(scores))
	}
	if scores[100] != 10 {
		t.Fatalf("category 100 score: want=10 got=%v", scores[100])
	}
}

func TestComputeAccumulatesAcrossResponses(t *testing.T) {
	responses := []Response{
		{QuestionID: 1, Score: 4},
		{QuestionID: 2, Score: 3},
		{QuestionID: 3, Score: 5},
	}
	mappings := []Mapping{
		{QuestionID: 1, CategoryID: 100, Weight: 1.0},
		{QuestionID: 2, CategoryID: 100, Weight: 0.5},
		{QuestionID: 3, CategoryID: 200, Weight: 2.0},
	}

	scores := Compute(responses, mappings)
	if got := scores[100]; got != 5.5 {
		t.Fatalf("category 100 score: want=5.5 got=%v", got)
	}
	if got := scores[200]; got != 10 {
		t.Fatalf("category 200 score: want=10 got=%v", got)
	}
}

func TestComputeQuestionMappingIntoMultipleCategories(t *testing.T) {
	responses := []Response{{QuestionID: 7, Score: 2}}
	mappings := []Mapping{
		{QuestionID: 7, CategoryID: 100, Weight: 1.0},
		{QuestionID: 7, CategoryID: 200, Weight: 0.25},
	}

	scores := Compute(responses, mappings)
	if got := scores[100]; got != 2 {
		t.Fatalf("category 100 score: want=2 got=%v", got)
	}
	if got := scores[200]; got != 0.5 {
		t.Fatalf("category 200 score: want=0.5 got=%v", got)
	}
}

func TestComputeSkipsUnmappedQuestions(t *testing.T) {
	responses := []Response{
		{QuestionID: 1, Score: 10},
		{QuestionID: 99, Score: 10},
	}
	mappings := []Mapping{{QuestionID: 1, CategoryID: 100, Weight: 1.0}}

	scores := Compute(responses, mappings)
	if len(scores) != 1 {
		t.Fatalf("unmapped question leaked into scores: %v", scores)
	}
	if scores[100] != 10 {
		t.Fatalf("category 100 score: want=10 got=%v", scores[100])
	}
}

func TestComputeIncludesExternalMappings(t *testing.T) {
	responses := []Response{{QuestionID: 1, Score: 3}}
	mappings := []Mapping{
		{QuestionID: 1, CategoryID: 100, Weight: 1.0, IsExternal: false},
		{QuestionID: 1, CategoryID: 200, Weight: 1.0, IsExternal: true},
	}

	scores := Compute(responses, mappings)
	if scores[100] != scores[200] {
		t.Fatalf("external mapping scored differently: internal=%v external=%v", scores[100], scores[200])
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	if scores := Compute(nil, nil); len(scores) != 0 {
		t.Fatalf("empty inputs produced scores: %v", scores)
	}
	if scores := Compute(nil, []Mapping{{QuestionID: 1, CategoryID: 100, Weight: 1}}); len(scores) != 0 {
		t.Fatalf("no responses produced scores: %v", scores)
	}
}

func TestComputeDeterministic(t *testing.T) {
	responses := []Response{
		{QuestionID: 1, Score: 1.5},
		{QuestionID: 2, Score: 2.5},
		{QuestionID: 3, Score: 3.5},
	}
	mappings := []Mapping{
		{QuestionID: 1, CategoryID: 100, Weight: 0.3},
		{QuestionID: 2, CategoryID: 100, Weight: 0.7},
		{QuestionID: 3, CategoryID: 200, Weight: 1.1},
	}

	first := Compute(responses, mappings)
	second := Compute(responses, mappings)
	if len(first) != len(second) {
		t.Fatalf("result size differs between runs: %d vs %d", len(first), len(second))
	}
	for k, v := range first {
		if math.Float64bits(v) != math.Float64bits(second[k]) {
			t.Fatalf("category %d differs between runs: %v vs %v", k, v, second[k])
		}
	}
}
