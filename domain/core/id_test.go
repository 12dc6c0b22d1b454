package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	emptyID := ID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}

	nonEmptyID := ID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

func TestNewScenarioID(t *testing.T) {
	a, b := NewScenarioID(), NewScenarioID()
	if a == b {
		t.Errorf("Expected distinct scenario IDs, got %s twice", a)
	}
	if a.String() == "" {
		t.Error("Expected non-empty scenario ID")
	}
}

// TestParseScenarioID tests scenario ID parsing
func TestParseScenarioID(t *testing.T) {
	tests := []struct {
		input    string
		expected ScenarioID
		hasError bool
	}{
		{"scenario-1", ScenarioID("scenario-1"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseScenarioID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsInputError(NewNegativeVotesError("RN+", -1)) {
		t.Error("Expected negative votes to be an input error")
	}
	if !IsInputError(NewPropensityError("LR+", "RN+", 1.5)) {
		t.Error("Expected invalid propensity to be an input error")
	}
	if !IsLookupError(NewUnknownCategoryError("XYZ")) {
		t.Error("Expected unknown category to be a lookup error")
	}
	if IsLookupError(ErrNoWinner) {
		t.Error("Did not expect ErrNoWinner to be a lookup error")
	}
}
