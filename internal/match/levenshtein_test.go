package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"", "abc", 3},
		{"abc", "", 3},

		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		{"Count", "count", 1},
		{"getvalue", "setvalue", 1},
		{"maxvalue", "minvalue", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Levenshtein(tt.b, tt.a); reverse != result {
				t.Errorf("Levenshtein is not symmetric for (%q, %q): %d vs %d", tt.a, tt.b, result, reverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"run", "run", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
		maxScore float64
	}{
		{"MAX_VALUE", "maxValue", 1.0, 1.0},
		{"getCount", "count", 1.0, 1.0},
		{"isEnabled", "enabled", 1.0, 1.0},
		{"userIds", "userIdList", 0.0, 1.0},
		{"handlerImpl", "handler", 1.0, 1.0},
		{"computeTotal", "computeSum", 0.5, 0.9},
		{"count", "total", 0.0, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := NameSimilarity(tt.a, tt.b)
			if result < tt.minScore-0.001 || result > tt.maxScore+0.001 {
				t.Errorf("NameSimilarity(%q, %q) = %f, want within [%f, %f]",
					tt.a, tt.b, result, tt.minScore, tt.maxScore)
			}
		})
	}
}

func BenchmarkNameSimilarity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NameSimilarity("getCustomerOrderId", "customer_order")
	}
}
