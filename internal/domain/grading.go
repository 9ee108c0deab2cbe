package domain

// GradeBoundary maps a minimum weighted sum to a letter grade.
type GradeBoundary struct {
	Threshold float64
	Letter    byte
}

// Score bounds for a single test.
const (
	MinimumScore = 0
	MaximumScore = 100
)

// TestWeights is the weight of each test in the final grade. The weight
// vector also fixes the required score arity of every record.
var TestWeights = []float64{0.1, 0.1, 0.1, 0.1, 0.2, 0.15, 0.25}

// GradeScale is scanned from the highest threshold down; the last entry
// has threshold 0 so every weighted sum maps to a letter.
var GradeScale = []GradeBoundary{
	{Threshold: 90, Letter: 'A'},
	{Threshold: 80, Letter: 'B'},
	{Threshold: 70, Letter: 'C'},
	{Threshold: 60, Letter: 'D'},
	{Threshold: 0, Letter: 'F'},
}

// TestNames label the statistics table columns, in score order.
var TestNames = []string{"Quiz 1", "Quiz 2", "Quiz 3", "Quiz 4", "Mid 1", "Mid 2", "Final"}
