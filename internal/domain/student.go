package domain

// Record is one student's parsed input line plus the computed letter grade.
// Grade stays zero until the grade engine has run.
type Record struct {
	Name   string
	Scores []int
	Grade  byte
}
