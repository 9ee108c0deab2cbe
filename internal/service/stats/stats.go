package stats

import (
	"fmt"
	"io"

	"github.com/ilyadubrovsky/letter-grader/internal/domain"
	ierrors "github.com/ilyadubrovsky/letter-grader/internal/errors"
	"github.com/ilyadubrovsky/letter-grader/internal/repository"
)

var rowNames = []string{"Average", "Minimum", "Maximum"}

type svc struct {
	studentsRepo repository.Students
	testNames    []string
	columnWidth  int
	precision    int
}

func NewService(
	studentsRepo repository.Students,
	testNames []string,
	columnWidth int,
	precision int,
) *svc {
	return &svc{
		studentsRepo: studentsRepo,
		testNames:    testNames,
		columnWidth:  columnWidth,
		precision:    precision,
	}
}

// Average returns the arithmetic mean of the given test column across all
// records. An empty store is an error: there is nothing to divide by.
func (s *svc) Average(column int) (float64, error) {
	records := s.studentsRepo.Records()
	if len(records) == 0 {
		return 0, fmt.Errorf("divide by zero attempted: %w", ierrors.ErrEmptyStore)
	}

	sum := 0.0
	for _, record := range records {
		sum += float64(record.Scores[column])
	}

	return sum / float64(len(records)), nil
}

// Minimum folds over the column starting from the domain maximum, so an
// empty store yields 100. That is the fold identity, not an error signal.
func (s *svc) Minimum(column int) float64 {
	minimum := float64(domain.MaximumScore)
	for _, record := range s.studentsRepo.Records() {
		if score := float64(record.Scores[column]); score < minimum {
			minimum = score
		}
	}

	return minimum
}

// Maximum is symmetric to Minimum, with the domain minimum as identity.
func (s *svc) Maximum(column int) float64 {
	maximum := float64(domain.MinimumScore)
	for _, record := range s.studentsRepo.Records() {
		if score := float64(record.Scores[column]); score > maximum {
			maximum = score
		}
	}

	return maximum
}

// WriteTable renders the class statistics table: a header row of test names
// and one row per statistic, every value with fixed precision in
// fixed-width columns.
func (s *svc) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Here is the class averages:\n"); err != nil {
		return fmt.Errorf("write title: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%*s", s.columnWidth, ""); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	for _, name := range s.testNames {
		if _, err := fmt.Fprintf(w, "%-*s", s.columnWidth, name); err != nil {
			return fmt.Errorf("write header row: %w", err)
		}
	}

	for _, rowName := range rowNames {
		if _, err := fmt.Fprintf(w, "\n%-*s", s.columnWidth, rowName); err != nil {
			return fmt.Errorf("write %s row: %w", rowName, err)
		}

		for column := range s.testNames {
			value, err := s.statistic(rowName, column)
			if err != nil {
				return fmt.Errorf("%s of column %d: %w", rowName, column, err)
			}

			if _, err = fmt.Fprintf(w, "%-*.*f", s.columnWidth, s.precision, value); err != nil {
				return fmt.Errorf("write %s row: %w", rowName, err)
			}
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

func (s *svc) statistic(rowName string, column int) (float64, error) {
	switch rowName {
	case "Average":
		return s.Average(column)
	case "Minimum":
		return s.Minimum(column), nil
	default:
		return s.Maximum(column), nil
	}
}
