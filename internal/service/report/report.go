package report

import (
	"fmt"
	"io"

	"github.com/ilyadubrovsky/letter-grader/internal/repository"
)

type svc struct {
	studentsRepo repository.Students
	nameWidth    int
	gradeWidth   int
}

func NewService(studentsRepo repository.Students, nameWidth, gradeWidth int) *svc {
	return &svc{
		studentsRepo: studentsRepo,
		nameWidth:    nameWidth,
		gradeWidth:   gradeWidth,
	}
}

func (s *svc) WriteHeader(w io.Writer, studentCount int, sourceFileName string) error {
	_, err := fmt.Fprintf(w, "Letter grade for %d students given in %s is:\n\n", studentCount, sourceFileName)
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	return nil
}

// WriteRecords writes one fixed-width line per student, sorted ascending by
// name. Sorting here is idempotent, so an already-sorted store stays as is.
func (s *svc) WriteRecords(w io.Writer) error {
	if err := s.studentsRepo.SortByName(); err != nil {
		return fmt.Errorf("studentsRepo.SortByName: %w", err)
	}

	for _, record := range s.studentsRepo.Records() {
		_, err := fmt.Fprintf(w, "%-*s%*c\n", s.nameWidth, record.Name, s.gradeWidth, record.Grade)
		if err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	return nil
}
