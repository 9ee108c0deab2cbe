package grades

import (
	"fmt"
	"strconv"

	"github.com/ilyadubrovsky/letter-grader/internal/domain"
	ierrors "github.com/ilyadubrovsky/letter-grader/internal/errors"
	"github.com/ilyadubrovsky/letter-grader/internal/repository"
	"github.com/ilyadubrovsky/letter-grader/pkg/tokenize"
)

const fieldSeparator = ","

type svc struct {
	studentsRepo repository.Students
	weights      []float64
	scale        []domain.GradeBoundary
}

func NewService(
	studentsRepo repository.Students,
	weights []float64,
	scale []domain.GradeBoundary,
) *svc {
	return &svc{
		studentsRepo: studentsRepo,
		weights:      weights,
		scale:        scale,
	}
}

// CreateStudent parses one raw input line into a record and appends it to the
// store. The first field is the name, every remaining field is a score.
// The grade is left unset until ComputeGrade runs.
func (s *svc) CreateStudent(rawLine string) error {
	nFields, err := tokenize.Count(rawLine, fieldSeparator)
	if err != nil {
		return fmt.Errorf("tokenize.Count: %w", err)
	}

	tokens, err := tokenize.New(rawLine, fieldSeparator)
	if err != nil {
		return fmt.Errorf("tokenize.New: %w", err)
	}

	name, ok := tokens.Next()
	if !ok || name == "" {
		return ierrors.ErrMissingName
	}

	scores := make([]int, 0, nFields-1)
	for {
		token, ok := tokens.Next()
		if !ok {
			break
		}

		score, convErr := strconv.Atoi(token)
		if convErr != nil {
			return fmt.Errorf(
				"score '%s' is not a number within score range of '%d' to '%d': %w",
				token, domain.MinimumScore, domain.MaximumScore, ierrors.ErrInvalidScore,
			)
		}
		if score < domain.MinimumScore || score > domain.MaximumScore {
			return fmt.Errorf(
				"score '%d' is not within score range of '%d' to '%d': %w",
				score, domain.MinimumScore, domain.MaximumScore, ierrors.ErrInvalidScore,
			)
		}

		scores = append(scores, score)
	}

	s.studentsRepo.Append(&domain.Record{
		Name:   name,
		Scores: scores,
	})

	return nil
}

// ComputeGrade sets the record's letter grade from its weighted score sum.
// The scale is scanned from the highest threshold down; the last boundary has
// threshold 0, so every sum lands on a letter.
func (s *svc) ComputeGrade(record *domain.Record) error {
	if len(record.Scores) != len(s.weights) {
		return fmt.Errorf(
			"student %s has %d scores, %d scores are required to calculate the grade: %w",
			record.Name, len(record.Scores), len(s.weights), ierrors.ErrScoreCountMismatch,
		)
	}

	sum := 0.0
	for i, score := range record.Scores {
		sum += float64(score) * s.weights[i]
	}

	for _, boundary := range s.scale {
		if sum >= boundary.Threshold {
			record.Grade = boundary.Letter
			break
		}
	}

	return nil
}

// ComputeAllGrades grades every record in store order. The first failure
// aborts the whole batch.
func (s *svc) ComputeAllGrades() error {
	for _, record := range s.studentsRepo.Records() {
		if err := s.ComputeGrade(record); err != nil {
			return fmt.Errorf("ComputeGrade: %w", err)
		}
	}

	return nil
}
