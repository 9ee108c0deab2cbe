package service

import (
	"github.com/ilyadubrovsky/letter-grader/internal/domain"
)

type Grades interface {
	CreateStudent(rawLine string) error
	ComputeGrade(record *domain.Record) error
	ComputeAllGrades() error
}
