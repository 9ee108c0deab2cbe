package repository

import (
	"github.com/ilyadubrovsky/letter-grader/internal/domain"
)

type Students interface {
	Append(record *domain.Record)
	Records() []*domain.Record
	Len() int
	SortByName() error
	Clear()
}
