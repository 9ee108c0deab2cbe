package report_test

import (
	"bytes"
	"testing"

	"github.com/ilyadubrovsky/letter-grader/internal/domain"
	"github.com/ilyadubrovsky/letter-grader/internal/repository/students"
	"github.com/ilyadubrovsky/letter-grader/internal/service/report"
)

func TestWriteHeader(t *testing.T) {
	store := students.NewStore()
	svc := report.NewService(store, 20, 5)

	var buf bytes.Buffer
	if err := svc.WriteHeader(&buf, 2, "input.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Letter grade for 2 students given in input.txt is:\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWriteRecordsSortsAndFormats(t *testing.T) {
	store := students.NewStore()
	store.Append(&domain.Record{Name: "Bob", Grade: 'F'})
	store.Append(&domain.Record{Name: "Alice", Grade: 'A'})
	svc := report.NewService(store, 20, 5)

	var buf bytes.Buffer
	if err := svc.WriteRecords(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Alice                   A\n" +
		"Bob                     F\n"
	if got := buf.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWriteRecordsEmptyStore(t *testing.T) {
	store := students.NewStore()
	svc := report.NewService(store, 20, 5)

	var buf bytes.Buffer
	if err := svc.WriteRecords(&buf); err != nil {
		t.Fatalf("expected no-op on empty store, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
