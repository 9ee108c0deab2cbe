package service

import "io"

type Report interface {
	WriteHeader(w io.Writer, studentCount int, sourceFileName string) error
	WriteRecords(w io.Writer) error
}
