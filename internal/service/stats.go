package service

import "io"

type Stats interface {
	Average(column int) (float64, error)
	Minimum(column int) float64
	Maximum(column int) float64
	WriteTable(w io.Writer) error
}
