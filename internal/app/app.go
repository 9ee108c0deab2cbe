package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/ilyadubrovsky/letter-grader/internal/config"
	"github.com/ilyadubrovsky/letter-grader/internal/domain"
	ierrors "github.com/ilyadubrovsky/letter-grader/internal/errors"
	"github.com/ilyadubrovsky/letter-grader/internal/repository"
	"github.com/ilyadubrovsky/letter-grader/internal/repository/students"
	"github.com/ilyadubrovsky/letter-grader/internal/service"
	"github.com/ilyadubrovsky/letter-grader/internal/service/grades"
	"github.com/ilyadubrovsky/letter-grader/internal/service/report"
	"github.com/ilyadubrovsky/letter-grader/internal/service/stats"
)

type app struct {
	cfg           *config.Config
	fs            afero.Fs
	stdout        io.Writer
	studentsStore repository.Students
	gradesSvc     service.Grades
	statsSvc      service.Stats
	reportSvc     service.Report
}

type App interface {
	Run() error
}

func NewApp(cfg *config.Config, fs afero.Fs, stdout io.Writer) App {
	var a app
	a.cfg = cfg
	a.fs = fs
	a.stdout = stdout

	log.Info().Msg("app initializing")

	a.studentsStore = students.NewStore()
	a.gradesSvc = grades.NewService(a.studentsStore, domain.TestWeights, domain.GradeScale)
	a.statsSvc = stats.NewService(
		a.studentsStore,
		domain.TestNames,
		cfg.Stats.ColumnWidth,
		cfg.Stats.Precision,
	)
	a.reportSvc = report.NewService(a.studentsStore, cfg.Report.NameWidth, cfg.Report.GradeWidth)

	return &a
}

// Run executes the whole pipeline: read, grade, report, statistics.
// The first failing stage aborts the remaining ones. The store is torn down
// exactly once, when the run is over.
func (a *app) Run() error {
	defer a.studentsStore.Clear()

	log.Info().Msgf("reading student data from '%s'", a.cfg.Files.InputFileName)
	if err := a.readStudents(); err != nil {
		return fmt.Errorf("readStudents: %w", err)
	}
	log.Info().Msgf("student data read from input file '%s'", a.cfg.Files.InputFileName)

	if err := a.gradesSvc.ComputeAllGrades(); err != nil {
		return fmt.Errorf("gradesSvc.ComputeAllGrades: %w", err)
	}
	log.Info().Msg("letter grade has been calculated for all students")

	if err := a.writeReport(); err != nil {
		return fmt.Errorf("writeReport: %w", err)
	}
	log.Info().Msgf("student letter grades written to output file '%s'", a.cfg.Files.OutputFileName)

	if err := a.statsSvc.WriteTable(a.stdout); err != nil {
		return fmt.Errorf("statsSvc.WriteTable: %w", err)
	}

	return nil
}

func (a *app) readStudents() error {
	fileName := a.cfg.Files.InputFileName

	info, err := a.fs.Stat(fileName)
	if err != nil {
		return fmt.Errorf("fs.Stat: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("'%s': %w", fileName, ierrors.ErrEmptyFile)
	}

	file, err := a.fs.Open(fileName)
	if err != nil {
		return fmt.Errorf("fs.Open: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if err = a.gradesSvc.CreateStudent(line); err != nil {
			return fmt.Errorf("gradesSvc.CreateStudent: %w", err)
		}
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Err: %w", err)
	}

	return nil
}

func (a *app) writeReport() error {
	file, err := a.fs.Create(a.cfg.Files.OutputFileName)
	if err != nil {
		return fmt.Errorf("fs.Create: %w", err)
	}

	if err = a.reportSvc.WriteHeader(file, a.studentsStore.Len(), a.cfg.Files.InputFileName); err != nil {
		file.Close()
		return fmt.Errorf("reportSvc.WriteHeader: %w", err)
	}

	if err = a.reportSvc.WriteRecords(file); err != nil {
		file.Close()
		return fmt.Errorf("reportSvc.WriteRecords: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("file.Close: %w", err)
	}

	return nil
}
