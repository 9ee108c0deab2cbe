package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/ilyadubrovsky/letter-grader/internal/app"
	"github.com/ilyadubrovsky/letter-grader/internal/config"
)

func main() {
	initLogger()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("cant load .env file")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("cant initialize config")
	}

	applyArgs(cfg, os.Args[1:])

	log.Info().Msgf("input will be read from '%s'", cfg.Files.InputFileName)
	log.Info().Msgf("output will be written to '%s'", cfg.Files.OutputFileName)

	a := app.NewApp(cfg, afero.NewOsFs(), os.Stdout)
	if err = a.Run(); err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}
}

// applyArgs expects exactly two positional arguments: the input file name and
// the output file name. Any other count keeps the configured defaults.
func applyArgs(cfg *config.Config, args []string) {
	if len(args) != 2 {
		log.Warn().Msg("command line argument format not supported, using default read and write file names")
		return
	}

	cfg.Files.InputFileName = args[0]
	cfg.Files.OutputFileName = args[1]
}
