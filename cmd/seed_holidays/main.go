// seed_holidays carga el calendario de feriados usado para sugerir días especiales
// a partir de un CSV `date,name[,multiplier]`.
//
// Uso:
//
//	go run ./cmd/seed_holidays sql  --file feriados.csv [--out migrations/002_seed_holidays.sql]
//	go run ./cmd/seed_holidays load --file feriados.csv
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Metas-api/pkg/config"
	"github.com/jhoicas/Metas-api/pkg/logger"
)

func newFileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Usage:    "CSV con columnas date,name[,multiplier]",
			Required: true,
			EnvVars:  []string{"HOLIDAYS_FILE"},
		},
		&cli.StringFlag{
			Name:  "encoding",
			Usage: "Codificación del CSV: utf-8, latin1 o windows-1252",
			Value: "utf-8",
		},
	}
}

func main() {
	// .env es opcional: en despliegue las variables vienen del entorno.
	_ = godotenv.Load(".env")

	log := logger.New(logger.Config{Env: "development", Service: "seed_holidays", Level: "info"})

	app := &cli.App{
		Name:  "seed_holidays",
		Usage: "Cargar el calendario de feriados",
		Commands: []*cli.Command{
			{
				Name:  "sql",
				Usage: "Generar un script SQL idempotente con los feriados",
				Flags: append(newFileFlags(), &cli.StringFlag{
					Name:  "out",
					Usage: "Archivo de salida (por defecto stdout)",
				}),
				Action: func(c *cli.Context) error {
					holidays, err := readHolidays(c.String("file"), c.String("encoding"))
					if err != nil {
						return err
					}
					var w io.Writer = os.Stdout
					if path := c.String("out"); path != "" {
						f, err := os.Create(path)
						if err != nil {
							return fmt.Errorf("crear archivo: %w", err)
						}
						defer f.Close()
						w = f
					}
					if err := writeSQL(w, holidays); err != nil {
						return fmt.Errorf("escribir SQL: %w", err)
					}
					log.Info().Int("holidays", len(holidays)).Msg("script generado")
					return nil
				},
			},
			{
				Name:  "load",
				Usage: "Insertar o actualizar los feriados directamente en PostgreSQL",
				Flags: newFileFlags(),
				Action: func(c *cli.Context) error {
					holidays, err := readHolidays(c.String("file"), c.String("encoding"))
					if err != nil {
						return err
					}
					n, err := loadHolidays(c.Context, holidays)
					if err != nil {
						return err
					}
					log.Info().Int("holidays", n).Msg("feriados cargados")
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("seed_holidays")
	}
}

func readHolidays(path, encoding string) ([]*entity.Holiday, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	r, err := decodeReader(f, encoding)
	if err != nil {
		return nil, err
	}
	return parseHolidays(r)
}

func loadHolidays(ctx context.Context, holidays []*entity.Holiday) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, fmt.Errorf("cargar configuración: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	repo := postgres.NewHolidayRepository(pool)
	for i, h := range holidays {
		if err := repo.Upsert(ctx, h); err != nil {
			return i, err
		}
	}
	return len(holidays), nil
}
