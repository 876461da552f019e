package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// decodeReader envuelve r según la codificación del archivo. Las planillas exportadas
// desde Excel en Windows suelen venir en windows-1252 o latin1.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("codificación no soportada: %s", encoding)
}

// parseHolidays lee el CSV `date,name[,multiplier]`. Acepta una fila de encabezado
// (primera columna "date" o "fecha") y líneas vacías. Una fecha repetida reemplaza a la anterior.
func parseHolidays(r io.Reader) ([]*entity.Holiday, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	byDate := make(map[string]*entity.Holiday)
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		first := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(rec[0], "\ufeff")))
		if line == 1 && (first == "date" || first == "fecha") {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan al menos fecha y nombre", line)
		}

		date, err := target.ParseDate(first)
		if err != nil {
			return nil, fmt.Errorf("línea %d: fecha inválida %q", line, rec[0])
		}
		name := strings.TrimSpace(rec[1])
		if name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", line)
		}
		h := &entity.Holiday{Date: date, Name: name}
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			m, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
			if err != nil || m <= 0 {
				return nil, fmt.Errorf("línea %d: multiplicador inválido %q", line, rec[2])
			}
			h.Multiplier = m
		}
		byDate[first] = h
	}

	out := make([]*entity.Holiday, 0, len(byDate))
	for _, h := range byDate {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// writeSQL escribe un script idempotente (ON CONFLICT) con los feriados.
func writeSQL(w io.Writer, holidays []*entity.Holiday) error {
	var b strings.Builder
	b.WriteString("-- Calendario de feriados\n")
	b.WriteString("-- Generado por cmd/seed_holidays\n\n")
	if len(holidays) == 0 {
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString("INSERT INTO holidays (id, date, name, multiplier) VALUES\n")
	for i, h := range holidays {
		multiplier := "NULL"
		if h.Multiplier > 0 {
			multiplier = strconv.FormatFloat(h.Multiplier, 'f', -1, 64)
		}
		fmt.Fprintf(&b, "  (gen_random_uuid(), '%s', '%s', %s)", h.Date.Format(target.DateLayout), escapeSQL(h.Name), multiplier)
		if i < len(holidays)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name, multiplier = EXCLUDED.multiplier;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
