package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseHolidays_EncabezadoYMultiplicador(t *testing.T) {
	in := "date,name,multiplier\n" +
		"2025-12-25,Navidad,2\n" +
		"2025-01-01,Año Nuevo,\n" +
		"\n" +
		"2025-12-25,Navidad (corregido),2.5\n"

	got, err := parseHolidays(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2025-01-01", got[0].Date.Format("2006-01-02"))
	assert.Equal(t, "Año Nuevo", got[0].Name)
	assert.Zero(t, got[0].Multiplier, "sin multiplicador usa el configurado")

	assert.Equal(t, "Navidad (corregido)", got[1].Name, "la fecha repetida reemplaza a la anterior")
	assert.Equal(t, 2.5, got[1].Multiplier)
}

func TestParseHolidays_Errores(t *testing.T) {
	cases := map[string]string{
		"fecha inválida":         "25/12/2025,Navidad\n",
		"sin nombre":             "2025-12-25\n",
		"nombre vacío":           "2025-12-25, \n",
		"multiplicador negativo": "2025-12-25,Navidad,-1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseHolidays(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestDecodeReader_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("2025-01-06,Día de Reyes\n")
	require.NoError(t, err)

	r, err := decodeReader(strings.NewReader(raw), "latin1")
	require.NoError(t, err)
	got, err := parseHolidays(r)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Día de Reyes", got[0].Name)

	_, err = decodeReader(strings.NewReader(raw), "ebcdic")
	assert.Error(t, err)
}

func TestWriteSQL_Idempotente(t *testing.T) {
	got, err := parseHolidays(strings.NewReader("2025-05-01,Día del 'Trabajo',1.8\n2025-08-07,Batalla de Boyacá\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, got))
	sql := buf.String()

	assert.Contains(t, sql, "'2025-05-01', 'Día del ''Trabajo''', 1.8")
	assert.Contains(t, sql, "'2025-08-07', 'Batalla de Boyacá', NULL")
	assert.Contains(t, sql, "ON CONFLICT (date) DO UPDATE")
}
