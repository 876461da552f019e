package numfmt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Metas-api/pkg/numfmt"
)

func TestFormatter_Locales(t *testing.T) {
	amount := decimal.RequireFromString("30000")

	en := numfmt.New("en", "$")
	assert.Equal(t, "30,000.00", en.Amount(amount))
	assert.Equal(t, "$ 30,000.00", en.Money(amount))
	assert.Equal(t, "1.50x", en.Multiplier(1.5))

	es := numfmt.New("es", "")
	assert.Equal(t, "30.000,00", es.Money(amount))
}

func TestFormatter_RedondeaADosDecimales(t *testing.T) {
	f := numfmt.New("en", "")
	assert.Equal(t, "2,343.75", f.Amount(decimal.RequireFromString("2343.749999")))
}
