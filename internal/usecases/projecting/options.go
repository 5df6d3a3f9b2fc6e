package projecting

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/oficina-dashboard-api/pkg/format"
)

// Options são os parâmetros imutáveis de apresentação
type Options struct {
	FavorableThreshold   decimal.Decimal // Margem acima deste valor é favorável
	UnfavorableThreshold decimal.Decimal // Margem abaixo deste valor é desfavorável
	PercentDigits        int32
}

func DefaultOptions() Options {
	return Options{
		FavorableThreshold:   decimal.NewFromInt(50),
		UnfavorableThreshold: decimal.NewFromInt(30),
		PercentDigits:        format.PercentageDefaultDigits,
	}
}

func (o Options) Validate() error {
	if o.UnfavorableThreshold.GreaterThan(o.FavorableThreshold) {
		return errors.Errorf("projecting: unfavorable threshold %s is above favorable threshold %s",
			o.UnfavorableThreshold, o.FavorableThreshold)
	}
	if o.PercentDigits < 0 {
		return errors.Errorf("projecting: percent digits must not be negative (%d)", o.PercentDigits)
	}
	return nil
}
