// Package format turns raw amounts and timestamps into display strings for a
// single configured locale.
package format

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidLocale is returned when a locale, currency, or time zone cannot be
// resolved.
var ErrInvalidLocale = errors.New("invalid locale")

// Defaults mirror the Brazilian deployment the dashboard was written for.
const (
	DefaultLocale   = "pt-BR"
	DefaultCurrency = "BRL"
	DefaultTimezone = "UTC"
)

// dateLayouts maps a base language and region to a day/month/year layout.
var dateLayouts = map[string]string{
	"pt-BR": "02/01/2006",
	"pt-PT": "02/01/2006",
	"en-US": "01/02/2006",
	"en-GB": "02/01/2006",
	"de-DE": "02.01.2006",
	"fr-FR": "02/01/2006",
	"es-ES": "02/01/2006",
	"it-IT": "02/01/2006",
}

const fallbackDateLayout = "2006-01-02"

// Formatter renders money and dates. It is safe for concurrent use once built.
type Formatter struct {
	printer    *message.Printer
	location   *time.Location
	dateLayout string
	tag        language.Tag
	unit       currency.Unit
}

// Options configures a Formatter.
type Options struct {
	Locale   string
	Currency string
	Timezone string
}

// New builds a Formatter. Empty options fall back to the defaults.
func New(opts Options) (*Formatter, error) {
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if opts.Timezone == "" {
		opts.Timezone = DefaultTimezone
	}

	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", ErrInvalidLocale, opts.Locale, err)
	}

	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: currency %q: %v", ErrInvalidLocale, opts.Currency, err)
	}

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidLocale, opts.Timezone, err)
	}

	return &Formatter{
		printer:    message.NewPrinter(tag),
		location:   loc,
		dateLayout: layoutFor(tag),
		tag:        tag,
		unit:       unit,
	}, nil
}

// MustNew is New for fixed, known-good options.
func MustNew(opts Options) *Formatter {
	f, err := New(opts)
	if err != nil {
		panic(err)
	}
	return f
}

func layoutFor(tag language.Tag) string {
	base, _ := tag.Base()
	region, _ := tag.Region()
	if layout, ok := dateLayouts[base.String()+"-"+region.String()]; ok {
		return layout
	}
	return fallbackDateLayout
}

// Currency formats value as money in the configured currency and locale,
// e.g. "R$ 5.000,00" for pt-BR/BRL. Negative amounts put the sign before
// the symbol: "-R$ 3.000,00".
func (f *Formatter) Currency(value float64) string {
	// Compare in cents so -0.001 renders as "R$ 0,00", not "-R$ 0,00".
	if math.Round(value*100) < 0 {
		return "-" + f.printer.Sprint(currency.Symbol(f.unit.Amount(-value)))
	}
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(math.Abs(value))))
}

// Date formats t as a calendar date in the configured time zone.
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.location).Format(f.dateLayout)
}

// Locale returns the resolved locale tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}
