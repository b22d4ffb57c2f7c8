package xsdimport

import (
	"fmt"

	"go.uber.org/zap"
)

// Options controls XSD ingestion.
type Options struct {
	// Logger receives skipped declarations at Debug and diag warnings at
	// Warn. Nil disables logging.
	Logger *zap.Logger
	// StrictOccurs turns maxOccurs > 1 on a record child into an error
	// instead of a warning. Repetition is not modelled by record schemas.
	StrictOccurs bool
}

func (o Options) log() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct {
	ws  []string
	log *zap.Logger
}

func (d *simpleDiag) HasWarnings() bool  { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) {
	msg := fmt.Sprintf(f, a...)
	d.ws = append(d.ws, msg)
	if d.log != nil {
		d.log.Warn("xsd import", zap.String("warning", msg))
	}
}
