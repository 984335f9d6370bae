package sink

import (
	"errors"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
)

// Sink is any ordered append target for author rows.
type Sink interface {
	Append(rows []model.OutputRow) error
}

type multiSink []Sink

// Multi fans rows out to every sink. Each sink gets the rows even if another
// one fails; the combined error is returned.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Append(rows []model.OutputRow) error {
	var errs []error
	for _, s := range m {
		if err := s.Append(rows); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
