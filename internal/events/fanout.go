package events

import (
	"context"
	"errors"

	"github.com/dtroode/carechain-server/internal/model"
)

var _ model.EventSink = Fanout(nil)

// Fanout publishes to every sink and joins their errors.
type Fanout []model.EventSink

func (f Fanout) Publish(ctx context.Context, events ...model.Event) error {
	var errs []error
	for _, sink := range f {
		if err := sink.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
