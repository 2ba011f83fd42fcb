package events

import (
	"context"
	"fmt"
	"path"

	"github.com/dtroode/carechain-server/internal/model"
)

var _ model.EventSink = (*Archive)(nil)

const contentTypeJSON = "application/json"

// Archive stores each event as an immutable JSON object.
type Archive struct {
	objects model.ObjectStore
	prefix  string
}

func NewArchive(objects model.ObjectStore, prefix string) *Archive {
	if prefix == "" {
		prefix = "events"
	}
	return &Archive{objects: objects, prefix: prefix}
}

// Key returns the object key of ev, partitioned by day.
func (a *Archive) Key(ev model.Event) string {
	return path.Join(a.prefix, ev.At.UTC().Format("2006/01/02"), ev.ID.String()+".json")
}

// Publish writes events that are not archived yet.
func (a *Archive) Publish(ctx context.Context, events ...model.Event) error {
	for _, ev := range events {
		key := a.Key(ev)

		exists, err := a.objects.Exists(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to check archived event %s: %w", ev.ID, err)
		}
		if exists {
			continue
		}

		data, err := Encode(ev)
		if err != nil {
			return err
		}
		if err := a.objects.Put(ctx, key, data, contentTypeJSON); err != nil {
			return fmt.Errorf("failed to archive event %s: %w", ev.ID, err)
		}
	}
	return nil
}
