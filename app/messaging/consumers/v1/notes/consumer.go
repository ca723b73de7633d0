package notes

import (
	"context"
	"encoding/json"
	"errors"

	"gocloud.dev/pubsub"

	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

type ref struct {
	Id uint64 `json:"id"`
}

// Consume receives note events until the context is cancelled, dispatching
// at most maxWorkers messages at a time.
func Consume(ctx context.Context, r *sys.Resources, sub *pubsub.Subscription, maxWorkers int) error {
	logger := r.Log
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		// take the slot before spawning so the drain below cannot starve a
		// goroutine that is still waiting to start
		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "create":
				var c note.NewNote
				if err := json.Unmarshal(e.Data, &c); err != nil {
					logger.Errorf("failed to parse create event %s: %s", string(e.Data), err)
					return
				}
				if _, err := note.Create(ctx, r, c); err != nil {
					logger.Errorf("failed to create note %s: %s", string(e.Data), err)
				}
			case "archive":
				var target ref
				if err := json.Unmarshal(e.Data, &target); err != nil {
					logger.Errorf("failed to parse archive event %s: %s", string(e.Data), err)
					return
				}
				if _, err := note.Archive(ctx, r, target.Id); err != nil {
					logger.Errorf("failed to archive note %d: %s", target.Id, err)
				}
			case "delete":
				var target ref
				if err := json.Unmarshal(e.Data, &target); err != nil {
					logger.Errorf("failed to parse delete event %s: %s", string(e.Data), err)
					return
				}
				if err := note.Delete(ctx, r, target.Id); err != nil {
					logger.Errorf("failed to delete note %d: %s", target.Id, err)
				}
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	// wait for in-flight workers to drain
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
