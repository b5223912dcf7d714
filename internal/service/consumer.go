package service

import (
	"context"
	"encoding/json"
	"log"

	"cafefinder/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer feeds favourite-toggled events into the popularity leaderboard.
type Consumer struct {
	Reader     *kafka.Reader
	Popularity PopularityStore
}

func NewConsumer(reader *kafka.Reader, popularity PopularityStore) *Consumer {
	return &Consumer{
		Reader:     reader,
		Popularity: popularity,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[cafe-svc] starting popularity consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[cafe-svc] error reading message: %v", err)
			continue
		}

		var event domain.FavouriteEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[cafe-svc] error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.EventFavouriteToggled {
			c.ProcessToggle(ctx, event)
		}
	}
}

func (c *Consumer) ProcessToggle(ctx context.Context, event domain.FavouriteEvent) {
	delta := 1.0
	if !event.Favourited {
		delta = -1.0
	}

	if err := c.Popularity.Bump(ctx, event.CafeID, delta); err != nil {
		log.Printf("[cafe-svc] error updating popularity for cafe %s: %v", event.CafeID, err)
		return
	}

	log.Printf("[cafe-svc] processed favourite event: CafeID=%s, Favourited=%t",
		event.CafeID, event.Favourited)
}
