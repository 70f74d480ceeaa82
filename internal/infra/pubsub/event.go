package pubsub

import (
	"encoding/json"
	"strconv"

	"sarahkyoga/internal/domain/constants"
	"sarahkyoga/internal/domain/service"

	"github.com/pkg/errors"
)

// newsletterMessage is the payload and attribute set shared by every publisher.
// The worker reads request_id from the attributes before decoding the payload.
type newsletterMessage struct {
	data       []byte
	attributes map[string]string
}

func encodeNewsletterEvent(event *service.NewsletterEvent) (*newsletterMessage, error) {
	if event == nil || event.NewsletterID == "" {
		return nil, errors.New("newsletter event requires a newsletter ID")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type":    constants.NewsletterEventType,
		"newsletter_id": event.NewsletterID,
	}
	if event.PublishedAt > 0 {
		attributes["published_at"] = strconv.FormatInt(event.PublishedAt, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &newsletterMessage{data: data, attributes: attributes}, nil
}
