package messaging

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// DefaultBuffer is the per-subscriber output buffer of the in-process pub/sub.
const DefaultBuffer = 1024

// NewInProcess creates an in-memory pub/sub. Publishing never waits for a
// subscriber to ack, and nothing is kept for topics nobody subscribed to.
func NewInProcess(buffer int64, logger watermill.LoggerAdapter) *gochannel.GoChannel {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            buffer,
		Persistent:                     false,
		BlockPublishUntilSubscriberAck: false,
	}, logger)
}
