package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ViewEventsProducer = (*ViewEventsProducer)(nil)

// A ViewEventsProducer publishes [domain.ProductViewEvent] records,
// keyed by product id.
type ViewEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewViewEventsProducer(
	opts ...ProducerOpt,
) (ViewEventsProducer, error) {
	const op = "NewViewEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ViewEventsProducer{}, opErr(err, op)
		}
	}
	return ViewEventsProducer{options.cl, options.encoder}, nil
}

func (p ViewEventsProducer) Close() {
	const op = "ViewEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ViewEventsProducer) ProduceView(
	ctx context.Context, evt domain.ProductViewEvent,
) error {
	const op = "ViewEventsProducer.ProduceView"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return opErr(err, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, op)
	}
	return nil
}

func (p ViewEventsProducer) createRecord(
	evt domain.ProductViewEvent,
) (*kgo.Record, error) {
	const op = "ViewEventsProducer.createRecord"

	s := p.toSchema(evt)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, op)
	}

	key := []byte(strconv.Itoa(s.ProductID))
	return &kgo.Record{Key: key, Value: v}, nil
}

func (ViewEventsProducer) toSchema(
	evt domain.ProductViewEvent,
) (s schema.ViewEventV1) {
	s.ProductID = evt.ProductID
	s.Title = evt.Title
	s.Category = evt.Category
	s.Brand = evt.Brand
	s.Price = evt.Price
	s.ViewedAt = evt.ViewedAt.UnixMilli()
	return s
}
