// MongoSink is an slog.Handler that stores log records in a MongoDB
// collection without ever blocking the request path:
//
//   - records are enqueued into a buffered channel (non-blocking);
//   - a single background goroutine drains the channel and performs
//     InsertMany in batches;
//   - when the channel is full the record is dropped; logging must never
//     stall order processing;
//   - Close() flushes and disconnects.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	sinkQueueSize = 2048
	sinkBatchSize = 64
	sinkFlushTick = 2 * time.Second
)

// logRecord is the document shape written to MongoDB.
type logRecord struct {
	Time      time.Time `bson:"time"`
	Level     string    `bson:"level"`
	Msg       string    `bson:"msg"`
	RequestID string    `bson:"request_id,omitempty"`
	Attrs     bson.M    `bson:"attrs,omitempty"`
}

// MongoSink writes slog records to MongoDB asynchronously.
type MongoSink struct {
	col    *mongo.Collection
	client *mongo.Client
	queue  chan logRecord
	done   chan struct{}
	attrs  []slog.Attr
}

// NewMongoSink connects to uri and targets db/collection. The caller must
// eventually call Close().
func NewMongoSink(uri, db, collection string) (*MongoSink, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("logger/mongo: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("logger/mongo: ping: %w", err)
	}

	col := client.Database(db).Collection(collection)

	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "time", Value: -1}},
	})

	s := &MongoSink{
		col:    col,
		client: client,
		queue:  make(chan logRecord, sinkQueueSize),
		done:   make(chan struct{}),
	}

	go s.drain()
	return s, nil
}

func (s *MongoSink) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (s *MongoSink) Handle(_ context.Context, r slog.Record) error {
	doc := logRecord{
		Time:  r.Time,
		Level: r.Level.String(),
		Msg:   r.Message,
		Attrs: bson.M{},
	}

	collect := func(a slog.Attr) {
		if a.Key == "request_id" {
			doc.RequestID = a.Value.String()
			return
		}
		doc.Attrs[a.Key] = a.Value.Any()
	}
	for _, a := range s.attrs {
		collect(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collect(a)
		return true
	})

	select {
	case s.queue <- doc:
	default:
		// queue full, drop
	}
	return nil
}

func (s *MongoSink) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(s.attrs)+len(attrs))
	merged = append(merged, s.attrs...)
	merged = append(merged, attrs...)
	return &MongoSink{col: s.col, client: s.client, queue: s.queue, done: s.done, attrs: merged}
}

func (s *MongoSink) WithGroup(string) slog.Handler { return s }

func (s *MongoSink) drain() {
	ticker := time.NewTicker(sinkFlushTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, sinkBatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _ = s.col.InsertMany(ctx, batch)
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case doc := <-s.queue:
			batch = append(batch, doc)
			if len(batch) >= sinkBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.done:
			for len(s.queue) > 0 {
				batch = append(batch, <-s.queue)
			}
			flush()
			return
		}
	}
}

// Close flushes pending records and disconnects. Safe to call twice.
func (s *MongoSink) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.client.Disconnect(ctx)
}

// Tee fans every record out to all of hs.
type Tee struct {
	handlers []slog.Handler
}

// NewTee returns a handler that forwards each record to every h.
func NewTee(hs ...slog.Handler) *Tee { return &Tee{handlers: hs} }

func (t *Tee) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (t *Tee) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range t.handlers {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (t *Tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &Tee{handlers: hs}
}

func (t *Tee) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &Tee{handlers: hs}
}
