package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// streamBuffer bounds how far a subscriber may fall behind before writers block.
const streamBuffer = 256

var _ progrock.Writer = (*Broadcast)(nil)

// Broadcast is a progrock.Writer forwarding updates to a primary writer and to subscribed streams.
type Broadcast struct {
	mu      sync.Mutex
	primary progrock.Writer
	streams map[*Stream]struct{}
	closed  bool
}

// NewBroadcast creates a Broadcast writing to primary.
func NewBroadcast(primary progrock.Writer) *Broadcast {
	return &Broadcast{
		primary: primary,
		streams: make(map[*Stream]struct{}),
	}
}

// Subscribe registers a new stream. Subscribing to a closed broadcast yields an ended stream.
func (b *Broadcast) Subscribe() *Stream {
	s := newStream(b)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		s.end()
		return s
	}
	b.streams[s] = struct{}{}
	return s
}

// WriteStatus forwards update to the primary writer and every stream.
func (b *Broadcast) WriteStatus(update *progrock.StatusUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	for s := range b.streams {
		s.send(update)
	}
	return b.primary.WriteStatus(update)
}

// Close ends every stream and closes the primary writer.
func (b *Broadcast) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for s := range b.streams {
		s.end()
	}
	b.streams = nil
	return b.primary.Close()
}

func (b *Broadcast) unsubscribe(s *Stream) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.streams, s)
}

// Stream is a subscription to a Broadcast. Read returns io.EOF once the stream ended.
type Stream struct {
	owner   *Broadcast
	updates chan *progrock.StatusUpdate
	done    chan struct{}
	once    sync.Once
}

func newStream(owner *Broadcast) *Stream {
	return &Stream{
		owner:   owner,
		updates: make(chan *progrock.StatusUpdate, streamBuffer),
		done:    make(chan struct{}),
	}
}

// Read blocks until the next update is available.
func (s *Stream) Read() (*progrock.StatusUpdate, error) {
	select {
	case update := <-s.updates:
		return update, nil
	case <-s.done:
		// Drain what was sent before the stream ended.
		select {
		case update := <-s.updates:
			return update, nil
		default:
			return nil, io.EOF
		}
	}
}

// Close unsubscribes the stream. Pending updates remain readable.
func (s *Stream) Close() error {
	// Ending first releases a writer blocked on a full buffer.
	s.end()
	s.owner.unsubscribe(s)
	return nil
}

func (s *Stream) send(update *progrock.StatusUpdate) {
	select {
	case s.updates <- update:
	case <-s.done:
	}
}

func (s *Stream) end() {
	s.once.Do(func() { close(s.done) })
}
