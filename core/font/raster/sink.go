package raster

import "errors"

// Sink receives bitmaps from a rasterization. If Send returns an error, the
// rasterization stops.
type Sink interface {
	Send(*Bitmap) error
}

// SinkFunc adapts an ordinary function to a Sink.
type SinkFunc func(*Bitmap) error

// Send calls f(b).
func (f SinkFunc) Send(b *Bitmap) error {
	return f(b)
}

// ErrDisconnected is returned by a ChannelSink after its receiver went away.
var ErrDisconnected = errors.New("receiver disconnected")

// ChannelSink sends bitmaps on channel C. The receiving side signals that it
// is no longer interested by closing Done; pending and subsequent sends then
// fail with ErrDisconnected. A nil Done never disconnects.
type ChannelSink struct {
	C    chan<- *Bitmap
	Done <-chan struct{}
}

// Send blocks until b is delivered or the receiver disconnects.
func (s ChannelSink) Send(b *Bitmap) error {
	select {
	case <-s.Done:
		return ErrDisconnected
	default:
	}
	select {
	case s.C <- b:
		return nil
	case <-s.Done:
		return ErrDisconnected
	}
}
