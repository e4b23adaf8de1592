package raster

import "context"

// Completion is a promise for the final outcome of a streamed
// rasterization.
type Completion interface {
	// Await blocks until the rasterization has finished or ctx is done.
	// It may be called any number of times.
	Await(ctx context.Context) error
}

type completion struct {
	finished chan struct{}
	err      error
}

func (c *completion) Await(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.finished:
		return c.err
	}
}

// Stream starts rasterizing req in the background and returns immediately.
// Bitmaps are delivered on the returned channel, which has capacity buffer
// and is closed once the rasterization is over. Closing done tells the
// rasterization that nobody listens any more; it then stops with an error
// of code core.ECONNECTION.
//
// The outcome, including validation and lookup errors, is reported by the
// Completion.
func (r *Rasterizer) Stream(req Request, done <-chan struct{}, buffer int) (<-chan *Bitmap, Completion) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan *Bitmap, buffer)
	c := &completion{finished: make(chan struct{})}
	go func(ch chan<- *Bitmap) {
		c.err = r.Rasterize(req, ChannelSink{C: ch, Done: done})
		close(ch)
		close(c.finished)
	}(ch)
	return ch, c
}
