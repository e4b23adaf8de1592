package raster

import (
	"context"
	"errors"
	"time"

	"github.com/npillmayer/rendertext/core"
)

func (env *RasterTestEnviron) TestStream() {
	ch, completion := env.rast.Stream(env.request('A', 26), nil, 4)
	var got []rune
	for b := range ch {
		got = append(got, b.Codepoint)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	env.Require().NoError(completion.Await(ctx))
	env.Require().Len(got, 26)
	env.Equal('A', got[0])
	env.Equal('Z', got[25])
	env.NoError(completion.Await(ctx), "awaiting twice must yield the same outcome")
}

func (env *RasterTestEnviron) TestStreamUnknownFont() {
	ch, completion := env.rast.Stream(Request{FontName: "NotLoaded", Start: 'A', Count: 3,
		ScaleX: 20, ScaleY: 20}, nil, 0)
	n := 0
	for range ch {
		n++
	}
	env.Zero(n)
	err := completion.Await(context.Background())
	env.Equal(core.EMISSING, core.Code(err))
}

func (env *RasterTestEnviron) TestStreamReceiverDisconnects() {
	done := make(chan struct{})
	ch, completion := env.rast.Stream(env.request('A', 26), done, 0)
	first := <-ch
	env.Equal('A', first.Codepoint)
	close(done)
	for range ch { // drain until the producer gives up
	}
	err := completion.Await(context.Background())
	env.Require().Error(err)
	env.Equal(core.ECONNECTION, core.Code(err))
	env.True(errors.Is(err, ErrDisconnected))
}

func (env *RasterTestEnviron) TestAwaitHonorsContext() {
	done := make(chan struct{})
	defer close(done)
	_, completion := env.rast.Stream(env.request('A', 26), done, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := completion.Await(ctx)
	env.True(errors.Is(err, context.Canceled))
}
