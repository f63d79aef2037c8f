package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitter(t *testing.T) {
	assert.Equal(t, time.Second, Jitter(time.Second, time.Second))
	assert.Equal(t, time.Second, Jitter(time.Second, time.Millisecond))

	for i := 0; i < 50; i++ {
		d := Jitter(20*time.Second, 40*time.Second)
		assert.GreaterOrEqual(t, d, 20*time.Second)
		assert.Less(t, d, 40*time.Second)
	}
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
	assert.NoError(t, Sleep(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Minute), context.Canceled)
}

func TestPacerFirstActionIsFree(t *testing.T) {
	p := NewPacer(time.Minute, 2*time.Minute)

	start := time.Now()
	assert.NoError(t, p.Wait(context.Background()))
	assert.Less(t, time.Since(start), time.Second)
}

func TestPacerSpacesActions(t *testing.T) {
	p := NewPacer(50*time.Millisecond, 60*time.Millisecond)

	start := time.Now()
	assert.NoError(t, p.Wait(context.Background()))
	assert.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestPacerSetBand(t *testing.T) {
	p := NewPacer(time.Millisecond, 2*time.Millisecond)
	assert.NoError(t, p.Wait(context.Background()))

	p.SetBand(50*time.Millisecond, 60*time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, p.min)
	assert.Equal(t, 60*time.Millisecond, p.max)

	// The next wait honors the widened band.
	start := time.Now()
	assert.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestPacerCancelled(t *testing.T) {
	p := NewPacer(time.Minute, time.Hour)
	assert.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Wait(ctx), context.Canceled)
}
