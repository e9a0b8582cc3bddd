package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishSubscribe(t *testing.T) {
	b := New[string]()
	defer b.Close()

	a := b.Subscribe()
	c := b.Subscribe()
	b.Publish("hello")

	assert.Equal(t, "hello", <-a)
	assert.Equal(t, "hello", <-c)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New[int]()
	defer b.Close()

	ch := b.Subscribe()
	b.Unsubscribe(ch)
	_, open := <-ch
	assert.False(t, open, "unsubscribed channel must be closed")

	// publishing after unsubscribe must not panic
	b.Publish(1)
}

func TestBus_CloseIdempotent(t *testing.T) {
	b := New[int]()
	ch := b.Subscribe()
	b.Close()
	b.Close()
	_, open := <-ch
	assert.False(t, open)
	b.Publish(1) // no-op after close
}

func TestBus_NonBlockingDelivery(t *testing.T) {
	b := New[int]()
	defer b.Close()
	_ = b.Subscribe() // never drained
	for i := 0; i < 100; i++ {
		b.Publish(i) // must not block once the buffer is full
	}
}
