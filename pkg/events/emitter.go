package events

import (
	"encoding/json"
)

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

type Emitter interface {
	Emit(event GatewayEvent) error
	Close()
}

type emitter struct {
	pub           Publisher
	subjectPrefix string
}

func NewEmitter(pub Publisher, subjectPrefix string) Emitter {
	return &emitter{
		pub:           pub,
		subjectPrefix: subjectPrefix,
	}
}

func (e *emitter) Emit(event GatewayEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return e.pub.Publish(event.Subject(e.subjectPrefix), data)
}

// Close drains the publisher when it supports draining.
func (e *emitter) Close() {
	if d, ok := e.pub.(interface{ Drain() error }); ok {
		_ = d.Drain()
	}
}

type nopEmitter struct{}

// Nop discards every event.
func Nop() Emitter { return nopEmitter{} }

func (nopEmitter) Emit(GatewayEvent) error { return nil }
func (nopEmitter) Close()                  {}
