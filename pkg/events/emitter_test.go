package events

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	msgs    []message
	err     error
	drained bool
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, message{subject: subject, data: data})
	return nil
}

func (f *fakePublisher) Drain() error {
	f.drained = true
	return nil
}

func TestEmitter_PublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	e := NewEmitter(pub, "gateway")

	ev := NewEvent(ContractZHX, TypeMint, "0x00000000000000000000000000000000000000aa")
	ev.TxHash = "0xabc"
	ev.BlockNumber = "7"
	ev.Data = map[string]string{"to": "0x01", "amount": "5"}
	require.NoError(t, e.Emit(ev))

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "gateway.zhx.mint", pub.msgs[0].subject)

	var got map[string]any
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &got))
	assert.Equal(t, "mint", got["type"])
	assert.Equal(t, "zhx", got["contract"])
	assert.Equal(t, "0xabc", got["txHash"])
	assert.Equal(t, "7", got["blockNumber"])
	assert.NotContains(t, got, "gasUsed")
	assert.NotZero(t, got["timestamp"])
}

func TestEmitter_PropagatesPublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	e := NewEmitter(pub, "gateway")

	err := e.Emit(NewEvent(ContractStorage, TypeSet, "0x01"))
	assert.EqualError(t, err, "nats: connection closed")
}

func TestEmitter_CloseDrains(t *testing.T) {
	pub := &fakePublisher{}
	NewEmitter(pub, "gateway").Close()
	assert.True(t, pub.drained)
}

func TestNop(t *testing.T) {
	e := Nop()
	assert.NoError(t, e.Emit(NewEvent(ContractStorage, TypeDeployed, "0x01")))
	e.Close()
}
