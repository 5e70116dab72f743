package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/pccd/settings"
	"pfeifer.dev/pccd/utils"
)

type Reader[T any] func(*capnp.Message) (T, error)

type Subscriber[T any] struct {
	Sub    gomsgq.MsgqSubscriber
	name   string
	reader Reader[T]
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	obj, err := Decode(data, s.reader)
	if err != nil {
		utils.Logde(err, "topic", s.name)
		return obj, false
	}
	return obj, true
}

// Decode unmarshals a single message and reads its root with reader.
func Decode[T any](data []byte, reader Reader[T]) (obj T, err error) {
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return obj, errors.Wrap(err, "could not unmarshal message")
	}

	// allow us to read as much as we want
	msg.ResetReadLimit(math.MaxUint64)

	obj, err = reader(msg)
	if err != nil {
		return obj, errors.Wrap(err, "could not read message root")
	}
	return obj, nil
}

func NewSubscriber[T any](name string, reader Reader[T], conflate bool) (subscriber Subscriber[T]) {
	msgq := newMsgq(name)
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)

	subscriber.Sub = sub
	subscriber.name = name
	subscriber.reader = reader
	return subscriber
}

func newMsgq(name string) gomsgq.Msgq {
	msgq := gomsgq.Msgq{}
	var err error
	if settings.IsSmallSegment(name) {
		err = msgq.Init(name, settings.SMALL_SEGMENT_SIZE)
	} else {
		err = msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	}
	if err != nil {
		panic(err)
	}
	return msgq
}
