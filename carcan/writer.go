package carcan

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/pkg/errors"
	"go.einride.tech/can"
	"go.einride.tech/can/pkg/socketcan"
	"pfeifer.dev/pccd/pcc"
)

type Writer interface {
	WriteFrame(ctx context.Context, frame can.Frame) error
	Close() error
}

type SocketCANWriter struct {
	conn net.Conn
	tx   *socketcan.Transmitter
}

// InterfaceName is the socketcan interface for a pedal bus when none is
// configured.
func InterfaceName(configured string, bus int) string {
	if configured != "" {
		return configured
	}
	return fmt.Sprintf("can%d", bus)
}

func NewSocketCANWriter(ctx context.Context, iface string) (*SocketCANWriter, error) {
	conn, err := socketcan.DialContext(ctx, "can", iface)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open socketcan interface %s", iface)
	}
	return &SocketCANWriter{
		conn: conn,
		tx:   socketcan.NewTransmitter(conn),
	}, nil
}

func (w *SocketCANWriter) WriteFrame(ctx context.Context, frame can.Frame) error {
	return errors.Wrap(w.tx.TransmitFrame(ctx, frame), "could not transmit frame")
}

func (w *SocketCANWriter) Close() error {
	if w.conn != nil {
		return w.conn.Close()
	}
	return nil
}

// SendOutput writes the reset frames of a cycle followed by its pedal
// command. It stops at the first failed write.
func SendOutput(ctx context.Context, w Writer, out pcc.Output) error {
	for _, reset := range out.Resets {
		if err := w.WriteFrame(ctx, PedalFrame(reset)); err != nil {
			return err
		}
	}
	slog.Debug("pedal frame", "value", out.Pedal.Value, "enable", out.Pedal.Enable, "idx", out.Pedal.Index)
	return w.WriteFrame(ctx, PedalFrame(out.Pedal))
}
