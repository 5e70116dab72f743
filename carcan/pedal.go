package carcan

import (
	"go.einride.tech/can"
	"pfeifer.dev/pccd/pcc"
)

const (
	PedalCommandID  = 0x551
	pedalCommandLen = 6

	pedalOffset = 22.85856576
	pedalScale1 = 0.050796813
	pedalScale2 = 0.101593626
)

// PedalFrame encodes a pedal command for the interceptor. Both channels carry
// the same value at different scales. A disabled command zeroes them.
func PedalFrame(cmd pcc.PedalCommand) can.Frame {
	var value1, value2 uint16
	var enable byte
	if cmd.Enable {
		value1 = uint16((cmd.Value + pedalOffset) / pedalScale1)
		value2 = uint16((cmd.Value + pedalOffset) / pedalScale2)
		enable = 1
	}

	frame := can.Frame{
		ID:     PedalCommandID,
		Length: pedalCommandLen,
	}
	frame.Data[0] = byte(value1 >> 8)
	frame.Data[1] = byte(value1)
	frame.Data[2] = byte(value2 >> 8)
	frame.Data[3] = byte(value2)
	frame.Data[4] = enable<<7 | cmd.Index&0x0f
	frame.Data[5] = PedalChecksum(frame.Data[:pedalCommandLen-1])
	return frame
}

// DecodePedalFrame reads back the command of a pedal frame. The value comes
// from the first channel.
func DecodePedalFrame(frame can.Frame) (cmd pcc.PedalCommand, ok bool) {
	if frame.ID != PedalCommandID || frame.Length != pedalCommandLen {
		return cmd, false
	}
	if PedalChecksum(frame.Data[:pedalCommandLen-1]) != frame.Data[5] {
		return cmd, false
	}
	cmd.Enable = frame.Data[4]&0x80 != 0
	cmd.Index = frame.Data[4] & 0x0f
	if cmd.Enable {
		raw := uint16(frame.Data[0])<<8 | uint16(frame.Data[1])
		cmd.Value = float64(raw)*pedalScale1 - pedalOffset
	}
	return cmd, true
}

// PedalChecksum is a CRC-8 (poly 0xD5, init 0xFF) run from the last byte to
// the first.
func PedalChecksum(data []byte) byte {
	crc := byte(0xff)
	for i := len(data) - 1; i >= 0; i-- {
		crc ^= data[i]
		for range 8 {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0xd5
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
