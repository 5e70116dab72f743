//go:generate capnp compile -I$GOPATH/src/capnproto.org/go/capnp/std -ogo custom.capnp

package custom

import (
	"math"

	capnp "capnproto.org/go/capnp/v3"
)

type CarInput capnp.Struct

// CarInput_TypeID is the unique identifier for the type CarInput.
const CarInput_TypeID = 0xc0bba10bfaebf4a7

func NewCarInput(s *capnp.Segment) (CarInput, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 56, PointerCount: 1})
	return CarInput(st), err
}

func NewRootCarInput(s *capnp.Segment) (CarInput, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 56, PointerCount: 1})
	return CarInput(st), err
}

func ReadRootCarInput(msg *capnp.Message) (CarInput, error) {
	root, err := msg.Root()
	return CarInput(root.Struct()), err
}

func (s CarInput) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s CarInput) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s CarInput) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s CarInput) VEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s CarInput) SetVEgo(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s CarInput) AEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s CarInput) SetAEgo(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s CarInput) SteeringAngleDeg() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s CarInput) SetSteeringAngleDeg(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s CarInput) FollowTime() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s CarInput) SetFollowTime(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s CarInput) TorqueLevel() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s CarInput) SetTorqueLevel(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s CarInput) PedalInterceptorValue() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(20))
}

func (s CarInput) SetPedalInterceptorValue(v float32) {
	capnp.Struct(s).SetUint32(20, math.Float32bits(v))
}

func (s CarInput) Gas() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(24))
}

func (s CarInput) SetGas(v float32) {
	capnp.Struct(s).SetUint32(24, math.Float32bits(v))
}

func (s CarInput) Brake() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(28))
}

func (s CarInput) SetBrake(v float32) {
	capnp.Struct(s).SetUint32(28, math.Float32bits(v))
}

func (s CarInput) CommandedSpeed() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(32))
}

func (s CarInput) SetCommandedSpeed(v float32) {
	capnp.Struct(s).SetUint32(32, math.Float32bits(v))
}

func (s CarInput) SpeedLimit() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(36))
}

func (s CarInput) SetSpeedLimit(v float32) {
	capnp.Struct(s).SetUint32(36, math.Float32bits(v))
}

func (s CarInput) SpeedLimitOffset() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(40))
}

func (s CarInput) SetSpeedLimitOffset(v float32) {
	capnp.Struct(s).SetUint32(40, math.Float32bits(v))
}

func (s CarInput) PedalInterceptorState() uint16 {
	return capnp.Struct(s).Uint16(44)
}

func (s CarInput) SetPedalInterceptorState(v uint16) {
	capnp.Struct(s).SetUint16(44, v)
}

func (s CarInput) PedalIndex() uint16 {
	return capnp.Struct(s).Uint16(46)
}

func (s CarInput) SetPedalIndex(v uint16) {
	capnp.Struct(s).SetUint16(46, v)
}

func (s CarInput) CruiseState() uint16 {
	return capnp.Struct(s).Uint16(48)
}

func (s CarInput) SetCruiseState(v uint16) {
	capnp.Struct(s).SetUint16(48, v)
}

func (s CarInput) CruiseButtons() uint16 {
	return capnp.Struct(s).Uint16(50)
}

func (s CarInput) SetCruiseButtons(v uint16) {
	capnp.Struct(s).SetUint16(50, v)
}

func (s CarInput) BrakePressed() bool {
	return capnp.Struct(s).Bit(416)
}

func (s CarInput) SetBrakePressed(v bool) {
	capnp.Struct(s).SetBit(416, v)
}

func (s CarInput) Standstill() bool {
	return capnp.Struct(s).Bit(417)
}

func (s CarInput) SetStandstill(v bool) {
	capnp.Struct(s).SetBit(417, v)
}

func (s CarInput) TurnSignal() bool {
	return capnp.Struct(s).Bit(418)
}

func (s CarInput) SetTurnSignal(v bool) {
	capnp.Struct(s).SetBit(418, v)
}

func (s CarInput) Imperial() bool {
	return capnp.Struct(s).Bit(419)
}

func (s CarInput) SetImperial(v bool) {
	capnp.Struct(s).SetBit(419, v)
}

func (s CarInput) ControlsEnabled() bool {
	return capnp.Struct(s).Bit(420)
}

func (s CarInput) SetControlsEnabled(v bool) {
	capnp.Struct(s).SetBit(420, v)
}

func (s CarInput) SpeedLimitActive() bool {
	return capnp.Struct(s).Bit(421)
}

func (s CarInput) SetSpeedLimitActive(v bool) {
	capnp.Struct(s).SetBit(421, v)
}

func (s CarInput) LaneChange() bool {
	return capnp.Struct(s).Bit(422)
}

func (s CarInput) SetLaneChange(v bool) {
	capnp.Struct(s).SetBit(422, v)
}

func (s CarInput) Trim() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s CarInput) HasTrim() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s CarInput) SetTrim(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

type RadarState capnp.Struct

// RadarState_TypeID is the unique identifier for the type RadarState.
const RadarState_TypeID = 0xd1240d0ee8b3a0fb

func NewRadarState(s *capnp.Segment) (RadarState, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 24, PointerCount: 0})
	return RadarState(st), err
}

func NewRootRadarState(s *capnp.Segment) (RadarState, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 24, PointerCount: 0})
	return RadarState(st), err
}

func ReadRootRadarState(msg *capnp.Message) (RadarState, error) {
	root, err := msg.Root()
	return RadarState(root.Struct()), err
}

func (s RadarState) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s RadarState) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s RadarState) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s RadarState) DRel() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s RadarState) SetDRel(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s RadarState) VRel() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s RadarState) SetVRel(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s RadarState) ARel() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s RadarState) SetARel(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s RadarState) VLeadK() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s RadarState) SetVLeadK(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s RadarState) ALeadK() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s RadarState) SetALeadK(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s RadarState) Status() bool {
	return capnp.Struct(s).Bit(160)
}

func (s RadarState) SetStatus(v bool) {
	capnp.Struct(s).SetBit(160, v)
}

func (s RadarState) LeadValid() bool {
	return capnp.Struct(s).Bit(161)
}

func (s RadarState) SetLeadValid(v bool) {
	capnp.Struct(s).SetBit(161, v)
}

type MapData capnp.Struct

// MapData_TypeID is the unique identifier for the type MapData.
const MapData_TypeID = 0xa3f74a39e1811fb0

func NewMapData(s *capnp.Segment) (MapData, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 0})
	return MapData(st), err
}

func NewRootMapData(s *capnp.Segment) (MapData, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 0})
	return MapData(st), err
}

func ReadRootMapData(msg *capnp.Message) (MapData, error) {
	root, err := msg.Root()
	return MapData(root.Struct()), err
}

func (s MapData) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s MapData) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s MapData) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s MapData) Curvature() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s MapData) SetCurvature(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s MapData) DistToTurn() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s MapData) SetDistToTurn(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s MapData) CurvatureValid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s MapData) SetCurvatureValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

type PccState capnp.Struct

// PccState_TypeID is the unique identifier for the type PccState.
const PccState_TypeID = 0xbc6975463daa552b

func NewPccState(s *capnp.Segment) (PccState, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 40, PointerCount: 1})
	return PccState(st), err
}

func NewRootPccState(s *capnp.Segment) (PccState, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 40, PointerCount: 1})
	return PccState(st), err
}

func ReadRootPccState(msg *capnp.Message) (PccState, error) {
	root, err := msg.Root()
	return PccState(root.Struct()), err
}

func (s PccState) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s PccState) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s PccState) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s PccState) Pedal() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s PccState) SetPedal(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s PccState) TargetSpeedKph() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s PccState) SetTargetSpeedKph(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s PccState) AccelMin() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s PccState) SetAccelMin(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s PccState) AccelMax() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s PccState) SetAccelMax(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s PccState) JerkMin() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s PccState) SetJerkMin(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s PccState) JerkMax() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(20))
}

func (s PccState) SetJerkMax(v float32) {
	capnp.Struct(s).SetUint32(20, math.Float32bits(v))
}

func (s PccState) BrakeFloor() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(24))
}

func (s PccState) SetBrakeFloor(v float32) {
	capnp.Struct(s).SetUint32(24, math.Float32bits(v))
}

func (s PccState) PedalIndex() uint16 {
	return capnp.Struct(s).Uint16(28)
}

func (s PccState) SetPedalIndex(v uint16) {
	capnp.Struct(s).SetUint16(28, v)
}

func (s PccState) Status() uint16 {
	return capnp.Struct(s).Uint16(30)
}

func (s PccState) SetStatus(v uint16) {
	capnp.Struct(s).SetUint16(30, v)
}

func (s PccState) Enabled() bool {
	return capnp.Struct(s).Bit(256)
}

func (s PccState) SetEnabled(v bool) {
	capnp.Struct(s).SetBit(256, v)
}

func (s PccState) Available() bool {
	return capnp.Struct(s).Bit(257)
}

func (s PccState) SetAvailable(v bool) {
	capnp.Struct(s).SetBit(257, v)
}

func (s PccState) PedalEnabled() bool {
	return capnp.Struct(s).Bit(258)
}

func (s PccState) SetPedalEnabled(v bool) {
	capnp.Struct(s).SetBit(258, v)
}

func (s PccState) Rule() uint16 {
	return capnp.Struct(s).Uint16(34)
}

func (s PccState) SetRule(v uint16) {
	capnp.Struct(s).SetUint16(34, v)
}

func (s PccState) Alert() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s PccState) HasAlert() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s PccState) SetAlert(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

type PccCommand capnp.Struct

// PccCommand_TypeID is the unique identifier for the type PccCommand.
const PccCommand_TypeID = 0xe3594679c2f99471

func NewPccCommand(s *capnp.Segment) (PccCommand, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return PccCommand(st), err
}

func NewRootPccCommand(s *capnp.Segment) (PccCommand, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return PccCommand(st), err
}

func ReadRootPccCommand(msg *capnp.Message) (PccCommand, error) {
	root, err := msg.Root()
	return PccCommand(root.Struct()), err
}

func (s PccCommand) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s PccCommand) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s PccCommand) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s PccCommand) Type() PccCommandType {
	return PccCommandType(capnp.Struct(s).Uint16(0))
}

func (s PccCommand) SetType(v PccCommandType) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s PccCommand) Float() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s PccCommand) SetFloat(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s PccCommand) Bool() bool {
	return capnp.Struct(s).Bit(16)
}

func (s PccCommand) SetBool(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s PccCommand) Str() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s PccCommand) HasStr() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s PccCommand) SetStr(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

// PccCommandType_TypeID is the unique identifier for the type PccCommandType.
const PccCommandType_TypeID = 0xe8ac88986f2a0078

type PccCommandType uint16

// Values of PccCommandType.
const (
	PccCommandType_reloadSettings            PccCommandType = 0
	PccCommandType_saveSettings              PccCommandType = 1
	PccCommandType_loadDefaultSettings       PccCommandType = 2
	PccCommandType_setLogLevel               PccCommandType = 3
	PccCommandType_setMode                   PccCommandType = 4
	PccCommandType_setExperimentalFollowMode PccCommandType = 5
	PccCommandType_setForcePedalOverCC       PccCommandType = 6
	PccCommandType_setUseRadar               PccCommandType = 7
	PccCommandType_setTrim                   PccCommandType = 8
	PccCommandType_setFollowTime             PccCommandType = 9
	PccCommandType_setSpeedLimitOffset       PccCommandType = 10
	PccCommandType_setButton                 PccCommandType = 11
)

// String returns the enum's constant name.
func (c PccCommandType) String() string {
	switch c {
	case PccCommandType_reloadSettings:
		return "reloadSettings"
	case PccCommandType_saveSettings:
		return "saveSettings"
	case PccCommandType_loadDefaultSettings:
		return "loadDefaultSettings"
	case PccCommandType_setLogLevel:
		return "setLogLevel"
	case PccCommandType_setMode:
		return "setMode"
	case PccCommandType_setExperimentalFollowMode:
		return "setExperimentalFollowMode"
	case PccCommandType_setForcePedalOverCC:
		return "setForcePedalOverCC"
	case PccCommandType_setUseRadar:
		return "setUseRadar"
	case PccCommandType_setTrim:
		return "setTrim"
	case PccCommandType_setFollowTime:
		return "setFollowTime"
	case PccCommandType_setSpeedLimitOffset:
		return "setSpeedLimitOffset"
	case PccCommandType_setButton:
		return "setButton"
	default:
		return ""
	}
}

// PccCommandTypeFromString returns the enum value with a name,
// or the zero value if there's no such value.
func PccCommandTypeFromString(c string) PccCommandType {
	switch c {
	case "reloadSettings":
		return PccCommandType_reloadSettings
	case "saveSettings":
		return PccCommandType_saveSettings
	case "loadDefaultSettings":
		return PccCommandType_loadDefaultSettings
	case "setLogLevel":
		return PccCommandType_setLogLevel
	case "setMode":
		return PccCommandType_setMode
	case "setExperimentalFollowMode":
		return PccCommandType_setExperimentalFollowMode
	case "setForcePedalOverCC":
		return PccCommandType_setForcePedalOverCC
	case "setUseRadar":
		return PccCommandType_setUseRadar
	case "setTrim":
		return PccCommandType_setTrim
	case "setFollowTime":
		return PccCommandType_setFollowTime
	case "setSpeedLimitOffset":
		return PccCommandType_setSpeedLimitOffset
	case "setButton":
		return PccCommandType_setButton
	default:
		return 0
	}
}
