package pcc

import (
	"time"
)

// Status is the feature button state shown to the driver.
type Status uint8

const (
	StatusOff      Status = 0
	StatusStandby  Status = 1
	StatusEnabled  Status = 2
	StatusNotReady Status = 9
)

func (s Status) String() string {
	switch s {
	case StatusOff:
		return "off"
	case StatusStandby:
		return "standby"
	case StatusEnabled:
		return "enabled"
	case StatusNotReady:
		return "not ready"
	}
	return "unknown"
}

type CruiseButton uint8

const (
	ButtonIdle    CruiseButton = 0
	ButtonCancel  CruiseButton = 1
	ButtonMain    CruiseButton = 2
	ButtonResume  CruiseButton = 4
	ButtonResume2 CruiseButton = 8
	ButtonDecel   CruiseButton = 16
	ButtonDecel2  CruiseButton = 32
)

// CruiseState is the state reported by the stock cruise control.
type CruiseState uint8

const (
	CruiseOff CruiseState = iota
	CruiseStandby
	CruiseEnabled
	CruiseStandstill
	CruiseOverride
	CruiseFault
	CruisePreFault
	CruisePreCancel
)

func (c CruiseState) IsOff() bool {
	return c == CruiseOff
}

type CarState struct {
	VEgo                  float64 // m/s
	AEgo                  float64
	SteeringAngleDeg      float64
	BrakePressed          bool
	Standstill            bool
	TurnSignal            bool
	Imperial              bool
	PedalFault            uint16
	PedalIndex            uint16
	CruiseState           CruiseState
	ForcePedalOverCC      bool
	Buttons               CruiseButton
	FollowTime            float64 // s
	Trim                  string
	TorqueLevel           float64
	UseRadar              bool
	PedalInterceptorValue float64
}

type Actuators struct {
	Gas   float64
	Brake float64
}

type SpeedLimit struct {
	Value  float64 // m/s
	Offset float64 // m/s
	Active bool
}

type MapData struct {
	Curvature      float64 // 1/m
	DistToTurn     float64 // m
	CurvatureValid bool
}

// Inputs are sampled once at the start of a cycle. RadarReceived is false
// when no radar message arrived this cycle, Lead is nil when one arrived
// without a lead.
type Inputs struct {
	Now             time.Time
	Car             CarState
	RadarReceived   bool
	Lead            *Lead
	Map             *MapData
	Actuators       Actuators
	CommandedSpeed  float64 // m/s
	ControlsEnabled bool
	SpeedLimit      SpeedLimit
	LaneChange      bool
}

type PedalCommand struct {
	Value  float64
	Enable bool
	Index  uint8
}

func (p PedalCommand) Neutral() bool {
	return p.Value == 0 && !p.Enable
}

type Envelope struct {
	AccelMin   float64
	AccelMax   float64
	JerkMin    float64
	JerkMax    float64
	BrakeFloor float64
}

type Output struct {
	Pedal          PedalCommand
	Resets         []PedalCommand
	Status         Status
	Enabled        bool
	Available      bool
	TargetSpeedKph float64
	Envelope       Envelope
	Rule           Rule
	Alerts         []string
}

// ControllerState is owned by a single Controller.
type ControllerState struct {
	Enabled         bool
	PrevEnabled     bool
	Available       bool
	PrevAvailable   bool
	TargetSpeedKph  float64
	SpeedLimitKph   float64
	PrevSpeedLimit  float64
	StalkPullMs     int64
	PrevStalkPullMs int64
	PrevButtons     CruiseButton
	PrevCruiseState CruiseState
	PedalIndex      uint8
	PedalSteady     float64
	PrevPedal       float64
	PrevAccel       float64
	PrevVEgo        float64
	ZeroTorquePedal float64
	CalibrationTorq float64
	LastTorqueLevel float64
	TimeoutFrame    int
	PrevActuatorIdx uint16
	Status          Status
}

func NewControllerState(cfg *Config) *ControllerState {
	return &ControllerState{
		PrevStalkPullMs: -1000,
		ZeroTorquePedal: cfg.InitialZeroTorquePedal,
		CalibrationTorq: cfg.TorqueLevelDecel,
		Status:          StatusStandby,
	}
}

// NextIndex returns the index to stamp on the next actuator message.
func (s *ControllerState) NextIndex() uint8 {
	idx := s.PedalIndex
	s.PedalIndex = (s.PedalIndex + 1) % 16
	return idx
}

func (s *ControllerState) SetTarget(kph float64, cfg *Config) {
	s.TargetSpeedKph = min(max(kph, cfg.MinSpeedKph), cfg.MaxSpeedKph)
}
