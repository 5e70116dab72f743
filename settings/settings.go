package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/pccd/cereal/custom"
	"pfeifer.dev/pccd/params"
	"pfeifer.dev/pccd/utils"
)

var (
	Settings = PccSettings{}
)

type PccSettings struct {
	LogLevel               string  `json:"log_level"`
	Mode                   string  `json:"mode"`
	ExperimentalFollowMode bool    `json:"experimental_follow_mode"`
	ForcePedalOverCC       bool    `json:"force_pedal_over_cc"`
	UseRadar               bool    `json:"use_radar"`
	Trim                   string  `json:"trim"`
	FollowTime             float32 `json:"follow_time"`
	SpeedLimitOffset       float32 `json:"speed_limit_offset"`
	CanInterface           string  `json:"can_interface"`
	PedalBus               int     `json:"pedal_bus"`
	PedalWithoutHarness    bool    `json:"pedal_without_harness"`
}

func (s *PccSettings) Default() {
	s.LogLevel = "error"
	s.Mode = "OP"
	s.ExperimentalFollowMode = false
	s.ForcePedalOverCC = false
	s.UseRadar = false
	s.Trim = "S"
	s.FollowTime = 1.4
	s.SpeedLimitOffset = 0
	s.CanInterface = ""
	s.PedalBus = 2
	s.PedalWithoutHarness = false
}

// Bus the pedal interceptor listens on.
func (s *PccSettings) Bus() int {
	if s.PedalWithoutHarness {
		return 0
	}
	return s.PedalBus
}

func (s *PccSettings) Load() (success bool) {
	s.Default() // fields missing from the param keep their defaults
	data, err := params.GetParam(params.PCC_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *PccSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *PccSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.PCC_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *PccSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

// Handle applies a runtime command. It reports whether anything the
// controller depends on changed.
func (s *PccSettings) Handle(cmd custom.PccCommand) (changed bool) {
	switch cmd.Type() {
	case custom.PccCommandType_reloadSettings:
		return s.Load()
	case custom.PccCommandType_saveSettings:
		snapshot := *s
		go snapshot.Save()
		return false
	case custom.PccCommandType_loadDefaultSettings:
		s.Default()
		s.setLogLevel()
	case custom.PccCommandType_setLogLevel:
		logLevel, err := cmd.Str()
		if err != nil {
			utils.Loge(err)
			return false
		}
		s.LogLevel = logLevel
		s.setLogLevel()
		return false
	case custom.PccCommandType_setMode:
		mode, err := cmd.Str()
		if err != nil {
			utils.Loge(err)
			return false
		}
		s.Mode = strings.ToUpper(mode)
	case custom.PccCommandType_setExperimentalFollowMode:
		s.ExperimentalFollowMode = cmd.Bool()
	case custom.PccCommandType_setForcePedalOverCC:
		s.ForcePedalOverCC = cmd.Bool()
	case custom.PccCommandType_setUseRadar:
		s.UseRadar = cmd.Bool()
	case custom.PccCommandType_setTrim:
		trim, err := cmd.Str()
		if err != nil {
			utils.Loge(err)
			return false
		}
		s.Trim = strings.ToUpper(trim)
	case custom.PccCommandType_setFollowTime:
		s.FollowTime = cmd.Float()
	case custom.PccCommandType_setSpeedLimitOffset:
		s.SpeedLimitOffset = cmd.Float()
	default:
		return false
	}
	return true
}
