package pid

import (
	"encoding/json"

	"github.com/pkg/errors"
	"pfeifer.dev/pccd/params"
)

type Gains struct {
	P float64 `json:"p"`
	I float64 `json:"i"`
	D float64 `json:"d"`
	F float64 `json:"f"`
}

func DefaultGains() Gains {
	return Gains{
		P: 0.325,
		I: 0.054,
		D: 0.01,
		F: 1.0,
	}
}

type LoadResult int

const (
	GainsLoaded LoadResult = iota
	GainsNotFound
	GainsMalformed
	GainsReadFailed
)

func (r LoadResult) String() string {
	switch r {
	case GainsLoaded:
		return "loaded"
	case GainsNotFound:
		return "not found"
	case GainsMalformed:
		return "malformed"
	case GainsReadFailed:
		return "read failed"
	}
	return "unknown"
}

// fields are pointers so a missing key can be told apart from a zero gain
type gainsRecord struct {
	P *float64 `json:"p"`
	I *float64 `json:"i"`
	D *float64 `json:"d"`
	F *float64 `json:"f"`
}

// ParseGains decodes a stored gain record. Missing fields take the value
// from defaults. A record that predates the d gain is still a clean load.
func ParseGains(data []byte, defaults Gains) (Gains, LoadResult, error) {
	var record gainsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return defaults, GainsMalformed, errors.Wrap(err, "could not decode gains")
	}

	gains := defaults
	result := GainsLoaded
	pick := func(v *float64, dst *float64) {
		if v == nil {
			result = GainsMalformed
			return
		}
		*dst = *v
	}
	pick(record.P, &gains.P)
	pick(record.I, &gains.I)
	pick(record.F, &gains.F)
	if record.D != nil {
		gains.D = *record.D
	}

	return gains, result, nil
}

type ParamsGainStore struct {
	Path     string
	Defaults Gains
}

func NewParamsGainStore(defaults Gains) *ParamsGainStore {
	return &ParamsGainStore{
		Path:     params.PCC_PID_PARAMS,
		Defaults: defaults,
	}
}

func (s *ParamsGainStore) Load() (Gains, LoadResult, error) {
	data, err := params.GetParam(s.Path)
	if params.IsNotFound(err) {
		return s.Defaults, GainsNotFound, nil
	}
	if err != nil {
		return s.Defaults, GainsReadFailed, err
	}
	return ParseGains(data, s.Defaults)
}

func (s *ParamsGainStore) Save(g Gains) error {
	data, err := json.Marshal(g)
	if err != nil {
		return errors.Wrap(err, "could not encode gains")
	}
	return errors.Wrap(params.PutParam(s.Path, data), "could not save gains")
}

func (s *ParamsGainStore) Remove() error {
	return params.RemoveParam(s.Path)
}
