package params

import (
	"strconv"

	"github.com/mesh-intelligence/knobs/pkg/types"
)

// FanDutyCycle is the cooling fan PWM duty cycle.
type FanDutyCycle struct {
	Percent uint8
}

// fanDutyCycleCodec accepts duty cycles in [0, 100] percent.
type fanDutyCycleCodec struct{}

func (fanDutyCycleCodec) Meta() types.Meta {
	return types.Meta{
		Name:    "Fan Duty Cycle",
		Key:     "fan_duty_cycle",
		Storage: types.StorageVolatile,
	}
}

func (fanDutyCycleCodec) Default() FanDutyCycle {
	return FanDutyCycle{Percent: 40}
}

func (fanDutyCycleCodec) Validate(v FanDutyCycle) bool {
	return v.Percent <= 100
}

func (fanDutyCycleCodec) Parse(text string) (FanDutyCycle, error) {
	n, err := parseUint(text, 8)
	if err != nil {
		return FanDutyCycle{}, err
	}
	return FanDutyCycle{Percent: uint8(n)}, nil
}

func (fanDutyCycleCodec) Format(v FanDutyCycle) string {
	return strconv.FormatUint(uint64(v.Percent), 10)
}
