package params

import (
	"strconv"

	"github.com/mesh-intelligence/knobs/pkg/types"
)

// SupplyVoltage is the measured supply rail voltage in millivolts.
type SupplyVoltage struct {
	Millivolts int32
}

// supplyVoltageCodec accepts voltages in the open interval (0, 20000) mV.
type supplyVoltageCodec struct{}

func (supplyVoltageCodec) Meta() types.Meta {
	return types.Meta{
		Name:    "Supply Voltage",
		Key:     "supply_voltage",
		Storage: types.StorageVolatile,
	}
}

func (supplyVoltageCodec) Default() SupplyVoltage {
	return SupplyVoltage{Millivolts: 12000}
}

func (supplyVoltageCodec) Validate(v SupplyVoltage) bool {
	return v.Millivolts > 0 && v.Millivolts < 20000
}

func (supplyVoltageCodec) Parse(text string) (SupplyVoltage, error) {
	n, err := parseInt(text, 32)
	if err != nil {
		return SupplyVoltage{}, err
	}
	return SupplyVoltage{Millivolts: int32(n)}, nil
}

func (supplyVoltageCodec) Format(v SupplyVoltage) string {
	return strconv.FormatInt(int64(v.Millivolts), 10)
}
