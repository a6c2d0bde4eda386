package views

import "github.com/fitkit/fit/types"

// GlobalMessageNumberDeviceInfo is the device_info message's global message
// number.
const GlobalMessageNumberDeviceInfo = 23

const (
	deviceInfoDefNumSerialNumber    = 3
	deviceInfoDefNumManufacturer    = 2
	deviceInfoDefNumProduct         = 4
	deviceInfoDefNumSoftwareVersion = 5
)

// DeviceInfo is the curated projection of a device_info message: identity
// of one device (head unit, sensor, peripheral) present in the recording.
type DeviceInfo struct {
	Manufacturer    *uint64
	Product         *uint64
	SerialNumber    *uint64
	SoftwareVersion *uint64
}

// DeviceInfoFromFields projects msg's fields into a DeviceInfo.
func DeviceInfoFromFields(msg types.DecodedMessage) DeviceInfo {
	return DeviceInfo{
		Manufacturer:    optUint(msg, deviceInfoDefNumManufacturer),
		Product:         optUint(msg, deviceInfoDefNumProduct),
		SerialNumber:    optUint(msg, deviceInfoDefNumSerialNumber),
		SoftwareVersion: optUint(msg, deviceInfoDefNumSoftwareVersion),
	}
}
