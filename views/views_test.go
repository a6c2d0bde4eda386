package views

import (
	"testing"

	"github.com/fitkit/fit/types"
	"github.com/stretchr/testify/require"
)

func TestSemicircles(t *testing.T) {
	// 1<<31 semicircles spans 180 degrees; a quarter turn is 1<<30.
	require.InDelta(t, 90.0, Semicircles(1<<30), 0.001)
	require.InDelta(t, 0.0, Semicircles(0), 0.001)
}

func TestRecordFromFields(t *testing.T) {
	msg := types.DecodedMessage{
		GlobalMessageNumber: GlobalMessageNumberRecord,
		Fields: []types.FieldValue{
			types.NewSintValue(recordDefNumPositionLat, types.BaseTypeSint32, 123456, false),
			types.NewUintValue(recordDefNumHeartRate, types.BaseTypeUint8, 145, false),
			types.NewUintValue(recordDefNumCadence, types.BaseTypeUint8, uint64(types.BaseTypeUint8.InvalidUint()), false),
		},
	}

	rec := RecordFromFields(msg)
	require.NotNil(t, rec.PositionLat)
	require.EqualValues(t, 123456, *rec.PositionLat)
	require.NotNil(t, rec.HeartRate)
	require.EqualValues(t, 145, *rec.HeartRate)
	require.Nil(t, rec.Cadence, "invalid-value sentinel should be treated as absent")
	require.Nil(t, rec.Power, "field never present in the message")
}

func TestFileIDFromFields(t *testing.T) {
	msg := types.DecodedMessage{
		GlobalMessageNumber: GlobalMessageNumberFileID,
		Fields: []types.FieldValue{
			types.NewUintValue(fileIDDefNumType, types.BaseTypeEnum, 4, false),
			types.NewUintValue(fileIDDefNumManufacturer, types.BaseTypeUint16, 1, false),
			types.NewUintValue(fileIDDefNumSerialNumber, types.BaseTypeUint32z, 987654321, false),
		},
	}

	fid := FileIDFromFields(msg)
	require.EqualValues(t, 4, *fid.Type)
	require.EqualValues(t, 1, *fid.Manufacturer)
	require.EqualValues(t, 987654321, *fid.SerialNumber)
	require.Nil(t, fid.Product)
	require.Nil(t, fid.TimeCreated)
}

func TestDeviceInfoFromFields(t *testing.T) {
	msg := types.DecodedMessage{
		GlobalMessageNumber: GlobalMessageNumberDeviceInfo,
		Fields: []types.FieldValue{
			types.NewUintValue(deviceInfoDefNumManufacturer, types.BaseTypeUint16, 1, false),
			types.NewUintValue(deviceInfoDefNumSoftwareVersion, types.BaseTypeUint16, 310, false),
		},
	}

	di := DeviceInfoFromFields(msg)
	require.EqualValues(t, 1, *di.Manufacturer)
	require.EqualValues(t, 310, *di.SoftwareVersion)
	require.Nil(t, di.Product)
	require.Nil(t, di.SerialNumber)
}
