// Package decode implements the FIT record decoder state machine: the
// definition/data record dispatch loop, compressed-timestamp
// reconstruction, and field decoding per §4.3 and §4.4.
package decode

import (
	"fmt"
	"io"

	"github.com/fitkit/fit/container"
	"github.com/fitkit/fit/definition"
	"github.com/fitkit/fit/devfield"
	"github.com/fitkit/fit/endian"
	"github.com/fitkit/fit/errs"
	"github.com/fitkit/fit/header"
	"github.com/fitkit/fit/internal/hash"
	"github.com/fitkit/fit/internal/options"
	"github.com/fitkit/fit/internal/pool"
	"github.com/fitkit/fit/reader"
	"github.com/fitkit/fit/sink"
	"github.com/fitkit/fit/types"
)

// Decoder holds the mutable state of a single decode: the rolling
// reference timestamp, the 16-slot definition table, and the developer
// field registry (§3 "Decoder state"). A Decoder is single-use — construct
// a fresh one per stream via New.
type Decoder struct {
	cfg         *config
	rd          *reader.Reader
	table       *definition.Table
	devRegistry *devfield.Registry

	rollingTimestamp uint32
}

// New constructs a Decoder over r, applying opts. Unless
// WithoutContainerDetection is given, r is first passed through
// container.Open so gzip/zstd/lz4-wrapped streams are transparently
// unwrapped.
func New(r io.Reader, opts ...Option) (*Decoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	src := r
	if !cfg.skipContainerDetection {
		opened, err := container.Open(r)
		if err != nil {
			return nil, err
		}
		src = opened
	}

	return &Decoder{
		cfg:         cfg,
		rd:          reader.New(src),
		table:       definition.NewTable(),
		devRegistry: devfield.NewRegistry(cfg.unknownDevFieldBaseType),
	}, nil
}

// RedefinitionCount returns the number of local message type slots that
// have been redefined with a genuinely different schema so far (§4.10).
func (d *Decoder) RedefinitionCount() int {
	return d.table.RedefinitionCount()
}

// Decode reads the file header, then drives the record decoder loop until
// the header's declared data length has been consumed, delivering each
// decoded data record to snk. On success, the trailer CRC is read and
// verified before returning. userContext is passed through to every
// Sink.Deliver call unexamined.
func (d *Decoder) Decode(snk sink.Sink, userContext any) (*header.Header, error) {
	hdr, err := header.Decode(d.rd)
	if err != nil {
		return nil, err
	}

	dataStart := d.rd.Consumed()
	for d.rd.Consumed()-dataStart < int64(hdr.DataLength) {
		if err := d.decodeRecord(snk, userContext); err != nil {
			return hdr, err
		}
	}

	computed := d.rd.CRC()
	trailerBytes, err := d.rd.ReadBytesNoCRC(2)
	if err != nil {
		return hdr, errs.New(err, d.rd.Consumed(), "reading trailer CRC")
	}
	trailer := endian.GetLittleEndianEngine().Uint16(trailerBytes)

	if computed != trailer {
		return hdr, errs.New(errs.ErrBadTrailerCRC, d.rd.Consumed(), "")
	}

	return hdr, nil
}

// Decode is a convenience wrapper combining New and Decoder.Decode for
// callers who don't need to inspect decoder diagnostics (e.g.
// RedefinitionCount) afterward.
func Decode(r io.Reader, snk sink.Sink, userContext any, opts ...Option) (*header.Header, error) {
	dec, err := New(r, opts...)
	if err != nil {
		return nil, err
	}
	return dec.Decode(snk, userContext)
}

// decodeRecord reads one record header byte and dispatches on its encoding
// (§4.3).
func (d *Decoder) decodeRecord(snk sink.Sink, userContext any) error {
	headerByte, err := d.rd.ReadUint8()
	if err != nil {
		return errs.New(err, d.rd.Consumed(), "reading record header")
	}

	if headerByte&0x80 != 0 {
		return d.decodeCompressedTimestampRecord(headerByte, snk, userContext)
	}

	messageType := (headerByte >> 6) & 0x1
	devDataFlag := (headerByte>>5)&0x1 == 1
	reserved := (headerByte >> 4) & 0x1
	localType := headerByte & 0x0F

	if reserved != 0 && d.cfg.strictMode {
		return errs.New(errs.ErrMalformedDefinition, d.rd.Consumed(), "reserved bit set in normal record header")
	}

	if messageType == 1 {
		def, sig, err := d.decodeDefinitionRecord(devDataFlag)
		if err != nil {
			return err
		}
		d.table.Set(localType, def, sig)
		return nil
	}

	return d.decodeDataRecord(localType, nil, snk, userContext)
}

// decodeCompressedTimestampRecord reconstructs an absolute timestamp from a
// 5-bit offset against the rolling reference (§4.3 "Compressed-timestamp
// data record").
func (d *Decoder) decodeCompressedTimestampRecord(headerByte uint8, snk sink.Sink, userContext any) error {
	localType := (headerByte >> 5) & 0x3
	offset := uint32(headerByte & 0x1F)

	ref := d.rollingTimestamp
	ref5 := ref & 0x1F

	var newTimestamp uint32
	if offset >= ref5 {
		newTimestamp = (ref &^ 0x1F) | offset
	} else {
		newTimestamp = (ref &^ 0x1F) + 0x20 + offset
	}
	d.rollingTimestamp = newTimestamp

	return d.decodeDataRecord(localType, &newTimestamp, snk, userContext)
}

// decodeDefinitionRecord reads a definition record body (§4.3 "Definition
// record body") and returns the resulting Definition along with the
// xxHash64 signature of its raw wire bytes, used only for redefinition
// classification (§4.10).
func (d *Decoder) decodeDefinitionRecord(devDataFlag bool) (*definition.Definition, uint64, error) {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	reservedByte, err := d.rd.ReadUint8()
	if err != nil {
		return nil, 0, errs.New(err, d.rd.Consumed(), "reading definition reserved byte")
	}
	buf.MustWrite([]byte{reservedByte})

	archByte, err := d.rd.ReadUint8()
	if err != nil {
		return nil, 0, errs.New(err, d.rd.Consumed(), "reading architecture byte")
	}
	if archByte != 0 && archByte != 1 {
		return nil, 0, errs.New(errs.ErrMalformedDefinition, d.rd.Consumed(), "architecture byte must be 0 or 1")
	}
	buf.MustWrite([]byte{archByte})

	engine := endian.GetLittleEndianEngine()
	if archByte == 1 {
		engine = endian.GetBigEndianEngine()
	}

	gmnBytes, err := d.rd.ReadBytes(2)
	if err != nil {
		return nil, 0, errs.New(err, d.rd.Consumed(), "reading global message number")
	}
	buf.MustWrite(gmnBytes)
	globalMessageNumber := engine.Uint16(gmnBytes)

	numFields, err := d.rd.ReadUint8()
	if err != nil {
		return nil, 0, errs.New(err, d.rd.Consumed(), "reading field count")
	}
	buf.MustWrite([]byte{numFields})

	fields := make([]definition.FieldDescriptor, 0, numFields)
	for i := 0; i < int(numFields); i++ {
		fb, err := d.rd.ReadBytes(3)
		if err != nil {
			return nil, 0, errs.New(err, d.rd.Consumed(), fmt.Sprintf("reading field descriptor %d", i))
		}
		buf.MustWrite(fb)

		bt := types.ParseBaseType(fb[2])
		if !bt.Known() {
			return nil, 0, errs.New(errs.ErrMalformedDefinition, d.rd.Consumed(), fmt.Sprintf("unrecognized base type 0x%02x", fb[2]))
		}

		fields = append(fields, definition.FieldDescriptor{
			DefinitionNumber: fb[0],
			SizeBytes:        fb[1],
			BaseType:         bt,
		})
	}

	var devFields []definition.DevFieldDescriptor
	if devDataFlag {
		numDevFields, err := d.rd.ReadUint8()
		if err != nil {
			return nil, 0, errs.New(err, d.rd.Consumed(), "reading developer field count")
		}
		buf.MustWrite([]byte{numDevFields})

		devFields = make([]definition.DevFieldDescriptor, 0, numDevFields)
		for i := 0; i < int(numDevFields); i++ {
			fb, err := d.rd.ReadBytes(3)
			if err != nil {
				return nil, 0, errs.New(err, d.rd.Consumed(), fmt.Sprintf("reading developer field descriptor %d", i))
			}
			buf.MustWrite(fb)

			devFields = append(devFields, definition.DevFieldDescriptor{
				DefinitionNumber:   fb[0],
				SizeBytes:          fb[1],
				DeveloperDataIndex: fb[2],
			})
		}
	}

	def := &definition.Definition{
		GlobalMessageNumber: globalMessageNumber,
		Engine:              engine,
		Fields:              fields,
		DevFields:           devFields,
	}

	if def.PayloadSize() > d.cfg.maxMessageSize {
		return nil, 0, errs.New(errs.ErrArithmeticOverflow, d.rd.Consumed(), "definition payload size exceeds configured maximum")
	}

	signature := hash.Bytes(buf.Bytes())

	return def, signature, nil
}

// decodeDataRecord decodes a data record body against the definition bound
// to localType (§4.3 "Data record body"), reconstructs the message's
// effective timestamp, and dispatches it to snk. compressedTimestamp is
// non-nil for a compressed-timestamp header's reconstructed value; nil for
// a normal header, in which case the rolling reference is used unless an
// explicit timestamp field overrides it.
func (d *Decoder) decodeDataRecord(localType uint8, compressedTimestamp *uint32, snk sink.Sink, userContext any) error {
	def, ok := d.table.Get(localType)
	if !ok {
		return errs.New(errs.ErrUnknownLocalType, d.rd.Consumed(), fmt.Sprintf("local message type %d", localType))
	}

	fields := make([]types.FieldValue, 0, len(def.Fields)+len(def.DevFields))

	for _, fd := range def.Fields {
		fv, err := d.decodeFieldValue(fd.DefinitionNumber, fd.SizeBytes, fd.BaseType, def.Engine, false)
		if err != nil {
			return errs.New(err, d.rd.Consumed(), "decoding field")
		}
		fields = append(fields, fv)
	}

	for _, fd := range def.DevFields {
		bt := d.devRegistry.Resolve(fd.DeveloperDataIndex, fd.DefinitionNumber)
		fv, err := d.decodeFieldValue(fd.DefinitionNumber, fd.SizeBytes, bt, def.Engine, true)
		if err != nil {
			return errs.New(err, d.rd.Consumed(), "decoding developer field")
		}
		fields = append(fields, fv)
	}

	msg := types.DecodedMessage{
		GlobalMessageNumber: def.GlobalMessageNumber,
		LocalMessageType:    localType,
		Fields:              fields,
	}

	if compressedTimestamp != nil {
		msg.Timestamp = *compressedTimestamp
	} else {
		msg.Timestamp = d.rollingTimestamp
	}

	if tsField, ok := msg.Field(types.DefinitionNumberTimestamp); ok && tsField.Kind == types.KindUint {
		ts := uint32(tsField.Uint())
		d.rollingTimestamp = ts
		msg.Timestamp = ts
	}

	if idxField, ok := msg.Field(types.DefinitionNumberMessageIndex); ok && idxField.Kind == types.KindUint {
		msg.MessageIndex = uint16(idxField.Uint())
		msg.HasMessageIndex = true
	}

	if def.GlobalMessageNumber == devfield.GlobalMessageNumberFieldDescription {
		d.devRegistry.ObserveFieldDescription(fields)
	}

	if err := snk.Deliver(msg, userContext); err != nil {
		return errs.New(errs.ErrSinkAbort, d.rd.Consumed(), err.Error())
	}

	return nil
}

// decodeFieldValue reads one field's wire bytes per its base type (§4.4)
// and constructs the corresponding FieldValue variant.
func (d *Decoder) decodeFieldValue(definitionNumber uint8, sizeBytes uint8, bt types.BaseType, engine endian.EndianEngine, isDevField bool) (types.FieldValue, error) {
	switch bt {
	case types.BaseTypeString:
		return d.decodeStringField(definitionNumber, sizeBytes, isDevField)
	case types.BaseTypeByte:
		return d.decodeBytesField(definitionNumber, bt, sizeBytes, isDevField)
	}

	width := bt.Width()
	if width <= 0 || int(sizeBytes) < width || int(sizeBytes)%width != 0 {
		return types.FieldValue{}, errs.New(errs.ErrMalformedDefinition, d.rd.Consumed(),
			fmt.Sprintf("field size %d is not a positive multiple of base type width %d", sizeBytes, width))
	}
	count := int(sizeBytes) / width

	switch {
	case bt.IsFloat():
		return d.decodeFloatField(definitionNumber, bt, engine, count, isDevField)
	case bt.IsSigned():
		return d.decodeSintField(definitionNumber, bt, engine, count, isDevField)
	default:
		return d.decodeUintField(definitionNumber, bt, engine, count, isDevField)
	}
}

func (d *Decoder) decodeStringField(definitionNumber uint8, sizeBytes uint8, isDevField bool) (types.FieldValue, error) {
	buf := pool.GetFieldBuffer()
	defer pool.PutFieldBuffer(buf)

	buf.SetLength(int(sizeBytes))
	if err := d.rd.ReadExact(buf.Bytes()); err != nil {
		return types.FieldValue{}, err
	}

	raw := buf.Bytes()
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}

	return types.NewStringValue(definitionNumber, string(raw[:end]), isDevField), nil
}

func (d *Decoder) decodeBytesField(definitionNumber uint8, bt types.BaseType, sizeBytes uint8, isDevField bool) (types.FieldValue, error) {
	buf := pool.GetFieldBuffer()
	defer pool.PutFieldBuffer(buf)

	buf.SetLength(int(sizeBytes))
	if err := d.rd.ReadExact(buf.Bytes()); err != nil {
		return types.FieldValue{}, err
	}

	owned := make([]byte, len(buf.Bytes()))
	copy(owned, buf.Bytes())

	return types.NewBytesValue(definitionNumber, bt, owned, isDevField), nil
}

func (d *Decoder) decodeUintField(definitionNumber uint8, bt types.BaseType, engine endian.EndianEngine, count int, isDevField bool) (types.FieldValue, error) {
	if count == 1 {
		v, err := readUintElement(d.rd, engine, bt)
		if err != nil {
			return types.FieldValue{}, err
		}
		return types.NewUintValue(definitionNumber, bt, v, isDevField), nil
	}

	scratch, cleanup := pool.GetUint64Slice(count)
	defer cleanup()

	for i := 0; i < count; i++ {
		v, err := readUintElement(d.rd, engine, bt)
		if err != nil {
			return types.FieldValue{}, err
		}
		scratch[i] = v
	}

	owned := make([]uint64, count)
	copy(owned, scratch)

	return types.NewArrayUintValue(definitionNumber, bt, owned, isDevField), nil
}

func (d *Decoder) decodeSintField(definitionNumber uint8, bt types.BaseType, engine endian.EndianEngine, count int, isDevField bool) (types.FieldValue, error) {
	if count == 1 {
		v, err := readSintElement(d.rd, engine, bt)
		if err != nil {
			return types.FieldValue{}, err
		}
		return types.NewSintValue(definitionNumber, bt, v, isDevField), nil
	}

	scratch, cleanup := pool.GetInt64Slice(count)
	defer cleanup()

	for i := 0; i < count; i++ {
		v, err := readSintElement(d.rd, engine, bt)
		if err != nil {
			return types.FieldValue{}, err
		}
		scratch[i] = v
	}

	owned := make([]int64, count)
	copy(owned, scratch)

	return types.NewArraySintValue(definitionNumber, bt, owned, isDevField), nil
}

func (d *Decoder) decodeFloatField(definitionNumber uint8, bt types.BaseType, engine endian.EndianEngine, count int, isDevField bool) (types.FieldValue, error) {
	if count == 1 {
		v, err := readFloatElement(d.rd, engine, bt)
		if err != nil {
			return types.FieldValue{}, err
		}
		return types.NewFloatValue(definitionNumber, bt, v, isDevField), nil
	}

	scratch, cleanup := pool.GetFloat64Slice(count)
	defer cleanup()

	for i := 0; i < count; i++ {
		v, err := readFloatElement(d.rd, engine, bt)
		if err != nil {
			return types.FieldValue{}, err
		}
		scratch[i] = v
	}

	owned := make([]float64, count)
	copy(owned, scratch)

	return types.NewArrayFloatValue(definitionNumber, bt, owned, isDevField), nil
}

func readUintElement(rd *reader.Reader, engine endian.EndianEngine, bt types.BaseType) (uint64, error) {
	switch bt {
	case types.BaseTypeEnum, types.BaseTypeUint8, types.BaseTypeUint8z:
		v, err := rd.ReadUint8()
		return uint64(v), err
	case types.BaseTypeUint16, types.BaseTypeUint16z:
		v, err := rd.ReadUint16(engine)
		return uint64(v), err
	case types.BaseTypeUint32, types.BaseTypeUint32z:
		v, err := rd.ReadUint32(engine)
		return uint64(v), err
	default: // Uint64, Uint64z
		return rd.ReadUint64(engine)
	}
}

func readSintElement(rd *reader.Reader, engine endian.EndianEngine, bt types.BaseType) (int64, error) {
	switch bt {
	case types.BaseTypeSint8:
		v, err := rd.ReadInt8()
		return int64(v), err
	case types.BaseTypeSint16:
		v, err := rd.ReadInt16(engine)
		return int64(v), err
	case types.BaseTypeSint32:
		v, err := rd.ReadInt32(engine)
		return int64(v), err
	default: // Sint64
		return rd.ReadInt64(engine)
	}
}

func readFloatElement(rd *reader.Reader, engine endian.EndianEngine, bt types.BaseType) (float64, error) {
	if bt == types.BaseTypeFloat32 {
		v, err := rd.ReadFloat32(engine)
		return float64(v), err
	}
	return rd.ReadFloat64(engine)
}
