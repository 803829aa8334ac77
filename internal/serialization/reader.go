package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// Reader reads parameter checkpoints from .ember format.
//
// The payload is read and checksum-verified at Open. Param reads slice
// the verified buffer, so a file cannot change between verification and
// use.
type Reader struct {
	file    *os.File
	header  Header
	flags   uint32
	payload []byte
	closed  bool
}

// Open opens a .ember file, validates the header, and verifies the
// payload checksum.
func Open(path string) (*Reader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for checkpoint loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := &Reader{
		file:   file,
		closed: false,
	}

	if err := r.parse(); err != nil {
		_ = file.Close() // Best effort close on error
		return nil, err
	}

	return r, nil
}

// parse reads the framing, header, and payload, and verifies the checksum.
func (r *Reader) parse() error {
	// Read magic bytes
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r.file, magic); err != nil {
		return fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return ErrInvalidMagic
	}

	// Read version
	var version uint32
	if err := binary.Read(r.file, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	// Read flags
	if err := binary.Read(r.file, binary.LittleEndian, &r.flags); err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}

	// Read header size
	var headerSize uint64
	if err := binary.Read(r.file, binary.LittleEndian, &headerSize); err != nil {
		return fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	// Read header JSON
	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerBytes); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &r.header); err != nil {
		return fmt.Errorf("failed to parse header JSON: %w", err)
	}

	// Locate the payload past the alignment padding
	//nolint:gosec // G115: headerSize is capped by MaxHeaderSize, conversion is safe
	currentPos := int64(4+4+4+8) + int64(headerSize) // magic + version + flags + headerSize + header
	padding := (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment
	payloadOffset := currentPos + padding

	info, err := r.file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	payloadSize := info.Size() - payloadOffset
	if payloadSize < 0 {
		return fmt.Errorf("truncated file: payload starts at %d but file is %d bytes", payloadOffset, info.Size())
	}

	if err := ValidateHeader(&r.header, payloadSize); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Read and verify the payload
	if _, err := r.file.Seek(payloadOffset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to payload: %w", err)
	}
	r.payload = make([]byte, payloadSize)
	if _, err := io.ReadFull(r.file, r.payload); err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	stored, err := ParseChecksum(r.header.Checksum)
	if err != nil {
		return fmt.Errorf("invalid checksum in header: %w", err)
	}
	return ValidateChecksum(ComputeChecksum(r.payload), stored)
}

// Header returns the file header.
func (r *Reader) Header() Header {
	return r.header
}

// Metadata returns the metadata map from the header.
func (r *Reader) Metadata() map[string]string {
	return r.header.Metadata
}

// ParamNames returns all param names in file order.
func (r *Reader) ParamNames() []string {
	names := make([]string, len(r.header.Params))
	for i, meta := range r.header.Params {
		names[i] = meta.Name
	}
	return names
}

// ParamInfo returns the metadata for a specific param.
func (r *Reader) ParamInfo(name string) (*ParamMeta, error) {
	for _, meta := range r.header.Params {
		if meta.Name == name {
			return &meta, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrParamNotFound, name)
}

// ReadParam reads the values of a single param.
func (r *Reader) ReadParam(name string) ([]float64, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	meta, err := r.ParamInfo(name)
	if err != nil {
		return nil, err
	}
	return decodeParam(r.payload, *meta), nil
}

// ReadAll reads every param into a map from name to values.
func (r *Reader) ReadAll() (map[string][]float64, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	params := make(map[string][]float64, len(r.header.Params))
	for _, meta := range r.header.Params {
		params[meta.Name] = decodeParam(r.payload, meta)
	}
	return params, nil
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

// ReadFrom reads params from an io.Reader.
// This is useful for reading from buffers or network connections.
func ReadFrom(reader io.Reader) (map[string][]float64, Header, error) {
	// Read magic bytes
	magic := make([]byte, 4)
	if _, err := io.ReadFull(reader, magic); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return nil, Header{}, ErrInvalidMagic
	}

	// Read version
	var version uint32
	if err := binary.Read(reader, binary.LittleEndian, &version); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return nil, Header{}, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	// Read flags
	var flags uint32
	if err := binary.Read(reader, binary.LittleEndian, &flags); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read flags: %w", err)
	}

	// Read header size
	var headerSize uint64
	if err := binary.Read(reader, binary.LittleEndian, &headerSize); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, Header{}, ErrHeaderTooLarge
	}

	// Read header JSON
	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, headerBytes); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, Header{}, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	// Skip alignment padding
	//nolint:gosec // G115: headerSize is capped by MaxHeaderSize, conversion is safe
	currentPos := int64(4+4+4+8) + int64(headerSize)
	padding := (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment
	if padding > 0 {
		paddingBytes := make([]byte, padding)
		if _, err := io.ReadFull(reader, paddingBytes); err != nil {
			return nil, Header{}, fmt.Errorf("failed to read padding: %w", err)
		}
	}

	// The payload spans to the end of the furthest param
	var payloadSize int64
	for _, meta := range header.Params {
		if end := meta.Offset + meta.Size; end > payloadSize {
			payloadSize = end
		}
	}

	if err := ValidateHeader(&header, payloadSize); err != nil {
		return nil, Header{}, fmt.Errorf("validation failed: %w", err)
	}

	// Read and verify the payload
	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(reader, payload); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read payload: %w", err)
	}
	stored, err := ParseChecksum(header.Checksum)
	if err != nil {
		return nil, Header{}, fmt.Errorf("invalid checksum in header: %w", err)
	}
	if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
		return nil, Header{}, err
	}

	params := make(map[string][]float64, len(header.Params))
	for _, meta := range header.Params {
		params[meta.Name] = decodeParam(payload, meta)
	}
	return params, header, nil
}

// decodeParam decodes one param's float64 run from the payload.
// Bounds are checked by ValidateHeader before any decode.
func decodeParam(payload []byte, meta ParamMeta) []float64 {
	values := make([]float64, meta.Count)
	for i := range values {
		off := meta.Offset + int64(i)*ValueSize
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[off : off+ValueSize]))
	}
	return values
}
