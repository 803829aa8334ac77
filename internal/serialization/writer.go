package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

const emberVersion = "0.1.0" // Current Ember version

// Writer writes parameter checkpoints in .ember format.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a new .ember file writer.
func NewWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for checkpoint saving
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &Writer{
		file:   file,
		closed: false,
	}, nil
}

// WriteParams writes named parameter vectors to the .ember file.
//
// Params are written in the given order, so equal inputs produce
// byte-identical payloads.
func (w *Writer) WriteParams(params []Param, modelType string, metadata map[string]string) error {
	return w.WriteParamsWithHeader(params, Header{
		ModelType: modelType,
		Metadata:  metadata,
	})
}

// WriteParamsWithHeader writes parameter vectors with a custom header.
//
// This allows setting Checkpoint and other header fields. FormatVersion,
// EmberVersion, CreatedAt, Params, and Checksum are filled in by the
// writer and need not be set by the caller.
func (w *Writer) WriteParamsWithHeader(params []Param, header Header) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	return writeParams(w.file, params, header)
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// WriteTo writes parameter vectors to an io.Writer.
// This is useful for writing to buffers or network connections.
func WriteTo(writer io.Writer, params []Param, modelType string, metadata map[string]string) error {
	return writeParams(writer, params, Header{
		ModelType: modelType,
		Metadata:  metadata,
	})
}

// writeParams assembles the payload in memory, finishes the header, and
// streams the framed file to w. The payload must be assembled first
// because its checksum is part of the JSON header.
func writeParams(w io.Writer, params []Param, header Header) error {
	// Calculate param offsets
	metas := make([]ParamMeta, 0, len(params))
	var payloadSize int64
	for _, p := range params {
		if err := ValidateParamName(p.Name); err != nil {
			return err
		}
		size := int64(len(p.Values)) * ValueSize
		metas = append(metas, ParamMeta{
			Name:   p.Name,
			Count:  len(p.Values),
			Offset: payloadSize,
			Size:   size,
		})
		payloadSize += size
	}

	// Encode payload as little-endian float64 runs
	payload := make([]byte, payloadSize)
	pos := 0
	for _, p := range params {
		for _, v := range p.Values {
			binary.LittleEndian.PutUint64(payload[pos:pos+ValueSize], math.Float64bits(v))
			pos += ValueSize
		}
	}

	// Finish header
	header.FormatVersion = FormatVersion
	header.EmberVersion = emberVersion
	header.CreatedAt = time.Now().UTC()
	header.Params = metas
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}
	checksum := ComputeChecksum(payload)
	header.Checksum = FormatChecksum(checksum)

	// Marshal header to JSON
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	// Write magic bytes
	if _, err := w.Write([]byte(MagicBytes)); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}

	// Write version
	if err := binary.Write(w, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}

	// Write flags
	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if header.Checkpoint != nil {
		flags |= FlagHasCheckpoint
	}
	if err := binary.Write(w, binary.LittleEndian, flags); err != nil {
		return fmt.Errorf("failed to write flags: %w", err)
	}

	// Write header size
	headerSize := uint64(len(headerJSON))
	if err := binary.Write(w, binary.LittleEndian, headerSize); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}

	// Write header JSON
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Pad so the payload starts on a HeaderAlignment boundary
	//nolint:gosec // G115: headerSize is capped by MaxHeaderSize, conversion is safe
	currentPos := int64(4+4+4+8) + int64(headerSize) // magic + version + flags + headerSize + header
	padding := (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment
	if padding > 0 {
		paddingBytes := make([]byte, padding)
		if _, err := w.Write(paddingBytes); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	// Write payload
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	return nil
}
