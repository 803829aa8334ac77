package serialization

import "time"

// Format constants.
const (
	MagicBytes      = "EMBR"
	FormatVersion   = 1
	HeaderAlignment = 64 // align payload to 64 bytes
	ValueSize       = 8  // bytes per float64 value
)

// Flags for the .ember format.
const (
	FlagHasMetadata   uint32 = 1 << 0 // custom metadata included
	FlagHasCheckpoint uint32 = 1 << 1 // training state included
)

// Header is the JSON header of a .ember file.
type Header struct {
	FormatVersion int               `json:"format_version"`       // version of the .ember format
	EmberVersion  string            `json:"ember_version"`        // version of Ember that created this file
	ModelType     string            `json:"model_type"`           // e.g. "MLP"
	CreatedAt     time.Time         `json:"created_at"`           // when the file was created
	Params        []ParamMeta       `json:"params"`               // parameter metadata
	Metadata      map[string]string `json:"metadata"`             // custom metadata
	Checkpoint    *CheckpointMeta   `json:"checkpoint,omitempty"` // training state (optional)
	Checksum      string            `json:"checksum"`             // hex SHA-256 of the payload
}

// CheckpointMeta contains training state for checkpoint files.
type CheckpointMeta struct {
	Epoch        int     `json:"epoch"`
	Step         int64   `json:"step"`
	Loss         float64 `json:"loss"`
	LearningRate float64 `json:"learning_rate,omitempty"`
}

// ParamMeta describes one parameter vector in the payload.
type ParamMeta struct {
	Name   string `json:"name"`   // e.g. "layers.0.neurons.1.weight"
	Count  int    `json:"count"`  // number of float64 values
	Offset int64  `json:"offset"` // bytes from the start of the payload
	Size   int64  `json:"size"`   // bytes, always Count * 8
}

// Param is one named parameter vector handed to the writer.
type Param struct {
	Name   string
	Values []float64
}
