package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection. Checkpoint files for
// scalar models are kilobytes, so the caps are generous.
const (
	MaxHeaderSize   = 16 * 1024 * 1024 // 16MB maximum JSON header size
	MaxParamCount   = 100_000          // maximum number of params in a file
	MaxParamNameLen = 256              // maximum param name length
)

// ValidateParamName checks param names for malicious or malformed patterns.
func ValidateParamName(name string) error {
	if name == "" {
		return &ValidationError{
			Type:    "invalid_name",
			Details: "empty name",
		}
	}

	if len(name) > MaxParamNameLen {
		return &ValidationError{
			Type:    "name_too_long",
			Param:   name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxParamNameLen),
		}
	}

	// Path traversal prevention.
	if strings.Contains(name, "..") {
		return &ValidationError{
			Type:    "invalid_name",
			Param:   name,
			Details: "contains '..' (path traversal attempt)",
		}
	}

	if strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return &ValidationError{
			Type:    "invalid_name",
			Param:   name,
			Details: "contains path separator (/ or \\)",
		}
	}

	// Null bytes can bypass length checks in some contexts.
	if strings.Contains(name, "\x00") {
		return &ValidationError{
			Type:    "invalid_name",
			Param:   name,
			Details: "contains null byte",
		}
	}

	return nil
}

// ValidateParamOffsets checks for overlapping param regions and
// out-of-bounds access. Malformed files must not be able to read
// outside the payload or alias two params onto the same bytes.
func ValidateParamOffsets(params []ParamMeta, payloadSize int64) error {
	if len(params) > MaxParamCount {
		return &ValidationError{
			Type:    "too_many_params",
			Details: fmt.Sprintf("got %d, max %d", len(params), MaxParamCount),
		}
	}

	// Sort by offset for pairwise overlap detection.
	sorted := make([]ParamMeta, len(params))
	copy(sorted, params)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, p := range sorted {
		if p.Offset < 0 || p.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Param:   p.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", p.Offset, p.Size),
			}
		}

		if p.Count < 0 || int64(p.Count)*ValueSize != p.Size {
			return &ValidationError{
				Type:    "size_mismatch",
				Param:   p.Name,
				Details: fmt.Sprintf("count %d does not match size %d bytes", p.Count, p.Size),
			}
		}

		if p.Offset+p.Size > payloadSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Param:   p.Name,
				Details: fmt.Sprintf("offset %d + size %d > payload_size %d", p.Offset, p.Size, payloadSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if p.Offset+p.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Param:   p.Name,
					Param2:  next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						p.Offset, p.Offset+p.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateHeader performs full header validation against the payload size.
func ValidateHeader(h *Header, payloadSize int64) error {
	if h.FormatVersion != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, h.FormatVersion, FormatVersion)
	}

	if len(h.Params) > MaxParamCount {
		return &ValidationError{
			Type:    "too_many_params",
			Details: fmt.Sprintf("got %d, max %d", len(h.Params), MaxParamCount),
		}
	}

	seen := make(map[string]struct{}, len(h.Params))
	for _, p := range h.Params {
		if err := ValidateParamName(p.Name); err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return &ValidationError{
				Type:    "duplicate_name",
				Param:   p.Name,
				Details: "param name appears more than once",
			}
		}
		seen[p.Name] = struct{}{}
	}

	return ValidateParamOffsets(h.Params, payloadSize)
}
