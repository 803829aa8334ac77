// Package serialization provides the native .ember format for saving and
// loading Ember parameter checkpoints.
//
// The .ember format is a simple binary container for named float64 vectors:
//
//	Format Structure:
//	  [4 bytes: Magic "EMBR"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata]
//	  [Payload: little-endian float64 runs, 64-byte aligned]
//
// The JSON header carries per-param name, count, and byte range, plus a
// SHA-256 checksum of the payload that is verified when a file is opened.
// Params are laid out in the order they were written, so equal inputs
// produce equal payloads.
//
// A file stores parameter values only. Graph structure, operations, and
// gradients are not recorded.
//
// Example usage:
//
//	// Save parameters
//	writer, err := serialization.NewWriter("model.ember")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := writer.WriteParams(params, "MLP", nil); err != nil {
//	    log.Fatal(err)
//	}
//	writer.Close()
//
//	// Load parameters
//	reader, err := serialization.Open("model.ember")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	values, err := reader.ReadAll()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reader.Close()
package serialization
