// Package main provides the Ember ML Framework CLI.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/ember-ml/ember/internal/serialization"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Ember ML Framework %s\n", version)
			return
		case "inspect":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: ember inspect <file.ember>")
				os.Exit(1)
			}
			if err := inspect(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Ember ML Framework - Scalar Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  inspect <file>    Describe a .ember file")
}

// inspect prints the header and parameter layout of a .ember file.
func inspect(path string) error {
	reader, err := serialization.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	header := reader.Header()
	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     v%d (ember %s)\n", header.FormatVersion, header.EmberVersion)
	fmt.Printf("Model type: %s\n", header.ModelType)
	fmt.Printf("Created:    %s\n", header.CreatedAt.Format(time.RFC3339))
	if cp := header.Checkpoint; cp != nil {
		fmt.Printf("Checkpoint: epoch %d, step %d, loss %g\n", cp.Epoch, cp.Step, cp.Loss)
	}

	if len(header.Metadata) > 0 {
		keys := make([]string, 0, len(header.Metadata))
		for key := range header.Metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fmt.Println("Metadata:")
		for _, key := range keys {
			fmt.Printf("  %s = %s\n", key, header.Metadata[key])
		}
	}

	fmt.Println("Params:")
	total := 0
	for _, name := range reader.ParamNames() {
		info, err := reader.ParamInfo(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-40s %6d values\n", name, info.Count)
		total += info.Count
	}
	fmt.Printf("Total:      %d values\n", total)
	return nil
}
