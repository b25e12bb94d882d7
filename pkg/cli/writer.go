package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/khalid-nowaf/treepart/pkg/partition"
	"gopkg.in/yaml.v3"
)

// Writer renders partitions to an output stream.
type Writer interface {
	Write(w io.Writer, parts []partition.Partition) error
}

// NewWriter returns the writer for a --format value.
func NewWriter(format string) (Writer, error) {
	switch format {
	case "", "text":
		return TextWriter{}, nil
	case "json":
		return JsonWriter{}, nil
	case "yaml":
		return YamlWriter{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// TextWriter prints "Partition <i>", one tab-indented "<label> <weight>" per entry,
// and a final "<N> partitions" line.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, parts []partition.Partition) error {
	for i, part := range parts {
		if _, err := fmt.Fprintf(w, "Partition %d\n", i); err != nil {
			return err
		}
		for _, entry := range part {
			if _, err := fmt.Fprintf(w, "\t%s\n", entry); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d partitions\n", len(parts))
	return err
}

// Report is the document written by the json and yaml writers.
type Report struct {
	Count      int               `json:"count" yaml:"count"`
	Partitions []PartitionReport `json:"partitions" yaml:"partitions"`
}

type PartitionReport struct {
	Index   int               `json:"index" yaml:"index"`
	Weight  int               `json:"weight" yaml:"weight"`
	Entries []partition.Entry `json:"entries" yaml:"entries"`
}

func newReport(parts []partition.Partition) Report {
	report := Report{
		Count:      len(parts),
		Partitions: make([]PartitionReport, 0, len(parts)),
	}
	for i, part := range parts {
		report.Partitions = append(report.Partitions, PartitionReport{
			Index:   i,
			Weight:  part.Weight(),
			Entries: part,
		})
	}
	return report
}

type JsonWriter struct{}

func (JsonWriter) Write(w io.Writer, parts []partition.Partition) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newReport(parts))
}

type YamlWriter struct{}

func (YamlWriter) Write(w io.Writer, parts []partition.Partition) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newReport(parts)); err != nil {
		return err
	}
	return encoder.Close()
}
