// Package render prints a key listing in the selected output format.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/msalah0e/rskeys/internal/ui"
	"github.com/resend/resend-go/v2"
	"gopkg.in/yaml.v3"
)

// Format selects how a listing is printed.
type Format string

const (
	Raw   Format = "raw"
	JSON  Format = "json"
	YAML  Format = "yaml"
	Table Format = "table"
)

// Formats lists the accepted format names.
var Formats = []Format{Raw, JSON, YAML, Table}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return Raw, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want raw, json, yaml or table)", s)
}

type keyRecord struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

type listing struct {
	Data []keyRecord `json:"data" yaml:"data"`
}

func toListing(resp *resend.ListApiKeysResponse) listing {
	l := listing{Data: make([]keyRecord, 0, len(resp.Data))}
	for _, k := range resp.Data {
		l.Data = append(l.Data, keyRecord{ID: k.Id, Name: k.Name, CreatedAt: k.CreatedAt})
	}
	return l
}

// Write prints resp to w.
func Write(w io.Writer, f Format, resp *resend.ListApiKeysResponse) error {
	if resp == nil {
		resp = &resend.ListApiKeysResponse{}
	}

	switch f {
	case Raw, "":
		_, err := fmt.Fprintf(w, "%+v\n", *resp)
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toListing(resp))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toListing(resp)); err != nil {
			return err
		}
		return enc.Close()
	case Table:
		if len(resp.Data) == 0 {
			_, err := fmt.Fprintln(w, "  No API keys.")
			return err
		}
		rows := make([][]string, 0, len(resp.Data))
		for _, k := range resp.Data {
			rows = append(rows, []string{k.Id, k.Name, k.CreatedAt})
		}
		ui.Table(w, []string{"ID", "NAME", "CREATED"}, rows)
		_, err := fmt.Fprintf(w, "\n  %d keys\n", len(resp.Data))
		return err
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
