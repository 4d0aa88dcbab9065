package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"gopkg.in/yaml.v3"
)

func sample() *resend.ListApiKeysResponse {
	return &resend.ListApiKeysResponse{
		Data: []resend.ApiKey{
			{Id: "key_1", Name: "production", CreatedAt: "2024-01-01T00:00:00.000Z"},
			{Id: "key_2", Name: "staging", CreatedAt: "2024-02-01T00:00:00.000Z"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"raw", Raw, false},
		{"JSON", JSON, false},
		{" yaml ", YAML, false},
		{"table", Table, false},
		{"", Raw, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWrite_Raw(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Raw, sample()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Data:", "Id:key_1", "Name:production", "Name:staging"} {
		if !strings.Contains(out, want) {
			t.Errorf("raw output missing %q: %q", want, out)
		}
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, JSON, sample()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var got struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got.Data) != 2 || got.Data[1].ID != "key_2" {
		t.Errorf("unexpected data %+v", got.Data)
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, YAML, sample()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var got map[string][]map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if len(got["data"]) != 2 || got["data"][0]["name"] != "production" {
		t.Errorf("unexpected data %+v", got)
	}
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Table, sample()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ID", "NAME", "CREATED", "key_1", "staging", "2 keys"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q: %q", want, out)
		}
	}
}

func TestWrite_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Table, &resend.ListApiKeysResponse{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No API keys") {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestWrite_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, JSON, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"data": []`) {
		t.Errorf("expected empty data array, got %q", buf.String())
	}
}

func TestWrite_Unknown(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Format("xml"), sample()); err == nil {
		t.Error("expected error for unknown format")
	}
}
