package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := Unmarshal([]byte("name: a\ncount: 2\nextra: ignored\n"), &doc)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.Name != "a" || doc.Count != 2 {
		t.Errorf("Unmarshal() = %+v", doc)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := UnmarshalStrict([]byte("name: a\n"), &doc); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if doc.Name != "a" {
			t.Errorf("Name = %q", doc.Name)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := UnmarshalStrict([]byte("unknown_key: x\n"), &doc); err == nil {
			t.Error("UnmarshalStrict() accepted unknown field")
		}
	})
}

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "nil data", data: nil, dest: &testDoc{}, wantErr: ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testDoc{}, wantErr: ErrNilData},
		{name: "nil destination", data: []byte("a: 1"), dest: nil, wantErr: ErrNilDestination},
		{
			name:    "oversized input",
			data:    []byte("x: " + strings.Repeat("a", MaxInputSize)),
			dest:    &testDoc{},
			wantErr: ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Unmarshal(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
