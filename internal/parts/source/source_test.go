package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"parts_api/internal/parts/repository"
	"parts_api/platform/apperr"
	"parts_api/platform/validator"
)

const yamlCatalog = `
- PartNumber: "3A016 10"
  NomenClature: VALVE, REGULATING, FLUID PRESSURE
  NSN: 4820-00-983-3598
- PartNumber: 52-27-20
  NomenClature: LOCK NUT
  NSN: ""
- PartNumber: PD60
  NomenClature: Plug
`

const jsonCatalog = `[
  {"PartNumber": "PD60", "NomenClature": "Plug", "NSN": "5340-00-682-1857"},
  {"PartNumber": "M83461/1-006", "NomenClature": "O-RING", "NSN": "5331-00-595-6325"}
]`

func TestDecodeYAML(t *testing.T) {
	parts, err := Decode(strings.NewReader(yamlCatalog), validator.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []repository.Part{
		{PartNumber: "3A016 10", NomenClature: "VALVE, REGULATING, FLUID PRESSURE", NSN: "4820-00-983-3598"},
		{PartNumber: "52-27-20", NomenClature: "LOCK NUT", NSN: ""},
		{PartNumber: "PD60", NomenClature: "Plug", NSN: ""},
	}
	if len(parts) != len(want) {
		t.Fatalf("expected %d parts, got %d", len(want), len(parts))
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Fatalf("record %d: expected %+v, got %+v", i, want[i], parts[i])
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	parts, err := Decode(strings.NewReader(jsonCatalog), validator.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 2 || parts[1].PartNumber != "M83461/1-006" {
		t.Fatalf("unexpected parts %+v", parts)
	}
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	tests := map[string]string{
		"empty list":          "[]",
		"missing part number": "- NomenClature: Plug\n",
		"not a list":          "PartNumber: PD60\n",
		"malformed":           "[{",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc), validator.New())
			if !apperr.Is(err, apperr.KindInternal) {
				t.Fatalf("expected internal error, got %v", err)
			}
		})
	}
}

func TestFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.yaml")
	if err := os.WriteFile(path, []byte(yamlCatalog), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := NewFile(path, validator.New())
	parts, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	if src.Name() != "file:"+path {
		t.Fatalf("unexpected name %q", src.Name())
	}
}

func TestFileLoadMissing(t *testing.T) {
	src := NewFile(filepath.Join(t.TempDir(), "absent.yaml"), validator.New())
	_, err := src.Load(context.Background())
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected cause to be kept, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "source.File.Load: open catalog file: ") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestEmbeddedLoad(t *testing.T) {
	parts, err := Embedded{}.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 25 {
		t.Fatalf("expected 25 parts, got %d", len(parts))
	}
}

type fakeObjectReader struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeObjectReader) DownloadFile(_ context.Context, bucket, fileKey string) (io.ReadCloser, error) {
	f.bucket, f.key = bucket, fileKey
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), nil
}

func TestObjectLoad(t *testing.T) {
	store := &fakeObjectReader{body: jsonCatalog}
	src := NewObject(store, "catalog", "parts.json", validator.New())

	parts, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if store.bucket != "catalog" || store.key != "parts.json" {
		t.Fatalf("unexpected object coordinates %s/%s", store.bucket, store.key)
	}
}

func TestObjectLoadDownloadError(t *testing.T) {
	cause := errors.New("no such key")
	store := &fakeObjectReader{err: cause}
	src := NewObject(store, "catalog", "parts.json", validator.New())
	_, err := src.Load(context.Background())
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be kept, got %v", err)
	}
}

func TestDecodeReportsInvalidFields(t *testing.T) {
	_, err := Decode(strings.NewReader("- PartNumber: PD60\n- NomenClature: Plug\n"), validator.New())

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %v", err)
	}
	if appErr.Message != "catalog record 1" || appErr.Op != "source.Decode" {
		t.Fatalf("unexpected error %q", appErr.Error())
	}
	fields, ok := appErr.Details.([]string)
	if !ok || len(fields) != 1 || fields[0] != "PartNumber" {
		t.Fatalf("expected PartNumber in details, got %v", appErr.Details)
	}
}
