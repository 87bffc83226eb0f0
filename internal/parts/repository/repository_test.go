package repository

import (
	"context"
	"reflect"
	"testing"

	"parts_api/platform/apperr"
)

func partNumbers(parts []Part) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.PartNumber)
	}
	return out
}

func TestDefaultCatalogHasReferenceDataset(t *testing.T) {
	catalog := NewDefault()
	if catalog.Count() != 25 {
		t.Fatalf("expected 25 parts, got %d", catalog.Count())
	}

	parts, _ := catalog.ListParts(context.Background())
	if parts[0].PartNumber != "3A004" || parts[24].PartNumber != "9776508-10" {
		t.Fatalf("unexpected catalog order: first=%q last=%q", parts[0].PartNumber, parts[24].PartNumber)
	}
}

func TestListPartsIsIdempotent(t *testing.T) {
	catalog := NewDefault()
	ctx := context.Background()

	first, _ := catalog.ListParts(ctx)
	second, _ := catalog.ListParts(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected repeated listings to be equal")
	}
	if !reflect.DeepEqual(first, defaultParts) {
		t.Fatal("expected listing to match the dataset in order")
	}
}

func TestReturnedSlicesDoNotAliasCatalog(t *testing.T) {
	catalog := NewDefault()
	ctx := context.Background()

	listed, _ := catalog.ListParts(ctx)
	listed[0].PartNumber = "mutated"

	found, _ := catalog.SearchParts(ctx, SearchPartsParams{PartNumber: "PD60"})
	found[0].NomenClature = "mutated"

	again, _ := catalog.ListParts(ctx)
	if again[0].PartNumber != "3A004" {
		t.Fatalf("listing mutation leaked into catalog: %q", again[0].PartNumber)
	}
	if again[1].NomenClature != "Plug" {
		t.Fatalf("search mutation leaked into catalog: %q", again[1].NomenClature)
	}
}

func TestNewCopiesInput(t *testing.T) {
	input := []Part{{PartNumber: "A"}}
	catalog := New(input)
	input[0].PartNumber = "B"

	if _, err := catalog.GetPartByNumber(context.Background(), "A"); err != nil {
		t.Fatalf("expected catalog to keep its own copy, got %v", err)
	}
}

func TestGetPartByNumberIsReflexive(t *testing.T) {
	catalog := NewDefault()
	ctx := context.Background()

	for _, want := range defaultParts {
		got, err := catalog.GetPartByNumber(ctx, want.PartNumber)
		if err != nil {
			t.Fatalf("lookup %q: unexpected error %v", want.PartNumber, err)
		}
		if got != want {
			t.Fatalf("lookup %q: expected %+v, got %+v", want.PartNumber, want, got)
		}
	}
}

func TestGetPartByNumberUnknownKey(t *testing.T) {
	catalog := NewDefault()
	for _, key := range []string{"", "pd60", "PD60 ", "3A016-10", "nope"} {
		_, err := catalog.GetPartByNumber(context.Background(), key)
		if !apperr.Is(err, apperr.KindNotFound) {
			t.Fatalf("lookup %q: expected not found, got %v", key, err)
		}
		if err.Error() != "Part not found" {
			t.Fatalf("lookup %q: unexpected message %q", key, err.Error())
		}
	}
}

func TestGetPartByNumberNearDuplicatesAreDistinct(t *testing.T) {
	catalog := NewDefault()
	ctx := context.Background()

	hyphen, err := catalog.GetPartByNumber(ctx, "3A016-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	space, err := catalog.GetPartByNumber(ctx, "3A016 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hyphen == space {
		t.Fatal("expected distinct records")
	}
	if hyphen.NSN != space.NSN {
		t.Fatalf("expected shared NSN, got %q and %q", hyphen.NSN, space.NSN)
	}
}

func TestGetPartByNumberFirstMatchWins(t *testing.T) {
	catalog := New([]Part{
		{PartNumber: "X", NomenClature: "first"},
		{PartNumber: "X", NomenClature: "second"},
	})
	got, err := catalog.GetPartByNumber(context.Background(), "X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.NomenClature != "first" {
		t.Fatalf("expected first match, got %q", got.NomenClature)
	}
}

func TestSearchParts(t *testing.T) {
	tests := []struct {
		name   string
		params SearchPartsParams
		want   []string
	}{
		{
			name:   "exact part number",
			params: SearchPartsParams{PartNumber: "PD60"},
			want:   []string{"PD60"},
		},
		{
			name:   "part number is case sensitive",
			params: SearchPartsParams{PartNumber: "pd60"},
			want:   []string{},
		},
		{
			name:   "nomenclature substring ignores case",
			params: SearchPartsParams{NomenClature: "valve"},
			want:   []string{"3A016-11", "3A004-101", "3A016 10"},
		},
		{
			name:   "nomenclature mixed case",
			params: SearchPartsParams{NomenClature: "PaCkInG"},
			want:   []string{"MS28774-116", "M83461/1-116", "M83461/1-013", "MS28774-006", "MS28774-012"},
		},
		{
			name:   "exact nsn",
			params: SearchPartsParams{NSN: "4820-00-983-3598"},
			want:   []string{"3A016-11", "3A016 10"},
		},
		{
			name:   "nsn does not match substrings",
			params: SearchPartsParams{NSN: "4820"},
			want:   []string{},
		},
		{
			name:   "filters combine",
			params: SearchPartsParams{NSN: "4820-00-983-3598", PartNumber: "3A016 10", NomenClature: "regulating"},
			want:   []string{"3A016 10"},
		},
		{
			name:   "conflicting filters yield nothing",
			params: SearchPartsParams{PartNumber: "PD60", NomenClature: "valve"},
			want:   []string{},
		},
		{
			name:   "kit entries keep order",
			params: SearchPartsParams{NomenClature: "kit"},
			want:   []string{"9776461-10", "9776508-10"},
		},
	}

	catalog := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.SearchParts(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("expected a non-nil slice")
			}
			if numbers := partNumbers(got); !reflect.DeepEqual(numbers, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, numbers)
			}
		})
	}
}

func TestSearchPartsPD60Record(t *testing.T) {
	got, _ := NewDefault().SearchParts(context.Background(), SearchPartsParams{PartNumber: "PD60"})
	want := Part{PartNumber: "PD60", NomenClature: "Plug", NSN: "5340-00-682-1857"}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("expected [%+v], got %+v", want, got)
	}
}

func TestSearchPartsEmptyNomenclatureNeverMatches(t *testing.T) {
	catalog := New([]Part{
		{PartNumber: "A", NomenClature: ""},
		{PartNumber: "B", NomenClature: "Bolt"},
	})
	got, _ := catalog.SearchParts(context.Background(), SearchPartsParams{NomenClature: "b"})
	if numbers := partNumbers(got); !reflect.DeepEqual(numbers, []string{"B"}) {
		t.Fatalf("expected [B], got %v", numbers)
	}
}
