package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadFile_FullColumns(t *testing.T) {
	path := writeCSV(t, "meds.csv",
		"Drug Name,Therapeutic Class,use0,use1,sideEffect0,sideEffect1\n"+
			"Paracetamol,Analgesic,fever,pain,nausea,rash\n"+
			"Ibuprofen,NSAID,inflammation,,dizziness,\n")

	recs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}

	p := recs[0]
	if p.Name != "Paracetamol" || p.TherapeuticClass != "Analgesic" {
		t.Fatalf("unexpected first record: %#v", p)
	}
	if len(p.Uses) != 2 || p.Uses[0] != "fever" || p.Uses[1] != "pain" {
		t.Fatalf("unexpected uses: %#v", p.Uses)
	}
	if len(p.SideEffects) != 2 {
		t.Fatalf("unexpected side effects: %#v", p.SideEffects)
	}

	// celdas vacías no generan entradas
	i := recs[1]
	if len(i.Uses) != 1 || len(i.SideEffects) != 1 {
		t.Fatalf("expected empty cells dropped, got %#v / %#v", i.Uses, i.SideEffects)
	}
}

func TestLoadFile_OptionalColumnsMissing(t *testing.T) {
	// revisión vieja: solo nombre
	path := writeCSV(t, "meds.csv", "Drug Name\nAspirin\n")

	recs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].TherapeuticClass != "" {
		t.Fatalf("expected empty class, got %q", recs[0].TherapeuticClass)
	}
	if len(recs[0].Uses) != 0 || len(recs[0].SideEffects) != 0 {
		t.Fatalf("expected absent optional fields, got %#v", recs[0])
	}
}

func TestLoadFile_MissingDrugNameColumn(t *testing.T) {
	path := writeCSV(t, "meds.csv", "Name,Class\nAspirin,NSAID\n")

	_, err := LoadFile(path)
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
}

func TestMerge_DeduplicatesByName_FirstWins(t *testing.T) {
	a := []MedicationRecord{
		{Name: "Paracetamol", TherapeuticClass: "Analgesic"},
		{Name: "Ibuprofen"},
	}
	b := []MedicationRecord{
		{Name: "paracetamol", TherapeuticClass: "Other"}, // dup case-insensitive
		{Name: "Aspirin"},
	}

	merged := Merge(a, b)
	if len(merged) != 3 {
		t.Fatalf("expected 3 records, got %d", len(merged))
	}
	if merged[0].TherapeuticClass != "Analgesic" {
		t.Fatalf("expected first occurrence kept, got %#v", merged[0])
	}
	if merged[2].Name != "Aspirin" {
		t.Fatalf("expected load order preserved, got %#v", merged)
	}
}
