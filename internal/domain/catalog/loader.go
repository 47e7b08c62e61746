package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrLoad = errors.New("catalog load failed")
)

// Nombres de columna según las revisiones del CSV de origen.
// Solo "Drug Name" es obligatoria; el resto puede faltar por revisión.
const (
	colDrugName         = "Drug Name"
	colTherapeuticClass = "Therapeutic Class"
	colUsePrefix        = "use"
	colSideEffectPrefix = "sideEffect"
)

// LoadFile parsea un catálogo CSV.
// Columnas opcionales ausentes => campos vacíos, nunca error.
// Archivo ausente/ilegible o sin columna "Drug Name" => error envuelto en ErrLoad.
func LoadFile(path string) ([]MedicationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // revisiones viejas traen filas cortas

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrLoad, path)
	}

	header := rows[0]
	nameIdx := -1
	classIdx := -1
	useIdxs := numberedColumns(header, colUsePrefix)
	sideIdxs := numberedColumns(header, colSideEffectPrefix)

	for i, h := range header {
		switch strings.TrimSpace(h) {
		case colDrugName:
			nameIdx = i
		case colTherapeuticClass:
			classIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: %s: missing %q column", ErrLoad, path, colDrugName)
	}

	out := make([]MedicationRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cellAt(row, nameIdx))
		if name == "" {
			continue
		}
		rec := MedicationRecord{
			Name:             name,
			TherapeuticClass: strings.TrimSpace(cellAt(row, classIdx)),
			Uses:             collectCells(row, useIdxs),
			SideEffects:      collectCells(row, sideIdxs),
		}
		out = append(out, rec)
	}

	return out, nil
}

// Merge concatena catálogos en orden de carga y deduplica por nombre
// (case-insensitive, gana la primera aparición).
func Merge(catalogs ...[]MedicationRecord) []MedicationRecord {
	seen := map[string]struct{}{}
	out := make([]MedicationRecord, 0)

	for _, c := range catalogs {
		for _, rec := range c {
			key := strings.ToLower(rec.Name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, rec)
		}
	}
	return out
}

// numberedColumns devuelve los índices de columnas prefix0..prefixN,
// ordenados por su sufijo numérico.
func numberedColumns(header []string, prefix string) []int {
	type col struct {
		idx int
		n   int
	}
	cols := make([]col, 0)

	for i, h := range header {
		h = strings.TrimSpace(h)
		if !strings.HasPrefix(h, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(h, prefix))
		if err != nil {
			continue
		}
		cols = append(cols, col{idx: i, n: n})
	}

	sort.Slice(cols, func(i, j int) bool { return cols[i].n < cols[j].n })

	out := make([]int, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.idx)
	}
	return out
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func collectCells(row []string, idxs []int) []string {
	out := make([]string, 0, len(idxs))
	for _, i := range idxs {
		v := strings.TrimSpace(cellAt(row, i))
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
