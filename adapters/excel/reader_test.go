package excel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ashby/domain/core"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "materials.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

func TestReadCSVData(t *testing.T) {
	path := writeTempCSV(t, "Category, Density low ,Density high,Poisson\nFoams, 10 ,50,~0.45\nMetals,7000,,0.3\n")

	tbl, err := NewDataReader(path).ReadData()
	if err != nil {
		t.Fatalf("ReadData() error: %v", err)
	}

	wantHeaders := []string{"Category", "Density low", "Density high", "Poisson"}
	if len(tbl.Headers) != len(wantHeaders) {
		t.Fatalf("headers = %v, want %v", tbl.Headers, wantHeaders)
	}
	for i, h := range wantHeaders {
		if tbl.Headers[i] != h {
			t.Errorf("header %d = %q, want %q (whitespace should be trimmed)", i, tbl.Headers[i], h)
		}
	}

	if tbl.RowCount() != 2 {
		t.Fatalf("row count = %d, want 2", tbl.RowCount())
	}
	if tbl.Rows[0]["Density low"] != "10" {
		t.Errorf("cell not trimmed: %q", tbl.Rows[0]["Density low"])
	}
	if tbl.Rows[1]["Density high"] != "" {
		t.Errorf("missing cell = %q, want empty", tbl.Rows[1]["Density high"])
	}
}

func TestReadDataRequiresCategoryColumn(t *testing.T) {
	path := writeTempCSV(t, "Material,Density\nsteel,7800\n")

	_, err := NewDataReader(path).ReadData()
	if !errors.Is(err, core.ErrCategoryColumnMissing) {
		t.Errorf("error = %v, want ErrCategoryColumnMissing", err)
	}
}

func TestReadDataRequiresDataRows(t *testing.T) {
	path := writeTempCSV(t, "Category,Density\n")

	_, err := NewDataReader(path).ReadData()
	if !errors.Is(err, core.ErrEmptyTable) {
		t.Errorf("error = %v, want ErrEmptyTable", err)
	}
}

func TestReadDataMissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.csv")).ReadData()
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
