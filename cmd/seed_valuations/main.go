// seed_valuations genera un script SQL para poblar inventory_valuations
// a partir de un export CSV del ERP anterior (codificado en ISO-8859-1).
//
// Formato esperado (con encabezado): item_id;item_code;item_name;batch_date;available_qty;unit_cost
//
// Uso: go run ./cmd/seed_valuations [ruta/export.csv] [metodo]
// Por defecto busca valuations.csv en el directorio actual y usa fifo.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_valuations.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/costeo-api/internal/domain/costing"
)

type row struct {
	itemID   string
	itemCode string
	itemName string
	date     string
	qty      decimal.Decimal
	unitCost decimal.Decimal
}

func main() {
	csvPath := "valuations.csv"
	method := "fifo"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		method = os.Args[2]
	}
	if _, err := costing.ParseMethod(method); err != nil {
		fmt.Fprintf(os.Stderr, "Método inválido %q: %v\n", method, err)
		os.Exit(1)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports del ERP anterior vienen en ISO-8859-1, no UTF-8.
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 6

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var rows []row
	var skipped int
	for i, rec := range records[1:] { // saltar encabezado
		r, err := parseRow(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d omitida: %v\n", i+2, err)
			skipped++
			continue
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "Ninguna fila válida")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_valuations.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Valoraciones iniciales importadas del ERP anterior\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	for _, r := range rows {
		total := r.qty.Mul(r.unitCost)
		fmt.Fprintf(out, "INSERT INTO inventory_valuations\n")
		fmt.Fprintf(out, "  (id, item_id, item_code, item_name, valuation_date, valuation_method, quantity, unit_cost, total_value, currency, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', %s, %s, '%s', '%s', %s, %s, %s, 'COP', NOW(), NOW())\n",
			escapeSQL(r.itemID), nullableSQL(r.itemCode), nullableSQL(r.itemName),
			r.date, method, r.qty.String(), r.unitCost.String(), total.String())
		out.WriteString("ON CONFLICT (item_id, valuation_date, valuation_method) DO UPDATE SET\n")
		out.WriteString("  quantity = EXCLUDED.quantity,\n")
		out.WriteString("  unit_cost = EXCLUDED.unit_cost,\n")
		out.WriteString("  total_value = EXCLUDED.total_value,\n")
		out.WriteString("  updated_at = NOW();\n\n")
	}

	fmt.Printf("Generado %s: %d valoraciones (%d filas omitidas)\n", outPath, len(rows), skipped)
}

func parseRow(rec []string) (row, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	if rec[0] == "" {
		return row{}, fmt.Errorf("item_id vacío")
	}
	date, err := costing.ParseDate(rec[3])
	if err != nil {
		return row{}, fmt.Errorf("batch_date %q: %w", rec[3], err)
	}
	qty, err := decimal.NewFromString(rec[4])
	if err != nil {
		return row{}, fmt.Errorf("available_qty %q: %w", rec[4], err)
	}
	unitCost, err := decimal.NewFromString(rec[5])
	if err != nil {
		return row{}, fmt.Errorf("unit_cost %q: %w", rec[5], err)
	}
	if qty.IsNegative() || unitCost.IsNegative() {
		return row{}, fmt.Errorf("cantidad o costo negativo")
	}
	return row{
		itemID:   rec[0],
		itemCode: rec[1],
		itemName: rec[2],
		date:     date.Format("2006-01-02"),
		qty:      qty,
		unitCost: unitCost,
	}, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func nullableSQL(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
