// seed genera un script SQL con datos de demostración: إفراجات (releases),
// viajes y saldos manuales con nombres de sitios en árabe, incluyendo
// variantes ortográficas (أ/إ/آ vs ا) para ejercitar la normalización.
//
// Uso: go run ./cmd/seed
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type seedRelease struct {
	site     string
	goods    string
	quantity string
	daysAgo  int
}

type seedTrip struct {
	site     string
	goods    string
	quantity string
	status   string
	daysAgo  int // solo aplica a viajes DONE
}

type seedBalance struct {
	site        string
	goods       string
	opening     string
	consumption string
}

func main() {
	// Nótese que "مصنع أحمد" y "مصنع احمد" son el mismo sitio con hamza
	// distinta: el reporte debe fusionarlos en una sola fila.
	releases := []seedRelease{
		{"مصنع أحمد", "صويا", "500.000", 10},
		{"مصنع احمد", "صويا", "250.000", 7},
		{"مصنع النور", "صويا", "300.000", 9},
		{"مصنع النور", "ذرة", "400.000", 9},
		{"شركة الدلتا للأعلاف", "ذرة", "1200.500", 15},
	}
	trips := []seedTrip{
		{"مصنع أحمد", "صويا", "200.000", "DONE", 1},
		{"مصنع احمد", "صويا", "60.000", "IN_PROGRESS", 0},
		{"مصنع أحمد", "صويا", "30.000", "STOPPED", 0},
		{"مصنع النور", "صويا", "150.000", "DONE", 2},
		{"مصنع النور", "ذرة", "100.000", "IN_PROGRESS", 0},
		{"شركة الدلتا للأعلاف", "ذرة", "450.250", "DONE", 1},
		{"شركة الدلتا للأعلاف", "ذرة", "300.000", "DONE", 3},
	}
	balances := []seedBalance{
		{"مصنع أحمد", "صويا", "80.000", "25.500"},
		{"شركة الدلتا للأعلاف", "ذرة", "0", "120.000"},
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración: sitios en árabe con variantes de hamza\n")
	fmt.Fprintf(out, "-- Generado por cmd/seed el %s\n\n", time.Now().Format("2006-01-02"))

	out.WriteString("-- 1. Releases (إفراجات)\n")
	for _, r := range releases {
		fmt.Fprintf(out,
			"INSERT INTO releases (id, site_name, goods_type, total_quantity, release_date)\nVALUES (gen_random_uuid(), '%s', '%s', %s, now() - interval '%d days');\n",
			escapeSQL(r.site), escapeSQL(r.goods), r.quantity, r.daysAgo)
	}

	out.WriteString("\n-- 2. Viajes\n")
	for _, t := range trips {
		if t.status == "DONE" {
			fmt.Fprintf(out,
				"INSERT INTO transport_records (id, unloading_site, goods_type, weight, status, date)\nVALUES (gen_random_uuid(), '%s', '%s', %s, 'DONE', now() - interval '%d days');\n",
				escapeSQL(t.site), escapeSQL(t.goods), t.quantity, t.daysAgo)
			continue
		}
		fmt.Fprintf(out,
			"INSERT INTO transport_records (id, unloading_site, goods_type, weight, status)\nVALUES (gen_random_uuid(), '%s', '%s', %s, '%s');\n",
			escapeSQL(t.site), escapeSQL(t.goods), t.quantity, t.status)
	}

	out.WriteString("\n-- 3. Saldos manuales\n")
	for _, b := range balances {
		fmt.Fprintf(out,
			"INSERT INTO factory_balances (id, site_name, goods_type, opening_balance, manual_consumption)\nVALUES (gen_random_uuid(), '%s', '%s', %s, %s)\nON CONFLICT (site_name, goods_type) DO UPDATE SET\n  opening_balance = EXCLUDED.opening_balance,\n  manual_consumption = EXCLUDED.manual_consumption;\n",
			escapeSQL(b.site), escapeSQL(b.goods), b.opening, b.consumption)
	}

	fmt.Printf("Generado %s: %d releases, %d viajes, %d saldos\n",
		outPath, len(releases), len(trips), len(balances))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
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
