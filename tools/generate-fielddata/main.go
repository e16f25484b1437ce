// Package main provides a tool to convert field-measurement CSV exports into
// the dataset JSON files embedded by internal/fielddata.
//
// The input CSV has two columns, temperature_c and cop_avg: the average
// outside temperature of a measurement bucket and the average delivered COP
// observed there. The tool validates the series (enough rows, strictly
// increasing temperatures, positive COP values) and writes a dataset JSON
// into internal/fielddata/data/ for embedding at build time.
//
// Usage:
//
//	go run ./tools/generate-fielddata --in measurements.csv --name field-trend
//
// Flags:
//
//	--in           Input CSV file (required)
//	--out-dir      Output directory (default: ./internal/fielddata/data)
//	--name         Dataset name; defaults to the input file's base name
//	--description  Dataset description stored in the JSON
//	--source       Provenance note stored in the JSON
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// minRows is the smallest series worth fitting a cubic trend to.
	minRows = 4

	// expectedColumns is the CSV layout: temperature_c, cop_avg.
	expectedColumns = 2
)

// dataset mirrors the JSON layout internal/fielddata embeds.
type dataset struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Source          string  `json:"source"`
	TemperatureUnit string  `json:"temperature_unit"`
	Points          []point `json:"points"`
}

type point struct {
	TemperatureC float64 `json:"temperature_c"`
	MeanCOP      float64 `json:"cop_avg"`
}

func main() {
	in := flag.String("in", "", "Input CSV file with temperature_c, cop_avg columns")
	outDir := flag.String("out-dir", "./internal/fielddata/data", "Output directory for the dataset JSON")
	name := flag.String("name", "", "Dataset name (default: input file base name)")
	description := flag.String("description", "", "Dataset description")
	source := flag.String("source", "", "Where the measurements came from")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: --in is required")
		flag.Usage()
		os.Exit(1)
	}

	dsName := *name
	if dsName == "" {
		dsName = strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
	}

	fmt.Printf("Reading field measurements from %s...\n", *in)
	points, err := readPoints(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		os.Exit(1)
	}

	ds := dataset{
		Name:            dsName,
		Description:     *description,
		Source:          *source,
		TemperatureUnit: "celsius",
		Points:          points,
	}
	if err := validateDataset(ds); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Validation passed: %d measurement buckets, %.1f to %.1f °C\n",
		len(points), points[0].TemperatureC, points[len(points)-1].TemperatureC)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding dataset: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	outPath := filepath.Join(*outDir, strings.ReplaceAll(dsName, "-", "_")+".json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %s (%d bytes)\n", outPath, len(data))
}

// readPoints parses the two-column measurement CSV. A header row is
// detected by a non-numeric first field and skipped.
func readPoints(path string) ([]point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = expectedColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	var points []point
	for i, record := range records {
		tempStr := strings.TrimSpace(record[0])
		copStr := strings.TrimSpace(record[1])

		temp, err := strconv.ParseFloat(tempStr, 64)
		if err != nil {
			if i == 0 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("row %d: bad temperature %q: %w", i+1, tempStr, err)
		}
		cop, err := strconv.ParseFloat(copStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad COP %q: %w", i+1, copStr, err)
		}
		points = append(points, point{TemperatureC: temp, MeanCOP: cop})
	}
	return points, nil
}

// validateDataset enforces what internal/fielddata requires of embedded
// files: enough buckets for a trend fit, strictly increasing temperatures,
// and physically meaningful COP values.
func validateDataset(ds dataset) error {
	if ds.Name == "" {
		return fmt.Errorf("dataset name is empty")
	}
	if len(ds.Points) < minRows {
		return fmt.Errorf("only %d measurement buckets, need at least %d for a trend fit",
			len(ds.Points), minRows)
	}
	for i, p := range ds.Points {
		if p.MeanCOP <= 0 {
			return fmt.Errorf("bucket %d (%.1f °C): COP %.2f must be positive",
				i+1, p.TemperatureC, p.MeanCOP)
		}
		if i > 0 && p.TemperatureC <= ds.Points[i-1].TemperatureC {
			return fmt.Errorf("bucket %d: temperature %.1f °C does not increase over %.1f °C",
				i+1, p.TemperatureC, ds.Points[i-1].TemperatureC)
		}
	}
	return nil
}
