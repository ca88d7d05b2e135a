package workload

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a process set from a file, picking the format by extension:
// .yaml/.yml, .json, or .csv.
func Load(path string) ([]ProcessSpec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported workload file %q: want .yaml, .json, or .csv", path)
	}
}

// LoadYAML reads a YAML process-set document:
//
//	processes:
//	  - pid: 1
//	    arrival_time: 0
//	    burst_time: 5
//	    priority: 2
func LoadYAML(path string) ([]ProcessSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload file: %w", err)
	}
	var set ProcessSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing workload file: %w", err)
	}
	return set.Processes, nil
}

// LoadJSON reads a JSON document with the same shape as the YAML format.
func LoadJSON(path string) ([]ProcessSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload file: %w", err)
	}
	var set ProcessSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing workload file: %w", err)
	}
	return set.Processes, nil
}

// LoadCSV reads a CSV workload with a header row and the columns
// pid, arrival_time, burst_time, priority.
func LoadCSV(path string) ([]ProcessSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var specs []ProcessSpec
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv at row %d: %w", row, err)
		}
		if len(record) < 4 {
			return nil, fmt.Errorf("csv row %d: want 4 columns (pid, arrival_time, burst_time, priority), got %d", row, len(record))
		}

		spec, err := parseCSVRecord(record)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", row, err)
		}
		specs = append(specs, spec)
		row++
	}
	return specs, nil
}

func parseCSVRecord(record []string) (ProcessSpec, error) {
	pid, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return ProcessSpec{}, fmt.Errorf("invalid pid %q: %w", record[0], err)
	}
	arrival, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return ProcessSpec{}, fmt.Errorf("invalid arrival time %q: %w", record[1], err)
	}
	burst, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return ProcessSpec{}, fmt.Errorf("invalid burst time %q: %w", record[2], err)
	}
	priority, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return ProcessSpec{}, fmt.Errorf("invalid priority %q: %w", record[3], err)
	}
	return ProcessSpec{PID: pid, Arrival: arrival, Burst: burst, Priority: priority}, nil
}
