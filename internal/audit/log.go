package audit

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Operation names the command that produced a record.
type Operation string

const (
	OpValidate Operation = "validate"
	OpGenerate Operation = "generate"
	OpExplain  Operation = "explain"
	OpBatch    Operation = "batch"
	OpDetect   Operation = "detect"
)

// Outcome words for validity results.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Verdict maps a validity result to its outcome word.
func Verdict(valid bool) string {
	if valid {
		return OutcomeValid
	}
	return OutcomeInvalid
}

// Record is one line of the result log. Records carry a sequence number
// instead of a timestamp.
type Record struct {
	Seq         int       `json:"seq"`
	ID          string    `json:"id"`
	Operation   Operation `json:"operation"`
	Input       string    `json:"input"`
	Fingerprint string    `json:"fingerprint"`
	Outcome     string    `json:"outcome"`
	Detail      string    `json:"detail,omitempty"`
}

// Line renders the record the way the log command prints it.
func (r Record) Line() string {
	s := fmt.Sprintf("#%d %s %s: %s", r.Seq, r.Operation, r.Input, r.Outcome)
	if r.Detail != "" {
		s += " (" + r.Detail + ")"
	}
	return s
}

type ResultLog struct {
	logPath string
}

func NewResultLog(path string) *ResultLog {
	return &ResultLog{logPath: path}
}

// Path returns the file backing the log.
func (l *ResultLog) Path() string { return l.logPath }

// LoadHistory returns records newest first. Malformed lines are skipped.
func (l *ResultLog) LoadHistory() ([]Record, error) {
	records, err := l.load()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (l *ResultLog) load() ([]Record, error) {
	f, err := os.Open(l.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open result log: %w", err)
	}
	defer f.Close()

	var records []Record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var record Record
		if err := json.Unmarshal(sc.Bytes(), &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result log: %w", err)
	}
	return records, nil
}

// Append writes record as the next line, assigning Seq and ID when unset.
func (l *ResultLog) Append(record Record) (Record, error) {
	if record.Seq == 0 {
		existing, err := l.load()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return record, err
		}
		last := 0
		for _, r := range existing {
			if r.Seq > last {
				last = r.Seq
			}
		}
		record.Seq = last + 1
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	// Restrict permissions to owner-only; inputs may be card numbers.
	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return record, fmt.Errorf("failed to open result log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return record, fmt.Errorf("failed to write result record: %w", err)
	}
	return record, nil
}

// Clear removes the log file. A missing file is not an error.
func (l *ResultLog) Clear() error {
	if err := os.Remove(l.logPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear result log: %w", err)
	}
	return nil
}

// NewRecord builds a record for input. With mask set only the first six and
// last four digits are kept; Fingerprint always hashes the raw input so
// masked entries can still be matched.
func NewRecord(op Operation, input, outcome, detail string, mask bool) Record {
	stored := input
	if mask {
		stored = MaskNumber(input)
	}
	return Record{
		Operation:   op,
		Input:       stored,
		Fingerprint: Fingerprint(input),
		Outcome:     outcome,
		Detail:      detail,
	}
}

// Fingerprint is the hex xxhash64 of s.
func Fingerprint(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}

// MaskNumber keeps the first 6 and last 4 characters and stars the rest.
// Inputs of 10 characters or fewer keep only the last 4.
func MaskNumber(s string) string {
	n := len(s)
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n <= 10 {
		return strings.Repeat("*", n-4) + s[n-4:]
	}
	return s[:6] + strings.Repeat("*", n-10) + s[n-4:]
}
