package qualoffer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Business rules a salary record must satisfy to count toward the offer.
const (
	QualifyingLevel = "MLB"
	QualifyingYear  = "2016"
)

// Salary is a yearly salary in whole US dollars.
type Salary int64

// Record holds the raw text of one salary table row.
// A nil field means the row had no matching element.
type Record struct {
	Name   *string
	Salary *string
	Level  *string
	Year   *string
}

// ReadRecord reads the four salary columns from row.
func ReadRecord(row Row) Record {
	return Record{
		Name:   row.Field(ColumnName),
		Salary: row.Field(ColumnSalary),
		Level:  row.Field(ColumnLevel),
		Year:   row.Field(ColumnYear),
	}
}

// ReadRecords reads every row in order.
func ReadRecords(rows []Row) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, ReadRecord(row))
	}
	return records
}

// BadRecord is a record rejected by classification, kept for audit.
// Fields are the untouched extracted values; absent fields encode as null.
type BadRecord struct {
	PlayerName *string `json:"playerName"`
	Salary     *string `json:"salary"`
	Level      *string `json:"level"`
	Year       *string `json:"year"`
}

// NewBadRecord returns the audit form of r.
func NewBadRecord(r Record) BadRecord {
	return BadRecord{
		PlayerName: r.Name,
		Salary:     r.Salary,
		Level:      r.Level,
		Year:       r.Year,
	}
}

// Classification is the outcome of classifying one record: either a valid
// salary or a bad record.
type Classification struct {
	Valid  bool
	Salary Salary
	Bad    BadRecord
}

// IsCandidate reports whether r has a salary and matches the qualifying
// level (case-insensitive) and year (exact).
func IsCandidate(r Record) bool {
	return r.Salary != nil &&
		r.Level != nil && strings.EqualFold(*r.Level, QualifyingLevel) &&
		r.Year != nil && *r.Year == QualifyingYear
}

// ParseSalary strips "$" and "," from s and parses the remainder as a
// base-10 integer. The remainder must be one or more ASCII digits.
func ParseSalary(s string) (Salary, bool) {
	s = strings.NewReplacer("$", "", ",", "").Replace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return Salary(n), true
}

// Classify decides whether r is a valid salary or a bad record.
func Classify(r Record) Classification {
	if IsCandidate(r) {
		if salary, ok := ParseSalary(*r.Salary); ok {
			return Classification{Valid: true, Salary: salary}
		}
	}
	return Classification{Bad: NewBadRecord(r)}
}

// Partition holds the two ordered outputs of classifying a table.
type Partition struct {
	Salaries   []Salary
	BadRecords []BadRecord
}

// Total returns the number of records classified.
func (p *Partition) Total() int {
	return len(p.Salaries) + len(p.BadRecords)
}

// ClassifyAll classifies records in order and splits the outcomes into
// valid salaries and bad records, each preserving source order.
func ClassifyAll(records []Record) *Partition {
	p := &Partition{
		Salaries:   []Salary{},
		BadRecords: []BadRecord{},
	}
	for _, r := range records {
		c := Classify(r)
		if c.Valid {
			p.Salaries = append(p.Salaries, c.Salary)
		} else {
			p.BadRecords = append(p.BadRecords, c.Bad)
		}
	}
	return p
}

// Digest returns a short hex fingerprint of a fetched page, recorded with
// the dataset summary so audits can tell whether two runs saw the same data.
func Digest(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}
