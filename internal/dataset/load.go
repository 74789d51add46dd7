package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// Options controls CSV loading.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects among ',', ';', '\t'.
	Delimiter rune
	// MaxRows limits data rows read; 0 means unlimited.
	MaxRows int
	// NoHeader treats the first record as data and names columns X0..Xn.
	NoHeader bool
}

// DefaultOptions returns reasonable defaults for loading.
func DefaultOptions() Options {
	return Options{MaxRows: 100000}
}

// missingTokens are normalized to NA while loading. Empty cells count as
// missing, matching how the reports account for them.
var missingTokens = []string{"", "NA", "NaN", "null", "<nil>"}

// Load reads a CSV file into a Dataset.
func Load(path string, opt Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Read(f, path, opt)
}

// Read parses CSV content from r. The name is only used for delimiter
// sniffing by extension when the content itself is ambiguous.
func Read(r io.Reader, name string, opt Options) (*Dataset, error) {
	br := bufio.NewReader(r)
	delim := opt.Delimiter
	if delim == 0 {
		head, _ := br.Peek(4096)
		delim = sniffDelimiter(name, head)
	}

	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	maxRows := opt.MaxRows
	if maxRows <= 0 {
		maxRows = math.MaxInt
	}

	var records [][]string
	ncol := 0
	dataRows := 0
	for dataRows < maxRows {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(records)+1, err)
		}
		if len(rec) > ncol {
			ncol = len(rec)
		}
		row := make([]string, len(rec))
		copy(row, rec)
		records = append(records, row)
		if opt.NoHeader || len(records) > 1 {
			dataRows++
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: empty input")
	}
	// Normalize ragged rows; short rows are padded with missing cells.
	for i, rec := range records {
		if len(rec) < ncol {
			row := make([]string, ncol)
			copy(row, rec)
			records[i] = row
		}
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(!opt.NoHeader),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingTokens),
	)
	return FromDataFrame(df)
}

// sniffDelimiter picks the separator from the filename extension, falling
// back to counting candidates in the first line.
func sniffDelimiter(name string, head []byte) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	line := string(head)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best, bestCount := ',', strings.Count(line, ",")
	for _, c := range []rune{';', '\t'} {
		if n := strings.Count(line, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}
