// Package csvlog reads the CSV exports from the INS, the DAQ and the observer's maneuver
// logger, and writes control position extracts.
package csvlog

import(
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/skypies/flighttest/log"
)

// {{{ notes

/* Each export is a plain CSV with a single header row; the columns vary by device (and by
firmware version), so rows are read into a map from header name to value.

The INS state log has fifty-odd columns, most of them status flags; we only decode a few:

  Human Timestamp,Unix Time,Microseconds,System Failure,...,Latitude (degrees),...

The DAQ writes the control positions in volts:

  Time,Pitch,Roll,Collective,Pedal
  15:40:21.020,7.2191,7.5012,3.1102,6.0004

Big state logs are often archived as .csv.gz or .csv.zst; these are decompressed on the fly.

 */

// }}}

// Progress gets the one-line-per-file report from LoadDir.
var Progress io.Writer = os.Stdout

type RowReader struct {
	csvreader  *csv.Reader
	headers   []string
	line       int
}

func NewRowReader(ioreader io.Reader) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.csvreader.FieldsPerRecord = -1 // We check the counts ourselves
	rdr.csvreader.LazyQuotes = true     // The maneuver logger sometimes writes ,  "quoted text"
	rdr.headers,_ = rdr.csvreader.Read() // Discard err, we'll get it when we try to get next row
	for i := range rdr.headers {
		rdr.headers[i] = strings.TrimSpace(strings.TrimPrefix(rdr.headers[i], "\ufeff"))
	}
	rdr.line = 1
	return &rdr
}

func (r *RowReader)Headers() []string { return r.headers }

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := map[string]string{}

	vals,err := r.csvreader.Read()
	r.line++
	if err != nil {
		return m,err
	} else if len(r.headers) != len(vals) {
		return m, fmt.Errorf("line %d: header/val mismatch (%d/%d)", r.line, len(r.headers), len(vals))
	}

	for i := range vals {
		m[r.headers[i]] = vals[i]
	}

	return m,nil
}

// }}}

type Row map[string]string

// A Table is a whole CSV file, read into memory.
type Table struct {
	Name     string   // Filename, without directory or extensions
	Headers  []string
	Rows     []Row
}

func (t Table)String() string {
	return fmt.Sprintf("%s (%d rows, %d columns)", t.Name, len(t.Rows), len(t.Headers))
}

func (t Table)HasColumn(col string) bool {
	for _,h := range t.Headers {
		if h == col { return true }
	}
	return false
}

// Records lays the rows back out in header order, ready for WriteTable.
func (t Table)Records() [][]string {
	out := make([][]string, len(t.Rows))
	for i,r := range t.Rows {
		for _,h := range t.Headers {
			out[i] = append(out[i], r[h])
		}
	}
	return out
}

// {{{ ReadTable

func ReadTable(name string, r io.Reader) (Table, error) {
	rdr := NewRowReader(r)
	t := Table{Name: name, Headers: rdr.Headers()}
	if len(t.Headers) == 0 {
		return t, fmt.Errorf("%s: no header row", name)
	}

	for {
		row,err := rdr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return t, fmt.Errorf("%s: %w", name, err)
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// }}}
// {{{ ReadFile

var extensions = []string{".csv.gz", ".csv.zst", ".csv"}

// TableName strips the directory and the CSV (and compression) extensions.
func TableName(path string) string {
	base := filepath.Base(path)
	for _,ext := range extensions {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

func isCSV(filename string) bool {
	return TableName(filename) != filepath.Base(filename)
}

func ReadFile(path string) (Table, error) {
	f,err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	var r io.Reader = f
	switch lower := strings.ToLower(path); {
	case strings.HasSuffix(lower, ".gz"):
		gz,err := gzip.NewReader(f)
		if err != nil {
			return Table{}, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()
		r = gz

	case strings.HasSuffix(lower, ".zst"):
		zr,err := zstd.NewReader(f, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return Table{}, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return ReadTable(TableName(path), r)
}

// }}}
// {{{ LoadDir

// LoadDir reads every CSV file in the directory, in filename order. Files that can't be read
// are logged and skipped; an error is only returned if the directory itself can't be read.
func LoadDir(dir string, lg *log.Logger) ([]Table, error) {
	entries,err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}

	files := []string{}
	for _,e := range entries {
		if !e.IsDir() && isCSV(e.Name()) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	tables := []Table{}
	if len(files) == 0 {
		fmt.Fprintf(Progress, "No CSV files found in %s\n", dir)
		lg.Warnf("no CSV files in %s", dir)
		return tables, nil
	}

	for _,file := range files {
		t,err := ReadFile(filepath.Join(dir, file))
		if err != nil {
			fmt.Fprintf(Progress, "Error loading %s: %v\n", file, err)
			lg.Errorf("loading %s: %v", file, err)
			continue
		}
		fmt.Fprintf(Progress, "Loaded: %s (%d rows, %d columns)\n", file, len(t.Rows), len(t.Headers))
		lg.Debugf("loaded %s", t)
		tables = append(tables, t)
	}

	return tables, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
