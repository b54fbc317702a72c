package csvlog

import(
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	ft "github.com/skypies/flighttest"
)

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// WriteTable writes a header row and then the rows, as given.
func WriteTable(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil { // WriteAll flushes
		return err
	}
	return cw.Error()
}

// WriteControlLog writes the samples in the DAQ's own column layout, with no index column.
func WriteControlLog(w io.Writer, l ft.ControlLog) error {
	rows := make([][]string, len(l))
	for i,s := range l {
		row := []string{s.Time}
		for _,v := range s.Values() {
			row = append(row, formatFloat(v))
		}
		rows[i] = row
	}
	return WriteTable(w, l.Columns(), rows)
}

func WriteControlLogFile(path string, l ft.ControlLog) error {
	f,err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteControlLog(f, l); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
