package report

import(
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Write(r.HeadersText)
	for _,row := range r.RowsText {
		csvWriter.Write(row)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// OutputMetadataAsCSV writes the counters, one per line, as key,value pairs.
func (r *Report)OutputMetadataAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Write([]string{"metric", "value"})
	csvWriter.WriteAll(r.MetadataTable())
	return csvWriter.Error()
}

// SuffixedFilename adds "-<suffix>" before the extension: "out.csv" becomes "out-minmax.csv".
func SuffixedFilename(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + suffix + ext
}

// CSVFilename is where OutputAsCSV should go when writing to the output dir.
func (r *Report)CSVFilename() string {
	return r.OutputPath(fmt.Sprintf("report-%s-%s.csv", r.Name, r.Options.Block))
}

func (r *Report)OutputCSVFile() (string, error) {
	path := r.CSVFilename()
	f,err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := r.OutputAsCSV(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, f.Close()
}
