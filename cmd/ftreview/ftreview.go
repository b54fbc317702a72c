// The ftreview command loads a test block's logs, links them by pilot, and runs reports over
// the resulting sessions.
//
//	ftreview -config blockA.yaml -rep linkage,maneuvers
//	ftreview -rep list
//	ftreview -cmd convert -open "ControlPos_P02 Block C.csv"
//	ftreview -cmd sim "Steep Turn Right_1_A-L06_Pilot 1_09.49.13.693.csv"
package main

import(
	"flag"
	"fmt"
	golog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	ft "github.com/skypies/flighttest"
	_ "github.com/skypies/flighttest/analysis"
	"github.com/skypies/flighttest/chart"
	"github.com/skypies/flighttest/config"
	"github.com/skypies/flighttest/csvlog"
	"github.com/skypies/flighttest/log"
	"github.com/skypies/flighttest/report"
)

var(
	fVerbosity int
	fConfig string
	fStates, fManeuvers, fControls, fOut string
	fBlock string
	fPilots string
	fManeuverNames string
	fReports string
	fLogDir, fLogLevel string
	fOpen bool
	fCSV string
	fCmd string
	fArmMM float64
	fSmooth int
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fConfig, "config", "", "YAML config file for the block")
	flag.StringVar(&fStates, "states", "", "folder of INS state logs")
	flag.StringVar(&fManeuvers, "maneuvers", "", "folder of maneuver logs")
	flag.StringVar(&fControls, "controls", "", "folder of control position logs")
	flag.StringVar(&fOut, "out", "", "output folder")
	flag.StringVar(&fBlock, "block", "", "test block label, e.g. BlockA")
	flag.StringVar(&fPilots, "pilot", "", "comma separated pilots (e.g. 3,instructor); default all")
	flag.StringVar(&fManeuverNames, "maneuver", "", "comma separated maneuver names; default all")
	flag.StringVar(&fReports, "rep", "linkage", "comma separated reports to run, or 'list'")
	flag.StringVar(&fLogDir, "log", "", "folder for the log file")
	flag.StringVar(&fLogLevel, "loglevel", "", "debug, info, warn or error")
	flag.BoolVar(&fOpen, "open", false, "open the PDFs & charts written")
	flag.StringVar(&fCSV, "csv", "", "write report CSV here ('out' for the output folder); default stdout")
	flag.StringVar(&fCmd, "cmd", "", "'convert' or 'sim', to convert the files named as arguments")
	flag.Float64Var(&fArmMM, "arm", 0, "cyclic arm length in mm (fulcrum to hand)")
	flag.IntVar(&fSmooth, "smooth", 0, "moving average window, in samples")
	flag.Parse()
}

func splitList(s string) []string {
	out := []string{}
	for _,f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" { out = append(out, f) }
	}
	return out
}

// {{{ loadConfig

func loadConfig() *config.Config {
	cfg := config.DefaultConfig()
	if fConfig != "" {
		c,err := config.Load(fConfig)
		if err != nil { golog.Fatal(err) }
		cfg = *c
	}

	cfg.Apply(config.Overrides{
		States: fStates,
		Maneuvers: fManeuvers,
		Controls: fControls,
		Output: fOut,
		Block: fBlock,
		Pilots: splitList(fPilots),
		LogDir: fLogDir,
		LogLevel: fLogLevel,
		CyclicArmMM: fArmMM,
		Smoothing: fSmooth,
	})
	if names := splitList(fManeuverNames); len(names) > 0 {
		cfg.Maneuvers = names
	}

	if err := cfg.Validate(); err != nil { golog.Fatal(err) }
	return &cfg
}

// }}}
// {{{ loadSessions

func loadSessions(cfg *config.Config, lg *log.Logger) []ft.Session {
	load := func(what, dir string) []csvlog.Table {
		fmt.Printf("Loading %s logs from %s\n", what, dir)
		tables,err := csvlog.LoadDir(dir, lg)
		if err != nil { golog.Fatalf("%s logs: %v", what, err) }
		return tables
	}

	accept := func(t csvlog.Table, stats csvlog.DecodeStats, err error) bool {
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", t.Name, err)
			lg.Warnf("skipping %s: %v", t.Name, err)
			return false
		}
		if stats.BadValues > 0 || stats.BadRows > 0 {
			lg.Infof("%s: %s", t.Name, stats)
		}
		return true
	}

	maneuvers := map[string]ft.ManeuverLog{}
	for _,t := range load("maneuver", cfg.Folders.Maneuvers) {
		l,stats,err := t.ToManeuverLog()
		if accept(t, stats, err) { maneuvers[t.Name] = l }
	}
	states := map[string]ft.StateLog{}
	for _,t := range load("state", cfg.Folders.States) {
		l,stats,err := t.ToStateLog()
		if accept(t, stats, err) { states[t.Name] = l }
	}
	controls := map[string]ft.ControlLog{}
	for _,t := range load("control", cfg.Folders.Controls) {
		l,stats,err := t.ToControlLog()
		if accept(t, stats, err) { controls[t.Name] = l }
	}

	sessions := ft.LinkByPilot(maneuvers, states, controls)
	for _,s := range sessions {
		fmt.Print(s.String())
	}
	fmt.Printf("Linked %d sessions\n\n", len(sessions))
	return sessions
}

// }}}
// {{{ runReports

func optionsFromConfig(name string, cfg *config.Config) report.Options {
	opt := report.DefaultOptions()
	opt.Name = name
	opt.OutputDir = cfg.Folders.Output
	opt.Block = cfg.Block
	opt.Pilots = cfg.Pilots
	opt.Maneuvers = cfg.Maneuvers
	opt.Calibration = cfg.Calibration
	opt.SmoothingWindow = cfg.Smoothing
	if fVerbosity > 1 { opt.ReportLogLevel = report.DEBUG }
	return opt
}

// writeCSV sends the report to -csv; when several reports share one path, each gets its
// name added to the filename.
func writeCSV(r *report.Report, nReports int) {
	switch fCSV {
	case "":
		if err := r.OutputAsCSV(os.Stdout); err != nil { golog.Fatal(err) }
	case "out":
		path,err := r.OutputCSVFile()
		if err != nil { golog.Fatal(err) }
		fmt.Printf("Wrote %s\n", path)
	default:
		path := fCSV
		if nReports > 1 { path = report.SuffixedFilename(fCSV, r.Name) }
		f,err := os.Create(path)
		if err != nil { golog.Fatal(err) }
		if err := r.OutputAsCSV(f); err != nil { golog.Fatal(err) }
		if err := f.Close(); err != nil { golog.Fatal(err) }
		fmt.Printf("Wrote %s\n", path)
	}
}

func runReports(names []string, cfg *config.Config, lg *log.Logger) {
	sessions := loadSessions(cfg, lg)

	for _,name := range names {
		r,err := report.SetupReport(optionsFromConfig(name, cfg), lg)
		if err != nil { golog.Fatal(err) }

		r.Run(sessions)

		if fVerbosity > 0 {
			fmt.Print(r.Log)
			for _,row := range r.MetadataTable() {
				fmt.Printf("  %-50.50s %s\n", row[0], row[1])
			}
		}
		writeCSV(&r, len(names))

		if fOpen { openOutputs(r.Outputs) }
	}
}

// }}}
// {{{ convert, sim

// convertControlFile writes the converted positions and their chart alongside each other in
// the output folder.
func convertControlFile(path string, cfg *config.Config) []string {
	t,err := csvlog.ReadFile(path)
	if err != nil { golog.Fatal(err) }
	l,stats,err := t.ToControlLog()
	if err != nil { golog.Fatal(err) }
	fmt.Printf("%s: %s\n", t.Name, stats)

	converted := l.Convert(cfg.Calibration)
	if err := os.MkdirAll(cfg.Folders.Output, 0o755); err != nil { golog.Fatal(err) }

	csvPath := filepath.Join(cfg.Folders.Output, t.Name+"_converted.csv")
	if err := csvlog.WriteControlLogFile(csvPath, converted); err != nil { golog.Fatal(err) }

	pngPath := filepath.Join(cfg.Folders.Output, t.Name+"_controlpos.png")
	if err := chart.SaveControlPNG(pngPath, t.Name, converted, cfg.Smoothing); err != nil {
		golog.Fatal(err)
	}

	fmt.Printf("Wrote %s\nWrote %s\n", csvPath, pngPath)
	return []string{csvPath, pngPath}
}

// convertSimFile adds a degrees column to a simulator export.
func convertSimFile(path string, cfg *config.Config) []string {
	t,err := csvlog.ReadFile(path)
	if err != nil { golog.Fatal(err) }
	degs,stats,err := t.ToSimLatCyclicDegrees()
	if err != nil { golog.Fatal(err) }
	fmt.Printf("%s: %s\n", t.Name, stats)

	rows := t.Records()
	for i := range rows {
		rows[i] = append(rows[i], fmt.Sprintf("%.4f", degs[i]))
	}

	if err := os.MkdirAll(cfg.Folders.Output, 0o755); err != nil { golog.Fatal(err) }
	outPath := filepath.Join(cfg.Folders.Output, t.Name+"_degrees.csv")
	f,err := os.Create(outPath)
	if err != nil { golog.Fatal(err) }
	headers := append(append([]string{}, t.Headers...), csvlog.ColSimLatDegrees)
	if err := csvlog.WriteTable(f, headers, rows); err != nil {
		golog.Fatal(err)
	}
	if err := f.Close(); err != nil { golog.Fatal(err) }

	fmt.Printf("Wrote %s\n", outPath)
	return []string{outPath}
}

// }}}

func openOutputs(paths []string) {
	for _,p := range paths {
		if ext := filepath.Ext(p); ext != ".pdf" && ext != ".png" { continue }
		if err := browser.OpenFile(p); err != nil {
			fmt.Printf("open %s: %v\n", p, err)
		}
	}
}

func main() {
	if fReports == "list" {
		for _,e := range report.ListReports() {
			fmt.Printf("  %-14.14s %s\n", e.Name, e.Description)
		}
		return
	}

	cfg := loadConfig()
	lg := log.New(cfg.Logging.Level, cfg.Logging.Dir)
	lg.Info("ftreview starting", "block", cfg.Block, "args", os.Args[1:])

	switch fCmd {
	case "convert", "sim":
		if len(flag.Args()) == 0 {
			golog.Fatalf("-cmd %s needs one or more files", fCmd)
		}
		for _,arg := range flag.Args() {
			var outputs []string
			if fCmd == "convert" {
				outputs = convertControlFile(arg, cfg)
			} else {
				outputs = convertSimFile(arg, cfg)
			}
			lg.Info("converted", "file", arg, "outputs", outputs)
			if fOpen { openOutputs(outputs) }
		}

	case "":
		runReports(splitList(fReports), cfg, lg)

	default:
		golog.Fatalf("-cmd '%s' not known", fCmd)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
