package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// fontFlags holds run font flags.
type fontFlags struct {
	latin string
	cjk   string
	size  float64 // points
}

// layoutFlags holds page and paragraph layout flags.
type layoutFlags struct {
	lineSpacing   float64 // points
	columns       int
	columnSpacing float64 // centimetres
	margin        float64 // centimetres
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	noPause bool
	font    fontFlags
	layout  layoutFlags

	// changed records the flags set on the command line. Zero is a valid
	// value for margins and spacing, so presence can't be inferred from it.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addFontFlags adds font flags to a FlagSet.
func addFontFlags(fs *flag.FlagSet, f *fontFlags) {
	fs.StringVar(&f.latin, "font-latin", "", "font for Western text")
	fs.StringVar(&f.cjk, "font-cjk", "", "font for Chinese/Japanese/Korean text")
	fs.Float64Var(&f.size, "font-size", 0, "font size in points")
}

// addLayoutFlags adds layout flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.Float64Var(&f.lineSpacing, "line-spacing", 0, "exact line height in points")
	fs.IntVar(&f.columns, "columns", 0, "number of text columns (1-45)")
	fs.Float64Var(&f.columnSpacing, "column-spacing", 0, "space between columns in cm")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in cm (all sides)")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usageOut io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{changed: make(map[string]bool)}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.noPause, "no-pause", false, "exit without waiting for a key")

	addCommonFlags(fs, &f.common)
	addFontFlags(fs, &f.font)
	addLayoutFlags(fs, &f.layout)

	fs.SetOutput(usageOut)
	fs.Usage = func() { printConvertUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, usageOut io.Writer) (jsonOutput bool, configName string, err error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.BoolVar(&jsonOutput, "json", false, "output as JSON")
	fs.StringVarP(&configName, "config", "c", "", "config file name or path")
	fs.SetOutput(usageOut)
	fs.Usage = func() { printDoctorUsage(usageOut) }
	err = fs.Parse(args)
	return jsonOutput, configName, err
}
