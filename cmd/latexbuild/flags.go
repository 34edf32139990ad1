package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	root      string
	latexCmd  string
	maxPasses int
	quiet     bool
	verbose   bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common     commonFlags
	output     string
	paramsFile string
}

// batchFlags holds flags for the batch command.
type batchFlags struct {
	common  commonFlags
	workers int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.root, "root", "r", "", "template root directory")
	fs.StringVar(&f.latexCmd, "latex-cmd", "", "primary latex compiler binary (default: pdflatex)")
	fs.IntVar(&f.maxPasses, "max-passes", 0, "convergence pass bound (0 = unbounded)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show compiler output")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (.pdf, .html, or .docx)")
	fs.StringVarP(&f.paramsFile, "params", "p", "", "YAML file of template parameters")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBatchFlags parses batch command flags and returns positional args.
func parseBatchFlags(args []string) (*batchFlags, []string, error) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	f := &batchFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBatchUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
