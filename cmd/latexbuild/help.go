package main

import (
	"fmt"
	"io"
	"os"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latexbuild <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render a template and build one document")
	fmt.Fprintln(w, "  batch      Build every job in a YAML job list")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'latexbuild help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latexbuild build <template> -o <output> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a template and drive the LaTeX toolchain to a fixed point.")
	fmt.Fprintln(w, "The output format is inferred from the output extension.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  template   Template path, relative to the template root")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file (.pdf, .html, or .docx)")
	fmt.Fprintln(w, "  -r, --root <dir>        Template root directory")
	fmt.Fprintln(w, "  -p, --params <file>     YAML file of template parameters")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --latex-cmd <bin>   Primary compiler binary (default: pdflatex)")
	fmt.Fprintln(w, "      --max-passes <n>    Convergence pass bound (0 = unbounded)")
	fmt.Fprintln(w, "  -v, --verbose           Show compiler output")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
}

// printBatchUsage prints usage for the batch command.
func printBatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latexbuild batch <jobs.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build every job in a YAML job list, concurrently.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Jobs file format:")
	fmt.Fprintln(w, "  templateRoot: templates")
	fmt.Fprintln(w, "  jobs:")
	fmt.Fprintln(w, "    - template: report.tex")
	fmt.Fprintln(w, "      output: out/q3.pdf")
	fmt.Fprintln(w, "      params:")
	fmt.Fprintln(w, "        title: Q3 Report")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -r, --root <dir>        Template root (overridden by the jobs file)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --latex-cmd <bin>   Primary compiler binary (default: pdflatex)")
	fmt.Fprintln(w, "      --max-passes <n>    Convergence pass bound (0 = unbounded)")
	fmt.Fprintln(w, "  -v, --verbose           Show compiler output")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
}

// runHelp shows help for a specific command.
func runHelp(args []string) {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return
	}
	switch args[0] {
	case "build":
		printBuildUsage(os.Stdout)
	case "batch":
		printBatchUsage(os.Stdout)
	default:
		printUsage(os.Stdout)
	}
}
