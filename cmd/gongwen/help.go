package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gongwen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert controlled Markdown or JSON/YAML specs to DOCX")
	fmt.Fprintln(w, "  doctor     Check that the required fonts are installed")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'gongwen help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gongwen convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert controlled Markdown (.md) or document specs (.json, .yaml)")
	fmt.Fprintln(w, "to fixed-layout 公文 DOCX files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File or directory (optional if config has input.defaultDir,")
	fmt.Fprintln(w, "           or when the document is given entirely via flags)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Document title (overrides the first # heading)")
	fmt.Fprintln(w, "      --recipients <s>      Recipients, separated by 、 or commas")
	fmt.Fprintln(w, "      --signer <s>          Signing authority")
	fmt.Fprintln(w, "      --date <s>            Issue date: \"auto\" = today, or a literal")
	fmt.Fprintln(w, "      --body <s>            Body text, one paragraph per line")
	fmt.Fprintln(w, "      --body-file <path>    Body text file, one paragraph per line")
	fmt.Fprintln(w, "      --attachment <s>      Attachment name (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: gongwen doctor")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that the fonts required for 公文 layout are installed.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: gongwen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: gongwen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
