package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// overrideFlags holds document field overrides. Non-empty values win
// over front matter and spec fields.
type overrideFlags struct {
	title       string
	recipients  string
	signer      string
	date        string
	body        string
	bodyFile    string
	attachments []string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	overrides overrideFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOverrideFlags adds document override flags to a FlagSet.
func addOverrideFlags(fs *flag.FlagSet, f *overrideFlags) {
	fs.StringVar(&f.title, "title", "", "document title (overrides the first # heading)")
	fs.StringVar(&f.recipients, "recipients", "", "recipients, separated by 、 or commas")
	fs.StringVar(&f.signer, "signer", "", "signing authority")
	fs.StringVar(&f.date, "date", "", "issue date (\"auto\" = today)")
	fs.StringVar(&f.body, "body", "", "body text, one paragraph per line")
	fs.StringVar(&f.bodyFile, "body-file", "", "body text file, one paragraph per line")
	fs.StringArrayVar(&f.attachments, "attachment", nil, "attachment name (repeatable)")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addOverrideFlags(fs, &f.overrides)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
