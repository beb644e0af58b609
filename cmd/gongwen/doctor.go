package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gongwen "github.com/hanchen-dev/go-gongwen"
	"github.com/hanchen-dev/go-gongwen/internal/hints"
)

// fontCheck pairs a required font family with filename substrings that
// identify it in system font directories. Matching is case-insensitive
// and covers the common pinyin file names (simhei.ttf, simfang.ttf).
type fontCheck struct {
	family  string
	matches []string
}

// requiredFonts lists the faces the default layout renders with.
func requiredFonts() []fontCheck {
	return []fontCheck{
		{gongwen.FontTitle, []string{"方正小标宋", "fzxiaobiaosong", "fzxbsjw"}},
		{gongwen.FontHeading, []string{"黑体", "simhei"}},
		{gongwen.FontSubheading, []string{"楷体", "simkai", "kaiti"}},
		{gongwen.FontBody, []string{"仿宋", "simfang", "fangsong"}},
		{gongwen.FontPageNumber, []string{"宋体", "simsun"}},
	}
}

// fontDirs returns the font directories to scan for the current OS.
func fontDirs() []string {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Library/Fonts",
			"/System/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	case "windows":
		return []string{`C:\Windows\Fonts`}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		}
	}
}

// runDoctor checks that the required fonts are installed and reports
// the result. Returns ExitSuccess when all fonts are found.
func runDoctor(env *Environment) int {
	names := collectFontNames(fontDirs())

	var missing []string
	for _, check := range requiredFonts() {
		if fontInstalled(names, check.matches) {
			fmt.Fprintf(env.Stdout, "ok       %s\n", check.family)
		} else {
			fmt.Fprintf(env.Stdout, "missing  %s\n", check.family)
			missing = append(missing, check.family)
		}
	}

	if len(missing) > 0 {
		fmt.Fprintf(env.Stderr, "%d font(s) missing%s\n", len(missing), hints.ForMissingFonts(missing))
		return ExitGeneral
	}

	fmt.Fprintln(env.Stdout, "All required fonts are installed.")
	return ExitSuccess
}

// collectFontNames walks the font directories and returns lowercased
// file names. Unreadable directories are skipped.
func collectFontNames(dirs []string) []string {
	var names []string
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}
			if !d.IsDir() {
				names = append(names, strings.ToLower(d.Name()))
			}
			return nil
		})
	}
	return names
}

// fontInstalled reports whether any collected file name contains one of
// the match substrings.
func fontInstalled(names, matches []string) bool {
	for _, name := range names {
		for _, m := range matches {
			if strings.Contains(name, strings.ToLower(m)) {
				return true
			}
		}
	}
	return false
}
