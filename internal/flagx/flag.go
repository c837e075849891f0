// Package flagx lets several packages share os.Args without tripping over
// each other's flags: each loader keeps only the flags it knows about.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs keeps the allowed flags from args together with their values.
// Both "-f value" and "-f=value" forms are recognised. A token following an
// allowed flag is taken as its value unless it starts with '-'.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if allowed[name] {
				kept = append(kept, arg)
			}
			continue
		}

		if !allowed[arg] {
			continue
		}
		kept = append(kept, arg)
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			kept = append(kept, args[next])
			i = next
		}
	}
	return kept
}

// ConfigFileFromArgs returns the value of -c / -config found in args,
// or "" if neither is present. The last occurrence wins.
func ConfigFileFromArgs(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// ConfigFile is ConfigFileFromArgs applied to the process arguments.
func ConfigFile() string {
	return ConfigFileFromArgs(os.Args[1:])
}
