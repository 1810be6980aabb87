// Package flagx lets several loaders share os.Args: each one keeps only the
// flags it owns so that flag.FlagSet.Parse never trips over a neighbour's
// flags.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args made of the flags named in owned and
// their values. Both "-f value" and "-f=value" are understood; a value that
// itself starts with "-" is not consumed.
func FilterArgs(args []string, owned []string) []string {
	keep := make(map[string]bool, len(owned))
	for _, f := range owned {
		keep[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") {
			if name, _, found := strings.Cut(arg, "="); found {
				if keep[name] {
					out = append(out, arg)
				}
				continue
			}
		}

		if !keep[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigFileFlag extracts the JSON config path given with -c or -config.
// It returns "" when neither is present.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
