// Package flagx lets several config stages each parse only the flags they own
// out of one shared argument list.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args made of allowed flags and their values.
//
// Supported forms:
//
//	-c conf.json      flag and value as separate arguments
//	--config=a.json   flag and value joined with '='
//
// A token that starts with '-' is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// StringFlag extracts the value of a string flag known under any of names
// (without the leading dash). The last occurrence wins; "" when absent.
func StringFlag(args []string, names ...string) string {
	var value string

	dashed := make([]string, 0, len(names)*2)
	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", n)
		dashed = append(dashed, "-"+n, "--"+n)
	}
	_ = fs.Parse(FilterArgs(args, dashed))

	return value
}

// JsonConfigFlags returns the config file path given via -c or -config.
func JsonConfigFlags(args []string) string {
	return StringFlag(args, "c", "config")
}

// EnvFileFlags returns the dotenv file path given via -e or -env-file.
func EnvFileFlags(args []string) string {
	return StringFlag(args, "e", "env-file")
}
