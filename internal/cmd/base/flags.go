package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps flag.FlagSet to render options in command help.
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the options section of a command's help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	buf.WriteString("\n\nOptions:\n")

	f.VisitAll(func(fl *flag.Flag) {
		name, usage := flag.UnquoteUsage(fl)
		if name == "" {
			name = "bool"
		}
		fmt.Fprintf(&buf, "\n  -%s=<%s>\n", fl.Name, name)
		if fl.DefValue != "" {
			usage = fmt.Sprintf("%s Default: %s.", usage, fl.DefValue)
		}
		for _, line := range strings.Split(usage, "\n") {
			fmt.Fprintf(&buf, "      %s\n", line)
		}
	})

	return strings.TrimRight(buf.String(), "\n")
}
