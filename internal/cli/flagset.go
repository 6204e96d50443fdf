package cli

import "flag"

// NewBareFlagSet returns a clean FlagSet with ContinueOnError and no usage.
func NewBareFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}
