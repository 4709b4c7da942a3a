package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Layout bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("TOML_DEBUG_ENCODE")
	d.Layout = boolEnv("TOML_DEBUG_LAYOUT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Layout() bool {
	return d.Layout
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
