// Command remapcoords rewrites region coordinate files for a new map layout.
//
//	remapcoords [-dir MapData] originalMargin originalHalfSize xOffset yOffset newHalfSize newMargin
//
// Results are written to <dir>/new with the original file names. Put -- before
// the numbers when an offset is negative.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/phanxgames/areatracker"
)

func main() {
	dir := pflag.String("dir", "MapData", "directory holding the region files")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: remapcoords [-dir MapData] originalMargin originalHalfSize xOffset yOffset newHalfSize newMargin")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	t, err := areatracker.ParseRemapArgs(pflag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(2)
	}
	written, err := t.RemapDir(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("remapped %d files into %s/new\n", len(written), *dir)
}
