package main

import (
	"fmt"
	"os"

	"github.com/kingrea/sound-archive/internal/catalog"
	"github.com/kingrea/sound-archive/plugins"
)

// handleValidateCatalogCommand implements `soundarchive validate-catalog <file>`,
// which checks a catalog plugin without starting the UI.
func handleValidateCatalogCommand() bool {
	if len(os.Args) < 2 || os.Args[1] != "validate-catalog" {
		return false
	}
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: soundarchive validate-catalog /path/to/catalog.yaml")
		os.Exit(2)
	}
	file, err := plugins.LoadFile(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	clashes := 0
	builtin := catalog.MustBuiltinStore()
	for _, rec := range file.Catalog.Specimens {
		if builtin.Has(rec.ID) {
			fmt.Printf("- %s shadows a built-in specimen\n", rec.ID)
			clashes++
		}
	}
	if clashes > 0 {
		fmt.Printf("Invalid: %s (%d id clashes)\n", file.Path, clashes)
		os.Exit(1)
	}
	fmt.Printf("OK: %s (%d specimens)\n", file.Path, len(file.Catalog.Specimens))
	os.Exit(0)
	return true
}
