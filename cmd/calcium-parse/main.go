// Command calcium-parse is a thin CLI wrapper around internal/calcium: it
// reads a compilation unit from a file or stdin, parses it, and reports
// either the accepting derivations or a structured parse error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/calcium-lang/front/internal/calcium"
	"github.com/calcium-lang/front/pkg/front"
)

func main() {
	maxPaths := flag.Int("max-paths", 0, "ambiguity ceiling per token position (0 keeps the parser's default of 10000)")
	flag.Parse()

	var src []byte
	var err error
	if path := flag.Arg(0); path != "" {
		src, err = os.ReadFile(path)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}

	var opts []front.ParseOption
	if *maxPaths > 0 {
		opts = append(opts, front.WithMaxPathsPerPosition(*maxPaths))
	}

	result, parseErr := calcium.Parse(string(src), opts...)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr)
		os.Exit(1)
	}

	fmt.Printf("%d accepting derivation(s)\n", len(result.Accepting))
	for i, tail := range result.Accepting {
		fmt.Printf("[%d] %s\n", i, calcium.Render(tail))
	}
}
