// Command strkit solves string-processing exercises from stdin.
//
//	echo "2 aa 4 aaaa" | strkit kmp       # 0 1 2
//	echo "2 a" | strkit password          # 625
package main

import (
	"os"

	"github.com/katalvlaran/strkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
