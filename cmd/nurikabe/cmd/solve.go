package cmd

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nurikabe-dev/nurikabe"
)

var solveConfigFlag string

// solveCmd reads a puzzle text file (board, optionally followed by a
// blank line and a reference solution grid) and runs it to
// completion, printing the resulting grid.
var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "solve a Nurikabe puzzle",
	Long: `Read a puzzle from FILE: one grid of givens, optionally followed by a
blank line and a reference solution grid of the same size. Run the solver
to completion and print the resulting board.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		check(fileExists(args[0]))
		buf, err := ioutil.ReadFile(args[0])
		check(err)

		board, solution := splitPuzzle(string(buf))

		var opts []nurikabe.GridOption
		if solveConfigFlag != "" {
			check(fileExists(solveConfigFlag))
			cfg, err := nurikabe.LoadConfig(solveConfigFlag)
			check(err)
			opts = append(opts, nurikabe.WithConfig(cfg))
		}

		grid, err := nurikabe.LoadPuzzle(board, solution, opts...)
		check(err)

		err = grid.Solve()
		printGrid(grid)
		if err != nil {
			fmt.Println("not solved:", err)
			return
		}
		if grid.IsSolved() {
			fmt.Println("solved")
		} else {
			fmt.Println("no further progress; not solved")
		}
	},
}

func init() {
	RootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveConfigFlag, "config", "", "YAML tunables file")
}

// splitPuzzle separates a board grid from an optional reference
// solution grid on the first blank line.
func splitPuzzle(text string) (board, solution string) {
	parts := strings.SplitN(text, "\n\n", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return text, ""
}

func printGrid(g *nurikabe.Grid) {
	fmt.Print(nurikabe.RenderGrid(g))
}
