package cli

import (
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/render"
)

var (
	cubeSize  int
	plainNet  bool
	showState bool
	fromState string

	scrambleSeed   int64
	scrambleLength int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a solved cube, or a stored state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		c, err := prepareCube(e)
		if err != nil {
			return err
		}
		printCube(e, c)
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves and print the result",
	Long: `Apply a sequence of moves in standard notation and print the cube.

Face turns:   R L U D F B, with ' for counter-clockwise and 2 for a half turn
Slices:       M E S turn every inner slice; M[0] E[1] S[2] turn one
Rotations:    x y z

Examples:
  nxcube apply "R U R' U'"
  nxcube apply --size 5 "M[1] U2 M[1]'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		c, err := prepareCube(e)
		if err != nil {
			return err
		}
		if err := c.ApplyNotation(strings.Join(args, " ")); err != nil {
			return err
		}
		printCube(e, c)
		return nil
	},
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		c, err := prepareCube(e)
		if err != nil {
			return err
		}
		length := scrambleLength
		if length == 0 {
			length = e.cfg.ScrambleLength
		}
		moves, err := c.Scramble(newRand(scrambleSeed), length)
		if err != nil {
			return err
		}
		e.printf("%s\n\n", nxcube.FormatMoves(moves))
		printCube(e, c)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{showCmd, applyCmd, scrambleCmd} {
		cmd.Flags().IntVarP(&cubeSize, "size", "n", 0, "Cube size (default from config)")
		cmd.Flags().BoolVar(&plainNet, "plain", false, "Print color letters without terminal colors")
		cmd.Flags().BoolVar(&showState, "state", false, "Also print the state string")
		cmd.Flags().StringVar(&fromState, "from", "", "Start from a state string instead of solved")
		rootCmd.AddCommand(cmd)
	}
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "RNG seed (0 = random based on time)")
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 0, "Number of moves (default from config)")
}

// prepareCube builds the cube the flags describe.
func prepareCube(e *env) (*nxcube.Cube, error) {
	c, err := e.newCube(cubeSize)
	if err != nil {
		return nil, err
	}
	if fromState != "" {
		if err := c.Restore(fromState); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func printCube(e *env, c *nxcube.Cube) {
	r := render.New(nil)
	if plainNet {
		r = render.Plain()
	}
	e.printf("%s\n", r.Net(c))
	e.printf("Phase: %s\n", c.DetectPhase().DisplayName())
	if showState {
		e.printf("State: %s\n", c.State())
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
