package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
)

var (
	checkSeed   int64
	checkRounds int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the engine self-test on the configured size",
	Long: `Run closure and inverse checks with consistency checking enabled:
every layer turned four times must return to solved, and random
sequences followed by their inverse must too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		n := cubeSize
		if n == 0 {
			n = e.cfg.Size
		}
		opts, err := e.cubeOptions()
		if err != nil {
			return err
		}
		opts = append(opts, nxcube.WithConsistencyChecks(true))

		results := selfTest(n, newRand(checkSeed), checkRounds, opts...)
		failed := 0
		for _, r := range results {
			status := "ok"
			if r.err != nil {
				status = "FAIL: " + r.err.Error()
				failed++
			}
			e.printf("%-28s %s\n", r.name, status)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d checks failed", failed, len(results))
		}
		e.printf("\n%dx%d: all %d checks passed\n", n, n, len(results))
		return nil
	},
}

func init() {
	checkCmd.Flags().IntVarP(&cubeSize, "size", "n", 0, "Cube size (default from config)")
	checkCmd.Flags().Int64Var(&checkSeed, "seed", 0, "RNG seed (0 = random based on time)")
	checkCmd.Flags().IntVar(&checkRounds, "rounds", 20, "Random sequences to try")
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	name string
	err  error
}

// layerMoves lists one quarter turn of every layer of an n×n cube.
func layerMoves(n int) []nxcube.Move {
	var moves []nxcube.Move
	for _, f := range nxcube.FaceNames {
		moves = append(moves, nxcube.FaceMove(f, nxcube.CW))
	}
	for _, a := range nxcube.Axes {
		for i := 0; i < n-2; i++ {
			moves = append(moves, nxcube.SliceMove(a, i, nxcube.CW))
		}
		moves = append(moves, nxcube.RotationMove(a, nxcube.CW))
	}
	return moves
}

// selfTest runs the closure and inverse checks on fresh cubes.
func selfTest(n int, rng *rand.Rand, rounds int, opts ...nxcube.Option) []checkResult {
	var results []checkResult

	for _, m := range layerMoves(n) {
		err := expectSolved(n, opts, []nxcube.Move{m, m, m, m})
		results = append(results, checkResult{name: fmt.Sprintf("closure %s x4", m), err: err})
	}

	for i := 0; i < rounds; i++ {
		seq := nxcube.Scramble(rng, n, 30)
		err := expectSolved(n, opts, append(seq, nxcube.InvertMoves(seq)...))
		results = append(results, checkResult{name: fmt.Sprintf("inverse round %d", i+1), err: err})
	}
	return results
}

func expectSolved(n int, opts []nxcube.Option, moves []nxcube.Move) error {
	c, err := nxcube.New(n, opts...)
	if err != nil {
		return err
	}
	if err := c.Apply(moves...); err != nil {
		return err
	}
	if !c.IsSolved() {
		return fmt.Errorf("cube not solved after %d moves", len(moves))
	}
	return c.Check()
}
