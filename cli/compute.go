package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pidigits/chudnovsky"
)

// computeResult is the --json shape of `pidigits compute`.
type computeResult struct {
	Digits uint32 `json:"digits"`
	Pi     string `json:"pi"`
}

func (a *App) newComputeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute <digits>",
		Short: "Print pi to the given number of fractional digits",
		Long: `Compute pi to <digits> fractional digits and print it.

Output is grouped in blocks of ten digits when stdout is a terminal;
use --group=false or --group to force either layout.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runCompute,
	}

	cmd.Flags().Uint32Var(&a.computeLimit, "limit", 0, "truncate output to this many fractional digits")
	cmd.Flags().BoolVar(&a.computeGroup, "group", false, "group digits in blocks of ten (default: when stdout is a terminal)")

	return cmd
}

func (a *App) runCompute(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return exitWithCode(ExitValidation, fmt.Errorf("invalid digit count %q: %w", args[0], err))
	}
	digits := uint32(v)

	opts := append(a.cfg.EngineOptions(), chudnovsky.WithLogger(a.logger))
	pi, err := chudnovsky.Compute(digits, opts...)
	if err != nil {
		if errors.Is(err, chudnovsky.ErrInvalidArgument) {
			return exitWithCode(ExitValidation, err)
		}
		return exitWithCode(ExitRuntime, err)
	}

	if a.computeLimit > 0 && int(a.computeLimit)+2 < len(pi) {
		pi = pi[:int(a.computeLimit)+2]
	}

	if a.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		return enc.Encode(computeResult{Digits: digits, Pi: pi})
	}

	group := a.isTerminal(a.stdout)
	if cmd.Flags().Changed("group") {
		group = a.computeGroup
	}
	if group {
		pi = groupDigits(pi)
	}

	_, err = fmt.Fprintln(a.stdout, pi)
	return err
}
