package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pidigits/chudnovsky"
)

// Build metadata, overridden with
// -ldflags "-X github.com/katalvlaran/pidigits/cli.Version=v1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// versionInfo is the --json shape of `pidigits version`. It also reports
// the engine limits so clients can size requests.
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
	MaxDigits uint32 `json:"maxDigits"`
	Evaluator string `json:"evaluator"`
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and engine information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:   Version,
				Commit:    Commit,
				BuildDate: BuildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
				MaxDigits: chudnovsky.MaxDigits,
				Evaluator: a.cfg.Evaluator,
			}
			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(info)
			}

			_, err := fmt.Fprintf(a.stdout, "pidigits %s (%s, built %s)\n%s %s, max %d digits, %s evaluator\n",
				info.Version, info.Commit, info.BuildDate,
				info.GoVersion, info.Platform, info.MaxDigits, info.Evaluator)
			return err
		},
	}
}
