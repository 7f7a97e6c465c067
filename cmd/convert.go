// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/log"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/swatch"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolP("json", "j", false, "Emit every representation as a single JSON object")

	convertCmd.SetOut(os.Stdout)
}

// errUnknownFormat suggests the closest known format name.
func errUnknownFormat(name string) error {
	closest := lo.MinBy(color.FormatNames(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return fmt.Errorf(
		"unknown format %s, did you mean %s?",
		style.Fg(style.Red)(name),
		style.Fg(style.Yellow)(closest),
	)
}

// convertDocument is the structured output of convert --json.
type convertDocument struct {
	Hex string    `json:"hex"`
	RGB color.RGB `json:"rgb"`
	HSL color.HSL `json:"hsl"`
}

// convertCmd converts a color between textual representations.
var convertCmd = &cobra.Command{
	Use:   "convert <color> [format]",
	Short: "Convert a color between hex, rgb and hsl representations",
	Long: `Convert a color to the requested textual representation.

The color argument accepts hex (RRGGBB or #RRGGBB) or decimal RGB (r,g,b).
When the format argument is omitted, the configured default format is used;
if none is configured an interactive prompt asks for one.`,
	Example: "  huekit convert '#1e90ff' hsl\n  huekit convert 30,144,255 hex",
	Args:    cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 1 {
			return color.FormatNames(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		base, err := color.Parse(args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(convertDocument{
				Hex: base.Hex(),
				RGB: base,
				HSL: base.HSL(),
			}))
			return
		}

		requested := mo.None[string]()
		if len(args) == 2 {
			requested = mo.Some(args[1])
		} else if name := viper.GetString(key.FormatDefault); name != "" {
			requested = mo.Some(name)
		}

		var format color.Format
		if name, ok := requested.Get(); ok {
			format, err = color.ParseFormat(name)
			if err != nil {
				handleErr(errUnknownFormat(name))
			}
		} else {
			format = askFormat()
		}

		log.Debugf("converting %s to %s", base.Hex(), format)
		cmd.Println(swatch.Line(base, format.Render(base)))
	},
}

// askFormat interactively prompts for one of the supported output formats.
func askFormat() color.Format {
	var name string

	prompt := survey.Select{
		Message: "Output format:",
		Options: color.FormatNames(),
	}
	handleErr(survey.AskOne(&prompt, &name))

	return lo.Must(color.ParseFormat(name))
}
