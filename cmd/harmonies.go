// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/filesystem"
	"github.com/huekit-cli/huekit/icon"
	"github.com/huekit-cli/huekit/log"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/swatch"
	"github.com/huekit-cli/huekit/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(harmoniesCmd)

	harmoniesCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	harmoniesCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	harmoniesCmd.SetOut(os.Stdout)
}

// harmoniesCmd derives and displays color harmonies for a base color.
var harmoniesCmd = &cobra.Command{
	Use:   "harmonies <color>",
	Short: "Display color harmonies (complement, triads, tetrads) for a base color",
	Long: `Derive the harmony set of a base color: its channel-wise complement,
its triads (120° hue rotations) and its tetrads (90° hue rotations).

The color argument accepts hex (RRGGBB or #RRGGBB) or decimal RGB (r,g,b).`,
	Example: "  huekit harmonies '#1e90ff'\n  huekit harmonies 255,99,71 --json",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		base, err := color.Parse(args[0])
		handleErr(err)

		log.Debugf("deriving harmonies for %s", base.Hex())
		set := color.Harmonize(base)

		if lo.Must(cmd.Flags().GetBool("json")) {
			var out io.Writer = cmd.OutOrStdout()

			if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
				f, err := filesystem.API().Create(path)
				handleErr(err)
				defer util.Ignore(f.Close)
				out = f
			}

			handleErr(json.NewEncoder(out).Encode(set))
			return
		}

		header := style.Bold(fmt.Sprintf("%s Color harmonies for", icon.Get(icon.Palette)))
		cmd.Printf("\n%s %s\n", header, swatch.Hex(set.Input))
		cmd.Printf("Complement: %s\n", swatch.Hex(set.Complement))

		cmd.Println("\nTriads:")
		for _, c := range set.Triads {
			cmd.Printf("  %s\n", swatch.Hex(c))
		}

		cmd.Println("\nTetrads:")
		for _, c := range set.Tetrads {
			cmd.Printf("  %s\n", swatch.Hex(c))
		}
	},
}

func init() {
	harmoniesCmd.AddCommand(harmoniesSchemaCmd)
}

// harmoniesSchemaCmd generates the JSON schema for the structured harmonies output.
var harmoniesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the structured harmonies output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		schema := reflector.Reflect(&color.Harmonies{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
