package cmd

import (
	"fmt"

	"github.com/KaramelBytes/housestat-cli/internal/housing"
	"github.com/KaramelBytes/housestat-cli/internal/report"
	"github.com/spf13/cobra"
)

var clsLocale string

var classifyCmd = &cobra.Command{
	Use:   "classify <floors>",
	Short: "Classify a single floor count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locale := currentConfig().Locale
		if cmd.Flags().Changed("locale") {
			locale = clsLocale
		}
		loc, err := report.LookupLocale(locale)
		if err != nil {
			return err
		}
		floors, err := housing.ParseFloorCount(args[0])
		if err != nil {
			return err
		}
		c, err := housing.Classify(floors)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), loc.Label(c))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVar(&clsLocale, "locale", "ru", "label language: ru | en")
}
