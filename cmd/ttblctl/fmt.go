package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Rewrite a timetable in canonical layout",
	Long: `Parse a .ttbl file and print it back with aligned columns. With -w the
file is rewritten in place instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")

		file, err := application.LoadFile(args[0])
		if err != nil {
			return err
		}

		if write {
			return application.WriteFile(args[0], file)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), file.Write())
		return err
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolP("write", "w", false, "write result to the source file instead of stdout")
}
