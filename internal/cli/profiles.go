package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profilesCmd)
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the platform's advertised legal profile values",
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	profiles := a.control.AvailableProfiles()
	if len(profiles) == 0 {
		fmt.Println("No platform profiles advertised.")
		return nil
	}

	for _, profile := range profiles {
		fmt.Println(profile)
	}

	return nil
}
