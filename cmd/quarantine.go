package cmd

import (
	"fmt"
	"time"

	"github.com/deploymenttheory/go-xattr/internal/logger"
	"github.com/deploymenttheory/go-xattr/pkg/catalog"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var quarantineCmd = &cobra.Command{
	Use:   "quarantine <path>",
	Short: "Show or clear the quarantine marker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clearMarker, _ := cmd.Flags().GetBool("clear")

		store, err := openStore(args[0])
		if err != nil {
			return err
		}

		if clearMarker {
			if err := catalog.Quarantine.Remove(store); err != nil {
				return err
			}
			logger.LogInfo("Quarantine cleared", logger.AttrFields(store.Path(), catalog.QuarantineAttr, nil))
			return nil
		}

		info, err := catalog.Quarantine.Get(store)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if info == nil {
			fmt.Fprintln(out, "not quarantined")
			return nil
		}
		fmt.Fprintf(out, "agent:     %s\n", info.Agent)
		fmt.Fprintf(out, "timestamp: %s\n", info.Timestamp.Format(time.RFC3339))
		fmt.Fprintf(out, "flags:     %04x\n", info.Flags)
		fmt.Fprintf(out, "approved:  %t\n", info.Approved())
		if info.EventID != uuid.Nil {
			fmt.Fprintf(out, "event:     %s\n", info.EventID)
		}
		return nil
	},
}

func init() {
	quarantineCmd.Flags().Bool("clear", false, "Remove the quarantine marker")

	rootCmd.AddCommand(quarantineCmd)
}
