package cmd

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/deploymenttheory/go-xattr/internal/common/plistutil"
	"github.com/deploymenttheory/go-xattr/internal/logger"
	"github.com/deploymenttheory/go-xattr/pkg/catalog"
	"github.com/deploymenttheory/go-xattr/pkg/extattr"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <path>",
	Short: "List extended attribute names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withFlags, _ := cmd.Flags().GetBool("with-flags")
		describe, _ := cmd.Flags().GetBool("describe")

		store, err := openStore(args[0])
		if err != nil {
			return err
		}
		names, err := store.AllNames(withFlags)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			if !describe {
				fmt.Fprintln(out, name)
				continue
			}
			bare, err := store.NameWithoutFlags(name)
			if err != nil {
				return err
			}
			if entry, ok := catalog.Lookup(bare); ok {
				fmt.Fprintf(out, "%s\t%s\t%s\n", name, entry.Kind, entry.Description)
			} else {
				fmt.Fprintf(out, "%s\t-\t-\n", name)
			}
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <path> <name>",
	Short: "Print the value of an extended attribute",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asHex, _ := cmd.Flags().GetBool("hex")
		asPlist, _ := cmd.Flags().GetBool("plist")

		store, err := openStore(args[0])
		if err != nil {
			return err
		}
		data, ok, err := store.Get(args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: no such attribute", args[1])
		}

		text, err := renderValue(data, asHex, asPlist)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <path> <name> <value>",
	Short: "Write an extended attribute",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		flagToken, _ := cmd.Flags().GetString("flags")
		asPlist, _ := cmd.Flags().GetBool("plist")

		store, err := openStore(args[0])
		if err != nil {
			return err
		}
		flags, err := extattr.ParseFlags(flagToken)
		if err != nil {
			return err
		}

		if asPlist {
			err = extattr.WriteStructured(store, args[1], args[2], flagsOrNil(flags))
		} else {
			err = store.Write(args[1], []byte(args[2]), flagsOrNil(flags))
		}
		if err != nil {
			return err
		}

		logger.LogInfo("Attribute written", logger.AttrFields(store.Path(), args[1], logger.Fields{
			"flags": flags.String(),
		}))
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path> <name>...",
	Short: "Remove extended attributes",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(args[0])
		if err != nil {
			return err
		}
		for _, name := range args[1:] {
			if err := store.Remove(name); err != nil {
				return err
			}
			logger.LogDebug("Attribute removed", logger.AttrFields(store.Path(), name, nil))
		}
		return nil
	},
}

// renderValue formats an attribute value for display: property lists in the
// configured text format, UTF-8 as is, anything else as hex
func renderValue(data []byte, asHex, asPlist bool) (string, error) {
	if asHex {
		return hex.EncodeToString(data), nil
	}
	if asPlist || plistutil.DetectFormat(data) == plistutil.FormatBinary {
		return plistutil.Render(data, outputFormat())
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return hex.EncodeToString(data), nil
}

func flagsOrNil(flags extattr.Flags) *extattr.Flags {
	if flags == 0 {
		return nil
	}
	return &flags
}

func init() {
	listCmd.Flags().Bool("with-flags", false, "Show names with their flag suffix")
	listCmd.Flags().Bool("describe", false, "Describe well known attributes")

	getCmd.Flags().Bool("hex", false, "Print the raw value as hex")
	getCmd.Flags().Bool("plist", false, "Decode the value as a property list")

	setCmd.Flags().String("flags", "", "Attribute flags, any of C N P S B")
	setCmd.Flags().Bool("plist", false, "Store the value as a property list string")

	rootCmd.AddCommand(listCmd, getCmd, setCmd, rmCmd)
}
