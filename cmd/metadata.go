package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/deploymenttheory/go-xattr/internal/common/plistutil"
	"github.com/deploymenttheory/go-xattr/internal/logger"
	"github.com/deploymenttheory/go-xattr/pkg/metadata"
	"github.com/spf13/cobra"
)

// Metadata value types accepted by mdset
const (
	valueString  = "string"
	valueStrings = "strings"
	valueInt     = "int"
	valueBool    = "bool"
	valueDate    = "date"
	valueDates   = "dates"
)

var mdlsCmd = &cobra.Command{
	Use:   "mdls <path> [key...]",
	Short: "Print desktop search metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openMetadataStore(args[0])
		if err != nil {
			return err
		}

		keys := args[1:]
		if len(keys) == 0 {
			if keys, err = store.Keys(); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for _, key := range keys {
			data, ok, err := store.Attributes().Get(metadata.RawName(key))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(out, "%s = (null)\n", key)
				continue
			}
			text, err := plistutil.Render(data, outputFormat())
			if err != nil {
				logger.LogWarn("Metadata value is not a property list", logger.Fields{
					"key":   key,
					"error": err.Error(),
				})
				text = "(corrupt)"
			}
			fmt.Fprintf(out, "%s = %s\n", key, strings.TrimSpace(text))
		}
		return nil
	},
}

var mdsetCmd = &cobra.Command{
	Use:   "mdset <path> <key> <value>...",
	Short: "Set a desktop search metadata key",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("type")

		value, err := parseMetadataValue(kind, args[2:])
		if err != nil {
			return err
		}
		store, err := openMetadataStore(args[0])
		if err != nil {
			return err
		}
		if err := store.Set(args[1], value); err != nil {
			return err
		}

		logger.LogInfo("Metadata written", logger.AttrFields(store.Attributes().Path(), metadata.RawName(args[1]), logger.Fields{
			"type": kind,
		}))
		return nil
	},
}

var mdrmCmd = &cobra.Command{
	Use:   "mdrm <path> <key>...",
	Short: "Remove desktop search metadata keys",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openMetadataStore(args[0])
		if err != nil {
			return err
		}
		for _, key := range args[1:] {
			if err := store.Remove(key); err != nil {
				return err
			}
		}
		return nil
	},
}

// parseMetadataValue converts command line arguments into a property list
// value of the requested type. Scalar types take exactly one argument.
func parseMetadataValue(kind string, args []string) (interface{}, error) {
	switch kind {
	case valueStrings:
		return append([]string{}, args...), nil
	case valueDates:
		dates := make([]time.Time, 0, len(args))
		for _, arg := range args {
			d, err := time.Parse(time.RFC3339, arg)
			if err != nil {
				return nil, fmt.Errorf("invalid date %q: %w", arg, err)
			}
			dates = append(dates, d.UTC())
		}
		return dates, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("type %s takes exactly one value, got %d", kind, len(args))
	}
	arg := args[0]

	switch kind {
	case "", valueString:
		return arg, nil
	case valueInt:
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		return n, nil
	case valueBool:
		b, err := strconv.ParseBool(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q: %w", arg, err)
		}
		return b, nil
	case valueDate:
		d, err := time.Parse(time.RFC3339, arg)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", arg, err)
		}
		return d.UTC(), nil
	default:
		return nil, fmt.Errorf("unsupported value type: %s", kind)
	}
}

func init() {
	mdsetCmd.Flags().StringP("type", "t", valueString, "Value type: string, strings, int, bool, date or dates")

	rootCmd.AddCommand(mdlsCmd, mdsetCmd, mdrmCmd)
}
