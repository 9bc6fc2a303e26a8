// Package main provides the usbls command, an lsusb-style device lister
// built on the usbcc ownership layer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mulabs/usbcc/internal/usb"
)

var (
	verbose     bool
	withStrings bool
	rootCmd     = &cobra.Command{
		Use:   "usbls",
		Short: "List USB devices attached to the system",
		Long: `usbls enumerates all USB devices currently attached to the system and
prints one line per device with its bus/port location, vendor and product
IDs, device class and version fields.

With --strings each device is additionally opened to fetch its
manufacturer, product and serial-number strings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVarP(&withStrings, "strings", "s", false, "Open each device and fetch its descriptor strings")
}

func run(w io.Writer) error {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	bus, err := usb.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := bus.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close usb session")
		}
	}()

	return listDevices(bus, w, withStrings)
}

// listDevices prints one line per attached device, optionally opening each
// one to resolve its descriptor strings.
func listDevices(bus *usb.Bus, w io.Writer, withStrings bool) error {
	devices, err := bus.Devices()
	if err != nil {
		return err
	}
	defer func() {
		for _, d := range devices {
			if err := d.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close device")
			}
		}
	}()

	for _, d := range devices {
		desc, err := d.Descriptor()
		if err != nil {
			log.Warn().
				Err(err).
				Uint8("bus", d.BusNumber()).
				Uint8("port", d.PortNumber()).
				Msg("Failed to read device descriptor")
			continue
		}

		fmt.Fprintf(w, "Bus %03d Port %03d ID %04x:%04x  USB %s  rel %s  %s\n",
			d.BusNumber(), d.PortNumber(),
			uint16(desc.VendorID), uint16(desc.ProductID),
			desc.USBVersion, desc.ReleaseVersion, desc.Class)

		if withStrings {
			printStrings(w, d)
		}
	}
	return nil
}

// printStrings opens the device for the duration of the string fetches.
func printStrings(w io.Writer, d *usb.Device) {
	open, err := d.Open()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to open device for string descriptors")
		return
	}
	defer func() {
		if err := open.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close device")
		}
	}()

	for _, s := range []struct {
		label string
		fetch func() (string, error)
	}{
		{label: "Manufacturer", fetch: open.Manufacturer},
		{label: "Product", fetch: open.Product},
		{label: "Serial", fetch: open.SerialNumber},
	} {
		value, err := s.fetch()
		if err != nil {
			log.Warn().Err(err).Str("field", s.label).Msg("Failed to fetch string descriptor")
			continue
		}
		if value != "" {
			fmt.Fprintf(w, "    %-12s %s\n", s.label, value)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}
