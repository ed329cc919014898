package main

import (
	"github.com/spf13/cobra"

	"github.com/tasconf/tasconf/integrity"
	"github.com/tasconf/tasconf/schema"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Report version, platform and integrity of a configuration",
		Long: `Info loads the configuration from the source given by --device or
--file and reports its firmware version, hardware platform, the layout it
resolves to, and whether the stored checksums match the data.

Example:
  tasconf info -f config.dmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

func runInfo() error {
	pol := policy()
	pol.Lenient = true
	img, err := loadImage(pol)
	if err != nil {
		return err
	}

	printInfo("\nConfiguration Information:\n")
	if srcFile != "" {
		printInfo("  File: %s\n", srcFile)
	}
	if deviceHost != "" {
		printInfo("  Device: %s\n", deviceHost)
	}
	printInfo("  Version: %s (0x%08x)\n", img.VersionString(), img.Info.Version)
	printInfo("  Platform: %s\n", img.Info.Platform)
	printInfo("  Layout: 0x%08x (%d bytes)\n", img.Info.Entry.Version, img.Info.Entry.Size)

	if img.Info.Version < schema.CRC32Version {
		stored := img.StoredChecksum16()
		computed := integrity.Checksum16(img.Plain, img.Info.Entry.Size)
		printInfo("  Checksum: stored 0x%04x, computed 0x%04x\n", stored, computed)
		if stored == computed {
			printInfo("  Integrity: OK\n")
		} else {
			printInfo("  Integrity: MISMATCH\n")
		}
		return nil
	}
	stored := img.StoredCRC32()
	computed := integrity.CRC32(img.Plain)
	printInfo("  CRC32: stored 0x%08x, computed 0x%08x\n", stored, computed)
	if stored == computed {
		printInfo("  Integrity: OK\n")
	} else {
		printInfo("  Integrity: MISMATCH\n")
	}
	return nil
}
