package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasconf/tasconf/config"
	"github.com/tasconf/tasconf/integrity"
	"github.com/tasconf/tasconf/internal/buf"
	"github.com/tasconf/tasconf/status"
)

var (
	backupFile string
	backupType string
)

func init() {
	rootCmd.AddCommand(newBackupCmd())
}

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write the configuration to a backup file",
		Long: `Backup reads the configuration from the source given by --device or
--file and writes it to a backup file.

Three formats exist: 'json' is the readable editable form, 'dmp' is the raw
obfuscated image as the device stores it, and 'bin' is the de-obfuscated
image wrapped with a format marker. An extension on the output filename
overrules --backup-type.

The output filename may contain @v (firmware version), @f (first friendly
name), @h (hostname from the configuration) and @H (hostname reported by the
device).

Example:
  tasconf backup -d sonoff-4281 -o Config_@f_@v
  tasconf backup -f config.dmp -o backup.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup()
		},
	}
	cmd.Flags().StringVarP(&backupFile, "backup-file", "o", "Config_@f_@v", "backup file name")
	cmd.Flags().StringVarP(&backupType, "backup-type", "t", "json", "backup file format: json, bin or dmp")
	return cmd
}

func runBackup() error {
	pol := policy()
	img, err := loadImage(pol)
	if err != nil {
		return err
	}
	printVerbose("Configuration data contains version %s\n", img.VersionString())

	format := strings.ToLower(backupType)
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(backupFile), ".")); ext {
	case "json", "bin", "dmp":
		format = ext
	}

	var content []byte
	switch format {
	case "dmp":
		content = img.Encoded
	case "bin":
		content = make([]byte, 0, len(img.Plain)+4)
		content = append(content, img.Plain...)
		var marker [4]byte
		buf.PutU32LE(marker[:], 0, integrity.BinaryMagic)
		content = append(content, marker[:]...)
	case "json":
		content, err = config.RenderJSON(img.Map(pol), jsonIndent)
		if err != nil {
			return status.Errorf(status.InternalError, "%v", err)
		}
	default:
		return status.Errorf(status.ArgumentError, "unknown backup file format '%s'", backupType)
	}

	filename := config.MakeFilename(backupFile, format, filenameVars(backupFile, img))
	if dryRun {
		printInfo("** Simulating ** Backup successful to '%s' (%s format)\n", filename, format)
		return nil
	}
	if err := os.WriteFile(filename, content, 0o644); err != nil {
		return status.Errorf(status.InternalError, "'%s' %v", filename, err)
	}
	printInfo("Backup successful to '%s' (%s format)\n", filename, format)
	return nil
}
