package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasconf/tasconf/codec"
	"github.com/tasconf/tasconf/config"
	"github.com/tasconf/tasconf/schema"
	"github.com/tasconf/tasconf/sniff"
	"github.com/tasconf/tasconf/status"
)

var (
	restoreFile  string
	forceRestore bool
)

func init() {
	rootCmd.AddCommand(newRestoreCmd())
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Write configuration data back from a backup file",
		Long: `Restore reads a backup file in any of the three backup formats and
writes the contained data back to the source given by --device or --file.

A JSON backup merges into the current configuration: only the names present
in the file are written, everything else keeps its current value. When the
resulting image is byte-identical to the current one the restore is skipped
unless --force-restore is given.

Example:
  tasconf restore -d sonoff-4281 -i backup.json
  tasconf restore -f config.dmp -i Config_@f_@v.json --force-restore`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore()
		},
	}
	cmd.Flags().StringVarP(&restoreFile, "restore-file", "i", "", "backup file to restore from")
	cmd.Flags().BoolVar(&forceRestore, "force-restore", false, "restore even if the data is unchanged")
	cmd.MarkFlagRequired("restore-file")
	return cmd
}

func runRestore() error {
	pol := policy()
	img, err := loadImage(pol)
	if err != nil {
		return err
	}
	printVerbose("Configuration data contains version %s\n", img.VersionString())

	filename := config.MakeFilename(restoreFile, "", filenameVars(restoreFile, img))
	next, err := readRestore(filename, img, pol)
	if err != nil {
		return err
	}

	if !img.Changed(next) && !forceRestore {
		return status.Errorf(status.RestoreSkipped, "Restore skipped, configuration data unchanged")
	}

	prefix := ""
	if dryRun {
		prefix = "** Simulating ** "
	}

	if deviceHost != "" {
		uploadName := fmt.Sprintf("%s_v%s.dmp", config.ProgName, config.ProgVersion)
		printVerbose("%sPush new data to '%s' using restore file '%s'\n", prefix, deviceHost, filename)
		if !dryRun {
			if err := deviceClient().Upload(context.Background(), next.Encoded, uploadName); err != nil {
				return err
			}
		}
		printInfo("%sRestore successful to device '%s' from '%s'\n", prefix, deviceHost, filename)
		return nil
	}

	if !dryRun {
		if err := os.WriteFile(srcFile, next.Encoded, 0o644); err != nil {
			return status.Errorf(status.InternalError, "'%s' %v", srcFile, err)
		}
	}
	printInfo("%sRestore successful to file '%s' from '%s'\n", prefix, srcFile, filename)
	return nil
}

// readRestore loads the restore file and produces the candidate image. A
// binary restore replaces the image wholesale, a JSON restore merges into
// the current one.
func readRestore(filename string, img *config.Image, pol *codec.Policy) (*config.Image, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, status.Errorf(status.FileNotFound, "file '%s' not found", filename)
		}
		return nil, status.Errorf(status.FileReadError, "'%s' %v", filename, err)
	}

	reg := schema.Defaults()
	kind := sniff.Classify(content, reg.Sizes())
	switch kind {
	case sniff.RawDump, sniff.BinaryDump:
		printVerbose("Reading restore file '%s' (%s format)\n", filename, kind)
		return config.FromFile(content, kind, reg, pol)
	case sniff.JSONFile:
		printVerbose("Reading restore file '%s' (json format)\n", filename)
		tree, hasHeader, err := config.ParseJSON(content)
		if err != nil {
			return nil, status.Errorf(status.JSONReadError, "file '%s' invalid JSON: %v", filename, err)
		}
		if !hasHeader {
			return nil, status.Errorf(status.JSONReadError,
				"file '%s' incomplete JSON, missing name '%s'", filename, config.HeaderName)
		}
		return img.Apply(tree, pol)
	case sniff.InvalidBinary:
		return nil, status.Errorf(status.FileReadError, "file '%s' invalid binary format", filename)
	}
	return nil, status.Errorf(status.FileReadError, "file '%s' unknown format", filename)
}
