package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/tasconf/tasconf/codec"
	"github.com/tasconf/tasconf/config"
	"github.com/tasconf/tasconf/device"
	"github.com/tasconf/tasconf/internal/logging"
	"github.com/tasconf/tasconf/schema"
	"github.com/tasconf/tasconf/sniff"
	"github.com/tasconf/tasconf/status"
)

var (
	// Global flags
	srcFile       string
	deviceHost    string
	devicePort    int
	username      string
	password      string
	defaultsFile  string
	verbose       bool
	debugMode     bool
	dryRun        bool
	ignoreWarning bool
	filterGroups  []string
	jsonIndent    int
	jsonHidePw    bool
)

var rootCmd = &cobra.Command{
	Use:   "tasconf",
	Short: "Backup and restore device configuration data",
	Long: `tasconf reads the binary configuration of a device, either from a
backup file or directly over HTTP, converts it to and from JSON, and can
write changed data back. Decoding and encoding follow versioned layout
tables, so images from different firmware releases are handled with the
field layout they were written with.

Either --device <host> or --file <filename> must be given as the data source.`,
	Version:           config.ProgVersion,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&srcFile, "file", "f", "", "file to load configuration from")
	pf.StringVarP(&deviceHost, "device", "d", "", "hostname or IP of the device to load configuration from")
	pf.IntVarP(&devicePort, "port", "P", device.DefaultPort, "HTTP port of the device")
	pf.StringVarP(&username, "username", "u", "", "HTTP username of the device")
	pf.StringVarP(&password, "password", "p", "", "HTTP password of the device")
	pf.StringVarP(&defaultsFile, "defaults", "c", "", "YAML file with default values for the flags above")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVar(&debugMode, "debug", false, "enable per-field trace output")
	pf.BoolVar(&dryRun, "dry-run", false, "process as usual but do not write anything")
	pf.BoolVar(&ignoreWarning, "ignore-warning", false, "continue on warnings instead of aborting")
	pf.StringSliceVarP(&filterGroups, "group", "g", nil, "limit output to the given field groups")
	pf.IntVar(&jsonIndent, "json-indent", 4, "JSON output indent width, negative for single-line")
	pf.BoolVar(&jsonHidePw, "json-hide-pw", false, "mask passwords in JSON output")
}

// setup applies the YAML defaults file and configures logging. Values from
// the file fill in only flags not given on the command line.
func setup(cmd *cobra.Command, _ []string) error {
	if defaultsFile != "" {
		if err := applyDefaults(cmd.Root().PersistentFlags(), defaultsFile); err != nil {
			return err
		}
	}
	logging.Init(logging.Options{Verbose: verbose, Debug: debugMode})
	return nil
}

type defaultValues struct {
	File          string `yaml:"file"`
	Device        string `yaml:"device"`
	Port          int    `yaml:"port"`
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
	IgnoreWarning bool   `yaml:"ignore-warning"`
	JSONIndent    *int   `yaml:"json-indent"`
	JSONHidePw    bool   `yaml:"json-hide-pw"`
}

func applyDefaults(pf *pflag.FlagSet, filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return status.Errorf(status.FileNotFound, "defaults file '%s' not found", filename)
	}
	var dv defaultValues
	if err := yaml.Unmarshal(content, &dv); err != nil {
		return status.Errorf(status.FileReadError, "defaults file '%s': %v", filename, err)
	}

	if !pf.Changed("file") && dv.File != "" {
		srcFile = dv.File
	}
	if !pf.Changed("device") && dv.Device != "" {
		deviceHost = dv.Device
	}
	if !pf.Changed("port") && dv.Port != 0 {
		devicePort = dv.Port
	}
	if !pf.Changed("username") && dv.Username != "" {
		username = dv.Username
	}
	if !pf.Changed("password") && dv.Password != "" {
		password = dv.Password
	}
	if !pf.Changed("ignore-warning") {
		ignoreWarning = ignoreWarning || dv.IgnoreWarning
	}
	if !pf.Changed("json-indent") && dv.JSONIndent != nil {
		jsonIndent = *dv.JSONIndent
	}
	if !pf.Changed("json-hide-pw") {
		jsonHidePw = jsonHidePw || dv.JSONHidePw
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		code := status.CodeOf(err)
		if code == status.RestoreSkipped {
			// Unchanged data is an outcome, not a failure.
			printInfo("%s\n", err.Error())
		} else {
			status.ReportErr(err)
		}
		os.Exit(code)
	}
}

// policy builds the codec policy from the global flags.
func policy() *codec.Policy {
	var groups map[string]bool
	if len(filterGroups) > 0 {
		groups = make(map[string]bool, len(filterGroups))
		for _, g := range filterGroups {
			groups[strings.ToLower(g)] = true
		}
	}
	return &codec.Policy{
		Groups:        groups,
		HidePasswords: jsonHidePw,
		Lenient:       ignoreWarning,
	}
}

func deviceClient() *device.Client {
	return &device.Client{
		Host:     deviceHost,
		Port:     devicePort,
		Username: username,
		Password: password,
	}
}

// loadImage reads the source configuration from the device or the file
// given by the global flags.
func loadImage(pol *codec.Policy) (*config.Image, error) {
	reg := schema.Defaults()

	if deviceHost != "" {
		printVerbose("Downloading configuration from '%s'\n", deviceHost)
		encoded, err := deviceClient().Download(context.Background())
		if err != nil {
			return nil, err
		}
		return config.FromEncoded(encoded, reg, pol)
	}

	if srcFile != "" {
		content, err := os.ReadFile(srcFile)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, status.Errorf(status.FileNotFound, "file '%s' not found", srcFile)
			}
			return nil, status.Errorf(status.FileReadError, "'%s' %v", srcFile, err)
		}
		kind := sniff.Classify(content, reg.Sizes())
		logging.Debug("classified source file", "file", srcFile, "kind", kind.String())
		img, err := config.FromFile(content, kind, reg, pol)
		if err != nil {
			return nil, err
		}
		return img, nil
	}

	return nil, status.Errorf(status.ArgumentError,
		"either argument -d <host> or -f <filename> must be given")
}

// filenameVars resolves the template variables for output filenames. The
// device hostname is fetched only when the template actually uses it.
func filenameVars(name string, img *config.Image) config.FilenameVars {
	base := codec.Policy{}
	vars := config.VarsFromTree(img.Map(&base))
	if strings.Contains(name, "@H") && deviceHost != "" {
		hostname, err := deviceClient().Hostname(context.Background())
		if err != nil {
			logging.Warn("device hostname lookup failed", "error", err)
		} else {
			vars.DeviceHostname = hostname
		}
	}
	return vars
}

// Helper functions for output

// printInfo prints an info message
func printInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// printVerbose prints an info message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
