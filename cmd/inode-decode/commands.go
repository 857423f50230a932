package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"inode-msd/internal/config"
	"inode-msd/internal/logging"
	"inode-msd/internal/server"
	"inode-msd/internal/version"
	"inode-msd/msd"
)

var outputJSON bool

func runDecode(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	for i, arg := range args {
		if i > 0 && !outputJSON {
			fmt.Fprintln(w)
		}
		if err := decodeAndPrint(w, arg); err != nil {
			return err
		}
	}
	return nil
}

func runInteractive(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Paste a hex MSD payload and press Enter (Ctrl+D to exit).")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Interactive mode reports and keeps going.
		if err := decodeAndPrint(w, line); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func decodeAndPrint(w io.Writer, input string) error {
	data, err := msd.ParseHex(input)
	if err != nil {
		return err
	}
	rec, err := msd.Decode(data)
	if err != nil {
		return err
	}

	if outputJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
		return nil
	}
	printRecord(w, rec)
	return nil
}

func printRecord(w io.Writer, rec *msd.Record) {
	fmt.Fprintf(w, "model:          %s (0x%02X)\n", rec.ModelLabel, byte(rec.Model))
	fmt.Fprintf(w, "company id:     0x%04X\n", rec.CompanyIdentifier)
	fmt.Fprintf(w, "rtto:           %v\n", rec.RTTO)
	fmt.Fprintf(w, "low battery:    %v\n", rec.Alarms.LowBattery)
	if ext := rec.Alarms.Extended; ext != nil {
		fmt.Fprintf(w, "alarms:         %s\n", extendedAlarmList(ext))
	}
	fmt.Fprintf(w, "position:       x=%.6f y=%.6f z=%.6f\n",
		rec.Position.X, rec.Position.Y, rec.Position.Z)
	fmt.Fprintf(w, "magnetic field: x=%.6f y=%.6f z=%.6f\n",
		rec.MagneticField.X, rec.MagneticField.Y, rec.MagneticField.Z)
}

func extendedAlarmList(ext *msd.ExtendedAlarms) string {
	flags := []struct {
		name string
		set  bool
	}{
		{"moveAccelerometer", ext.MoveAccelerometer},
		{"levelAccelerometer", ext.LevelAccelerometer},
		{"levelTemperature", ext.LevelTemperature},
		{"levelHumidity", ext.LevelHumidity},
		{"contactChange", ext.ContactChange},
		{"moveStopped", ext.MoveStopped},
		{"moveGTimer", ext.MoveGTimer},
		{"levelAccelerometerChange", ext.LevelAccelerometerChange},
		{"levelMagnetChange", ext.LevelMagnetChange},
		{"levelMagnetTimer", ext.LevelMagnetTimer},
	}
	var active []string
	for _, f := range flags {
		if f.set {
			active = append(active, f.name)
		}
	}
	if len(active) == 0 {
		return "none"
	}
	return strings.Join(active, ", ")
}

var (
	serveConfigPath string
	serveHost       string
	servePort       int
	serveLogLevel   string
	serveAnnounce   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local decode service",
	Long: `Run an HTTP/WebSocket service exposing the decoder on the local network.

POST a hex payload to /api/decode for a JSON record, or stream payloads
over the /ws WebSocket endpoint. Configuration comes from an optional
YAML file; flags override it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = serveLogLevel
		}
		if cmd.Flags().Changed("announce") {
			cfg.Announce.Enabled = serveAnnounce
		}

		srv, err := server.New(cfg)
		if err != nil {
			return err
		}
		defer logging.Sync()
		return srv.Start()
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List registered device models",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, m := range msd.Models() {
			fmt.Fprintf(w, "0x%02X  %s\n", byte(m), m)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inode-decode %s\n", version.Full())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "path to YAML config file")
	serveCmd.Flags().StringVar(&serveHost, "host", config.DefaultHost, "listen address")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "listen port")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveAnnounce, "announce", false, "announce the service over mDNS")
}
