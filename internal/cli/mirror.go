package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/ble"
	"github.com/SeamusWaldron/nxcube/internal/tui"
)

var (
	mirrorDevice      string
	mirrorScanTimeout time.Duration
	mirrorAttempts    int
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Mirror a GoCube smart cube over Bluetooth",
	Long: `Connect to a GoCube and follow every turn of the physical cube on a 3x3
engine cube. Start with the GoCube solved, white on top and green in front.

With --record the turns are stored in a new session.`,
	Args: cobra.NoArgs,
	RunE: runMirror,
}

func init() {
	mirrorCmd.Flags().StringVar(&mirrorDevice, "device", "", "Device address to connect to (default: first found)")
	mirrorCmd.Flags().DurationVar(&mirrorScanTimeout, "scan-timeout", 5*time.Second, "How long each scan runs")
	mirrorCmd.Flags().IntVar(&mirrorAttempts, "attempts", 3, "Scans to try before giving up")
	mirrorCmd.Flags().BoolVar(&playRecord, "record", false, "Record moves to a new session")
	mirrorCmd.Flags().StringVar(&playNotes, "notes", "", "Notes stored with a new session")
	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	scheme, err := e.cfg.Scheme()
	if err != nil {
		return err
	}

	client, err := ble.NewClient(e.tuiLogger())
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}
	if err := connectGoCube(cmd.Context(), e, client); err != nil {
		return err
	}
	defer client.Disconnect()

	// The GoCube only reports face turns, so centers never move and the
	// configured scheme stays valid for the whole session.
	backend, title, cleanup, err := playBackend(e, 3, "nxcube mirror: "+client.DeviceName())
	if err != nil {
		return err
	}
	defer cleanup()

	model := tui.New(backend, tui.Options{
		Title:    title,
		ReadOnly: true,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	mirror := ble.NewMirror(e.tuiLogger(), func() nxcube.Scheme { return scheme }, func(moves []nxcube.Move) {
		p.Send(tui.MovesMsg{Moves: moves})
	})
	mirror.OnBattery(func(level int) {
		p.Send(tui.StatusMsg(fmt.Sprintf("battery %d%%", level)))
	})
	mirror.Attach(client)
	if err := client.RequestBattery(); err != nil {
		e.logger.Debug("battery request failed", "error", err)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("mirror error: %w", err)
	}
	return nil
}

// connectGoCube scans with retries and connects to the chosen device.
func connectGoCube(ctx context.Context, e *env, client *ble.Client) error {
	e.printf("Scanning for GoCube devices...\n")

	for attempt := 1; attempt <= mirrorAttempts; attempt++ {
		results, err := client.Scan(ctx, mirrorScanTimeout)
		if err != nil {
			e.logger.Warn("scan failed", "attempt", attempt, "error", err)
			continue
		}
		for _, r := range results {
			if mirrorDevice == "" || r.UUID == mirrorDevice {
				e.printf("Found: %s (RSSI %d)\n", r.Name, r.RSSI)
				return client.ConnectToResult(ctx, r)
			}
		}
		if attempt < mirrorAttempts {
			e.printf("Scan %d: no devices found, retrying...\n", attempt)
		}
	}
	return ble.ErrDeviceNotFound
}
