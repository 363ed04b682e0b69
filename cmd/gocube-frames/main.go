// GoCube frame dump - prints every parsed notification and the moves it
// decodes to.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/ble"
	"github.com/SeamusWaldron/nxcube/internal/protocol"
)

func main() {
	fmt.Println("GoCube Frame Dump")
	fmt.Println("=================")
	fmt.Println()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "frames",
		Level:           log.DebugLevel,
	})

	client, err := ble.NewClient(logger)
	if err != nil {
		fmt.Printf("Failed to enable adapter: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Println("Scanning for GoCube...")
	results, err := client.Scan(ctx, 10*time.Second)
	if err != nil || len(results) == 0 {
		fmt.Println("GoCube not found")
		os.Exit(1)
	}
	fmt.Printf("Found: %s (%s)\n", results[0].Name, results[0].UUID)

	client.SetMessageCallback(func(msg *protocol.Message) {
		fmt.Printf("[%s] %s\n", protocol.MessageTypeName(msg.Type), hex.EncodeToString(msg.Payload))
		if msg.Type != protocol.MsgTypeRotation {
			return
		}
		moves, err := protocol.DecodeMoves(msg, nxcube.DefaultScheme, time.Now())
		if err != nil {
			fmt.Printf("      decode error: %v\n", err)
			return
		}
		fmt.Printf("      moves: %s\n", nxcube.FormatMoves(moves))
	})

	if err := client.ConnectToResult(ctx, results[0]); err != nil {
		fmt.Printf("Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect()

	if err := client.RequestBattery(); err != nil {
		logger.Warn("battery request failed", "error", err)
	}

	fmt.Println("Rotate the cube to see data...")
	fmt.Println("Press Ctrl+C to exit")
	fmt.Println()

	<-ctx.Done()
	fmt.Println("\nDisconnecting...")
}
