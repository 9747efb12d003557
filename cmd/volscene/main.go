package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ivlev/volscene/internal/activity"
	"github.com/ivlev/volscene/internal/config"
	"github.com/ivlev/volscene/internal/engine"
	"github.com/ivlev/volscene/internal/system"
)

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	configPtr := flag.String("config", "volscene.yaml", "Path to the YAML config (missing file: defaults)")
	inputPtr := flag.String("input", "", "Slice stack: image directory or PDF/XPS/CBZ document (default: config input)")
	lightingPtr := flag.String("lighting", "", "Lighting preset (.xml, .yaml); default: newest in the preset directory")
	transferPtr := flag.String("transfer", "", "Transfer function preset (.xml, .yaml); default: newest in the preset directory")
	binsPtr := flag.Int("bins", 0, "Histogram bins (0: config value)")
	analyzerPtr := flag.String("analyzer", "", "Histogram analyzer: luminance, gradient")
	workersPtr := flag.Int("workers", -1, "Workers (0: one per logical CPU)")
	lutPtr := flag.String("lut", "", "Write the baked transfer function LUT to this PNG")
	qrPtr := flag.String("qr", "", "Write the transfer function preset as a QR code PNG")
	defaultPtr := flag.Bool("default", false, "Write the default presets to the preset directory and exit")

	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("[-] Config error: %v", err)
	}

	// Флаги имеют приоритет над файлом конфигурации
	if *inputPtr != "" {
		cfg.InputPath = *inputPtr
	}
	if *lightingPtr != "" {
		cfg.LightingPreset = *lightingPtr
	}
	if *transferPtr != "" {
		cfg.TransferPreset = *transferPtr
	}
	if *binsPtr > 0 {
		cfg.Bins = *binsPtr
	}
	if *analyzerPtr != "" {
		cfg.Analyzer = *analyzerPtr
	}
	if *workersPtr >= 0 {
		cfg.Workers = *workersPtr
	}
	if *lutPtr != "" {
		cfg.LUTOutput = *lutPtr
	}
	if *qrPtr != "" {
		cfg.QROutput = *qrPtr
	}

	if report, err := system.MemoryReport(); err == nil {
		fmt.Printf("[*] Memory: %s\n", report)
	}

	session := engine.NewSession(cfg, activity.NewStdLogger())
	defer session.Close()

	if *defaultPtr {
		lightingPath, transferPath, err := session.SavePresets()
		if err != nil {
			log.Fatalf("[-] Failed to write default presets: %v", err)
		}
		fmt.Printf("[+++] Default presets written: %s, %s\n", lightingPath, transferPath)
		return
	}

	if _, err := os.Stat(cfg.InputPath); cfg.InputPath != "" && err != nil {
		log.Printf("[!] No volume at %s, skipping histogram", cfg.InputPath)
		cfg.InputPath = ""
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.Run(ctx); err != nil {
		log.Fatalf("[-] Session error: %v", err)
	}

	fmt.Printf("[+++] Done! Lights: %d, nodes: %d\n", session.Rig.Count(), session.Function.Count())
}
