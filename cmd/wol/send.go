package main

import (
	"fmt"

	"github.com/ohsungsik/Wake-On-Lan/internal/config"
	"github.com/ohsungsik/Wake-On-Lan/internal/models"
	"github.com/ohsungsik/Wake-On-Lan/internal/services/wol"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send the magic packet to the configured target",
	Long: `Load the target configuration, validate it, and send one
Wake-on-LAN magic packet to the configured broadcast address and port.

WOL is fire-and-forget: the target sends no acknowledgment, so success
means the packet left this machine, not that the target powered on.`,
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadTarget()
	if err != nil {
		return err
	}

	log.Info().
		Str("mac", cfg.MACAddress).
		Str("broadcast", cfg.BroadcastAddress).
		Uint16("port", cfg.Port).
		Msg("configuration loaded")

	sender := wol.New(log.Logger)
	if err := sender.Send(*cfg); err != nil {
		log.Error().Err(err).Msg("failed to send magic packet")
		return err
	}

	fmt.Println("Magic packet sent successfully!")
	fmt.Println()
	fmt.Println("If the target PC does not power on, check:")
	fmt.Println("  1. Wake-on-LAN is enabled in the target's BIOS/UEFI")
	fmt.Println("  2. The network adapter's power management settings")
	fmt.Println("  3. The MAC address and broadcast IP are correct")
	fmt.Println("  4. Firewall and router settings")

	return nil
}

// loadTarget resolves the config file path and loads the target from it.
func loadTarget() (*models.TargetConfig, error) {
	path := configFile
	if path == "" {
		var err error
		path, err = config.DefaultFilePath()
		if err != nil {
			log.Error().Err(err).Msg("failed to locate config file")
			return nil, err
		}
	}

	parser := config.NewParser()
	cfg, err := parser.LoadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("failed to load config")
		return nil, err
	}
	return cfg, nil
}
