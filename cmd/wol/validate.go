package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long:  `Validate the configuration file without sending any packet.`,
	RunE:  validateConfig,
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadTarget()
	if err != nil {
		return err
	}

	fmt.Println("Configuration is valid!")
	fmt.Println()
	fmt.Println("Target:")
	fmt.Printf("  MAC Address: %s\n", cfg.MACAddress)
	fmt.Printf("  Broadcast IP: %s\n", cfg.BroadcastAddress)
	fmt.Printf("  Port: %d\n", cfg.Port)

	return nil
}
