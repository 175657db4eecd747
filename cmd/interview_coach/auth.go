package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/llm"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage provider API keys in the OS keychain",
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API key for the selected provider",
	Args:  cobra.NoArgs,
	RunE:  runAuthSet,
}

var authDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored API key for the selected provider",
	Args:  cobra.NoArgs,
	RunE:  runAuthDelete,
}

var authKey string

func init() {
	authSetCmd.Flags().StringVarP(&authKey, "key", "k", "", "API key to store")
	_ = authSetCmd.MarkFlagRequired("key")

	authCmd.AddCommand(authSetCmd, authDeleteCmd)
	rootCmd.AddCommand(authCmd)
}

func settingsProvider() (llm.Provider, error) {
	return llm.ParseProvider(settings.Provider)
}

func runAuthSet(cmd *cobra.Command, _ []string) error {
	provider, err := settingsProvider()
	if err != nil {
		return err
	}
	if err := config.SetAPIKey(provider, authKey); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored %s API key in the OS keychain\n", provider)
	return nil
}

func runAuthDelete(cmd *cobra.Command, _ []string) error {
	provider, err := settingsProvider()
	if err != nil {
		return err
	}
	if err := config.DeleteAPIKey(provider); err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s API key from the OS keychain\n", provider)
	return nil
}
