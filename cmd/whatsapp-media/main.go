package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/query"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

var (
	configPath string
	verbose    bool

	cli *whatsappgo.Client
)

func newClient() error {
	cfg, err := whatsappgo.NewConfigFromFile(configPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr()}).
		With().Timestamp().Logger()
	if !verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	cli = whatsappgo.NewClient(&whatsappgo.ClientOpts{Config: cfg}, logger)
	return nil
}

func printEnvelope(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

var rootCmd = &cobra.Command{
	Use:           "whatsapp-media",
	Short:         "Manage WhatsApp Cloud API media objects and templates",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return newClient()
	},
}

var getCmd = &cobra.Command{
	Use:   "get <media-id>",
	Short: "Fetch media metadata by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := cli.GetMedia(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download <url> <file-path> <media-type>",
	Short: "Download a media URL to a local file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := cli.DownloadMedia(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if envelope.Ok() {
			// the echoed body is the file content, no point printing it twice
			envelope.Success.Body = nil
		}
		return printEnvelope(envelope)
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <sender-id> <file-path> <media-type>",
	Short: "Upload a local file as a media object",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := cli.UploadMedia(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <media-id>",
	Short: "Delete a media object by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := cli.DeleteMedia(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the business account's message templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")
		envelope, err := cli.GetTemplates(cmd.Context(), query.GetTemplatesVariables{
			Limit:  limit,
			Status: types.TemplateStatus(status),
		})
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "whatsapp.yaml", "path to the yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	templatesCmd.Flags().Int("limit", 0, "maximum number of templates to return")
	templatesCmd.Flags().String("status", "", "filter templates by review status")

	rootCmd.AddCommand(getCmd, downloadCmd, uploadCmd, deleteCmd, templatesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
