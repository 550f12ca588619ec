// Package main provides a CLI for the REST PKI service.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kjanat/restpki/client/pkg/api"
	"github.com/kjanat/restpki/client/pkg/client"
)

const defaultEndpoint = "https://pki.rest/"

var (
	// Global flags
	endpoint   string
	token      string
	configPath string
	timeout    time.Duration
	jsonOutput bool
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "restpki",
	Short: "REST PKI CLI",
	Long: `A command-line client for the REST PKI service.

This tool allows you to:
  - Authenticate users by their digital certificates
  - Sign PDF documents with PAdES signatures
  - Fetch visual positioning presets
  - List the standard security contexts and signature policies

Environment variables:
  RESTPKI_ENDPOINT     - Service URL (default: https://pki.rest/)
  RESTPKI_ACCESS_TOKEN - API access token

Settings may also be stored in $HOME/.restpki.yaml:
  endpoint: https://pki.rest/
  access_token: ...
  security_context: pki-brazil
  signature_policy: pades-basic`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Service URL (or RESTPKI_ENDPOINT env)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "API access token (or RESTPKI_ACCESS_TOKEN env)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $HOME/.restpki.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(padesCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(constantsCmd)
	rootCmd.AddCommand(openapiCmd)
}

// fileConfig is the on-disk configuration.
type fileConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessToken     string `yaml:"access_token"`
	SecurityContext string `yaml:"security_context"`
	SignaturePolicy string `yaml:"signature_policy"`
}

// loadConfig reads the config file. A missing default file yields an empty
// config; a missing explicit --config file is an error.
func loadConfig() (*fileConfig, error) {
	path := configPath
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return &fileConfig{}, nil
		}
		path = filepath.Join(home, ".restpki.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// getEndpoint returns the service URL from flags, environment or config
func getEndpoint(cfg *fileConfig) string {
	if endpoint != "" {
		return endpoint
	}
	if url := os.Getenv("RESTPKI_ENDPOINT"); url != "" {
		return url
	}
	if cfg.Endpoint != "" {
		return cfg.Endpoint
	}
	return defaultEndpoint
}

// getToken returns the access token from flags, environment or config
func getToken(cfg *fileConfig) string {
	if token != "" {
		return token
	}
	if t := os.Getenv("RESTPKI_ACCESS_TOKEN"); t != "" {
		return t
	}
	return cfg.AccessToken
}

// newClient creates a new API client from the flags, the environment and
// the already loaded cfg.
func newClient(cfg *fileConfig) (*client.Client, error) {
	accessToken := getToken(cfg)
	if accessToken == "" {
		return nil, errors.New("no access token: use --token or RESTPKI_ACCESS_TOKEN")
	}

	opts := []client.Option{client.WithTimeout(timeout)}
	if verbose {
		opts = append(opts, client.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	return client.New(getEndpoint(cfg), accessToken, opts...)
}

// outputJSON prints the value as JSON
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// resolveID maps a catalog short name to its identifier. Anything that is
// not a short name must be a UUID.
func resolveID(kind, value string, lookup func(string) string) (string, error) {
	id := lookup(value)
	if err := uuid.Validate(id); err != nil {
		return "", fmt.Errorf("unknown %s %q: use a standard name or a UUID", kind, value)
	}
	return id, nil
}

// wrapServiceError adds a hint for the error classes a user can act on.
func wrapServiceError(action string, err error) error {
	switch {
	case client.IsAuthError(err):
		return fmt.Errorf("access token rejected: %w", err)
	case client.IsValidationError(err):
		return err
	default:
		return fmt.Errorf("%s failed: %w", action, err)
	}
}

// Auth command group
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Certificate authentication",
	Long:  "Authenticates a user by their digital certificate in two steps.",
}

func init() {
	authCmd.AddCommand(authStartCmd)
	authCmd.AddCommand(authCompleteCmd)
}

// Auth start command
var authStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an authentication",
	Long: `Starts an authentication and prints the token to hand to Web PKI.

Example:
  restpki auth start --security-context pki-brazil`,
	RunE: func(cmd *cobra.Command, args []string) error {
		securityContext, _ := cmd.Flags().GetString("security-context")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if securityContext == "" {
			securityContext = cfg.SecurityContext
		}
		if securityContext == "" {
			return fmt.Errorf("--security-context is required")
		}
		securityContextID, err := resolveID("security context", securityContext, client.LookupSecurityContext)
		if err != nil {
			return err
		}

		c, err := newClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		authToken, err := c.NewAuthentication().Start(ctx, securityContextID)
		if err != nil {
			return wrapServiceError("authentication start", err)
		}

		if jsonOutput {
			return outputJSON(map[string]string{"token": authToken})
		}

		fmt.Println(authToken)
		return nil
	},
}

func init() {
	authStartCmd.Flags().String("security-context", "", "Security context name or ID (pki-brazil, pki-italy, windows-server)")
}

// Auth complete command
var authCompleteCmd = &cobra.Command{
	Use:   "complete TOKEN",
	Short: "Complete an authentication",
	Long:  "Completes the authentication for TOKEN and prints the validation results.\nExits with an error when the certificate is not valid.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := newClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		auth := c.NewAuthentication()
		results, err := auth.Complete(ctx, args[0])
		if err != nil {
			return wrapServiceError("authentication", err)
		}
		cert, err := auth.Certificate()
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(map[string]any{
				"valid":       results.IsValid(),
				"summary":     results.Summary(0),
				"report":      results.String(),
				"certificate": cert,
			}); err != nil {
				return err
			}
		} else {
			if info, err := cert.Info(); err == nil {
				fmt.Printf("Subject: %s\n", info.SubjectCommonName)
				fmt.Printf("Issuer: %s\n", info.IssuerCommonName)
				if info.EmailAddress != "" {
					fmt.Printf("Email: %s\n", info.EmailAddress)
				}
				if !info.ValidityEnd.IsZero() {
					fmt.Printf("Valid until: %s\n", info.ValidityEnd.Format(time.RFC3339))
				}
			}
			fmt.Println(results.String())
		}

		if !results.IsValid() {
			return fmt.Errorf("certificate validation failed: %s", results.Summary(0))
		}
		return nil
	},
}

// PAdES command group
var padesCmd = &cobra.Command{
	Use:   "pades",
	Short: "PAdES signatures",
	Long:  "Signs PDF documents with PAdES signatures in two steps.",
}

func init() {
	padesCmd.AddCommand(padesStartCmd)
	padesCmd.AddCommand(padesFinishCmd)
}

// PAdES start command
var padesStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a PAdES signature",
	Long: `Uploads a PDF and prints the token to hand to Web PKI.

The visible stamp is taken from --visual (a JSON file) or built from
--preset and --text.

Example:
  restpki pades start --pdf contract.pdf --policy pades-basic --preset footnote`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath, _ := cmd.Flags().GetString("pdf")
		policy, _ := cmd.Flags().GetString("policy")
		securityContext, _ := cmd.Flags().GetString("security-context")
		visualPath, _ := cmd.Flags().GetString("visual")
		preset, _ := cmd.Flags().GetString("preset")
		text, _ := cmd.Flags().GetString("text")

		if pdfPath == "" {
			return fmt.Errorf("--pdf is required")
		}
		if visualPath != "" && preset != "" {
			return fmt.Errorf("--visual and --preset are mutually exclusive")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if policy == "" {
			policy = cfg.SignaturePolicy
		}
		if securityContext == "" {
			securityContext = cfg.SecurityContext
		}
		if policy != "" {
			if policy, err = resolveID("signature policy", policy, client.LookupSignaturePolicy); err != nil {
				return err
			}
		}
		if securityContext != "" {
			if securityContext, err = resolveID("security context", securityContext, client.LookupSecurityContext); err != nil {
				return err
			}
		}

		c, err := newClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		starter := c.NewPadesSignatureStarter()
		if err := starter.SetPdfToSignPath(pdfPath); err != nil {
			return err
		}
		starter.SetSignaturePolicy(policy)
		starter.SetSecurityContext(securityContext)

		switch {
		case visualPath != "":
			data, err := os.ReadFile(visualPath)
			if err != nil {
				return fmt.Errorf("failed to read visual representation: %w", err)
			}
			if !json.Valid(data) {
				return fmt.Errorf("visual representation %s is not valid JSON", visualPath)
			}
			if err := starter.SetVisualRepresentation(json.RawMessage(data)); err != nil {
				return err
			}
		case preset != "":
			position, err := fetchPreset(ctx, c, preset, client.FootnoteOptions{})
			if err != nil {
				return err
			}
			if err := starter.SetVisualRepresentation(client.VisualRepresentation{
				Text:     &client.VisualText{Text: text, IncludeSigningTime: true},
				Position: position,
			}); err != nil {
				return err
			}
		}

		sigToken, err := starter.Start(ctx)
		if err != nil {
			return wrapServiceError("signature start", err)
		}

		if jsonOutput {
			return outputJSON(map[string]string{"token": sigToken})
		}

		fmt.Println(sigToken)
		return nil
	},
}

func init() {
	padesStartCmd.Flags().String("pdf", "", "Path to the PDF to sign (required)")
	padesStartCmd.Flags().String("policy", "", "Signature policy name or ID (pades-basic)")
	padesStartCmd.Flags().String("security-context", "", "Security context name or ID")
	padesStartCmd.Flags().String("visual", "", "Path to a visual representation JSON file")
	padesStartCmd.Flags().String("preset", "", "Place a stamp using a preset (footnote, new-page)")
	padesStartCmd.Flags().String("text", "Signed by {{signerName}}", "Stamp text used with --preset")
}

// PAdES finish command
var padesFinishCmd = &cobra.Command{
	Use:   "finish TOKEN",
	Short: "Finish a PAdES signature",
	Long:  "Finishes the signature for TOKEN and writes the signed PDF.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return fmt.Errorf("--out is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := newClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		finisher := c.NewPadesSignatureFinisher()
		finisher.SetToken(args[0])
		signed, err := finisher.Finish(ctx)
		if err != nil {
			return wrapServiceError("signature finish", err)
		}
		if err := finisher.WriteSignedPdfToPath(out); err != nil {
			return err
		}
		cert, err := finisher.Certificate()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{
				"out":         out,
				"bytes":       len(signed),
				"certificate": cert,
			})
		}

		fmt.Printf("Signed PDF written to %s (%d bytes)\n", out, len(signed))
		if info, err := cert.Info(); err == nil && info.SubjectCommonName != "" {
			fmt.Printf("  Signer: %s\n", info.SubjectCommonName)
		}
		return nil
	},
}

func init() {
	padesFinishCmd.Flags().String("out", "", "Output path for the signed PDF (required)")
}

// Presets command group
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Visual positioning presets",
	Long:  "Fetches the presets that position a visible signature on the page.",
}

func init() {
	presetsCmd.AddCommand(presetsFootnoteCmd)
	presetsCmd.AddCommand(presetsNewPageCmd)
}

// fetchPreset resolves a preset by its CLI name.
func fetchPreset(ctx context.Context, c *client.Client, name string, opts client.FootnoteOptions) (*client.Preset, error) {
	var (
		preset *client.Preset
		err    error
	)
	switch name {
	case "footnote":
		preset, err = c.Presets().Footnote(ctx, opts)
	case "new-page":
		preset, err = c.Presets().NewPage(ctx)
	default:
		return nil, fmt.Errorf("unknown preset %q (use footnote or new-page)", name)
	}
	if err != nil {
		return nil, wrapServiceError("preset lookup", err)
	}
	return preset, nil
}

// presetCommand builds the RunE shared by the preset subcommands.
func presetCommand(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var opts client.FootnoteOptions
		if cmd != nil {
			opts.PageNumber, _ = cmd.Flags().GetInt("page")
			opts.Rows, _ = cmd.Flags().GetInt("rows")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := newClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		preset, err := fetchPreset(ctx, c, name, opts)
		if err != nil {
			return err
		}
		return outputJSON(preset)
	}
}

var presetsFootnoteCmd = &cobra.Command{
	Use:   "footnote",
	Short: "Get the footnote preset",
	RunE:  presetCommand("footnote"),
}

func init() {
	presetsFootnoteCmd.Flags().Int("page", 0, "Page receiving the stamp; negative counts from the end")
	presetsFootnoteCmd.Flags().Int("rows", 0, "Number of signature rows to reserve")
}

var presetsNewPageCmd = &cobra.Command{
	Use:   "new-page",
	Short: "Get the new page preset",
	RunE:  presetCommand("new-page"),
}

// Constants command
var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "List standard identifiers",
	Long:  "Lists the standard security contexts and signature policies.",
	RunE: func(cmd *cobra.Command, args []string) error {
		contexts := client.StandardSecurityContexts()
		policies := client.StandardSignaturePolicies()

		if jsonOutput {
			return outputJSON(map[string]any{
				"securityContexts":  contexts,
				"signaturePolicies": policies,
			})
		}

		fmt.Println("Security contexts:")
		printCatalog(contexts)
		fmt.Println("Signature policies:")
		printCatalog(policies)
		return nil
	},
}

func printCatalog(catalog map[string]string) {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-16s %s\n", name, catalog[name])
	}
}

// OpenAPI command
var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the API description",
	Long:  "Prints the embedded OpenAPI document, or its operations with --operations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		listOps := false
		if cmd != nil {
			listOps, _ = cmd.Flags().GetBool("operations")
		}

		if listOps {
			ops, err := api.Operations()
			if err != nil {
				return fmt.Errorf("failed to load API description: %w", err)
			}
			if jsonOutput {
				return outputJSON(ops)
			}
			for _, op := range ops {
				fmt.Printf("%-6s %-55s %s\n", op.Method, op.Path, op.ID)
			}
			return nil
		}

		doc, err := api.GetSwagger()
		if err != nil {
			return fmt.Errorf("failed to load API description: %w", err)
		}
		return outputJSON(doc)
	},
}

func init() {
	openapiCmd.Flags().Bool("operations", false, "List operations only")
}
