package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/realitycheck/internal/realism"
	"github.com/abhisek/realitycheck/internal/ui/components"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [resolution...]",
		Short: "Check a single resolution and print the verdict",
		Long: `Classify one resolution and print the verdict without starting the
interactive checker. The resolution is read from the arguments, or from
stdin when no arguments are given. Blank input prints nothing.`,
		Example: `  realitycheck check "drink more water"
  echo "become a billionaire" | realitycheck check --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, v, args)
		},
	}
	cmd.Flags().String("format", "text", "output format: text, json or yaml")
	return cmd
}

func runCheck(cmd *cobra.Command, v *viper.Viper, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format %q: must be text, json or yaml", format)
	}

	cfg := loadConfig(v)
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = "stderr"
	}
	logger, err := newLogger(cfg.LogLevel, logPath)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	text := strings.Join(args, " ")
	if len(args) == 0 {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(raw)
	}

	ctrl := newController(cfg, logger)
	ctrl.SetInput(text)
	if !ctrl.Submit() {
		logger.Debug("blank resolution ignored")
		return nil
	}
	res, _ := ctrl.Last()

	return writeResult(cmd.OutOrStdout(), format, res)
}

func writeResult(w io.Writer, format string, res realism.Result) error {
	switch format {
	case "json":
		out, err := realism.MarshalJSON(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, components.PlainVerdict(res))
		return err
	}
}
