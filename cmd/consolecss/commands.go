package consolecss

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/consolecss/internal/version"
	"github.com/arthur-debert/consolecss/pkg/config"
	"github.com/arthur-debert/consolecss/pkg/console"
	"github.com/arthur-debert/consolecss/pkg/declarations"
	"github.com/arthur-debert/consolecss/pkg/errors"
	"github.com/arthur-debert/consolecss/pkg/logging"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func addStyleFlags(cmd *cobra.Command, flags *styleFlags) {
	cmd.Flags().StringArrayVarP(&flags.stylesheets, "stylesheet", "s", nil, MsgFlagStylesheet)
	cmd.Flags().StringArrayVar(&flags.css, "css", nil, MsgFlagCSS)
}

func newRenderCmd(o *options) *cobra.Command {
	var (
		styles styleFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "render <markup> [args...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")

			resolved, err := o.outputFormat(format)
			if err != nil {
				return err
			}
			cfg, err := o.config()
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, styles)
			if err != nil {
				return err
			}
			markup, err := readMarkup(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			template, rest := engine.Sprint(markup, parseArgs(args[1:])...)
			logger.Debug().Str("format", resolved).Str("template", template).Int("args", len(rest)).Msg("Rendered markup")

			result := append([]any{template}, rest...)
			switch resolved {
			case config.FormatJSON, config.FormatYAML:
				return encode(cmd.OutOrStdout(), resolved, result)
			default:
				term, err := o.terminal(cmd.OutOrStdout(), resolved)
				if err != nil {
					return err
				}
				term.Call(console.MethodLog, result...)
				return nil
			}
		},
	}

	addStyleFlags(cmd, &styles)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func newLogCmd(o *options) *cobra.Command {
	var (
		styles styleFlags
		method string
	)

	cmd := &cobra.Command{
		Use:     "log <markup> [args...]",
		Short:   MsgLogShort,
		Long:    MsgLogLong,
		Example: MsgLogExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := console.ParseMethod(method)
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "unknown console method %q", method).
					WithDetail("method", method)
			}
			cfg, err := o.config()
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, styles)
			if err != nil {
				return err
			}
			term, err := o.terminal(cmd.OutOrStdout(), config.FormatANSI)
			if err != nil {
				return err
			}

			logger := logging.WithFields(map[string]interface{}{
				"method": m.String(),
				"stdin":  args[0] == "-",
			})
			logger.Debug().Msg("Logging markup")

			styled := console.Wrap(term, engine)
			if args[0] == "-" {
				return eachLine(cmd.InOrStdin(), func(line string) {
					styled.Call(m, line)
				})
			}
			styled.Call(m, append([]any{args[0]}, parseArgs(args[1:])...)...)
			return nil
		},
	}

	addStyleFlags(cmd, &styles)
	cmd.Flags().StringVarP(&method, "method", "m", console.MethodLog.String(), MsgFlagMethod)
	_ = cmd.RegisterFlagCompletionFunc("method", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(console.Methods()))
		for _, m := range console.Methods() {
			names = append(names, m.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newDeclarationsCmd(o *options) *cobra.Command {
	var (
		styles styleFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "declarations",
		Short:   MsgDeclarationsShort,
		Long:    MsgDeclarationsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := o.outputFormat(format)
			if err != nil {
				return err
			}
			cfg, err := o.config()
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, styles)
			if err != nil {
				return err
			}

			all := engine.Store().All()
			switch resolved {
			case config.FormatJSON, config.FormatYAML:
				return encode(cmd.OutOrStdout(), resolved, all)
			}

			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No declarations.")
				return nil
			}

			data := pterm.TableData{{"SELECTOR", "TYPE", "RULES"}}
			for _, d := range all {
				selector := d.Entity
				if d.Type == declarations.TypeClass {
					selector = "." + selector
				}
				data = append(data, []string{selector, string(d.Type), strings.Join(d.Rules, "; ")})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Wrap(err, errors.ErrOutputFormat, "failed to render table")
			}
			if resolved == config.FormatPlain || o.noColor {
				table = pterm.RemoveColorFromString(table)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	addStyleFlags(cmd, &styles)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func newConfigCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			out, err := config.ToTOML(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: MsgConfigInitShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.UserConfigPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.AddCommand(initCmd)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String(AppName))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   strings.ToUpper(AppName),
				Section: "1",
				Source:  AppName + " " + version.Version,
				Manual:  AppName + " manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
