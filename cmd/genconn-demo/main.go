package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"runtime"
	"strings"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/qbixus/genconn-go/internal/demo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(viper.New()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "genconn-demo [ref...]",
		Short:         "Runs business operations that bind three non-transactional services and a journal into one transaction",
		SilenceErrors: true,
		Example: `
  # Commit everything
  genconn-demo REF1

  # Foreign key failure in the journal rolls the services back
  genconn-demo FAILDB

  # The booking system refuses the reservation
  genconn-demo FAILBOOKING

  # The letter writer refuses every reservation
  GENCONN_FAIL=letter genconn-demo REF2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := loadConfigFile(v); err != nil {
				return err
			}

			logger, err := newLogger(v.GetString("log-level"))
			if err != nil {
				return err
			}

			app, err := demo.NewApp(demo.Config{
				Journal: v.GetString("journal"),
				Fail:    v.GetStringSlice("fail"),
			}, demo.WithLogger(logger))
			if err != nil {
				return err
			}
			defer app.Close()

			if len(args) == 0 {
				args = []string{"REF"}
			}
			failed := 0
			for _, ref := range args {
				result, err := app.Run(cmd.Context(), ref)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: rolled back: %v\n", ref, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: committed: %s\n", ref, result)
			}
			if failed == len(args) {
				return fmt.Errorf("all %d operations rolled back", failed)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("journal", "genconn-demo.db", "path to the bolt journal file")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.StringSlice("fail", nil, "services that refuse every reservation: "+strings.Join(demo.ServiceNames(), ", "))
	bindFlags(v, flags, "config", "journal", "log-level", "fail")

	v.SetEnvPrefix("GENCONN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		flag := flags.Lookup(name)
		if flag == nil {
			panic(fmt.Sprintf("flag %q not found", name))
		}
		if err := v.BindPFlag(name, flag); err != nil {
			panic(err)
		}
	}
}

func loadConfigFile(v *viper.Viper) error {
	cfgPath := strings.TrimSpace(v.GetString("config"))
	if cfgPath == "" {
		return nil
	}
	v.SetConfigFile(cfgPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %q: %w", cfgPath, err)
	}
	return nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component", "resource"},
		CustomCallerFormatter: func(f *runtime.Frame) string {
			s := strings.Split(f.Function, ".")
			funcName := s[len(s)-1]
			return fmt.Sprintf(" [%s:%d][%s()]", path.Base(f.File), f.Line, funcName)
		},
		CallerFirst: true,
	})
	logger.SetReportCaller(lvl >= log.DebugLevel)
	return logger, nil
}
