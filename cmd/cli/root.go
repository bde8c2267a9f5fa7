package cli

import (
	"context"
	"os"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/storacha/daclient/cmd/cli/credits"
	"github.com/storacha/daclient/cmd/cliutil"
	"github.com/storacha/daclient/lib/telemetry"
	"github.com/storacha/daclient/pkg/build"
	"github.com/storacha/daclient/pkg/config"
)

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

var log = logging.Logger("cmd")

var (
	cfgFile  string
	logLevel string
	tel      *telemetry.Telemetry
	rootCmd  = &cobra.Command{
		Use:   "daclient",
		Short: "Store and retrieve content on a data availability service",
		Long: `daclient uploads signed content to a data availability service, tracks the
resulting jobs until they are confirmed, retrieves stored content and manages
prepaid credit accounts on the ledger contract.

Settings are read from flags, then DACLIENT_* environment variables, then the
config file.`,
		SilenceUsage: true,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			shutdownTelemetry()
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize(initLogging, initConfig, initTelemetry)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "logging level")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table or json)")

	bindFlag("api-url", config.APIURL, "", "Base URL of the DA service")
	bindFlag("rpc-url", config.RPCURL, "", "Ethereum RPC endpoint of the ledger chain")
	bindFlag("ledger-address", config.LedgerAddress, "", "Credit ledger contract address")
	bindFlag("private-key", config.PrivateKey, "", "Hex encoded private key")
	bindFlag("key-file", config.KeyFile, "", "Path to a file holding a hex encoded private key")
	bindFlag("keystore", config.KeystorePath, "", "Path to an encrypted keystore file")
	bindFlag("keystore-password", config.KeystorePassword, "", "Keystore password")
	cobra.CheckErr(rootCmd.MarkPersistentFlagFilename("key-file"))
	cobra.CheckErr(rootCmd.MarkPersistentFlagFilename("keystore", "json"))

	rootCmd.PersistentFlags().Duration("http-timeout", 0, "Timeout for each DA service request")
	cobra.CheckErr(viper.BindPFlag(string(config.HTTPTimeout), rootCmd.PersistentFlags().Lookup("http-timeout")))

	rootCmd.PersistentFlags().String("otlp-endpoint", "", "OTLP/HTTP collector for traces and metrics")
	cobra.CheckErr(viper.BindPFlag("telemetry.endpoint", rootCmd.PersistentFlags().Lookup("otlp-endpoint")))

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(retrieveCmd)
	rootCmd.AddCommand(credits.Cmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(name string, key config.Key, value, usage string) {
	rootCmd.PersistentFlags().String(name, value, usage)
	cobra.CheckErr(viper.BindPFlag(string(key), rootCmd.PersistentFlags().Lookup(name)))
}

func initConfig() {
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
	}
}

func initTelemetry() {
	endpoint := viper.GetString("telemetry.endpoint")
	if endpoint == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	tel, err = telemetry.New(ctx, telemetry.Config{
		ServiceName:    "daclient",
		ServiceVersion: build.Version,
		Collectors: []telemetry.CollectorConfig{{
			Endpoint: endpoint,
			Insecure: os.Getenv("DACLIENT_TELEMETRY_INSECURE") != "",
		}},
	})
	if err != nil {
		log.Warnf("failed to initialize telemetry: %s", err)
	}
}

func shutdownTelemetry() {
	if tel == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cliutil.TelemetryShutdownTimeout)
	defer cancel()
	if err := tel.Shutdown(ctx); err != nil {
		log.Warnf("failed to flush telemetry: %s", err)
	}
}

func initLogging() {
	if logLevel != "" {
		ll, err := logging.LevelFromString(logLevel)
		cobra.CheckErr(err)
		logging.SetAllLoggers(ll)
	} else {
		logging.SetLogLevel("cmd", "info")
		logging.SetLogLevel("client", "warn")
		logging.SetLogLevel("config", "error")
		logging.SetLogLevel("transfer", "warn")
		logging.SetLogLevel("poller", "info")
		logging.SetLogLevel("resolver", "warn")
		logging.SetLogLevel("ledger", "info")
		logging.SetLogLevel("telemetry", "warn")
	}
}
