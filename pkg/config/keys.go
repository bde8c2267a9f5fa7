package config

import (
	"github.com/spf13/viper"

	"github.com/storacha/daclient/pkg/ledger"
	"github.com/storacha/daclient/pkg/poller"
	"github.com/storacha/daclient/pkg/transfer"
)

// EnvPrefix is prepended to every key when read from the environment, e.g.
// DACLIENT_API_URL or DACLIENT_POLL_MAX_CHECKS.
const EnvPrefix = "DACLIENT"

// Key is a configuration key path used with Viper.
type Key string

const (
	APIURL           Key = "api_url"
	RPCURL           Key = "rpc_url"
	PrivateKey       Key = "private_key"
	KeyFile          Key = "key_file"
	KeystorePath     Key = "keystore"
	KeystorePassword Key = "keystore_password"
	LedgerAddress    Key = "ledger_address"
	HTTPTimeout      Key = "http_timeout"
	ReceiptTimeout   Key = "receipt_timeout"
)

// Status polling
const (
	PollMaxChecks     Key = "poll.max_checks"
	PollCheckInterval Key = "poll.check_interval"
	PollInitialDelay  Key = "poll.initial_delay"
)

var allKeys = []Key{
	APIURL, RPCURL, PrivateKey, KeyFile, KeystorePath, KeystorePassword, LedgerAddress,
	HTTPTimeout, ReceiptTimeout, PollMaxChecks, PollCheckInterval, PollInitialDelay,
}

var defaultValues = map[Key]any{
	PollMaxChecks:     poller.DefaultMaxChecks,
	PollCheckInterval: poller.DefaultCheckInterval,
	PollInitialDelay:  poller.DefaultInitialDelay,
	HTTPTimeout:       transfer.DefaultTimeout,
	ReceiptTimeout:    ledger.DefaultReceiptTimeout,
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	for k, val := range defaultValues {
		v.SetDefault(string(k), val)
	}
}

// bindEnv makes every key readable from its DACLIENT_ variable. Unmarshal only
// sees env values for keys viper already knows about, so each one is bound
// explicitly.
func bindEnv(v *viper.Viper) error {
	for _, k := range allKeys {
		if err := v.BindEnv(string(k)); err != nil {
			return err
		}
	}
	return nil
}
