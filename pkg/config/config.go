// Package config resolves client settings from explicit values, DACLIENT_
// environment variables and built-in defaults, in that order.
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/viper"

	"github.com/storacha/daclient/lib"
	"github.com/storacha/daclient/pkg/poller"
	"github.com/storacha/daclient/pkg/signer"
	"github.com/storacha/daclient/pkg/types"
)

var log = logging.Logger("config")

type Config struct {
	// Base URL of the DA service.
	APIURL string `mapstructure:"api_url" validate:"required"`
	// JSON-RPC endpoint of the chain hosting the credit ledger. Optional,
	// ledger operations are unavailable without it.
	RPCURL        string `mapstructure:"rpc_url" validate:"required_with=LedgerAddress"`
	LedgerAddress string `mapstructure:"ledger_address" validate:"required_with=RPCURL,omitempty,eth_addr"`

	// Exactly one credential source must be set.
	PrivateKey       string `mapstructure:"private_key" validate:"omitempty,privkey"`
	KeyFile          string `mapstructure:"key_file"`
	Keystore         string `mapstructure:"keystore"`
	KeystorePassword string `mapstructure:"keystore_password"`

	HTTPTimeout    time.Duration `mapstructure:"http_timeout" validate:"gte=0"`
	ReceiptTimeout time.Duration `mapstructure:"receipt_timeout" validate:"gte=0"`

	Poll Poll `mapstructure:"poll"`
}

// Poll holds the client-wide status polling defaults. The durations are
// pointers so that an explicit zero (no delay) is distinct from unset.
type Poll struct {
	MaxChecks     int            `mapstructure:"max_checks" validate:"gte=0"`
	CheckInterval *time.Duration `mapstructure:"check_interval" validate:"omitempty,gte=0"`
	InitialDelay  *time.Duration `mapstructure:"initial_delay" validate:"omitempty,gte=0"`
}

// Load resolves a Config once. Non-zero fields of overrides win, then
// DACLIENT_ environment variables and values already set on v, then defaults.
// A nil v uses a fresh viper instance. The result is validated.
func Load(v *viper.Viper, overrides Config) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return Config{}, types.WrapError(types.KindConfiguration, "binding environment", err)
	}
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, types.WrapError(types.KindConfiguration, "decoding configuration", err)
	}
	cfg = cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	log.Debugw("configuration loaded", "api_url", cfg.APIURL, "ledger", cfg.LedgerEnabled())
	return cfg, nil
}

// Merge returns c with every non-zero field of o applied on top. Poll
// durations are applied whenever they are set, including to zero.
func (c Config) Merge(o Config) Config {
	setString(&c.APIURL, o.APIURL)
	setString(&c.RPCURL, o.RPCURL)
	setString(&c.LedgerAddress, o.LedgerAddress)
	setString(&c.PrivateKey, o.PrivateKey)
	setString(&c.KeyFile, o.KeyFile)
	setString(&c.Keystore, o.Keystore)
	setString(&c.KeystorePassword, o.KeystorePassword)
	if o.HTTPTimeout != 0 {
		c.HTTPTimeout = o.HTTPTimeout
	}
	if o.ReceiptTimeout != 0 {
		c.ReceiptTimeout = o.ReceiptTimeout
	}
	if o.Poll.MaxChecks != 0 {
		c.Poll.MaxChecks = o.Poll.MaxChecks
	}
	if o.Poll.CheckInterval != nil {
		c.Poll.CheckInterval = o.Poll.CheckInterval
	}
	if o.Poll.InitialDelay != nil {
		c.Poll.InitialDelay = o.Poll.InitialDelay
	}
	return c
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate reports every problem with c in a single configuration error.
func (c Config) Validate() error {
	return c.validate(true)
}

// ValidateSettings checks everything except the presence of a credential, for
// callers that supply their own signer.
func (c Config) ValidateSettings() error {
	return c.validate(false)
}

func (c Config) validate(requireCredential bool) error {
	var merr *multierror.Error

	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				merr = multierror.Append(merr, fieldError(fe))
			}
		} else {
			merr = multierror.Append(merr, err)
		}
	}

	if c.APIURL != "" {
		if _, err := lib.ParseBaseURL(c.APIURL); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("api_url: %w", err))
		}
	}
	if c.RPCURL != "" {
		if _, err := lib.ParseBaseURL(c.RPCURL); err != nil && !isWebsocket(c.RPCURL) {
			merr = multierror.Append(merr, fmt.Errorf("rpc_url: %w", err))
		}
	}

	switch n := c.credentialCount(); {
	case n == 0 && requireCredential:
		merr = multierror.Append(merr, fmt.Errorf("one of private_key, key_file or keystore is required"))
	case n > 1:
		merr = multierror.Append(merr, fmt.Errorf("only one of private_key, key_file or keystore may be set"))
	}
	if c.Keystore != "" && c.KeystorePassword == "" {
		merr = multierror.Append(merr, fmt.Errorf("keystore_password is required when using keystore"))
	}

	if err := merr.ErrorOrNil(); err != nil {
		return types.WrapError(types.KindConfiguration, "invalid configuration", err)
	}
	return nil
}

func (c Config) credentialCount() int {
	n := 0
	for _, s := range []string{c.PrivateKey, c.KeyFile, c.Keystore} {
		if s != "" {
			n++
		}
	}
	return n
}

// Credential returns the configured credential source.
func (c Config) Credential() signer.Credential {
	switch {
	case c.PrivateKey != "":
		return signer.RawKey(c.PrivateKey)
	case c.KeyFile != "":
		return signer.KeyFile(c.KeyFile)
	case c.Keystore != "":
		return signer.Keystore{Path: c.Keystore, Password: c.KeystorePassword}
	default:
		return nil
	}
}

// LedgerEnabled reports whether enough is configured to reach the ledger.
func (c Config) LedgerEnabled() bool {
	return c.RPCURL != "" && c.LedgerAddress != ""
}

func (c Config) LedgerAddr() common.Address {
	return common.HexToAddress(c.LedgerAddress)
}

// PollSettings returns the client-wide poll defaults. Unset values fall back
// to the poller's own defaults; a configured zero duration is kept.
func (c Config) PollSettings() poller.Settings {
	s := poller.DefaultSettings()
	if c.Poll.MaxChecks > 0 {
		s.MaxChecks = c.Poll.MaxChecks
	}
	if c.Poll.CheckInterval != nil {
		s.CheckInterval = *c.Poll.CheckInterval
	}
	if c.Poll.InitialDelay != nil {
		s.InitialDelay = *c.Poll.InitialDelay
	}
	return s
}

func isWebsocket(u string) bool {
	return strings.HasPrefix(u, "ws://") || strings.HasPrefix(u, "wss://")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("privkey", func(fl validator.FieldLevel) bool {
		return signer.ValidatePrivateKeyHex(fl.Field().String()) == nil
	}); err != nil {
		panic(err)
	}
	return v
}

func fieldError(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "required_with":
		return fmt.Errorf("%s is required when %s is set", field, keyFor(fe.Param()))
	case "eth_addr":
		return fmt.Errorf("%s must be a 20-byte hex address", field)
	case "privkey":
		return fmt.Errorf("%s must be a 32-byte hex private key", field)
	case "gte":
		return fmt.Errorf("%s must not be negative", field)
	default:
		return fmt.Errorf("%s failed %s validation", field, fe.Tag())
	}
}

// keyFor maps a Config field name to its configuration key.
func keyFor(field string) string {
	if f, ok := reflect.TypeOf(Config{}).FieldByName(field); ok {
		if name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ","); name != "" {
			return name
		}
	}
	return field
}
