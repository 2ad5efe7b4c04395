// Package config builds the single Config value every command and service is
// wired from. Values come from a yaml file, then from the environment (.env included).
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	bValidator "github.com/x-xyz/xionmarket/base/validator"
	"github.com/x-xyz/xionmarket/domain"
)

const (
	NetworkTestnet = "testnet"
	NetworkMainnet = "mainnet"
)

type Network struct {
	Name     string `mapstructure:"name" validate:"oneof=testnet mainnet"`
	ChainId  string `mapstructure:"chainId" validate:"required"`
	RpcUrl   string `mapstructure:"rpcUrl" validate:"required,url"`
	LcdUrl   string `mapstructure:"lcdUrl" validate:"required,url"`
	GasPrice string `mapstructure:"gasPrice" validate:"required"`
	GasLimit uint64 `mapstructure:"gasLimit" validate:"gt=0"`
	Prefix   string `mapstructure:"prefix" validate:"required"`
}

var networks = map[string]Network{
	NetworkTestnet: {
		Name:     NetworkTestnet,
		ChainId:  "xion-testnet-1",
		RpcUrl:   "https://rpc.xion-testnet-1.burnt.com:443",
		LcdUrl:   "https://api.xion-testnet-1.burnt.com",
		GasPrice: "0.025uxion",
		GasLimit: 500000,
		Prefix:   "xion",
	},
	NetworkMainnet: {
		Name:     NetworkMainnet,
		ChainId:  "xion-mainnet-1",
		RpcUrl:   "https://rpc.xion.burnt.com:443",
		LcdUrl:   "https://api.xion.burnt.com",
		GasPrice: "0.025uxion",
		GasLimit: 500000,
		Prefix:   "xion",
	},
}

type Contracts struct {
	Marketplace      domain.Address `mapstructure:"marketplace" validate:"omitempty,bech32"`
	SingleCollection domain.Address `mapstructure:"singleCollection" validate:"omitempty,bech32"`
	Permissioned     domain.Address `mapstructure:"permissioned" validate:"omitempty,bech32"`
	NftContract      domain.Address `mapstructure:"nftContract" validate:"omitempty,bech32"`
}

type Retry struct {
	// Attempts after the first failed read
	Attempts int           `mapstructure:"attempts" validate:"gte=0,lte=10"`
	Delay    time.Duration `mapstructure:"delay"`
	MaxDelay time.Duration `mapstructure:"maxDelay"`
}

type Mongo struct {
	Uri        string `mapstructure:"uri"`
	AuthDBName string `mapstructure:"authDBName"`
	DbName     string `mapstructure:"dbName"`
	EnableSSL  bool   `mapstructure:"enableSSL"`
}

type Config struct {
	Debug   bool          `mapstructure:"debug"`
	Network Network       `mapstructure:"network"`
	Denom   string        `mapstructure:"denom" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	// SignerUrl is the service that signs and broadcasts transactions
	SignerUrl     string         `mapstructure:"signerUrl" validate:"omitempty,url"`
	PrivateKey    string         `mapstructure:"privateKey"`
	Admin         domain.Address `mapstructure:"admin" validate:"omitempty,bech32"`
	FeePercentage uint64         `mapstructure:"feePercentage" validate:"lte=100"`
	Contracts     Contracts      `mapstructure:"contracts"`
	Retry         Retry          `mapstructure:"retry"`
	ConfirmDelay  time.Duration  `mapstructure:"confirmDelay"`
	ConfigTtl     time.Duration  `mapstructure:"configTtl"`
	Mongo         Mongo          `mapstructure:"mongo"`
	ServerAddress string         `mapstructure:"serverAddress"`
	DatadogHost   string         `mapstructure:"datadog_host"`
}

var envBindings = map[string][]string{
	"network.name":               {"NETWORK"},
	"network.rpcUrl":             {"XION_RPC_URL"},
	"network.lcdUrl":             {"XION_LCD_URL"},
	"network.chainId":            {"XION_CHAIN_ID"},
	"network.gasPrice":           {"DEFAULT_GAS_PRICE"},
	"network.gasLimit":           {"DEFAULT_GAS_LIMIT"},
	"contracts.marketplace":      {"MARKETPLACE_ADDRESS"},
	"contracts.singleCollection": {"SINGLE_COLLECTION_ADDRESS"},
	"contracts.permissioned":     {"PERMISSIONED_ADDRESS"},
	"contracts.nftContract":      {"NFT_CONTRACT_ADDRESS"},
	"signerUrl":                  {"SIGNER_URL"},
	"privateKey":                 {"PRIVATE_KEY"},
	"admin":                      {"ADMIN_ADDRESS"},
	"feePercentage":              {"FEE_PERCENTAGE"},
	"mongo.uri":                  {"MONGO_URI"},
	"mongo.dbName":               {"MONGO_DB"},
	"serverAddress":              {"SERVER_ADDRESS"},
	"datadog_host":               {"DATADOG_HOST"},
	"debug":                      {"DEBUG"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network.name", NetworkTestnet)
	v.SetDefault("denom", domain.NativeDenom)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("feePercentage", 2)
	v.SetDefault("retry.attempts", 3)
	v.SetDefault("retry.delay", time.Second)
	v.SetDefault("retry.maxDelay", 8*time.Second)
	v.SetDefault("confirmDelay", 5*time.Second)
	v.SetDefault("configTtl", time.Minute)
	v.SetDefault("mongo.authDBName", "admin")
	v.SetDefault("mongo.dbName", "xionmarket")
	v.SetDefault("serverAddress", ":8080")
}

// Load reads path (optional) and the environment into the global viper instance,
// then decodes and validates the result.
func Load(path string) (*Config, error) {
	// a missing .env is fine, the variables may come from the shell
	_ = godotenv.Load()

	v := viper.GetViper()
	setDefaults(v)
	// NETWORK binds network.name, never the whole network map
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, xerrors.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, xerrors.Errorf("decode config: %w", err)
	}
	if err := cfg.applyNetwork(); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	// metrics tags read it from viper
	v.Set("network_name", cfg.Network.Name)
	return cfg, nil
}

// applyNetwork fills network fields left empty with the preset of the named network.
func (c *Config) applyNetwork() error {
	preset, ok := networks[c.Network.Name]
	if !ok {
		return xerrors.Errorf("network %q: %w", c.Network.Name, domain.ErrInvalidInput)
	}
	if c.Network.ChainId == "" {
		c.Network.ChainId = preset.ChainId
	}
	if c.Network.RpcUrl == "" {
		c.Network.RpcUrl = preset.RpcUrl
	}
	if c.Network.LcdUrl == "" {
		c.Network.LcdUrl = preset.LcdUrl
	}
	if c.Network.GasPrice == "" {
		c.Network.GasPrice = preset.GasPrice
	}
	if c.Network.GasLimit == 0 {
		c.Network.GasLimit = preset.GasLimit
	}
	if c.Network.Prefix == "" {
		c.Network.Prefix = preset.Prefix
	}
	return nil
}

func Validate(cfg *Config) error {
	v := bValidator.New()
	if err := v.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return xerrors.Errorf("config %s: %w", verrs.Error(), domain.ErrInvalidInput)
		}
		return err
	}
	return nil
}

// MarketplaceAddress resolves open, single or permissioned to the configured
// contract; anything else is taken as a literal address.
func (c *Config) MarketplaceAddress(variant string) (domain.Address, error) {
	var (
		addr domain.Address
		key  string
	)
	switch domain.MarketplaceVariant(variant) {
	case "", domain.MarketplaceOpen:
		addr, key = c.Contracts.Marketplace, "MARKETPLACE_ADDRESS"
	case domain.MarketplaceSingle:
		addr, key = c.Contracts.SingleCollection, "SINGLE_COLLECTION_ADDRESS"
	case domain.MarketplacePermissioned:
		addr, key = c.Contracts.Permissioned, "PERMISSIONED_ADDRESS"
	default:
		addr = domain.Address(variant)
		if !bValidator.IsValidAddress(variant, c.Network.Prefix) {
			return "", xerrors.Errorf("marketplace %q: %w", variant, domain.ErrInvalidAddress)
		}
		return addr, nil
	}
	if addr.IsEmpty() {
		return "", xerrors.Errorf("%s marketplace not configured, set %s: %w", variant, key, domain.ErrInvalidInput)
	}
	return addr, nil
}

// NftContract returns the given address or the configured default collection.
func (c *Config) NftContract(override string) (domain.Address, error) {
	if override != "" {
		if !bValidator.IsValidAddress(override, c.Network.Prefix) {
			return "", xerrors.Errorf("nft contract %q: %w", override, domain.ErrInvalidAddress)
		}
		return domain.Address(override), nil
	}
	if c.Contracts.NftContract.IsEmpty() {
		return "", xerrors.Errorf("nft contract not configured, set NFT_CONTRACT_ADDRESS: %w", domain.ErrInvalidInput)
	}
	return c.Contracts.NftContract, nil
}
