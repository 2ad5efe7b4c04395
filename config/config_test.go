package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/xionmarket/domain"
)

const (
	marketAddr = "xion1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0sugmyf4"
	singleAddr = "xion1ehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxspy5c04"
	nftAddr    = "xion1xvenxvenxvenxvenxvenxvenxvenxvenxvenxvenxvenxvenxvesxgwnsq"
)

type configSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(configSuite))
}

func (s *configSuite) SetupTest() {
	viper.Reset()
}

func (s *configSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal(NetworkTestnet, cfg.Network.Name)
	s.Equal("xion-testnet-1", cfg.Network.ChainId)
	s.Equal("https://rpc.xion-testnet-1.burnt.com:443", cfg.Network.RpcUrl)
	s.Equal("0.025uxion", cfg.Network.GasPrice)
	s.Equal(uint64(500000), cfg.Network.GasLimit)
	s.Equal("xion", cfg.Network.Prefix)
	s.Equal("uxion", cfg.Denom)
	s.Equal(uint64(2), cfg.FeePercentage)
	s.Equal(3, cfg.Retry.Attempts)
	s.Equal(time.Second, cfg.Retry.Delay)
	s.Equal(5*time.Second, cfg.ConfirmDelay)
}

func (s *configSuite) TestEnv() {
	s.T().Setenv("NETWORK", "mainnet")
	s.T().Setenv("MARKETPLACE_ADDRESS", marketAddr)
	s.T().Setenv("SINGLE_COLLECTION_ADDRESS", singleAddr)
	s.T().Setenv("NFT_CONTRACT_ADDRESS", nftAddr)
	s.T().Setenv("FEE_PERCENTAGE", "5")
	s.T().Setenv("DEFAULT_GAS_LIMIT", "750000")

	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal("xion-mainnet-1", cfg.Network.ChainId)
	s.Equal(uint64(750000), cfg.Network.GasLimit)
	s.Equal(uint64(5), cfg.FeePercentage)
	s.Equal(domain.Address(marketAddr), cfg.Contracts.Marketplace)
	s.Equal("mainnet", viper.GetString("network_name"))
}

func (s *configSuite) TestNetworkFromEnv() {
	tests := []struct {
		network string
		chainId string
		lcdUrl  string
	}{
		{network: NetworkMainnet, chainId: "xion-mainnet-1", lcdUrl: "https://api.xion.burnt.com"},
		{network: NetworkTestnet, chainId: "xion-testnet-1", lcdUrl: "https://api.xion-testnet-1.burnt.com"},
	}
	for _, t := range tests {
		viper.Reset()
		s.T().Setenv("NETWORK", t.network)

		cfg, err := Load("")
		s.Require().NoError(err, t.network)
		s.Equal(t.network, cfg.Network.Name)
		s.Equal(t.chainId, cfg.Network.ChainId)
		s.Equal(t.lcdUrl, cfg.Network.LcdUrl)
		s.Equal("xion", cfg.Network.Prefix)
	}
}

func (s *configSuite) TestFile() {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
debug: true
network:
  name: testnet
  lcdUrl: http://localhost:1317
contracts:
  marketplace: `+marketAddr+`
retry:
  attempts: 1
  delay: 10ms
confirmDelay: 0s
`), 0o600))

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.True(cfg.Debug)
	s.Equal("http://localhost:1317", cfg.Network.LcdUrl)
	s.Equal("xion-testnet-1", cfg.Network.ChainId)
	s.Equal(1, cfg.Retry.Attempts)
	s.Equal(10*time.Millisecond, cfg.Retry.Delay)
	s.Equal(time.Duration(0), cfg.ConfirmDelay)
}

func (s *configSuite) TestInvalid() {
	s.T().Setenv("NETWORK", "devnet")
	_, err := Load("")
	s.True(errors.Is(err, domain.ErrInvalidInput))

	viper.Reset()
	s.T().Setenv("NETWORK", "testnet")
	s.T().Setenv("MARKETPLACE_ADDRESS", "0xdeadbeef")
	_, err = Load("")
	s.True(errors.Is(err, domain.ErrInvalidInput))
}

func (s *configSuite) TestMarketplaceAddress() {
	cfg := &Config{
		Network: networks[NetworkTestnet],
		Contracts: Contracts{
			Marketplace:      marketAddr,
			SingleCollection: singleAddr,
		},
	}

	tests := []struct {
		desc    string
		variant string
		exp     domain.Address
		expErr  bool
	}{
		{desc: "default is open", variant: "", exp: marketAddr},
		{desc: "open", variant: "open", exp: marketAddr},
		{desc: "single", variant: "single", exp: singleAddr},
		{desc: "permissioned not configured", variant: "permissioned", expErr: true},
		{desc: "literal address", variant: nftAddr, exp: nftAddr},
		{desc: "literal garbage", variant: "xion1nope", expErr: true},
	}
	for _, t := range tests {
		addr, err := cfg.MarketplaceAddress(t.variant)
		if t.expErr {
			s.True(errors.Is(err, domain.ErrInvalidInput), t.desc)
			continue
		}
		s.NoError(err, t.desc)
		s.Equal(t.exp, addr, t.desc)
	}
}

func (s *configSuite) TestNftContract() {
	cfg := &Config{Network: networks[NetworkTestnet]}
	_, err := cfg.NftContract("")
	s.True(errors.Is(err, domain.ErrInvalidInput))

	cfg.Contracts.NftContract = nftAddr
	addr, err := cfg.NftContract("")
	s.NoError(err)
	s.Equal(domain.Address(nftAddr), addr)

	addr, err = cfg.NftContract(marketAddr)
	s.NoError(err)
	s.Equal(domain.Address(marketAddr), addr)
}
