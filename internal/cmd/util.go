package cmd

import (
	"errors"
	"os"

	"src.d10.dev/command"
	"src.d10.dev/command/config"

	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/xrpldata"
	"github.com/xumm-community/xc/xumm"
)

// configString reads a top-level key from the configuration file.  No
// configuration file is not an error, dfault is returned.
func configString(key, dfault string) (string, error) {
	cfg, err := command.Config()
	if err != nil {
		if errors.Is(err, config.ConfigNotFound) {
			err = nil
		}
		return dfault, err
	}
	return cfg.Section("").Key(key).MustString(dfault), nil
}

func Rippled(testnet bool) (string, error) {
	key, dfault := "rippled", rpc.Mainnet
	if testnet {
		key, dfault = "rippled_testnet", rpc.Testnet
	}
	rippled, err := configString(key, dfault)
	if err == nil && rippled == "" {
		err = errors.New("rippled websocket address not found in configuration file")
	}
	return rippled, err
}

func XrplData() (string, error) {
	val, err := configString("xrpldata", xrpldata.DefaultBase)
	if err == nil && val == "" {
		err = errors.New("xrpldata api address not found in configuration file")
	}
	return val, err
}

// Xumm returns a platform API client.  Credentials come from the
// configuration file, or else the environment (XUMM_API_KEY,
// XUMM_API_SECRET).
func Xumm() (*xumm.Client, error) {
	base, err := configString("xumm", xumm.DefaultBase)
	if err != nil {
		return nil, err
	}
	key, err := configString("xumm_key", os.Getenv("XUMM_API_KEY"))
	if err != nil {
		return nil, err
	}
	secret, err := configString("xumm_secret", os.Getenv("XUMM_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return xumm.NewClient(base, key, secret)
}

// DefaultAccount is the "account" configured, or "".
func DefaultAccount() (string, error) {
	return configString("account", "")
}
