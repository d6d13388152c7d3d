package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "SHOP_CONFIG_FILE"

type checkout struct {
	PaymentDelay     time.Duration `mapstructure:"payment_delay"`
	TaxRate          float64       `mapstructure:"tax_rate"`
	ShippingFlatCost float64       `mapstructure:"shipping_flat_cost"`
}

type Config struct {
	LogLevel       slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr string        `mapstructure:"http_server_addr"`
	CatalogFile    string        `mapstructure:"catalog_file"`
	StoragePath    string        `mapstructure:"storage_path"`
	FetchDelay     time.Duration `mapstructure:"fetch_delay"`
	Checkout       checkout      `mapstructure:"checkout"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	CatalogFile=%q
	StoragePath=%q
	FetchDelay=%q

	Checkout:
	PaymentDelay=%q
	TaxRate=%v
	ShippingFlatCost=%v

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.CatalogFile,
		c.StoragePath,
		c.FetchDelay,
		c.Checkout.PaymentDelay,
		c.Checkout.TaxRate,
		c.Checkout.ShippingFlatCost,
	)
}
