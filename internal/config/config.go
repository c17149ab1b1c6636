package config

import "github.com/spf13/viper"

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Pricing struct {
		Currency string
	} `mapstructure:"pricing"`

	// Параметры биллинга при возврате машины (чек-ин).
	Handover struct {
		IncludedKm     float64 `mapstructure:"included_km"`
		LateFeePerHour float64 `mapstructure:"late_fee_per_hour"`
		ExtraKmFee     float64 `mapstructure:"extra_km_fee"`
	} `mapstructure:"handover"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	// Позже можно будет переопределять через ENV (APP_*), если надо
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("pricing.currency", "BAM")
	v.SetDefault("handover.included_km", 400.0)
	v.SetDefault("handover.late_fee_per_hour", 15.0)
	v.SetDefault("handover.extra_km_fee", 0.25)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
