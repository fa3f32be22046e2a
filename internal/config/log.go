package config

type Log struct {
	Level string `env:"SLCSP_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	Color bool   `env:"SLCSP_LOG_COLOR" envDefault:"false"`
}
