package config

type Input struct {
	PlansPath   string `env:"SLCSP_PLANS_PATH" envDefault:"data/plans.csv" validate:"required"`
	ZipsPath    string `env:"SLCSP_ZIPS_PATH" envDefault:"data/zips.csv" validate:"required"`
	QueriesPath string `env:"SLCSP_QUERIES_PATH" envDefault:"data/slcsp.csv" validate:"required"`
}
