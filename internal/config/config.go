package config

import (
	"os"

	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort        string
	SQLiteDSN       string
	MachineBalance  decimal.Decimal
	StartingBalance decimal.Decimal
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match the machine's factory settings.
	env := Config{
		HTTPPort:        "9446",
		SQLiteDSN:       ":memory:",
		MachineBalance:  decimal.NewFromInt(200),
		StartingBalance: decimal.NewFromInt(100),
	}

	envHTTPPort := os.Getenv("HTTP_PORT")
	envSQLiteDSN := os.Getenv("SQLITE_DSN")
	envMachineBalance := os.Getenv("MACHINE_BALANCE")
	envStartingBalance := os.Getenv("STARTING_BALANCE")

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envSQLiteDSN) != 0 {
		env.SQLiteDSN = envSQLiteDSN
	}

	if len(envMachineBalance) != 0 {
		balance, err := decimal.NewFromString(envMachineBalance)
		if err != nil {
			return nil, err
		}
		env.MachineBalance = balance
	}

	if len(envStartingBalance) != 0 {
		balance, err := decimal.NewFromString(envStartingBalance)
		if err != nil {
			return nil, err
		}
		env.StartingBalance = balance
	}

	return &env, nil
}
