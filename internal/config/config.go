package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	ThinkingDelay time.Duration `yaml:"thinking-delay" env:"THINKING_DELAY" env-default:"800ms"`
	Seed          uint64        `yaml:"seed" env:"SEED" env-default:"0"`
	Redis         Redis         `yaml:"redis"`
	Exhibition    Exhibition    `yaml:"exhibition"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Exhibition configures the computer-only games run at startup.
type Exhibition struct {
	Games       []string `yaml:"games" env:"EXHIBITION_GAMES" env-default:"chess,checkers,reversi,morris,connect-four,ludo,tictactoe,snakes-and-ladders"`
	Rounds      int      `yaml:"rounds" env:"EXHIBITION_ROUNDS" env-default:"1"`
	LudoPlayers int      `yaml:"ludo-players" env:"EXHIBITION_LUDO_PLAYERS" env-default:"4"`
	MaxMoves    int      `yaml:"max-moves" env:"EXHIBITION_MAX_MOVES" env-default:"500"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
