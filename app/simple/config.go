package simple

import (
	"github.com/dmitrymomot/gateway/core/gateway"
)

type Config struct {
	Gateway gateway.Config

	AppName        string `env:"APP_NAME" envDefault:"gateway-demo"`
	Env            string `env:"APP_ENV" envDefault:"development"`
	StreamRequests bool   `env:"STREAM_REQUESTS" envDefault:"false"`
}
