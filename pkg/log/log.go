package log

import (
	hclog "github.com/hashicorp/go-hclog"

	"github.com/carved4/go-rawcall/pkg/config"
)

var L hclog.Logger

func init() {
	c := config.Load()

	level := hclog.LevelFromString(c.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	L = hclog.New(&hclog.LoggerOptions{
		Name:  "rawcall",
		Level: level,
	})

	if c.Trace {
		L.SetLevel(hclog.Trace)
	}
}
