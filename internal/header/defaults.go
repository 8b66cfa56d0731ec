package header

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	DefaultVersion = 2
	DefaultWidth   = 80
	DefaultHeight  = 24
	FallbackShell  = "/bin/bash"
	FallbackTerm   = "xterm-256color"
)

var (
	// RequiredKeys are the header keys every normalized header carries, in
	// the order they are written.
	RequiredKeys = []string{"version", "width", "height", "timestamp", "env"}
	// RequiredEnvKeys are the keys every "env" object carries.
	RequiredEnvKeys = []string{"SHELL", "TERM"}
)

// Config is a header object with keys kept in document order. Values are
// the raw JSON of each member.
type Config = orderedmap.OrderedMap[string, json.RawMessage]

// Defaults supplies the values used for missing header keys.
type Defaults struct {
	Width  int
	Height int
	Shell  string
	Term   string
	// Now is the clock used for "timestamp".
	Now func() time.Time
}

// NewDefaults returns the standard defaults, with shell and terminal taken
// from $SHELL and $TERM when set.
func NewDefaults() Defaults {
	return Defaults{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Shell:  envOr("SHELL", FallbackShell),
		Term:   envOr("TERM", FallbackTerm),
		Now:    time.Now,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Config builds a complete default header.
func (d Defaults) Config() *Config {
	cfg := orderedmap.New[string, json.RawMessage]()
	for _, key := range RequiredKeys {
		cfg.Set(key, d.value(key))
	}
	return cfg
}

func (d Defaults) value(key string) json.RawMessage {
	switch key {
	case "version":
		return json.RawMessage(strconv.Itoa(DefaultVersion))
	case "width":
		return json.RawMessage(strconv.Itoa(d.Width))
	case "height":
		return json.RawMessage(strconv.Itoa(d.Height))
	case "timestamp":
		now := time.Now
		if d.Now != nil {
			now = d.Now
		}
		return json.RawMessage(strconv.FormatInt(now().Unix(), 10))
	case "env":
		env := orderedmap.New[string, json.RawMessage]()
		for _, k := range RequiredEnvKeys {
			env.Set(k, d.envValue(k))
		}
		raw, _ := encodeCompact(env)
		return raw
	}
	return json.RawMessage("null")
}

func (d Defaults) envValue(key string) json.RawMessage {
	var s string
	switch key {
	case "SHELL":
		s = d.Shell
	case "TERM":
		s = d.Term
	}
	raw, _ := marshalString(s)
	return raw
}
