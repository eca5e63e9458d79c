package changewallpaperlib

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/awused/awconf"
)

const configName = "random-wallpaper"

type Config struct {
	// One of the built-in setters, see presets
	Setter string
	// Overrides Setter. {path} and {uri} are substituted, if neither is present
	// the path is appended.
	Command []string
	LogFile string
}

var conf *Config
var debug bool
var logFile *os.File

func GetConfig() (*Config, error) {
	if conf != nil {
		return conf, nil
	}

	return nil, fmt.Errorf("Init never called")
}

func Debugf(format string, v ...interface{}) {
	if debug {
		log.Printf(format, v...)
	}
}

// Be sure to defer Cleanup() after calling this
// An empty configFile means the named config is looked up with awconf and
// defaults are used when none is found.
func Init(configFile string, enableDebug bool, logOutput io.Writer) (*Config, error) {
	debug = enableDebug
	log.SetOutput(logOutput)

	c, err := loadConfig(configFile)
	if err != nil {
		return nil, err
	}

	if err = c.validate(); err != nil {
		return nil, err
	}

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("Error opening log file [%s]: %w", c.LogFile, err)
		}
		logFile = f
		log.SetOutput(f)
	}

	conf = c
	return c, nil
}

func Cleanup() error {
	conf = nil
	debug = false
	log.SetOutput(os.Stderr)

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// awconf has no sentinel for a missing file
const awconfNotFound = "Unable to find config file"

var configKeys = []string{"Setter", "Command", "LogFile"}

func loadConfig(configFile string) (*Config, error) {
	c := &Config{}

	if configFile == "" {
		return discoverConfig()
	}

	md, err := toml.DecodeFile(configFile, c)
	if err != nil {
		return nil, fmt.Errorf("Error reading config [%s]: %w", configFile, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, unknownKeysError(configFile, keys)
	}

	return c, nil
}

// Only a missing file falls back to the defaults, a file that was found
// must decode cleanly.
func discoverConfig() (*Config, error) {
	raw := map[string]interface{}{}
	if err := awconf.LoadConfig(configName, &raw); err != nil {
		if strings.Contains(err.Error(), awconfNotFound) {
			Debugf("No config loaded, using defaults: %s", err)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("Error reading config [%s]: %w", configName, err)
	}

	var unknown []string
	for k := range raw {
		if !isConfigKey(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, unknownKeysError(configName, unknown)
	}

	c := &Config{}
	if err := awconf.LoadConfig(configName, c); err != nil {
		return nil, fmt.Errorf("Error reading config [%s]: %w", configName, err)
	}
	return c, nil
}

// Matches toml's case insensitive field lookup
func isConfigKey(k string) bool {
	for _, known := range configKeys {
		if strings.EqualFold(k, known) {
			return true
		}
	}
	return false
}

func unknownKeysError(config string, keys []string) error {
	return fmt.Errorf("Unknown keys in config [%s]: %s", config, strings.Join(keys, ", "))
}

func (c *Config) validate() error {
	if len(c.Command) > 0 {
		if c.Command[0] == "" {
			return fmt.Errorf("Config contains empty Command")
		}
	} else {
		if c.Setter == "" {
			c.Setter = defaultSetter
		}

		if c.Setter == systemSetterName {
			if !hasSystemSetter {
				return fmt.Errorf("Setter [%s] is only available on Windows", c.Setter)
			}
		} else if _, ok := presets[c.Setter]; !ok {
			return fmt.Errorf("Config contains unknown Setter [%s]", c.Setter)
		}
	}

	if c.LogFile != "" {
		fi, err := os.Stat(c.LogFile)
		if err == nil && fi.IsDir() {
			return fmt.Errorf("LogFile [%s] is a directory", c.LogFile)
		} else if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf(
				"Error calling os.Stat on LogFile [%s]: %w", c.LogFile, err)
		}
	}

	return nil
}
