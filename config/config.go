package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuning888/godeque/pkg/util"
)

const defaultCapacity = 16

type Properties struct {
	Impl          string `cfg:"impl"`
	Capacity      int    `cfg:"capacity"`
	Strict        bool   `cfg:"strict"`
	LogLevel      string `cfg:"loglevel"`
	LogPath       string `cfg:"logpath"`
	EnableFileLog bool   `cfg:"enablefilelog"`

	// config file path
	CfPath string `cfg:"cf,omitempty"`
}

func Default() *Properties {
	return &Properties{
		Impl:     "ring",
		Capacity: defaultCapacity,
		LogLevel: "info",
		LogPath:  ".",
	}
}

// Parse reads `key value` lines on top of the defaults. Lines starting with
// '#' are comments; keys are case-insensitive.
func Parse(src io.Reader) (*Properties, error) {
	config := Default()

	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.TrimSpace(line[pivot+1:])
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err == nil {
				fieldVal.SetInt(intValue)
			}
		case reflect.Bool:
			fieldVal.SetBool("yes" == strings.ToLower(value))
		}
	}
	if config.Capacity < 0 {
		config.Capacity = 0
	}
	return config, nil
}

// Load parses filename. An empty filename yields the defaults.
func Load(filename string) (*Properties, error) {
	if filename == "" {
		return Default(), nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open config %s", filename)
	}
	defer util.Close(file)
	props, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", filename)
	}
	if abs, err := filepath.Abs(filename); err == nil {
		props.CfPath = abs
	}
	if props.LogPath == "" {
		props.LogPath = "."
	}
	return props, nil
}
