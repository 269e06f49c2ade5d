package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// Load reads <name>.yaml from the first directory that has it, then applies
// environment overrides. SEARCH_SCAN_WINDOW and SEARCH_SCANWINDOW both set
// search.scanWindow.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	known := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, known), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(filename string, dirs []string) (string, error) {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", filename, strings.Join(dirs, ", "))
}

// canonicalizeEnvKey maps an environment variable onto the key path used in
// the YAML file. Adjacent segments are merged when together they name a known
// key, so RESULT_LIMIT resolves to resultLimit. Segments that match nothing
// are kept lower-cased.
func canonicalizeEnvKey(rawKey string, known map[string]any) string {
	var segments []string
	for _, s := range strings.Split(rawKey, "_") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	path := make([]string, 0, len(segments))
	level := known
	for i := 0; i < len(segments); {
		key, child, width := matchKey(level, segments[i:])
		if width == 0 {
			path = append(path, strings.ToLower(segments[i]))
			level = nil
			i++

			continue
		}

		path = append(path, key)
		level = child
		i += width
	}

	return strings.Join(path, ".")
}

// matchKey returns the key in level spelled by the longest run of leading
// segments, with its nested map and the number of segments consumed.
func matchKey(level map[string]any, segments []string) (key string, child map[string]any, width int) {
	if len(level) == 0 {
		return "", nil, 0
	}

	index := make(map[string]string, len(level))
	for k := range level {
		index[normalizeToken(k)] = k
	}

	for n := len(segments); n > 0; n-- {
		if k, ok := index[normalizeToken(strings.Join(segments[:n], ""))]; ok {
			child, _ = level[k].(map[string]any)

			return k, child, n
		}
	}

	return "", nil, 0
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without a host and port.
func replicasFromEnv(lookup func(string) (string, bool)) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		get := func(field string) string {
			v, _ := lookup("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)

			return v
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
