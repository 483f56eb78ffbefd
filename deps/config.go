package deps

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/divideandconquer/go-merge/merge"
	"github.com/fsnotify/fsnotify"
	"github.com/olebedev/config"
	"github.com/subosito/gotenv"
)

// Defaults are overridden by the env file and then by environment variables
// (DATABASE_URI for database.uri and so on).
var Defaults = map[string]interface{}{
	"environment": "development",
	"application": map[string]interface{}{
		"root": ".",
	},
	"database": map[string]interface{}{
		"uri":  "mongodb://localhost:27017",
		"name": "orders",
	},
	"cache": map[string]interface{}{
		"redis": "",
		"ttl":   60,
	},
	"sentry": map[string]interface{}{
		"dsn": "",
	},
	"newrelic": map[string]interface{}{
		"app":     "orders",
		"license": "",
	},
	"log": map[string]interface{}{
		"level": "INFO",
	},
	"http": map[string]interface{}{
		"port": ":3200",
	},
	"dashboard": map[string]interface{}{
		"api_url": "http://localhost:3200/api/orders",
	},
}

// EnvFile returns the config file in use, ENV_FILE or ./env.json.
func EnvFile() string {
	envfile := os.Getenv("ENV_FILE")
	if envfile == "" {
		envfile = "./env.json"
	}
	return envfile
}

func IgniteConfig(container Deps) (Deps, error) {
	if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warningf("could not load .env	err=%v", err)
	}

	conf, err := LoadConfig(EnvFile())
	if err != nil {
		return container, err
	}
	container.ConfigProvider = conf
	return container, nil
}

// LoadConfig merges the given file over Defaults. A missing file leaves the
// defaults in place, json and toml files are accepted.
func LoadConfig(file string) (*config.Config, error) {
	values := map[string]interface{}{}
	switch _, err := os.Stat(file); {
	case os.IsNotExist(err):
		log.Warningf("config file not found, using defaults	file=%s", file)
	case err != nil:
		return nil, err
	case filepath.Ext(file) == ".toml":
		if _, err := toml.DecodeFile(file, &values); err != nil {
			return nil, err
		}
	default:
		parsed, err := config.ParseJsonFile(file)
		if err != nil {
			return nil, err
		}
		if root, ok := parsed.Root.(map[string]interface{}); ok {
			values = root
		}
	}

	merged, _ := merge.Merge(copyMap(Defaults), values).(map[string]interface{})
	conf := &config.Config{Root: merged}
	return conf.Env(), nil
}

// WatchConfig calls fn with the reloaded config every time file is written.
func WatchConfig(file string, fn func(*config.Config)) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write != fsnotify.Write {
					continue
				}
				conf, err := LoadConfig(event.Name)
				if err != nil {
					log.Errorf("config reload failed	file=%s err=%v", event.Name, err)
					continue
				}
				log.Infof("config reloaded	file=%s", event.Name)
				fn(conf)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Errorf("config watcher	err=%v", err)
			}
		}
	}()
	if err := watcher.Add(file); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]interface{}); ok {
			v = copyMap(nested)
		}
		out[k] = v
	}
	return out
}
