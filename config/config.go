package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath            = "."
	defaultAPITimeout      = 30 * time.Second
	defaultMockLatency     = 500 * time.Millisecond
	defaultPollInterval    = 30 * time.Second
	defaultRecencyWindow   = 24 * time.Hour
	defaultEventBufferSize = 100
	defaultSessionFileName = "session.json"
	defaultPrefsFileName   = "app_config.json"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API configures the connection to the SmileLink REST backend and the
	// mock/live switch for every data-source implementation.
	API APIConfig `json:"api" yaml:"api"`

	// Storage locates the client-local key-value files (session principal,
	// free-form preferences blob).
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Notifications configures the change poller.
	Notifications NotificationsConfig `json:"notifications" yaml:"notifications"`

	// HTTP configures the local status server.
	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`
}

// APIConfig defines backend connection settings.
type APIConfig struct {
	// BaseURL is the backend root, e.g. "http://192.168.1.20:8000/api".
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// UseMock switches every repository to the in-memory data source.
	UseMock bool `json:"useMock" yaml:"useMock"`

	// Timeout is the fixed transport-level ceiling for every request.
	// No per-call timeouts, retries, or backoff exist at this layer.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MockLatency is the artificial delay applied by the mock data source so
	// loading states can be exercised without a backend. Zero in tests.
	MockLatency time.Duration `json:"mockLatency" yaml:"mockLatency"`

	// AssetHost, when set, replaces loopback hosts in URLs returned by the
	// backend so uploaded assets stay reachable from other devices.
	AssetHost string `json:"assetHost" yaml:"assetHost"`
}

// StorageConfig locates client-local persisted state.
type StorageConfig struct {
	// Dir holds the session and preferences files. Defaults to the user
	// config dir when empty.
	Dir string `json:"dir" yaml:"dir"`
}

// NotificationsConfig defines the poller cadence and emission rules.
type NotificationsConfig struct {
	// Interval between polling cycles. There is no overlap guard: a cycle
	// slower than the interval can overlap the next one.
	Interval time.Duration `json:"interval" yaml:"interval"`

	// RecencyWindow bounds how old a sponsorship's start date may be for the
	// "new sponsorship" event to fire.
	RecencyWindow time.Duration `json:"recencyWindow" yaml:"recencyWindow"`

	// EventBufferSize caps the in-memory ring of recent events served by the
	// status endpoint.
	EventBufferSize int `json:"eventBufferSize" yaml:"eventBufferSize"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
	// Note: ClientSecret is not needed here; the ID token is forwarded to
	// the backend, which performs the authoritative verification.
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.Timeout <= 0 {
		c.API.Timeout = defaultAPITimeout
	}
	if c.API.MockLatency <= 0 {
		c.API.MockLatency = defaultMockLatency
	}
	if c.Notifications.Interval <= 0 {
		c.Notifications.Interval = defaultPollInterval
	}
	if c.Notifications.RecencyWindow <= 0 {
		c.Notifications.RecencyWindow = defaultRecencyWindow
	}
	if c.Notifications.EventBufferSize <= 0 {
		c.Notifications.EventBufferSize = defaultEventBufferSize
	}
	if strings.TrimSpace(c.Storage.Dir) == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			c.Storage.Dir = filepath.Join(dir, "smilelink")
		} else {
			c.Storage.Dir = "."
		}
	}
}

// SessionPath returns the session file location.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Storage.Dir, defaultSessionFileName)
}

// PrefsPath returns the preferences blob location.
func (c *Config) PrefsPath() string {
	return filepath.Join(c.Storage.Dir, defaultPrefsFileName)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
