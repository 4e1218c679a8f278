package conf

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/jacsander/google-ads-mcp-server/pkg/config"
)

const (
	AppName          = "google-ads-mcp"
	ServerConfigName = "google-ads-mcp-server"
	EnvConfigDir     = "GOOGLE_ADS_MCP_DIR"

	// CredentialsFileName is written by the token command and read back
	// when the environment does not provide a refresh token.
	CredentialsFileName = "oauth_credentials.json"
)

// envBindings maps config keys to the environment variables the deployment
// environments set. These names are fixed by existing deployments, so no
// viper prefix magic applies.
var envBindings = map[string]string{
	"developer_token":   "GOOGLE_ADS_DEVELOPER_TOKEN",
	"client_id":         "GOOGLE_ADS_CLIENT_ID",
	"client_secret":     "GOOGLE_ADS_CLIENT_SECRET",
	"refresh_token":     "GOOGLE_ADS_REFRESH_TOKEN",
	"login_customer_id": "GOOGLE_ADS_LOGIN_CUSTOMER_ID",
	"project_id":        "GOOGLE_PROJECT_ID",
	"port":              "PORT",
}

// LoadServerConfig loads the server configuration from file, environment
// and command-line overrides, in ascending precedence.
func LoadServerConfig(configPath string, cmdConf map[string]any) (*ServerConfig, *config.Manager, error) {

	if configPath == "" {
		configPath = os.Getenv(EnvConfigDir)
	}

	scm, err := config.New(AppName, configPath, ServerConfigName, "", false)
	if err != nil {
		log.Error().Err(err).Msg("load server config failed")
		return nil, nil, err
	}

	config.SetDefaults(scm.Viper, ServerDefaults)
	bindEnvs(scm.Viper)

	// Load cmd Conf
	for key, value := range cmdConf {
		scm.SetConfig(key, value)
	}

	conf := &ServerConfig{}
	if err := scm.Load(conf); err != nil {
		log.Error().Err(err).Msg("load server config failed")
		return nil, nil, err
	}

	// Load saved token command credentials
	if conf.RefreshToken == "" {
		if b, err := os.ReadFile(CredentialsFileName); err == nil {
			var pconf map[string]any
			if err := json.Unmarshal(b, &pconf); err == nil {
				for key, value := range pconf {
					if !CredentialsFileConfigs[key] {
						continue
					}
					scm.SetConfig(key, value)
				}
			}
		}
		if err := scm.Load(conf); err != nil {
			log.Error().Err(err).Msg("reload server config failed")
			return nil, nil, err
		}
	}

	b, _ := json.Marshal(conf.Masked())
	log.Info().Msgf("server config: %s", string(b))

	return conf, scm, nil
}

var CredentialsFileConfigs = map[string]bool{
	"client_id":     true,
	"client_secret": true,
	"refresh_token": true,
}

func bindEnvs(v *viper.Viper) {
	for key, env := range envBindings {
		v.BindEnv(key, env)
	}
}
