// Package config loads the store settings blob: contact numbers and social
// links the storefront reads once at startup. The blob is a small key-value
// file with no schema versioning; a missing file yields empty settings.
package config

import (
	"io"

	"github.com/spf13/viper"
)

// Settings holds the store-level contact and social configuration.
// The key names mirror the columns the store has always used.
type Settings struct {
	WhatsAppRetail   string `mapstructure:"whatsapp_varejo" json:"whatsapp_varejo,omitempty"`
	WhatsAppReseller string `mapstructure:"whatsapp_revenda" json:"whatsapp_revenda,omitempty"`
	Instagram        string `mapstructure:"instagram" json:"instagram,omitempty"`
	Facebook         string `mapstructure:"facebook" json:"facebook,omitempty"`
	Twitter          string `mapstructure:"twitter" json:"twitter,omitempty"`
	Website          string `mapstructure:"website" json:"website,omitempty"`
}

// SocialLinks returns only the public link fields, for the settings endpoint.
func (s *Settings) SocialLinks() map[string]string {
	links := map[string]string{}
	if s.Instagram != "" {
		links["instagram"] = s.Instagram
	}
	if s.Facebook != "" {
		links["facebook"] = s.Facebook
	}
	if s.Twitter != "" {
		links["twitter"] = s.Twitter
	}
	if s.Website != "" {
		links["website"] = s.Website
	}
	return links
}

// Load reads store settings from the given directory, looking for a
// store.yaml file. Values can be overridden with STORE_-prefixed
// environment variables. A missing file is not an error.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("store")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("store")
	v.AutomaticEnv()
	bindKeys(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return unmarshal(v)
}

// LoadFromReader parses settings from an in-memory YAML document.
func LoadFromReader(r io.Reader) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, err
	}
	return unmarshal(v)
}

// bindKeys makes AutomaticEnv see keys that never appear in the file.
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"whatsapp_varejo", "whatsapp_revenda",
		"instagram", "facebook", "twitter", "website",
	} {
		_ = v.BindEnv(key)
	}
}

func unmarshal(v *viper.Viper) (*Settings, error) {
	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, err
	}
	return s, nil
}
