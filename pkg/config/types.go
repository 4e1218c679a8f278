package config

import (
	"encoding/json"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// StringToSliceHookFunc converts values supplied as JSON arrays in string
// form, which is how list values arrive from environment variables, into
// slices. Strings that do not parse as JSON pass through unchanged.
func StringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Kind, t reflect.Kind, data interface{}) (interface{}, error) {
		if f != reflect.String || t != reflect.Slice {
			return data, nil
		}

		raw := data.(string)
		if raw == "" {
			return []string{}, nil
		}

		var result any
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			return data, nil
		}
		if reflect.TypeOf(result).Kind() != t {
			return data, nil
		}
		return result, nil
	}
}

// CompositeDecodeHook combines the decode hooks Load applies.
func CompositeDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		StringToSliceHookFunc(),
	)
}

func decoderConfig() viper.DecoderConfigOption {
	return viper.DecodeHook(CompositeDecodeHook())
}
