package config

import (
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SettingsFilePath returns where the optional settings file is looked up
func (s *Settings) SettingsFilePath() string {
	if s.ConfigFile != "" {
		return s.ConfigFile
	}
	return filepath.Join(s.StateDir, ConfigName+".yaml")
}

// Describe uses reflection to list every effective setting by its file key.
// This automatically stays in sync when new fields are added to Settings.
func (s *Settings) Describe() map[string]any {
	v := reflect.ValueOf(*s)
	t := v.Type()
	out := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("mapstructure")
		name := strings.Split(tag, ",")[0]
		if name == "" || name == "-" {
			continue
		}
		out[name] = v.Field(i).Interface()
	}

	return out
}

// DescribeKeys returns Describe's keys in a stable order
func DescribeKeys(m map[string]any) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
