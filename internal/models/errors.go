package models

import "fmt"

// ConfigError reports malformed or missing static content
type ConfigError struct {
	Table string
	Key   string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config %s: %s", e.Table, e.Msg)
	}
	return fmt.Sprintf("config %s[%s]: %s", e.Table, e.Key, e.Msg)
}
