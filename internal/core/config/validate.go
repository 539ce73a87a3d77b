package config

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"blocpad/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("locale", c.Locale, localeSupported),
		criterio.Run("data_dir", c.DataDir, notEmpty),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func localeSupported(locale string) error {
	switch locale {
	case LocaleEN, LocaleES:
		return nil
	}
	return fmt.Errorf("unsupported locale %q (available: %s, %s)", locale, LocaleEN, LocaleES)
}

func notEmpty(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}
