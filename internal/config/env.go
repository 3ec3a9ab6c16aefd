// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Field names come from the
// `env` and `envPrefix` tags on [StructuredConfig], so APP_TOKEN_SIGN_KEY
// lands in App.TokenSignKey and STORAGE_DB_DATABASE_URI in Storage.DB.DSN.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
