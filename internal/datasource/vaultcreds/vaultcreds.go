// Package vaultcreds resolves datasource API credentials from Vault, so
// tokens never have to live in the environment on shared hosts.
package vaultcreds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	vaultapi "github.com/hashicorp/vault/api"

	"github.com/soclens/soclens/internal/config"
)

// KV field names expected at the configured secret path.
const (
	FieldSIEMToken         = "siem_api_token"
	FieldSonicWallPassword = "sonicwall_password"
)

// Resolve fills missing datasource credentials from Vault when VAULT_ADDR
// is configured. Values already present in cfg win; Vault only backfills.
func Resolve(ctx context.Context, cfg config.Config) (config.Config, error) {
	if strings.TrimSpace(cfg.VaultAddr) == "" {
		return cfg, nil
	}
	if strings.TrimSpace(cfg.VaultToken) == "" {
		return cfg, errors.New("VAULT_TOKEN is required when VAULT_ADDR is set")
	}

	vcfg := vaultapi.DefaultConfig()
	vcfg.Address = cfg.VaultAddr

	client, err := vaultapi.NewClient(vcfg)
	if err != nil {
		return cfg, fmt.Errorf("vault client: %w", err)
	}
	client.SetToken(cfg.VaultToken)

	secret, err := client.Logical().ReadWithContext(ctx, cfg.VaultSecretPath)
	if err != nil {
		return cfg, fmt.Errorf("vault read %s: %w", cfg.VaultSecretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return cfg, fmt.Errorf("vault secret %s not found", cfg.VaultSecretPath)
	}

	fields := kvFields(secret.Data)
	if cfg.SIEMAPIToken == "" {
		cfg.SIEMAPIToken = fields[FieldSIEMToken]
	}
	if cfg.SonicWallPassword == "" {
		cfg.SonicWallPassword = fields[FieldSonicWallPassword]
	}
	return cfg, nil
}

// kvFields flattens a KV response, accepting both KV v1 and v2 layouts.
func kvFields(data map[string]any) map[string]string {
	if nested, ok := data["data"].(map[string]any); ok {
		data = nested
	}
	out := make(map[string]string, len(data))
	for key, value := range data {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}
