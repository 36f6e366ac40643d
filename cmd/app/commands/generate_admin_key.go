package commands

import (
	"encoding/json"
	"fmt"
	"io"

	authService "github.com/estudiomov/linkgate/internal/auth/service"
)

// RunGenerateAdminKey mints a new admin API key and prints the plain key
// together with its Argon2id hash. The plain key is shown once; the hash goes
// into the ADMIN_API_KEY_HASH environment variable.
func RunGenerateAdminKey(apiKeyService authService.APIKeyService, out io.Writer, format string) error {
	plainKey, hashedKey, err := apiKeyService.GenerateKey()
	if err != nil {
		return fmt.Errorf("failed to generate admin key: %w", err)
	}

	if format == "json" {
		result := map[string]string{
			"key":  plainKey,
			"hash": hashedKey,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
		return nil
	}

	fmt.Fprintln(out, "Admin API key generated. The plain key is shown only once.")
	fmt.Fprintf(out, "Key:  %s\n", plainKey)
	fmt.Fprintf(out, "Hash: %s\n", hashedKey)
	fmt.Fprintln(out, "Set ADMIN_API_KEY_HASH to the hash value to enable the admin API.")
	return nil
}
