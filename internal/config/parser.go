package config

import "strings"

// Parse turns config file lines into a key/value map. Blank lines and
// comment lines are skipped; values may carry inline comments and may be
// double-quoted to preserve spaces.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Quoted values keep their content verbatim, inline comments and all.
		if strings.HasPrefix(value, "\"") {
			if end := strings.LastIndex(value[1:], "\""); end >= 0 {
				value = value[1 : end+1]
			}
		} else if idx := strings.Index(value, "#"); idx >= 0 {
			value = strings.TrimSpace(value[:idx])
		}

		cfg[key] = value
	}

	return cfg, nil
}
