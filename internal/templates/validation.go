package templates

import "strings"

func uniqueStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, val := range values {
		key := strings.TrimSpace(val)
		if key == "" {
			continue
		}
		key = strings.ToLower(key)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, strings.TrimSpace(val))
	}
	return result
}

func validateRequired(required []string, data map[string]any) error {
	if len(required) == 0 {
		return nil
	}
	missing := make([]string, 0)
	for _, field := range required {
		if !hasField(data, field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return SchemaError{Missing: missing}
	}
	return nil
}

func hasField(data map[string]any, path string) bool {
	if len(data) == 0 || path == "" {
		return false
	}
	current := any(data)
	for _, part := range strings.Split(path, ".") {
		switch typed := current.(type) {
		case map[string]any:
			val, ok := typed[part]
			if !ok {
				return false
			}
			current = val
		default:
			return false
		}
	}
	return current != nil
}

func cloneData(input map[string]any) map[string]any {
	if len(input) == 0 {
		return make(map[string]any)
	}
	out := make(map[string]any, len(input))
	for k, v := range input {
		out[k] = v
	}
	return out
}
