package logging

import "go.uber.org/zap"

func zapFields(fields []Fields) []zap.Field {
	var out []zap.Field
	for _, m := range fields {
		for key, value := range m {
			if key == "" {
				continue
			}
			out = append(out, zap.Any(key, value))
		}
	}
	return out
}
