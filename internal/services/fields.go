package services

// Accessors for loosely typed records decoded from external JSON.

func stringField(record map[string]any, key string) string {
	if record == nil {
		return ""
	}
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}

func mapField(record map[string]any, key string) map[string]any {
	if record == nil {
		return nil
	}
	if v, ok := record[key].(map[string]any); ok {
		return v
	}
	return nil
}

// nameTag finds the Name tag in an EC2-style tag list.
func nameTag(tags any) string {
	list, ok := tags.([]any)
	if !ok {
		return ""
	}
	for _, entry := range list {
		tag, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if key, _ := tag["Key"].(string); key == "Name" {
			value, _ := tag["Value"].(string)
			return value
		}
	}
	return ""
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
