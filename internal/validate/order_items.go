package validate

import "fmt"

// OrderItems validates the items list of an order payload. It mirrors the
// schema check contract: every violation is reported, indexed by position.
func OrderItems(payload map[string]any) []string {
	raw, present := payload["items"]
	items, ok := raw.([]any)
	if !present || !ok || len(items) == 0 {
		return []string{"items is required (array) and must contain at least 1 item"}
	}

	var errs []string
	for idx, el := range items {
		item, ok := el.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("items[%d] must be an object", idx))
			continue
		}

		if id, present := item["menuItemId"]; present && id != nil {
			s, ok := id.(string)
			if !ok || !IsObjectID(s) {
				errs = append(errs, fmt.Sprintf("items[%d].menuItemId must be a valid ObjectId string if provided", idx))
			}
		}

		if name, _ := item["name"].(string); name == "" {
			errs = append(errs, fmt.Sprintf("items[%d].name is required (string)", idx))
		}

		if qty, ok := item["qty"].(float64); !ok || qty <= 0 {
			errs = append(errs, fmt.Sprintf("items[%d].qty is required (number > 0)", idx))
		}

		if price, ok := item["price"].(float64); !ok || price < 0 {
			errs = append(errs, fmt.Sprintf("items[%d].price is required (number >= 0)", idx))
		}
	}
	return errs
}
