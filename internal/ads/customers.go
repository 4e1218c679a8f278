package ads

import (
	"context"
	"fmt"
	"strings"
)

// ListAccessibleCustomers returns the resource names of the customers the
// authenticated user can access directly, e.g. "customers/1234567890".
func (c *Client) ListAccessibleCustomers(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/%s/customers:listAccessibleCustomers", c.endpoint, APIVersion)
	var out struct {
		ResourceNames []string `json:"resourceNames"`
	}
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	return out.ResourceNames, nil
}

// CustomerIDFromResourceName strips the "customers/" prefix from a customer
// resource name.
func CustomerIDFromResourceName(name string) string {
	return strings.TrimPrefix(name, "customers/")
}
