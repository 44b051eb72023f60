package warmtransfer

import (
	"fmt"

	"github.com/akerl/go-lambda/s3"
	"github.com/ghodss/yaml"
)

// RoutingRules maps Amazon Connect queue names to warm transfer
// destinations. Contacts in queues without an override go to the
// default destination.
type RoutingRules struct {
	Default string            `json:"default"`
	Queues  map[string]string `json:"queues"`
}

// Destination resolves the transfer endpoint for a queue name.
func (r *RoutingRules) Destination(queue string) string {
	if u, ok := r.Queues[queue]; ok {
		return u
	}
	return r.Default
}

// loadRoutingRules fetches and parses the YAML rules document from S3.
func loadRoutingRules(bucket string, key string) (*RoutingRules, error) {
	obj, err := s3.GetObject(bucket, key)
	if err != nil {
		return nil, fmt.Errorf("loading routing rules from s3://%s/%s: %w", bucket, key, err)
	}
	rules := &RoutingRules{}
	if err := yaml.Unmarshal(obj, rules); err != nil {
		return nil, fmt.Errorf("parsing routing rules: %w", err)
	}
	return rules, nil
}
