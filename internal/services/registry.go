package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// adapter binds one resource kind to its listing call, record extraction,
// projection and console deep link. Adapters are tagged records selected by
// kind from a fixed table; per-kind behavior lives in switches on the tag.
type adapter struct {
	kind       domain.ResourceKind
	command    []string // aws service subcommand
	projection string   // JMESPath --query expression
}

var adapterTable = map[domain.ResourceKind]adapter{
	domain.KindEC2: {
		kind:       domain.KindEC2,
		command:    []string{"ec2", "describe-instances"},
		projection: "Reservations[].Instances[]",
	},
	domain.KindRDS: {
		kind:       domain.KindRDS,
		command:    []string{"rds", "describe-db-instances"},
		projection: "DBInstances[]",
	},
	domain.KindLambda: {
		kind:       domain.KindLambda,
		command:    []string{"lambda", "list-functions"},
		projection: "Functions[]",
	},
	domain.KindDynamo: {
		kind:       domain.KindDynamo,
		command:    []string{"dynamodb", "list-tables"},
		projection: "TableNames[]",
	},
	domain.KindSFN: {
		kind:       domain.KindSFN,
		command:    []string{"stepfunctions", "list-state-machines"},
		projection: "stateMachines[]",
	},
	domain.KindSecret: {
		kind:       domain.KindSecret,
		command:    []string{"secretsmanager", "list-secrets"},
		projection: "SecretList[]",
	},
}

// buildInvocation assembles the full aws CLI argument vector.
func (a adapter) buildInvocation(profile, region string) []string {
	argv := append([]string{"aws"}, a.command...)
	return append(argv,
		"--profile", profile,
		"--region", region,
		"--query", a.projection,
		"--output", "json",
	)
}

// extractRecords decodes the listing payload into raw records. The table
// listing returns bare name strings; every other kind returns objects.
func (a adapter) extractRecords(payload []byte) ([]map[string]any, error) {
	if a.kind == domain.KindDynamo {
		var names []string
		if err := json.Unmarshal(payload, &names); err != nil {
			return nil, fmt.Errorf("decode %s listing: %w", a.kind, err)
		}
		records := make([]map[string]any, 0, len(names))
		for _, name := range names {
			records = append(records, map[string]any{"TableName": name})
		}
		return records, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode %s listing: %w", a.kind, err)
	}
	return records, nil
}

// projectRecord normalizes one raw record.
func (a adapter) projectRecord(raw map[string]any) domain.ResultRecord {
	switch a.kind {
	case domain.KindEC2:
		id := stringField(raw, "InstanceId")
		state := stringField(mapField(raw, "State"), "Name")
		return domain.ResultRecord{
			ID:     id,
			Name:   nameTag(raw["Tags"]),
			Detail: fmt.Sprintf("ID: %s | State: %s", orNA(id), orNA(state)),
		}
	case domain.KindRDS:
		id := stringField(raw, "DBInstanceIdentifier")
		return domain.ResultRecord{
			ID: id,
			Detail: fmt.Sprintf("Status: %s | Engine: %s",
				orNA(stringField(raw, "DBInstanceStatus")),
				orNA(stringField(raw, "Engine"))),
		}
	case domain.KindLambda:
		name := stringField(raw, "FunctionName")
		return domain.ResultRecord{
			ID:     name,
			Detail: fmt.Sprintf("Runtime: %s", orNA(stringField(raw, "Runtime"))),
		}
	case domain.KindDynamo:
		name := stringField(raw, "TableName")
		return domain.ResultRecord{
			ID:     name,
			Detail: fmt.Sprintf("Table Name: %s", name),
		}
	case domain.KindSFN:
		arn := stringField(raw, "stateMachineArn")
		return domain.ResultRecord{
			ID:     arn,
			Name:   stringField(raw, "name"),
			Detail: fmt.Sprintf("ARN: %s", arn),
		}
	case domain.KindSecret:
		name := stringField(raw, "Name")
		return domain.ResultRecord{
			ID:     name,
			Detail: fmt.Sprintf("Secret Name: %s", name),
		}
	default:
		return domain.ResultRecord{}
	}
}

// buildURL renders the console deep link for a projected record.
func (a adapter) buildURL(rec domain.ResultRecord, region string) string {
	switch a.kind {
	case domain.KindEC2:
		return fmt.Sprintf("https://%s.console.aws.amazon.com/ec2/v2/home?region=%s#InstanceDetails:instanceId=%s", region, region, rec.ID)
	case domain.KindRDS:
		return fmt.Sprintf("https://%s.console.aws.amazon.com/rds/home?region=%s#database:id=%s;is-cluster=false", region, region, rec.ID)
	case domain.KindLambda:
		return fmt.Sprintf("https://%s.console.aws.amazon.com/lambda/home?region=%s#/functions/%s?tab=code", region, region, rec.ID)
	case domain.KindDynamo:
		return fmt.Sprintf("https://%s.console.aws.amazon.com/dynamodbv2/home?region=%s#table?name=%s&tab=overview", region, region, rec.ID)
	case domain.KindSFN:
		return fmt.Sprintf("https://%s.console.aws.amazon.com/states/home?region=%s#/statemachines/view/%s", region, region, rec.ID)
	case domain.KindSecret:
		return fmt.Sprintf("https://%s.console.aws.amazon.com/secretsmanager/secret?name=%s&region=%s", region, rec.ID, region)
	default:
		return ""
	}
}

// Registry resolves resource listings through the cache and converts
// records or classified failures into feedback items.
type Registry struct {
	Cache  ports.CacheStore
	Runner ports.CommandRunner
	SSO    ports.SSOResolver
	Log    zerolog.Logger
}

// List returns the result items for one (kind, profile, region) listing,
// filtered by filterText. A classified failure replaces the whole list with
// remediation items; it is never mixed with partial results.
func (r *Registry) List(ctx context.Context, kind domain.ResourceKind, profile, region, filterText string) []domain.Item {
	ad, ok := adapterTable[kind]
	if !ok {
		return []domain.Item{unsupportedKindItem(string(kind))}
	}

	key := listingKey(kind, profile, region)
	payload, hit, err := r.Cache.Fetch(key, domain.DefaultCacheTTL, func() ([]byte, error) {
		return r.Runner.Run(ctx, ad.buildInvocation(profile, region))
	})
	if err != nil {
		cerr := Classify(diagnosticOf(err), profile)
		r.Log.Debug().Str("kind", string(kind)).Str("profile", profile).
			Int("class", int(cerr.Class)).Msg("listing failed")
		return remediationItems(cerr, r.SSO)
	}
	r.Log.Debug().Str("key", key).Bool("cache_hit", hit).Msg("listing resolved")

	records, err := ad.extractRecords(payload)
	if err != nil {
		return remediationItems(Classify(err.Error(), profile), r.SSO)
	}

	var items []domain.Item
	for _, raw := range records {
		rec := ad.projectRecord(raw)
		if !rec.Matches(filterText) {
			continue
		}
		items = append(items, resultItem(kind, rec, ad.buildURL(rec, region)))
	}
	return items
}
