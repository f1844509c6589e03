package entities

import (
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RefDescriptor is the normalized form of a record's cross-collection link.
//
// Legacy rows encode the link either as a list of ids or as a single
// comma-delimited string. Both shapes decode into the same descriptor so the
// rest of the system never branches on the encoding again; Resolve() is the
// single normalization point.

type RefDescriptor struct {
	ids []string
	raw string
}

func RefsFromIDs(ids ...string) RefDescriptor {
	return RefDescriptor{ids: ids}
}

func RefsFromString(s string) RefDescriptor {
	return RefDescriptor{raw: s}
}

// Resolve returns the deduplicated, order-preserving list of candidate ids.
//
//   - list form: non-empty string elements, in order
//   - string form: split on commas, each part trimmed, empties dropped
//   - absent: empty
func (d RefDescriptor) Resolve() []string {
	var parts []string
	if len(d.ids) > 0 {
		parts = d.ids
	} else if d.raw != "" {
		parts = strings.Split(d.raw, ",")
	}

	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func (d RefDescriptor) IsEmpty() bool {
	return len(d.Resolve()) == 0
}

func (d RefDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Resolve())
}

func (d *RefDescriptor) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err == nil {
		*d = RefDescriptor{ids: ids}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*d = RefDescriptor{raw: raw}
		return nil
	}

	// null or an unexpected shape both normalize to empty.
	*d = RefDescriptor{}
	return nil
}

func (d RefDescriptor) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	resolved := d.Resolve()
	if len(resolved) == 0 {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
	members := make([]types.AttributeValue, 0, len(resolved))
	for _, id := range resolved {
		members = append(members, &types.AttributeValueMemberS{Value: id})
	}
	return &types.AttributeValueMemberL{Value: members}, nil
}

func (d *RefDescriptor) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberL:
		ids := make([]string, 0, len(v.Value))
		for _, m := range v.Value {
			if s, ok := m.(*types.AttributeValueMemberS); ok {
				ids = append(ids, s.Value)
			}
		}
		*d = RefDescriptor{ids: ids}
	case *types.AttributeValueMemberSS:
		*d = RefDescriptor{ids: v.Value}
	case *types.AttributeValueMemberS:
		*d = RefDescriptor{raw: v.Value}
	default:
		*d = RefDescriptor{}
	}
	return nil
}
