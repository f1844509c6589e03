package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestInExpression(t *testing.T) {
	t.Run("small value set is a single IN clause", func(t *testing.T) {
		expr, values := inExpression("id", []string{"a", "b"})
		if expr != "id IN (:v0, :v1)" {
			t.Fatalf("unexpected expression: %s", expr)
		}
		if len(values) != 2 {
			t.Fatalf("expected 2 placeholders, got %d", len(values))
		}
		if v := values[":v1"].(*types.AttributeValueMemberS).Value; v != "b" {
			t.Fatalf("unexpected placeholder value: %s", v)
		}
	})

	t.Run("chunks past the operand cap", func(t *testing.T) {
		ids := make([]string, inOperandLimit+1)
		for i := range ids {
			ids[i] = fmt.Sprintf("id-%d", i)
		}

		expr, values := inExpression("id", ids)
		if len(values) != len(ids) {
			t.Fatalf("expected %d placeholders, got %d", len(ids), len(values))
		}
		if got := strings.Count(expr, "id IN ("); got != 2 {
			t.Fatalf("expected 2 IN clauses, got %d: %s", got, expr)
		}
		if !strings.Contains(expr, " OR ") {
			t.Fatalf("chunks must be OR-joined: %s", expr)
		}
		if !strings.HasPrefix(expr, "(") || !strings.HasSuffix(expr, ")") {
			t.Fatalf("multi-chunk expression must be parenthesized: %s", expr)
		}
		last := fmt.Sprintf(":v%d", inOperandLimit)
		if v := values[last].(*types.AttributeValueMemberS).Value; v != ids[inOperandLimit] {
			t.Fatalf("unexpected value for %s: %s", last, v)
		}
	})
}
