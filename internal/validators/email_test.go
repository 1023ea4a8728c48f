package validators

import (
	"context"
	"testing"
)

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	for _, e := range []string{"", "no-at-sign", "trailing@"} {
		if IsEmailDomainValid(context.Background(), e) {
			t.Errorf("IsEmailDomainValid(%q) = true", e)
		}
	}
}
